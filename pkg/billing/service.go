package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/userbilling"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/models"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

// A2P 10DLC registration fees charged at cost (USD)
const (
	a2pBrandFee    = 4.0
	a2pCampaignFee = 10.0
)

// Balance at which the low-credits notice goes out
const lowCreditsThreshold = 25

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendPaymentFailedEmail(toEmail, toName string) error
	SendLowCreditsEmail(toEmail, toName string, creditsRemaining int) error
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceStarter  string
	PricePro      string
	PriceGrowth   string
	SuccessURL    string
	CancelURL     string
}

// Service handles the credit ledger and Stripe billing operations
type Service struct {
	db     *ent.Client
	config *StripeConfig
	email  EmailSender
}

// NewService creates a new billing service
func NewService(db *ent.Client, config *StripeConfig) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	return &Service{
		db:     db,
		config: config,
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// planCredits maps plan IDs to the SMS credits granted each billing period.
var planCredits = map[string]int{
	"starter": 500,
	"pro":     2000,
	"growth":  10000,
}

// CreditsForPlan returns the monthly credit allowance for a plan
func CreditsForPlan(planID string) int {
	return planCredits[planID]
}

// GetStatus returns a user's billing record
func (s *Service) GetStatus(ctx context.Context, userID int) (*ent.UserBilling, error) {
	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("billing record")
		}
		return nil, fmt.Errorf("failed to get billing record: %w", err)
	}
	return billing, nil
}

// HasActiveSubscription reports whether the user has an active subscription
func (s *Service) HasActiveSubscription(ctx context.Context, userID int) (bool, error) {
	exists, err := s.db.UserBilling.
		Query().
		Where(
			userbilling.UserIDEQ(userID),
			userbilling.StatusEQ(userbilling.StatusActive),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return exists, nil
}

// CreditsRemaining returns the user's current credit balance (0 if no record)
func (s *Service) CreditsRemaining(ctx context.Context, userID int) (int, error) {
	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get billing record: %w", err)
	}
	return billing.CreditsRemaining, nil
}

// ReserveCredit atomically consumes one credit from the user's balance.
// The conditional update only matches rows with credits_remaining > 0, so
// concurrent dispatchers can never drive the balance negative. Returns
// INSUFFICIENT_CREDITS when the balance is already zero.
func (s *Service) ReserveCredit(ctx context.Context, userID int) error {
	n, err := s.db.UserBilling.
		Update().
		Where(
			userbilling.UserIDEQ(userID),
			userbilling.CreditsRemainingGT(0),
		).
		AddCreditsRemaining(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reserve credit: %w", err)
	}
	if n == 0 {
		return domain.NewInsufficientCreditsError()
	}

	s.maybeNotifyLowCredits(ctx, userID)
	return nil
}

// maybeNotifyLowCredits sends the low-balance notice at the moment the balance
// reaches the threshold. Firing only on the exact crossing means one notice per
// billing period; renewals reset the balance above the threshold.
func (s *Service) maybeNotifyLowCredits(ctx context.Context, userID int) {
	if s.email == nil {
		return
	}

	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.UserIDEQ(userID)).
		Only(ctx)
	if err != nil || billing.CreditsRemaining != lowCreditsThreshold {
		return
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return
	}

	if err := s.email.SendLowCreditsEmail(u.Email, u.Name, billing.CreditsRemaining); err != nil {
		log.Printf("⚠️  Failed to send low credits email to %s: %v", u.Email, err)
	}
}

// RefundCredit returns one credit to the user's balance. Called when a send
// fails after its credit was reserved, so failures never consume credits.
func (s *Service) RefundCredit(ctx context.Context, userID int) error {
	n, err := s.db.UserBilling.
		Update().
		Where(userbilling.UserIDEQ(userID)).
		AddCreditsRemaining(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to refund credit: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("billing record")
	}
	return nil
}

// CreateCheckoutSession creates a Stripe subscription checkout session for a plan
func (s *Service) CreateCheckoutSession(ctx context.Context, userID int, planID string) (*models.CheckoutResponse, error) {
	priceID, err := s.getPriceIDForPlan(planID)
	if err != nil {
		return nil, err
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	customerID, err := s.getOrCreateCustomer(ctx, userID, u.Email)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", userID),
			"plan_id": planID,
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// CreateA2PPaymentIntent creates a one-time payment intent covering the A2P
// brand and campaign registration fees ($4 + $10)
func (s *Service) CreateA2PPaymentIntent(ctx context.Context, userID int) (*models.PaymentIntentResponse, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	customerID, err := s.getOrCreateCustomer(ctx, userID, u.Email)
	if err != nil {
		return nil, err
	}

	total := a2pBrandFee + a2pCampaignFee
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(total * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Customer: stripe.String(customerID),
		Metadata: map[string]string{
			"user_id":      fmt.Sprintf("%d", userID),
			"type":         "a2p_registration",
			"brand_fee":    fmt.Sprintf("%.2f", a2pBrandFee),
			"campaign_fee": fmt.Sprintf("%.2f", a2pCampaignFee),
		},
		Description: stripe.String("A2P Brand & Campaign Registration"),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       total,
	}, nil
}

// getOrCreateCustomer returns the user's Stripe customer ID, creating the
// customer and billing row on first contact with Stripe
func (s *Service) getOrCreateCustomer(ctx context.Context, userID int, email string) (string, error) {
	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.UserIDEQ(userID)).
		Only(ctx)
	if err == nil && billing.StripeCustomerID != "" {
		return billing.StripeCustomerID, nil
	}
	if err != nil && !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to get billing record: %w", err)
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Metadata: map[string]string{
			"user_id": fmt.Sprintf("%d", userID),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	if billing != nil {
		_, err = billing.Update().SetStripeCustomerID(cust.ID).Save(ctx)
	} else {
		_, err = s.db.UserBilling.
			Create().
			SetUserID(userID).
			SetStripeCustomerID(cust.ID).
			Save(ctx)
	}
	if err != nil {
		return "", fmt.Errorf("failed to save customer ID: %w", err)
	}

	return cust.ID, nil
}

// HandleWebhook processes Stripe webhook events
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "invoice.paid":
		return s.handleInvoicePaid(ctx, event)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted activates the subscription and grants the plan's credits
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	userIDStr, ok := sess.Metadata["user_id"]
	if !ok {
		return fmt.Errorf("user_id not found in metadata")
	}
	var userID int
	fmt.Sscanf(userIDStr, "%d", &userID)

	planID := sess.Metadata["plan_id"]
	if planID == "" {
		// A2P payment intents also complete checkout-less; nothing to grant
		log.Printf("⚠️  Checkout completed without plan_id (user_id=%d)", userID)
		return nil
	}

	credits := CreditsForPlan(planID)
	subscriptionID := ""
	if sess.Subscription != nil {
		subscriptionID = sess.Subscription.ID
	}
	renewDate := time.Now().AddDate(0, 0, 30)

	log.Printf("✅ Checkout completed: user_id=%d, plan=%s, credits=%d", userID, planID, credits)

	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to get billing record: %w", err)
		}
		_, err = s.db.UserBilling.
			Create().
			SetUserID(userID).
			SetPlanID(planID).
			SetStatus(userbilling.StatusActive).
			SetCreditsRemaining(credits).
			SetStripeCustomerID(sess.Customer.ID).
			SetStripeSubscriptionID(subscriptionID).
			SetRenewDate(renewDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create billing record: %w", err)
		}
		return nil
	}

	_, err = billing.Update().
		SetPlanID(planID).
		SetStatus(userbilling.StatusActive).
		SetCreditsRemaining(credits).
		SetStripeCustomerID(sess.Customer.ID).
		SetStripeSubscriptionID(subscriptionID).
		SetRenewDate(renewDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update billing record: %w", err)
	}
	return nil
}

// handleInvoicePaid renews the credit balance for the new billing period
func (s *Service) handleInvoicePaid(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	if invoice.Customer == nil {
		return nil
	}

	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.StripeCustomerIDEQ(invoice.Customer.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  No billing record for customer: %s", invoice.Customer.ID)
			return nil
		}
		return fmt.Errorf("failed to find billing record: %w", err)
	}

	credits := CreditsForPlan(billing.PlanID)
	_, err = billing.Update().
		SetStatus(userbilling.StatusActive).
		SetCreditsRemaining(credits).
		SetRenewDate(time.Now().AddDate(0, 0, 30)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to renew credits: %w", err)
	}

	log.Printf("💰 Credits renewed for user %d: %d", billing.UserID, credits)
	return nil
}

// handleInvoicePaymentFailed marks the subscription past_due and notifies the user
func (s *Service) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	if invoice.Customer == nil {
		return nil
	}

	billing, err := s.db.UserBilling.
		Query().
		Where(userbilling.StripeCustomerIDEQ(invoice.Customer.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  No billing record for failed invoice customer: %s", invoice.Customer.ID)
			return nil
		}
		return fmt.Errorf("failed to find billing record: %w", err)
	}

	_, err = billing.Update().
		SetStatus(userbilling.StatusPastDue).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set billing past_due: %w", err)
	}

	log.Printf("⚠️  Subscription past_due for user %d", billing.UserID)

	if s.email != nil {
		u, err := s.db.User.Get(ctx, billing.UserID)
		if err == nil {
			if err := s.email.SendPaymentFailedEmail(u.Email, u.Name); err != nil {
				log.Printf("⚠️  Failed to send payment failed email to %s: %v", u.Email, err)
			}
		}
	}

	return nil
}

// handleSubscriptionDeleted marks the subscription canceled. Remaining credits
// are kept until they run out; campaigns stop at the subscription gate.
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	if sub.Customer == nil {
		return nil
	}

	n, err := s.db.UserBilling.
		Update().
		Where(userbilling.StripeCustomerIDEQ(sub.Customer.ID)).
		SetStatus(userbilling.StatusCanceled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel billing record: %w", err)
	}
	if n == 0 {
		log.Printf("⚠️  No billing record for deleted subscription customer: %s", sub.Customer.ID)
		return nil
	}

	log.Printf("❌ Subscription canceled for customer: %s", sub.Customer.ID)
	return nil
}

// getPriceIDForPlan returns the Stripe price ID for a plan
func (s *Service) getPriceIDForPlan(planID string) (string, error) {
	switch planID {
	case "starter":
		return s.config.PriceStarter, nil
	case "pro":
		return s.config.PricePro, nil
	case "growth":
		return s.config.PriceGrowth, nil
	default:
		return "", domain.NewValidationError(fmt.Sprintf("invalid plan: %s", planID))
	}
}
