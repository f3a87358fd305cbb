package handlers

import (
	"io"
	"net/http"

	"github.com/danielmv/leadrevive/pkg/api/errors"
	"github.com/danielmv/leadrevive/pkg/billing"
	"github.com/danielmv/leadrevive/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CheckoutRequest selects the subscription plan to purchase
type CheckoutRequest struct {
	PlanID string `json:"plan_id" validate:"required,oneof=starter pro growth"`
}

// BillingHandler handles billing endpoints
type BillingHandler struct {
	billingService *billing.Service
	validator      *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		validator:      validator.New(),
	}
}

// GetStatus handles returning the user's billing status
// @Summary Get billing status
// @Description Get the authenticated user's subscription status and remaining message credits
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ent.UserBilling "Billing status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /billing/status [get]
func (h *BillingHandler) GetStatus(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	status, err := h.billingService.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

// CreateCheckout handles creating a subscription checkout session
// @Summary Create Stripe checkout session
// @Description Create a Stripe checkout session for a subscription plan; completing it grants the plan's message credits
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutRequest true "Plan selection"
// @Success 200 {object} models.CheckoutResponse "Checkout session created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	session, err := h.billingService.CreateCheckoutSession(c.Request().Context(), userID, req.PlanID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// CreateA2PPayment handles creating the one-time A2P registration payment
// @Summary Create A2P registration payment intent
// @Description Create a Stripe payment intent covering the one-time A2P 10DLC brand and campaign registration fees
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PaymentIntentResponse "Payment intent created"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /billing/a2p-payment [post]
func (h *BillingHandler) CreateA2PPayment(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	intent, err := h.billingService.CreateA2PPaymentIntent(c.Request().Context(), userID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, intent)
}

// HandleWebhook handles Stripe webhook events
// @Summary Handle Stripe webhook
// @Description Process Stripe webhook events for subscription lifecycle and credit renewal
// @Tags Billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe webhook signature for verification"
// @Param payload body object true "Stripe webhook event payload"
// @Success 200 {object} models.SuccessResponse "Webhook processed successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request or missing signature"
// @Router /webhooks/stripe [post]
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_body",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "missing_signature",
		})
	}

	if err := h.billingService.HandleWebhook(c.Request().Context(), body, signature); err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Webhook processed successfully",
	})
}
