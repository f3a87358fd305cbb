package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/ent/userbilling"
	"github.com/danielmv/leadrevive/pkg/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.
		Create().
		SetName("Test User").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createBilling(t *testing.T, client *ent.Client, userID, credits int, status userbilling.Status) *ent.UserBilling {
	b, err := client.UserBilling.
		Create().
		SetUserID(userID).
		SetPlanID("starter").
		SetStatus(status).
		SetCreditsRemaining(credits).
		SetStripeCustomerID("cus_test").
		Save(context.Background())
	require.NoError(t, err)
	return b
}

func TestReserveCredit(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	user := createTestUser(t, client, "reserve@example.com")
	createBilling(t, client, user.ID, 2, userbilling.StatusActive)

	t.Run("Success - Decrements balance", func(t *testing.T) {
		err := service.ReserveCredit(ctx, user.ID)
		require.NoError(t, err)

		remaining, err := service.CreditsRemaining(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
	})

	t.Run("Error - Insufficient credits at zero", func(t *testing.T) {
		require.NoError(t, service.ReserveCredit(ctx, user.ID))

		err := service.ReserveCredit(ctx, user.ID)
		require.Error(t, err)
		assert.True(t, domain.IsInsufficientCredits(err))

		remaining, err := service.CreditsRemaining(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("Error - No billing record", func(t *testing.T) {
		other := createTestUser(t, client, "nobilling@example.com")
		err := service.ReserveCredit(ctx, other.ID)
		require.Error(t, err)
	})
}

// MockEmailSender records billing notification emails
type MockEmailSender struct {
	PaymentFailedCalls int
	LowCreditsCalls    int
	LowCreditsBalance  int
}

func (m *MockEmailSender) SendPaymentFailedEmail(toEmail, toName string) error {
	m.PaymentFailedCalls++
	return nil
}

func (m *MockEmailSender) SendLowCreditsEmail(toEmail, toName string, creditsRemaining int) error {
	m.LowCreditsCalls++
	m.LowCreditsBalance = creditsRemaining
	return nil
}

func TestReserveCreditLowBalanceNotice(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	sender := &MockEmailSender{}
	service.SetEmailSender(sender)
	ctx := context.Background()

	user := createTestUser(t, client, "lowbalance@example.com")
	createBilling(t, client, user.ID, lowCreditsThreshold+2, userbilling.StatusActive)

	t.Run("Success - Notice fires once at the threshold", func(t *testing.T) {
		require.NoError(t, service.ReserveCredit(ctx, user.ID))
		assert.Equal(t, 0, sender.LowCreditsCalls)

		require.NoError(t, service.ReserveCredit(ctx, user.ID))
		assert.Equal(t, 1, sender.LowCreditsCalls)
		assert.Equal(t, lowCreditsThreshold, sender.LowCreditsBalance)
	})

	t.Run("Success - No repeat below the threshold", func(t *testing.T) {
		require.NoError(t, service.ReserveCredit(ctx, user.ID))
		assert.Equal(t, 1, sender.LowCreditsCalls)
	})
}

func TestReserveCreditConservation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	user := createTestUser(t, client, "conservation@example.com")
	createBilling(t, client, user.ID, 5, userbilling.StatusActive)

	// 20 reservation attempts against 5 credits; exactly 5 may succeed
	succeeded := 0
	for i := 0; i < 20; i++ {
		if err := service.ReserveCredit(ctx, user.ID); err == nil {
			succeeded++
		} else {
			assert.True(t, domain.IsInsufficientCredits(err))
		}
	}

	assert.Equal(t, 5, succeeded)

	remaining, err := service.CreditsRemaining(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestRefundCredit(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	user := createTestUser(t, client, "refund@example.com")
	createBilling(t, client, user.ID, 3, userbilling.StatusActive)

	require.NoError(t, service.ReserveCredit(ctx, user.ID))
	require.NoError(t, service.RefundCredit(ctx, user.ID))

	remaining, err := service.CreditsRemaining(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
}

func TestHasActiveSubscription(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	t.Run("Active subscription", func(t *testing.T) {
		user := createTestUser(t, client, "active@example.com")
		createBilling(t, client, user.ID, 100, userbilling.StatusActive)

		ok, err := service.HasActiveSubscription(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Canceled subscription", func(t *testing.T) {
		user := createTestUser(t, client, "canceled@example.com")
		b, err := client.UserBilling.
			Create().
			SetUserID(user.ID).
			SetPlanID("starter").
			SetStatus(userbilling.StatusCanceled).
			SetCreditsRemaining(10).
			Save(ctx)
		require.NoError(t, err)
		_ = b

		ok, err := service.HasActiveSubscription(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("No billing record", func(t *testing.T) {
		user := createTestUser(t, client, "none@example.com")
		ok, err := service.HasActiveSubscription(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestHandleCheckoutCompleted(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	user := createTestUser(t, client, "checkout@example.com")

	session := map[string]interface{}{
		"id":       "cs_test",
		"customer": map[string]interface{}{"id": "cus_new"},
		"subscription": map[string]interface{}{
			"id": "sub_new",
		},
		"metadata": map[string]string{
			"user_id": fmt.Sprintf("%d", user.ID),
			"plan_id": "pro",
		},
	}
	raw, err := json.Marshal(session)
	require.NoError(t, err)

	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}

	require.NoError(t, service.handleCheckoutCompleted(ctx, event))

	billing, err := service.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, userbilling.StatusActive, billing.Status)
	assert.Equal(t, "pro", billing.PlanID)
	assert.Equal(t, 2000, billing.CreditsRemaining)
	assert.Equal(t, "cus_new", billing.StripeCustomerID)
	assert.Equal(t, "sub_new", billing.StripeSubscriptionID)
}

func TestHandleInvoicePaidRenewsCredits(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	user := createTestUser(t, client, "renew@example.com")
	createBilling(t, client, user.ID, 7, userbilling.StatusPastDue)

	invoice := map[string]interface{}{
		"id":       "in_test",
		"customer": map[string]interface{}{"id": "cus_test"},
	}
	raw, err := json.Marshal(invoice)
	require.NoError(t, err)

	event := stripe.Event{
		Type: "invoice.paid",
		Data: &stripe.EventData{Raw: raw},
	}

	require.NoError(t, service.handleInvoicePaid(ctx, event))

	billing, err := service.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, userbilling.StatusActive, billing.Status)
	assert.Equal(t, 500, billing.CreditsRemaining) // starter allowance
}

func TestHandleSubscriptionDeleted(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, &StripeConfig{})
	ctx := context.Background()

	user := createTestUser(t, client, "delete@example.com")
	createBilling(t, client, user.ID, 42, userbilling.StatusActive)

	sub := map[string]interface{}{
		"id":       "sub_test",
		"customer": map[string]interface{}{"id": "cus_test"},
	}
	raw, err := json.Marshal(sub)
	require.NoError(t, err)

	event := stripe.Event{
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: raw},
	}

	require.NoError(t, service.handleSubscriptionDeleted(ctx, event))

	billing, err := service.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, userbilling.StatusCanceled, billing.Status)
	// Remaining credits are preserved on cancellation
	assert.Equal(t, 42, billing.CreditsRemaining)
}
