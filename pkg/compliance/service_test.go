package compliance

import (
	"context"
	"testing"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/danielmv/leadrevive/pkg/twilio"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockTwilioAPI is a fake TwilioAPI for testing
type MockTwilioAPI struct {
	CreateSubaccountFunc       func(ctx context.Context, friendlyName string) (*twilio.Subaccount, error)
	RegisterBrandFunc          func(ctx context.Context, params twilio.BrandParams) (*twilio.BrandRegistration, error)
	RegisterA2PCampaignFunc    func(ctx context.Context, params twilio.A2PCampaignParams) (*twilio.A2PCampaign, error)
	SearchAvailableNumbersFunc func(ctx context.Context, areaCode string, limit int) ([]string, error)
	PurchaseNumberFunc         func(ctx context.Context, phoneNumber, smsWebhookURL string) (*twilio.IncomingPhoneNumber, error)
}

func (m *MockTwilioAPI) CreateSubaccount(ctx context.Context, friendlyName string) (*twilio.Subaccount, error) {
	if m.CreateSubaccountFunc != nil {
		return m.CreateSubaccountFunc(ctx, friendlyName)
	}
	return &twilio.Subaccount{SID: "AC_sub", AuthToken: "tok_sub", FriendlyName: friendlyName}, nil
}

func (m *MockTwilioAPI) RegisterBrand(ctx context.Context, params twilio.BrandParams) (*twilio.BrandRegistration, error) {
	if m.RegisterBrandFunc != nil {
		return m.RegisterBrandFunc(ctx, params)
	}
	return &twilio.BrandRegistration{SID: "BN001", Status: "PENDING"}, nil
}

func (m *MockTwilioAPI) RegisterA2PCampaign(ctx context.Context, params twilio.A2PCampaignParams) (*twilio.A2PCampaign, error) {
	if m.RegisterA2PCampaignFunc != nil {
		return m.RegisterA2PCampaignFunc(ctx, params)
	}
	return &twilio.A2PCampaign{SID: "CM001", Status: "PENDING"}, nil
}

func (m *MockTwilioAPI) SearchAvailableNumbers(ctx context.Context, areaCode string, limit int) ([]string, error) {
	if m.SearchAvailableNumbersFunc != nil {
		return m.SearchAvailableNumbersFunc(ctx, areaCode, limit)
	}
	return []string{"+14025550100"}, nil
}

func (m *MockTwilioAPI) PurchaseNumber(ctx context.Context, phoneNumber, smsWebhookURL string) (*twilio.IncomingPhoneNumber, error) {
	if m.PurchaseNumberFunc != nil {
		return m.PurchaseNumberFunc(ctx, phoneNumber, smsWebhookURL)
	}
	return &twilio.IncomingPhoneNumber{SID: "PN001", PhoneNumber: phoneNumber}, nil
}

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

func newTestService(client *ent.Client, verified bool, numbers ...string) *Service {
	verify := func(ctx context.Context, accountSID, authToken string) (bool, []string, error) {
		return verified, numbers, nil
	}
	return NewService(client, &MockTwilioAPI{}, verify, "https://api.leadrevive.io/webhooks/twilio", logger.Default())
}

func TestRegisterBrand(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, true)
	ctx := context.Background()

	user := createTestUser(t, client, "brand@example.com")

	req := BrandRequest{
		CompanyName:  "Acme Roofing",
		EIN:          "12-3456789",
		Vertical:     "CONSTRUCTION",
		ContactName:  "Jane Doe",
		ContactEmail: "jane@acme.com",
	}

	t.Run("Success - Creates registration and stores subaccount", func(t *testing.T) {
		reg, err := service.RegisterBrand(ctx, user.ID, req)
		require.NoError(t, err)
		assert.Equal(t, a2pregistration.StatusBrandRegistered, reg.Status)
		assert.Equal(t, "AC_sub", reg.SubaccountSid)
		assert.Equal(t, "BN001", reg.BrandSid)
		assert.Equal(t, "Acme Roofing", reg.CompanyName)

		account, err := client.TwilioAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "AC_sub", account.AccountSid)
		assert.True(t, account.IsVerified)
	})

	t.Run("Success - Re-registration upserts the same row", func(t *testing.T) {
		reg, err := service.RegisterBrand(ctx, user.ID, req)
		require.NoError(t, err)

		count, err := client.A2PRegistration.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, a2pregistration.StatusBrandRegistered, reg.Status)
	})
}

func TestRegisterCampaign(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, true)
	ctx := context.Background()

	user := createTestUser(t, client, "campaign@example.com")

	t.Run("Error - No brand registration", func(t *testing.T) {
		_, err := service.RegisterCampaign(ctx, user.ID, "Reactivation", "LOW_VOLUME")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Success - After brand registration", func(t *testing.T) {
		_, err := service.RegisterBrand(ctx, user.ID, BrandRequest{
			CompanyName:  "Acme",
			EIN:          "12-3456789",
			Vertical:     "CONSTRUCTION",
			ContactName:  "Jane Doe",
			ContactEmail: "jane@acme.com",
		})
		require.NoError(t, err)

		reg, err := service.RegisterCampaign(ctx, user.ID, "Reactivation", "LOW_VOLUME")
		require.NoError(t, err)
		assert.Equal(t, a2pregistration.StatusCampaignRegistered, reg.Status)
		assert.Equal(t, "CM001", reg.CampaignSid)
	})
}

func TestBuyNumber(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, true)
	ctx := context.Background()

	user := createTestUser(t, client, "number@example.com")

	t.Run("Error - Campaign not registered", func(t *testing.T) {
		_, err := service.BuyNumber(ctx, user.ID, "402")
		require.Error(t, err)
	})

	t.Run("Success - Completes registration", func(t *testing.T) {
		_, err := service.RegisterBrand(ctx, user.ID, BrandRequest{
			CompanyName:  "Acme",
			EIN:          "12-3456789",
			Vertical:     "CONSTRUCTION",
			ContactName:  "Jane Doe",
			ContactEmail: "jane@acme.com",
		})
		require.NoError(t, err)
		_, err = service.RegisterCampaign(ctx, user.ID, "Reactivation", "LOW_VOLUME")
		require.NoError(t, err)

		reg, err := service.BuyNumber(ctx, user.ID, "402")
		require.NoError(t, err)
		assert.Equal(t, a2pregistration.StatusNumberAssigned, reg.Status)
		assert.Equal(t, "+14025550100", reg.PhoneNumber)

		ready, err := service.Ready(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, ready)

		// The stored account picked up the purchased number
		account, err := client.TwilioAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "+14025550100", account.PhoneNumber)
	})
}

func TestConnectAccount(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, client, "connect@example.com")

	t.Run("Success - Verified credentials stored", func(t *testing.T) {
		service := newTestService(client, true)

		account, err := service.ConnectAccount(ctx, user.ID, "AC_legacy", "tok_legacy", "+15551234567")
		require.NoError(t, err)
		assert.Equal(t, "AC_legacy", account.AccountSid)
		assert.Equal(t, "+15551234567", account.PhoneNumber)
		assert.True(t, account.IsVerified)

		canSend, err := service.CanMessageUS(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, canSend)
	})

	t.Run("Success - Number discovered from account", func(t *testing.T) {
		service := newTestService(client, true, "+15559990000", "+15559990001")
		other := createTestUser(t, client, "discover@example.com")

		account, err := service.ConnectAccount(ctx, other.ID, "AC_disc", "tok_disc", "")
		require.NoError(t, err)
		assert.Equal(t, "+15559990000", account.PhoneNumber)
	})

	t.Run("Success - Explicit number wins over discovery", func(t *testing.T) {
		service := newTestService(client, true, "+15559990000")
		other := createTestUser(t, client, "explicit@example.com")

		account, err := service.ConnectAccount(ctx, other.ID, "AC_exp", "tok_exp", "+15551112222")
		require.NoError(t, err)
		assert.Equal(t, "+15551112222", account.PhoneNumber)
	})

	t.Run("Error - Invalid credentials", func(t *testing.T) {
		service := newTestService(client, false)

		_, err := service.ConnectAccount(ctx, user.ID, "AC_bad", "tok_bad", "+15551234567")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestChainNumberSource(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	chain := NewChainNumberSource(
		NewA2PNumberSource(client),
		NewConnectedNumberSource(client),
	)

	user := createTestUser(t, client, "chain@example.com")

	t.Run("Error - Nothing configured", func(t *testing.T) {
		_, err := chain.ResolveFromNumber(ctx, user.ID)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Falls back to connected account", func(t *testing.T) {
		_, err := client.TwilioAccount.
			Create().
			SetUserID(user.ID).
			SetAccountSid("AC_legacy").
			SetAuthToken("tok").
			SetPhoneNumber("+15550001111").
			SetIsVerified(true).
			Save(ctx)
		require.NoError(t, err)

		number, err := chain.ResolveFromNumber(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "+15550001111", number)
	})

	t.Run("Prefers assigned A2P number", func(t *testing.T) {
		_, err := client.A2PRegistration.
			Create().
			SetUserID(user.ID).
			SetStatus(a2pregistration.StatusNumberAssigned).
			SetPhoneNumber("+14025550100").
			Save(ctx)
		require.NoError(t, err)

		number, err := chain.ResolveFromNumber(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "+14025550100", number)
	})
}
