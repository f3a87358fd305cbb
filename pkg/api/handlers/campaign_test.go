package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

type stubBillingGate struct {
	Active  bool
	Credits int
}

func (s *stubBillingGate) HasActiveSubscription(ctx context.Context, userID int) (bool, error) {
	return s.Active, nil
}

func (s *stubBillingGate) CreditsRemaining(ctx context.Context, userID int) (int, error) {
	return s.Credits, nil
}

type stubComplianceGate struct {
	Allowed bool
}

func (s *stubComplianceGate) CanMessageUS(ctx context.Context, userID int) (bool, error) {
	return s.Allowed, nil
}

func setupCampaignHandler(t *testing.T, billing *stubBillingGate, compliance *stubComplianceGate) (*CampaignHandler, *ent.Client, func()) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	log := logger.Default()
	service := campaign.NewService(client, billing, compliance, audit.NewService(client, log), nil, log)
	return NewCampaignHandler(service), client, func() { client.Close() }
}

func createHandlerTestUser(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail("handler-test@example.com").
		SetName("Handler Test User").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

const createCampaignBody = `{
	"name": "Winback Q3",
	"templates": [
		{"sequence_number": 1, "body": "Hi {name}, still interested?"},
		{"sequence_number": 2, "body": "Hi {name}, checking in."},
		{"sequence_number": 3, "body": "Last chance, {name}!"}
	],
	"contacts": [
		{"name": "Ana", "phone": "+12125550100"},
		{"name": "Ben", "phone": "+12125550101"}
	]
}`

func TestCampaignHandlerCreate(t *testing.T) {
	handler, client, cleanup := setupCampaignHandler(t, &stubBillingGate{}, &stubComplianceGate{})
	defer cleanup()
	testUser := createHandlerTestUser(t, client)

	t.Run("Success - Creates campaign with contacts", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader(createCampaignBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", testUser.ID)

		err := handler.Create(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(2), resp["imported"])
	})

	t.Run("Failure - Missing templates is a validation error", func(t *testing.T) {
		e := echo.New()
		body := `{"name": "No templates", "contacts": [{"name": "Ana", "phone": "+12125550100"}]}`
		req := httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", testUser.ID)

		err := handler.Create(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - No user in context", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader(createCampaignBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCampaignHandlerGet(t *testing.T) {
	handler, client, cleanup := setupCampaignHandler(t, &stubBillingGate{}, &stubComplianceGate{})
	defer cleanup()
	testUser := createHandlerTestUser(t, client)

	t.Run("Failure - Unknown campaign returns 404", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/campaigns/999", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("999")
		c.Set("user_id", testUser.ID)

		err := handler.Get(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Failure - Non-numeric id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/campaigns/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")
		c.Set("user_id", testUser.ID)

		err := handler.Get(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCampaignHandlerStartGates(t *testing.T) {
	billing := &stubBillingGate{Active: false, Credits: 0}
	handler, client, cleanup := setupCampaignHandler(t, billing, &stubComplianceGate{Allowed: true})
	defer cleanup()
	testUser := createHandlerTestUser(t, client)

	// Create a campaign through the handler first
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/campaigns", strings.NewReader(createCampaignBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", testUser.ID)
	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Campaign struct {
			ID int `json:"id"`
		} `json:"campaign"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	campID := strconv.Itoa(created.Campaign.ID)

	start := func() (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/campaigns/"+campID+"/start", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(campID)
		c.Set("user_id", testUser.ID)
		return rec, handler.Start(c)
	}

	t.Run("Failure - No subscription returns 402 with gate code", func(t *testing.T) {
		rec, err := start()
		require.NoError(t, err)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "REQUIRES_SUBSCRIPTION", resp["error"])
	})

	t.Run("Failure - No credits returns 402 with gate code", func(t *testing.T) {
		billing.Active = true

		rec, err := start()
		require.NoError(t, err)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "REQUIRES_PAYMENT", resp["error"])
	})

	t.Run("Success - All gates pass", func(t *testing.T) {
		billing.Active = true
		billing.Credits = 100

		rec, err := start()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
