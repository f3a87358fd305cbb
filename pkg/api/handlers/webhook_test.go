package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/enttest"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/inbound"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupWebhookHandler(t *testing.T) (*WebhookHandler, *ent.Client, func()) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	log := logger.Default()
	auditSvc := audit.NewService(client, log)
	marker := campaign.NewService(client, nil, nil, auditSvc, nil, log)
	inboundSvc := inbound.NewService(client, marker, nil, auditSvc, nil, log)
	return NewWebhookHandler(inboundSvc), client, func() { client.Close() }
}

func postTwilioForm(handler *WebhookHandler, form url.Values) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler.HandleTwilio(c)
	return rec
}

func TestHandleTwilioInbound(t *testing.T) {
	handler, client, cleanup := setupWebhookHandler(t)
	defer cleanup()
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("webhook-test@example.com").
		SetName("Webhook Test User").
		Save(ctx)
	require.NoError(t, err)

	camp, err := client.Campaign.Create().
		SetUserID(u.ID).
		SetName("Winback").
		SetStatus(entcampaign.StatusActive).
		SetMessageIntervals([]int{2, 5, 30}).
		Save(ctx)
	require.NoError(t, err)

	cont, err := client.Contact.Create().
		SetCampaignID(camp.ID).
		SetName("Ana").
		SetPhoneNumber("+12125550100").
		SetStatus(contact.StatusFirstSent).
		SetMessageCount(1).
		SetLastMessageSentAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	t.Run("Success - Inbound reply answers 200 TwiML and marks contact", func(t *testing.T) {
		rec := postTwilioForm(handler, url.Values{
			"MessageSid": {"SM7001"},
			"From":       {"+12125550100"},
			"To":         {"+14025550100"},
			"Body":       {"Yes, call me"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<Response>")
		assert.Equal(t, contact.StatusReplied, client.Contact.GetX(ctx, cont.ID).Status)
	})

	t.Run("Success - Unknown sender still answers 200", func(t *testing.T) {
		rec := postTwilioForm(handler, url.Values{
			"MessageSid": {"SM7002"},
			"From":       {"+17185550199"},
			"To":         {"+14025550100"},
			"Body":       {"wrong number"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
