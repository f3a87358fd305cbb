package handlers

import (
	"net/http"

	"github.com/danielmv/leadrevive/pkg/inbound"
	"github.com/labstack/echo/v4"
)

// WebhookHandler handles Twilio webhook callbacks
type WebhookHandler struct {
	inboundService *inbound.Service
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(inboundService *inbound.Service) *WebhookHandler {
	return &WebhookHandler{
		inboundService: inboundService,
	}
}

// HandleTwilio handles inbound SMS and delivery status callbacks.
// Twilio retries on non-2xx, so this endpoint always answers 200; failures
// are logged server-side and the SID dedup absorbs the retry.
// @Summary Handle Twilio webhook
// @Description Process Twilio callbacks: inbound SMS replies (reply/opt-out detection) and delivery receipts
// @Tags Webhooks
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param MessageSid formData string false "Twilio message SID"
// @Param MessageStatus formData string false "Delivery status for receipt callbacks"
// @Param From formData string false "Sender number for inbound messages"
// @Param To formData string false "Recipient number for inbound messages"
// @Param Body formData string false "Message body for inbound messages"
// @Success 200 {string} string "Empty TwiML response"
// @Router /webhooks/twilio [post]
func (h *WebhookHandler) HandleTwilio(c echo.Context) error {
	ctx := c.Request().Context()
	sid := c.FormValue("MessageSid")
	status := c.FormValue("MessageStatus")

	if status != "" {
		// Delivery receipt
		if err := h.inboundService.HandleDeliveryReceipt(ctx, sid, status); err != nil {
			c.Logger().Errorf("delivery receipt failed: sid=%s err=%v", sid, err)
		}
	} else {
		// Inbound message
		from := c.FormValue("From")
		to := c.FormValue("To")
		body := c.FormValue("Body")
		if err := h.inboundService.HandleInboundMessage(ctx, from, to, body, sid); err != nil {
			c.Logger().Errorf("inbound message failed: sid=%s err=%v", sid, err)
		}
	}

	// Empty TwiML: no auto-reply
	return c.XMLBlob(http.StatusOK, []byte(`<?xml version="1.0" encoding="UTF-8"?><Response></Response>`))
}
