package handlers

import (
	"net/http"
	"time"

	"github.com/danielmv/leadrevive/pkg/api/errors"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/dispatch"
	"github.com/labstack/echo/v4"
)

// AutomationHandler exposes the scheduled jobs for external cron triggers.
// Deployments without the in-process scheduler (or operators re-running a
// cycle by hand) call these behind the cron secret.
type AutomationHandler struct {
	dispatcher *dispatch.Service
	campaigns  *campaign.Service
	batchLimit int
}

// NewAutomationHandler creates a new automation handler
func NewAutomationHandler(dispatcher *dispatch.Service, campaigns *campaign.Service, batchLimit int) *AutomationHandler {
	return &AutomationHandler{
		dispatcher: dispatcher,
		campaigns:  campaigns,
		batchLimit: batchLimit,
	}
}

// ProcessQueue runs one dispatch cycle
// @Summary Process the send queue
// @Description Run one dispatch cycle: deliver due messages and restart dormant contacts. Protected by the cron secret.
// @Tags Automation
// @Produce json
// @Security CronSecret
// @Success 200 {object} dispatch.Result "Cycle summary"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid cron secret"
// @Router /automation/process-queue [post]
func (h *AutomationHandler) ProcessQueue(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now()

	result, err := h.dispatcher.ProcessDue(ctx, now, h.batchLimit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	restarted, err := h.dispatcher.RestartDormant(ctx, now)
	if err != nil {
		return errors.InternalError(c, err)
	}
	result.Restarted = restarted

	return c.JSON(http.StatusOK, result)
}

// AdmitBatches runs one drip admission sweep
// @Summary Admit due drip batches
// @Description Admit the next batch of uncontacted contacts for every campaign whose drip interval has elapsed. Protected by the cron secret.
// @Tags Automation
// @Produce json
// @Security CronSecret
// @Success 200 {object} map[string]int "Number of contacts admitted"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid cron secret"
// @Router /automation/admit-batches [post]
func (h *AutomationHandler) AdmitBatches(c echo.Context) error {
	admitted, err := h.campaigns.AdmitDueBatches(c.Request().Context(), time.Now())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"admitted": admitted})
}
