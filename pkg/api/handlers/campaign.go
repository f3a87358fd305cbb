package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielmv/leadrevive/pkg/api/errors"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/models"
	"github.com/labstack/echo/v4"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	campaignService *campaign.Service
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService *campaign.Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// Create handles creating a campaign with its contacts and templates
// @Summary Create campaign
// @Description Create a drip campaign with uploaded leads and a 3-step message sequence
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body campaign.CreateCampaignRequest true "Campaign configuration with leads and templates"
// @Success 201 {object} campaign.CreateCampaignResult "Campaign created; rejected rows reported per-contact"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req campaign.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.campaignService.CreateCampaign(c.Request().Context(), userID, req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// List handles listing the user's campaigns
// @Summary List campaigns
// @Description List all campaigns owned by the authenticated user
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ent.Campaign "Campaigns newest first"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /campaigns [get]
func (h *CampaignHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	campaigns, err := h.campaignService.ListCampaigns(c.Request().Context(), userID)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, campaigns)
}

// Get handles fetching one campaign
// @Summary Get campaign
// @Description Get a single campaign owned by the authenticated user
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} ent.Campaign "Campaign"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	camp, err := h.campaignService.GetCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, camp)
}

// Stats handles fetching campaign statistics
// @Summary Get campaign statistics
// @Description Get aggregate delivery and reply statistics for a campaign
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} campaign.CampaignStats "Campaign statistics"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /campaigns/{id}/stats [get]
func (h *CampaignHandler) Stats(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	stats, err := h.campaignService.GetCampaignStats(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// Start handles activating a campaign
// @Summary Start campaign
// @Description Activate a draft or paused campaign. Requires an active subscription, remaining credits, and (for US leads) completed A2P registration; gate failures return the blocking requirement code.
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} ent.Campaign "Activated campaign"
// @Failure 402 {object} models.ErrorResponse "Requires subscription or payment"
// @Failure 403 {object} models.ErrorResponse "Requires A2P registration"
// @Failure 409 {object} models.ErrorResponse "Campaign cannot be started"
// @Router /campaigns/{id}/start [post]
func (h *CampaignHandler) Start(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	camp, err := h.campaignService.StartCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, camp)
}

// Pause handles pausing an active campaign
// @Summary Pause campaign
// @Description Pause an active campaign; pending sends are frozen in place
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} ent.Campaign "Paused campaign"
// @Failure 409 {object} models.ErrorResponse "Campaign is not active"
// @Router /campaigns/{id}/pause [post]
func (h *CampaignHandler) Pause(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	camp, err := h.campaignService.PauseCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, camp)
}

// Resume handles resuming a paused campaign
// @Summary Resume campaign
// @Description Resume a paused campaign; frozen sends become due again
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} ent.Campaign "Resumed campaign"
// @Failure 409 {object} models.ErrorResponse "Campaign is not paused"
// @Router /campaigns/{id}/resume [post]
func (h *CampaignHandler) Resume(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	camp, err := h.campaignService.ResumeCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, camp)
}

// Delete handles deleting a campaign and all its data
// @Summary Delete campaign
// @Description Delete a campaign with its contacts, templates, queue, and message log
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.SuccessResponse "Campaign deleted"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.campaignService.DeleteCampaign(c.Request().Context(), userID, campaignID); err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Campaign deleted",
	})
}
