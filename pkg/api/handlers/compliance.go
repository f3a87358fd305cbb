package handlers

import (
	"net/http"

	"github.com/danielmv/leadrevive/pkg/api/errors"
	"github.com/danielmv/leadrevive/pkg/compliance"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RegisterCampaignRequest configures the A2P messaging campaign registration
type RegisterCampaignRequest struct {
	CampaignName string `json:"campaign_name" validate:"required"`
	UseCase      string `json:"use_case"`
}

// BuyNumberRequest selects the area code for the dedicated sending number
type BuyNumberRequest struct {
	AreaCode string `json:"area_code" validate:"omitempty,len=3,numeric"`
}

// ConnectAccountRequest carries the user's own Twilio credentials
type ConnectAccountRequest struct {
	AccountSID  string `json:"account_sid" validate:"required"`
	AuthToken   string `json:"auth_token" validate:"required"`
	PhoneNumber string `json:"phone_number"`
}

// ComplianceStatusResponse summarizes the user's sending readiness
type ComplianceStatusResponse struct {
	Status       string `json:"status"`
	BrandSid     string `json:"brand_sid,omitempty"`
	CampaignSid  string `json:"campaign_sid,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	CanMessageUS bool   `json:"can_message_us"`
}

// ComplianceHandler handles A2P 10DLC registration endpoints
type ComplianceHandler struct {
	complianceService *compliance.Service
	validator         *validator.Validate
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceService *compliance.Service) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
		validator:         validator.New(),
	}
}

// GetStatus handles returning A2P registration progress
// @Summary Get compliance status
// @Description Get the authenticated user's A2P 10DLC registration progress and US sending readiness
// @Tags Compliance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ComplianceStatusResponse "Registration status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /compliance/status [get]
func (h *ComplianceHandler) GetStatus(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}
	ctx := c.Request().Context()

	canMessage, err := h.complianceService.CanMessageUS(ctx, userID)
	if err != nil {
		return errors.InternalError(c, err)
	}

	resp := ComplianceStatusResponse{
		Status:       "unregistered",
		CanMessageUS: canMessage,
	}
	reg, err := h.complianceService.GetRegistration(ctx, userID)
	if err != nil {
		if !domain.IsNotFound(err) {
			return errors.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}

	resp.Status = string(reg.Status)
	resp.BrandSid = reg.BrandSid
	resp.CampaignSid = reg.CampaignSid
	resp.PhoneNumber = reg.PhoneNumber
	return c.JSON(http.StatusOK, resp)
}

// RegisterBrand handles A2P brand registration
// @Summary Register A2P brand
// @Description Register the user's business as an A2P 10DLC brand (step 1 of 3)
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body compliance.BrandRequest true "Business identity details"
// @Success 200 {object} ent.A2PRegistration "Brand registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /compliance/brand [post]
func (h *ComplianceHandler) RegisterBrand(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req compliance.BrandRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	reg, err := h.complianceService.RegisterBrand(c.Request().Context(), userID, req)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, reg)
}

// RegisterCampaign handles A2P messaging campaign registration
// @Summary Register A2P campaign
// @Description Register the messaging use case under the brand (step 2 of 3)
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterCampaignRequest true "Campaign use case"
// @Success 200 {object} ent.A2PRegistration "Campaign registered"
// @Failure 400 {object} models.ErrorResponse "Brand not registered yet"
// @Router /compliance/campaign [post]
func (h *ComplianceHandler) RegisterCampaign(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req RegisterCampaignRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	reg, err := h.complianceService.RegisterCampaign(c.Request().Context(), userID, req.CampaignName, req.UseCase)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, reg)
}

// BuyNumber handles purchasing the dedicated sending number
// @Summary Buy sending number
// @Description Purchase a dedicated phone number in the requested area code and assign it to the A2P campaign (step 3 of 3)
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BuyNumberRequest true "Area code preference"
// @Success 200 {object} ent.A2PRegistration "Number assigned; US sending enabled"
// @Failure 400 {object} models.ErrorResponse "Campaign not registered yet"
// @Router /compliance/number [post]
func (h *ComplianceHandler) BuyNumber(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req BuyNumberRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	reg, err := h.complianceService.BuyNumber(c.Request().Context(), userID, req.AreaCode)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, reg)
}

// ConnectAccount handles linking an existing Twilio account
// @Summary Connect existing Twilio account
// @Description Connect a user-owned Twilio account with its own registration; a verified account with a number enables US sending without the in-app A2P flow
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConnectAccountRequest true "Twilio credentials"
// @Success 200 {object} ent.TwilioAccount "Account connected"
// @Failure 400 {object} models.ErrorResponse "Invalid credentials"
// @Router /compliance/connect [post]
func (h *ComplianceHandler) ConnectAccount(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	var req ConnectAccountRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	account, err := h.complianceService.ConnectAccount(c.Request().Context(), userID, req.AccountSID, req.AuthToken, req.PhoneNumber)
	if err != nil {
		return errors.DomainError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}
