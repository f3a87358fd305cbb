package compliance

import (
	"context"
	"fmt"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/danielmv/leadrevive/pkg/twilio"
)

// TwilioAPI is the subset of the Twilio client used for A2P registration.
type TwilioAPI interface {
	CreateSubaccount(ctx context.Context, friendlyName string) (*twilio.Subaccount, error)
	RegisterBrand(ctx context.Context, params twilio.BrandParams) (*twilio.BrandRegistration, error)
	RegisterA2PCampaign(ctx context.Context, params twilio.A2PCampaignParams) (*twilio.A2PCampaign, error)
	SearchAvailableNumbers(ctx context.Context, areaCode string, limit int) ([]string, error)
	PurchaseNumber(ctx context.Context, phoneNumber, smsWebhookURL string) (*twilio.IncomingPhoneNumber, error)
}

// CredentialVerifier checks user-supplied Twilio credentials against the API
// and, when they are valid, returns the phone numbers provisioned on that
// account so a sending number can be discovered without the user typing it.
type CredentialVerifier func(ctx context.Context, accountSID, authToken string) (bool, []string, error)

// BrandRequest holds the business identity for A2P brand registration
type BrandRequest struct {
	CompanyName  string `json:"company_name" validate:"required"`
	EIN          string `json:"ein" validate:"required"`
	Vertical     string `json:"vertical" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

// Service handles A2P 10DLC registration and connected Twilio accounts
type Service struct {
	db         *ent.Client
	api        TwilioAPI
	verify     CredentialVerifier
	webhookURL string
	log        logger.Logger
}

// NewService creates a new compliance service
func NewService(db *ent.Client, api TwilioAPI, verify CredentialVerifier, webhookURL string, log logger.Logger) *Service {
	return &Service{
		db:         db,
		api:        api,
		verify:     verify,
		webhookURL: webhookURL,
		log:        log,
	}
}

// GetRegistration returns the user's A2P registration row
func (s *Service) GetRegistration(ctx context.Context, userID int) (*ent.A2PRegistration, error) {
	reg, err := s.db.A2PRegistration.
		Query().
		Where(a2pregistration.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("a2p registration")
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return reg, nil
}

// RegisterBrand creates a Twilio subaccount, submits the brand registration,
// and records both. Re-running replaces the previous registration data.
func (s *Service) RegisterBrand(ctx context.Context, userID int, req BrandRequest) (*ent.A2PRegistration, error) {
	sub, err := s.api.CreateSubaccount(ctx, fmt.Sprintf("%s Subaccount", req.CompanyName))
	if err != nil {
		return nil, fmt.Errorf("failed to create subaccount: %w", err)
	}

	brand, err := s.api.RegisterBrand(ctx, twilio.BrandParams{
		CompanyName:  req.CompanyName,
		EIN:          req.EIN,
		Vertical:     req.Vertical,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register brand: %w", err)
	}

	s.log.Info("a2p brand registered",
		"user_id", userID,
		"subaccount_sid", sub.SID,
		"brand_sid", brand.SID,
	)

	// Upsert registration keyed by owner
	existing, err := s.db.A2PRegistration.
		Query().
		Where(a2pregistration.UserIDEQ(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query registration: %w", err)
	}

	var reg *ent.A2PRegistration
	if existing != nil {
		reg, err = existing.Update().
			SetStatus(a2pregistration.StatusBrandRegistered).
			SetCompanyName(req.CompanyName).
			SetEin(req.EIN).
			SetVertical(req.Vertical).
			SetContactName(req.ContactName).
			SetContactEmail(req.ContactEmail).
			SetSubaccountSid(sub.SID).
			SetBrandSid(brand.SID).
			Save(ctx)
	} else {
		reg, err = s.db.A2PRegistration.
			Create().
			SetUserID(userID).
			SetStatus(a2pregistration.StatusBrandRegistered).
			SetCompanyName(req.CompanyName).
			SetEin(req.EIN).
			SetVertical(req.Vertical).
			SetContactName(req.ContactName).
			SetContactEmail(req.ContactEmail).
			SetSubaccountSid(sub.SID).
			SetBrandSid(brand.SID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	// Keep the subaccount credentials so the number purchase and sending
	// paths can authenticate as the customer
	if err := s.upsertAccount(ctx, userID, sub.SID, sub.AuthToken, "", true); err != nil {
		return nil, err
	}

	return reg, nil
}

// RegisterCampaign submits the A2P campaign under the user's registered brand
func (s *Service) RegisterCampaign(ctx context.Context, userID int, campaignName, useCase string) (*ent.A2PRegistration, error) {
	reg, err := s.GetRegistration(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("no brand registration found; register brand first")
		}
		return nil, err
	}
	if reg.BrandSid == "" {
		return nil, domain.NewValidationError("brand not registered yet")
	}

	campaign, err := s.api.RegisterA2PCampaign(ctx, twilio.A2PCampaignParams{
		BrandSID:     reg.BrandSid,
		CampaignName: campaignName,
		UseCase:      useCase,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register campaign: %w", err)
	}

	s.log.Info("a2p campaign registered", "user_id", userID, "campaign_sid", campaign.SID)

	reg, err = reg.Update().
		SetStatus(a2pregistration.StatusCampaignRegistered).
		SetCampaignSid(campaign.SID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}
	return reg, nil
}

// BuyNumber searches for an SMS-capable number in the area code, purchases it,
// points its webhook at our inbound endpoint, and completes the registration
func (s *Service) BuyNumber(ctx context.Context, userID int, areaCode string) (*ent.A2PRegistration, error) {
	if areaCode == "" {
		areaCode = "402"
	}

	reg, err := s.GetRegistration(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("no A2P registration found")
		}
		return nil, err
	}
	if reg.CampaignSid == "" {
		return nil, domain.NewValidationError("campaign not registered; register campaign first")
	}

	numbers, err := s.api.SearchAvailableNumbers(ctx, areaCode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to search numbers: %w", err)
	}
	if len(numbers) == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("available number in area code %s", areaCode))
	}

	purchased, err := s.api.PurchaseNumber(ctx, numbers[0], s.webhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase number: %w", err)
	}

	s.log.Info("phone number purchased", "user_id", userID, "phone_number", purchased.PhoneNumber)

	reg, err = reg.Update().
		SetStatus(a2pregistration.StatusNumberAssigned).
		SetPhoneNumber(purchased.PhoneNumber).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	// Record the number on the stored account so the sending path can use it
	_, err = s.db.TwilioAccount.
		Update().
		Where(twilioaccount.UserIDEQ(userID)).
		SetPhoneNumber(purchased.PhoneNumber).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update account number: %w", err)
	}

	return reg, nil
}

// ConnectAccount verifies and stores a manually connected Twilio account.
// This is the legacy sending path for users bringing their own number. When
// no number is supplied, the first one provisioned on the account is used.
func (s *Service) ConnectAccount(ctx context.Context, userID int, accountSID, authToken, phoneNumber string) (*ent.TwilioAccount, error) {
	if accountSID == "" || authToken == "" {
		return nil, domain.NewValidationError("account_sid and auth_token are required")
	}

	verified, numbers, err := s.verify(ctx, accountSID, authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !verified {
		return nil, domain.NewValidationError("invalid Twilio credentials")
	}

	if phoneNumber == "" && len(numbers) > 0 {
		phoneNumber = numbers[0]
		s.log.Info("sending number discovered from account",
			"user_id", userID, "phone_number", phoneNumber)
	}

	if err := s.upsertAccount(ctx, userID, accountSID, authToken, phoneNumber, true); err != nil {
		return nil, err
	}

	s.log.Info("twilio account connected", "user_id", userID, "account_sid", accountSID)

	return s.db.TwilioAccount.
		Query().
		Where(twilioaccount.UserIDEQ(userID)).
		Only(ctx)
}

// Ready reports whether the user's A2P registration has an assigned number
func (s *Service) Ready(ctx context.Context, userID int) (bool, error) {
	exists, err := s.db.A2PRegistration.
		Query().
		Where(
			a2pregistration.UserIDEQ(userID),
			a2pregistration.StatusEQ(a2pregistration.StatusNumberAssigned),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return exists, nil
}

// CanMessageUS reports whether the user may send to US numbers: either a
// completed A2P registration or a verified connected account with a number
func (s *Service) CanMessageUS(ctx context.Context, userID int) (bool, error) {
	ready, err := s.Ready(ctx, userID)
	if err != nil {
		return false, err
	}
	if ready {
		return true, nil
	}

	legacy, err := s.db.TwilioAccount.
		Query().
		Where(
			twilioaccount.UserIDEQ(userID),
			twilioaccount.IsVerifiedEQ(true),
			twilioaccount.PhoneNumberNEQ(""),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check connected account: %w", err)
	}
	return legacy, nil
}

// upsertAccount creates or replaces the user's stored Twilio credentials
func (s *Service) upsertAccount(ctx context.Context, userID int, accountSID, authToken, phoneNumber string, verified bool) error {
	existing, err := s.db.TwilioAccount.
		Query().
		Where(twilioaccount.UserIDEQ(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query account: %w", err)
	}

	if existing != nil {
		update := existing.Update().
			SetAccountSid(accountSID).
			SetAuthToken(authToken).
			SetIsVerified(verified)
		if phoneNumber != "" {
			update = update.SetPhoneNumber(phoneNumber)
		}
		if _, err := update.Save(ctx); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}
		return nil
	}

	create := s.db.TwilioAccount.
		Create().
		SetUserID(userID).
		SetAccountSid(accountSID).
		SetAuthToken(authToken).
		SetIsVerified(verified)
	if phoneNumber != "" {
		create = create.SetPhoneNumber(phoneNumber)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}
