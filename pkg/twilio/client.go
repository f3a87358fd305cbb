package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL       = "https://api.twilio.com"
	defaultMessagingBaseURL = "https://messaging.twilio.com"
)

// Client is a thin REST client for the Twilio API. Credentials may belong to
// the primary account or to a customer subaccount.
type Client struct {
	accountSID       string
	authToken        string
	apiBaseURL       string
	messagingBaseURL string
	httpClient       *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the Twilio API endpoints. Used by tests to point the
// client at an httptest server.
func WithBaseURLs(apiBaseURL, messagingBaseURL string) Option {
	return func(c *Client) {
		c.apiBaseURL = strings.TrimSuffix(apiBaseURL, "/")
		c.messagingBaseURL = strings.TrimSuffix(messagingBaseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Twilio client for the given credentials
func NewClient(accountSID, authToken string, opts ...Option) *Client {
	c := &Client{
		accountSID:       accountSID,
		authToken:        authToken,
		apiBaseURL:       defaultAPIBaseURL,
		messagingBaseURL: defaultMessagingBaseURL,
		httpClient:       &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from Twilio
type APIError struct {
	StatusCode int
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twilio: %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// Message is the Twilio representation of an SMS resource
type Message struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	To           string `json:"to"`
	From         string `json:"from"`
	Body         string `json:"body"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// Subaccount is a Twilio subaccount resource
type Subaccount struct {
	SID          string `json:"sid"`
	AuthToken    string `json:"auth_token"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
}

// BrandRegistration is an A2P 10DLC brand resource
type BrandRegistration struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// A2PCampaign is an A2P 10DLC campaign resource
type A2PCampaign struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// IncomingPhoneNumber is a provisioned phone number resource
type IncomingPhoneNumber struct {
	SID         string `json:"sid"`
	PhoneNumber string `json:"phone_number"`
}

// BrandParams holds the business identity submitted for brand registration
type BrandParams struct {
	CompanyName  string
	EIN          string
	Vertical     string
	ContactName  string
	ContactEmail string
}

// A2PCampaignParams holds the messaging use case submitted for campaign registration
type A2PCampaignParams struct {
	BrandSID     string
	CampaignName string
	UseCase      string
}

func (c *Client) do(ctx context.Context, method, rawURL string, form url.Values, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// SendMessage sends an SMS and returns the created message resource
func (c *Client) SendMessage(ctx context.Context, to, from, body string) (*Message, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.apiBaseURL, c.accountSID)
	form := url.Values{
		"To":   {to},
		"From": {from},
		"Body": {body},
	}

	var msg Message
	if err := c.do(ctx, http.MethodPost, endpoint, form, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// VerifyCredentials checks that the account SID and auth token are valid
func (c *Client) VerifyCredentials(ctx context.Context) (bool, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s.json", c.apiBaseURL, c.accountSID)

	err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateSubaccount provisions a subaccount for a customer
func (c *Client) CreateSubaccount(ctx context.Context, friendlyName string) (*Subaccount, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts.json", c.apiBaseURL)
	form := url.Values{"FriendlyName": {friendlyName}}

	var sub Subaccount
	if err := c.do(ctx, http.MethodPost, endpoint, form, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// RegisterBrand submits an A2P 10DLC brand registration
func (c *Client) RegisterBrand(ctx context.Context, params BrandParams) (*BrandRegistration, error) {
	endpoint := fmt.Sprintf("%s/v1/a2p/BrandRegistrations", c.messagingBaseURL)

	firstName := params.ContactName
	lastName := ""
	if idx := strings.Index(params.ContactName, " "); idx > 0 {
		firstName = params.ContactName[:idx]
		lastName = params.ContactName[idx+1:]
	}

	form := url.Values{
		"CustomerProfileBundleSid": {"auto"},
		"A2PProfileBundleSid":      {"auto"},
		"BrandType":                {"STANDARD"},
		"CompanyName":              {params.CompanyName},
		"Ein":                      {params.EIN},
		"Vertical":                 {params.Vertical},
		"Email":                    {params.ContactEmail},
		"FirstName":                {firstName},
		"LastName":                 {lastName},
	}

	var brand BrandRegistration
	if err := c.do(ctx, http.MethodPost, endpoint, form, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// RegisterA2PCampaign submits an A2P 10DLC campaign under a registered brand
func (c *Client) RegisterA2PCampaign(ctx context.Context, params A2PCampaignParams) (*A2PCampaign, error) {
	endpoint := fmt.Sprintf("%s/v1/a2p/Campaigns", c.messagingBaseURL)

	samples, _ := json.Marshal([]string{
		"Hi [Name], this is [Agent] from [Company]. We wanted to reconnect about your interest in [Service]. Are you still looking?",
		"Thanks for your interest! Would you like to schedule a quick call to discuss your needs?",
	})

	form := url.Values{
		"BrandRegistrationSid": {params.BrandSID},
		"CampaignUseCase":      {params.UseCase},
		"Description":          {fmt.Sprintf("%s - Lead reactivation campaign", params.CampaignName)},
		"MessageFlow":          {"Outbound SMS for lead reactivation and appointment booking"},
		"MessageSamples":       {string(samples)},
		"UsAppToPersonUsecase": {params.UseCase},
	}

	var campaign A2PCampaign
	if err := c.do(ctx, http.MethodPost, endpoint, form, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// SearchAvailableNumbers finds SMS-capable US local numbers in an area code
func (c *Client) SearchAvailableNumbers(ctx context.Context, areaCode string, limit int) ([]string, error) {
	endpoint := fmt.Sprintf(
		"%s/2010-04-01/Accounts/%s/AvailablePhoneNumbers/US/Local.json?AreaCode=%s&SmsEnabled=true&Limit=%d",
		c.apiBaseURL, c.accountSID, url.QueryEscape(areaCode), limit,
	)

	var result struct {
		AvailablePhoneNumbers []struct {
			PhoneNumber string `json:"phone_number"`
		} `json:"available_phone_numbers"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(result.AvailablePhoneNumbers))
	for _, n := range result.AvailablePhoneNumbers {
		numbers = append(numbers, n.PhoneNumber)
	}
	return numbers, nil
}

// PurchaseNumber buys a phone number and points its SMS webhook at our API
func (c *Client) PurchaseNumber(ctx context.Context, phoneNumber, smsWebhookURL string) (*IncomingPhoneNumber, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/IncomingPhoneNumbers.json", c.apiBaseURL, c.accountSID)
	form := url.Values{
		"PhoneNumber": {phoneNumber},
		"SmsUrl":      {smsWebhookURL},
	}

	var number IncomingPhoneNumber
	if err := c.do(ctx, http.MethodPost, endpoint, form, &number); err != nil {
		return nil, err
	}
	return &number, nil
}

// ListIncomingNumbers returns the phone numbers provisioned on the account
func (c *Client) ListIncomingNumbers(ctx context.Context) ([]IncomingPhoneNumber, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/IncomingPhoneNumbers.json", c.apiBaseURL, c.accountSID)

	var result struct {
		IncomingPhoneNumbers []IncomingPhoneNumber `json:"incoming_phone_numbers"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result.IncomingPhoneNumbers, nil
}
