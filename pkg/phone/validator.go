package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalized holds the result of parsing and validating a lead phone number.
type Normalized struct {
	E164        string `json:"e164"`
	CountryCode string `json:"country_code"`
	IsValid     bool   `json:"is_valid"`
}

// Normalize parses a raw phone number and returns its E.164 form. Numbers
// without an explicit country prefix are parsed against defaultRegion
// (falls back to US, matching the product's market).
func Normalize(raw, defaultRegion string) (*Normalized, error) {
	if raw == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}

	if defaultRegion == "" {
		defaultRegion = "US"
	}

	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	return &Normalized{
		E164:        phonenumbers.Format(parsed, phonenumbers.E164),
		CountryCode: phonenumbers.GetRegionCodeForNumber(parsed),
		IsValid:     phonenumbers.IsValidNumber(parsed),
	}, nil
}

// IsUSNumber reports whether an E.164 number belongs to the US region.
// US destinations require a completed A2P 10DLC registration before sending.
func IsUSNumber(e164 string) bool {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return false
	}
	return phonenumbers.GetRegionCodeForNumber(parsed) == "US"
}
