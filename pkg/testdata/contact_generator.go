package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/danielmv/leadrevive/ent"
)

// ContactGeneratorConfig configures contact generation parameters
type ContactGeneratorConfig struct {
	Count     int
	TagChance float64 // 0.0-1.0 (probability of carrying tags)
}

// US area codes used for generated numbers. The exchange is always 555
// so nothing generated here can collide with a real subscriber.
var areaCodes = []string{
	"212", "213", "305", "312", "404", "415", "469", "512",
	"602", "615", "702", "713", "720", "786", "813", "916",
}

// Tags mimicking what CRM exports usually carry
var leadSourceTags = []string{
	"website-form", "facebook-ads", "google-ads", "referral",
	"trade-show", "cold-list", "webinar", "abandoned-quote",
}

var interestTags = []string{
	"kitchen-remodel", "bathroom-remodel", "roofing", "solar",
	"hvac", "windows", "flooring", "landscaping",
}

// GeneratePhoneNumber returns a fictional but E.164-well-formed US number.
// The serial keeps numbers unique within a seeding run.
func GeneratePhoneNumber(serial int) string {
	areaCode := areaCodes[(serial/10000)%len(areaCodes)]
	return fmt.Sprintf("+1%s555%04d", areaCode, serial%10000)
}

// GenerateContact creates a single contact with realistic data
func GenerateContact(campaignID, serial int, config ContactGeneratorConfig) *ent.ContactCreate {
	tags := []string{}
	if rand.Float64() < config.TagChance {
		tags = append(tags, leadSourceTags[rand.Intn(len(leadSourceTags))])
		if rand.Float64() < 0.5 {
			tags = append(tags, interestTags[rand.Intn(len(interestTags))])
		}
	}

	create := &ent.ContactCreate{}
	create.
		SetCampaignID(campaignID).
		SetName(gofakeit.Name()).
		SetPhoneNumber(GeneratePhoneNumber(serial))
	if len(tags) > 0 {
		create.SetTags(tags)
	}
	return create
}

// GenerateContacts creates multiple contacts for a campaign. Serials start
// at the given offset so successive calls don't repeat phone numbers.
func GenerateContacts(campaignID, serialOffset int, config ContactGeneratorConfig) []*ent.ContactCreate {
	contacts := make([]*ent.ContactCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		contacts[i] = GenerateContact(campaignID, serialOffset+i, config)
	}
	return contacts
}

// BulkInsertContacts inserts contacts in batches for performance
func BulkInsertContacts(ctx context.Context, client *ent.Client, contacts []*ent.ContactCreate, batchSize int) error {
	for i := 0; i < len(contacts); i += batchSize {
		end := i + batchSize
		if end > len(contacts) {
			end = len(contacts)
		}

		batch := contacts[i:end]
		if err := client.Contact.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
