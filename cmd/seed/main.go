package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/danielmv/leadrevive/config"
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
	"github.com/danielmv/leadrevive/pkg/database"
	"github.com/danielmv/leadrevive/pkg/testdata"
)

const demoEmail = "demo@leadrevive.io"

type seedCampaign struct {
	name             string
	contacts         int
	dripBatchSize    int
	dripIntervalDays int
	intervals        []int
	templates        [3]string
}

var seedCampaigns = []seedCampaign{
	{
		name:             "Spring Kitchen Remodel Revival",
		contacts:         250,
		dripBatchSize:    50,
		dripIntervalDays: 3,
		intervals:        []int{2, 5, 30},
		templates: [3]string{
			"Hi {name}, this is Mike from Apex Remodeling. You asked about a kitchen remodel a while back - still thinking about it? We have spring openings.",
			"Hey {name}, Mike again from Apex. Kitchens booked in March get free countertop upgrades. Want a fresh quote?",
			"{name}, last note from me - if the kitchen project is on hold that's totally fine. Reply YES anytime and we'll pick it back up.",
		},
	},
	{
		name:             "Solar Quote Follow-up",
		contacts:         120,
		dripBatchSize:    40,
		dripIntervalDays: 2,
		intervals:        []int{3, 7, 0},
		templates: [3]string{
			"Hi {name}, Sarah with SunPeak Solar. Your quote from last year is about to expire - panel prices dropped since then. Want updated numbers?",
			"{name}, quick heads up: the federal credit still applies this year. Happy to rerun your savings estimate, just reply HERE.",
			"Hi {name}, closing out your file at SunPeak. If solar is ever back on the table, reply and I'll reopen it. Take care!",
		},
	},
}

func main() {
	contactScale := flag.Float64("scale", 1.0, "multiplier applied to per-campaign contact counts")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	exists, err := db.Ent.User.Query().Where(user.EmailEQ(demoEmail)).Exist(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to check for demo user: %v", err)
	}
	if exists {
		log.Printf("ℹ️  Demo user %s already exists, nothing to do", demoEmail)
		return
	}

	demoUser, err := db.Ent.User.Create().
		SetEmail(demoEmail).
		SetName("Demo Contractor").
		Save(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to create demo user: %v", err)
	}
	log.Printf("✅ Created demo user %s (id=%d)", demoEmail, demoUser.ID)

	_, err = db.Ent.UserBilling.Create().
		SetUserID(demoUser.ID).
		SetPlanID("pro").
		SetStatus(userbilling.StatusActive).
		SetCreditsRemaining(500).
		SetRenewDate(time.Now().AddDate(0, 1, 0)).
		Save(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to create billing record: %v", err)
	}
	log.Printf("✅ Demo subscription active (pro, 500 credits)")

	serialOffset := 0
	for _, sc := range seedCampaigns {
		count := int(float64(sc.contacts) * *contactScale)
		if count < 1 {
			count = 1
		}

		camp, err := db.Ent.Campaign.Create().
			SetUserID(demoUser.ID).
			SetName(sc.name).
			SetDripBatchSize(sc.dripBatchSize).
			SetDripIntervalDays(sc.dripIntervalDays).
			SetMessageIntervals(sc.intervals).
			SetTotalLeads(count).
			Save(ctx)
		if err != nil {
			log.Fatalf("❌ Failed to create campaign %q: %v", sc.name, err)
		}

		for i, body := range sc.templates {
			if _, err := db.Ent.MessageTemplate.Create().
				SetCampaignID(camp.ID).
				SetSequenceNumber(i + 1).
				SetBody(body).
				Save(ctx); err != nil {
				log.Fatalf("❌ Failed to create template %d for %q: %v", i+1, sc.name, err)
			}
		}

		contacts := testdata.GenerateContacts(camp.ID, serialOffset, testdata.ContactGeneratorConfig{
			Count:     count,
			TagChance: 0.6,
		})
		if err := testdata.BulkInsertContacts(ctx, db.Ent, contacts, 100); err != nil {
			log.Fatalf("❌ Failed to insert contacts for %q: %v", sc.name, err)
		}
		serialOffset += count

		log.Printf("✅ Seeded campaign %q: %d contacts, 3 templates (draft)", sc.name, count)
	}

	log.Printf("🌱 Seed complete. Start a campaign from the dashboard or via POST /api/v1/campaigns/:id/start")
}
