package jobs

import (
	"context"
	"log"
	"time"

	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/dispatch"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron       *cron.Cron
	dispatcher *dispatch.Service
	campaigns  *campaign.Service
	batchLimit int
	logger     *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(dispatcher *dispatch.Service, campaigns *campaign.Service, batchLimit int, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:       cron.New(),
		dispatcher: dispatcher,
		campaigns:  campaigns,
		batchLimit: batchLimit,
		logger:     logger,
	}
}

// SetupJobs configures all scheduled jobs. dispatchSpec and admissionSpec use
// robfig/cron syntax ("@every 1m", "0 * * * *", ...).
func (cm *CronManager) SetupJobs(dispatchSpec, admissionSpec string) error {
	cm.logger.Println("Setting up cron jobs...")

	// Dispatch cycle: deliver due messages, restart dormant contacts, close
	// out drained campaigns
	_, err := cm.cron.AddFunc(dispatchSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, err := cm.dispatcher.ProcessDue(ctx, time.Now(), cm.batchLimit)
		if err != nil {
			cm.logger.Printf("❌ Dispatch cycle failed: %v", err)
			return
		}
		if result.Processed > 0 {
			cm.logger.Printf("📨 Dispatch cycle: %d processed, %d sent, %d failed, %d skipped",
				result.Processed, result.Sent, result.Failed, result.Skipped)
		}

		restarted, err := cm.dispatcher.RestartDormant(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Dormant restart failed: %v", err)
			return
		}
		if restarted > 0 {
			cm.logger.Printf("🔄 Restarted %d dormant contacts", restarted)
		}
	})
	if err != nil {
		return err
	}

	// Drip admission: feed the next batch of uncontacted leads into each
	// campaign whose interval has elapsed
	_, err = cm.cron.AddFunc(admissionSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		admitted, err := cm.campaigns.AdmitDueBatches(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Drip admission failed: %v", err)
			return
		}
		if admitted > 0 {
			cm.logger.Printf("💧 Admitted %d contacts across due campaigns", admitted)
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - %s: dispatch due messages + restart dormant contacts", dispatchSpec)
	cm.logger.Printf("  - %s: admit drip batches", admissionSpec)

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
