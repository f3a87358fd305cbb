package audit

import (
	"context"

	"github.com/danielmv/leadrevive/ent"
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/pkg/logger"
)

// Event types recorded against campaigns
const (
	EventCampaignCreated   = "campaign_created"
	EventCampaignStarted   = "campaign_started"
	EventCampaignPaused    = "campaign_paused"
	EventCampaignResumed   = "campaign_resumed"
	EventCampaignCompleted = "campaign_completed"
	EventCampaignDeleted   = "campaign_deleted"
	EventBatchAdmitted     = "batch_admitted"
	EventContactReplied    = "contact_replied"
	EventContactOptedOut   = "contact_opted_out"
	EventDormantRestarted  = "dormant_restarted"
)

// Service records campaign lifecycle events for audit and reporting
type Service struct {
	db  *ent.Client
	log logger.Logger
}

// NewService creates a new audit service
func NewService(db *ent.Client, log logger.Logger) *Service {
	return &Service{db: db, log: log}
}

// Record writes a campaign event. Audit failures are logged but never
// propagated: an event write must not fail the operation it describes.
func (s *Service) Record(ctx context.Context, campaignID int, userID *int, eventType string, details map[string]interface{}) {
	create := s.db.CampaignEvent.
		Create().
		SetCampaignID(campaignID).
		SetEventType(eventType)

	if userID != nil {
		create = create.SetUserID(*userID)
	}
	if details != nil {
		create = create.SetDetails(details)
	}

	if _, err := create.Save(ctx); err != nil {
		s.log.Error("failed to record campaign event",
			"campaign_id", campaignID,
			"event_type", eventType,
			"error", err,
		)
	}
}

// ListForCampaign returns a campaign's events, newest first
func (s *Service) ListForCampaign(ctx context.Context, campaignID int, limit int) ([]*ent.CampaignEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.db.CampaignEvent.
		Query().
		Where(campaignevent.CampaignIDEQ(campaignID)).
		Order(ent.Desc(campaignevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
