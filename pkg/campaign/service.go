package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/danielmv/leadrevive/pkg/metrics"
	"github.com/danielmv/leadrevive/pkg/phone"
)

// Defaults applied when the request leaves pacing fields unset
const (
	DefaultDripBatchSize    = 100
	DefaultDripIntervalDays = 3
)

// DefaultMessageIntervals is the default spacing in days: 1st→2nd, 2nd→3rd,
// and the dormant restart cycle.
var DefaultMessageIntervals = []int{2, 5, 30}

// SequenceLength is the fixed number of steps in a campaign sequence
const SequenceLength = 3

// StatusBySequence maps a just-sent sequence step to the contact status it
// produces.
var StatusBySequence = map[int]contact.Status{
	1: contact.StatusFirstSent,
	2: contact.StatusSecondSent,
	3: contact.StatusThirdSent,
}

// IsAbsorbing reports whether a contact status is terminal: once replied,
// opted out, or failed, a contact never receives another sequence message.
func IsAbsorbing(status contact.Status) bool {
	switch status {
	case contact.StatusReplied, contact.StatusOptedOut, contact.StatusFailed:
		return true
	}
	return false
}

// BillingGate is the billing surface consulted when starting a campaign.
type BillingGate interface {
	HasActiveSubscription(ctx context.Context, userID int) (bool, error)
	CreditsRemaining(ctx context.Context, userID int) (int, error)
}

// ComplianceGate is the compliance surface consulted when starting a campaign.
type ComplianceGate interface {
	CanMessageUS(ctx context.Context, userID int) (bool, error)
}

// ContactInput is one lead row in a campaign creation request
type ContactInput struct {
	Name  string   `json:"name" validate:"required,max=200"`
	Phone string   `json:"phone" validate:"required"`
	Tags  []string `json:"tags"`
}

// TemplateInput is one sequence step body in a campaign creation request
type TemplateInput struct {
	SequenceNumber int    `json:"sequence_number" validate:"required,min=1,max=3"`
	Body           string `json:"body" validate:"required"`
}

// CreateCampaignRequest is the payload for creating a campaign
type CreateCampaignRequest struct {
	Name             string          `json:"name" validate:"required,max=200"`
	FromNumber       string          `json:"from_number"`
	DripBatchSize    int             `json:"drip_batch_size" validate:"omitempty,min=1"`
	DripIntervalDays int             `json:"drip_interval_days" validate:"omitempty,min=1"`
	MessageIntervals []int           `json:"message_intervals"`
	Templates        []TemplateInput `json:"templates" validate:"required,dive"`
	Contacts         []ContactInput  `json:"contacts" validate:"required,min=1,dive"`
}

// RejectedContact reports a lead row dropped during import
type RejectedContact struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Reason string `json:"reason"`
}

// CreateCampaignResult is the outcome of a campaign creation
type CreateCampaignResult struct {
	Campaign *ent.Campaign     `json:"campaign"`
	Imported int               `json:"imported"`
	Rejected []RejectedContact `json:"rejected,omitempty"`
}

// CampaignStats holds aggregate statistics for a campaign
type CampaignStats struct {
	CampaignID       int            `json:"campaign_id"`
	Name             string         `json:"name"`
	Status           string         `json:"status"`
	TotalLeads       int            `json:"total_leads"`
	SentCount        int            `json:"sent_count"`
	DeliveredCount   int            `json:"delivered_count"`
	ReplyCount       int            `json:"reply_count"`
	FailedCount      int            `json:"failed_count"`
	DeliveryRate     float64        `json:"delivery_rate"`
	ReplyRate        float64        `json:"reply_rate"`
	ContactsByStatus map[string]int `json:"contacts_by_status"`
	PendingSends     int            `json:"pending_sends"`
}

// Service manages campaigns, their contact ledger, and drip admission
type Service struct {
	db         *ent.Client
	billing    BillingGate
	compliance ComplianceGate
	audit      *audit.Service
	metrics    *metrics.Metrics
	log        logger.Logger
}

// NewService creates a new campaign service
func NewService(db *ent.Client, billing BillingGate, compliance ComplianceGate, auditSvc *audit.Service, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		db:         db,
		billing:    billing,
		compliance: compliance,
		audit:      auditSvc,
		metrics:    m,
		log:        log,
	}
}

// CreateCampaign creates a campaign with its contacts and message templates
// in one transaction. Contacts with unparseable or invalid phone numbers are
// rejected per-row and reported; they never block the rest of the import.
func (s *Service) CreateCampaign(ctx context.Context, userID int, req CreateCampaignRequest) (*CreateCampaignResult, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Normalize contact phone numbers up front so total_leads only counts
	// importable rows
	var rejected []RejectedContact
	type importRow struct {
		name string
		e164 string
		tags []string
	}
	var rows []importRow
	seen := make(map[string]bool)
	for _, c := range req.Contacts {
		normalized, err := phone.Normalize(c.Phone, "US")
		if err != nil {
			rejected = append(rejected, RejectedContact{Name: c.Name, Phone: c.Phone, Reason: "unparseable phone number"})
			continue
		}
		if !normalized.IsValid {
			rejected = append(rejected, RejectedContact{Name: c.Name, Phone: c.Phone, Reason: "invalid phone number"})
			continue
		}
		if seen[normalized.E164] {
			rejected = append(rejected, RejectedContact{Name: c.Name, Phone: c.Phone, Reason: "duplicate phone number"})
			continue
		}
		seen[normalized.E164] = true
		rows = append(rows, importRow{name: c.Name, e164: normalized.E164, tags: c.Tags})
	}
	if len(rows) == 0 {
		return nil, domain.NewValidationError("no importable contacts")
	}

	camp, err := tx.Campaign.
		Create().
		SetUserID(userID).
		SetName(req.Name).
		SetFromNumber(req.FromNumber).
		SetDripBatchSize(req.DripBatchSize).
		SetDripIntervalDays(req.DripIntervalDays).
		SetMessageIntervals(req.MessageIntervals).
		SetTotalLeads(len(rows)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	templateCreates := make([]*ent.MessageTemplateCreate, 0, SequenceLength)
	for _, tpl := range req.Templates {
		templateCreates = append(templateCreates, tx.MessageTemplate.
			Create().
			SetCampaignID(camp.ID).
			SetSequenceNumber(tpl.SequenceNumber).
			SetBody(tpl.Body))
	}
	if _, err := tx.MessageTemplate.CreateBulk(templateCreates...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create templates: %w", err)
	}

	contactCreates := make([]*ent.ContactCreate, 0, len(rows))
	for _, row := range rows {
		create := tx.Contact.
			Create().
			SetCampaignID(camp.ID).
			SetName(row.name).
			SetPhoneNumber(row.e164)
		if len(row.tags) > 0 {
			create = create.SetTags(row.tags)
		}
		contactCreates = append(contactCreates, create)
	}
	if _, err := tx.Contact.CreateBulk(contactCreates...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create contacts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	s.audit.Record(ctx, camp.ID, &userID, audit.EventCampaignCreated, map[string]interface{}{
		"imported": len(rows),
		"rejected": len(rejected),
	})
	s.log.Info("campaign created", "campaign_id", camp.ID, "user_id", userID, "imported", len(rows))

	return &CreateCampaignResult{
		Campaign: camp,
		Imported: len(rows),
		Rejected: rejected,
	}, nil
}

// validateRequest applies defaults and checks the sequence structure
func validateRequest(req *CreateCampaignRequest) error {
	if req.DripBatchSize == 0 {
		req.DripBatchSize = DefaultDripBatchSize
	}
	if req.DripBatchSize < 1 {
		return domain.NewValidationError("drip_batch_size must be positive")
	}
	if req.DripIntervalDays == 0 {
		req.DripIntervalDays = DefaultDripIntervalDays
	}
	if req.DripIntervalDays < 1 {
		return domain.NewValidationError("drip_interval_days must be positive")
	}
	if len(req.MessageIntervals) == 0 {
		req.MessageIntervals = append([]int(nil), DefaultMessageIntervals...)
	}
	if len(req.MessageIntervals) != SequenceLength {
		return domain.NewValidationError("message_intervals must have exactly 3 entries")
	}
	for _, d := range req.MessageIntervals {
		if d < 0 {
			return domain.NewValidationError("message_intervals entries must be non-negative")
		}
	}

	if len(req.Templates) != SequenceLength {
		return domain.NewValidationError("exactly 3 message templates are required")
	}
	steps := make(map[int]bool)
	for _, tpl := range req.Templates {
		if tpl.SequenceNumber < 1 || tpl.SequenceNumber > SequenceLength {
			return domain.NewValidationError("template sequence_number must be 1, 2, or 3")
		}
		if steps[tpl.SequenceNumber] {
			return domain.NewValidationError(fmt.Sprintf("duplicate template for step %d", tpl.SequenceNumber))
		}
		if tpl.Body == "" {
			return domain.NewValidationError(fmt.Sprintf("template body for step %d is empty", tpl.SequenceNumber))
		}
		steps[tpl.SequenceNumber] = true
	}
	return nil
}

// GetCampaign returns a campaign owned by the user
func (s *Service) GetCampaign(ctx context.Context, userID, campaignID int) (*ent.Campaign, error) {
	camp, err := s.db.Campaign.
		Query().
		Where(
			entcampaign.IDEQ(campaignID),
			entcampaign.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("campaign")
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return camp, nil
}

// ListCampaigns returns the user's campaigns, newest first
func (s *Service) ListCampaigns(ctx context.Context, userID int) ([]*ent.Campaign, error) {
	return s.db.Campaign.
		Query().
		Where(entcampaign.UserIDEQ(userID)).
		Order(ent.Desc(entcampaign.FieldCreatedAt)).
		All(ctx)
}

// GetCampaignStats returns aggregate statistics for a campaign
func (s *Service) GetCampaignStats(ctx context.Context, userID, campaignID int) (*CampaignStats, error) {
	camp, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.db.Contact.
		Query().
		Where(contact.CampaignIDEQ(campaignID)).
		GroupBy(contact.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &statusCounts)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	byStatus := make(map[string]int, len(statusCounts))
	for _, sc := range statusCounts {
		byStatus[sc.Status] = sc.Count
	}

	pending, err := s.db.ScheduledSend.
		Query().
		Where(
			scheduledsend.CampaignIDEQ(campaignID),
			scheduledsend.StatusEQ(scheduledsend.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending sends: %w", err)
	}

	deliveryRate := 0.0
	if camp.SentCount > 0 {
		deliveryRate = float64(camp.DeliveredCount) / float64(camp.SentCount) * 100
	}
	replyRate := 0.0
	if camp.TotalLeads > 0 {
		replyRate = float64(camp.ReplyCount) / float64(camp.TotalLeads) * 100
	}

	return &CampaignStats{
		CampaignID:       camp.ID,
		Name:             camp.Name,
		Status:           string(camp.Status),
		TotalLeads:       camp.TotalLeads,
		SentCount:        camp.SentCount,
		DeliveredCount:   camp.DeliveredCount,
		ReplyCount:       camp.ReplyCount,
		FailedCount:      camp.FailedCount,
		DeliveryRate:     deliveryRate,
		ReplyRate:        replyRate,
		ContactsByStatus: byStatus,
		PendingSends:     pending,
	}, nil
}

// DeleteCampaign removes a campaign and everything attached to it
func (s *Service) DeleteCampaign(ctx context.Context, userID, campaignID int) error {
	if _, err := s.GetCampaign(ctx, userID, campaignID); err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ScheduledSend.Delete().Where(scheduledsend.CampaignIDEQ(campaignID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scheduled sends: %w", err)
	}
	if _, err := tx.SMSMessage.Delete().Where(smsmessage.CampaignIDEQ(campaignID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if _, err := tx.CampaignEvent.Delete().Where(campaignevent.CampaignIDEQ(campaignID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	if _, err := tx.MessageTemplate.Delete().Where(messagetemplate.CampaignIDEQ(campaignID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete templates: %w", err)
	}
	if _, err := tx.Contact.Delete().Where(contact.CampaignIDEQ(campaignID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete contacts: %w", err)
	}
	if err := tx.Campaign.DeleteOneID(campaignID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.log.Info("campaign deleted", "campaign_id", campaignID, "user_id", userID)
	return nil
}

// StartCampaign activates a draft campaign after passing the billing and
// compliance gates, then admits the first drip batch
func (s *Service) StartCampaign(ctx context.Context, userID, campaignID int) (*ent.Campaign, error) {
	camp, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if camp.Status == entcampaign.StatusActive {
		return nil, domain.NewConflictError("campaign is already active")
	}
	if camp.Status == entcampaign.StatusCompleted {
		return nil, domain.NewConflictError("campaign has completed")
	}

	// Subscription gate
	active, err := s.billing.HasActiveSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domain.NewRequiresSubscriptionError()
	}

	// Credit gate
	credits, err := s.billing.CreditsRemaining(ctx, userID)
	if err != nil {
		return nil, err
	}
	if credits <= 0 {
		return nil, domain.NewRequiresPaymentError()
	}

	// A2P gate, only when the campaign targets US numbers
	hasUS, err := s.db.Contact.
		Query().
		Where(
			contact.CampaignIDEQ(campaignID),
			contact.PhoneNumberHasPrefix("+1"),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check contacts: %w", err)
	}
	if hasUS {
		allowed, err := s.compliance.CanMessageUS(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, domain.NewRequiresA2PError()
		}
	}

	camp, err = camp.Update().
		SetStatus(entcampaign.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate campaign: %w", err)
	}

	admitted, err := s.AdmitContacts(ctx, campaignID, camp.DripBatchSize)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, campaignID, &userID, audit.EventCampaignStarted, map[string]interface{}{
		"admitted": admitted,
	})
	s.log.Info("campaign started", "campaign_id", campaignID, "admitted", admitted)

	return camp, nil
}

// PauseCampaign pauses an active campaign. Pending sends are preserved and
// simply stop being selected until the campaign resumes.
func (s *Service) PauseCampaign(ctx context.Context, userID, campaignID int) (*ent.Campaign, error) {
	camp, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if camp.Status != entcampaign.StatusActive {
		return nil, domain.NewConflictError("only active campaigns can be paused")
	}

	camp, err = camp.Update().
		SetStatus(entcampaign.StatusPaused).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause campaign: %w", err)
	}

	s.audit.Record(ctx, campaignID, &userID, audit.EventCampaignPaused, nil)
	s.log.Info("campaign paused", "campaign_id", campaignID)
	return camp, nil
}

// ResumeCampaign reactivates a paused campaign. Overdue sends fire on the
// next dispatch cycle; nothing is rescheduled.
func (s *Service) ResumeCampaign(ctx context.Context, userID, campaignID int) (*ent.Campaign, error) {
	camp, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if camp.Status != entcampaign.StatusPaused {
		return nil, domain.NewConflictError("only paused campaigns can be resumed")
	}

	camp, err = camp.Update().
		SetStatus(entcampaign.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume campaign: %w", err)
	}

	s.audit.Record(ctx, campaignID, &userID, audit.EventCampaignResumed, nil)
	s.log.Info("campaign resumed", "campaign_id", campaignID)
	return camp, nil
}

// AdmitContacts moves up to limit uncontacted contacts into the sequence:
// each becomes queued with a step-1 send scheduled immediately. Stamps
// last_batch_admitted_at so the drip pacing job knows when the next batch
// is due. Returns the number admitted.
func (s *Service) AdmitContacts(ctx context.Context, campaignID, limit int) (int, error) {
	camp, err := s.db.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, domain.NewNotFoundError("campaign")
		}
		return 0, fmt.Errorf("failed to get campaign: %w", err)
	}
	if camp.Status != entcampaign.StatusActive {
		return 0, domain.NewConflictError("campaign is not active")
	}
	if limit <= 0 {
		limit = camp.DripBatchSize
	}

	candidates, err := s.db.Contact.
		Query().
		Where(
			contact.CampaignIDEQ(campaignID),
			contact.StatusEQ(contact.StatusUncontacted),
		).
		Order(ent.Asc(contact.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query contacts: %w", err)
	}

	now := time.Now()
	admitted := 0
	for _, c := range candidates {
		tx, err := s.db.Tx(ctx)
		if err != nil {
			return admitted, fmt.Errorf("failed to begin transaction: %w", err)
		}

		// Guard against concurrent admission: only flip rows still uncontacted
		n, err := tx.Contact.
			Update().
			Where(
				contact.IDEQ(c.ID),
				contact.StatusEQ(contact.StatusUncontacted),
			).
			SetStatus(contact.StatusQueued).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return admitted, fmt.Errorf("failed to queue contact: %w", err)
		}
		if n == 0 {
			tx.Rollback()
			continue
		}

		_, err = tx.ScheduledSend.
			Create().
			SetCampaignID(campaignID).
			SetContactID(c.ID).
			SetSequenceNumber(1).
			SetScheduledFor(now).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return admitted, fmt.Errorf("failed to schedule first message: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return admitted, fmt.Errorf("failed to commit: %w", err)
		}
		admitted++
	}

	if admitted > 0 {
		_, err = s.db.Campaign.
			UpdateOneID(campaignID).
			SetLastBatchAdmittedAt(now).
			Save(ctx)
		if err != nil {
			return admitted, fmt.Errorf("failed to stamp batch admission: %w", err)
		}
		if s.metrics != nil {
			s.metrics.ContactsAdmitted.Add(float64(admitted))
		}
	}

	return admitted, nil
}

// AdmitDueBatches runs one drip admission sweep: every active campaign whose
// drip interval has elapsed since its last batch (or that never admitted one)
// gets its next batch of uncontacted contacts. Returns the total admitted
// across all campaigns.
func (s *Service) AdmitDueBatches(ctx context.Context, now time.Time) (int, error) {
	campaigns, err := s.db.Campaign.
		Query().
		Where(
			entcampaign.StatusEQ(entcampaign.StatusActive),
			entcampaign.HasContactsWith(contact.StatusEQ(contact.StatusUncontacted)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query campaigns: %w", err)
	}

	total := 0
	for _, camp := range campaigns {
		if camp.LastBatchAdmittedAt != nil {
			due := camp.LastBatchAdmittedAt.AddDate(0, 0, camp.DripIntervalDays)
			if now.Before(due) {
				continue
			}
		}

		admitted, err := s.AdmitContacts(ctx, camp.ID, camp.DripBatchSize)
		if err != nil {
			s.log.Error("batch admission failed", "campaign_id", camp.ID, "error", err)
			continue
		}
		if admitted > 0 {
			s.audit.Record(ctx, camp.ID, nil, audit.EventBatchAdmitted, map[string]interface{}{
				"admitted": admitted,
			})
			s.log.Info("drip batch admitted", "campaign_id", camp.ID, "admitted", admitted)
		}
		total += admitted
	}

	return total, nil
}

// MarkResponded transitions a contact to replied. Idempotent: returns true
// only on the first transition, so the caller can increment reply_count
// exactly once. All pending sends for the contact are canceled.
func (s *Service) MarkResponded(ctx context.Context, contactID int) (bool, error) {
	return s.markAbsorbing(ctx, contactID, contact.StatusReplied)
}

// MarkOptedOut transitions a contact to opted_out (STOP keyword or manual)
func (s *Service) MarkOptedOut(ctx context.Context, contactID int) (bool, error) {
	return s.markAbsorbing(ctx, contactID, contact.StatusOptedOut)
}

// MarkFailed transitions a contact to failed (unreachable number)
func (s *Service) MarkFailed(ctx context.Context, contactID int) (bool, error) {
	return s.markAbsorbing(ctx, contactID, contact.StatusFailed)
}

func (s *Service) markAbsorbing(ctx context.Context, contactID int, status contact.Status) (bool, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Only transition contacts that are not already terminal
	update := tx.Contact.
		Update().
		Where(
			contact.IDEQ(contactID),
			contact.StatusNotIn(
				contact.StatusReplied,
				contact.StatusOptedOut,
				contact.StatusFailed,
			),
		).
		SetStatus(status)
	if status == contact.StatusReplied || status == contact.StatusOptedOut {
		update = update.SetRespondedAt(time.Now())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update contact: %w", err)
	}

	// Cancel pending sends regardless: an absorbing contact must never have
	// a live queue entry
	_, err = tx.ScheduledSend.
		Update().
		Where(
			scheduledsend.ContactIDEQ(contactID),
			scheduledsend.StatusEQ(scheduledsend.StatusPending),
		).
		SetStatus(scheduledsend.StatusCanceled).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to cancel pending sends: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}

	return n > 0, nil
}

// GetTemplate returns the template for one sequence step of a campaign
func (s *Service) GetTemplate(ctx context.Context, campaignID, step int) (*ent.MessageTemplate, error) {
	tpl, err := s.db.MessageTemplate.
		Query().
		Where(
			messagetemplate.CampaignIDEQ(campaignID),
			messagetemplate.SequenceNumberEQ(step),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("template for step %d", step))
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tpl, nil
}

// IntervalDays returns the configured wait after the given step: index 0 is
// the wait between steps 1 and 2, index 2 is the dormant restart cycle.
func IntervalDays(camp *ent.Campaign, afterStep int) int {
	if afterStep < 1 || afterStep > len(camp.MessageIntervals) {
		return 0
	}
	return camp.MessageIntervals[afterStep-1]
}

// MaybeComplete marks an active campaign completed once nothing remains to
// send: no admissible contacts and no live queue entries.
func (s *Service) MaybeComplete(ctx context.Context, campaignID int) (bool, error) {
	camp, err := s.db.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, domain.NewNotFoundError("campaign")
		}
		return false, fmt.Errorf("failed to get campaign: %w", err)
	}
	if camp.Status != entcampaign.StatusActive {
		return false, nil
	}

	remaining, err := s.db.Contact.
		Query().
		Where(
			contact.CampaignIDEQ(campaignID),
			contact.StatusIn(contact.StatusUncontacted, contact.StatusQueued),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check contacts: %w", err)
	}
	if remaining {
		return false, nil
	}

	live, err := s.db.ScheduledSend.
		Query().
		Where(
			scheduledsend.CampaignIDEQ(campaignID),
			scheduledsend.StatusIn(scheduledsend.StatusPending, scheduledsend.StatusProcessing),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check sends: %w", err)
	}
	if live {
		return false, nil
	}

	// Restart cycle keeps 3rd_sent contacts eligible; a campaign with a
	// restart interval never self-completes
	if IntervalDays(camp, 3) > 0 {
		dormant, err := s.db.Contact.
			Query().
			Where(
				contact.CampaignIDEQ(campaignID),
				contact.StatusEQ(contact.StatusThirdSent),
			).
			Exist(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check dormant contacts: %w", err)
		}
		if dormant {
			return false, nil
		}
	}

	_, err = camp.Update().
		SetStatus(entcampaign.StatusCompleted).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to complete campaign: %w", err)
	}

	s.audit.Record(ctx, campaignID, nil, audit.EventCampaignCompleted, nil)
	s.log.Info("campaign completed", "campaign_id", campaignID)
	return true, nil
}
