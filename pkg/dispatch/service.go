package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/compliance"
	"github.com/danielmv/leadrevive/pkg/domain"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/danielmv/leadrevive/pkg/metrics"
	"github.com/danielmv/leadrevive/pkg/phone"
)

// DefaultSendTimeout bounds a single provider call. A timeout counts as a
// delivery failure.
const DefaultSendTimeout = 10 * time.Second

// SendResult holds the provider's response for a sent message
type SendResult struct {
	SID    string
	Status string
}

// Provider delivers SMS messages (Twilio in production, fakes in tests).
type Provider interface {
	SendSMS(ctx context.Context, to, from, body string) (*SendResult, error)
}

// CreditLedger is the billing surface the dispatcher consumes credits through.
type CreditLedger interface {
	ReserveCredit(ctx context.Context, userID int) error
	RefundCredit(ctx context.Context, userID int) error
}

// ComplianceGate re-checks US sending permission at dispatch time.
type ComplianceGate interface {
	CanMessageUS(ctx context.Context, userID int) (bool, error)
}

// Result summarizes one dispatch cycle
type Result struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Canceled  int `json:"canceled"`
	Restarted int `json:"restarted"`
}

// Service selects due scheduled sends and delivers them
type Service struct {
	db          *ent.Client
	campaigns   *campaign.Service
	ledger      CreditLedger
	gate        ComplianceGate
	numbers     compliance.NumberSource
	provider    Provider
	sendTimeout time.Duration
	metrics     *metrics.Metrics
	log         logger.Logger
}

// NewService creates a new dispatch service
func NewService(
	db *ent.Client,
	campaigns *campaign.Service,
	ledger CreditLedger,
	gate ComplianceGate,
	numbers compliance.NumberSource,
	provider Provider,
	m *metrics.Metrics,
	log logger.Logger,
) *Service {
	return &Service{
		db:          db,
		campaigns:   campaigns,
		ledger:      ledger,
		gate:        gate,
		numbers:     numbers,
		provider:    provider,
		sendTimeout: DefaultSendTimeout,
		metrics:     m,
		log:         log,
	}
}

// SetSendTimeout overrides the per-send provider timeout
func (s *Service) SetSendTimeout(d time.Duration) {
	s.sendTimeout = d
}

// SelectDue returns pending sends that are due at now, belong to an active
// campaign, and target a contact that can still receive messages
func (s *Service) SelectDue(ctx context.Context, now time.Time, limit int) ([]*ent.ScheduledSend, error) {
	query := s.db.ScheduledSend.
		Query().
		Where(
			scheduledsend.StatusEQ(scheduledsend.StatusPending),
			scheduledsend.ScheduledForLTE(now),
			scheduledsend.HasCampaignWith(entcampaign.StatusEQ(entcampaign.StatusActive)),
			scheduledsend.HasContactWith(contact.StatusNotIn(
				contact.StatusReplied,
				contact.StatusOptedOut,
				contact.StatusFailed,
			)),
		).
		WithCampaign().
		WithContact().
		Order(ent.Asc(scheduledsend.FieldScheduledFor))
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query.All(ctx)
}

// A processing row this old belongs to a dispatcher that died mid-flight.
// Live claims finish within the send timeout, so ten minutes is far past
// any legitimate in-flight window.
const staleProcessingCutoff = 10 * time.Minute

// reclaimStale returns crashed in-flight claims to the pending queue so the
// next cycle retries them. The conditional update races safely with live
// dispatchers: a claim younger than the cutoff is never touched.
func (s *Service) reclaimStale(ctx context.Context, now time.Time) (int, error) {
	n, err := s.db.ScheduledSend.
		Update().
		Where(
			scheduledsend.StatusEQ(scheduledsend.StatusProcessing),
			scheduledsend.UpdatedAtLT(now.Add(-staleProcessingCutoff)),
		).
		SetStatus(scheduledsend.StatusPending).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim stale sends: %w", err)
	}
	if n > 0 {
		s.log.Warn("reclaimed stale in-flight sends", "count", n)
	}
	return n, nil
}

// ProcessDue runs one dispatch cycle: selects due sends and processes each
// independently, so a single bad item never aborts the batch
func (s *Service) ProcessDue(ctx context.Context, now time.Time, limit int) (*Result, error) {
	start := time.Now()

	if _, err := s.reclaimStale(ctx, now); err != nil {
		s.log.Error("stale claim sweep failed", "error", err)
	}

	due, err := s.SelectDue(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select due sends: %w", err)
	}
	if s.metrics != nil {
		s.metrics.DueBatchSize.Observe(float64(len(due)))
	}

	result := &Result{}
	touched := make(map[int]bool)
	for _, item := range due {
		result.Processed++
		touched[item.CampaignID] = true

		outcome, err := s.dispatchOne(ctx, item, now)
		if err != nil {
			s.log.Error("dispatch failed",
				"send_id", item.ID,
				"campaign_id", item.CampaignID,
				"contact_id", item.ContactID,
				"error", err,
			)
		}
		switch outcome {
		case outcomeSent:
			result.Sent++
		case outcomeFailed:
			result.Failed++
		case outcomeSkipped:
			result.Skipped++
		case outcomeCanceled:
			result.Canceled++
		}
	}

	// Campaigns whose queue drained this cycle may now be complete
	for campaignID := range touched {
		if _, err := s.campaigns.MaybeComplete(ctx, campaignID); err != nil {
			s.log.Error("completion check failed", "campaign_id", campaignID, "error", err)
		}
	}

	if s.metrics != nil {
		s.metrics.DispatchDuration.Observe(time.Since(start).Seconds())
	}
	if result.Processed > 0 {
		s.log.Info("dispatch cycle finished",
			"processed", result.Processed,
			"sent", result.Sent,
			"failed", result.Failed,
			"skipped", result.Skipped,
			"canceled", result.Canceled,
		)
	}

	return result, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeSent
	outcomeFailed
	outcomeCanceled
)

// dispatchOne processes a single due send end to end
func (s *Service) dispatchOne(ctx context.Context, item *ent.ScheduledSend, now time.Time) (outcome, error) {
	// Claim: flip pending→processing with a conditional update. Exactly one
	// dispatcher wins; losers see zero affected rows and walk away.
	n, err := s.db.ScheduledSend.
		Update().
		Where(
			scheduledsend.IDEQ(item.ID),
			scheduledsend.StatusEQ(scheduledsend.StatusPending),
		).
		SetStatus(scheduledsend.StatusProcessing).
		Save(ctx)
	if err != nil {
		return outcomeSkipped, fmt.Errorf("failed to claim send: %w", err)
	}
	if n == 0 {
		// Another dispatcher claimed it, or it was canceled under us
		return outcomeSkipped, nil
	}

	camp := item.Edges.Campaign
	cont := item.Edges.Contact
	if camp == nil || cont == nil {
		// Selected without eager loading; fetch directly
		if camp, err = s.db.Campaign.Get(ctx, item.CampaignID); err != nil {
			s.returnToPending(ctx, item.ID)
			return outcomeSkipped, fmt.Errorf("failed to load campaign: %w", err)
		}
		if cont, err = s.db.Contact.Get(ctx, item.ContactID); err != nil {
			s.returnToPending(ctx, item.ID)
			return outcomeSkipped, fmt.Errorf("failed to load contact: %w", err)
		}
	} else {
		// Eager-loaded rows may be stale; re-read the mutable state
		if cont, err = s.db.Contact.Get(ctx, cont.ID); err != nil {
			s.returnToPending(ctx, item.ID)
			return outcomeSkipped, fmt.Errorf("failed to reload contact: %w", err)
		}
		if camp, err = s.db.Campaign.Get(ctx, camp.ID); err != nil {
			s.returnToPending(ctx, item.ID)
			return outcomeSkipped, fmt.Errorf("failed to reload campaign: %w", err)
		}
	}

	// Gate re-checks between selection and delivery
	if camp.Status != entcampaign.StatusActive {
		s.returnToPending(ctx, item.ID)
		return outcomeSkipped, nil
	}
	if campaign.IsAbsorbing(cont.Status) {
		s.cancelSend(ctx, item.ID)
		return outcomeCanceled, nil
	}

	if phone.IsUSNumber(cont.PhoneNumber) {
		allowed, err := s.gate.CanMessageUS(ctx, camp.UserID)
		if err != nil {
			s.returnToPending(ctx, item.ID)
			return outcomeSkipped, err
		}
		if !allowed {
			s.returnToPending(ctx, item.ID)
			s.skip(domain.ErrCodeRequiresA2P)
			s.log.Warn("send blocked pending compliance", "send_id", item.ID, "user_id", camp.UserID)
			return outcomeSkipped, nil
		}
	}

	fromNumber := camp.FromNumber
	if fromNumber == "" {
		fromNumber, err = s.numbers.ResolveFromNumber(ctx, camp.UserID)
		if err != nil {
			s.returnToPending(ctx, item.ID)
			if domain.IsNotFound(err) {
				s.skip(domain.ErrCodeRequiresA2P)
				return outcomeSkipped, nil
			}
			return outcomeSkipped, err
		}
	}

	tpl, err := s.campaigns.GetTemplate(ctx, camp.ID, item.SequenceNumber)
	if err != nil {
		s.returnToPending(ctx, item.ID)
		return outcomeSkipped, err
	}
	body := strings.ReplaceAll(tpl.Body, "{name}", cont.Name)

	// Reserve the credit before the provider call. A send without a credit
	// must never leave the building.
	if err := s.ledger.ReserveCredit(ctx, camp.UserID); err != nil {
		s.returnToPending(ctx, item.ID)
		if domain.IsInsufficientCredits(err) {
			s.skip(domain.ErrCodeInsufficientCredits)
			return outcomeSkipped, nil
		}
		return outcomeSkipped, err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	sent, err := s.provider.SendSMS(sendCtx, cont.PhoneNumber, fromNumber, body)
	cancel()
	if err != nil {
		// The message never left; give the credit back
		if refundErr := s.ledger.RefundCredit(ctx, camp.UserID); refundErr != nil {
			s.log.Error("credit refund failed", "user_id", camp.UserID, "error", refundErr)
		}
		if failErr := s.recordFailure(ctx, item, camp, cont, body, err); failErr != nil {
			return outcomeFailed, failErr
		}
		if s.metrics != nil {
			s.metrics.MessagesFailed.Inc()
		}
		return outcomeFailed, nil
	}

	if err := s.recordSuccess(ctx, item, camp, cont, body, sent, now); err != nil {
		return outcomeSent, err
	}
	if s.metrics != nil {
		s.metrics.MessagesSent.Inc()
		s.metrics.CreditsConsumed.Inc()
	}
	return outcomeSent, nil
}

// recordSuccess logs the outbound message, advances the contact, bumps
// campaign counters, and schedules the next step, all in one transaction
func (s *Service) recordSuccess(ctx context.Context, item *ent.ScheduledSend, camp *ent.Campaign, cont *ent.Contact, body string, sent *SendResult, now time.Time) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	step := item.SequenceNumber

	_, err = tx.SMSMessage.
		Create().
		SetCampaignID(camp.ID).
		SetContactID(cont.ID).
		SetDirection(smsmessage.DirectionOutbound).
		SetSequenceNumber(step).
		SetMessageBody(body).
		SetStatus(smsmessage.StatusSent).
		SetTwilioSid(sent.SID).
		SetSentAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to log message: %w", err)
	}

	_, err = tx.ScheduledSend.
		UpdateOneID(item.ID).
		SetStatus(scheduledsend.StatusSent).
		SetProcessedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark send sent: %w", err)
	}

	// Advance the contact only if it is still in a progressing state. A reply
	// that landed during the provider call wins; the message was already sent,
	// but no further steps are scheduled.
	advanced, err := tx.Contact.
		Update().
		Where(
			contact.IDEQ(cont.ID),
			contact.StatusNotIn(
				contact.StatusReplied,
				contact.StatusOptedOut,
				contact.StatusFailed,
			),
		).
		SetStatus(campaign.StatusBySequence[step]).
		AddMessageCount(1).
		SetLastMessageSentAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance contact: %w", err)
	}

	_, err = tx.Campaign.
		UpdateOneID(camp.ID).
		AddSentCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to bump sent count: %w", err)
	}

	if step < campaign.SequenceLength && advanced > 0 {
		// One live queue entry per contact: cancel anything else pending
		// before creating the next step
		_, err = tx.ScheduledSend.
			Update().
			Where(
				scheduledsend.ContactIDEQ(cont.ID),
				scheduledsend.StatusEQ(scheduledsend.StatusPending),
			).
			SetStatus(scheduledsend.StatusCanceled).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel stale sends: %w", err)
		}

		interval := campaign.IntervalDays(camp, step)
		_, err = tx.ScheduledSend.
			Create().
			SetCampaignID(camp.ID).
			SetContactID(cont.ID).
			SetSequenceNumber(step + 1).
			SetScheduledFor(now.AddDate(0, 0, interval)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to schedule next step: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// recordFailure logs the failed message and marks the send failed. The
// contact is not absorbed; delivery receipts decide terminal number failures.
func (s *Service) recordFailure(ctx context.Context, item *ent.ScheduledSend, camp *ent.Campaign, cont *ent.Contact, body string, sendErr error) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.SMSMessage.
		Create().
		SetCampaignID(camp.ID).
		SetContactID(cont.ID).
		SetDirection(smsmessage.DirectionOutbound).
		SetSequenceNumber(item.SequenceNumber).
		SetMessageBody(body).
		SetStatus(smsmessage.StatusFailed).
		SetErrorMessage(sendErr.Error()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to log failure: %w", err)
	}

	_, err = tx.ScheduledSend.
		UpdateOneID(item.ID).
		SetStatus(scheduledsend.StatusFailed).
		SetErrorMessage(sendErr.Error()).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark send failed: %w", err)
	}

	_, err = tx.Campaign.
		UpdateOneID(camp.ID).
		AddFailedCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to bump failed count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// returnToPending releases a claimed send so a later cycle retries the gates
func (s *Service) returnToPending(ctx context.Context, sendID int) {
	_, err := s.db.ScheduledSend.
		Update().
		Where(
			scheduledsend.IDEQ(sendID),
			scheduledsend.StatusEQ(scheduledsend.StatusProcessing),
		).
		SetStatus(scheduledsend.StatusPending).
		Save(ctx)
	if err != nil {
		s.log.Error("failed to release send", "send_id", sendID, "error", err)
	}
}

// cancelSend terminally cancels a claimed send
func (s *Service) cancelSend(ctx context.Context, sendID int) {
	_, err := s.db.ScheduledSend.
		Update().
		Where(
			scheduledsend.IDEQ(sendID),
			scheduledsend.StatusEQ(scheduledsend.StatusProcessing),
		).
		SetStatus(scheduledsend.StatusCanceled).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		s.log.Error("failed to cancel send", "send_id", sendID, "error", err)
	}
}

func (s *Service) skip(reason string) {
	if s.metrics != nil {
		s.metrics.MessagesSkipped.WithLabelValues(reason).Inc()
	}
}

// RestartDormant re-enters dormant contacts into the sequence: contacts who
// finished all three steps without ever responding, once the campaign's
// restart cycle has elapsed since their last message. Returns the number of
// contacts re-queued.
func (s *Service) RestartDormant(ctx context.Context, now time.Time) (int, error) {
	campaigns, err := s.db.Campaign.
		Query().
		Where(entcampaign.StatusEQ(entcampaign.StatusActive)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query campaigns: %w", err)
	}

	restarted := 0
	for _, camp := range campaigns {
		interval := campaign.IntervalDays(camp, campaign.SequenceLength)
		if interval <= 0 {
			continue
		}
		cutoff := now.AddDate(0, 0, -interval)

		dormant, err := s.db.Contact.
			Query().
			Where(
				contact.CampaignIDEQ(camp.ID),
				contact.StatusEQ(contact.StatusThirdSent),
				contact.RespondedAtIsNil(),
				contact.LastMessageSentAtLTE(cutoff),
			).
			All(ctx)
		if err != nil {
			s.log.Error("dormant query failed", "campaign_id", camp.ID, "error", err)
			continue
		}

		for _, cont := range dormant {
			tx, err := s.db.Tx(ctx)
			if err != nil {
				return restarted, fmt.Errorf("failed to begin transaction: %w", err)
			}

			n, err := tx.Contact.
				Update().
				Where(
					contact.IDEQ(cont.ID),
					contact.StatusEQ(contact.StatusThirdSent),
				).
				SetStatus(contact.StatusQueued).
				Save(ctx)
			if err != nil {
				tx.Rollback()
				return restarted, fmt.Errorf("failed to requeue contact: %w", err)
			}
			if n == 0 {
				tx.Rollback()
				continue
			}

			_, err = tx.ScheduledSend.
				Create().
				SetCampaignID(camp.ID).
				SetContactID(cont.ID).
				SetSequenceNumber(1).
				SetScheduledFor(now).
				Save(ctx)
			if err != nil {
				tx.Rollback()
				return restarted, fmt.Errorf("failed to schedule restart: %w", err)
			}

			if err := tx.Commit(); err != nil {
				return restarted, fmt.Errorf("failed to commit: %w", err)
			}
			restarted++
		}

		if len(dormant) > 0 {
			s.log.Info("dormant contacts restarted", "campaign_id", camp.ID, "count", len(dormant))
		}
	}

	if restarted > 0 && s.metrics != nil {
		s.metrics.ContactsRestarted.Add(float64(restarted))
	}
	return restarted, nil
}
