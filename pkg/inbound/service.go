package inbound

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielmv/leadrevive/ent"
	entcampaign "github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/danielmv/leadrevive/pkg/metrics"
	"github.com/danielmv/leadrevive/pkg/phone"
)

// dedupTTL keeps webhook SIDs long enough to absorb Twilio's retry window
const dedupTTL = 24 * time.Hour

// optOutKeywords are the standard carrier opt-out keywords, compared
// case-insensitively against the trimmed message body.
var optOutKeywords = map[string]bool{
	"STOP":        true,
	"STOPALL":     true,
	"UNSUBSCRIBE": true,
	"CANCEL":      true,
	"END":         true,
	"QUIT":        true,
}

// Deduper is the cache surface used to deduplicate webhook deliveries.
type Deduper interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}

// ContactMarker applies absorbing contact transitions.
type ContactMarker interface {
	MarkResponded(ctx context.Context, contactID int) (bool, error)
	MarkOptedOut(ctx context.Context, contactID int) (bool, error)
	MarkFailed(ctx context.Context, contactID int) (bool, error)
}

// Service handles inbound SMS webhooks and delivery receipts
type Service struct {
	db      *ent.Client
	marker  ContactMarker
	deduper Deduper
	audit   *audit.Service
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewService creates a new inbound service. deduper may be nil; dedup is
// best-effort and a cache outage never drops a reply.
func NewService(db *ent.Client, marker ContactMarker, deduper Deduper, auditSvc *audit.Service, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		db:      db,
		marker:  marker,
		deduper: deduper,
		audit:   auditSvc,
		metrics: m,
		log:     log,
	}
}

// IsOptOut reports whether a message body is a carrier opt-out keyword
func IsOptOut(body string) bool {
	return optOutKeywords[strings.ToUpper(strings.TrimSpace(body))]
}

// HandleInboundMessage processes one inbound SMS: it matches the sender to a
// contact, logs the message, and applies the reply or opt-out transition.
// Unmatched senders are logged and dropped; the webhook never errors for them.
func (s *Service) HandleInboundMessage(ctx context.Context, from, to, body, sid string) error {
	if sid != "" && s.deduper != nil {
		fresh, err := s.deduper.SetNX(ctx, "webhook:inbound:"+sid, 1, dedupTTL)
		if err != nil {
			s.log.Warn("dedup check failed, processing anyway", "sid", sid, "error", err)
		} else if !fresh {
			s.log.Info("duplicate inbound webhook ignored", "sid", sid)
			return nil
		}
	}

	fromNumber := from
	if n, err := phone.Normalize(from, "US"); err == nil {
		fromNumber = n.E164
	}

	// Same lead in several active campaigns: the one messaged most recently
	// almost certainly triggered the reply
	cont, err := s.db.Contact.
		Query().
		Where(
			contact.PhoneNumberEQ(fromNumber),
			contact.StatusNotIn(
				contact.StatusReplied,
				contact.StatusOptedOut,
				contact.StatusFailed,
			),
			contact.HasCampaignWith(entcampaign.StatusEQ(entcampaign.StatusActive)),
		).
		Order(ent.Desc(contact.FieldLastMessageSentAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.log.Info("inbound message from unknown sender", "from", fromNumber, "sid", sid)
			return nil
		}
		return fmt.Errorf("failed to match contact: %w", err)
	}

	_, err = s.db.SMSMessage.
		Create().
		SetCampaignID(cont.CampaignID).
		SetContactID(cont.ID).
		SetDirection(smsmessage.DirectionInbound).
		SetMessageBody(body).
		SetStatus(smsmessage.StatusReceived).
		SetNillableTwilioSid(nilIfEmpty(sid)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to log inbound message: %w", err)
	}

	optOut := IsOptOut(body)
	var changed bool
	if optOut {
		changed, err = s.marker.MarkOptedOut(ctx, cont.ID)
	} else {
		changed, err = s.marker.MarkResponded(ctx, cont.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to apply reply transition: %w", err)
	}
	if !changed {
		// A racing transition won; the message is logged, nothing to count
		return nil
	}

	_, err = s.db.Campaign.
		UpdateOneID(cont.CampaignID).
		AddReplyCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to bump reply count: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RepliesReceived.Inc()
	}
	if s.audit != nil {
		eventType := audit.EventContactReplied
		if optOut {
			eventType = audit.EventContactOptedOut
		}
		s.audit.Record(ctx, cont.CampaignID, nil, eventType, map[string]interface{}{
			"contact_id": cont.ID,
			"from":       fromNumber,
		})
	}

	s.log.Info("inbound reply processed",
		"campaign_id", cont.CampaignID,
		"contact_id", cont.ID,
		"opt_out", optOut,
	)
	return nil
}

// HandleDeliveryReceipt applies a Twilio status callback to the message log.
// Counter bumps are guarded by the message's own status transition, so
// Twilio's callback retries never double count.
func (s *Service) HandleDeliveryReceipt(ctx context.Context, sid, status string) error {
	if sid == "" {
		return nil
	}

	msg, err := s.db.SMSMessage.
		Query().
		Where(
			smsmessage.TwilioSidEQ(sid),
			smsmessage.DirectionEQ(smsmessage.DirectionOutbound),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.log.Info("receipt for unknown message", "sid", sid, "status", status)
			return nil
		}
		return fmt.Errorf("failed to find message: %w", err)
	}

	switch status {
	case "delivered":
		n, err := s.db.SMSMessage.
			Update().
			Where(
				smsmessage.IDEQ(msg.ID),
				smsmessage.StatusEQ(smsmessage.StatusSent),
			).
			SetStatus(smsmessage.StatusDelivered).
			SetDeliveredAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark delivered: %w", err)
		}
		if n > 0 {
			_, err = s.db.Campaign.
				UpdateOneID(msg.CampaignID).
				AddDeliveredCount(1).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to bump delivered count: %w", err)
			}
		}

	case "failed", "undelivered":
		target := smsmessage.StatusFailed
		if status == "undelivered" {
			target = smsmessage.StatusUndelivered
		}
		n, err := s.db.SMSMessage.
			Update().
			Where(
				smsmessage.IDEQ(msg.ID),
				smsmessage.StatusIn(smsmessage.StatusSent, smsmessage.StatusDelivered),
			).
			SetStatus(target).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark failed: %w", err)
		}
		if n > 0 {
			_, err = s.db.Campaign.
				UpdateOneID(msg.CampaignID).
				AddFailedCount(1).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to bump failed count: %w", err)
			}
			// The carrier rejected this number; stop the sequence for it
			if msg.ContactID != nil {
				if _, err := s.marker.MarkFailed(ctx, *msg.ContactID); err != nil {
					return fmt.Errorf("failed to mark contact failed: %w", err)
				}
			}
		}

	default:
		// queued, sending, accepted: intermediate states, nothing to record
	}

	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
