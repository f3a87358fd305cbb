package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CampaignEvent holds the schema definition for the CampaignEvent entity.
// Append-only audit trail of campaign lifecycle actions.
type CampaignEvent struct {
	ent.Schema
}

// Fields of the CampaignEvent.
func (CampaignEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Positive().
			Comment("Campaign this event belongs to"),
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("User who triggered the event; nil for system events"),
		field.String("event_type").
			NotEmpty().
			Comment("Event type (campaign_created, campaign_started, ...)"),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("Event metadata"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the CampaignEvent.
func (CampaignEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("events").
			Field("campaign_id").
			Unique().
			Required(),
	}
}

// Indexes of the CampaignEvent.
func (CampaignEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "created_at"),
	}
}
