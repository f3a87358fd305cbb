package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("User who owns the campaign"),
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Campaign name"),
		field.Enum("status").
			Values("draft", "active", "paused", "completed").
			Default("draft").
			Comment("Campaign lifecycle status"),
		field.String("from_number").
			Optional().
			MaxLen(20).
			Comment("Explicit sender number for this campaign (E.164), overrides resolution"),
		field.Int("drip_batch_size").
			Positive().
			Default(100).
			Comment("Max new contacts admitted into the sequence per drip interval"),
		field.Int("drip_interval_days").
			Positive().
			Default(3).
			Comment("Days between drip batch admissions"),
		field.JSON("message_intervals", []int{}).
			Comment("Three intervals in days: step 1->2, step 2->3, restart cycle"),
		field.Time("last_batch_admitted_at").
			Optional().
			Nillable().
			Comment("When the last drip batch was admitted"),
		field.Int("total_leads").
			Default(0).
			NonNegative().
			Comment("Total number of contacts uploaded"),
		field.Int("sent_count").
			Default(0).
			NonNegative().
			Comment("Number of messages sent"),
		field.Int("delivered_count").
			Default(0).
			NonNegative().
			Comment("Number of messages confirmed delivered"),
		field.Int("reply_count").
			Default(0).
			NonNegative().
			Comment("Number of contacts who replied"),
		field.Int("failed_count").
			Default(0).
			NonNegative().
			Comment("Number of messages failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("campaigns").
			Field("user_id").
			Unique().
			Required().
			Comment("Campaign owner"),
		edge.To("contacts", Contact.Type).
			Comment("Contacts enrolled in this campaign"),
		edge.To("templates", MessageTemplate.Type).
			Comment("Message sequence templates"),
		edge.To("scheduled_sends", ScheduledSend.Type).
			Comment("Queued sends for this campaign"),
		edge.To("messages", SMSMessage.Type).
			Comment("Message log for this campaign"),
		edge.To("events", CampaignEvent.Type).
			Comment("Audit events for this campaign"),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
