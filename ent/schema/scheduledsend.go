package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledSend holds the schema definition for the ScheduledSend entity.
// A row is the queued obligation to deliver one sequence step to one contact
// at or after scheduled_for.
type ScheduledSend struct {
	ent.Schema
}

// Fields of the ScheduledSend.
func (ScheduledSend) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Positive().
			Comment("Campaign this send belongs to"),
		field.Int("contact_id").
			Positive().
			Comment("Contact receiving this message"),
		field.Int("sequence_number").
			Positive().
			Max(3).
			Comment("Sequence step to deliver (1, 2, 3)"),
		field.Time("scheduled_for").
			Comment("When this message becomes due"),
		field.Enum("status").
			Values("pending", "processing", "sent", "canceled", "failed").
			Default("pending").
			Comment("Queue entry status; processing marks an in-flight claim"),
		field.Text("error_message").
			Optional().
			Comment("Error message if the send failed"),
		field.Time("processed_at").
			Optional().
			Nillable().
			Comment("When the entry reached a terminal status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last status change; crashed in-flight claims are reaped by age"),
	}
}

// Edges of the ScheduledSend.
func (ScheduledSend) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("scheduled_sends").
			Field("campaign_id").
			Unique().
			Required(),
		edge.From("contact", Contact.Type).
			Ref("scheduled_sends").
			Field("contact_id").
			Unique().
			Required(),
	}
}

// Indexes of the ScheduledSend.
func (ScheduledSend) Indexes() []ent.Index {
	return []ent.Index{
		// Find due sends
		index.Fields("status", "scheduled_for").
			StorageKey("idx_send_due"),

		// Find pending sends for a contact
		index.Fields("contact_id", "status").
			StorageKey("idx_send_contact_status"),

		// At most one pending entry per (contact, step)
		index.Fields("campaign_id", "contact_id", "sequence_number").
			Annotations(entsql.IndexWhere("status = 'pending'")).
			Unique().
			StorageKey("idx_send_pending_unique"),
	}
}
