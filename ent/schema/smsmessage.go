package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SMSMessage holds the schema definition for the SMSMessage entity.
// Append-only message log; only status and delivered_at are updated as
// delivery receipts arrive.
type SMSMessage struct {
	ent.Schema
}

// Fields of the SMSMessage.
func (SMSMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Positive().
			Comment("Campaign this message belongs to"),
		field.Int("contact_id").
			Optional().
			Nillable().
			Comment("Contact involved; nil for unmatched inbound messages"),
		field.Enum("direction").
			Values("outbound", "inbound").
			Comment("Message direction"),
		field.Int("sequence_number").
			Optional().
			Nillable().
			Comment("Sequence step for outbound messages; nil for inbound"),
		field.Text("message_body").
			NotEmpty().
			Comment("Message content"),
		field.Enum("status").
			Values("pending", "sent", "delivered", "failed", "undelivered", "received").
			Default("pending").
			Comment("Transport status"),
		field.String("twilio_sid").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Twilio message SID"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Error message if failed"),
		field.Int("error_code").
			Optional().
			Nillable().
			Comment("Twilio error code if failed"),
		field.Time("sent_at").
			Optional().
			Nillable().
			Comment("When the message was sent"),
		field.Time("delivered_at").
			Optional().
			Nillable().
			Comment("When the message was delivered"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the SMSMessage.
func (SMSMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("messages").
			Field("campaign_id").
			Unique().
			Required(),
		edge.From("contact", Contact.Type).
			Ref("messages").
			Field("contact_id").
			Unique(),
	}
}

// Indexes of the SMSMessage.
func (SMSMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id"),
		index.Fields("contact_id"),
		index.Fields("twilio_sid"),
		index.Fields("direction", "status"),
		index.Fields("created_at"),
	}
}
