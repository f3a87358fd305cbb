package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Positive().
			Comment("Campaign this contact belongs to"),
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Comment("Lead name"),
		field.String("phone_number").
			NotEmpty().
			MaxLen(20).
			Comment("Phone number (E.164 format)"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form tags from the lead upload"),
		field.Enum("status").
			NamedValues(
				"Uncontacted", "uncontacted",
				"Queued", "queued",
				"FirstSent", "1st_sent",
				"SecondSent", "2nd_sent",
				"ThirdSent", "3rd_sent",
				"Replied", "replied",
				"OptedOut", "opted_out",
				"Failed", "failed",
			).
			Default("uncontacted").
			Comment("Sequence progress; replied/opted_out/failed are terminal"),
		field.Int("message_count").
			Default(0).
			NonNegative().
			Comment("Number of sequence steps completed"),
		field.Time("last_message_sent_at").
			Optional().
			Nillable().
			Comment("When the last sequence message was sent"),
		field.Time("responded_at").
			Optional().
			Nillable().
			Comment("When the contact replied or opted out"),
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

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("contacts").
			Field("campaign_id").
			Unique().
			Required().
			Comment("Owning campaign"),
		edge.To("scheduled_sends", ScheduledSend.Type).
			Comment("Queued sends for this contact"),
		edge.To("messages", SMSMessage.Type).
			Comment("Messages exchanged with this contact"),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "status"),
		index.Fields("phone_number"),
		index.Fields("last_message_sent_at"),
	}
}
