package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageTemplate holds the schema definition for the MessageTemplate entity.
type MessageTemplate struct {
	ent.Schema
}

// Fields of the MessageTemplate.
func (MessageTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Positive().
			Comment("Campaign this template belongs to"),
		field.Int("sequence_number").
			Positive().
			Max(3).
			Comment("Position in the 3-message sequence (1, 2, 3)"),
		field.Text("body").
			NotEmpty().
			Comment("Message body (supports the {name} placeholder)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the MessageTemplate.
func (MessageTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("templates").
			Field("campaign_id").
			Unique().
			Required().
			Comment("Owning campaign"),
	}
}

// Indexes of the MessageTemplate.
func (MessageTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "sequence_number").
			Unique().
			StorageKey("idx_template_campaign_step"),
	}
}
