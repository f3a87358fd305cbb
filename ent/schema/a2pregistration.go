package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// A2PRegistration holds the schema definition for the A2PRegistration entity.
// One row per user tracking 10DLC registration progress: brand, then
// campaign, then an assigned phone number.
type A2PRegistration struct {
	ent.Schema
}

// Fields of the A2PRegistration.
func (A2PRegistration) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Unique().
			Comment("Registration owner"),
		field.Enum("status").
			Values("unregistered", "brand_registered", "campaign_registered", "number_assigned").
			Default("unregistered").
			Comment("Registration progress"),
		field.String("company_name").
			Optional().
			Comment("Registered company name"),
		field.String("ein").
			Optional().
			Sensitive().
			Comment("Employer identification number"),
		field.String("vertical").
			Optional().
			Comment("Business vertical"),
		field.String("contact_name").
			Optional().
			Comment("Registration contact name"),
		field.String("contact_email").
			Optional().
			Comment("Registration contact email"),
		field.String("subaccount_sid").
			Optional().
			Comment("Twilio subaccount SID created for this user"),
		field.String("brand_sid").
			Optional().
			Comment("Twilio A2P brand registration SID"),
		field.String("campaign_sid").
			Optional().
			Comment("Twilio A2P campaign registration SID"),
		field.String("phone_number").
			Optional().
			MaxLen(20).
			Comment("Compliant number assigned to this registration (E.164)"),
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

// Edges of the A2PRegistration.
func (A2PRegistration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("a2p_registration").
			Field("user_id").
			Unique().
			Required().
			Comment("Registration owner"),
	}
}

// Indexes of the A2PRegistration.
func (A2PRegistration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
