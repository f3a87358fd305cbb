package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// TwilioAccount holds the schema definition for the TwilioAccount entity.
// A manually connected Twilio account; the legacy sending path for users
// without A2P registration.
type TwilioAccount struct {
	ent.Schema
}

// Fields of the TwilioAccount.
func (TwilioAccount) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Unique().
			Comment("Account owner"),
		field.String("account_sid").
			NotEmpty().
			Comment("Twilio account SID"),
		field.String("auth_token").
			NotEmpty().
			Sensitive().
			Comment("Twilio auth token"),
		field.String("phone_number").
			Optional().
			MaxLen(20).
			Comment("Sending number on this account (E.164)"),
		field.Bool("is_verified").
			Default(false).
			Comment("Whether the credentials were verified against the Twilio API"),
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

// Edges of the TwilioAccount.
func (TwilioAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("twilio_account").
			Field("user_id").
			Unique().
			Required().
			Comment("Account owner"),
	}
}
