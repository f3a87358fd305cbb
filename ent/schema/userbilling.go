package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserBilling holds the schema definition for the UserBilling entity.
// One row per user; credits_remaining is the send budget decremented by
// the dispatcher and refilled by Stripe webhook events.
type UserBilling struct {
	ent.Schema
}

// Fields of the UserBilling.
func (UserBilling) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Unique().
			Comment("Billing owner"),
		field.String("plan_id").
			Optional().
			Comment("Subscribed plan identifier"),
		field.Enum("status").
			Values("active", "inactive", "canceled", "past_due").
			Default("inactive").
			Comment("Subscription status"),
		field.Int("credits_remaining").
			Default(0).
			NonNegative().
			Comment("Message credits left this billing period"),
		field.String("stripe_customer_id").
			Optional().
			Comment("Stripe customer ID"),
		field.String("stripe_subscription_id").
			Optional().
			Comment("Stripe subscription ID"),
		field.Time("renew_date").
			Optional().
			Nillable().
			Comment("Next credit renewal date"),
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

// Edges of the UserBilling.
func (UserBilling) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("billing").
			Field("user_id").
			Unique().
			Required().
			Comment("Billing owner"),
	}
}

// Indexes of the UserBilling.
func (UserBilling) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stripe_customer_id"),
		index.Fields("status"),
	}
}
