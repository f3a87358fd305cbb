// Code generated by ent, DO NOT EDIT.

package userbilling

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldUserID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldPlanID, v))
}

// CreditsRemaining applies equality check predicate on the "credits_remaining" field. It's identical to CreditsRemainingEQ.
func CreditsRemaining(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldCreditsRemaining, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeSubscriptionID applies equality check predicate on the "stripe_subscription_id" field. It's identical to StripeSubscriptionIDEQ.
func StripeSubscriptionID(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// RenewDate applies equality check predicate on the "renew_date" field. It's identical to RenewDateEQ.
func RenewDate(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldRenewDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldUserID, vs...))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDIsNil applies the IsNil predicate on the "plan_id" field.
func PlanIDIsNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIsNull(FieldPlanID))
}

// PlanIDNotNil applies the NotNil predicate on the "plan_id" field.
func PlanIDNotNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotNull(FieldPlanID))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldContainsFold(FieldPlanID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldStatus, vs...))
}

// CreditsRemainingEQ applies the EQ predicate on the "credits_remaining" field.
func CreditsRemainingEQ(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldCreditsRemaining, v))
}

// CreditsRemainingNEQ applies the NEQ predicate on the "credits_remaining" field.
func CreditsRemainingNEQ(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldCreditsRemaining, v))
}

// CreditsRemainingIn applies the In predicate on the "credits_remaining" field.
func CreditsRemainingIn(vs ...int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldCreditsRemaining, vs...))
}

// CreditsRemainingNotIn applies the NotIn predicate on the "credits_remaining" field.
func CreditsRemainingNotIn(vs ...int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldCreditsRemaining, vs...))
}

// CreditsRemainingGT applies the GT predicate on the "credits_remaining" field.
func CreditsRemainingGT(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldCreditsRemaining, v))
}

// CreditsRemainingGTE applies the GTE predicate on the "credits_remaining" field.
func CreditsRemainingGTE(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldCreditsRemaining, v))
}

// CreditsRemainingLT applies the LT predicate on the "credits_remaining" field.
func CreditsRemainingLT(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldCreditsRemaining, v))
}

// CreditsRemainingLTE applies the LTE predicate on the "credits_remaining" field.
func CreditsRemainingLTE(v int) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldCreditsRemaining, v))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// StripeSubscriptionIDEQ applies the EQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEQ(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDNEQ applies the NEQ predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNEQ(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIn applies the In predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIn(vs ...string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDNotIn applies the NotIn predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotIn(vs ...string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldStripeSubscriptionID, vs...))
}

// StripeSubscriptionIDGT applies the GT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGT(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDGTE applies the GTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDGTE(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLT applies the LT predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLT(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDLTE applies the LTE predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDLTE(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContains applies the Contains predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContains(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldContains(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasPrefix applies the HasPrefix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasPrefix(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldHasPrefix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDHasSuffix applies the HasSuffix predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDHasSuffix(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldHasSuffix(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDIsNil applies the IsNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDIsNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIsNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDNotNil applies the NotNil predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDNotNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotNull(FieldStripeSubscriptionID))
}

// StripeSubscriptionIDEqualFold applies the EqualFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDEqualFold(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEqualFold(FieldStripeSubscriptionID, v))
}

// StripeSubscriptionIDContainsFold applies the ContainsFold predicate on the "stripe_subscription_id" field.
func StripeSubscriptionIDContainsFold(v string) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldContainsFold(FieldStripeSubscriptionID, v))
}

// RenewDateEQ applies the EQ predicate on the "renew_date" field.
func RenewDateEQ(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldRenewDate, v))
}

// RenewDateNEQ applies the NEQ predicate on the "renew_date" field.
func RenewDateNEQ(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldRenewDate, v))
}

// RenewDateIn applies the In predicate on the "renew_date" field.
func RenewDateIn(vs ...time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldRenewDate, vs...))
}

// RenewDateNotIn applies the NotIn predicate on the "renew_date" field.
func RenewDateNotIn(vs ...time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldRenewDate, vs...))
}

// RenewDateGT applies the GT predicate on the "renew_date" field.
func RenewDateGT(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldRenewDate, v))
}

// RenewDateGTE applies the GTE predicate on the "renew_date" field.
func RenewDateGTE(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldRenewDate, v))
}

// RenewDateLT applies the LT predicate on the "renew_date" field.
func RenewDateLT(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldRenewDate, v))
}

// RenewDateLTE applies the LTE predicate on the "renew_date" field.
func RenewDateLTE(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldRenewDate, v))
}

// RenewDateIsNil applies the IsNil predicate on the "renew_date" field.
func RenewDateIsNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIsNull(FieldRenewDate))
}

// RenewDateNotNil applies the NotNil predicate on the "renew_date" field.
func RenewDateNotNil() predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotNull(FieldRenewDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserBilling {
	return predicate.UserBilling(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.UserBilling {
	return predicate.UserBilling(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.UserBilling {
	return predicate.UserBilling(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserBilling) predicate.UserBilling {
	return predicate.UserBilling(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserBilling) predicate.UserBilling {
	return predicate.UserBilling(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserBilling) predicate.UserBilling {
	return predicate.UserBilling(sql.NotPredicates(p))
}
