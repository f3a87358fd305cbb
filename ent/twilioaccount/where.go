// Code generated by ent, DO NOT EDIT.

package twilioaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldUserID, v))
}

// AccountSid applies equality check predicate on the "account_sid" field. It's identical to AccountSidEQ.
func AccountSid(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldAccountSid, v))
}

// AuthToken applies equality check predicate on the "auth_token" field. It's identical to AuthTokenEQ.
func AuthToken(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldAuthToken, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldPhoneNumber, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldIsVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldUserID, vs...))
}

// AccountSidEQ applies the EQ predicate on the "account_sid" field.
func AccountSidEQ(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldAccountSid, v))
}

// AccountSidNEQ applies the NEQ predicate on the "account_sid" field.
func AccountSidNEQ(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldAccountSid, v))
}

// AccountSidIn applies the In predicate on the "account_sid" field.
func AccountSidIn(vs ...string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldAccountSid, vs...))
}

// AccountSidNotIn applies the NotIn predicate on the "account_sid" field.
func AccountSidNotIn(vs ...string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldAccountSid, vs...))
}

// AccountSidGT applies the GT predicate on the "account_sid" field.
func AccountSidGT(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGT(FieldAccountSid, v))
}

// AccountSidGTE applies the GTE predicate on the "account_sid" field.
func AccountSidGTE(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGTE(FieldAccountSid, v))
}

// AccountSidLT applies the LT predicate on the "account_sid" field.
func AccountSidLT(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLT(FieldAccountSid, v))
}

// AccountSidLTE applies the LTE predicate on the "account_sid" field.
func AccountSidLTE(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLTE(FieldAccountSid, v))
}

// AccountSidContains applies the Contains predicate on the "account_sid" field.
func AccountSidContains(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldContains(FieldAccountSid, v))
}

// AccountSidHasPrefix applies the HasPrefix predicate on the "account_sid" field.
func AccountSidHasPrefix(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldHasPrefix(FieldAccountSid, v))
}

// AccountSidHasSuffix applies the HasSuffix predicate on the "account_sid" field.
func AccountSidHasSuffix(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldHasSuffix(FieldAccountSid, v))
}

// AccountSidEqualFold applies the EqualFold predicate on the "account_sid" field.
func AccountSidEqualFold(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEqualFold(FieldAccountSid, v))
}

// AccountSidContainsFold applies the ContainsFold predicate on the "account_sid" field.
func AccountSidContainsFold(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldContainsFold(FieldAccountSid, v))
}

// AuthTokenEQ applies the EQ predicate on the "auth_token" field.
func AuthTokenEQ(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldAuthToken, v))
}

// AuthTokenNEQ applies the NEQ predicate on the "auth_token" field.
func AuthTokenNEQ(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldAuthToken, v))
}

// AuthTokenIn applies the In predicate on the "auth_token" field.
func AuthTokenIn(vs ...string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldAuthToken, vs...))
}

// AuthTokenNotIn applies the NotIn predicate on the "auth_token" field.
func AuthTokenNotIn(vs ...string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldAuthToken, vs...))
}

// AuthTokenGT applies the GT predicate on the "auth_token" field.
func AuthTokenGT(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGT(FieldAuthToken, v))
}

// AuthTokenGTE applies the GTE predicate on the "auth_token" field.
func AuthTokenGTE(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGTE(FieldAuthToken, v))
}

// AuthTokenLT applies the LT predicate on the "auth_token" field.
func AuthTokenLT(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLT(FieldAuthToken, v))
}

// AuthTokenLTE applies the LTE predicate on the "auth_token" field.
func AuthTokenLTE(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLTE(FieldAuthToken, v))
}

// AuthTokenContains applies the Contains predicate on the "auth_token" field.
func AuthTokenContains(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldContains(FieldAuthToken, v))
}

// AuthTokenHasPrefix applies the HasPrefix predicate on the "auth_token" field.
func AuthTokenHasPrefix(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldHasPrefix(FieldAuthToken, v))
}

// AuthTokenHasSuffix applies the HasSuffix predicate on the "auth_token" field.
func AuthTokenHasSuffix(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldHasSuffix(FieldAuthToken, v))
}

// AuthTokenEqualFold applies the EqualFold predicate on the "auth_token" field.
func AuthTokenEqualFold(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEqualFold(FieldAuthToken, v))
}

// AuthTokenContainsFold applies the ContainsFold predicate on the "auth_token" field.
func AuthTokenContainsFold(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldContainsFold(FieldAuthToken, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldIsVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.TwilioAccount {
	return predicate.TwilioAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.TwilioAccount {
	return predicate.TwilioAccount(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TwilioAccount) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TwilioAccount) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TwilioAccount) predicate.TwilioAccount {
	return predicate.TwilioAccount(sql.NotPredicates(p))
}
