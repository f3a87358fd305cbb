// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// FromNumber applies equality check predicate on the "from_number" field. It's identical to FromNumberEQ.
func FromNumber(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFromNumber, v))
}

// DripBatchSize applies equality check predicate on the "drip_batch_size" field. It's identical to DripBatchSizeEQ.
func DripBatchSize(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDripBatchSize, v))
}

// DripIntervalDays applies equality check predicate on the "drip_interval_days" field. It's identical to DripIntervalDaysEQ.
func DripIntervalDays(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDripIntervalDays, v))
}

// LastBatchAdmittedAt applies equality check predicate on the "last_batch_admitted_at" field. It's identical to LastBatchAdmittedAtEQ.
func LastBatchAdmittedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastBatchAdmittedAt, v))
}

// TotalLeads applies equality check predicate on the "total_leads" field. It's identical to TotalLeadsEQ.
func TotalLeads(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTotalLeads, v))
}

// SentCount applies equality check predicate on the "sent_count" field. It's identical to SentCountEQ.
func SentCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSentCount, v))
}

// DeliveredCount applies equality check predicate on the "delivered_count" field. It's identical to DeliveredCountEQ.
func DeliveredCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeliveredCount, v))
}

// ReplyCount applies equality check predicate on the "reply_count" field. It's identical to ReplyCountEQ.
func ReplyCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldReplyCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFailedCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUserID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStatus, vs...))
}

// FromNumberEQ applies the EQ predicate on the "from_number" field.
func FromNumberEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFromNumber, v))
}

// FromNumberNEQ applies the NEQ predicate on the "from_number" field.
func FromNumberNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldFromNumber, v))
}

// FromNumberIn applies the In predicate on the "from_number" field.
func FromNumberIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldFromNumber, vs...))
}

// FromNumberNotIn applies the NotIn predicate on the "from_number" field.
func FromNumberNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldFromNumber, vs...))
}

// FromNumberGT applies the GT predicate on the "from_number" field.
func FromNumberGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldFromNumber, v))
}

// FromNumberGTE applies the GTE predicate on the "from_number" field.
func FromNumberGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldFromNumber, v))
}

// FromNumberLT applies the LT predicate on the "from_number" field.
func FromNumberLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldFromNumber, v))
}

// FromNumberLTE applies the LTE predicate on the "from_number" field.
func FromNumberLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldFromNumber, v))
}

// FromNumberContains applies the Contains predicate on the "from_number" field.
func FromNumberContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldFromNumber, v))
}

// FromNumberHasPrefix applies the HasPrefix predicate on the "from_number" field.
func FromNumberHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldFromNumber, v))
}

// FromNumberHasSuffix applies the HasSuffix predicate on the "from_number" field.
func FromNumberHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldFromNumber, v))
}

// FromNumberIsNil applies the IsNil predicate on the "from_number" field.
func FromNumberIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldFromNumber))
}

// FromNumberNotNil applies the NotNil predicate on the "from_number" field.
func FromNumberNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldFromNumber))
}

// FromNumberEqualFold applies the EqualFold predicate on the "from_number" field.
func FromNumberEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldFromNumber, v))
}

// FromNumberContainsFold applies the ContainsFold predicate on the "from_number" field.
func FromNumberContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldFromNumber, v))
}

// DripBatchSizeEQ applies the EQ predicate on the "drip_batch_size" field.
func DripBatchSizeEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDripBatchSize, v))
}

// DripBatchSizeNEQ applies the NEQ predicate on the "drip_batch_size" field.
func DripBatchSizeNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDripBatchSize, v))
}

// DripBatchSizeIn applies the In predicate on the "drip_batch_size" field.
func DripBatchSizeIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDripBatchSize, vs...))
}

// DripBatchSizeNotIn applies the NotIn predicate on the "drip_batch_size" field.
func DripBatchSizeNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDripBatchSize, vs...))
}

// DripBatchSizeGT applies the GT predicate on the "drip_batch_size" field.
func DripBatchSizeGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDripBatchSize, v))
}

// DripBatchSizeGTE applies the GTE predicate on the "drip_batch_size" field.
func DripBatchSizeGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDripBatchSize, v))
}

// DripBatchSizeLT applies the LT predicate on the "drip_batch_size" field.
func DripBatchSizeLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDripBatchSize, v))
}

// DripBatchSizeLTE applies the LTE predicate on the "drip_batch_size" field.
func DripBatchSizeLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDripBatchSize, v))
}

// DripIntervalDaysEQ applies the EQ predicate on the "drip_interval_days" field.
func DripIntervalDaysEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDripIntervalDays, v))
}

// DripIntervalDaysNEQ applies the NEQ predicate on the "drip_interval_days" field.
func DripIntervalDaysNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDripIntervalDays, v))
}

// DripIntervalDaysIn applies the In predicate on the "drip_interval_days" field.
func DripIntervalDaysIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDripIntervalDays, vs...))
}

// DripIntervalDaysNotIn applies the NotIn predicate on the "drip_interval_days" field.
func DripIntervalDaysNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDripIntervalDays, vs...))
}

// DripIntervalDaysGT applies the GT predicate on the "drip_interval_days" field.
func DripIntervalDaysGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDripIntervalDays, v))
}

// DripIntervalDaysGTE applies the GTE predicate on the "drip_interval_days" field.
func DripIntervalDaysGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDripIntervalDays, v))
}

// DripIntervalDaysLT applies the LT predicate on the "drip_interval_days" field.
func DripIntervalDaysLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDripIntervalDays, v))
}

// DripIntervalDaysLTE applies the LTE predicate on the "drip_interval_days" field.
func DripIntervalDaysLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDripIntervalDays, v))
}

// LastBatchAdmittedAtEQ applies the EQ predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastBatchAdmittedAt, v))
}

// LastBatchAdmittedAtNEQ applies the NEQ predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldLastBatchAdmittedAt, v))
}

// LastBatchAdmittedAtIn applies the In predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldLastBatchAdmittedAt, vs...))
}

// LastBatchAdmittedAtNotIn applies the NotIn predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldLastBatchAdmittedAt, vs...))
}

// LastBatchAdmittedAtGT applies the GT predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldLastBatchAdmittedAt, v))
}

// LastBatchAdmittedAtGTE applies the GTE predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldLastBatchAdmittedAt, v))
}

// LastBatchAdmittedAtLT applies the LT predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldLastBatchAdmittedAt, v))
}

// LastBatchAdmittedAtLTE applies the LTE predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldLastBatchAdmittedAt, v))
}

// LastBatchAdmittedAtIsNil applies the IsNil predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldLastBatchAdmittedAt))
}

// LastBatchAdmittedAtNotNil applies the NotNil predicate on the "last_batch_admitted_at" field.
func LastBatchAdmittedAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldLastBatchAdmittedAt))
}

// TotalLeadsEQ applies the EQ predicate on the "total_leads" field.
func TotalLeadsEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTotalLeads, v))
}

// TotalLeadsNEQ applies the NEQ predicate on the "total_leads" field.
func TotalLeadsNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTotalLeads, v))
}

// TotalLeadsIn applies the In predicate on the "total_leads" field.
func TotalLeadsIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTotalLeads, vs...))
}

// TotalLeadsNotIn applies the NotIn predicate on the "total_leads" field.
func TotalLeadsNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTotalLeads, vs...))
}

// TotalLeadsGT applies the GT predicate on the "total_leads" field.
func TotalLeadsGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTotalLeads, v))
}

// TotalLeadsGTE applies the GTE predicate on the "total_leads" field.
func TotalLeadsGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTotalLeads, v))
}

// TotalLeadsLT applies the LT predicate on the "total_leads" field.
func TotalLeadsLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTotalLeads, v))
}

// TotalLeadsLTE applies the LTE predicate on the "total_leads" field.
func TotalLeadsLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTotalLeads, v))
}

// SentCountEQ applies the EQ predicate on the "sent_count" field.
func SentCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSentCount, v))
}

// SentCountNEQ applies the NEQ predicate on the "sent_count" field.
func SentCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldSentCount, v))
}

// SentCountIn applies the In predicate on the "sent_count" field.
func SentCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldSentCount, vs...))
}

// SentCountNotIn applies the NotIn predicate on the "sent_count" field.
func SentCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldSentCount, vs...))
}

// SentCountGT applies the GT predicate on the "sent_count" field.
func SentCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldSentCount, v))
}

// SentCountGTE applies the GTE predicate on the "sent_count" field.
func SentCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldSentCount, v))
}

// SentCountLT applies the LT predicate on the "sent_count" field.
func SentCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldSentCount, v))
}

// SentCountLTE applies the LTE predicate on the "sent_count" field.
func SentCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldSentCount, v))
}

// DeliveredCountEQ applies the EQ predicate on the "delivered_count" field.
func DeliveredCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeliveredCount, v))
}

// DeliveredCountNEQ applies the NEQ predicate on the "delivered_count" field.
func DeliveredCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDeliveredCount, v))
}

// DeliveredCountIn applies the In predicate on the "delivered_count" field.
func DeliveredCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDeliveredCount, vs...))
}

// DeliveredCountNotIn applies the NotIn predicate on the "delivered_count" field.
func DeliveredCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDeliveredCount, vs...))
}

// DeliveredCountGT applies the GT predicate on the "delivered_count" field.
func DeliveredCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDeliveredCount, v))
}

// DeliveredCountGTE applies the GTE predicate on the "delivered_count" field.
func DeliveredCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDeliveredCount, v))
}

// DeliveredCountLT applies the LT predicate on the "delivered_count" field.
func DeliveredCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDeliveredCount, v))
}

// DeliveredCountLTE applies the LTE predicate on the "delivered_count" field.
func DeliveredCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDeliveredCount, v))
}

// ReplyCountEQ applies the EQ predicate on the "reply_count" field.
func ReplyCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldReplyCount, v))
}

// ReplyCountNEQ applies the NEQ predicate on the "reply_count" field.
func ReplyCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldReplyCount, v))
}

// ReplyCountIn applies the In predicate on the "reply_count" field.
func ReplyCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldReplyCount, vs...))
}

// ReplyCountNotIn applies the NotIn predicate on the "reply_count" field.
func ReplyCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldReplyCount, vs...))
}

// ReplyCountGT applies the GT predicate on the "reply_count" field.
func ReplyCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldReplyCount, v))
}

// ReplyCountGTE applies the GTE predicate on the "reply_count" field.
func ReplyCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldReplyCount, v))
}

// ReplyCountLT applies the LT predicate on the "reply_count" field.
func ReplyCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldReplyCount, v))
}

// ReplyCountLTE applies the LTE predicate on the "reply_count" field.
func ReplyCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldReplyCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldFailedCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContacts applies the HasEdge predicate on the "contacts" edge.
func HasContacts() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactsWith applies the HasEdge predicate on the "contacts" edge with a given conditions (other predicates).
func HasContactsWith(preds ...predicate.Contact) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newContactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTemplates applies the HasEdge predicate on the "templates" edge.
func HasTemplates() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TemplatesTable, TemplatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplatesWith applies the HasEdge predicate on the "templates" edge with a given conditions (other predicates).
func HasTemplatesWith(preds ...predicate.MessageTemplate) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newTemplatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScheduledSends applies the HasEdge predicate on the "scheduled_sends" edge.
func HasScheduledSends() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScheduledSendsTable, ScheduledSendsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScheduledSendsWith applies the HasEdge predicate on the "scheduled_sends" edge with a given conditions (other predicates).
func HasScheduledSendsWith(preds ...predicate.ScheduledSend) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newScheduledSendsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.SMSMessage) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.CampaignEvent) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.NotPredicates(p))
}
