// Code generated by ent, DO NOT EDIT.

package smsmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldCampaignID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldContactID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldSequenceNumber, v))
}

// MessageBody applies equality check predicate on the "message_body" field. It's identical to MessageBodyEQ.
func MessageBody(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldMessageBody, v))
}

// TwilioSid applies equality check predicate on the "twilio_sid" field. It's identical to TwilioSidEQ.
func TwilioSid(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldTwilioSid, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldErrorCode, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldSentAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldDeliveredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldCampaignID, vs...))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldContactID))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldDirection, vs...))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldSequenceNumber, v))
}

// SequenceNumberIsNil applies the IsNil predicate on the "sequence_number" field.
func SequenceNumberIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldSequenceNumber))
}

// SequenceNumberNotNil applies the NotNil predicate on the "sequence_number" field.
func SequenceNumberNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldSequenceNumber))
}

// MessageBodyEQ applies the EQ predicate on the "message_body" field.
func MessageBodyEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldMessageBody, v))
}

// MessageBodyNEQ applies the NEQ predicate on the "message_body" field.
func MessageBodyNEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldMessageBody, v))
}

// MessageBodyIn applies the In predicate on the "message_body" field.
func MessageBodyIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldMessageBody, vs...))
}

// MessageBodyNotIn applies the NotIn predicate on the "message_body" field.
func MessageBodyNotIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldMessageBody, vs...))
}

// MessageBodyGT applies the GT predicate on the "message_body" field.
func MessageBodyGT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldMessageBody, v))
}

// MessageBodyGTE applies the GTE predicate on the "message_body" field.
func MessageBodyGTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldMessageBody, v))
}

// MessageBodyLT applies the LT predicate on the "message_body" field.
func MessageBodyLT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldMessageBody, v))
}

// MessageBodyLTE applies the LTE predicate on the "message_body" field.
func MessageBodyLTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldMessageBody, v))
}

// MessageBodyContains applies the Contains predicate on the "message_body" field.
func MessageBodyContains(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContains(FieldMessageBody, v))
}

// MessageBodyHasPrefix applies the HasPrefix predicate on the "message_body" field.
func MessageBodyHasPrefix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasPrefix(FieldMessageBody, v))
}

// MessageBodyHasSuffix applies the HasSuffix predicate on the "message_body" field.
func MessageBodyHasSuffix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasSuffix(FieldMessageBody, v))
}

// MessageBodyEqualFold applies the EqualFold predicate on the "message_body" field.
func MessageBodyEqualFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldMessageBody, v))
}

// MessageBodyContainsFold applies the ContainsFold predicate on the "message_body" field.
func MessageBodyContainsFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldMessageBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// TwilioSidEQ applies the EQ predicate on the "twilio_sid" field.
func TwilioSidEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldTwilioSid, v))
}

// TwilioSidNEQ applies the NEQ predicate on the "twilio_sid" field.
func TwilioSidNEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldTwilioSid, v))
}

// TwilioSidIn applies the In predicate on the "twilio_sid" field.
func TwilioSidIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldTwilioSid, vs...))
}

// TwilioSidNotIn applies the NotIn predicate on the "twilio_sid" field.
func TwilioSidNotIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldTwilioSid, vs...))
}

// TwilioSidGT applies the GT predicate on the "twilio_sid" field.
func TwilioSidGT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldTwilioSid, v))
}

// TwilioSidGTE applies the GTE predicate on the "twilio_sid" field.
func TwilioSidGTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldTwilioSid, v))
}

// TwilioSidLT applies the LT predicate on the "twilio_sid" field.
func TwilioSidLT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldTwilioSid, v))
}

// TwilioSidLTE applies the LTE predicate on the "twilio_sid" field.
func TwilioSidLTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldTwilioSid, v))
}

// TwilioSidContains applies the Contains predicate on the "twilio_sid" field.
func TwilioSidContains(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContains(FieldTwilioSid, v))
}

// TwilioSidHasPrefix applies the HasPrefix predicate on the "twilio_sid" field.
func TwilioSidHasPrefix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasPrefix(FieldTwilioSid, v))
}

// TwilioSidHasSuffix applies the HasSuffix predicate on the "twilio_sid" field.
func TwilioSidHasSuffix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasSuffix(FieldTwilioSid, v))
}

// TwilioSidIsNil applies the IsNil predicate on the "twilio_sid" field.
func TwilioSidIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldTwilioSid))
}

// TwilioSidNotNil applies the NotNil predicate on the "twilio_sid" field.
func TwilioSidNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldTwilioSid))
}

// TwilioSidEqualFold applies the EqualFold predicate on the "twilio_sid" field.
func TwilioSidEqualFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldTwilioSid, v))
}

// TwilioSidContainsFold applies the ContainsFold predicate on the "twilio_sid" field.
func TwilioSidContainsFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldTwilioSid, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v int) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldErrorCode))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldSentAt))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotNull(FieldDeliveredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SMSMessage {
	return predicate.SMSMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.SMSMessage {
	return predicate.SMSMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.SMSMessage {
	return predicate.SMSMessage(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContact applies the HasEdge predicate on the "contact" edge.
func HasContact() predicate.SMSMessage {
	return predicate.SMSMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactWith applies the HasEdge predicate on the "contact" edge with a given conditions (other predicates).
func HasContactWith(preds ...predicate.Contact) predicate.SMSMessage {
	return predicate.SMSMessage(func(s *sql.Selector) {
		step := newContactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SMSMessage) predicate.SMSMessage {
	return predicate.SMSMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SMSMessage) predicate.SMSMessage {
	return predicate.SMSMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SMSMessage) predicate.SMSMessage {
	return predicate.SMSMessage(sql.NotPredicates(p))
}
