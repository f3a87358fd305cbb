// Code generated by ent, DO NOT EDIT.

package a2pregistration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldUserID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldCompanyName, v))
}

// Ein applies equality check predicate on the "ein" field. It's identical to EinEQ.
func Ein(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldEin, v))
}

// Vertical applies equality check predicate on the "vertical" field. It's identical to VerticalEQ.
func Vertical(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldVertical, v))
}

// ContactName applies equality check predicate on the "contact_name" field. It's identical to ContactNameEQ.
func ContactName(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldContactName, v))
}

// ContactEmail applies equality check predicate on the "contact_email" field. It's identical to ContactEmailEQ.
func ContactEmail(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldContactEmail, v))
}

// SubaccountSid applies equality check predicate on the "subaccount_sid" field. It's identical to SubaccountSidEQ.
func SubaccountSid(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldSubaccountSid, v))
}

// BrandSid applies equality check predicate on the "brand_sid" field. It's identical to BrandSidEQ.
func BrandSid(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldBrandSid, v))
}

// CampaignSid applies equality check predicate on the "campaign_sid" field. It's identical to CampaignSidEQ.
func CampaignSid(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldCampaignSid, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldPhoneNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldUserID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldStatus, vs...))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldCompanyName, v))
}

// EinEQ applies the EQ predicate on the "ein" field.
func EinEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldEin, v))
}

// EinNEQ applies the NEQ predicate on the "ein" field.
func EinNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldEin, v))
}

// EinIn applies the In predicate on the "ein" field.
func EinIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldEin, vs...))
}

// EinNotIn applies the NotIn predicate on the "ein" field.
func EinNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldEin, vs...))
}

// EinGT applies the GT predicate on the "ein" field.
func EinGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldEin, v))
}

// EinGTE applies the GTE predicate on the "ein" field.
func EinGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldEin, v))
}

// EinLT applies the LT predicate on the "ein" field.
func EinLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldEin, v))
}

// EinLTE applies the LTE predicate on the "ein" field.
func EinLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldEin, v))
}

// EinContains applies the Contains predicate on the "ein" field.
func EinContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldEin, v))
}

// EinHasPrefix applies the HasPrefix predicate on the "ein" field.
func EinHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldEin, v))
}

// EinHasSuffix applies the HasSuffix predicate on the "ein" field.
func EinHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldEin, v))
}

// EinIsNil applies the IsNil predicate on the "ein" field.
func EinIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldEin))
}

// EinNotNil applies the NotNil predicate on the "ein" field.
func EinNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldEin))
}

// EinEqualFold applies the EqualFold predicate on the "ein" field.
func EinEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldEin, v))
}

// EinContainsFold applies the ContainsFold predicate on the "ein" field.
func EinContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldEin, v))
}

// VerticalEQ applies the EQ predicate on the "vertical" field.
func VerticalEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldVertical, v))
}

// VerticalNEQ applies the NEQ predicate on the "vertical" field.
func VerticalNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldVertical, v))
}

// VerticalIn applies the In predicate on the "vertical" field.
func VerticalIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldVertical, vs...))
}

// VerticalNotIn applies the NotIn predicate on the "vertical" field.
func VerticalNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldVertical, vs...))
}

// VerticalGT applies the GT predicate on the "vertical" field.
func VerticalGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldVertical, v))
}

// VerticalGTE applies the GTE predicate on the "vertical" field.
func VerticalGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldVertical, v))
}

// VerticalLT applies the LT predicate on the "vertical" field.
func VerticalLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldVertical, v))
}

// VerticalLTE applies the LTE predicate on the "vertical" field.
func VerticalLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldVertical, v))
}

// VerticalContains applies the Contains predicate on the "vertical" field.
func VerticalContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldVertical, v))
}

// VerticalHasPrefix applies the HasPrefix predicate on the "vertical" field.
func VerticalHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldVertical, v))
}

// VerticalHasSuffix applies the HasSuffix predicate on the "vertical" field.
func VerticalHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldVertical, v))
}

// VerticalIsNil applies the IsNil predicate on the "vertical" field.
func VerticalIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldVertical))
}

// VerticalNotNil applies the NotNil predicate on the "vertical" field.
func VerticalNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldVertical))
}

// VerticalEqualFold applies the EqualFold predicate on the "vertical" field.
func VerticalEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldVertical, v))
}

// VerticalContainsFold applies the ContainsFold predicate on the "vertical" field.
func VerticalContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldVertical, v))
}

// ContactNameEQ applies the EQ predicate on the "contact_name" field.
func ContactNameEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldContactName, v))
}

// ContactNameNEQ applies the NEQ predicate on the "contact_name" field.
func ContactNameNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldContactName, v))
}

// ContactNameIn applies the In predicate on the "contact_name" field.
func ContactNameIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldContactName, vs...))
}

// ContactNameNotIn applies the NotIn predicate on the "contact_name" field.
func ContactNameNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldContactName, vs...))
}

// ContactNameGT applies the GT predicate on the "contact_name" field.
func ContactNameGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldContactName, v))
}

// ContactNameGTE applies the GTE predicate on the "contact_name" field.
func ContactNameGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldContactName, v))
}

// ContactNameLT applies the LT predicate on the "contact_name" field.
func ContactNameLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldContactName, v))
}

// ContactNameLTE applies the LTE predicate on the "contact_name" field.
func ContactNameLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldContactName, v))
}

// ContactNameContains applies the Contains predicate on the "contact_name" field.
func ContactNameContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldContactName, v))
}

// ContactNameHasPrefix applies the HasPrefix predicate on the "contact_name" field.
func ContactNameHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldContactName, v))
}

// ContactNameHasSuffix applies the HasSuffix predicate on the "contact_name" field.
func ContactNameHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldContactName, v))
}

// ContactNameIsNil applies the IsNil predicate on the "contact_name" field.
func ContactNameIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldContactName))
}

// ContactNameNotNil applies the NotNil predicate on the "contact_name" field.
func ContactNameNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldContactName))
}

// ContactNameEqualFold applies the EqualFold predicate on the "contact_name" field.
func ContactNameEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldContactName, v))
}

// ContactNameContainsFold applies the ContainsFold predicate on the "contact_name" field.
func ContactNameContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldContactName, v))
}

// ContactEmailEQ applies the EQ predicate on the "contact_email" field.
func ContactEmailEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldContactEmail, v))
}

// ContactEmailNEQ applies the NEQ predicate on the "contact_email" field.
func ContactEmailNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldContactEmail, v))
}

// ContactEmailIn applies the In predicate on the "contact_email" field.
func ContactEmailIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldContactEmail, vs...))
}

// ContactEmailNotIn applies the NotIn predicate on the "contact_email" field.
func ContactEmailNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldContactEmail, vs...))
}

// ContactEmailGT applies the GT predicate on the "contact_email" field.
func ContactEmailGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldContactEmail, v))
}

// ContactEmailGTE applies the GTE predicate on the "contact_email" field.
func ContactEmailGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldContactEmail, v))
}

// ContactEmailLT applies the LT predicate on the "contact_email" field.
func ContactEmailLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldContactEmail, v))
}

// ContactEmailLTE applies the LTE predicate on the "contact_email" field.
func ContactEmailLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldContactEmail, v))
}

// ContactEmailContains applies the Contains predicate on the "contact_email" field.
func ContactEmailContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldContactEmail, v))
}

// ContactEmailHasPrefix applies the HasPrefix predicate on the "contact_email" field.
func ContactEmailHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldContactEmail, v))
}

// ContactEmailHasSuffix applies the HasSuffix predicate on the "contact_email" field.
func ContactEmailHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldContactEmail, v))
}

// ContactEmailIsNil applies the IsNil predicate on the "contact_email" field.
func ContactEmailIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldContactEmail))
}

// ContactEmailNotNil applies the NotNil predicate on the "contact_email" field.
func ContactEmailNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldContactEmail))
}

// ContactEmailEqualFold applies the EqualFold predicate on the "contact_email" field.
func ContactEmailEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldContactEmail, v))
}

// ContactEmailContainsFold applies the ContainsFold predicate on the "contact_email" field.
func ContactEmailContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldContactEmail, v))
}

// SubaccountSidEQ applies the EQ predicate on the "subaccount_sid" field.
func SubaccountSidEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldSubaccountSid, v))
}

// SubaccountSidNEQ applies the NEQ predicate on the "subaccount_sid" field.
func SubaccountSidNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldSubaccountSid, v))
}

// SubaccountSidIn applies the In predicate on the "subaccount_sid" field.
func SubaccountSidIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldSubaccountSid, vs...))
}

// SubaccountSidNotIn applies the NotIn predicate on the "subaccount_sid" field.
func SubaccountSidNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldSubaccountSid, vs...))
}

// SubaccountSidGT applies the GT predicate on the "subaccount_sid" field.
func SubaccountSidGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldSubaccountSid, v))
}

// SubaccountSidGTE applies the GTE predicate on the "subaccount_sid" field.
func SubaccountSidGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldSubaccountSid, v))
}

// SubaccountSidLT applies the LT predicate on the "subaccount_sid" field.
func SubaccountSidLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldSubaccountSid, v))
}

// SubaccountSidLTE applies the LTE predicate on the "subaccount_sid" field.
func SubaccountSidLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldSubaccountSid, v))
}

// SubaccountSidContains applies the Contains predicate on the "subaccount_sid" field.
func SubaccountSidContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldSubaccountSid, v))
}

// SubaccountSidHasPrefix applies the HasPrefix predicate on the "subaccount_sid" field.
func SubaccountSidHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldSubaccountSid, v))
}

// SubaccountSidHasSuffix applies the HasSuffix predicate on the "subaccount_sid" field.
func SubaccountSidHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldSubaccountSid, v))
}

// SubaccountSidIsNil applies the IsNil predicate on the "subaccount_sid" field.
func SubaccountSidIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldSubaccountSid))
}

// SubaccountSidNotNil applies the NotNil predicate on the "subaccount_sid" field.
func SubaccountSidNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldSubaccountSid))
}

// SubaccountSidEqualFold applies the EqualFold predicate on the "subaccount_sid" field.
func SubaccountSidEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldSubaccountSid, v))
}

// SubaccountSidContainsFold applies the ContainsFold predicate on the "subaccount_sid" field.
func SubaccountSidContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldSubaccountSid, v))
}

// BrandSidEQ applies the EQ predicate on the "brand_sid" field.
func BrandSidEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldBrandSid, v))
}

// BrandSidNEQ applies the NEQ predicate on the "brand_sid" field.
func BrandSidNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldBrandSid, v))
}

// BrandSidIn applies the In predicate on the "brand_sid" field.
func BrandSidIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldBrandSid, vs...))
}

// BrandSidNotIn applies the NotIn predicate on the "brand_sid" field.
func BrandSidNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldBrandSid, vs...))
}

// BrandSidGT applies the GT predicate on the "brand_sid" field.
func BrandSidGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldBrandSid, v))
}

// BrandSidGTE applies the GTE predicate on the "brand_sid" field.
func BrandSidGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldBrandSid, v))
}

// BrandSidLT applies the LT predicate on the "brand_sid" field.
func BrandSidLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldBrandSid, v))
}

// BrandSidLTE applies the LTE predicate on the "brand_sid" field.
func BrandSidLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldBrandSid, v))
}

// BrandSidContains applies the Contains predicate on the "brand_sid" field.
func BrandSidContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldBrandSid, v))
}

// BrandSidHasPrefix applies the HasPrefix predicate on the "brand_sid" field.
func BrandSidHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldBrandSid, v))
}

// BrandSidHasSuffix applies the HasSuffix predicate on the "brand_sid" field.
func BrandSidHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldBrandSid, v))
}

// BrandSidIsNil applies the IsNil predicate on the "brand_sid" field.
func BrandSidIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldBrandSid))
}

// BrandSidNotNil applies the NotNil predicate on the "brand_sid" field.
func BrandSidNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldBrandSid))
}

// BrandSidEqualFold applies the EqualFold predicate on the "brand_sid" field.
func BrandSidEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldBrandSid, v))
}

// BrandSidContainsFold applies the ContainsFold predicate on the "brand_sid" field.
func BrandSidContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldBrandSid, v))
}

// CampaignSidEQ applies the EQ predicate on the "campaign_sid" field.
func CampaignSidEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldCampaignSid, v))
}

// CampaignSidNEQ applies the NEQ predicate on the "campaign_sid" field.
func CampaignSidNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldCampaignSid, v))
}

// CampaignSidIn applies the In predicate on the "campaign_sid" field.
func CampaignSidIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldCampaignSid, vs...))
}

// CampaignSidNotIn applies the NotIn predicate on the "campaign_sid" field.
func CampaignSidNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldCampaignSid, vs...))
}

// CampaignSidGT applies the GT predicate on the "campaign_sid" field.
func CampaignSidGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldCampaignSid, v))
}

// CampaignSidGTE applies the GTE predicate on the "campaign_sid" field.
func CampaignSidGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldCampaignSid, v))
}

// CampaignSidLT applies the LT predicate on the "campaign_sid" field.
func CampaignSidLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldCampaignSid, v))
}

// CampaignSidLTE applies the LTE predicate on the "campaign_sid" field.
func CampaignSidLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldCampaignSid, v))
}

// CampaignSidContains applies the Contains predicate on the "campaign_sid" field.
func CampaignSidContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldCampaignSid, v))
}

// CampaignSidHasPrefix applies the HasPrefix predicate on the "campaign_sid" field.
func CampaignSidHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldCampaignSid, v))
}

// CampaignSidHasSuffix applies the HasSuffix predicate on the "campaign_sid" field.
func CampaignSidHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldCampaignSid, v))
}

// CampaignSidIsNil applies the IsNil predicate on the "campaign_sid" field.
func CampaignSidIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldCampaignSid))
}

// CampaignSidNotNil applies the NotNil predicate on the "campaign_sid" field.
func CampaignSidNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldCampaignSid))
}

// CampaignSidEqualFold applies the EqualFold predicate on the "campaign_sid" field.
func CampaignSidEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldCampaignSid, v))
}

// CampaignSidContainsFold applies the ContainsFold predicate on the "campaign_sid" field.
func CampaignSidContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldCampaignSid, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.A2PRegistration {
	return predicate.A2PRegistration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.A2PRegistration {
	return predicate.A2PRegistration(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.A2PRegistration) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.A2PRegistration) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.A2PRegistration) predicate.A2PRegistration {
	return predicate.A2PRegistration(sql.NotPredicates(p))
}
