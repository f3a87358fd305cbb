// Code generated by ent, DO NOT EDIT.

package a2pregistration

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the a2pregistration type in the database.
	Label = "a2p_registration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldEin holds the string denoting the ein field in the database.
	FieldEin = "ein"
	// FieldVertical holds the string denoting the vertical field in the database.
	FieldVertical = "vertical"
	// FieldContactName holds the string denoting the contact_name field in the database.
	FieldContactName = "contact_name"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldSubaccountSid holds the string denoting the subaccount_sid field in the database.
	FieldSubaccountSid = "subaccount_sid"
	// FieldBrandSid holds the string denoting the brand_sid field in the database.
	FieldBrandSid = "brand_sid"
	// FieldCampaignSid holds the string denoting the campaign_sid field in the database.
	FieldCampaignSid = "campaign_sid"
	// FieldPhoneNumber holds the string denoting the phone_number field in the database.
	FieldPhoneNumber = "phone_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the a2pregistration in the database.
	Table = "a2p_registrations"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "a2p_registrations"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for a2pregistration fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldStatus,
	FieldCompanyName,
	FieldEin,
	FieldVertical,
	FieldContactName,
	FieldContactEmail,
	FieldSubaccountSid,
	FieldBrandSid,
	FieldCampaignSid,
	FieldPhoneNumber,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(int) error
	// PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	PhoneNumberValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusUnregistered is the default value of the Status enum.
const DefaultStatus = StatusUnregistered

// Status values.
const (
	StatusUnregistered       Status = "unregistered"
	StatusBrandRegistered    Status = "brand_registered"
	StatusCampaignRegistered Status = "campaign_registered"
	StatusNumberAssigned     Status = "number_assigned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUnregistered, StatusBrandRegistered, StatusCampaignRegistered, StatusNumberAssigned:
		return nil
	default:
		return fmt.Errorf("a2pregistration: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the A2PRegistration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByEin orders the results by the ein field.
func ByEin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEin, opts...).ToFunc()
}

// ByVertical orders the results by the vertical field.
func ByVertical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVertical, opts...).ToFunc()
}

// ByContactName orders the results by the contact_name field.
func ByContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactName, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// BySubaccountSid orders the results by the subaccount_sid field.
func BySubaccountSid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubaccountSid, opts...).ToFunc()
}

// ByBrandSid orders the results by the brand_sid field.
func ByBrandSid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandSid, opts...).ToFunc()
}

// ByCampaignSid orders the results by the campaign_sid field.
func ByCampaignSid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignSid, opts...).ToFunc()
}

// ByPhoneNumber orders the results by the phone_number field.
func ByPhoneNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
