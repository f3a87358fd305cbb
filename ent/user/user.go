// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCampaigns holds the string denoting the campaigns edge name in mutations.
	EdgeCampaigns = "campaigns"
	// EdgeBilling holds the string denoting the billing edge name in mutations.
	EdgeBilling = "billing"
	// EdgeA2pRegistration holds the string denoting the a2p_registration edge name in mutations.
	EdgeA2pRegistration = "a2p_registration"
	// EdgeTwilioAccount holds the string denoting the twilio_account edge name in mutations.
	EdgeTwilioAccount = "twilio_account"
	// Table holds the table name of the user in the database.
	Table = "users"
	// CampaignsTable is the table that holds the campaigns relation/edge.
	CampaignsTable = "campaigns"
	// CampaignsInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignsInverseTable = "campaigns"
	// CampaignsColumn is the table column denoting the campaigns relation/edge.
	CampaignsColumn = "user_id"
	// BillingTable is the table that holds the billing relation/edge.
	BillingTable = "user_billings"
	// BillingInverseTable is the table name for the UserBilling entity.
	// It exists in this package in order to avoid circular dependency with the "userbilling" package.
	BillingInverseTable = "user_billings"
	// BillingColumn is the table column denoting the billing relation/edge.
	BillingColumn = "user_id"
	// A2pRegistrationTable is the table that holds the a2p_registration relation/edge.
	A2pRegistrationTable = "a2p_registrations"
	// A2pRegistrationInverseTable is the table name for the A2PRegistration entity.
	// It exists in this package in order to avoid circular dependency with the "a2pregistration" package.
	A2pRegistrationInverseTable = "a2p_registrations"
	// A2pRegistrationColumn is the table column denoting the a2p_registration relation/edge.
	A2pRegistrationColumn = "user_id"
	// TwilioAccountTable is the table that holds the twilio_account relation/edge.
	TwilioAccountTable = "twilio_accounts"
	// TwilioAccountInverseTable is the table name for the TwilioAccount entity.
	// It exists in this package in order to avoid circular dependency with the "twilioaccount" package.
	TwilioAccountInverseTable = "twilio_accounts"
	// TwilioAccountColumn is the table column denoting the twilio_account relation/edge.
	TwilioAccountColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldName,
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
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCampaignsCount orders the results by campaigns count.
func ByCampaignsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCampaignsStep(), opts...)
	}
}

// ByCampaigns orders the results by campaigns terms.
func ByCampaigns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBillingCount orders the results by billing count.
func ByBillingCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBillingStep(), opts...)
	}
}

// ByBilling orders the results by billing terms.
func ByBilling(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBillingStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByA2pRegistrationCount orders the results by a2p_registration count.
func ByA2pRegistrationCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newA2pRegistrationStep(), opts...)
	}
}

// ByA2pRegistration orders the results by a2p_registration terms.
func ByA2pRegistration(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newA2pRegistrationStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTwilioAccountCount orders the results by twilio_account count.
func ByTwilioAccountCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTwilioAccountStep(), opts...)
	}
}

// ByTwilioAccount orders the results by twilio_account terms.
func ByTwilioAccount(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTwilioAccountStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCampaignsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CampaignsTable, CampaignsColumn),
	)
}
func newBillingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BillingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BillingTable, BillingColumn),
	)
}
func newA2pRegistrationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(A2pRegistrationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, A2pRegistrationTable, A2pRegistrationColumn),
	)
}
func newTwilioAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TwilioAccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TwilioAccountTable, TwilioAccountColumn),
	)
}
