// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFromNumber holds the string denoting the from_number field in the database.
	FieldFromNumber = "from_number"
	// FieldDripBatchSize holds the string denoting the drip_batch_size field in the database.
	FieldDripBatchSize = "drip_batch_size"
	// FieldDripIntervalDays holds the string denoting the drip_interval_days field in the database.
	FieldDripIntervalDays = "drip_interval_days"
	// FieldMessageIntervals holds the string denoting the message_intervals field in the database.
	FieldMessageIntervals = "message_intervals"
	// FieldLastBatchAdmittedAt holds the string denoting the last_batch_admitted_at field in the database.
	FieldLastBatchAdmittedAt = "last_batch_admitted_at"
	// FieldTotalLeads holds the string denoting the total_leads field in the database.
	FieldTotalLeads = "total_leads"
	// FieldSentCount holds the string denoting the sent_count field in the database.
	FieldSentCount = "sent_count"
	// FieldDeliveredCount holds the string denoting the delivered_count field in the database.
	FieldDeliveredCount = "delivered_count"
	// FieldReplyCount holds the string denoting the reply_count field in the database.
	FieldReplyCount = "reply_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeContacts holds the string denoting the contacts edge name in mutations.
	EdgeContacts = "contacts"
	// EdgeTemplates holds the string denoting the templates edge name in mutations.
	EdgeTemplates = "templates"
	// EdgeScheduledSends holds the string denoting the scheduled_sends edge name in mutations.
	EdgeScheduledSends = "scheduled_sends"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "campaigns"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// ContactsTable is the table that holds the contacts relation/edge.
	ContactsTable = "contacts"
	// ContactsInverseTable is the table name for the Contact entity.
	// It exists in this package in order to avoid circular dependency with the "contact" package.
	ContactsInverseTable = "contacts"
	// ContactsColumn is the table column denoting the contacts relation/edge.
	ContactsColumn = "campaign_id"
	// TemplatesTable is the table that holds the templates relation/edge.
	TemplatesTable = "message_templates"
	// TemplatesInverseTable is the table name for the MessageTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "messagetemplate" package.
	TemplatesInverseTable = "message_templates"
	// TemplatesColumn is the table column denoting the templates relation/edge.
	TemplatesColumn = "campaign_id"
	// ScheduledSendsTable is the table that holds the scheduled_sends relation/edge.
	ScheduledSendsTable = "scheduled_sends"
	// ScheduledSendsInverseTable is the table name for the ScheduledSend entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledsend" package.
	ScheduledSendsInverseTable = "scheduled_sends"
	// ScheduledSendsColumn is the table column denoting the scheduled_sends relation/edge.
	ScheduledSendsColumn = "campaign_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "sms_messages"
	// MessagesInverseTable is the table name for the SMSMessage entity.
	// It exists in this package in order to avoid circular dependency with the "smsmessage" package.
	MessagesInverseTable = "sms_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "campaign_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "campaign_events"
	// EventsInverseTable is the table name for the CampaignEvent entity.
	// It exists in this package in order to avoid circular dependency with the "campaignevent" package.
	EventsInverseTable = "campaign_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldStatus,
	FieldFromNumber,
	FieldDripBatchSize,
	FieldDripIntervalDays,
	FieldMessageIntervals,
	FieldLastBatchAdmittedAt,
	FieldTotalLeads,
	FieldSentCount,
	FieldDeliveredCount,
	FieldReplyCount,
	FieldFailedCount,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// FromNumberValidator is a validator for the "from_number" field. It is called by the builders before save.
	FromNumberValidator func(string) error
	// DefaultDripBatchSize holds the default value on creation for the "drip_batch_size" field.
	DefaultDripBatchSize int
	// DripBatchSizeValidator is a validator for the "drip_batch_size" field. It is called by the builders before save.
	DripBatchSizeValidator func(int) error
	// DefaultDripIntervalDays holds the default value on creation for the "drip_interval_days" field.
	DefaultDripIntervalDays int
	// DripIntervalDaysValidator is a validator for the "drip_interval_days" field. It is called by the builders before save.
	DripIntervalDaysValidator func(int) error
	// DefaultTotalLeads holds the default value on creation for the "total_leads" field.
	DefaultTotalLeads int
	// TotalLeadsValidator is a validator for the "total_leads" field. It is called by the builders before save.
	TotalLeadsValidator func(int) error
	// DefaultSentCount holds the default value on creation for the "sent_count" field.
	DefaultSentCount int
	// SentCountValidator is a validator for the "sent_count" field. It is called by the builders before save.
	SentCountValidator func(int) error
	// DefaultDeliveredCount holds the default value on creation for the "delivered_count" field.
	DefaultDeliveredCount int
	// DeliveredCountValidator is a validator for the "delivered_count" field. It is called by the builders before save.
	DeliveredCountValidator func(int) error
	// DefaultReplyCount holds the default value on creation for the "reply_count" field.
	DefaultReplyCount int
	// ReplyCountValidator is a validator for the "reply_count" field. It is called by the builders before save.
	ReplyCountValidator func(int) error
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	FailedCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFromNumber orders the results by the from_number field.
func ByFromNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromNumber, opts...).ToFunc()
}

// ByDripBatchSize orders the results by the drip_batch_size field.
func ByDripBatchSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDripBatchSize, opts...).ToFunc()
}

// ByDripIntervalDays orders the results by the drip_interval_days field.
func ByDripIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDripIntervalDays, opts...).ToFunc()
}

// ByLastBatchAdmittedAt orders the results by the last_batch_admitted_at field.
func ByLastBatchAdmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBatchAdmittedAt, opts...).ToFunc()
}

// ByTotalLeads orders the results by the total_leads field.
func ByTotalLeads(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLeads, opts...).ToFunc()
}

// BySentCount orders the results by the sent_count field.
func BySentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentCount, opts...).ToFunc()
}

// ByDeliveredCount orders the results by the delivered_count field.
func ByDeliveredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredCount, opts...).ToFunc()
}

// ByReplyCount orders the results by the reply_count field.
func ByReplyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
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

// ByContactsCount orders the results by contacts count.
func ByContactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContactsStep(), opts...)
	}
}

// ByContacts orders the results by contacts terms.
func ByContacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTemplatesCount orders the results by templates count.
func ByTemplatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTemplatesStep(), opts...)
	}
}

// ByTemplates orders the results by templates terms.
func ByTemplates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScheduledSendsCount orders the results by scheduled_sends count.
func ByScheduledSendsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScheduledSendsStep(), opts...)
	}
}

// ByScheduledSends orders the results by scheduled_sends terms.
func ByScheduledSends(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScheduledSendsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newContactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContactsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
	)
}
func newTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplatesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TemplatesTable, TemplatesColumn),
	)
}
func newScheduledSendsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledSendsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScheduledSendsTable, ScheduledSendsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
