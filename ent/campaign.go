// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/user"
)

// Campaign is the model entity for the Campaign schema.
type Campaign struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User who owns the campaign
	UserID int `json:"user_id,omitempty"`
	// Campaign name
	Name string `json:"name,omitempty"`
	// Campaign lifecycle status
	Status campaign.Status `json:"status,omitempty"`
	// Explicit sender number for this campaign (E.164), overrides resolution
	FromNumber string `json:"from_number,omitempty"`
	// Max new contacts admitted into the sequence per drip interval
	DripBatchSize int `json:"drip_batch_size,omitempty"`
	// Days between drip batch admissions
	DripIntervalDays int `json:"drip_interval_days,omitempty"`
	// Three intervals in days: step 1->2, step 2->3, restart cycle
	MessageIntervals []int `json:"message_intervals,omitempty"`
	// When the last drip batch was admitted
	LastBatchAdmittedAt *time.Time `json:"last_batch_admitted_at,omitempty"`
	// Total number of contacts uploaded
	TotalLeads int `json:"total_leads,omitempty"`
	// Number of messages sent
	SentCount int `json:"sent_count,omitempty"`
	// Number of messages confirmed delivered
	DeliveredCount int `json:"delivered_count,omitempty"`
	// Number of contacts who replied
	ReplyCount int `json:"reply_count,omitempty"`
	// Number of messages failed
	FailedCount int `json:"failed_count,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignQuery when eager-loading is set.
	Edges        CampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEdges holds the relations/edges for other nodes in the graph.
type CampaignEdges struct {
	// Campaign owner
	User *User `json:"user,omitempty"`
	// Contacts enrolled in this campaign
	Contacts []*Contact `json:"contacts,omitempty"`
	// Message sequence templates
	Templates []*MessageTemplate `json:"templates,omitempty"`
	// Queued sends for this campaign
	ScheduledSends []*ScheduledSend `json:"scheduled_sends,omitempty"`
	// Message log for this campaign
	Messages []*SMSMessage `json:"messages,omitempty"`
	// Audit events for this campaign
	Events []*CampaignEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ContactsOrErr returns the Contacts value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) ContactsOrErr() ([]*Contact, error) {
	if e.loadedTypes[1] {
		return e.Contacts, nil
	}
	return nil, &NotLoadedError{edge: "contacts"}
}

// TemplatesOrErr returns the Templates value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) TemplatesOrErr() ([]*MessageTemplate, error) {
	if e.loadedTypes[2] {
		return e.Templates, nil
	}
	return nil, &NotLoadedError{edge: "templates"}
}

// ScheduledSendsOrErr returns the ScheduledSends value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) ScheduledSendsOrErr() ([]*ScheduledSend, error) {
	if e.loadedTypes[3] {
		return e.ScheduledSends, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_sends"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) MessagesOrErr() ([]*SMSMessage, error) {
	if e.loadedTypes[4] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) EventsOrErr() ([]*CampaignEvent, error) {
	if e.loadedTypes[5] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Campaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaign.FieldMessageIntervals:
			values[i] = new([]byte)
		case campaign.FieldID, campaign.FieldUserID, campaign.FieldDripBatchSize, campaign.FieldDripIntervalDays, campaign.FieldTotalLeads, campaign.FieldSentCount, campaign.FieldDeliveredCount, campaign.FieldReplyCount, campaign.FieldFailedCount:
			values[i] = new(sql.NullInt64)
		case campaign.FieldName, campaign.FieldStatus, campaign.FieldFromNumber:
			values[i] = new(sql.NullString)
		case campaign.FieldLastBatchAdmittedAt, campaign.FieldCreatedAt, campaign.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Campaign fields.
func (_m *Campaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case campaign.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case campaign.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case campaign.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaign.Status(value.String)
			}
		case campaign.FieldFromNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_number", values[i])
			} else if value.Valid {
				_m.FromNumber = value.String
			}
		case campaign.FieldDripBatchSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drip_batch_size", values[i])
			} else if value.Valid {
				_m.DripBatchSize = int(value.Int64)
			}
		case campaign.FieldDripIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drip_interval_days", values[i])
			} else if value.Valid {
				_m.DripIntervalDays = int(value.Int64)
			}
		case campaign.FieldMessageIntervals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field message_intervals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MessageIntervals); err != nil {
					return fmt.Errorf("unmarshal field message_intervals: %w", err)
				}
			}
		case campaign.FieldLastBatchAdmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_batch_admitted_at", values[i])
			} else if value.Valid {
				_m.LastBatchAdmittedAt = new(time.Time)
				*_m.LastBatchAdmittedAt = value.Time
			}
		case campaign.FieldTotalLeads:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_leads", values[i])
			} else if value.Valid {
				_m.TotalLeads = int(value.Int64)
			}
		case campaign.FieldSentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_count", values[i])
			} else if value.Valid {
				_m.SentCount = int(value.Int64)
			}
		case campaign.FieldDeliveredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_count", values[i])
			} else if value.Valid {
				_m.DeliveredCount = int(value.Int64)
			}
		case campaign.FieldReplyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reply_count", values[i])
			} else if value.Valid {
				_m.ReplyCount = int(value.Int64)
			}
		case campaign.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case campaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaign.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Campaign.
// This includes values selected through modifiers, order, etc.
func (_m *Campaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Campaign entity.
func (_m *Campaign) QueryUser() *UserQuery {
	return NewCampaignClient(_m.config).QueryUser(_m)
}

// QueryContacts queries the "contacts" edge of the Campaign entity.
func (_m *Campaign) QueryContacts() *ContactQuery {
	return NewCampaignClient(_m.config).QueryContacts(_m)
}

// QueryTemplates queries the "templates" edge of the Campaign entity.
func (_m *Campaign) QueryTemplates() *MessageTemplateQuery {
	return NewCampaignClient(_m.config).QueryTemplates(_m)
}

// QueryScheduledSends queries the "scheduled_sends" edge of the Campaign entity.
func (_m *Campaign) QueryScheduledSends() *ScheduledSendQuery {
	return NewCampaignClient(_m.config).QueryScheduledSends(_m)
}

// QueryMessages queries the "messages" edge of the Campaign entity.
func (_m *Campaign) QueryMessages() *SMSMessageQuery {
	return NewCampaignClient(_m.config).QueryMessages(_m)
}

// QueryEvents queries the "events" edge of the Campaign entity.
func (_m *Campaign) QueryEvents() *CampaignEventQuery {
	return NewCampaignClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Campaign.
// Note that you need to call Campaign.Unwrap() before calling this method if this Campaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Campaign) Update() *CampaignUpdateOne {
	return NewCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Campaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Campaign) Unwrap() *Campaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Campaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Campaign) String() string {
	var builder strings.Builder
	builder.WriteString("Campaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("from_number=")
	builder.WriteString(_m.FromNumber)
	builder.WriteString(", ")
	builder.WriteString("drip_batch_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.DripBatchSize))
	builder.WriteString(", ")
	builder.WriteString("drip_interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.DripIntervalDays))
	builder.WriteString(", ")
	builder.WriteString("message_intervals=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageIntervals))
	builder.WriteString(", ")
	if v := _m.LastBatchAdmittedAt; v != nil {
		builder.WriteString("last_batch_admitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_leads=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLeads))
	builder.WriteString(", ")
	builder.WriteString("sent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentCount))
	builder.WriteString(", ")
	builder.WriteString("delivered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveredCount))
	builder.WriteString(", ")
	builder.WriteString("reply_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplyCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Campaigns is a parsable slice of Campaign.
type Campaigns []*Campaign
