// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
)

// MessageTemplate is the model entity for the MessageTemplate schema.
type MessageTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Campaign this template belongs to
	CampaignID int `json:"campaign_id,omitempty"`
	// Position in the 3-message sequence (1, 2, 3)
	SequenceNumber int `json:"sequence_number,omitempty"`
	// Message body (supports the {name} placeholder)
	Body string `json:"body,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageTemplateQuery when eager-loading is set.
	Edges        MessageTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageTemplateEdges holds the relations/edges for other nodes in the graph.
type MessageTemplateEdges struct {
	// Owning campaign
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageTemplateEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagetemplate.FieldID, messagetemplate.FieldCampaignID, messagetemplate.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case messagetemplate.FieldBody:
			values[i] = new(sql.NullString)
		case messagetemplate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageTemplate fields.
func (_m *MessageTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagetemplate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case messagetemplate.FieldCampaignID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = int(value.Int64)
			}
		case messagetemplate.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case messagetemplate.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case messagetemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *MessageTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the MessageTemplate entity.
func (_m *MessageTemplate) QueryCampaign() *CampaignQuery {
	return NewMessageTemplateClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this MessageTemplate.
// Note that you need to call MessageTemplate.Unwrap() before calling this method if this MessageTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageTemplate) Update() *MessageTemplateUpdateOne {
	return NewMessageTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageTemplate) Unwrap() *MessageTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("MessageTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignID))
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageTemplates is a parsable slice of MessageTemplate.
type MessageTemplates []*MessageTemplate
