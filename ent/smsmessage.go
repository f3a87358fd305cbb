// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/smsmessage"
)

// SMSMessage is the model entity for the SMSMessage schema.
type SMSMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Campaign this message belongs to
	CampaignID int `json:"campaign_id,omitempty"`
	// Contact involved; nil for unmatched inbound messages
	ContactID *int `json:"contact_id,omitempty"`
	// Message direction
	Direction smsmessage.Direction `json:"direction,omitempty"`
	// Sequence step for outbound messages; nil for inbound
	SequenceNumber *int `json:"sequence_number,omitempty"`
	// Message content
	MessageBody string `json:"message_body,omitempty"`
	// Transport status
	Status smsmessage.Status `json:"status,omitempty"`
	// Twilio message SID
	TwilioSid *string `json:"twilio_sid,omitempty"`
	// Error message if failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// Twilio error code if failed
	ErrorCode *int `json:"error_code,omitempty"`
	// When the message was sent
	SentAt *time.Time `json:"sent_at,omitempty"`
	// When the message was delivered
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SMSMessageQuery when eager-loading is set.
	Edges        SMSMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SMSMessageEdges holds the relations/edges for other nodes in the graph.
type SMSMessageEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SMSMessageEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SMSMessageEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SMSMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case smsmessage.FieldID, smsmessage.FieldCampaignID, smsmessage.FieldContactID, smsmessage.FieldSequenceNumber, smsmessage.FieldErrorCode:
			values[i] = new(sql.NullInt64)
		case smsmessage.FieldDirection, smsmessage.FieldMessageBody, smsmessage.FieldStatus, smsmessage.FieldTwilioSid, smsmessage.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case smsmessage.FieldSentAt, smsmessage.FieldDeliveredAt, smsmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SMSMessage fields.
func (_m *SMSMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case smsmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case smsmessage.FieldCampaignID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = int(value.Int64)
			}
		case smsmessage.FieldContactID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = new(int)
				*_m.ContactID = int(value.Int64)
			}
		case smsmessage.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = smsmessage.Direction(value.String)
			}
		case smsmessage.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = new(int)
				*_m.SequenceNumber = int(value.Int64)
			}
		case smsmessage.FieldMessageBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_body", values[i])
			} else if value.Valid {
				_m.MessageBody = value.String
			}
		case smsmessage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = smsmessage.Status(value.String)
			}
		case smsmessage.FieldTwilioSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twilio_sid", values[i])
			} else if value.Valid {
				_m.TwilioSid = new(string)
				*_m.TwilioSid = value.String
			}
		case smsmessage.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case smsmessage.FieldErrorCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(int)
				*_m.ErrorCode = int(value.Int64)
			}
		case smsmessage.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case smsmessage.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = new(time.Time)
				*_m.DeliveredAt = value.Time
			}
		case smsmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SMSMessage.
// This includes values selected through modifiers, order, etc.
func (_m *SMSMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the SMSMessage entity.
func (_m *SMSMessage) QueryCampaign() *CampaignQuery {
	return NewSMSMessageClient(_m.config).QueryCampaign(_m)
}

// QueryContact queries the "contact" edge of the SMSMessage entity.
func (_m *SMSMessage) QueryContact() *ContactQuery {
	return NewSMSMessageClient(_m.config).QueryContact(_m)
}

// Update returns a builder for updating this SMSMessage.
// Note that you need to call SMSMessage.Unwrap() before calling this method if this SMSMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SMSMessage) Update() *SMSMessageUpdateOne {
	return NewSMSMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SMSMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SMSMessage) Unwrap() *SMSMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SMSMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SMSMessage) String() string {
	var builder strings.Builder
	builder.WriteString("SMSMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignID))
	builder.WriteString(", ")
	if v := _m.ContactID; v != nil {
		builder.WriteString("contact_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	if v := _m.SequenceNumber; v != nil {
		builder.WriteString("sequence_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("message_body=")
	builder.WriteString(_m.MessageBody)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TwilioSid; v != nil {
		builder.WriteString("twilio_sid=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeliveredAt; v != nil {
		builder.WriteString("delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SMSMessages is a parsable slice of SMSMessage.
type SMSMessages []*SMSMessage
