// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/ent/user"
)

// TwilioAccount is the model entity for the TwilioAccount schema.
type TwilioAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Account owner
	UserID int `json:"user_id,omitempty"`
	// Twilio account SID
	AccountSid string `json:"account_sid,omitempty"`
	// Twilio auth token
	AuthToken string `json:"-"`
	// Sending number on this account (E.164)
	PhoneNumber string `json:"phone_number,omitempty"`
	// Whether the credentials were verified against the Twilio API
	IsVerified bool `json:"is_verified,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TwilioAccountQuery when eager-loading is set.
	Edges        TwilioAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TwilioAccountEdges holds the relations/edges for other nodes in the graph.
type TwilioAccountEdges struct {
	// Account owner
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TwilioAccountEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TwilioAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case twilioaccount.FieldIsVerified:
			values[i] = new(sql.NullBool)
		case twilioaccount.FieldID, twilioaccount.FieldUserID:
			values[i] = new(sql.NullInt64)
		case twilioaccount.FieldAccountSid, twilioaccount.FieldAuthToken, twilioaccount.FieldPhoneNumber:
			values[i] = new(sql.NullString)
		case twilioaccount.FieldCreatedAt, twilioaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TwilioAccount fields.
func (_m *TwilioAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case twilioaccount.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case twilioaccount.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case twilioaccount.FieldAccountSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_sid", values[i])
			} else if value.Valid {
				_m.AccountSid = value.String
			}
		case twilioaccount.FieldAuthToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_token", values[i])
			} else if value.Valid {
				_m.AuthToken = value.String
			}
		case twilioaccount.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = value.String
			}
		case twilioaccount.FieldIsVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_verified", values[i])
			} else if value.Valid {
				_m.IsVerified = value.Bool
			}
		case twilioaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case twilioaccount.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TwilioAccount.
// This includes values selected through modifiers, order, etc.
func (_m *TwilioAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the TwilioAccount entity.
func (_m *TwilioAccount) QueryUser() *UserQuery {
	return NewTwilioAccountClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this TwilioAccount.
// Note that you need to call TwilioAccount.Unwrap() before calling this method if this TwilioAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TwilioAccount) Update() *TwilioAccountUpdateOne {
	return NewTwilioAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TwilioAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TwilioAccount) Unwrap() *TwilioAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TwilioAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TwilioAccount) String() string {
	var builder strings.Builder
	builder.WriteString("TwilioAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("account_sid=")
	builder.WriteString(_m.AccountSid)
	builder.WriteString(", ")
	builder.WriteString("auth_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("phone_number=")
	builder.WriteString(_m.PhoneNumber)
	builder.WriteString(", ")
	builder.WriteString("is_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVerified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TwilioAccounts is a parsable slice of TwilioAccount.
type TwilioAccounts []*TwilioAccount
