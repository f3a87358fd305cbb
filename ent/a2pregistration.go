// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/user"
)

// A2PRegistration is the model entity for the A2PRegistration schema.
type A2PRegistration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Registration owner
	UserID int `json:"user_id,omitempty"`
	// Registration progress
	Status a2pregistration.Status `json:"status,omitempty"`
	// Registered company name
	CompanyName string `json:"company_name,omitempty"`
	// Employer identification number
	Ein string `json:"-"`
	// Business vertical
	Vertical string `json:"vertical,omitempty"`
	// Registration contact name
	ContactName string `json:"contact_name,omitempty"`
	// Registration contact email
	ContactEmail string `json:"contact_email,omitempty"`
	// Twilio subaccount SID created for this user
	SubaccountSid string `json:"subaccount_sid,omitempty"`
	// Twilio A2P brand registration SID
	BrandSid string `json:"brand_sid,omitempty"`
	// Twilio A2P campaign registration SID
	CampaignSid string `json:"campaign_sid,omitempty"`
	// Compliant number assigned to this registration (E.164)
	PhoneNumber string `json:"phone_number,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the A2PRegistrationQuery when eager-loading is set.
	Edges        A2PRegistrationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// A2PRegistrationEdges holds the relations/edges for other nodes in the graph.
type A2PRegistrationEdges struct {
	// Registration owner
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e A2PRegistrationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*A2PRegistration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case a2pregistration.FieldID, a2pregistration.FieldUserID:
			values[i] = new(sql.NullInt64)
		case a2pregistration.FieldStatus, a2pregistration.FieldCompanyName, a2pregistration.FieldEin, a2pregistration.FieldVertical, a2pregistration.FieldContactName, a2pregistration.FieldContactEmail, a2pregistration.FieldSubaccountSid, a2pregistration.FieldBrandSid, a2pregistration.FieldCampaignSid, a2pregistration.FieldPhoneNumber:
			values[i] = new(sql.NullString)
		case a2pregistration.FieldCreatedAt, a2pregistration.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the A2PRegistration fields.
func (_m *A2PRegistration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case a2pregistration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case a2pregistration.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case a2pregistration.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = a2pregistration.Status(value.String)
			}
		case a2pregistration.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case a2pregistration.FieldEin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ein", values[i])
			} else if value.Valid {
				_m.Ein = value.String
			}
		case a2pregistration.FieldVertical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vertical", values[i])
			} else if value.Valid {
				_m.Vertical = value.String
			}
		case a2pregistration.FieldContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name", values[i])
			} else if value.Valid {
				_m.ContactName = value.String
			}
		case a2pregistration.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				_m.ContactEmail = value.String
			}
		case a2pregistration.FieldSubaccountSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subaccount_sid", values[i])
			} else if value.Valid {
				_m.SubaccountSid = value.String
			}
		case a2pregistration.FieldBrandSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_sid", values[i])
			} else if value.Valid {
				_m.BrandSid = value.String
			}
		case a2pregistration.FieldCampaignSid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_sid", values[i])
			} else if value.Valid {
				_m.CampaignSid = value.String
			}
		case a2pregistration.FieldPhoneNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number", values[i])
			} else if value.Valid {
				_m.PhoneNumber = value.String
			}
		case a2pregistration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case a2pregistration.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the A2PRegistration.
// This includes values selected through modifiers, order, etc.
func (_m *A2PRegistration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the A2PRegistration entity.
func (_m *A2PRegistration) QueryUser() *UserQuery {
	return NewA2PRegistrationClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this A2PRegistration.
// Note that you need to call A2PRegistration.Unwrap() before calling this method if this A2PRegistration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *A2PRegistration) Update() *A2PRegistrationUpdateOne {
	return NewA2PRegistrationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the A2PRegistration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *A2PRegistration) Unwrap() *A2PRegistration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: A2PRegistration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *A2PRegistration) String() string {
	var builder strings.Builder
	builder.WriteString("A2PRegistration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("ein=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("vertical=")
	builder.WriteString(_m.Vertical)
	builder.WriteString(", ")
	builder.WriteString("contact_name=")
	builder.WriteString(_m.ContactName)
	builder.WriteString(", ")
	builder.WriteString("contact_email=")
	builder.WriteString(_m.ContactEmail)
	builder.WriteString(", ")
	builder.WriteString("subaccount_sid=")
	builder.WriteString(_m.SubaccountSid)
	builder.WriteString(", ")
	builder.WriteString("brand_sid=")
	builder.WriteString(_m.BrandSid)
	builder.WriteString(", ")
	builder.WriteString("campaign_sid=")
	builder.WriteString(_m.CampaignSid)
	builder.WriteString(", ")
	builder.WriteString("phone_number=")
	builder.WriteString(_m.PhoneNumber)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// A2PRegistrations is a parsable slice of A2PRegistration.
type A2PRegistrations []*A2PRegistration
