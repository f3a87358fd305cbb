// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
)

// UserBilling is the model entity for the UserBilling schema.
type UserBilling struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Billing owner
	UserID int `json:"user_id,omitempty"`
	// Subscribed plan identifier
	PlanID string `json:"plan_id,omitempty"`
	// Subscription status
	Status userbilling.Status `json:"status,omitempty"`
	// Message credits left this billing period
	CreditsRemaining int `json:"credits_remaining,omitempty"`
	// Stripe customer ID
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
	// Stripe subscription ID
	StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
	// Next credit renewal date
	RenewDate *time.Time `json:"renew_date,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserBillingQuery when eager-loading is set.
	Edges        UserBillingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserBillingEdges holds the relations/edges for other nodes in the graph.
type UserBillingEdges struct {
	// Billing owner
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserBillingEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserBilling) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userbilling.FieldID, userbilling.FieldUserID, userbilling.FieldCreditsRemaining:
			values[i] = new(sql.NullInt64)
		case userbilling.FieldPlanID, userbilling.FieldStatus, userbilling.FieldStripeCustomerID, userbilling.FieldStripeSubscriptionID:
			values[i] = new(sql.NullString)
		case userbilling.FieldRenewDate, userbilling.FieldCreatedAt, userbilling.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserBilling fields.
func (_m *UserBilling) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userbilling.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userbilling.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case userbilling.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case userbilling.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = userbilling.Status(value.String)
			}
		case userbilling.FieldCreditsRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credits_remaining", values[i])
			} else if value.Valid {
				_m.CreditsRemaining = int(value.Int64)
			}
		case userbilling.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				_m.StripeCustomerID = value.String
			}
		case userbilling.FieldStripeSubscriptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_subscription_id", values[i])
			} else if value.Valid {
				_m.StripeSubscriptionID = value.String
			}
		case userbilling.FieldRenewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field renew_date", values[i])
			} else if value.Valid {
				_m.RenewDate = new(time.Time)
				*_m.RenewDate = value.Time
			}
		case userbilling.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case userbilling.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UserBilling.
// This includes values selected through modifiers, order, etc.
func (_m *UserBilling) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the UserBilling entity.
func (_m *UserBilling) QueryUser() *UserQuery {
	return NewUserBillingClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this UserBilling.
// Note that you need to call UserBilling.Unwrap() before calling this method if this UserBilling
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserBilling) Update() *UserBillingUpdateOne {
	return NewUserBillingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserBilling entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserBilling) Unwrap() *UserBilling {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserBilling is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserBilling) String() string {
	var builder strings.Builder
	builder.WriteString("UserBilling(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("credits_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsRemaining))
	builder.WriteString(", ")
	builder.WriteString("stripe_customer_id=")
	builder.WriteString(_m.StripeCustomerID)
	builder.WriteString(", ")
	builder.WriteString("stripe_subscription_id=")
	builder.WriteString(_m.StripeSubscriptionID)
	builder.WriteString(", ")
	if v := _m.RenewDate; v != nil {
		builder.WriteString("renew_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserBillings is a parsable slice of UserBilling.
type UserBillings []*UserBilling
