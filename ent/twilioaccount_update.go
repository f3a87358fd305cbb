// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/predicate"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/ent/user"
)

// TwilioAccountUpdate is the builder for updating TwilioAccount entities.
type TwilioAccountUpdate struct {
	config
	hooks    []Hook
	mutation *TwilioAccountMutation
}

// Where appends a list predicates to the TwilioAccountUpdate builder.
func (_u *TwilioAccountUpdate) Where(ps ...predicate.TwilioAccount) *TwilioAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TwilioAccountUpdate) SetUserID(v int) *TwilioAccountUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TwilioAccountUpdate) SetNillableUserID(v *int) *TwilioAccountUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAccountSid sets the "account_sid" field.
func (_u *TwilioAccountUpdate) SetAccountSid(v string) *TwilioAccountUpdate {
	_u.mutation.SetAccountSid(v)
	return _u
}

// SetNillableAccountSid sets the "account_sid" field if the given value is not nil.
func (_u *TwilioAccountUpdate) SetNillableAccountSid(v *string) *TwilioAccountUpdate {
	if v != nil {
		_u.SetAccountSid(*v)
	}
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *TwilioAccountUpdate) SetAuthToken(v string) *TwilioAccountUpdate {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *TwilioAccountUpdate) SetNillableAuthToken(v *string) *TwilioAccountUpdate {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *TwilioAccountUpdate) SetPhoneNumber(v string) *TwilioAccountUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *TwilioAccountUpdate) SetNillablePhoneNumber(v *string) *TwilioAccountUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *TwilioAccountUpdate) ClearPhoneNumber() *TwilioAccountUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *TwilioAccountUpdate) SetIsVerified(v bool) *TwilioAccountUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *TwilioAccountUpdate) SetNillableIsVerified(v *bool) *TwilioAccountUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TwilioAccountUpdate) SetUpdatedAt(v time.Time) *TwilioAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TwilioAccountUpdate) SetUser(v *User) *TwilioAccountUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TwilioAccountMutation object of the builder.
func (_u *TwilioAccountUpdate) Mutation() *TwilioAccountMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TwilioAccountUpdate) ClearUser() *TwilioAccountUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TwilioAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TwilioAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TwilioAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TwilioAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TwilioAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := twilioaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TwilioAccountUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := twilioaccount.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountSid(); ok {
		if err := twilioaccount.AccountSidValidator(v); err != nil {
			return &ValidationError{Name: "account_sid", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.account_sid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthToken(); ok {
		if err := twilioaccount.AuthTokenValidator(v); err != nil {
			return &ValidationError{Name: "auth_token", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.auth_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := twilioaccount.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.phone_number": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TwilioAccount.user"`)
	}
	return nil
}

func (_u *TwilioAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(twilioaccount.Table, twilioaccount.Columns, sqlgraph.NewFieldSpec(twilioaccount.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountSid(); ok {
		_spec.SetField(twilioaccount.FieldAccountSid, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(twilioaccount.FieldAuthToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(twilioaccount.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(twilioaccount.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(twilioaccount.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(twilioaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   twilioaccount.UserTable,
			Columns: []string{twilioaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   twilioaccount.UserTable,
			Columns: []string{twilioaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{twilioaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TwilioAccountUpdateOne is the builder for updating a single TwilioAccount entity.
type TwilioAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TwilioAccountMutation
}

// SetUserID sets the "user_id" field.
func (_u *TwilioAccountUpdateOne) SetUserID(v int) *TwilioAccountUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TwilioAccountUpdateOne) SetNillableUserID(v *int) *TwilioAccountUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAccountSid sets the "account_sid" field.
func (_u *TwilioAccountUpdateOne) SetAccountSid(v string) *TwilioAccountUpdateOne {
	_u.mutation.SetAccountSid(v)
	return _u
}

// SetNillableAccountSid sets the "account_sid" field if the given value is not nil.
func (_u *TwilioAccountUpdateOne) SetNillableAccountSid(v *string) *TwilioAccountUpdateOne {
	if v != nil {
		_u.SetAccountSid(*v)
	}
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *TwilioAccountUpdateOne) SetAuthToken(v string) *TwilioAccountUpdateOne {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *TwilioAccountUpdateOne) SetNillableAuthToken(v *string) *TwilioAccountUpdateOne {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *TwilioAccountUpdateOne) SetPhoneNumber(v string) *TwilioAccountUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *TwilioAccountUpdateOne) SetNillablePhoneNumber(v *string) *TwilioAccountUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *TwilioAccountUpdateOne) ClearPhoneNumber() *TwilioAccountUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *TwilioAccountUpdateOne) SetIsVerified(v bool) *TwilioAccountUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *TwilioAccountUpdateOne) SetNillableIsVerified(v *bool) *TwilioAccountUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TwilioAccountUpdateOne) SetUpdatedAt(v time.Time) *TwilioAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TwilioAccountUpdateOne) SetUser(v *User) *TwilioAccountUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TwilioAccountMutation object of the builder.
func (_u *TwilioAccountUpdateOne) Mutation() *TwilioAccountMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TwilioAccountUpdateOne) ClearUser() *TwilioAccountUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the TwilioAccountUpdate builder.
func (_u *TwilioAccountUpdateOne) Where(ps ...predicate.TwilioAccount) *TwilioAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TwilioAccountUpdateOne) Select(field string, fields ...string) *TwilioAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TwilioAccount entity.
func (_u *TwilioAccountUpdateOne) Save(ctx context.Context) (*TwilioAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TwilioAccountUpdateOne) SaveX(ctx context.Context) *TwilioAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TwilioAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TwilioAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TwilioAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := twilioaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TwilioAccountUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := twilioaccount.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountSid(); ok {
		if err := twilioaccount.AccountSidValidator(v); err != nil {
			return &ValidationError{Name: "account_sid", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.account_sid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthToken(); ok {
		if err := twilioaccount.AuthTokenValidator(v); err != nil {
			return &ValidationError{Name: "auth_token", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.auth_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := twilioaccount.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.phone_number": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TwilioAccount.user"`)
	}
	return nil
}

func (_u *TwilioAccountUpdateOne) sqlSave(ctx context.Context) (_node *TwilioAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(twilioaccount.Table, twilioaccount.Columns, sqlgraph.NewFieldSpec(twilioaccount.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TwilioAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, twilioaccount.FieldID)
		for _, f := range fields {
			if !twilioaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != twilioaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountSid(); ok {
		_spec.SetField(twilioaccount.FieldAccountSid, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(twilioaccount.FieldAuthToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(twilioaccount.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(twilioaccount.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(twilioaccount.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(twilioaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   twilioaccount.UserTable,
			Columns: []string{twilioaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   twilioaccount.UserTable,
			Columns: []string{twilioaccount.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TwilioAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{twilioaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
