// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/ent/user"
)

// TwilioAccountCreate is the builder for creating a TwilioAccount entity.
type TwilioAccountCreate struct {
	config
	mutation *TwilioAccountMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TwilioAccountCreate) SetUserID(v int) *TwilioAccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAccountSid sets the "account_sid" field.
func (_c *TwilioAccountCreate) SetAccountSid(v string) *TwilioAccountCreate {
	_c.mutation.SetAccountSid(v)
	return _c
}

// SetAuthToken sets the "auth_token" field.
func (_c *TwilioAccountCreate) SetAuthToken(v string) *TwilioAccountCreate {
	_c.mutation.SetAuthToken(v)
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *TwilioAccountCreate) SetPhoneNumber(v string) *TwilioAccountCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *TwilioAccountCreate) SetNillablePhoneNumber(v *string) *TwilioAccountCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *TwilioAccountCreate) SetIsVerified(v bool) *TwilioAccountCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *TwilioAccountCreate) SetNillableIsVerified(v *bool) *TwilioAccountCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TwilioAccountCreate) SetCreatedAt(v time.Time) *TwilioAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TwilioAccountCreate) SetNillableCreatedAt(v *time.Time) *TwilioAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TwilioAccountCreate) SetUpdatedAt(v time.Time) *TwilioAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TwilioAccountCreate) SetNillableUpdatedAt(v *time.Time) *TwilioAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *TwilioAccountCreate) SetUser(v *User) *TwilioAccountCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the TwilioAccountMutation object of the builder.
func (_c *TwilioAccountCreate) Mutation() *TwilioAccountMutation {
	return _c.mutation
}

// Save creates the TwilioAccount in the database.
func (_c *TwilioAccountCreate) Save(ctx context.Context) (*TwilioAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TwilioAccountCreate) SaveX(ctx context.Context) *TwilioAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TwilioAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TwilioAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TwilioAccountCreate) defaults() {
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := twilioaccount.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := twilioaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := twilioaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TwilioAccountCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TwilioAccount.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := twilioaccount.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountSid(); !ok {
		return &ValidationError{Name: "account_sid", err: errors.New(`ent: missing required field "TwilioAccount.account_sid"`)}
	}
	if v, ok := _c.mutation.AccountSid(); ok {
		if err := twilioaccount.AccountSidValidator(v); err != nil {
			return &ValidationError{Name: "account_sid", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.account_sid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthToken(); !ok {
		return &ValidationError{Name: "auth_token", err: errors.New(`ent: missing required field "TwilioAccount.auth_token"`)}
	}
	if v, ok := _c.mutation.AuthToken(); ok {
		if err := twilioaccount.AuthTokenValidator(v); err != nil {
			return &ValidationError{Name: "auth_token", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.auth_token": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PhoneNumber(); ok {
		if err := twilioaccount.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "TwilioAccount.phone_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`ent: missing required field "TwilioAccount.is_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TwilioAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TwilioAccount.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "TwilioAccount.user"`)}
	}
	return nil
}

func (_c *TwilioAccountCreate) sqlSave(ctx context.Context) (*TwilioAccount, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TwilioAccountCreate) createSpec() (*TwilioAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &TwilioAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(twilioaccount.Table, sqlgraph.NewFieldSpec(twilioaccount.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AccountSid(); ok {
		_spec.SetField(twilioaccount.FieldAccountSid, field.TypeString, value)
		_node.AccountSid = value
	}
	if value, ok := _c.mutation.AuthToken(); ok {
		_spec.SetField(twilioaccount.FieldAuthToken, field.TypeString, value)
		_node.AuthToken = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(twilioaccount.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(twilioaccount.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(twilioaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(twilioaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TwilioAccountCreateBulk is the builder for creating many TwilioAccount entities in bulk.
type TwilioAccountCreateBulk struct {
	config
	err      error
	builders []*TwilioAccountCreate
}

// Save creates the TwilioAccount entities in the database.
func (_c *TwilioAccountCreateBulk) Save(ctx context.Context) ([]*TwilioAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TwilioAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TwilioAccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TwilioAccountCreateBulk) SaveX(ctx context.Context) []*TwilioAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TwilioAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TwilioAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
