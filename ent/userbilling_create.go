// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
)

// UserBillingCreate is the builder for creating a UserBilling entity.
type UserBillingCreate struct {
	config
	mutation *UserBillingMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserBillingCreate) SetUserID(v int) *UserBillingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *UserBillingCreate) SetPlanID(v string) *UserBillingCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillablePlanID(v *string) *UserBillingCreate {
	if v != nil {
		_c.SetPlanID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserBillingCreate) SetStatus(v userbilling.Status) *UserBillingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableStatus(v *userbilling.Status) *UserBillingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreditsRemaining sets the "credits_remaining" field.
func (_c *UserBillingCreate) SetCreditsRemaining(v int) *UserBillingCreate {
	_c.mutation.SetCreditsRemaining(v)
	return _c
}

// SetNillableCreditsRemaining sets the "credits_remaining" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableCreditsRemaining(v *int) *UserBillingCreate {
	if v != nil {
		_c.SetCreditsRemaining(*v)
	}
	return _c
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_c *UserBillingCreate) SetStripeCustomerID(v string) *UserBillingCreate {
	_c.mutation.SetStripeCustomerID(v)
	return _c
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableStripeCustomerID(v *string) *UserBillingCreate {
	if v != nil {
		_c.SetStripeCustomerID(*v)
	}
	return _c
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_c *UserBillingCreate) SetStripeSubscriptionID(v string) *UserBillingCreate {
	_c.mutation.SetStripeSubscriptionID(v)
	return _c
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableStripeSubscriptionID(v *string) *UserBillingCreate {
	if v != nil {
		_c.SetStripeSubscriptionID(*v)
	}
	return _c
}

// SetRenewDate sets the "renew_date" field.
func (_c *UserBillingCreate) SetRenewDate(v time.Time) *UserBillingCreate {
	_c.mutation.SetRenewDate(v)
	return _c
}

// SetNillableRenewDate sets the "renew_date" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableRenewDate(v *time.Time) *UserBillingCreate {
	if v != nil {
		_c.SetRenewDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserBillingCreate) SetCreatedAt(v time.Time) *UserBillingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableCreatedAt(v *time.Time) *UserBillingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserBillingCreate) SetUpdatedAt(v time.Time) *UserBillingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserBillingCreate) SetNillableUpdatedAt(v *time.Time) *UserBillingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserBillingCreate) SetUser(v *User) *UserBillingCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UserBillingMutation object of the builder.
func (_c *UserBillingCreate) Mutation() *UserBillingMutation {
	return _c.mutation
}

// Save creates the UserBilling in the database.
func (_c *UserBillingCreate) Save(ctx context.Context) (*UserBilling, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserBillingCreate) SaveX(ctx context.Context) *UserBilling {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserBillingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserBillingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserBillingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := userbilling.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreditsRemaining(); !ok {
		v := userbilling.DefaultCreditsRemaining
		_c.mutation.SetCreditsRemaining(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userbilling.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userbilling.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserBillingCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserBilling.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userbilling.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserBilling.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UserBilling.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := userbilling.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserBilling.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreditsRemaining(); !ok {
		return &ValidationError{Name: "credits_remaining", err: errors.New(`ent: missing required field "UserBilling.credits_remaining"`)}
	}
	if v, ok := _c.mutation.CreditsRemaining(); ok {
		if err := userbilling.CreditsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "credits_remaining", err: fmt.Errorf(`ent: validator failed for field "UserBilling.credits_remaining": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserBilling.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserBilling.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UserBilling.user"`)}
	}
	return nil
}

func (_c *UserBillingCreate) sqlSave(ctx context.Context) (*UserBilling, error) {
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

func (_c *UserBillingCreate) createSpec() (*UserBilling, *sqlgraph.CreateSpec) {
	var (
		_node = &UserBilling{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userbilling.Table, sqlgraph.NewFieldSpec(userbilling.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(userbilling.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(userbilling.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreditsRemaining(); ok {
		_spec.SetField(userbilling.FieldCreditsRemaining, field.TypeInt, value)
		_node.CreditsRemaining = value
	}
	if value, ok := _c.mutation.StripeCustomerID(); ok {
		_spec.SetField(userbilling.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = value
	}
	if value, ok := _c.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(userbilling.FieldStripeSubscriptionID, field.TypeString, value)
		_node.StripeSubscriptionID = value
	}
	if value, ok := _c.mutation.RenewDate(); ok {
		_spec.SetField(userbilling.FieldRenewDate, field.TypeTime, value)
		_node.RenewDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userbilling.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userbilling.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userbilling.UserTable,
			Columns: []string{userbilling.UserColumn},
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

// UserBillingCreateBulk is the builder for creating many UserBilling entities in bulk.
type UserBillingCreateBulk struct {
	config
	err      error
	builders []*UserBillingCreate
}

// Save creates the UserBilling entities in the database.
func (_c *UserBillingCreateBulk) Save(ctx context.Context) ([]*UserBilling, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserBilling, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserBillingMutation)
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
func (_c *UserBillingCreateBulk) SaveX(ctx context.Context) []*UserBilling {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserBillingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserBillingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
