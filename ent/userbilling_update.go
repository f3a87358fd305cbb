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
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
)

// UserBillingUpdate is the builder for updating UserBilling entities.
type UserBillingUpdate struct {
	config
	hooks    []Hook
	mutation *UserBillingMutation
}

// Where appends a list predicates to the UserBillingUpdate builder.
func (_u *UserBillingUpdate) Where(ps ...predicate.UserBilling) *UserBillingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserBillingUpdate) SetUserID(v int) *UserBillingUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillableUserID(v *int) *UserBillingUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *UserBillingUpdate) SetPlanID(v string) *UserBillingUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillablePlanID(v *string) *UserBillingUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// ClearPlanID clears the value of the "plan_id" field.
func (_u *UserBillingUpdate) ClearPlanID() *UserBillingUpdate {
	_u.mutation.ClearPlanID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserBillingUpdate) SetStatus(v userbilling.Status) *UserBillingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillableStatus(v *userbilling.Status) *UserBillingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreditsRemaining sets the "credits_remaining" field.
func (_u *UserBillingUpdate) SetCreditsRemaining(v int) *UserBillingUpdate {
	_u.mutation.ResetCreditsRemaining()
	_u.mutation.SetCreditsRemaining(v)
	return _u
}

// SetNillableCreditsRemaining sets the "credits_remaining" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillableCreditsRemaining(v *int) *UserBillingUpdate {
	if v != nil {
		_u.SetCreditsRemaining(*v)
	}
	return _u
}

// AddCreditsRemaining adds value to the "credits_remaining" field.
func (_u *UserBillingUpdate) AddCreditsRemaining(v int) *UserBillingUpdate {
	_u.mutation.AddCreditsRemaining(v)
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *UserBillingUpdate) SetStripeCustomerID(v string) *UserBillingUpdate {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillableStripeCustomerID(v *string) *UserBillingUpdate {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *UserBillingUpdate) ClearStripeCustomerID() *UserBillingUpdate {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *UserBillingUpdate) SetStripeSubscriptionID(v string) *UserBillingUpdate {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillableStripeSubscriptionID(v *string) *UserBillingUpdate {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *UserBillingUpdate) ClearStripeSubscriptionID() *UserBillingUpdate {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetRenewDate sets the "renew_date" field.
func (_u *UserBillingUpdate) SetRenewDate(v time.Time) *UserBillingUpdate {
	_u.mutation.SetRenewDate(v)
	return _u
}

// SetNillableRenewDate sets the "renew_date" field if the given value is not nil.
func (_u *UserBillingUpdate) SetNillableRenewDate(v *time.Time) *UserBillingUpdate {
	if v != nil {
		_u.SetRenewDate(*v)
	}
	return _u
}

// ClearRenewDate clears the value of the "renew_date" field.
func (_u *UserBillingUpdate) ClearRenewDate() *UserBillingUpdate {
	_u.mutation.ClearRenewDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserBillingUpdate) SetUpdatedAt(v time.Time) *UserBillingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserBillingUpdate) SetUser(v *User) *UserBillingUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UserBillingMutation object of the builder.
func (_u *UserBillingUpdate) Mutation() *UserBillingMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserBillingUpdate) ClearUser() *UserBillingUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserBillingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserBillingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserBillingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserBillingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserBillingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userbilling.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserBillingUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userbilling.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserBilling.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := userbilling.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserBilling.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditsRemaining(); ok {
		if err := userbilling.CreditsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "credits_remaining", err: fmt.Errorf(`ent: validator failed for field "UserBilling.credits_remaining": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserBilling.user"`)
	}
	return nil
}

func (_u *UserBillingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userbilling.Table, userbilling.Columns, sqlgraph.NewFieldSpec(userbilling.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(userbilling.FieldPlanID, field.TypeString, value)
	}
	if _u.mutation.PlanIDCleared() {
		_spec.ClearField(userbilling.FieldPlanID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userbilling.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreditsRemaining(); ok {
		_spec.SetField(userbilling.FieldCreditsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsRemaining(); ok {
		_spec.AddField(userbilling.FieldCreditsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(userbilling.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(userbilling.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(userbilling.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(userbilling.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.RenewDate(); ok {
		_spec.SetField(userbilling.FieldRenewDate, field.TypeTime, value)
	}
	if _u.mutation.RenewDateCleared() {
		_spec.ClearField(userbilling.FieldRenewDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userbilling.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userbilling.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserBillingUpdateOne is the builder for updating a single UserBilling entity.
type UserBillingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserBillingMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserBillingUpdateOne) SetUserID(v int) *UserBillingUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillableUserID(v *int) *UserBillingUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *UserBillingUpdateOne) SetPlanID(v string) *UserBillingUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillablePlanID(v *string) *UserBillingUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// ClearPlanID clears the value of the "plan_id" field.
func (_u *UserBillingUpdateOne) ClearPlanID() *UserBillingUpdateOne {
	_u.mutation.ClearPlanID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserBillingUpdateOne) SetStatus(v userbilling.Status) *UserBillingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillableStatus(v *userbilling.Status) *UserBillingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreditsRemaining sets the "credits_remaining" field.
func (_u *UserBillingUpdateOne) SetCreditsRemaining(v int) *UserBillingUpdateOne {
	_u.mutation.ResetCreditsRemaining()
	_u.mutation.SetCreditsRemaining(v)
	return _u
}

// SetNillableCreditsRemaining sets the "credits_remaining" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillableCreditsRemaining(v *int) *UserBillingUpdateOne {
	if v != nil {
		_u.SetCreditsRemaining(*v)
	}
	return _u
}

// AddCreditsRemaining adds value to the "credits_remaining" field.
func (_u *UserBillingUpdateOne) AddCreditsRemaining(v int) *UserBillingUpdateOne {
	_u.mutation.AddCreditsRemaining(v)
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *UserBillingUpdateOne) SetStripeCustomerID(v string) *UserBillingUpdateOne {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillableStripeCustomerID(v *string) *UserBillingUpdateOne {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *UserBillingUpdateOne) ClearStripeCustomerID() *UserBillingUpdateOne {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *UserBillingUpdateOne) SetStripeSubscriptionID(v string) *UserBillingUpdateOne {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillableStripeSubscriptionID(v *string) *UserBillingUpdateOne {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *UserBillingUpdateOne) ClearStripeSubscriptionID() *UserBillingUpdateOne {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetRenewDate sets the "renew_date" field.
func (_u *UserBillingUpdateOne) SetRenewDate(v time.Time) *UserBillingUpdateOne {
	_u.mutation.SetRenewDate(v)
	return _u
}

// SetNillableRenewDate sets the "renew_date" field if the given value is not nil.
func (_u *UserBillingUpdateOne) SetNillableRenewDate(v *time.Time) *UserBillingUpdateOne {
	if v != nil {
		_u.SetRenewDate(*v)
	}
	return _u
}

// ClearRenewDate clears the value of the "renew_date" field.
func (_u *UserBillingUpdateOne) ClearRenewDate() *UserBillingUpdateOne {
	_u.mutation.ClearRenewDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserBillingUpdateOne) SetUpdatedAt(v time.Time) *UserBillingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *UserBillingUpdateOne) SetUser(v *User) *UserBillingUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the UserBillingMutation object of the builder.
func (_u *UserBillingUpdateOne) Mutation() *UserBillingMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *UserBillingUpdateOne) ClearUser() *UserBillingUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the UserBillingUpdate builder.
func (_u *UserBillingUpdateOne) Where(ps ...predicate.UserBilling) *UserBillingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserBillingUpdateOne) Select(field string, fields ...string) *UserBillingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserBilling entity.
func (_u *UserBillingUpdateOne) Save(ctx context.Context) (*UserBilling, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserBillingUpdateOne) SaveX(ctx context.Context) *UserBilling {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserBillingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserBillingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserBillingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userbilling.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserBillingUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := userbilling.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserBilling.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := userbilling.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UserBilling.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditsRemaining(); ok {
		if err := userbilling.CreditsRemainingValidator(v); err != nil {
			return &ValidationError{Name: "credits_remaining", err: fmt.Errorf(`ent: validator failed for field "UserBilling.credits_remaining": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserBilling.user"`)
	}
	return nil
}

func (_u *UserBillingUpdateOne) sqlSave(ctx context.Context) (_node *UserBilling, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userbilling.Table, userbilling.Columns, sqlgraph.NewFieldSpec(userbilling.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserBilling.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userbilling.FieldID)
		for _, f := range fields {
			if !userbilling.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userbilling.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(userbilling.FieldPlanID, field.TypeString, value)
	}
	if _u.mutation.PlanIDCleared() {
		_spec.ClearField(userbilling.FieldPlanID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(userbilling.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreditsRemaining(); ok {
		_spec.SetField(userbilling.FieldCreditsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsRemaining(); ok {
		_spec.AddField(userbilling.FieldCreditsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(userbilling.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(userbilling.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(userbilling.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(userbilling.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.RenewDate(); ok {
		_spec.SetField(userbilling.FieldRenewDate, field.TypeTime, value)
	}
	if _u.mutation.RenewDateCleared() {
		_spec.ClearField(userbilling.FieldRenewDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userbilling.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UserBilling{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userbilling.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
