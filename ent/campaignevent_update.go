// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// CampaignEventUpdate is the builder for updating CampaignEvent entities.
type CampaignEventUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignEventMutation
}

// Where appends a list predicates to the CampaignEventUpdate builder.
func (_u *CampaignEventUpdate) Where(ps ...predicate.CampaignEvent) *CampaignEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CampaignEventUpdate) SetCampaignID(v int) *CampaignEventUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CampaignEventUpdate) SetNillableCampaignID(v *int) *CampaignEventUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CampaignEventUpdate) SetUserID(v int) *CampaignEventUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CampaignEventUpdate) SetNillableUserID(v *int) *CampaignEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CampaignEventUpdate) AddUserID(v int) *CampaignEventUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CampaignEventUpdate) ClearUserID() *CampaignEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *CampaignEventUpdate) SetEventType(v string) *CampaignEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *CampaignEventUpdate) SetNillableEventType(v *string) *CampaignEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *CampaignEventUpdate) SetDetails(v map[string]interface{}) *CampaignEventUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *CampaignEventUpdate) ClearDetails() *CampaignEventUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *CampaignEventUpdate) SetCampaign(v *Campaign) *CampaignEventUpdate {
	return _u.SetCampaignID(v.ID)
}

// Mutation returns the CampaignEventMutation object of the builder.
func (_u *CampaignEventUpdate) Mutation() *CampaignEventMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *CampaignEventUpdate) ClearCampaign() *CampaignEventUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignEventUpdate) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := campaignevent.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEvent.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := campaignevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "CampaignEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignEvent.campaign"`)
	}
	return nil
}

func (_u *CampaignEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignevent.Table, campaignevent.Columns, sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(campaignevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(campaignevent.FieldUserID, field.TypeInt, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(campaignevent.FieldUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(campaignevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(campaignevent.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(campaignevent.FieldDetails, field.TypeJSON)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignevent.CampaignTable,
			Columns: []string{campaignevent.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignevent.CampaignTable,
			Columns: []string{campaignevent.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignEventUpdateOne is the builder for updating a single CampaignEvent entity.
type CampaignEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignEventMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *CampaignEventUpdateOne) SetCampaignID(v int) *CampaignEventUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *CampaignEventUpdateOne) SetNillableCampaignID(v *int) *CampaignEventUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CampaignEventUpdateOne) SetUserID(v int) *CampaignEventUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CampaignEventUpdateOne) SetNillableUserID(v *int) *CampaignEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CampaignEventUpdateOne) AddUserID(v int) *CampaignEventUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *CampaignEventUpdateOne) ClearUserID() *CampaignEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *CampaignEventUpdateOne) SetEventType(v string) *CampaignEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *CampaignEventUpdateOne) SetNillableEventType(v *string) *CampaignEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *CampaignEventUpdateOne) SetDetails(v map[string]interface{}) *CampaignEventUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *CampaignEventUpdateOne) ClearDetails() *CampaignEventUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *CampaignEventUpdateOne) SetCampaign(v *Campaign) *CampaignEventUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// Mutation returns the CampaignEventMutation object of the builder.
func (_u *CampaignEventUpdateOne) Mutation() *CampaignEventMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *CampaignEventUpdateOne) ClearCampaign() *CampaignEventUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// Where appends a list predicates to the CampaignEventUpdate builder.
func (_u *CampaignEventUpdateOne) Where(ps ...predicate.CampaignEvent) *CampaignEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignEventUpdateOne) Select(field string, fields ...string) *CampaignEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CampaignEvent entity.
func (_u *CampaignEventUpdateOne) Save(ctx context.Context) (*CampaignEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignEventUpdateOne) SaveX(ctx context.Context) *CampaignEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignEventUpdateOne) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := campaignevent.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEvent.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := campaignevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "CampaignEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampaignEvent.campaign"`)
	}
	return nil
}

func (_u *CampaignEventUpdateOne) sqlSave(ctx context.Context) (_node *CampaignEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignevent.Table, campaignevent.Columns, sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CampaignEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaignevent.FieldID)
		for _, f := range fields {
			if !campaignevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaignevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(campaignevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(campaignevent.FieldUserID, field.TypeInt, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(campaignevent.FieldUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(campaignevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(campaignevent.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(campaignevent.FieldDetails, field.TypeJSON)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignevent.CampaignTable,
			Columns: []string{campaignevent.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaignevent.CampaignTable,
			Columns: []string{campaignevent.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CampaignEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
