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
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// MessageTemplateUpdate is the builder for updating MessageTemplate entities.
type MessageTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *MessageTemplateMutation
}

// Where appends a list predicates to the MessageTemplateUpdate builder.
func (_u *MessageTemplateUpdate) Where(ps ...predicate.MessageTemplate) *MessageTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *MessageTemplateUpdate) SetCampaignID(v int) *MessageTemplateUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableCampaignID(v *int) *MessageTemplateUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *MessageTemplateUpdate) SetSequenceNumber(v int) *MessageTemplateUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableSequenceNumber(v *int) *MessageTemplateUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *MessageTemplateUpdate) AddSequenceNumber(v int) *MessageTemplateUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageTemplateUpdate) SetBody(v string) *MessageTemplateUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageTemplateUpdate) SetNillableBody(v *string) *MessageTemplateUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *MessageTemplateUpdate) SetCampaign(v *Campaign) *MessageTemplateUpdate {
	return _u.SetCampaignID(v.ID)
}

// Mutation returns the MessageTemplateMutation object of the builder.
func (_u *MessageTemplateUpdate) Mutation() *MessageTemplateMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *MessageTemplateUpdate) ClearCampaign() *MessageTemplateUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageTemplateUpdate) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := messagetemplate.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := messagetemplate.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := messagetemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.body": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageTemplate.campaign"`)
	}
	return nil
}

func (_u *MessageTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetemplate.Table, messagetemplate.Columns, sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(messagetemplate.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(messagetemplate.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messagetemplate.FieldBody, field.TypeString, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagetemplate.CampaignTable,
			Columns: []string{messagetemplate.CampaignColumn},
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
			Table:   messagetemplate.CampaignTable,
			Columns: []string{messagetemplate.CampaignColumn},
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
			err = &NotFoundError{messagetemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageTemplateUpdateOne is the builder for updating a single MessageTemplate entity.
type MessageTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageTemplateMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *MessageTemplateUpdateOne) SetCampaignID(v int) *MessageTemplateUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableCampaignID(v *int) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *MessageTemplateUpdateOne) SetSequenceNumber(v int) *MessageTemplateUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableSequenceNumber(v *int) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *MessageTemplateUpdateOne) AddSequenceNumber(v int) *MessageTemplateUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *MessageTemplateUpdateOne) SetBody(v string) *MessageTemplateUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *MessageTemplateUpdateOne) SetNillableBody(v *string) *MessageTemplateUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *MessageTemplateUpdateOne) SetCampaign(v *Campaign) *MessageTemplateUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// Mutation returns the MessageTemplateMutation object of the builder.
func (_u *MessageTemplateUpdateOne) Mutation() *MessageTemplateMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *MessageTemplateUpdateOne) ClearCampaign() *MessageTemplateUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// Where appends a list predicates to the MessageTemplateUpdate builder.
func (_u *MessageTemplateUpdateOne) Where(ps ...predicate.MessageTemplate) *MessageTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageTemplateUpdateOne) Select(field string, fields ...string) *MessageTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageTemplate entity.
func (_u *MessageTemplateUpdateOne) Save(ctx context.Context) (*MessageTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageTemplateUpdateOne) SaveX(ctx context.Context) *MessageTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := messagetemplate.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := messagetemplate.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := messagetemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.body": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageTemplate.campaign"`)
	}
	return nil
}

func (_u *MessageTemplateUpdateOne) sqlSave(ctx context.Context) (_node *MessageTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messagetemplate.Table, messagetemplate.Columns, sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messagetemplate.FieldID)
		for _, f := range fields {
			if !messagetemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messagetemplate.FieldID {
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
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(messagetemplate.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(messagetemplate.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(messagetemplate.FieldBody, field.TypeString, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messagetemplate.CampaignTable,
			Columns: []string{messagetemplate.CampaignColumn},
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
			Table:   messagetemplate.CampaignTable,
			Columns: []string{messagetemplate.CampaignColumn},
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
	_node = &MessageTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messagetemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
