// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
)

// ScheduledSendCreate is the builder for creating a ScheduledSend entity.
type ScheduledSendCreate struct {
	config
	mutation *ScheduledSendMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *ScheduledSendCreate) SetCampaignID(v int) *ScheduledSendCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *ScheduledSendCreate) SetContactID(v int) *ScheduledSendCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *ScheduledSendCreate) SetSequenceNumber(v int) *ScheduledSendCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *ScheduledSendCreate) SetScheduledFor(v time.Time) *ScheduledSendCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledSendCreate) SetStatus(v scheduledsend.Status) *ScheduledSendCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledSendCreate) SetNillableStatus(v *scheduledsend.Status) *ScheduledSendCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScheduledSendCreate) SetErrorMessage(v string) *ScheduledSendCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScheduledSendCreate) SetNillableErrorMessage(v *string) *ScheduledSendCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ScheduledSendCreate) SetProcessedAt(v time.Time) *ScheduledSendCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ScheduledSendCreate) SetNillableProcessedAt(v *time.Time) *ScheduledSendCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledSendCreate) SetCreatedAt(v time.Time) *ScheduledSendCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledSendCreate) SetNillableCreatedAt(v *time.Time) *ScheduledSendCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledSendCreate) SetUpdatedAt(v time.Time) *ScheduledSendCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledSendCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledSendCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *ScheduledSendCreate) SetCampaign(v *Campaign) *ScheduledSendCreate {
	return _c.SetCampaignID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *ScheduledSendCreate) SetContact(v *Contact) *ScheduledSendCreate {
	return _c.SetContactID(v.ID)
}

// Mutation returns the ScheduledSendMutation object of the builder.
func (_c *ScheduledSendCreate) Mutation() *ScheduledSendMutation {
	return _c.mutation
}

// Save creates the ScheduledSend in the database.
func (_c *ScheduledSendCreate) Save(ctx context.Context) (*ScheduledSend, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledSendCreate) SaveX(ctx context.Context) *ScheduledSend {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledSendCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledSendCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledSendCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledsend.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledsend.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledsend.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledSendCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "ScheduledSend.campaign_id"`)}
	}
	if v, ok := _c.mutation.CampaignID(); ok {
		if err := scheduledsend.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.campaign_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContactID(); !ok {
		return &ValidationError{Name: "contact_id", err: errors.New(`ent: missing required field "ScheduledSend.contact_id"`)}
	}
	if v, ok := _c.mutation.ContactID(); ok {
		if err := scheduledsend.ContactIDValidator(v); err != nil {
			return &ValidationError{Name: "contact_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.contact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "ScheduledSend.sequence_number"`)}
	}
	if v, ok := _c.mutation.SequenceNumber(); ok {
		if err := scheduledsend.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.sequence_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`ent: missing required field "ScheduledSend.scheduled_for"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledSend.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledsend.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledSend.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledSend.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "ScheduledSend.campaign"`)}
	}
	if len(_c.mutation.ContactIDs()) == 0 {
		return &ValidationError{Name: "contact", err: errors.New(`ent: missing required edge "ScheduledSend.contact"`)}
	}
	return nil
}

func (_c *ScheduledSendCreate) sqlSave(ctx context.Context) (*ScheduledSend, error) {
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

func (_c *ScheduledSendCreate) createSpec() (*ScheduledSend, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledSend{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledsend.Table, sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(scheduledsend.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledsend.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledsend.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledsend.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(scheduledsend.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledsend.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledsend.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledsend.CampaignTable,
			Columns: []string{scheduledsend.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledsend.ContactTable,
			Columns: []string{scheduledsend.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledSendCreateBulk is the builder for creating many ScheduledSend entities in bulk.
type ScheduledSendCreateBulk struct {
	config
	err      error
	builders []*ScheduledSendCreate
}

// Save creates the ScheduledSend entities in the database.
func (_c *ScheduledSendCreateBulk) Save(ctx context.Context) ([]*ScheduledSend, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledSend, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledSendMutation)
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
func (_c *ScheduledSendCreateBulk) SaveX(ctx context.Context) []*ScheduledSend {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledSendCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledSendCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
