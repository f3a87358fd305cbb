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
	"github.com/danielmv/leadrevive/ent/campaignevent"
)

// CampaignEventCreate is the builder for creating a CampaignEvent entity.
type CampaignEventCreate struct {
	config
	mutation *CampaignEventMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *CampaignEventCreate) SetCampaignID(v int) *CampaignEventCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CampaignEventCreate) SetUserID(v int) *CampaignEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *CampaignEventCreate) SetNillableUserID(v *int) *CampaignEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *CampaignEventCreate) SetEventType(v string) *CampaignEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *CampaignEventCreate) SetDetails(v map[string]interface{}) *CampaignEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignEventCreate) SetCreatedAt(v time.Time) *CampaignEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignEventCreate) SetNillableCreatedAt(v *time.Time) *CampaignEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *CampaignEventCreate) SetCampaign(v *Campaign) *CampaignEventCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the CampaignEventMutation object of the builder.
func (_c *CampaignEventCreate) Mutation() *CampaignEventMutation {
	return _c.mutation
}

// Save creates the CampaignEvent in the database.
func (_c *CampaignEventCreate) Save(ctx context.Context) (*CampaignEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignEventCreate) SaveX(ctx context.Context) *CampaignEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaignevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignEventCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "CampaignEvent.campaign_id"`)}
	}
	if v, ok := _c.mutation.CampaignID(); ok {
		if err := campaignevent.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "CampaignEvent.campaign_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "CampaignEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := campaignevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "CampaignEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CampaignEvent.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "CampaignEvent.campaign"`)}
	}
	return nil
}

func (_c *CampaignEventCreate) sqlSave(ctx context.Context) (*CampaignEvent, error) {
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

func (_c *CampaignEventCreate) createSpec() (*CampaignEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CampaignEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaignevent.Table, sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(campaignevent.FieldUserID, field.TypeInt, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(campaignevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(campaignevent.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaignevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignEventCreateBulk is the builder for creating many CampaignEvent entities in bulk.
type CampaignEventCreateBulk struct {
	config
	err      error
	builders []*CampaignEventCreate
}

// Save creates the CampaignEvent entities in the database.
func (_c *CampaignEventCreateBulk) Save(ctx context.Context) ([]*CampaignEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CampaignEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignEventMutation)
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
func (_c *CampaignEventCreateBulk) SaveX(ctx context.Context) []*CampaignEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
