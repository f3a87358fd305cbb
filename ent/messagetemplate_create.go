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
	"github.com/danielmv/leadrevive/ent/messagetemplate"
)

// MessageTemplateCreate is the builder for creating a MessageTemplate entity.
type MessageTemplateCreate struct {
	config
	mutation *MessageTemplateMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *MessageTemplateCreate) SetCampaignID(v int) *MessageTemplateCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *MessageTemplateCreate) SetSequenceNumber(v int) *MessageTemplateCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageTemplateCreate) SetBody(v string) *MessageTemplateCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageTemplateCreate) SetCreatedAt(v time.Time) *MessageTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageTemplateCreate) SetNillableCreatedAt(v *time.Time) *MessageTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *MessageTemplateCreate) SetCampaign(v *Campaign) *MessageTemplateCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the MessageTemplateMutation object of the builder.
func (_c *MessageTemplateCreate) Mutation() *MessageTemplateMutation {
	return _c.mutation
}

// Save creates the MessageTemplate in the database.
func (_c *MessageTemplateCreate) Save(ctx context.Context) (*MessageTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageTemplateCreate) SaveX(ctx context.Context) *MessageTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messagetemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageTemplateCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "MessageTemplate.campaign_id"`)}
	}
	if v, ok := _c.mutation.CampaignID(); ok {
		if err := messagetemplate.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.campaign_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "MessageTemplate.sequence_number"`)}
	}
	if v, ok := _c.mutation.SequenceNumber(); ok {
		if err := messagetemplate.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.sequence_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "MessageTemplate.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := messagetemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "MessageTemplate.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageTemplate.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "MessageTemplate.campaign"`)}
	}
	return nil
}

func (_c *MessageTemplateCreate) sqlSave(ctx context.Context) (*MessageTemplate, error) {
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

func (_c *MessageTemplateCreate) createSpec() (*MessageTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messagetemplate.Table, sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(messagetemplate.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(messagetemplate.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messagetemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageTemplateCreateBulk is the builder for creating many MessageTemplate entities in bulk.
type MessageTemplateCreateBulk struct {
	config
	err      error
	builders []*MessageTemplateCreate
}

// Save creates the MessageTemplate entities in the database.
func (_c *MessageTemplateCreateBulk) Save(ctx context.Context) ([]*MessageTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageTemplateMutation)
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
func (_c *MessageTemplateCreateBulk) SaveX(ctx context.Context) []*MessageTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
