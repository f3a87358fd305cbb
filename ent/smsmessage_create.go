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
	"github.com/danielmv/leadrevive/ent/smsmessage"
)

// SMSMessageCreate is the builder for creating a SMSMessage entity.
type SMSMessageCreate struct {
	config
	mutation *SMSMessageMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *SMSMessageCreate) SetCampaignID(v int) *SMSMessageCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *SMSMessageCreate) SetContactID(v int) *SMSMessageCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableContactID(v *int) *SMSMessageCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *SMSMessageCreate) SetDirection(v smsmessage.Direction) *SMSMessageCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *SMSMessageCreate) SetSequenceNumber(v int) *SMSMessageCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableSequenceNumber(v *int) *SMSMessageCreate {
	if v != nil {
		_c.SetSequenceNumber(*v)
	}
	return _c
}

// SetMessageBody sets the "message_body" field.
func (_c *SMSMessageCreate) SetMessageBody(v string) *SMSMessageCreate {
	_c.mutation.SetMessageBody(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SMSMessageCreate) SetStatus(v smsmessage.Status) *SMSMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableStatus(v *smsmessage.Status) *SMSMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTwilioSid sets the "twilio_sid" field.
func (_c *SMSMessageCreate) SetTwilioSid(v string) *SMSMessageCreate {
	_c.mutation.SetTwilioSid(v)
	return _c
}

// SetNillableTwilioSid sets the "twilio_sid" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableTwilioSid(v *string) *SMSMessageCreate {
	if v != nil {
		_c.SetTwilioSid(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SMSMessageCreate) SetErrorMessage(v string) *SMSMessageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableErrorMessage(v *string) *SMSMessageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *SMSMessageCreate) SetErrorCode(v int) *SMSMessageCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableErrorCode(v *int) *SMSMessageCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *SMSMessageCreate) SetSentAt(v time.Time) *SMSMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableSentAt(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *SMSMessageCreate) SetDeliveredAt(v time.Time) *SMSMessageCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableDeliveredAt(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SMSMessageCreate) SetCreatedAt(v time.Time) *SMSMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SMSMessageCreate) SetNillableCreatedAt(v *time.Time) *SMSMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *SMSMessageCreate) SetCampaign(v *Campaign) *SMSMessageCreate {
	return _c.SetCampaignID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *SMSMessageCreate) SetContact(v *Contact) *SMSMessageCreate {
	return _c.SetContactID(v.ID)
}

// Mutation returns the SMSMessageMutation object of the builder.
func (_c *SMSMessageCreate) Mutation() *SMSMessageMutation {
	return _c.mutation
}

// Save creates the SMSMessage in the database.
func (_c *SMSMessageCreate) Save(ctx context.Context) (*SMSMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SMSMessageCreate) SaveX(ctx context.Context) *SMSMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SMSMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SMSMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SMSMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := smsmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := smsmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SMSMessageCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "SMSMessage.campaign_id"`)}
	}
	if v, ok := _c.mutation.CampaignID(); ok {
		if err := smsmessage.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.campaign_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "SMSMessage.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := smsmessage.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageBody(); !ok {
		return &ValidationError{Name: "message_body", err: errors.New(`ent: missing required field "SMSMessage.message_body"`)}
	}
	if v, ok := _c.mutation.MessageBody(); ok {
		if err := smsmessage.MessageBodyValidator(v); err != nil {
			return &ValidationError{Name: "message_body", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.message_body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SMSMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TwilioSid(); ok {
		if err := smsmessage.TwilioSidValidator(v); err != nil {
			return &ValidationError{Name: "twilio_sid", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.twilio_sid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SMSMessage.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "SMSMessage.campaign"`)}
	}
	return nil
}

func (_c *SMSMessageCreate) sqlSave(ctx context.Context) (*SMSMessage, error) {
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

func (_c *SMSMessageCreate) createSpec() (*SMSMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SMSMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(smsmessage.Table, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(smsmessage.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(smsmessage.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = &value
	}
	if value, ok := _c.mutation.MessageBody(); ok {
		_spec.SetField(smsmessage.FieldMessageBody, field.TypeString, value)
		_node.MessageBody = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TwilioSid(); ok {
		_spec.SetField(smsmessage.FieldTwilioSid, field.TypeString, value)
		_node.TwilioSid = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(smsmessage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(smsmessage.FieldErrorCode, field.TypeInt, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(smsmessage.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(smsmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   smsmessage.CampaignTable,
			Columns: []string{smsmessage.CampaignColumn},
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
			Table:   smsmessage.ContactTable,
			Columns: []string{smsmessage.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContactID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SMSMessageCreateBulk is the builder for creating many SMSMessage entities in bulk.
type SMSMessageCreateBulk struct {
	config
	err      error
	builders []*SMSMessageCreate
}

// Save creates the SMSMessage entities in the database.
func (_c *SMSMessageCreateBulk) Save(ctx context.Context) ([]*SMSMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SMSMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SMSMessageMutation)
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
func (_c *SMSMessageCreateBulk) SaveX(ctx context.Context) []*SMSMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SMSMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SMSMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
