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
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/predicate"
	"github.com/danielmv/leadrevive/ent/smsmessage"
)

// SMSMessageUpdate is the builder for updating SMSMessage entities.
type SMSMessageUpdate struct {
	config
	hooks    []Hook
	mutation *SMSMessageMutation
}

// Where appends a list predicates to the SMSMessageUpdate builder.
func (_u *SMSMessageUpdate) Where(ps ...predicate.SMSMessage) *SMSMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *SMSMessageUpdate) SetCampaignID(v int) *SMSMessageUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableCampaignID(v *int) *SMSMessageUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *SMSMessageUpdate) SetContactID(v int) *SMSMessageUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableContactID(v *int) *SMSMessageUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *SMSMessageUpdate) ClearContactID() *SMSMessageUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *SMSMessageUpdate) SetDirection(v smsmessage.Direction) *SMSMessageUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableDirection(v *smsmessage.Direction) *SMSMessageUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *SMSMessageUpdate) SetSequenceNumber(v int) *SMSMessageUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableSequenceNumber(v *int) *SMSMessageUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *SMSMessageUpdate) AddSequenceNumber(v int) *SMSMessageUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// ClearSequenceNumber clears the value of the "sequence_number" field.
func (_u *SMSMessageUpdate) ClearSequenceNumber() *SMSMessageUpdate {
	_u.mutation.ClearSequenceNumber()
	return _u
}

// SetMessageBody sets the "message_body" field.
func (_u *SMSMessageUpdate) SetMessageBody(v string) *SMSMessageUpdate {
	_u.mutation.SetMessageBody(v)
	return _u
}

// SetNillableMessageBody sets the "message_body" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableMessageBody(v *string) *SMSMessageUpdate {
	if v != nil {
		_u.SetMessageBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SMSMessageUpdate) SetStatus(v smsmessage.Status) *SMSMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableStatus(v *smsmessage.Status) *SMSMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTwilioSid sets the "twilio_sid" field.
func (_u *SMSMessageUpdate) SetTwilioSid(v string) *SMSMessageUpdate {
	_u.mutation.SetTwilioSid(v)
	return _u
}

// SetNillableTwilioSid sets the "twilio_sid" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableTwilioSid(v *string) *SMSMessageUpdate {
	if v != nil {
		_u.SetTwilioSid(*v)
	}
	return _u
}

// ClearTwilioSid clears the value of the "twilio_sid" field.
func (_u *SMSMessageUpdate) ClearTwilioSid() *SMSMessageUpdate {
	_u.mutation.ClearTwilioSid()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SMSMessageUpdate) SetErrorMessage(v string) *SMSMessageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableErrorMessage(v *string) *SMSMessageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SMSMessageUpdate) ClearErrorMessage() *SMSMessageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *SMSMessageUpdate) SetErrorCode(v int) *SMSMessageUpdate {
	_u.mutation.ResetErrorCode()
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableErrorCode(v *int) *SMSMessageUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// AddErrorCode adds value to the "error_code" field.
func (_u *SMSMessageUpdate) AddErrorCode(v int) *SMSMessageUpdate {
	_u.mutation.AddErrorCode(v)
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *SMSMessageUpdate) ClearErrorCode() *SMSMessageUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *SMSMessageUpdate) SetSentAt(v time.Time) *SMSMessageUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableSentAt(v *time.Time) *SMSMessageUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *SMSMessageUpdate) ClearSentAt() *SMSMessageUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *SMSMessageUpdate) SetDeliveredAt(v time.Time) *SMSMessageUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *SMSMessageUpdate) SetNillableDeliveredAt(v *time.Time) *SMSMessageUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *SMSMessageUpdate) ClearDeliveredAt() *SMSMessageUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *SMSMessageUpdate) SetCampaign(v *Campaign) *SMSMessageUpdate {
	return _u.SetCampaignID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *SMSMessageUpdate) SetContact(v *Contact) *SMSMessageUpdate {
	return _u.SetContactID(v.ID)
}

// Mutation returns the SMSMessageMutation object of the builder.
func (_u *SMSMessageUpdate) Mutation() *SMSMessageMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *SMSMessageUpdate) ClearCampaign() *SMSMessageUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *SMSMessageUpdate) ClearContact() *SMSMessageUpdate {
	_u.mutation.ClearContact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SMSMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SMSMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SMSMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SMSMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SMSMessageUpdate) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := smsmessage.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := smsmessage.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageBody(); ok {
		if err := smsmessage.MessageBodyValidator(v); err != nil {
			return &ValidationError{Name: "message_body", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.message_body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TwilioSid(); ok {
		if err := smsmessage.TwilioSidValidator(v); err != nil {
			return &ValidationError{Name: "twilio_sid", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.twilio_sid": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SMSMessage.campaign"`)
	}
	return nil
}

func (_u *SMSMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsmessage.Table, smsmessage.Columns, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(smsmessage.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(smsmessage.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(smsmessage.FieldSequenceNumber, field.TypeInt, value)
	}
	if _u.mutation.SequenceNumberCleared() {
		_spec.ClearField(smsmessage.FieldSequenceNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.MessageBody(); ok {
		_spec.SetField(smsmessage.FieldMessageBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TwilioSid(); ok {
		_spec.SetField(smsmessage.FieldTwilioSid, field.TypeString, value)
	}
	if _u.mutation.TwilioSidCleared() {
		_spec.ClearField(smsmessage.FieldTwilioSid, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(smsmessage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(smsmessage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(smsmessage.FieldErrorCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCode(); ok {
		_spec.AddField(smsmessage.FieldErrorCode, field.TypeInt, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(smsmessage.FieldErrorCode, field.TypeInt)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(smsmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(smsmessage.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(smsmessage.FieldDeliveredAt, field.TypeTime)
	}
	if _u.mutation.CampaignCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SMSMessageUpdateOne is the builder for updating a single SMSMessage entity.
type SMSMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SMSMessageMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *SMSMessageUpdateOne) SetCampaignID(v int) *SMSMessageUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableCampaignID(v *int) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *SMSMessageUpdateOne) SetContactID(v int) *SMSMessageUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableContactID(v *int) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *SMSMessageUpdateOne) ClearContactID() *SMSMessageUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *SMSMessageUpdateOne) SetDirection(v smsmessage.Direction) *SMSMessageUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableDirection(v *smsmessage.Direction) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *SMSMessageUpdateOne) SetSequenceNumber(v int) *SMSMessageUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableSequenceNumber(v *int) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *SMSMessageUpdateOne) AddSequenceNumber(v int) *SMSMessageUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// ClearSequenceNumber clears the value of the "sequence_number" field.
func (_u *SMSMessageUpdateOne) ClearSequenceNumber() *SMSMessageUpdateOne {
	_u.mutation.ClearSequenceNumber()
	return _u
}

// SetMessageBody sets the "message_body" field.
func (_u *SMSMessageUpdateOne) SetMessageBody(v string) *SMSMessageUpdateOne {
	_u.mutation.SetMessageBody(v)
	return _u
}

// SetNillableMessageBody sets the "message_body" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableMessageBody(v *string) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetMessageBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SMSMessageUpdateOne) SetStatus(v smsmessage.Status) *SMSMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableStatus(v *smsmessage.Status) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTwilioSid sets the "twilio_sid" field.
func (_u *SMSMessageUpdateOne) SetTwilioSid(v string) *SMSMessageUpdateOne {
	_u.mutation.SetTwilioSid(v)
	return _u
}

// SetNillableTwilioSid sets the "twilio_sid" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableTwilioSid(v *string) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetTwilioSid(*v)
	}
	return _u
}

// ClearTwilioSid clears the value of the "twilio_sid" field.
func (_u *SMSMessageUpdateOne) ClearTwilioSid() *SMSMessageUpdateOne {
	_u.mutation.ClearTwilioSid()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SMSMessageUpdateOne) SetErrorMessage(v string) *SMSMessageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableErrorMessage(v *string) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SMSMessageUpdateOne) ClearErrorMessage() *SMSMessageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *SMSMessageUpdateOne) SetErrorCode(v int) *SMSMessageUpdateOne {
	_u.mutation.ResetErrorCode()
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableErrorCode(v *int) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// AddErrorCode adds value to the "error_code" field.
func (_u *SMSMessageUpdateOne) AddErrorCode(v int) *SMSMessageUpdateOne {
	_u.mutation.AddErrorCode(v)
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *SMSMessageUpdateOne) ClearErrorCode() *SMSMessageUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *SMSMessageUpdateOne) SetSentAt(v time.Time) *SMSMessageUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableSentAt(v *time.Time) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *SMSMessageUpdateOne) ClearSentAt() *SMSMessageUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *SMSMessageUpdateOne) SetDeliveredAt(v time.Time) *SMSMessageUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *SMSMessageUpdateOne) SetNillableDeliveredAt(v *time.Time) *SMSMessageUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *SMSMessageUpdateOne) ClearDeliveredAt() *SMSMessageUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *SMSMessageUpdateOne) SetCampaign(v *Campaign) *SMSMessageUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *SMSMessageUpdateOne) SetContact(v *Contact) *SMSMessageUpdateOne {
	return _u.SetContactID(v.ID)
}

// Mutation returns the SMSMessageMutation object of the builder.
func (_u *SMSMessageUpdateOne) Mutation() *SMSMessageMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *SMSMessageUpdateOne) ClearCampaign() *SMSMessageUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *SMSMessageUpdateOne) ClearContact() *SMSMessageUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// Where appends a list predicates to the SMSMessageUpdate builder.
func (_u *SMSMessageUpdateOne) Where(ps ...predicate.SMSMessage) *SMSMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SMSMessageUpdateOne) Select(field string, fields ...string) *SMSMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SMSMessage entity.
func (_u *SMSMessageUpdateOne) Save(ctx context.Context) (*SMSMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SMSMessageUpdateOne) SaveX(ctx context.Context) *SMSMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SMSMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SMSMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SMSMessageUpdateOne) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := smsmessage.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := smsmessage.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageBody(); ok {
		if err := smsmessage.MessageBodyValidator(v); err != nil {
			return &ValidationError{Name: "message_body", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.message_body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TwilioSid(); ok {
		if err := smsmessage.TwilioSidValidator(v); err != nil {
			return &ValidationError{Name: "twilio_sid", err: fmt.Errorf(`ent: validator failed for field "SMSMessage.twilio_sid": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SMSMessage.campaign"`)
	}
	return nil
}

func (_u *SMSMessageUpdateOne) sqlSave(ctx context.Context) (_node *SMSMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsmessage.Table, smsmessage.Columns, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SMSMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smsmessage.FieldID)
		for _, f := range fields {
			if !smsmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != smsmessage.FieldID {
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
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(smsmessage.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(smsmessage.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(smsmessage.FieldSequenceNumber, field.TypeInt, value)
	}
	if _u.mutation.SequenceNumberCleared() {
		_spec.ClearField(smsmessage.FieldSequenceNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.MessageBody(); ok {
		_spec.SetField(smsmessage.FieldMessageBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TwilioSid(); ok {
		_spec.SetField(smsmessage.FieldTwilioSid, field.TypeString, value)
	}
	if _u.mutation.TwilioSidCleared() {
		_spec.ClearField(smsmessage.FieldTwilioSid, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(smsmessage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(smsmessage.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(smsmessage.FieldErrorCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCode(); ok {
		_spec.AddField(smsmessage.FieldErrorCode, field.TypeInt, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(smsmessage.FieldErrorCode, field.TypeInt)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(smsmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(smsmessage.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(smsmessage.FieldDeliveredAt, field.TypeTime)
	}
	if _u.mutation.CampaignCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SMSMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
