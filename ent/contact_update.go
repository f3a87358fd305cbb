// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/predicate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ContactUpdate) SetCampaignID(v int) *ContactUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCampaignID(v *int) *ContactUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdate) SetName(v string) *ContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *ContactUpdate) SetPhoneNumber(v string) *ContactUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePhoneNumber(v *string) *ContactUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContactUpdate) SetTags(v []string) *ContactUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContactUpdate) AppendTags(v []string) *ContactUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContactUpdate) ClearTags() *ContactUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdate) SetStatus(v contact.Status) *ContactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStatus(v *contact.Status) *ContactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *ContactUpdate) SetMessageCount(v int) *ContactUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableMessageCount(v *int) *ContactUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *ContactUpdate) AddMessageCount(v int) *ContactUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetLastMessageSentAt sets the "last_message_sent_at" field.
func (_u *ContactUpdate) SetLastMessageSentAt(v time.Time) *ContactUpdate {
	_u.mutation.SetLastMessageSentAt(v)
	return _u
}

// SetNillableLastMessageSentAt sets the "last_message_sent_at" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLastMessageSentAt(v *time.Time) *ContactUpdate {
	if v != nil {
		_u.SetLastMessageSentAt(*v)
	}
	return _u
}

// ClearLastMessageSentAt clears the value of the "last_message_sent_at" field.
func (_u *ContactUpdate) ClearLastMessageSentAt() *ContactUpdate {
	_u.mutation.ClearLastMessageSentAt()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ContactUpdate) SetRespondedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableRespondedAt(v *time.Time) *ContactUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ContactUpdate) ClearRespondedAt() *ContactUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *ContactUpdate) SetCampaign(v *Campaign) *ContactUpdate {
	return _u.SetCampaignID(v.ID)
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (_u *ContactUpdate) AddScheduledSendIDs(ids ...int) *ContactUpdate {
	_u.mutation.AddScheduledSendIDs(ids...)
	return _u
}

// AddScheduledSends adds the "scheduled_sends" edges to the ScheduledSend entity.
func (_u *ContactUpdate) AddScheduledSends(v ...*ScheduledSend) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledSendIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by IDs.
func (_u *ContactUpdate) AddMessageIDs(ids ...int) *ContactUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the SMSMessage entity.
func (_u *ContactUpdate) AddMessages(v ...*SMSMessage) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *ContactUpdate) ClearCampaign() *ContactUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearScheduledSends clears all "scheduled_sends" edges to the ScheduledSend entity.
func (_u *ContactUpdate) ClearScheduledSends() *ContactUpdate {
	_u.mutation.ClearScheduledSends()
	return _u
}

// RemoveScheduledSendIDs removes the "scheduled_sends" edge to ScheduledSend entities by IDs.
func (_u *ContactUpdate) RemoveScheduledSendIDs(ids ...int) *ContactUpdate {
	_u.mutation.RemoveScheduledSendIDs(ids...)
	return _u
}

// RemoveScheduledSends removes "scheduled_sends" edges to ScheduledSend entities.
func (_u *ContactUpdate) RemoveScheduledSends(v ...*ScheduledSend) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledSendIDs(ids...)
}

// ClearMessages clears all "messages" edges to the SMSMessage entity.
func (_u *ContactUpdate) ClearMessages() *ContactUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to SMSMessage entities by IDs.
func (_u *ContactUpdate) RemoveMessageIDs(ids ...int) *ContactUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to SMSMessage entities.
func (_u *ContactUpdate) RemoveMessages(v ...*SMSMessage) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdate) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := contact.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "Contact.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := contact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := contact.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "Contact.phone_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageCount(); ok {
		if err := contact.MessageCountValidator(v); err != nil {
			return &ValidationError{Name: "message_count", err: fmt.Errorf(`ent: validator failed for field "Contact.message_count": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contact.campaign"`)
	}
	return nil
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(contact.FieldPhoneNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contact.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(contact.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(contact.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastMessageSentAt(); ok {
		_spec.SetField(contact.FieldLastMessageSentAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageSentAtCleared() {
		_spec.ClearField(contact.FieldLastMessageSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(contact.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(contact.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.CampaignTable,
			Columns: []string{contact.CampaignColumn},
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
			Table:   contact.CampaignTable,
			Columns: []string{contact.CampaignColumn},
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
	if _u.mutation.ScheduledSendsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScheduledSendsTable,
			Columns: []string{contact.ScheduledSendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledSendsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledSendsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScheduledSendsTable,
			Columns: []string{contact.ScheduledSendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledSendsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScheduledSendsTable,
			Columns: []string{contact.ScheduledSendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.MessagesTable,
			Columns: []string{contact.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.MessagesTable,
			Columns: []string{contact.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.MessagesTable,
			Columns: []string{contact.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ContactUpdateOne) SetCampaignID(v int) *ContactUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCampaignID(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdateOne) SetName(v string) *ContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *ContactUpdateOne) SetPhoneNumber(v string) *ContactUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePhoneNumber(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContactUpdateOne) SetTags(v []string) *ContactUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContactUpdateOne) AppendTags(v []string) *ContactUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContactUpdateOne) ClearTags() *ContactUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdateOne) SetStatus(v contact.Status) *ContactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStatus(v *contact.Status) *ContactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *ContactUpdateOne) SetMessageCount(v int) *ContactUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableMessageCount(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *ContactUpdateOne) AddMessageCount(v int) *ContactUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetLastMessageSentAt sets the "last_message_sent_at" field.
func (_u *ContactUpdateOne) SetLastMessageSentAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetLastMessageSentAt(v)
	return _u
}

// SetNillableLastMessageSentAt sets the "last_message_sent_at" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLastMessageSentAt(v *time.Time) *ContactUpdateOne {
	if v != nil {
		_u.SetLastMessageSentAt(*v)
	}
	return _u
}

// ClearLastMessageSentAt clears the value of the "last_message_sent_at" field.
func (_u *ContactUpdateOne) ClearLastMessageSentAt() *ContactUpdateOne {
	_u.mutation.ClearLastMessageSentAt()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ContactUpdateOne) SetRespondedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableRespondedAt(v *time.Time) *ContactUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ContactUpdateOne) ClearRespondedAt() *ContactUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *ContactUpdateOne) SetCampaign(v *Campaign) *ContactUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (_u *ContactUpdateOne) AddScheduledSendIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.AddScheduledSendIDs(ids...)
	return _u
}

// AddScheduledSends adds the "scheduled_sends" edges to the ScheduledSend entity.
func (_u *ContactUpdateOne) AddScheduledSends(v ...*ScheduledSend) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledSendIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by IDs.
func (_u *ContactUpdateOne) AddMessageIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the SMSMessage entity.
func (_u *ContactUpdateOne) AddMessages(v ...*SMSMessage) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *ContactUpdateOne) ClearCampaign() *ContactUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearScheduledSends clears all "scheduled_sends" edges to the ScheduledSend entity.
func (_u *ContactUpdateOne) ClearScheduledSends() *ContactUpdateOne {
	_u.mutation.ClearScheduledSends()
	return _u
}

// RemoveScheduledSendIDs removes the "scheduled_sends" edge to ScheduledSend entities by IDs.
func (_u *ContactUpdateOne) RemoveScheduledSendIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.RemoveScheduledSendIDs(ids...)
	return _u
}

// RemoveScheduledSends removes "scheduled_sends" edges to ScheduledSend entities.
func (_u *ContactUpdateOne) RemoveScheduledSends(v ...*ScheduledSend) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledSendIDs(ids...)
}

// ClearMessages clears all "messages" edges to the SMSMessage entity.
func (_u *ContactUpdateOne) ClearMessages() *ContactUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to SMSMessage entities by IDs.
func (_u *ContactUpdateOne) RemoveMessageIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to SMSMessage entities.
func (_u *ContactUpdateOne) RemoveMessages(v ...*SMSMessage) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdateOne) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := contact.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "Contact.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := contact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := contact.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "Contact.phone_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageCount(); ok {
		if err := contact.MessageCountValidator(v); err != nil {
			return &ValidationError{Name: "message_count", err: fmt.Errorf(`ent: validator failed for field "Contact.message_count": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contact.campaign"`)
	}
	return nil
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(contact.FieldPhoneNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contact.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(contact.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(contact.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastMessageSentAt(); ok {
		_spec.SetField(contact.FieldLastMessageSentAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageSentAtCleared() {
		_spec.ClearField(contact.FieldLastMessageSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(contact.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(contact.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.CampaignTable,
			Columns: []string{contact.CampaignColumn},
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
			Table:   contact.CampaignTable,
			Columns: []string{contact.CampaignColumn},
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
	if _u.mutation.ScheduledSendsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScheduledSendsTable,
			Columns: []string{contact.ScheduledSendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledSendsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledSendsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScheduledSendsTable,
			Columns: []string{contact.ScheduledSendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledSendsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ScheduledSendsTable,
			Columns: []string{contact.ScheduledSendsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.MessagesTable,
			Columns: []string{contact.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.MessagesTable,
			Columns: []string{contact.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.MessagesTable,
			Columns: []string{contact.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
