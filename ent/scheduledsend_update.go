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
	"github.com/danielmv/leadrevive/ent/scheduledsend"
)

// ScheduledSendUpdate is the builder for updating ScheduledSend entities.
type ScheduledSendUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledSendMutation
}

// Where appends a list predicates to the ScheduledSendUpdate builder.
func (_u *ScheduledSendUpdate) Where(ps ...predicate.ScheduledSend) *ScheduledSendUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ScheduledSendUpdate) SetCampaignID(v int) *ScheduledSendUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableCampaignID(v *int) *ScheduledSendUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ScheduledSendUpdate) SetContactID(v int) *ScheduledSendUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableContactID(v *int) *ScheduledSendUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *ScheduledSendUpdate) SetSequenceNumber(v int) *ScheduledSendUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableSequenceNumber(v *int) *ScheduledSendUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *ScheduledSendUpdate) AddSequenceNumber(v int) *ScheduledSendUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledSendUpdate) SetScheduledFor(v time.Time) *ScheduledSendUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableScheduledFor(v *time.Time) *ScheduledSendUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledSendUpdate) SetStatus(v scheduledsend.Status) *ScheduledSendUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableStatus(v *scheduledsend.Status) *ScheduledSendUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScheduledSendUpdate) SetErrorMessage(v string) *ScheduledSendUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableErrorMessage(v *string) *ScheduledSendUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScheduledSendUpdate) ClearErrorMessage() *ScheduledSendUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ScheduledSendUpdate) SetProcessedAt(v time.Time) *ScheduledSendUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ScheduledSendUpdate) SetNillableProcessedAt(v *time.Time) *ScheduledSendUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ScheduledSendUpdate) ClearProcessedAt() *ScheduledSendUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledSendUpdate) SetUpdatedAt(v time.Time) *ScheduledSendUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *ScheduledSendUpdate) SetCampaign(v *Campaign) *ScheduledSendUpdate {
	return _u.SetCampaignID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *ScheduledSendUpdate) SetContact(v *Contact) *ScheduledSendUpdate {
	return _u.SetContactID(v.ID)
}

// Mutation returns the ScheduledSendMutation object of the builder.
func (_u *ScheduledSendUpdate) Mutation() *ScheduledSendMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *ScheduledSendUpdate) ClearCampaign() *ScheduledSendUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *ScheduledSendUpdate) ClearContact() *ScheduledSendUpdate {
	_u.mutation.ClearContact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledSendUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledSendUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledSendUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledSendUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledSendUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledsend.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledSendUpdate) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := scheduledsend.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactID(); ok {
		if err := scheduledsend.ContactIDValidator(v); err != nil {
			return &ValidationError{Name: "contact_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.contact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := scheduledsend.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledsend.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledSend.campaign"`)
	}
	if _u.mutation.ContactCleared() && len(_u.mutation.ContactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledSend.contact"`)
	}
	return nil
}

func (_u *ScheduledSendUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledsend.Table, scheduledsend.Columns, sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(scheduledsend.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(scheduledsend.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledsend.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledsend.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledsend.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduledsend.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(scheduledsend.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(scheduledsend.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledsend.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledsend.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledSendUpdateOne is the builder for updating a single ScheduledSend entity.
type ScheduledSendUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledSendMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ScheduledSendUpdateOne) SetCampaignID(v int) *ScheduledSendUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableCampaignID(v *int) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ScheduledSendUpdateOne) SetContactID(v int) *ScheduledSendUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableContactID(v *int) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *ScheduledSendUpdateOne) SetSequenceNumber(v int) *ScheduledSendUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableSequenceNumber(v *int) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *ScheduledSendUpdateOne) AddSequenceNumber(v int) *ScheduledSendUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledSendUpdateOne) SetScheduledFor(v time.Time) *ScheduledSendUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableScheduledFor(v *time.Time) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledSendUpdateOne) SetStatus(v scheduledsend.Status) *ScheduledSendUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableStatus(v *scheduledsend.Status) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScheduledSendUpdateOne) SetErrorMessage(v string) *ScheduledSendUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableErrorMessage(v *string) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScheduledSendUpdateOne) ClearErrorMessage() *ScheduledSendUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ScheduledSendUpdateOne) SetProcessedAt(v time.Time) *ScheduledSendUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ScheduledSendUpdateOne) SetNillableProcessedAt(v *time.Time) *ScheduledSendUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ScheduledSendUpdateOne) ClearProcessedAt() *ScheduledSendUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledSendUpdateOne) SetUpdatedAt(v time.Time) *ScheduledSendUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *ScheduledSendUpdateOne) SetCampaign(v *Campaign) *ScheduledSendUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *ScheduledSendUpdateOne) SetContact(v *Contact) *ScheduledSendUpdateOne {
	return _u.SetContactID(v.ID)
}

// Mutation returns the ScheduledSendMutation object of the builder.
func (_u *ScheduledSendUpdateOne) Mutation() *ScheduledSendMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *ScheduledSendUpdateOne) ClearCampaign() *ScheduledSendUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *ScheduledSendUpdateOne) ClearContact() *ScheduledSendUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// Where appends a list predicates to the ScheduledSendUpdate builder.
func (_u *ScheduledSendUpdateOne) Where(ps ...predicate.ScheduledSend) *ScheduledSendUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledSendUpdateOne) Select(field string, fields ...string) *ScheduledSendUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledSend entity.
func (_u *ScheduledSendUpdateOne) Save(ctx context.Context) (*ScheduledSend, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledSendUpdateOne) SaveX(ctx context.Context) *ScheduledSend {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledSendUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledSendUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledSendUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledsend.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledSendUpdateOne) check() error {
	if v, ok := _u.mutation.CampaignID(); ok {
		if err := scheduledsend.CampaignIDValidator(v); err != nil {
			return &ValidationError{Name: "campaign_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.campaign_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactID(); ok {
		if err := scheduledsend.ContactIDValidator(v); err != nil {
			return &ValidationError{Name: "contact_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.contact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := scheduledsend.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledsend.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledSend.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledSend.campaign"`)
	}
	if _u.mutation.ContactCleared() && len(_u.mutation.ContactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledSend.contact"`)
	}
	return nil
}

func (_u *ScheduledSendUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledSend, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledsend.Table, scheduledsend.Columns, sqlgraph.NewFieldSpec(scheduledsend.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledSend.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledsend.FieldID)
		for _, f := range fields {
			if !scheduledsend.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledsend.FieldID {
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
		_spec.SetField(scheduledsend.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(scheduledsend.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledsend.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledsend.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledsend.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduledsend.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(scheduledsend.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(scheduledsend.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledsend.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScheduledSend{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledsend.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
