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
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/predicate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/ent/user"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CampaignUpdate) SetUserID(v int) *CampaignUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableUserID(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFromNumber sets the "from_number" field.
func (_u *CampaignUpdate) SetFromNumber(v string) *CampaignUpdate {
	_u.mutation.SetFromNumber(v)
	return _u
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFromNumber(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetFromNumber(*v)
	}
	return _u
}

// ClearFromNumber clears the value of the "from_number" field.
func (_u *CampaignUpdate) ClearFromNumber() *CampaignUpdate {
	_u.mutation.ClearFromNumber()
	return _u
}

// SetDripBatchSize sets the "drip_batch_size" field.
func (_u *CampaignUpdate) SetDripBatchSize(v int) *CampaignUpdate {
	_u.mutation.ResetDripBatchSize()
	_u.mutation.SetDripBatchSize(v)
	return _u
}

// SetNillableDripBatchSize sets the "drip_batch_size" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDripBatchSize(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetDripBatchSize(*v)
	}
	return _u
}

// AddDripBatchSize adds value to the "drip_batch_size" field.
func (_u *CampaignUpdate) AddDripBatchSize(v int) *CampaignUpdate {
	_u.mutation.AddDripBatchSize(v)
	return _u
}

// SetDripIntervalDays sets the "drip_interval_days" field.
func (_u *CampaignUpdate) SetDripIntervalDays(v int) *CampaignUpdate {
	_u.mutation.ResetDripIntervalDays()
	_u.mutation.SetDripIntervalDays(v)
	return _u
}

// SetNillableDripIntervalDays sets the "drip_interval_days" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDripIntervalDays(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetDripIntervalDays(*v)
	}
	return _u
}

// AddDripIntervalDays adds value to the "drip_interval_days" field.
func (_u *CampaignUpdate) AddDripIntervalDays(v int) *CampaignUpdate {
	_u.mutation.AddDripIntervalDays(v)
	return _u
}

// SetMessageIntervals sets the "message_intervals" field.
func (_u *CampaignUpdate) SetMessageIntervals(v []int) *CampaignUpdate {
	_u.mutation.SetMessageIntervals(v)
	return _u
}

// AppendMessageIntervals appends value to the "message_intervals" field.
func (_u *CampaignUpdate) AppendMessageIntervals(v []int) *CampaignUpdate {
	_u.mutation.AppendMessageIntervals(v)
	return _u
}

// SetLastBatchAdmittedAt sets the "last_batch_admitted_at" field.
func (_u *CampaignUpdate) SetLastBatchAdmittedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetLastBatchAdmittedAt(v)
	return _u
}

// SetNillableLastBatchAdmittedAt sets the "last_batch_admitted_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableLastBatchAdmittedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetLastBatchAdmittedAt(*v)
	}
	return _u
}

// ClearLastBatchAdmittedAt clears the value of the "last_batch_admitted_at" field.
func (_u *CampaignUpdate) ClearLastBatchAdmittedAt() *CampaignUpdate {
	_u.mutation.ClearLastBatchAdmittedAt()
	return _u
}

// SetTotalLeads sets the "total_leads" field.
func (_u *CampaignUpdate) SetTotalLeads(v int) *CampaignUpdate {
	_u.mutation.ResetTotalLeads()
	_u.mutation.SetTotalLeads(v)
	return _u
}

// SetNillableTotalLeads sets the "total_leads" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTotalLeads(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetTotalLeads(*v)
	}
	return _u
}

// AddTotalLeads adds value to the "total_leads" field.
func (_u *CampaignUpdate) AddTotalLeads(v int) *CampaignUpdate {
	_u.mutation.AddTotalLeads(v)
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *CampaignUpdate) SetSentCount(v int) *CampaignUpdate {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSentCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *CampaignUpdate) AddSentCount(v int) *CampaignUpdate {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetDeliveredCount sets the "delivered_count" field.
func (_u *CampaignUpdate) SetDeliveredCount(v int) *CampaignUpdate {
	_u.mutation.ResetDeliveredCount()
	_u.mutation.SetDeliveredCount(v)
	return _u
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDeliveredCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetDeliveredCount(*v)
	}
	return _u
}

// AddDeliveredCount adds value to the "delivered_count" field.
func (_u *CampaignUpdate) AddDeliveredCount(v int) *CampaignUpdate {
	_u.mutation.AddDeliveredCount(v)
	return _u
}

// SetReplyCount sets the "reply_count" field.
func (_u *CampaignUpdate) SetReplyCount(v int) *CampaignUpdate {
	_u.mutation.ResetReplyCount()
	_u.mutation.SetReplyCount(v)
	return _u
}

// SetNillableReplyCount sets the "reply_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableReplyCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetReplyCount(*v)
	}
	return _u
}

// AddReplyCount adds value to the "reply_count" field.
func (_u *CampaignUpdate) AddReplyCount(v int) *CampaignUpdate {
	_u.mutation.AddReplyCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *CampaignUpdate) SetFailedCount(v int) *CampaignUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFailedCount(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *CampaignUpdate) AddFailedCount(v int) *CampaignUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CampaignUpdate) SetUser(v *User) *CampaignUpdate {
	return _u.SetUserID(v.ID)
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *CampaignUpdate) AddContactIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *CampaignUpdate) AddContacts(v ...*Contact) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by IDs.
func (_u *CampaignUpdate) AddTemplateIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the MessageTemplate entity.
func (_u *CampaignUpdate) AddTemplates(v ...*MessageTemplate) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (_u *CampaignUpdate) AddScheduledSendIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddScheduledSendIDs(ids...)
	return _u
}

// AddScheduledSends adds the "scheduled_sends" edges to the ScheduledSend entity.
func (_u *CampaignUpdate) AddScheduledSends(v ...*ScheduledSend) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledSendIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by IDs.
func (_u *CampaignUpdate) AddMessageIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the SMSMessage entity.
func (_u *CampaignUpdate) AddMessages(v ...*SMSMessage) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the CampaignEvent entity by IDs.
func (_u *CampaignUpdate) AddEventIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CampaignEvent entity.
func (_u *CampaignUpdate) AddEvents(v ...*CampaignEvent) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CampaignUpdate) ClearUser() *CampaignUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *CampaignUpdate) ClearContacts() *CampaignUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *CampaignUpdate) RemoveContactIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *CampaignUpdate) RemoveContacts(v ...*Contact) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the MessageTemplate entity.
func (_u *CampaignUpdate) ClearTemplates() *CampaignUpdate {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to MessageTemplate entities by IDs.
func (_u *CampaignUpdate) RemoveTemplateIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to MessageTemplate entities.
func (_u *CampaignUpdate) RemoveTemplates(v ...*MessageTemplate) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearScheduledSends clears all "scheduled_sends" edges to the ScheduledSend entity.
func (_u *CampaignUpdate) ClearScheduledSends() *CampaignUpdate {
	_u.mutation.ClearScheduledSends()
	return _u
}

// RemoveScheduledSendIDs removes the "scheduled_sends" edge to ScheduledSend entities by IDs.
func (_u *CampaignUpdate) RemoveScheduledSendIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveScheduledSendIDs(ids...)
	return _u
}

// RemoveScheduledSends removes "scheduled_sends" edges to ScheduledSend entities.
func (_u *CampaignUpdate) RemoveScheduledSends(v ...*ScheduledSend) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledSendIDs(ids...)
}

// ClearMessages clears all "messages" edges to the SMSMessage entity.
func (_u *CampaignUpdate) ClearMessages() *CampaignUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to SMSMessage entities by IDs.
func (_u *CampaignUpdate) RemoveMessageIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to SMSMessage entities.
func (_u *CampaignUpdate) RemoveMessages(v ...*SMSMessage) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the CampaignEvent entity.
func (_u *CampaignUpdate) ClearEvents() *CampaignUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CampaignEvent entities by IDs.
func (_u *CampaignUpdate) RemoveEventIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CampaignEvent entities.
func (_u *CampaignUpdate) RemoveEvents(v ...*CampaignEvent) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := campaign.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromNumber(); ok {
		if err := campaign.FromNumberValidator(v); err != nil {
			return &ValidationError{Name: "from_number", err: fmt.Errorf(`ent: validator failed for field "Campaign.from_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DripBatchSize(); ok {
		if err := campaign.DripBatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "drip_batch_size", err: fmt.Errorf(`ent: validator failed for field "Campaign.drip_batch_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DripIntervalDays(); ok {
		if err := campaign.DripIntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "drip_interval_days", err: fmt.Errorf(`ent: validator failed for field "Campaign.drip_interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLeads(); ok {
		if err := campaign.TotalLeadsValidator(v); err != nil {
			return &ValidationError{Name: "total_leads", err: fmt.Errorf(`ent: validator failed for field "Campaign.total_leads": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SentCount(); ok {
		if err := campaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.sent_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveredCount(); ok {
		if err := campaign.DeliveredCountValidator(v); err != nil {
			return &ValidationError{Name: "delivered_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.delivered_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReplyCount(); ok {
		if err := campaign.ReplyCountValidator(v); err != nil {
			return &ValidationError{Name: "reply_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.reply_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := campaign.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.failed_count": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.user"`)
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FromNumber(); ok {
		_spec.SetField(campaign.FieldFromNumber, field.TypeString, value)
	}
	if _u.mutation.FromNumberCleared() {
		_spec.ClearField(campaign.FieldFromNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DripBatchSize(); ok {
		_spec.SetField(campaign.FieldDripBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDripBatchSize(); ok {
		_spec.AddField(campaign.FieldDripBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DripIntervalDays(); ok {
		_spec.SetField(campaign.FieldDripIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDripIntervalDays(); ok {
		_spec.AddField(campaign.FieldDripIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageIntervals(); ok {
		_spec.SetField(campaign.FieldMessageIntervals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessageIntervals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, campaign.FieldMessageIntervals, value)
		})
	}
	if value, ok := _u.mutation.LastBatchAdmittedAt(); ok {
		_spec.SetField(campaign.FieldLastBatchAdmittedAt, field.TypeTime, value)
	}
	if _u.mutation.LastBatchAdmittedAtCleared() {
		_spec.ClearField(campaign.FieldLastBatchAdmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalLeads(); ok {
		_spec.SetField(campaign.FieldTotalLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLeads(); ok {
		_spec.AddField(campaign.FieldTotalLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveredCount(); ok {
		_spec.SetField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveredCount(); ok {
		_spec.AddField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplyCount(); ok {
		_spec.SetField(campaign.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplyCount(); ok {
		_spec.AddField(campaign.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
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
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
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
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ContactsTable,
			Columns: []string{campaign.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ContactsTable,
			Columns: []string{campaign.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ContactsTable,
			Columns: []string{campaign.ContactsColumn},
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
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.TemplatesTable,
			Columns: []string{campaign.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.TemplatesTable,
			Columns: []string{campaign.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.TemplatesTable,
			Columns: []string{campaign.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt),
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
			Table:   campaign.ScheduledSendsTable,
			Columns: []string{campaign.ScheduledSendsColumn},
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
			Table:   campaign.ScheduledSendsTable,
			Columns: []string{campaign.ScheduledSendsColumn},
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
			Table:   campaign.ScheduledSendsTable,
			Columns: []string{campaign.ScheduledSendsColumn},
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
			Table:   campaign.MessagesTable,
			Columns: []string{campaign.MessagesColumn},
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
			Table:   campaign.MessagesTable,
			Columns: []string{campaign.MessagesColumn},
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
			Table:   campaign.MessagesTable,
			Columns: []string{campaign.MessagesColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EventsTable,
			Columns: []string{campaign.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EventsTable,
			Columns: []string{campaign.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EventsTable,
			Columns: []string{campaign.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetUserID sets the "user_id" field.
func (_u *CampaignUpdateOne) SetUserID(v int) *CampaignUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableUserID(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFromNumber sets the "from_number" field.
func (_u *CampaignUpdateOne) SetFromNumber(v string) *CampaignUpdateOne {
	_u.mutation.SetFromNumber(v)
	return _u
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFromNumber(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetFromNumber(*v)
	}
	return _u
}

// ClearFromNumber clears the value of the "from_number" field.
func (_u *CampaignUpdateOne) ClearFromNumber() *CampaignUpdateOne {
	_u.mutation.ClearFromNumber()
	return _u
}

// SetDripBatchSize sets the "drip_batch_size" field.
func (_u *CampaignUpdateOne) SetDripBatchSize(v int) *CampaignUpdateOne {
	_u.mutation.ResetDripBatchSize()
	_u.mutation.SetDripBatchSize(v)
	return _u
}

// SetNillableDripBatchSize sets the "drip_batch_size" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDripBatchSize(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetDripBatchSize(*v)
	}
	return _u
}

// AddDripBatchSize adds value to the "drip_batch_size" field.
func (_u *CampaignUpdateOne) AddDripBatchSize(v int) *CampaignUpdateOne {
	_u.mutation.AddDripBatchSize(v)
	return _u
}

// SetDripIntervalDays sets the "drip_interval_days" field.
func (_u *CampaignUpdateOne) SetDripIntervalDays(v int) *CampaignUpdateOne {
	_u.mutation.ResetDripIntervalDays()
	_u.mutation.SetDripIntervalDays(v)
	return _u
}

// SetNillableDripIntervalDays sets the "drip_interval_days" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDripIntervalDays(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetDripIntervalDays(*v)
	}
	return _u
}

// AddDripIntervalDays adds value to the "drip_interval_days" field.
func (_u *CampaignUpdateOne) AddDripIntervalDays(v int) *CampaignUpdateOne {
	_u.mutation.AddDripIntervalDays(v)
	return _u
}

// SetMessageIntervals sets the "message_intervals" field.
func (_u *CampaignUpdateOne) SetMessageIntervals(v []int) *CampaignUpdateOne {
	_u.mutation.SetMessageIntervals(v)
	return _u
}

// AppendMessageIntervals appends value to the "message_intervals" field.
func (_u *CampaignUpdateOne) AppendMessageIntervals(v []int) *CampaignUpdateOne {
	_u.mutation.AppendMessageIntervals(v)
	return _u
}

// SetLastBatchAdmittedAt sets the "last_batch_admitted_at" field.
func (_u *CampaignUpdateOne) SetLastBatchAdmittedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetLastBatchAdmittedAt(v)
	return _u
}

// SetNillableLastBatchAdmittedAt sets the "last_batch_admitted_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableLastBatchAdmittedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetLastBatchAdmittedAt(*v)
	}
	return _u
}

// ClearLastBatchAdmittedAt clears the value of the "last_batch_admitted_at" field.
func (_u *CampaignUpdateOne) ClearLastBatchAdmittedAt() *CampaignUpdateOne {
	_u.mutation.ClearLastBatchAdmittedAt()
	return _u
}

// SetTotalLeads sets the "total_leads" field.
func (_u *CampaignUpdateOne) SetTotalLeads(v int) *CampaignUpdateOne {
	_u.mutation.ResetTotalLeads()
	_u.mutation.SetTotalLeads(v)
	return _u
}

// SetNillableTotalLeads sets the "total_leads" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTotalLeads(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetTotalLeads(*v)
	}
	return _u
}

// AddTotalLeads adds value to the "total_leads" field.
func (_u *CampaignUpdateOne) AddTotalLeads(v int) *CampaignUpdateOne {
	_u.mutation.AddTotalLeads(v)
	return _u
}

// SetSentCount sets the "sent_count" field.
func (_u *CampaignUpdateOne) SetSentCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetSentCount()
	_u.mutation.SetSentCount(v)
	return _u
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSentCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSentCount(*v)
	}
	return _u
}

// AddSentCount adds value to the "sent_count" field.
func (_u *CampaignUpdateOne) AddSentCount(v int) *CampaignUpdateOne {
	_u.mutation.AddSentCount(v)
	return _u
}

// SetDeliveredCount sets the "delivered_count" field.
func (_u *CampaignUpdateOne) SetDeliveredCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetDeliveredCount()
	_u.mutation.SetDeliveredCount(v)
	return _u
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDeliveredCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetDeliveredCount(*v)
	}
	return _u
}

// AddDeliveredCount adds value to the "delivered_count" field.
func (_u *CampaignUpdateOne) AddDeliveredCount(v int) *CampaignUpdateOne {
	_u.mutation.AddDeliveredCount(v)
	return _u
}

// SetReplyCount sets the "reply_count" field.
func (_u *CampaignUpdateOne) SetReplyCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetReplyCount()
	_u.mutation.SetReplyCount(v)
	return _u
}

// SetNillableReplyCount sets the "reply_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableReplyCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetReplyCount(*v)
	}
	return _u
}

// AddReplyCount adds value to the "reply_count" field.
func (_u *CampaignUpdateOne) AddReplyCount(v int) *CampaignUpdateOne {
	_u.mutation.AddReplyCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *CampaignUpdateOne) SetFailedCount(v int) *CampaignUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFailedCount(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *CampaignUpdateOne) AddFailedCount(v int) *CampaignUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CampaignUpdateOne) SetUser(v *User) *CampaignUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *CampaignUpdateOne) AddContactIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *CampaignUpdateOne) AddContacts(v ...*Contact) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by IDs.
func (_u *CampaignUpdateOne) AddTemplateIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddTemplateIDs(ids...)
	return _u
}

// AddTemplates adds the "templates" edges to the MessageTemplate entity.
func (_u *CampaignUpdateOne) AddTemplates(v ...*MessageTemplate) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTemplateIDs(ids...)
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (_u *CampaignUpdateOne) AddScheduledSendIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddScheduledSendIDs(ids...)
	return _u
}

// AddScheduledSends adds the "scheduled_sends" edges to the ScheduledSend entity.
func (_u *CampaignUpdateOne) AddScheduledSends(v ...*ScheduledSend) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledSendIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by IDs.
func (_u *CampaignUpdateOne) AddMessageIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the SMSMessage entity.
func (_u *CampaignUpdateOne) AddMessages(v ...*SMSMessage) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the CampaignEvent entity by IDs.
func (_u *CampaignUpdateOne) AddEventIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CampaignEvent entity.
func (_u *CampaignUpdateOne) AddEvents(v ...*CampaignEvent) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CampaignUpdateOne) ClearUser() *CampaignUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *CampaignUpdateOne) ClearContacts() *CampaignUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *CampaignUpdateOne) RemoveContactIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *CampaignUpdateOne) RemoveContacts(v ...*Contact) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearTemplates clears all "templates" edges to the MessageTemplate entity.
func (_u *CampaignUpdateOne) ClearTemplates() *CampaignUpdateOne {
	_u.mutation.ClearTemplates()
	return _u
}

// RemoveTemplateIDs removes the "templates" edge to MessageTemplate entities by IDs.
func (_u *CampaignUpdateOne) RemoveTemplateIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveTemplateIDs(ids...)
	return _u
}

// RemoveTemplates removes "templates" edges to MessageTemplate entities.
func (_u *CampaignUpdateOne) RemoveTemplates(v ...*MessageTemplate) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTemplateIDs(ids...)
}

// ClearScheduledSends clears all "scheduled_sends" edges to the ScheduledSend entity.
func (_u *CampaignUpdateOne) ClearScheduledSends() *CampaignUpdateOne {
	_u.mutation.ClearScheduledSends()
	return _u
}

// RemoveScheduledSendIDs removes the "scheduled_sends" edge to ScheduledSend entities by IDs.
func (_u *CampaignUpdateOne) RemoveScheduledSendIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveScheduledSendIDs(ids...)
	return _u
}

// RemoveScheduledSends removes "scheduled_sends" edges to ScheduledSend entities.
func (_u *CampaignUpdateOne) RemoveScheduledSends(v ...*ScheduledSend) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledSendIDs(ids...)
}

// ClearMessages clears all "messages" edges to the SMSMessage entity.
func (_u *CampaignUpdateOne) ClearMessages() *CampaignUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to SMSMessage entities by IDs.
func (_u *CampaignUpdateOne) RemoveMessageIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to SMSMessage entities.
func (_u *CampaignUpdateOne) RemoveMessages(v ...*SMSMessage) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the CampaignEvent entity.
func (_u *CampaignUpdateOne) ClearEvents() *CampaignUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CampaignEvent entities by IDs.
func (_u *CampaignUpdateOne) RemoveEventIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CampaignEvent entities.
func (_u *CampaignUpdateOne) RemoveEvents(v ...*CampaignEvent) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := campaign.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromNumber(); ok {
		if err := campaign.FromNumberValidator(v); err != nil {
			return &ValidationError{Name: "from_number", err: fmt.Errorf(`ent: validator failed for field "Campaign.from_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DripBatchSize(); ok {
		if err := campaign.DripBatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "drip_batch_size", err: fmt.Errorf(`ent: validator failed for field "Campaign.drip_batch_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DripIntervalDays(); ok {
		if err := campaign.DripIntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "drip_interval_days", err: fmt.Errorf(`ent: validator failed for field "Campaign.drip_interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalLeads(); ok {
		if err := campaign.TotalLeadsValidator(v); err != nil {
			return &ValidationError{Name: "total_leads", err: fmt.Errorf(`ent: validator failed for field "Campaign.total_leads": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SentCount(); ok {
		if err := campaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.sent_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveredCount(); ok {
		if err := campaign.DeliveredCountValidator(v); err != nil {
			return &ValidationError{Name: "delivered_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.delivered_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReplyCount(); ok {
		if err := campaign.ReplyCountValidator(v); err != nil {
			return &ValidationError{Name: "reply_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.reply_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := campaign.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.failed_count": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Campaign.user"`)
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FromNumber(); ok {
		_spec.SetField(campaign.FieldFromNumber, field.TypeString, value)
	}
	if _u.mutation.FromNumberCleared() {
		_spec.ClearField(campaign.FieldFromNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DripBatchSize(); ok {
		_spec.SetField(campaign.FieldDripBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDripBatchSize(); ok {
		_spec.AddField(campaign.FieldDripBatchSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DripIntervalDays(); ok {
		_spec.SetField(campaign.FieldDripIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDripIntervalDays(); ok {
		_spec.AddField(campaign.FieldDripIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageIntervals(); ok {
		_spec.SetField(campaign.FieldMessageIntervals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessageIntervals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, campaign.FieldMessageIntervals, value)
		})
	}
	if value, ok := _u.mutation.LastBatchAdmittedAt(); ok {
		_spec.SetField(campaign.FieldLastBatchAdmittedAt, field.TypeTime, value)
	}
	if _u.mutation.LastBatchAdmittedAtCleared() {
		_spec.ClearField(campaign.FieldLastBatchAdmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalLeads(); ok {
		_spec.SetField(campaign.FieldTotalLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLeads(); ok {
		_spec.AddField(campaign.FieldTotalLeads, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentCount(); ok {
		_spec.SetField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentCount(); ok {
		_spec.AddField(campaign.FieldSentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveredCount(); ok {
		_spec.SetField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveredCount(); ok {
		_spec.AddField(campaign.FieldDeliveredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplyCount(); ok {
		_spec.SetField(campaign.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplyCount(); ok {
		_spec.AddField(campaign.FieldReplyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(campaign.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
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
			Table:   campaign.UserTable,
			Columns: []string{campaign.UserColumn},
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
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ContactsTable,
			Columns: []string{campaign.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ContactsTable,
			Columns: []string{campaign.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.ContactsTable,
			Columns: []string{campaign.ContactsColumn},
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
	if _u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.TemplatesTable,
			Columns: []string{campaign.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTemplatesIDs(); len(nodes) > 0 && !_u.mutation.TemplatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.TemplatesTable,
			Columns: []string{campaign.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.TemplatesTable,
			Columns: []string{campaign.TemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messagetemplate.FieldID, field.TypeInt),
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
			Table:   campaign.ScheduledSendsTable,
			Columns: []string{campaign.ScheduledSendsColumn},
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
			Table:   campaign.ScheduledSendsTable,
			Columns: []string{campaign.ScheduledSendsColumn},
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
			Table:   campaign.ScheduledSendsTable,
			Columns: []string{campaign.ScheduledSendsColumn},
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
			Table:   campaign.MessagesTable,
			Columns: []string{campaign.MessagesColumn},
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
			Table:   campaign.MessagesTable,
			Columns: []string{campaign.MessagesColumn},
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
			Table:   campaign.MessagesTable,
			Columns: []string{campaign.MessagesColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EventsTable,
			Columns: []string{campaign.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EventsTable,
			Columns: []string{campaign.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.EventsTable,
			Columns: []string{campaign.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaignevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
