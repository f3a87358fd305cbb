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
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/ent/user"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CampaignCreate) SetUserID(v int) *CampaignCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFromNumber sets the "from_number" field.
func (_c *CampaignCreate) SetFromNumber(v string) *CampaignCreate {
	_c.mutation.SetFromNumber(v)
	return _c
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFromNumber(v *string) *CampaignCreate {
	if v != nil {
		_c.SetFromNumber(*v)
	}
	return _c
}

// SetDripBatchSize sets the "drip_batch_size" field.
func (_c *CampaignCreate) SetDripBatchSize(v int) *CampaignCreate {
	_c.mutation.SetDripBatchSize(v)
	return _c
}

// SetNillableDripBatchSize sets the "drip_batch_size" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDripBatchSize(v *int) *CampaignCreate {
	if v != nil {
		_c.SetDripBatchSize(*v)
	}
	return _c
}

// SetDripIntervalDays sets the "drip_interval_days" field.
func (_c *CampaignCreate) SetDripIntervalDays(v int) *CampaignCreate {
	_c.mutation.SetDripIntervalDays(v)
	return _c
}

// SetNillableDripIntervalDays sets the "drip_interval_days" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDripIntervalDays(v *int) *CampaignCreate {
	if v != nil {
		_c.SetDripIntervalDays(*v)
	}
	return _c
}

// SetMessageIntervals sets the "message_intervals" field.
func (_c *CampaignCreate) SetMessageIntervals(v []int) *CampaignCreate {
	_c.mutation.SetMessageIntervals(v)
	return _c
}

// SetLastBatchAdmittedAt sets the "last_batch_admitted_at" field.
func (_c *CampaignCreate) SetLastBatchAdmittedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetLastBatchAdmittedAt(v)
	return _c
}

// SetNillableLastBatchAdmittedAt sets the "last_batch_admitted_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableLastBatchAdmittedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetLastBatchAdmittedAt(*v)
	}
	return _c
}

// SetTotalLeads sets the "total_leads" field.
func (_c *CampaignCreate) SetTotalLeads(v int) *CampaignCreate {
	_c.mutation.SetTotalLeads(v)
	return _c
}

// SetNillableTotalLeads sets the "total_leads" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTotalLeads(v *int) *CampaignCreate {
	if v != nil {
		_c.SetTotalLeads(*v)
	}
	return _c
}

// SetSentCount sets the "sent_count" field.
func (_c *CampaignCreate) SetSentCount(v int) *CampaignCreate {
	_c.mutation.SetSentCount(v)
	return _c
}

// SetNillableSentCount sets the "sent_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSentCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSentCount(*v)
	}
	return _c
}

// SetDeliveredCount sets the "delivered_count" field.
func (_c *CampaignCreate) SetDeliveredCount(v int) *CampaignCreate {
	_c.mutation.SetDeliveredCount(v)
	return _c
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDeliveredCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetDeliveredCount(*v)
	}
	return _c
}

// SetReplyCount sets the "reply_count" field.
func (_c *CampaignCreate) SetReplyCount(v int) *CampaignCreate {
	_c.mutation.SetReplyCount(v)
	return _c
}

// SetNillableReplyCount sets the "reply_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableReplyCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetReplyCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *CampaignCreate) SetFailedCount(v int) *CampaignCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFailedCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CampaignCreate) SetUser(v *User) *CampaignCreate {
	return _c.SetUserID(v.ID)
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_c *CampaignCreate) AddContactIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddContactIDs(ids...)
	return _c
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_c *CampaignCreate) AddContacts(v ...*Contact) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContactIDs(ids...)
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by IDs.
func (_c *CampaignCreate) AddTemplateIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddTemplateIDs(ids...)
	return _c
}

// AddTemplates adds the "templates" edges to the MessageTemplate entity.
func (_c *CampaignCreate) AddTemplates(v ...*MessageTemplate) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTemplateIDs(ids...)
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (_c *CampaignCreate) AddScheduledSendIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddScheduledSendIDs(ids...)
	return _c
}

// AddScheduledSends adds the "scheduled_sends" edges to the ScheduledSend entity.
func (_c *CampaignCreate) AddScheduledSends(v ...*ScheduledSend) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScheduledSendIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by IDs.
func (_c *CampaignCreate) AddMessageIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the SMSMessage entity.
func (_c *CampaignCreate) AddMessages(v ...*SMSMessage) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the CampaignEvent entity by IDs.
func (_c *CampaignCreate) AddEventIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the CampaignEvent entity.
func (_c *CampaignCreate) AddEvents(v ...*CampaignEvent) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DripBatchSize(); !ok {
		v := campaign.DefaultDripBatchSize
		_c.mutation.SetDripBatchSize(v)
	}
	if _, ok := _c.mutation.DripIntervalDays(); !ok {
		v := campaign.DefaultDripIntervalDays
		_c.mutation.SetDripIntervalDays(v)
	}
	if _, ok := _c.mutation.TotalLeads(); !ok {
		v := campaign.DefaultTotalLeads
		_c.mutation.SetTotalLeads(v)
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		v := campaign.DefaultSentCount
		_c.mutation.SetSentCount(v)
	}
	if _, ok := _c.mutation.DeliveredCount(); !ok {
		v := campaign.DefaultDeliveredCount
		_c.mutation.SetDeliveredCount(v)
	}
	if _, ok := _c.mutation.ReplyCount(); !ok {
		v := campaign.DefaultReplyCount
		_c.mutation.SetReplyCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := campaign.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Campaign.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := campaign.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Campaign.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FromNumber(); ok {
		if err := campaign.FromNumberValidator(v); err != nil {
			return &ValidationError{Name: "from_number", err: fmt.Errorf(`ent: validator failed for field "Campaign.from_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DripBatchSize(); !ok {
		return &ValidationError{Name: "drip_batch_size", err: errors.New(`ent: missing required field "Campaign.drip_batch_size"`)}
	}
	if v, ok := _c.mutation.DripBatchSize(); ok {
		if err := campaign.DripBatchSizeValidator(v); err != nil {
			return &ValidationError{Name: "drip_batch_size", err: fmt.Errorf(`ent: validator failed for field "Campaign.drip_batch_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DripIntervalDays(); !ok {
		return &ValidationError{Name: "drip_interval_days", err: errors.New(`ent: missing required field "Campaign.drip_interval_days"`)}
	}
	if v, ok := _c.mutation.DripIntervalDays(); ok {
		if err := campaign.DripIntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "drip_interval_days", err: fmt.Errorf(`ent: validator failed for field "Campaign.drip_interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageIntervals(); !ok {
		return &ValidationError{Name: "message_intervals", err: errors.New(`ent: missing required field "Campaign.message_intervals"`)}
	}
	if _, ok := _c.mutation.TotalLeads(); !ok {
		return &ValidationError{Name: "total_leads", err: errors.New(`ent: missing required field "Campaign.total_leads"`)}
	}
	if v, ok := _c.mutation.TotalLeads(); ok {
		if err := campaign.TotalLeadsValidator(v); err != nil {
			return &ValidationError{Name: "total_leads", err: fmt.Errorf(`ent: validator failed for field "Campaign.total_leads": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentCount(); !ok {
		return &ValidationError{Name: "sent_count", err: errors.New(`ent: missing required field "Campaign.sent_count"`)}
	}
	if v, ok := _c.mutation.SentCount(); ok {
		if err := campaign.SentCountValidator(v); err != nil {
			return &ValidationError{Name: "sent_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.sent_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeliveredCount(); !ok {
		return &ValidationError{Name: "delivered_count", err: errors.New(`ent: missing required field "Campaign.delivered_count"`)}
	}
	if v, ok := _c.mutation.DeliveredCount(); ok {
		if err := campaign.DeliveredCountValidator(v); err != nil {
			return &ValidationError{Name: "delivered_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.delivered_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReplyCount(); !ok {
		return &ValidationError{Name: "reply_count", err: errors.New(`ent: missing required field "Campaign.reply_count"`)}
	}
	if v, ok := _c.mutation.ReplyCount(); ok {
		if err := campaign.ReplyCountValidator(v); err != nil {
			return &ValidationError{Name: "reply_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.reply_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "Campaign.failed_count"`)}
	}
	if v, ok := _c.mutation.FailedCount(); ok {
		if err := campaign.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "Campaign.failed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Campaign.user"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FromNumber(); ok {
		_spec.SetField(campaign.FieldFromNumber, field.TypeString, value)
		_node.FromNumber = value
	}
	if value, ok := _c.mutation.DripBatchSize(); ok {
		_spec.SetField(campaign.FieldDripBatchSize, field.TypeInt, value)
		_node.DripBatchSize = value
	}
	if value, ok := _c.mutation.DripIntervalDays(); ok {
		_spec.SetField(campaign.FieldDripIntervalDays, field.TypeInt, value)
		_node.DripIntervalDays = value
	}
	if value, ok := _c.mutation.MessageIntervals(); ok {
		_spec.SetField(campaign.FieldMessageIntervals, field.TypeJSON, value)
		_node.MessageIntervals = value
	}
	if value, ok := _c.mutation.LastBatchAdmittedAt(); ok {
		_spec.SetField(campaign.FieldLastBatchAdmittedAt, field.TypeTime, value)
		_node.LastBatchAdmittedAt = &value
	}
	if value, ok := _c.mutation.TotalLeads(); ok {
		_spec.SetField(campaign.FieldTotalLeads, field.TypeInt, value)
		_node.TotalLeads = value
	}
	if value, ok := _c.mutation.SentCount(); ok {
		_spec.SetField(campaign.FieldSentCount, field.TypeInt, value)
		_node.SentCount = value
	}
	if value, ok := _c.mutation.DeliveredCount(); ok {
		_spec.SetField(campaign.FieldDeliveredCount, field.TypeInt, value)
		_node.DeliveredCount = value
	}
	if value, ok := _c.mutation.ReplyCount(); ok {
		_spec.SetField(campaign.FieldReplyCount, field.TypeInt, value)
		_node.ReplyCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScheduledSendsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
