// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/user"
)

// A2PRegistrationCreate is the builder for creating a A2PRegistration entity.
type A2PRegistrationCreate struct {
	config
	mutation *A2PRegistrationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *A2PRegistrationCreate) SetUserID(v int) *A2PRegistrationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *A2PRegistrationCreate) SetStatus(v a2pregistration.Status) *A2PRegistrationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableStatus(v *a2pregistration.Status) *A2PRegistrationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *A2PRegistrationCreate) SetCompanyName(v string) *A2PRegistrationCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableCompanyName(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetEin sets the "ein" field.
func (_c *A2PRegistrationCreate) SetEin(v string) *A2PRegistrationCreate {
	_c.mutation.SetEin(v)
	return _c
}

// SetNillableEin sets the "ein" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableEin(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetEin(*v)
	}
	return _c
}

// SetVertical sets the "vertical" field.
func (_c *A2PRegistrationCreate) SetVertical(v string) *A2PRegistrationCreate {
	_c.mutation.SetVertical(v)
	return _c
}

// SetNillableVertical sets the "vertical" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableVertical(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetVertical(*v)
	}
	return _c
}

// SetContactName sets the "contact_name" field.
func (_c *A2PRegistrationCreate) SetContactName(v string) *A2PRegistrationCreate {
	_c.mutation.SetContactName(v)
	return _c
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableContactName(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetContactName(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *A2PRegistrationCreate) SetContactEmail(v string) *A2PRegistrationCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableContactEmail(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetSubaccountSid sets the "subaccount_sid" field.
func (_c *A2PRegistrationCreate) SetSubaccountSid(v string) *A2PRegistrationCreate {
	_c.mutation.SetSubaccountSid(v)
	return _c
}

// SetNillableSubaccountSid sets the "subaccount_sid" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableSubaccountSid(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetSubaccountSid(*v)
	}
	return _c
}

// SetBrandSid sets the "brand_sid" field.
func (_c *A2PRegistrationCreate) SetBrandSid(v string) *A2PRegistrationCreate {
	_c.mutation.SetBrandSid(v)
	return _c
}

// SetNillableBrandSid sets the "brand_sid" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableBrandSid(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetBrandSid(*v)
	}
	return _c
}

// SetCampaignSid sets the "campaign_sid" field.
func (_c *A2PRegistrationCreate) SetCampaignSid(v string) *A2PRegistrationCreate {
	_c.mutation.SetCampaignSid(v)
	return _c
}

// SetNillableCampaignSid sets the "campaign_sid" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableCampaignSid(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetCampaignSid(*v)
	}
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *A2PRegistrationCreate) SetPhoneNumber(v string) *A2PRegistrationCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillablePhoneNumber(v *string) *A2PRegistrationCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *A2PRegistrationCreate) SetCreatedAt(v time.Time) *A2PRegistrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableCreatedAt(v *time.Time) *A2PRegistrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *A2PRegistrationCreate) SetUpdatedAt(v time.Time) *A2PRegistrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *A2PRegistrationCreate) SetNillableUpdatedAt(v *time.Time) *A2PRegistrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *A2PRegistrationCreate) SetUser(v *User) *A2PRegistrationCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the A2PRegistrationMutation object of the builder.
func (_c *A2PRegistrationCreate) Mutation() *A2PRegistrationMutation {
	return _c.mutation
}

// Save creates the A2PRegistration in the database.
func (_c *A2PRegistrationCreate) Save(ctx context.Context) (*A2PRegistration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *A2PRegistrationCreate) SaveX(ctx context.Context) *A2PRegistration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *A2PRegistrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *A2PRegistrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *A2PRegistrationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := a2pregistration.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := a2pregistration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := a2pregistration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *A2PRegistrationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "A2PRegistration.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := a2pregistration.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "A2PRegistration.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := a2pregistration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PhoneNumber(); ok {
		if err := a2pregistration.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.phone_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "A2PRegistration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "A2PRegistration.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "A2PRegistration.user"`)}
	}
	return nil
}

func (_c *A2PRegistrationCreate) sqlSave(ctx context.Context) (*A2PRegistration, error) {
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

func (_c *A2PRegistrationCreate) createSpec() (*A2PRegistration, *sqlgraph.CreateSpec) {
	var (
		_node = &A2PRegistration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(a2pregistration.Table, sqlgraph.NewFieldSpec(a2pregistration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(a2pregistration.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(a2pregistration.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Ein(); ok {
		_spec.SetField(a2pregistration.FieldEin, field.TypeString, value)
		_node.Ein = value
	}
	if value, ok := _c.mutation.Vertical(); ok {
		_spec.SetField(a2pregistration.FieldVertical, field.TypeString, value)
		_node.Vertical = value
	}
	if value, ok := _c.mutation.ContactName(); ok {
		_spec.SetField(a2pregistration.FieldContactName, field.TypeString, value)
		_node.ContactName = value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(a2pregistration.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := _c.mutation.SubaccountSid(); ok {
		_spec.SetField(a2pregistration.FieldSubaccountSid, field.TypeString, value)
		_node.SubaccountSid = value
	}
	if value, ok := _c.mutation.BrandSid(); ok {
		_spec.SetField(a2pregistration.FieldBrandSid, field.TypeString, value)
		_node.BrandSid = value
	}
	if value, ok := _c.mutation.CampaignSid(); ok {
		_spec.SetField(a2pregistration.FieldCampaignSid, field.TypeString, value)
		_node.CampaignSid = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(a2pregistration.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(a2pregistration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(a2pregistration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   a2pregistration.UserTable,
			Columns: []string{a2pregistration.UserColumn},
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
	return _node, _spec
}

// A2PRegistrationCreateBulk is the builder for creating many A2PRegistration entities in bulk.
type A2PRegistrationCreateBulk struct {
	config
	err      error
	builders []*A2PRegistrationCreate
}

// Save creates the A2PRegistration entities in the database.
func (_c *A2PRegistrationCreateBulk) Save(ctx context.Context) ([]*A2PRegistration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*A2PRegistration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*A2PRegistrationMutation)
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
func (_c *A2PRegistrationCreateBulk) SaveX(ctx context.Context) []*A2PRegistration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *A2PRegistrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *A2PRegistrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
