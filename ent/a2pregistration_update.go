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
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/predicate"
	"github.com/danielmv/leadrevive/ent/user"
)

// A2PRegistrationUpdate is the builder for updating A2PRegistration entities.
type A2PRegistrationUpdate struct {
	config
	hooks    []Hook
	mutation *A2PRegistrationMutation
}

// Where appends a list predicates to the A2PRegistrationUpdate builder.
func (_u *A2PRegistrationUpdate) Where(ps ...predicate.A2PRegistration) *A2PRegistrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *A2PRegistrationUpdate) SetUserID(v int) *A2PRegistrationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableUserID(v *int) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *A2PRegistrationUpdate) SetStatus(v a2pregistration.Status) *A2PRegistrationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableStatus(v *a2pregistration.Status) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *A2PRegistrationUpdate) SetCompanyName(v string) *A2PRegistrationUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableCompanyName(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *A2PRegistrationUpdate) ClearCompanyName() *A2PRegistrationUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetEin sets the "ein" field.
func (_u *A2PRegistrationUpdate) SetEin(v string) *A2PRegistrationUpdate {
	_u.mutation.SetEin(v)
	return _u
}

// SetNillableEin sets the "ein" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableEin(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetEin(*v)
	}
	return _u
}

// ClearEin clears the value of the "ein" field.
func (_u *A2PRegistrationUpdate) ClearEin() *A2PRegistrationUpdate {
	_u.mutation.ClearEin()
	return _u
}

// SetVertical sets the "vertical" field.
func (_u *A2PRegistrationUpdate) SetVertical(v string) *A2PRegistrationUpdate {
	_u.mutation.SetVertical(v)
	return _u
}

// SetNillableVertical sets the "vertical" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableVertical(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetVertical(*v)
	}
	return _u
}

// ClearVertical clears the value of the "vertical" field.
func (_u *A2PRegistrationUpdate) ClearVertical() *A2PRegistrationUpdate {
	_u.mutation.ClearVertical()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *A2PRegistrationUpdate) SetContactName(v string) *A2PRegistrationUpdate {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableContactName(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *A2PRegistrationUpdate) ClearContactName() *A2PRegistrationUpdate {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *A2PRegistrationUpdate) SetContactEmail(v string) *A2PRegistrationUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableContactEmail(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *A2PRegistrationUpdate) ClearContactEmail() *A2PRegistrationUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetSubaccountSid sets the "subaccount_sid" field.
func (_u *A2PRegistrationUpdate) SetSubaccountSid(v string) *A2PRegistrationUpdate {
	_u.mutation.SetSubaccountSid(v)
	return _u
}

// SetNillableSubaccountSid sets the "subaccount_sid" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableSubaccountSid(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetSubaccountSid(*v)
	}
	return _u
}

// ClearSubaccountSid clears the value of the "subaccount_sid" field.
func (_u *A2PRegistrationUpdate) ClearSubaccountSid() *A2PRegistrationUpdate {
	_u.mutation.ClearSubaccountSid()
	return _u
}

// SetBrandSid sets the "brand_sid" field.
func (_u *A2PRegistrationUpdate) SetBrandSid(v string) *A2PRegistrationUpdate {
	_u.mutation.SetBrandSid(v)
	return _u
}

// SetNillableBrandSid sets the "brand_sid" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableBrandSid(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetBrandSid(*v)
	}
	return _u
}

// ClearBrandSid clears the value of the "brand_sid" field.
func (_u *A2PRegistrationUpdate) ClearBrandSid() *A2PRegistrationUpdate {
	_u.mutation.ClearBrandSid()
	return _u
}

// SetCampaignSid sets the "campaign_sid" field.
func (_u *A2PRegistrationUpdate) SetCampaignSid(v string) *A2PRegistrationUpdate {
	_u.mutation.SetCampaignSid(v)
	return _u
}

// SetNillableCampaignSid sets the "campaign_sid" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillableCampaignSid(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetCampaignSid(*v)
	}
	return _u
}

// ClearCampaignSid clears the value of the "campaign_sid" field.
func (_u *A2PRegistrationUpdate) ClearCampaignSid() *A2PRegistrationUpdate {
	_u.mutation.ClearCampaignSid()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *A2PRegistrationUpdate) SetPhoneNumber(v string) *A2PRegistrationUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *A2PRegistrationUpdate) SetNillablePhoneNumber(v *string) *A2PRegistrationUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *A2PRegistrationUpdate) ClearPhoneNumber() *A2PRegistrationUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *A2PRegistrationUpdate) SetUpdatedAt(v time.Time) *A2PRegistrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *A2PRegistrationUpdate) SetUser(v *User) *A2PRegistrationUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the A2PRegistrationMutation object of the builder.
func (_u *A2PRegistrationUpdate) Mutation() *A2PRegistrationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *A2PRegistrationUpdate) ClearUser() *A2PRegistrationUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *A2PRegistrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *A2PRegistrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *A2PRegistrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *A2PRegistrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *A2PRegistrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := a2pregistration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *A2PRegistrationUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := a2pregistration.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := a2pregistration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := a2pregistration.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.phone_number": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "A2PRegistration.user"`)
	}
	return nil
}

func (_u *A2PRegistrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(a2pregistration.Table, a2pregistration.Columns, sqlgraph.NewFieldSpec(a2pregistration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(a2pregistration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(a2pregistration.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(a2pregistration.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Ein(); ok {
		_spec.SetField(a2pregistration.FieldEin, field.TypeString, value)
	}
	if _u.mutation.EinCleared() {
		_spec.ClearField(a2pregistration.FieldEin, field.TypeString)
	}
	if value, ok := _u.mutation.Vertical(); ok {
		_spec.SetField(a2pregistration.FieldVertical, field.TypeString, value)
	}
	if _u.mutation.VerticalCleared() {
		_spec.ClearField(a2pregistration.FieldVertical, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(a2pregistration.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(a2pregistration.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(a2pregistration.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(a2pregistration.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SubaccountSid(); ok {
		_spec.SetField(a2pregistration.FieldSubaccountSid, field.TypeString, value)
	}
	if _u.mutation.SubaccountSidCleared() {
		_spec.ClearField(a2pregistration.FieldSubaccountSid, field.TypeString)
	}
	if value, ok := _u.mutation.BrandSid(); ok {
		_spec.SetField(a2pregistration.FieldBrandSid, field.TypeString, value)
	}
	if _u.mutation.BrandSidCleared() {
		_spec.ClearField(a2pregistration.FieldBrandSid, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignSid(); ok {
		_spec.SetField(a2pregistration.FieldCampaignSid, field.TypeString, value)
	}
	if _u.mutation.CampaignSidCleared() {
		_spec.ClearField(a2pregistration.FieldCampaignSid, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(a2pregistration.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(a2pregistration.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(a2pregistration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{a2pregistration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// A2PRegistrationUpdateOne is the builder for updating a single A2PRegistration entity.
type A2PRegistrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *A2PRegistrationMutation
}

// SetUserID sets the "user_id" field.
func (_u *A2PRegistrationUpdateOne) SetUserID(v int) *A2PRegistrationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableUserID(v *int) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *A2PRegistrationUpdateOne) SetStatus(v a2pregistration.Status) *A2PRegistrationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableStatus(v *a2pregistration.Status) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *A2PRegistrationUpdateOne) SetCompanyName(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableCompanyName(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *A2PRegistrationUpdateOne) ClearCompanyName() *A2PRegistrationUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetEin sets the "ein" field.
func (_u *A2PRegistrationUpdateOne) SetEin(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetEin(v)
	return _u
}

// SetNillableEin sets the "ein" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableEin(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetEin(*v)
	}
	return _u
}

// ClearEin clears the value of the "ein" field.
func (_u *A2PRegistrationUpdateOne) ClearEin() *A2PRegistrationUpdateOne {
	_u.mutation.ClearEin()
	return _u
}

// SetVertical sets the "vertical" field.
func (_u *A2PRegistrationUpdateOne) SetVertical(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetVertical(v)
	return _u
}

// SetNillableVertical sets the "vertical" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableVertical(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetVertical(*v)
	}
	return _u
}

// ClearVertical clears the value of the "vertical" field.
func (_u *A2PRegistrationUpdateOne) ClearVertical() *A2PRegistrationUpdateOne {
	_u.mutation.ClearVertical()
	return _u
}

// SetContactName sets the "contact_name" field.
func (_u *A2PRegistrationUpdateOne) SetContactName(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetContactName(v)
	return _u
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableContactName(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetContactName(*v)
	}
	return _u
}

// ClearContactName clears the value of the "contact_name" field.
func (_u *A2PRegistrationUpdateOne) ClearContactName() *A2PRegistrationUpdateOne {
	_u.mutation.ClearContactName()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *A2PRegistrationUpdateOne) SetContactEmail(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableContactEmail(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *A2PRegistrationUpdateOne) ClearContactEmail() *A2PRegistrationUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetSubaccountSid sets the "subaccount_sid" field.
func (_u *A2PRegistrationUpdateOne) SetSubaccountSid(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetSubaccountSid(v)
	return _u
}

// SetNillableSubaccountSid sets the "subaccount_sid" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableSubaccountSid(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetSubaccountSid(*v)
	}
	return _u
}

// ClearSubaccountSid clears the value of the "subaccount_sid" field.
func (_u *A2PRegistrationUpdateOne) ClearSubaccountSid() *A2PRegistrationUpdateOne {
	_u.mutation.ClearSubaccountSid()
	return _u
}

// SetBrandSid sets the "brand_sid" field.
func (_u *A2PRegistrationUpdateOne) SetBrandSid(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetBrandSid(v)
	return _u
}

// SetNillableBrandSid sets the "brand_sid" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableBrandSid(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetBrandSid(*v)
	}
	return _u
}

// ClearBrandSid clears the value of the "brand_sid" field.
func (_u *A2PRegistrationUpdateOne) ClearBrandSid() *A2PRegistrationUpdateOne {
	_u.mutation.ClearBrandSid()
	return _u
}

// SetCampaignSid sets the "campaign_sid" field.
func (_u *A2PRegistrationUpdateOne) SetCampaignSid(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetCampaignSid(v)
	return _u
}

// SetNillableCampaignSid sets the "campaign_sid" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillableCampaignSid(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetCampaignSid(*v)
	}
	return _u
}

// ClearCampaignSid clears the value of the "campaign_sid" field.
func (_u *A2PRegistrationUpdateOne) ClearCampaignSid() *A2PRegistrationUpdateOne {
	_u.mutation.ClearCampaignSid()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *A2PRegistrationUpdateOne) SetPhoneNumber(v string) *A2PRegistrationUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *A2PRegistrationUpdateOne) SetNillablePhoneNumber(v *string) *A2PRegistrationUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *A2PRegistrationUpdateOne) ClearPhoneNumber() *A2PRegistrationUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *A2PRegistrationUpdateOne) SetUpdatedAt(v time.Time) *A2PRegistrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *A2PRegistrationUpdateOne) SetUser(v *User) *A2PRegistrationUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the A2PRegistrationMutation object of the builder.
func (_u *A2PRegistrationUpdateOne) Mutation() *A2PRegistrationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *A2PRegistrationUpdateOne) ClearUser() *A2PRegistrationUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the A2PRegistrationUpdate builder.
func (_u *A2PRegistrationUpdateOne) Where(ps ...predicate.A2PRegistration) *A2PRegistrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *A2PRegistrationUpdateOne) Select(field string, fields ...string) *A2PRegistrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated A2PRegistration entity.
func (_u *A2PRegistrationUpdateOne) Save(ctx context.Context) (*A2PRegistration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *A2PRegistrationUpdateOne) SaveX(ctx context.Context) *A2PRegistration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *A2PRegistrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *A2PRegistrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *A2PRegistrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := a2pregistration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *A2PRegistrationUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := a2pregistration.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := a2pregistration.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := a2pregistration.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "A2PRegistration.phone_number": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "A2PRegistration.user"`)
	}
	return nil
}

func (_u *A2PRegistrationUpdateOne) sqlSave(ctx context.Context) (_node *A2PRegistration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(a2pregistration.Table, a2pregistration.Columns, sqlgraph.NewFieldSpec(a2pregistration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "A2PRegistration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, a2pregistration.FieldID)
		for _, f := range fields {
			if !a2pregistration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != a2pregistration.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(a2pregistration.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(a2pregistration.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(a2pregistration.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Ein(); ok {
		_spec.SetField(a2pregistration.FieldEin, field.TypeString, value)
	}
	if _u.mutation.EinCleared() {
		_spec.ClearField(a2pregistration.FieldEin, field.TypeString)
	}
	if value, ok := _u.mutation.Vertical(); ok {
		_spec.SetField(a2pregistration.FieldVertical, field.TypeString, value)
	}
	if _u.mutation.VerticalCleared() {
		_spec.ClearField(a2pregistration.FieldVertical, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName(); ok {
		_spec.SetField(a2pregistration.FieldContactName, field.TypeString, value)
	}
	if _u.mutation.ContactNameCleared() {
		_spec.ClearField(a2pregistration.FieldContactName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(a2pregistration.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(a2pregistration.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SubaccountSid(); ok {
		_spec.SetField(a2pregistration.FieldSubaccountSid, field.TypeString, value)
	}
	if _u.mutation.SubaccountSidCleared() {
		_spec.ClearField(a2pregistration.FieldSubaccountSid, field.TypeString)
	}
	if value, ok := _u.mutation.BrandSid(); ok {
		_spec.SetField(a2pregistration.FieldBrandSid, field.TypeString, value)
	}
	if _u.mutation.BrandSidCleared() {
		_spec.ClearField(a2pregistration.FieldBrandSid, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignSid(); ok {
		_spec.SetField(a2pregistration.FieldCampaignSid, field.TypeString, value)
	}
	if _u.mutation.CampaignSidCleared() {
		_spec.ClearField(a2pregistration.FieldCampaignSid, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(a2pregistration.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(a2pregistration.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(a2pregistration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &A2PRegistration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{a2pregistration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
