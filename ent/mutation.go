// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/predicate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeA2PRegistration = "A2PRegistration"
	TypeCampaign        = "Campaign"
	TypeCampaignEvent   = "CampaignEvent"
	TypeContact         = "Contact"
	TypeMessageTemplate = "MessageTemplate"
	TypeSMSMessage      = "SMSMessage"
	TypeScheduledSend   = "ScheduledSend"
	TypeTwilioAccount   = "TwilioAccount"
	TypeUser            = "User"
	TypeUserBilling     = "UserBilling"
)

// A2PRegistrationMutation represents an operation that mutates the A2PRegistration nodes in the graph.
type A2PRegistrationMutation struct {
	config
	op             Op
	typ            string
	id             *int
	status         *a2pregistration.Status
	company_name   *string
	ein            *string
	vertical       *string
	contact_name   *string
	contact_email  *string
	subaccount_sid *string
	brand_sid      *string
	campaign_sid   *string
	phone_number   *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	user           *int
	cleareduser    bool
	done           bool
	oldValue       func(context.Context) (*A2PRegistration, error)
	predicates     []predicate.A2PRegistration
}

var _ ent.Mutation = (*A2PRegistrationMutation)(nil)

// a2pregistrationOption allows management of the mutation configuration using functional options.
type a2pregistrationOption func(*A2PRegistrationMutation)

// newA2PRegistrationMutation creates new mutation for the A2PRegistration entity.
func newA2PRegistrationMutation(c config, op Op, opts ...a2pregistrationOption) *A2PRegistrationMutation {
	m := &A2PRegistrationMutation{
		config:        c,
		op:            op,
		typ:           TypeA2PRegistration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withA2PRegistrationID sets the ID field of the mutation.
func withA2PRegistrationID(id int) a2pregistrationOption {
	return func(m *A2PRegistrationMutation) {
		var (
			err   error
			once  sync.Once
			value *A2PRegistration
		)
		m.oldValue = func(ctx context.Context) (*A2PRegistration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().A2PRegistration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withA2PRegistration sets the old A2PRegistration of the mutation.
func withA2PRegistration(node *A2PRegistration) a2pregistrationOption {
	return func(m *A2PRegistrationMutation) {
		m.oldValue = func(context.Context) (*A2PRegistration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m A2PRegistrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m A2PRegistrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *A2PRegistrationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *A2PRegistrationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().A2PRegistration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *A2PRegistrationMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *A2PRegistrationMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *A2PRegistrationMutation) ResetUserID() {
	m.user = nil
}

// SetStatus sets the "status" field.
func (m *A2PRegistrationMutation) SetStatus(a a2pregistration.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *A2PRegistrationMutation) Status() (r a2pregistration.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldStatus(ctx context.Context) (v a2pregistration.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *A2PRegistrationMutation) ResetStatus() {
	m.status = nil
}

// SetCompanyName sets the "company_name" field.
func (m *A2PRegistrationMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *A2PRegistrationMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *A2PRegistrationMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[a2pregistration.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *A2PRegistrationMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *A2PRegistrationMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, a2pregistration.FieldCompanyName)
}

// SetEin sets the "ein" field.
func (m *A2PRegistrationMutation) SetEin(s string) {
	m.ein = &s
}

// Ein returns the value of the "ein" field in the mutation.
func (m *A2PRegistrationMutation) Ein() (r string, exists bool) {
	v := m.ein
	if v == nil {
		return
	}
	return *v, true
}

// OldEin returns the old "ein" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldEin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEin: %w", err)
	}
	return oldValue.Ein, nil
}

// ClearEin clears the value of the "ein" field.
func (m *A2PRegistrationMutation) ClearEin() {
	m.ein = nil
	m.clearedFields[a2pregistration.FieldEin] = struct{}{}
}

// EinCleared returns if the "ein" field was cleared in this mutation.
func (m *A2PRegistrationMutation) EinCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldEin]
	return ok
}

// ResetEin resets all changes to the "ein" field.
func (m *A2PRegistrationMutation) ResetEin() {
	m.ein = nil
	delete(m.clearedFields, a2pregistration.FieldEin)
}

// SetVertical sets the "vertical" field.
func (m *A2PRegistrationMutation) SetVertical(s string) {
	m.vertical = &s
}

// Vertical returns the value of the "vertical" field in the mutation.
func (m *A2PRegistrationMutation) Vertical() (r string, exists bool) {
	v := m.vertical
	if v == nil {
		return
	}
	return *v, true
}

// OldVertical returns the old "vertical" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldVertical(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVertical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVertical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVertical: %w", err)
	}
	return oldValue.Vertical, nil
}

// ClearVertical clears the value of the "vertical" field.
func (m *A2PRegistrationMutation) ClearVertical() {
	m.vertical = nil
	m.clearedFields[a2pregistration.FieldVertical] = struct{}{}
}

// VerticalCleared returns if the "vertical" field was cleared in this mutation.
func (m *A2PRegistrationMutation) VerticalCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldVertical]
	return ok
}

// ResetVertical resets all changes to the "vertical" field.
func (m *A2PRegistrationMutation) ResetVertical() {
	m.vertical = nil
	delete(m.clearedFields, a2pregistration.FieldVertical)
}

// SetContactName sets the "contact_name" field.
func (m *A2PRegistrationMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *A2PRegistrationMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldContactName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *A2PRegistrationMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[a2pregistration.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *A2PRegistrationMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *A2PRegistrationMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, a2pregistration.FieldContactName)
}

// SetContactEmail sets the "contact_email" field.
func (m *A2PRegistrationMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *A2PRegistrationMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *A2PRegistrationMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[a2pregistration.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *A2PRegistrationMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *A2PRegistrationMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, a2pregistration.FieldContactEmail)
}

// SetSubaccountSid sets the "subaccount_sid" field.
func (m *A2PRegistrationMutation) SetSubaccountSid(s string) {
	m.subaccount_sid = &s
}

// SubaccountSid returns the value of the "subaccount_sid" field in the mutation.
func (m *A2PRegistrationMutation) SubaccountSid() (r string, exists bool) {
	v := m.subaccount_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldSubaccountSid returns the old "subaccount_sid" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldSubaccountSid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubaccountSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubaccountSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubaccountSid: %w", err)
	}
	return oldValue.SubaccountSid, nil
}

// ClearSubaccountSid clears the value of the "subaccount_sid" field.
func (m *A2PRegistrationMutation) ClearSubaccountSid() {
	m.subaccount_sid = nil
	m.clearedFields[a2pregistration.FieldSubaccountSid] = struct{}{}
}

// SubaccountSidCleared returns if the "subaccount_sid" field was cleared in this mutation.
func (m *A2PRegistrationMutation) SubaccountSidCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldSubaccountSid]
	return ok
}

// ResetSubaccountSid resets all changes to the "subaccount_sid" field.
func (m *A2PRegistrationMutation) ResetSubaccountSid() {
	m.subaccount_sid = nil
	delete(m.clearedFields, a2pregistration.FieldSubaccountSid)
}

// SetBrandSid sets the "brand_sid" field.
func (m *A2PRegistrationMutation) SetBrandSid(s string) {
	m.brand_sid = &s
}

// BrandSid returns the value of the "brand_sid" field in the mutation.
func (m *A2PRegistrationMutation) BrandSid() (r string, exists bool) {
	v := m.brand_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandSid returns the old "brand_sid" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldBrandSid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandSid: %w", err)
	}
	return oldValue.BrandSid, nil
}

// ClearBrandSid clears the value of the "brand_sid" field.
func (m *A2PRegistrationMutation) ClearBrandSid() {
	m.brand_sid = nil
	m.clearedFields[a2pregistration.FieldBrandSid] = struct{}{}
}

// BrandSidCleared returns if the "brand_sid" field was cleared in this mutation.
func (m *A2PRegistrationMutation) BrandSidCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldBrandSid]
	return ok
}

// ResetBrandSid resets all changes to the "brand_sid" field.
func (m *A2PRegistrationMutation) ResetBrandSid() {
	m.brand_sid = nil
	delete(m.clearedFields, a2pregistration.FieldBrandSid)
}

// SetCampaignSid sets the "campaign_sid" field.
func (m *A2PRegistrationMutation) SetCampaignSid(s string) {
	m.campaign_sid = &s
}

// CampaignSid returns the value of the "campaign_sid" field in the mutation.
func (m *A2PRegistrationMutation) CampaignSid() (r string, exists bool) {
	v := m.campaign_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignSid returns the old "campaign_sid" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldCampaignSid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignSid: %w", err)
	}
	return oldValue.CampaignSid, nil
}

// ClearCampaignSid clears the value of the "campaign_sid" field.
func (m *A2PRegistrationMutation) ClearCampaignSid() {
	m.campaign_sid = nil
	m.clearedFields[a2pregistration.FieldCampaignSid] = struct{}{}
}

// CampaignSidCleared returns if the "campaign_sid" field was cleared in this mutation.
func (m *A2PRegistrationMutation) CampaignSidCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldCampaignSid]
	return ok
}

// ResetCampaignSid resets all changes to the "campaign_sid" field.
func (m *A2PRegistrationMutation) ResetCampaignSid() {
	m.campaign_sid = nil
	delete(m.clearedFields, a2pregistration.FieldCampaignSid)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *A2PRegistrationMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *A2PRegistrationMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *A2PRegistrationMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[a2pregistration.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *A2PRegistrationMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[a2pregistration.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *A2PRegistrationMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, a2pregistration.FieldPhoneNumber)
}

// SetCreatedAt sets the "created_at" field.
func (m *A2PRegistrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *A2PRegistrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *A2PRegistrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *A2PRegistrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *A2PRegistrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the A2PRegistration entity.
// If the A2PRegistration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *A2PRegistrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *A2PRegistrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *A2PRegistrationMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[a2pregistration.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *A2PRegistrationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *A2PRegistrationMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *A2PRegistrationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the A2PRegistrationMutation builder.
func (m *A2PRegistrationMutation) Where(ps ...predicate.A2PRegistration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the A2PRegistrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *A2PRegistrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.A2PRegistration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *A2PRegistrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *A2PRegistrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (A2PRegistration).
func (m *A2PRegistrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *A2PRegistrationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user != nil {
		fields = append(fields, a2pregistration.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, a2pregistration.FieldStatus)
	}
	if m.company_name != nil {
		fields = append(fields, a2pregistration.FieldCompanyName)
	}
	if m.ein != nil {
		fields = append(fields, a2pregistration.FieldEin)
	}
	if m.vertical != nil {
		fields = append(fields, a2pregistration.FieldVertical)
	}
	if m.contact_name != nil {
		fields = append(fields, a2pregistration.FieldContactName)
	}
	if m.contact_email != nil {
		fields = append(fields, a2pregistration.FieldContactEmail)
	}
	if m.subaccount_sid != nil {
		fields = append(fields, a2pregistration.FieldSubaccountSid)
	}
	if m.brand_sid != nil {
		fields = append(fields, a2pregistration.FieldBrandSid)
	}
	if m.campaign_sid != nil {
		fields = append(fields, a2pregistration.FieldCampaignSid)
	}
	if m.phone_number != nil {
		fields = append(fields, a2pregistration.FieldPhoneNumber)
	}
	if m.created_at != nil {
		fields = append(fields, a2pregistration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, a2pregistration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *A2PRegistrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case a2pregistration.FieldUserID:
		return m.UserID()
	case a2pregistration.FieldStatus:
		return m.Status()
	case a2pregistration.FieldCompanyName:
		return m.CompanyName()
	case a2pregistration.FieldEin:
		return m.Ein()
	case a2pregistration.FieldVertical:
		return m.Vertical()
	case a2pregistration.FieldContactName:
		return m.ContactName()
	case a2pregistration.FieldContactEmail:
		return m.ContactEmail()
	case a2pregistration.FieldSubaccountSid:
		return m.SubaccountSid()
	case a2pregistration.FieldBrandSid:
		return m.BrandSid()
	case a2pregistration.FieldCampaignSid:
		return m.CampaignSid()
	case a2pregistration.FieldPhoneNumber:
		return m.PhoneNumber()
	case a2pregistration.FieldCreatedAt:
		return m.CreatedAt()
	case a2pregistration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *A2PRegistrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case a2pregistration.FieldUserID:
		return m.OldUserID(ctx)
	case a2pregistration.FieldStatus:
		return m.OldStatus(ctx)
	case a2pregistration.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case a2pregistration.FieldEin:
		return m.OldEin(ctx)
	case a2pregistration.FieldVertical:
		return m.OldVertical(ctx)
	case a2pregistration.FieldContactName:
		return m.OldContactName(ctx)
	case a2pregistration.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case a2pregistration.FieldSubaccountSid:
		return m.OldSubaccountSid(ctx)
	case a2pregistration.FieldBrandSid:
		return m.OldBrandSid(ctx)
	case a2pregistration.FieldCampaignSid:
		return m.OldCampaignSid(ctx)
	case a2pregistration.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case a2pregistration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case a2pregistration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown A2PRegistration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *A2PRegistrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case a2pregistration.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case a2pregistration.FieldStatus:
		v, ok := value.(a2pregistration.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case a2pregistration.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case a2pregistration.FieldEin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEin(v)
		return nil
	case a2pregistration.FieldVertical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVertical(v)
		return nil
	case a2pregistration.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case a2pregistration.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case a2pregistration.FieldSubaccountSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubaccountSid(v)
		return nil
	case a2pregistration.FieldBrandSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandSid(v)
		return nil
	case a2pregistration.FieldCampaignSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignSid(v)
		return nil
	case a2pregistration.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case a2pregistration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case a2pregistration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown A2PRegistration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *A2PRegistrationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *A2PRegistrationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *A2PRegistrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown A2PRegistration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *A2PRegistrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(a2pregistration.FieldCompanyName) {
		fields = append(fields, a2pregistration.FieldCompanyName)
	}
	if m.FieldCleared(a2pregistration.FieldEin) {
		fields = append(fields, a2pregistration.FieldEin)
	}
	if m.FieldCleared(a2pregistration.FieldVertical) {
		fields = append(fields, a2pregistration.FieldVertical)
	}
	if m.FieldCleared(a2pregistration.FieldContactName) {
		fields = append(fields, a2pregistration.FieldContactName)
	}
	if m.FieldCleared(a2pregistration.FieldContactEmail) {
		fields = append(fields, a2pregistration.FieldContactEmail)
	}
	if m.FieldCleared(a2pregistration.FieldSubaccountSid) {
		fields = append(fields, a2pregistration.FieldSubaccountSid)
	}
	if m.FieldCleared(a2pregistration.FieldBrandSid) {
		fields = append(fields, a2pregistration.FieldBrandSid)
	}
	if m.FieldCleared(a2pregistration.FieldCampaignSid) {
		fields = append(fields, a2pregistration.FieldCampaignSid)
	}
	if m.FieldCleared(a2pregistration.FieldPhoneNumber) {
		fields = append(fields, a2pregistration.FieldPhoneNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *A2PRegistrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *A2PRegistrationMutation) ClearField(name string) error {
	switch name {
	case a2pregistration.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case a2pregistration.FieldEin:
		m.ClearEin()
		return nil
	case a2pregistration.FieldVertical:
		m.ClearVertical()
		return nil
	case a2pregistration.FieldContactName:
		m.ClearContactName()
		return nil
	case a2pregistration.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	case a2pregistration.FieldSubaccountSid:
		m.ClearSubaccountSid()
		return nil
	case a2pregistration.FieldBrandSid:
		m.ClearBrandSid()
		return nil
	case a2pregistration.FieldCampaignSid:
		m.ClearCampaignSid()
		return nil
	case a2pregistration.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown A2PRegistration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *A2PRegistrationMutation) ResetField(name string) error {
	switch name {
	case a2pregistration.FieldUserID:
		m.ResetUserID()
		return nil
	case a2pregistration.FieldStatus:
		m.ResetStatus()
		return nil
	case a2pregistration.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case a2pregistration.FieldEin:
		m.ResetEin()
		return nil
	case a2pregistration.FieldVertical:
		m.ResetVertical()
		return nil
	case a2pregistration.FieldContactName:
		m.ResetContactName()
		return nil
	case a2pregistration.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case a2pregistration.FieldSubaccountSid:
		m.ResetSubaccountSid()
		return nil
	case a2pregistration.FieldBrandSid:
		m.ResetBrandSid()
		return nil
	case a2pregistration.FieldCampaignSid:
		m.ResetCampaignSid()
		return nil
	case a2pregistration.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case a2pregistration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case a2pregistration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown A2PRegistration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *A2PRegistrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, a2pregistration.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *A2PRegistrationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case a2pregistration.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *A2PRegistrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *A2PRegistrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *A2PRegistrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, a2pregistration.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *A2PRegistrationMutation) EdgeCleared(name string) bool {
	switch name {
	case a2pregistration.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *A2PRegistrationMutation) ClearEdge(name string) error {
	switch name {
	case a2pregistration.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown A2PRegistration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *A2PRegistrationMutation) ResetEdge(name string) error {
	switch name {
	case a2pregistration.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown A2PRegistration edge %s", name)
}

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	name                    *string
	status                  *campaign.Status
	from_number             *string
	drip_batch_size         *int
	adddrip_batch_size      *int
	drip_interval_days      *int
	adddrip_interval_days   *int
	message_intervals       *[]int
	appendmessage_intervals []int
	last_batch_admitted_at  *time.Time
	total_leads             *int
	addtotal_leads          *int
	sent_count              *int
	addsent_count           *int
	delivered_count         *int
	adddelivered_count      *int
	reply_count             *int
	addreply_count          *int
	failed_count            *int
	addfailed_count         *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	user                    *int
	cleareduser             bool
	contacts                map[int]struct{}
	removedcontacts         map[int]struct{}
	clearedcontacts         bool
	templates               map[int]struct{}
	removedtemplates        map[int]struct{}
	clearedtemplates        bool
	scheduled_sends         map[int]struct{}
	removedscheduled_sends  map[int]struct{}
	clearedscheduled_sends  bool
	messages                map[int]struct{}
	removedmessages         map[int]struct{}
	clearedmessages         bool
	events                  map[int]struct{}
	removedevents           map[int]struct{}
	clearedevents           bool
	done                    bool
	oldValue                func(context.Context) (*Campaign, error)
	predicates              []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id int) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CampaignMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CampaignMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CampaignMutation) ResetUserID() {
	m.user = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetFromNumber sets the "from_number" field.
func (m *CampaignMutation) SetFromNumber(s string) {
	m.from_number = &s
}

// FromNumber returns the value of the "from_number" field in the mutation.
func (m *CampaignMutation) FromNumber() (r string, exists bool) {
	v := m.from_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFromNumber returns the old "from_number" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFromNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromNumber: %w", err)
	}
	return oldValue.FromNumber, nil
}

// ClearFromNumber clears the value of the "from_number" field.
func (m *CampaignMutation) ClearFromNumber() {
	m.from_number = nil
	m.clearedFields[campaign.FieldFromNumber] = struct{}{}
}

// FromNumberCleared returns if the "from_number" field was cleared in this mutation.
func (m *CampaignMutation) FromNumberCleared() bool {
	_, ok := m.clearedFields[campaign.FieldFromNumber]
	return ok
}

// ResetFromNumber resets all changes to the "from_number" field.
func (m *CampaignMutation) ResetFromNumber() {
	m.from_number = nil
	delete(m.clearedFields, campaign.FieldFromNumber)
}

// SetDripBatchSize sets the "drip_batch_size" field.
func (m *CampaignMutation) SetDripBatchSize(i int) {
	m.drip_batch_size = &i
	m.adddrip_batch_size = nil
}

// DripBatchSize returns the value of the "drip_batch_size" field in the mutation.
func (m *CampaignMutation) DripBatchSize() (r int, exists bool) {
	v := m.drip_batch_size
	if v == nil {
		return
	}
	return *v, true
}

// OldDripBatchSize returns the old "drip_batch_size" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDripBatchSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDripBatchSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDripBatchSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDripBatchSize: %w", err)
	}
	return oldValue.DripBatchSize, nil
}

// AddDripBatchSize adds i to the "drip_batch_size" field.
func (m *CampaignMutation) AddDripBatchSize(i int) {
	if m.adddrip_batch_size != nil {
		*m.adddrip_batch_size += i
	} else {
		m.adddrip_batch_size = &i
	}
}

// AddedDripBatchSize returns the value that was added to the "drip_batch_size" field in this mutation.
func (m *CampaignMutation) AddedDripBatchSize() (r int, exists bool) {
	v := m.adddrip_batch_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetDripBatchSize resets all changes to the "drip_batch_size" field.
func (m *CampaignMutation) ResetDripBatchSize() {
	m.drip_batch_size = nil
	m.adddrip_batch_size = nil
}

// SetDripIntervalDays sets the "drip_interval_days" field.
func (m *CampaignMutation) SetDripIntervalDays(i int) {
	m.drip_interval_days = &i
	m.adddrip_interval_days = nil
}

// DripIntervalDays returns the value of the "drip_interval_days" field in the mutation.
func (m *CampaignMutation) DripIntervalDays() (r int, exists bool) {
	v := m.drip_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldDripIntervalDays returns the old "drip_interval_days" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDripIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDripIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDripIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDripIntervalDays: %w", err)
	}
	return oldValue.DripIntervalDays, nil
}

// AddDripIntervalDays adds i to the "drip_interval_days" field.
func (m *CampaignMutation) AddDripIntervalDays(i int) {
	if m.adddrip_interval_days != nil {
		*m.adddrip_interval_days += i
	} else {
		m.adddrip_interval_days = &i
	}
}

// AddedDripIntervalDays returns the value that was added to the "drip_interval_days" field in this mutation.
func (m *CampaignMutation) AddedDripIntervalDays() (r int, exists bool) {
	v := m.adddrip_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetDripIntervalDays resets all changes to the "drip_interval_days" field.
func (m *CampaignMutation) ResetDripIntervalDays() {
	m.drip_interval_days = nil
	m.adddrip_interval_days = nil
}

// SetMessageIntervals sets the "message_intervals" field.
func (m *CampaignMutation) SetMessageIntervals(i []int) {
	m.message_intervals = &i
	m.appendmessage_intervals = nil
}

// MessageIntervals returns the value of the "message_intervals" field in the mutation.
func (m *CampaignMutation) MessageIntervals() (r []int, exists bool) {
	v := m.message_intervals
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIntervals returns the old "message_intervals" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldMessageIntervals(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIntervals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIntervals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIntervals: %w", err)
	}
	return oldValue.MessageIntervals, nil
}

// AppendMessageIntervals adds i to the "message_intervals" field.
func (m *CampaignMutation) AppendMessageIntervals(i []int) {
	m.appendmessage_intervals = append(m.appendmessage_intervals, i...)
}

// AppendedMessageIntervals returns the list of values that were appended to the "message_intervals" field in this mutation.
func (m *CampaignMutation) AppendedMessageIntervals() ([]int, bool) {
	if len(m.appendmessage_intervals) == 0 {
		return nil, false
	}
	return m.appendmessage_intervals, true
}

// ResetMessageIntervals resets all changes to the "message_intervals" field.
func (m *CampaignMutation) ResetMessageIntervals() {
	m.message_intervals = nil
	m.appendmessage_intervals = nil
}

// SetLastBatchAdmittedAt sets the "last_batch_admitted_at" field.
func (m *CampaignMutation) SetLastBatchAdmittedAt(t time.Time) {
	m.last_batch_admitted_at = &t
}

// LastBatchAdmittedAt returns the value of the "last_batch_admitted_at" field in the mutation.
func (m *CampaignMutation) LastBatchAdmittedAt() (r time.Time, exists bool) {
	v := m.last_batch_admitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBatchAdmittedAt returns the old "last_batch_admitted_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLastBatchAdmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBatchAdmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBatchAdmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBatchAdmittedAt: %w", err)
	}
	return oldValue.LastBatchAdmittedAt, nil
}

// ClearLastBatchAdmittedAt clears the value of the "last_batch_admitted_at" field.
func (m *CampaignMutation) ClearLastBatchAdmittedAt() {
	m.last_batch_admitted_at = nil
	m.clearedFields[campaign.FieldLastBatchAdmittedAt] = struct{}{}
}

// LastBatchAdmittedAtCleared returns if the "last_batch_admitted_at" field was cleared in this mutation.
func (m *CampaignMutation) LastBatchAdmittedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldLastBatchAdmittedAt]
	return ok
}

// ResetLastBatchAdmittedAt resets all changes to the "last_batch_admitted_at" field.
func (m *CampaignMutation) ResetLastBatchAdmittedAt() {
	m.last_batch_admitted_at = nil
	delete(m.clearedFields, campaign.FieldLastBatchAdmittedAt)
}

// SetTotalLeads sets the "total_leads" field.
func (m *CampaignMutation) SetTotalLeads(i int) {
	m.total_leads = &i
	m.addtotal_leads = nil
}

// TotalLeads returns the value of the "total_leads" field in the mutation.
func (m *CampaignMutation) TotalLeads() (r int, exists bool) {
	v := m.total_leads
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLeads returns the old "total_leads" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTotalLeads(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLeads is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLeads requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLeads: %w", err)
	}
	return oldValue.TotalLeads, nil
}

// AddTotalLeads adds i to the "total_leads" field.
func (m *CampaignMutation) AddTotalLeads(i int) {
	if m.addtotal_leads != nil {
		*m.addtotal_leads += i
	} else {
		m.addtotal_leads = &i
	}
}

// AddedTotalLeads returns the value that was added to the "total_leads" field in this mutation.
func (m *CampaignMutation) AddedTotalLeads() (r int, exists bool) {
	v := m.addtotal_leads
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLeads resets all changes to the "total_leads" field.
func (m *CampaignMutation) ResetTotalLeads() {
	m.total_leads = nil
	m.addtotal_leads = nil
}

// SetSentCount sets the "sent_count" field.
func (m *CampaignMutation) SetSentCount(i int) {
	m.sent_count = &i
	m.addsent_count = nil
}

// SentCount returns the value of the "sent_count" field in the mutation.
func (m *CampaignMutation) SentCount() (r int, exists bool) {
	v := m.sent_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSentCount returns the old "sent_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentCount: %w", err)
	}
	return oldValue.SentCount, nil
}

// AddSentCount adds i to the "sent_count" field.
func (m *CampaignMutation) AddSentCount(i int) {
	if m.addsent_count != nil {
		*m.addsent_count += i
	} else {
		m.addsent_count = &i
	}
}

// AddedSentCount returns the value that was added to the "sent_count" field in this mutation.
func (m *CampaignMutation) AddedSentCount() (r int, exists bool) {
	v := m.addsent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentCount resets all changes to the "sent_count" field.
func (m *CampaignMutation) ResetSentCount() {
	m.sent_count = nil
	m.addsent_count = nil
}

// SetDeliveredCount sets the "delivered_count" field.
func (m *CampaignMutation) SetDeliveredCount(i int) {
	m.delivered_count = &i
	m.adddelivered_count = nil
}

// DeliveredCount returns the value of the "delivered_count" field in the mutation.
func (m *CampaignMutation) DeliveredCount() (r int, exists bool) {
	v := m.delivered_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredCount returns the old "delivered_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDeliveredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredCount: %w", err)
	}
	return oldValue.DeliveredCount, nil
}

// AddDeliveredCount adds i to the "delivered_count" field.
func (m *CampaignMutation) AddDeliveredCount(i int) {
	if m.adddelivered_count != nil {
		*m.adddelivered_count += i
	} else {
		m.adddelivered_count = &i
	}
}

// AddedDeliveredCount returns the value that was added to the "delivered_count" field in this mutation.
func (m *CampaignMutation) AddedDeliveredCount() (r int, exists bool) {
	v := m.adddelivered_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveredCount resets all changes to the "delivered_count" field.
func (m *CampaignMutation) ResetDeliveredCount() {
	m.delivered_count = nil
	m.adddelivered_count = nil
}

// SetReplyCount sets the "reply_count" field.
func (m *CampaignMutation) SetReplyCount(i int) {
	m.reply_count = &i
	m.addreply_count = nil
}

// ReplyCount returns the value of the "reply_count" field in the mutation.
func (m *CampaignMutation) ReplyCount() (r int, exists bool) {
	v := m.reply_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyCount returns the old "reply_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldReplyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyCount: %w", err)
	}
	return oldValue.ReplyCount, nil
}

// AddReplyCount adds i to the "reply_count" field.
func (m *CampaignMutation) AddReplyCount(i int) {
	if m.addreply_count != nil {
		*m.addreply_count += i
	} else {
		m.addreply_count = &i
	}
}

// AddedReplyCount returns the value that was added to the "reply_count" field in this mutation.
func (m *CampaignMutation) AddedReplyCount() (r int, exists bool) {
	v := m.addreply_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReplyCount resets all changes to the "reply_count" field.
func (m *CampaignMutation) ResetReplyCount() {
	m.reply_count = nil
	m.addreply_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *CampaignMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *CampaignMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *CampaignMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *CampaignMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *CampaignMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *CampaignMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[campaign.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CampaignMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CampaignMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddContactIDs adds the "contacts" edge to the Contact entity by ids.
func (m *CampaignMutation) AddContactIDs(ids ...int) {
	if m.contacts == nil {
		m.contacts = make(map[int]struct{})
	}
	for i := range ids {
		m.contacts[ids[i]] = struct{}{}
	}
}

// ClearContacts clears the "contacts" edge to the Contact entity.
func (m *CampaignMutation) ClearContacts() {
	m.clearedcontacts = true
}

// ContactsCleared reports if the "contacts" edge to the Contact entity was cleared.
func (m *CampaignMutation) ContactsCleared() bool {
	return m.clearedcontacts
}

// RemoveContactIDs removes the "contacts" edge to the Contact entity by IDs.
func (m *CampaignMutation) RemoveContactIDs(ids ...int) {
	if m.removedcontacts == nil {
		m.removedcontacts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.contacts, ids[i])
		m.removedcontacts[ids[i]] = struct{}{}
	}
}

// RemovedContacts returns the removed IDs of the "contacts" edge to the Contact entity.
func (m *CampaignMutation) RemovedContactsIDs() (ids []int) {
	for id := range m.removedcontacts {
		ids = append(ids, id)
	}
	return
}

// ContactsIDs returns the "contacts" edge IDs in the mutation.
func (m *CampaignMutation) ContactsIDs() (ids []int) {
	for id := range m.contacts {
		ids = append(ids, id)
	}
	return
}

// ResetContacts resets all changes to the "contacts" edge.
func (m *CampaignMutation) ResetContacts() {
	m.contacts = nil
	m.clearedcontacts = false
	m.removedcontacts = nil
}

// AddTemplateIDs adds the "templates" edge to the MessageTemplate entity by ids.
func (m *CampaignMutation) AddTemplateIDs(ids ...int) {
	if m.templates == nil {
		m.templates = make(map[int]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the MessageTemplate entity.
func (m *CampaignMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the MessageTemplate entity was cleared.
func (m *CampaignMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the MessageTemplate entity by IDs.
func (m *CampaignMutation) RemoveTemplateIDs(ids ...int) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the MessageTemplate entity.
func (m *CampaignMutation) RemovedTemplatesIDs() (ids []int) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *CampaignMutation) TemplatesIDs() (ids []int) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *CampaignMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by ids.
func (m *CampaignMutation) AddScheduledSendIDs(ids ...int) {
	if m.scheduled_sends == nil {
		m.scheduled_sends = make(map[int]struct{})
	}
	for i := range ids {
		m.scheduled_sends[ids[i]] = struct{}{}
	}
}

// ClearScheduledSends clears the "scheduled_sends" edge to the ScheduledSend entity.
func (m *CampaignMutation) ClearScheduledSends() {
	m.clearedscheduled_sends = true
}

// ScheduledSendsCleared reports if the "scheduled_sends" edge to the ScheduledSend entity was cleared.
func (m *CampaignMutation) ScheduledSendsCleared() bool {
	return m.clearedscheduled_sends
}

// RemoveScheduledSendIDs removes the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (m *CampaignMutation) RemoveScheduledSendIDs(ids ...int) {
	if m.removedscheduled_sends == nil {
		m.removedscheduled_sends = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scheduled_sends, ids[i])
		m.removedscheduled_sends[ids[i]] = struct{}{}
	}
}

// RemovedScheduledSends returns the removed IDs of the "scheduled_sends" edge to the ScheduledSend entity.
func (m *CampaignMutation) RemovedScheduledSendsIDs() (ids []int) {
	for id := range m.removedscheduled_sends {
		ids = append(ids, id)
	}
	return
}

// ScheduledSendsIDs returns the "scheduled_sends" edge IDs in the mutation.
func (m *CampaignMutation) ScheduledSendsIDs() (ids []int) {
	for id := range m.scheduled_sends {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledSends resets all changes to the "scheduled_sends" edge.
func (m *CampaignMutation) ResetScheduledSends() {
	m.scheduled_sends = nil
	m.clearedscheduled_sends = false
	m.removedscheduled_sends = nil
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by ids.
func (m *CampaignMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the SMSMessage entity.
func (m *CampaignMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the SMSMessage entity was cleared.
func (m *CampaignMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the SMSMessage entity by IDs.
func (m *CampaignMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the SMSMessage entity.
func (m *CampaignMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *CampaignMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *CampaignMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddEventIDs adds the "events" edge to the CampaignEvent entity by ids.
func (m *CampaignMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the CampaignEvent entity.
func (m *CampaignMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the CampaignEvent entity was cleared.
func (m *CampaignMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the CampaignEvent entity by IDs.
func (m *CampaignMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the CampaignEvent entity.
func (m *CampaignMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CampaignMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CampaignMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user != nil {
		fields = append(fields, campaign.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.from_number != nil {
		fields = append(fields, campaign.FieldFromNumber)
	}
	if m.drip_batch_size != nil {
		fields = append(fields, campaign.FieldDripBatchSize)
	}
	if m.drip_interval_days != nil {
		fields = append(fields, campaign.FieldDripIntervalDays)
	}
	if m.message_intervals != nil {
		fields = append(fields, campaign.FieldMessageIntervals)
	}
	if m.last_batch_admitted_at != nil {
		fields = append(fields, campaign.FieldLastBatchAdmittedAt)
	}
	if m.total_leads != nil {
		fields = append(fields, campaign.FieldTotalLeads)
	}
	if m.sent_count != nil {
		fields = append(fields, campaign.FieldSentCount)
	}
	if m.delivered_count != nil {
		fields = append(fields, campaign.FieldDeliveredCount)
	}
	if m.reply_count != nil {
		fields = append(fields, campaign.FieldReplyCount)
	}
	if m.failed_count != nil {
		fields = append(fields, campaign.FieldFailedCount)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldUserID:
		return m.UserID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldFromNumber:
		return m.FromNumber()
	case campaign.FieldDripBatchSize:
		return m.DripBatchSize()
	case campaign.FieldDripIntervalDays:
		return m.DripIntervalDays()
	case campaign.FieldMessageIntervals:
		return m.MessageIntervals()
	case campaign.FieldLastBatchAdmittedAt:
		return m.LastBatchAdmittedAt()
	case campaign.FieldTotalLeads:
		return m.TotalLeads()
	case campaign.FieldSentCount:
		return m.SentCount()
	case campaign.FieldDeliveredCount:
		return m.DeliveredCount()
	case campaign.FieldReplyCount:
		return m.ReplyCount()
	case campaign.FieldFailedCount:
		return m.FailedCount()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldUserID:
		return m.OldUserID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldFromNumber:
		return m.OldFromNumber(ctx)
	case campaign.FieldDripBatchSize:
		return m.OldDripBatchSize(ctx)
	case campaign.FieldDripIntervalDays:
		return m.OldDripIntervalDays(ctx)
	case campaign.FieldMessageIntervals:
		return m.OldMessageIntervals(ctx)
	case campaign.FieldLastBatchAdmittedAt:
		return m.OldLastBatchAdmittedAt(ctx)
	case campaign.FieldTotalLeads:
		return m.OldTotalLeads(ctx)
	case campaign.FieldSentCount:
		return m.OldSentCount(ctx)
	case campaign.FieldDeliveredCount:
		return m.OldDeliveredCount(ctx)
	case campaign.FieldReplyCount:
		return m.OldReplyCount(ctx)
	case campaign.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldFromNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromNumber(v)
		return nil
	case campaign.FieldDripBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDripBatchSize(v)
		return nil
	case campaign.FieldDripIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDripIntervalDays(v)
		return nil
	case campaign.FieldMessageIntervals:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIntervals(v)
		return nil
	case campaign.FieldLastBatchAdmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBatchAdmittedAt(v)
		return nil
	case campaign.FieldTotalLeads:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLeads(v)
		return nil
	case campaign.FieldSentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentCount(v)
		return nil
	case campaign.FieldDeliveredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredCount(v)
		return nil
	case campaign.FieldReplyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyCount(v)
		return nil
	case campaign.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.adddrip_batch_size != nil {
		fields = append(fields, campaign.FieldDripBatchSize)
	}
	if m.adddrip_interval_days != nil {
		fields = append(fields, campaign.FieldDripIntervalDays)
	}
	if m.addtotal_leads != nil {
		fields = append(fields, campaign.FieldTotalLeads)
	}
	if m.addsent_count != nil {
		fields = append(fields, campaign.FieldSentCount)
	}
	if m.adddelivered_count != nil {
		fields = append(fields, campaign.FieldDeliveredCount)
	}
	if m.addreply_count != nil {
		fields = append(fields, campaign.FieldReplyCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, campaign.FieldFailedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldDripBatchSize:
		return m.AddedDripBatchSize()
	case campaign.FieldDripIntervalDays:
		return m.AddedDripIntervalDays()
	case campaign.FieldTotalLeads:
		return m.AddedTotalLeads()
	case campaign.FieldSentCount:
		return m.AddedSentCount()
	case campaign.FieldDeliveredCount:
		return m.AddedDeliveredCount()
	case campaign.FieldReplyCount:
		return m.AddedReplyCount()
	case campaign.FieldFailedCount:
		return m.AddedFailedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldDripBatchSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDripBatchSize(v)
		return nil
	case campaign.FieldDripIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDripIntervalDays(v)
		return nil
	case campaign.FieldTotalLeads:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLeads(v)
		return nil
	case campaign.FieldSentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentCount(v)
		return nil
	case campaign.FieldDeliveredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveredCount(v)
		return nil
	case campaign.FieldReplyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReplyCount(v)
		return nil
	case campaign.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldFromNumber) {
		fields = append(fields, campaign.FieldFromNumber)
	}
	if m.FieldCleared(campaign.FieldLastBatchAdmittedAt) {
		fields = append(fields, campaign.FieldLastBatchAdmittedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldFromNumber:
		m.ClearFromNumber()
		return nil
	case campaign.FieldLastBatchAdmittedAt:
		m.ClearLastBatchAdmittedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldUserID:
		m.ResetUserID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldFromNumber:
		m.ResetFromNumber()
		return nil
	case campaign.FieldDripBatchSize:
		m.ResetDripBatchSize()
		return nil
	case campaign.FieldDripIntervalDays:
		m.ResetDripIntervalDays()
		return nil
	case campaign.FieldMessageIntervals:
		m.ResetMessageIntervals()
		return nil
	case campaign.FieldLastBatchAdmittedAt:
		m.ResetLastBatchAdmittedAt()
		return nil
	case campaign.FieldTotalLeads:
		m.ResetTotalLeads()
		return nil
	case campaign.FieldSentCount:
		m.ResetSentCount()
		return nil
	case campaign.FieldDeliveredCount:
		m.ResetDeliveredCount()
		return nil
	case campaign.FieldReplyCount:
		m.ResetReplyCount()
		return nil
	case campaign.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.user != nil {
		edges = append(edges, campaign.EdgeUser)
	}
	if m.contacts != nil {
		edges = append(edges, campaign.EdgeContacts)
	}
	if m.templates != nil {
		edges = append(edges, campaign.EdgeTemplates)
	}
	if m.scheduled_sends != nil {
		edges = append(edges, campaign.EdgeScheduledSends)
	}
	if m.messages != nil {
		edges = append(edges, campaign.EdgeMessages)
	}
	if m.events != nil {
		edges = append(edges, campaign.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case campaign.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.contacts))
		for id := range m.contacts {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeScheduledSends:
		ids := make([]ent.Value, 0, len(m.scheduled_sends))
		for id := range m.scheduled_sends {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedcontacts != nil {
		edges = append(edges, campaign.EdgeContacts)
	}
	if m.removedtemplates != nil {
		edges = append(edges, campaign.EdgeTemplates)
	}
	if m.removedscheduled_sends != nil {
		edges = append(edges, campaign.EdgeScheduledSends)
	}
	if m.removedmessages != nil {
		edges = append(edges, campaign.EdgeMessages)
	}
	if m.removedevents != nil {
		edges = append(edges, campaign.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.removedcontacts))
		for id := range m.removedcontacts {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeScheduledSends:
		ids := make([]ent.Value, 0, len(m.removedscheduled_sends))
		for id := range m.removedscheduled_sends {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.cleareduser {
		edges = append(edges, campaign.EdgeUser)
	}
	if m.clearedcontacts {
		edges = append(edges, campaign.EdgeContacts)
	}
	if m.clearedtemplates {
		edges = append(edges, campaign.EdgeTemplates)
	}
	if m.clearedscheduled_sends {
		edges = append(edges, campaign.EdgeScheduledSends)
	}
	if m.clearedmessages {
		edges = append(edges, campaign.EdgeMessages)
	}
	if m.clearedevents {
		edges = append(edges, campaign.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeUser:
		return m.cleareduser
	case campaign.EdgeContacts:
		return m.clearedcontacts
	case campaign.EdgeTemplates:
		return m.clearedtemplates
	case campaign.EdgeScheduledSends:
		return m.clearedscheduled_sends
	case campaign.EdgeMessages:
		return m.clearedmessages
	case campaign.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	case campaign.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeUser:
		m.ResetUser()
		return nil
	case campaign.EdgeContacts:
		m.ResetContacts()
		return nil
	case campaign.EdgeTemplates:
		m.ResetTemplates()
		return nil
	case campaign.EdgeScheduledSends:
		m.ResetScheduledSends()
		return nil
	case campaign.EdgeMessages:
		m.ResetMessages()
		return nil
	case campaign.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// CampaignEventMutation represents an operation that mutates the CampaignEvent nodes in the graph.
type CampaignEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *int
	adduser_id      *int
	event_type      *string
	details         *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	campaign        *int
	clearedcampaign bool
	done            bool
	oldValue        func(context.Context) (*CampaignEvent, error)
	predicates      []predicate.CampaignEvent
}

var _ ent.Mutation = (*CampaignEventMutation)(nil)

// campaigneventOption allows management of the mutation configuration using functional options.
type campaigneventOption func(*CampaignEventMutation)

// newCampaignEventMutation creates new mutation for the CampaignEvent entity.
func newCampaignEventMutation(c config, op Op, opts ...campaigneventOption) *CampaignEventMutation {
	m := &CampaignEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaignEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignEventID sets the ID field of the mutation.
func withCampaignEventID(id int) campaigneventOption {
	return func(m *CampaignEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CampaignEvent
		)
		m.oldValue = func(ctx context.Context) (*CampaignEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CampaignEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaignEvent sets the old CampaignEvent of the mutation.
func withCampaignEvent(node *CampaignEvent) campaigneventOption {
	return func(m *CampaignEventMutation) {
		m.oldValue = func(context.Context) (*CampaignEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CampaignEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *CampaignEventMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *CampaignEventMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the CampaignEvent entity.
// If the CampaignEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEventMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *CampaignEventMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetUserID sets the "user_id" field.
func (m *CampaignEventMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CampaignEventMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CampaignEvent entity.
// If the CampaignEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEventMutation) OldUserID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *CampaignEventMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *CampaignEventMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearUserID clears the value of the "user_id" field.
func (m *CampaignEventMutation) ClearUserID() {
	m.user_id = nil
	m.adduser_id = nil
	m.clearedFields[campaignevent.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *CampaignEventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[campaignevent.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CampaignEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
	delete(m.clearedFields, campaignevent.FieldUserID)
}

// SetEventType sets the "event_type" field.
func (m *CampaignEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *CampaignEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the CampaignEvent entity.
// If the CampaignEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *CampaignEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetDetails sets the "details" field.
func (m *CampaignEventMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *CampaignEventMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the CampaignEvent entity.
// If the CampaignEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEventMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *CampaignEventMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[campaignevent.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *CampaignEventMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[campaignevent.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *CampaignEventMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, campaignevent.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CampaignEvent entity.
// If the CampaignEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *CampaignEventMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[campaignevent.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *CampaignEventMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *CampaignEventMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *CampaignEventMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the CampaignEventMutation builder.
func (m *CampaignEventMutation) Where(ps ...predicate.CampaignEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CampaignEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CampaignEvent).
func (m *CampaignEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.campaign != nil {
		fields = append(fields, campaignevent.FieldCampaignID)
	}
	if m.user_id != nil {
		fields = append(fields, campaignevent.FieldUserID)
	}
	if m.event_type != nil {
		fields = append(fields, campaignevent.FieldEventType)
	}
	if m.details != nil {
		fields = append(fields, campaignevent.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, campaignevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaignevent.FieldCampaignID:
		return m.CampaignID()
	case campaignevent.FieldUserID:
		return m.UserID()
	case campaignevent.FieldEventType:
		return m.EventType()
	case campaignevent.FieldDetails:
		return m.Details()
	case campaignevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaignevent.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case campaignevent.FieldUserID:
		return m.OldUserID(ctx)
	case campaignevent.FieldEventType:
		return m.OldEventType(ctx)
	case campaignevent.FieldDetails:
		return m.OldDetails(ctx)
	case campaignevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CampaignEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaignevent.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case campaignevent.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case campaignevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case campaignevent.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case campaignevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CampaignEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignEventMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, campaignevent.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaignevent.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaignevent.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown CampaignEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaignevent.FieldUserID) {
		fields = append(fields, campaignevent.FieldUserID)
	}
	if m.FieldCleared(campaignevent.FieldDetails) {
		fields = append(fields, campaignevent.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignEventMutation) ClearField(name string) error {
	switch name {
	case campaignevent.FieldUserID:
		m.ClearUserID()
		return nil
	case campaignevent.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown CampaignEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignEventMutation) ResetField(name string) error {
	switch name {
	case campaignevent.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case campaignevent.FieldUserID:
		m.ResetUserID()
		return nil
	case campaignevent.FieldEventType:
		m.ResetEventType()
		return nil
	case campaignevent.FieldDetails:
		m.ResetDetails()
		return nil
	case campaignevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CampaignEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, campaignevent.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaignevent.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, campaignevent.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignEventMutation) EdgeCleared(name string) bool {
	switch name {
	case campaignevent.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignEventMutation) ClearEdge(name string) error {
	switch name {
	case campaignevent.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown CampaignEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignEventMutation) ResetEdge(name string) error {
	switch name {
	case campaignevent.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown CampaignEvent edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	name                   *string
	phone_number           *string
	tags                   *[]string
	appendtags             []string
	status                 *contact.Status
	message_count          *int
	addmessage_count       *int
	last_message_sent_at   *time.Time
	responded_at           *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	campaign               *int
	clearedcampaign        bool
	scheduled_sends        map[int]struct{}
	removedscheduled_sends map[int]struct{}
	clearedscheduled_sends bool
	messages               map[int]struct{}
	removedmessages        map[int]struct{}
	clearedmessages        bool
	done                   bool
	oldValue               func(context.Context) (*Contact, error)
	predicates             []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id int) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *ContactMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *ContactMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *ContactMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetName sets the "name" field.
func (m *ContactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContactMutation) ResetName() {
	m.name = nil
}

// SetPhoneNumber sets the "phone_number" field.
func (m *ContactMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *ContactMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *ContactMutation) ResetPhoneNumber() {
	m.phone_number = nil
}

// SetTags sets the "tags" field.
func (m *ContactMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ContactMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ContactMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ContactMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ContactMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[contact.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ContactMutation) TagsCleared() bool {
	_, ok := m.clearedFields[contact.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ContactMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, contact.FieldTags)
}

// SetStatus sets the "status" field.
func (m *ContactMutation) SetStatus(c contact.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContactMutation) Status() (r contact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldStatus(ctx context.Context) (v contact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContactMutation) ResetStatus() {
	m.status = nil
}

// SetMessageCount sets the "message_count" field.
func (m *ContactMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *ContactMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *ContactMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *ContactMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *ContactMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetLastMessageSentAt sets the "last_message_sent_at" field.
func (m *ContactMutation) SetLastMessageSentAt(t time.Time) {
	m.last_message_sent_at = &t
}

// LastMessageSentAt returns the value of the "last_message_sent_at" field in the mutation.
func (m *ContactMutation) LastMessageSentAt() (r time.Time, exists bool) {
	v := m.last_message_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageSentAt returns the old "last_message_sent_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLastMessageSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageSentAt: %w", err)
	}
	return oldValue.LastMessageSentAt, nil
}

// ClearLastMessageSentAt clears the value of the "last_message_sent_at" field.
func (m *ContactMutation) ClearLastMessageSentAt() {
	m.last_message_sent_at = nil
	m.clearedFields[contact.FieldLastMessageSentAt] = struct{}{}
}

// LastMessageSentAtCleared returns if the "last_message_sent_at" field was cleared in this mutation.
func (m *ContactMutation) LastMessageSentAtCleared() bool {
	_, ok := m.clearedFields[contact.FieldLastMessageSentAt]
	return ok
}

// ResetLastMessageSentAt resets all changes to the "last_message_sent_at" field.
func (m *ContactMutation) ResetLastMessageSentAt() {
	m.last_message_sent_at = nil
	delete(m.clearedFields, contact.FieldLastMessageSentAt)
}

// SetRespondedAt sets the "responded_at" field.
func (m *ContactMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *ContactMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *ContactMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[contact.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *ContactMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[contact.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *ContactMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, contact.FieldRespondedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *ContactMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[contact.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *ContactMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *ContactMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *ContactMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// AddScheduledSendIDs adds the "scheduled_sends" edge to the ScheduledSend entity by ids.
func (m *ContactMutation) AddScheduledSendIDs(ids ...int) {
	if m.scheduled_sends == nil {
		m.scheduled_sends = make(map[int]struct{})
	}
	for i := range ids {
		m.scheduled_sends[ids[i]] = struct{}{}
	}
}

// ClearScheduledSends clears the "scheduled_sends" edge to the ScheduledSend entity.
func (m *ContactMutation) ClearScheduledSends() {
	m.clearedscheduled_sends = true
}

// ScheduledSendsCleared reports if the "scheduled_sends" edge to the ScheduledSend entity was cleared.
func (m *ContactMutation) ScheduledSendsCleared() bool {
	return m.clearedscheduled_sends
}

// RemoveScheduledSendIDs removes the "scheduled_sends" edge to the ScheduledSend entity by IDs.
func (m *ContactMutation) RemoveScheduledSendIDs(ids ...int) {
	if m.removedscheduled_sends == nil {
		m.removedscheduled_sends = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scheduled_sends, ids[i])
		m.removedscheduled_sends[ids[i]] = struct{}{}
	}
}

// RemovedScheduledSends returns the removed IDs of the "scheduled_sends" edge to the ScheduledSend entity.
func (m *ContactMutation) RemovedScheduledSendsIDs() (ids []int) {
	for id := range m.removedscheduled_sends {
		ids = append(ids, id)
	}
	return
}

// ScheduledSendsIDs returns the "scheduled_sends" edge IDs in the mutation.
func (m *ContactMutation) ScheduledSendsIDs() (ids []int) {
	for id := range m.scheduled_sends {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledSends resets all changes to the "scheduled_sends" edge.
func (m *ContactMutation) ResetScheduledSends() {
	m.scheduled_sends = nil
	m.clearedscheduled_sends = false
	m.removedscheduled_sends = nil
}

// AddMessageIDs adds the "messages" edge to the SMSMessage entity by ids.
func (m *ContactMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the SMSMessage entity.
func (m *ContactMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the SMSMessage entity was cleared.
func (m *ContactMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the SMSMessage entity by IDs.
func (m *ContactMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the SMSMessage entity.
func (m *ContactMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ContactMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ContactMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.campaign != nil {
		fields = append(fields, contact.FieldCampaignID)
	}
	if m.name != nil {
		fields = append(fields, contact.FieldName)
	}
	if m.phone_number != nil {
		fields = append(fields, contact.FieldPhoneNumber)
	}
	if m.tags != nil {
		fields = append(fields, contact.FieldTags)
	}
	if m.status != nil {
		fields = append(fields, contact.FieldStatus)
	}
	if m.message_count != nil {
		fields = append(fields, contact.FieldMessageCount)
	}
	if m.last_message_sent_at != nil {
		fields = append(fields, contact.FieldLastMessageSentAt)
	}
	if m.responded_at != nil {
		fields = append(fields, contact.FieldRespondedAt)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldCampaignID:
		return m.CampaignID()
	case contact.FieldName:
		return m.Name()
	case contact.FieldPhoneNumber:
		return m.PhoneNumber()
	case contact.FieldTags:
		return m.Tags()
	case contact.FieldStatus:
		return m.Status()
	case contact.FieldMessageCount:
		return m.MessageCount()
	case contact.FieldLastMessageSentAt:
		return m.LastMessageSentAt()
	case contact.FieldRespondedAt:
		return m.RespondedAt()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	case contact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case contact.FieldName:
		return m.OldName(ctx)
	case contact.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case contact.FieldTags:
		return m.OldTags(ctx)
	case contact.FieldStatus:
		return m.OldStatus(ctx)
	case contact.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case contact.FieldLastMessageSentAt:
		return m.OldLastMessageSentAt(ctx)
	case contact.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case contact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contact.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case contact.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case contact.FieldStatus:
		v, ok := value.(contact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contact.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case contact.FieldLastMessageSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageSentAt(v)
		return nil
	case contact.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_count != nil {
		fields = append(fields, contact.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contact.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldTags) {
		fields = append(fields, contact.FieldTags)
	}
	if m.FieldCleared(contact.FieldLastMessageSentAt) {
		fields = append(fields, contact.FieldLastMessageSentAt)
	}
	if m.FieldCleared(contact.FieldRespondedAt) {
		fields = append(fields, contact.FieldRespondedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldTags:
		m.ClearTags()
		return nil
	case contact.FieldLastMessageSentAt:
		m.ClearLastMessageSentAt()
		return nil
	case contact.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case contact.FieldName:
		m.ResetName()
		return nil
	case contact.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case contact.FieldTags:
		m.ResetTags()
		return nil
	case contact.FieldStatus:
		m.ResetStatus()
		return nil
	case contact.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case contact.FieldLastMessageSentAt:
		m.ResetLastMessageSentAt()
		return nil
	case contact.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.campaign != nil {
		edges = append(edges, contact.EdgeCampaign)
	}
	if m.scheduled_sends != nil {
		edges = append(edges, contact.EdgeScheduledSends)
	}
	if m.messages != nil {
		edges = append(edges, contact.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case contact.EdgeScheduledSends:
		ids := make([]ent.Value, 0, len(m.scheduled_sends))
		for id := range m.scheduled_sends {
			ids = append(ids, id)
		}
		return ids
	case contact.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedscheduled_sends != nil {
		edges = append(edges, contact.EdgeScheduledSends)
	}
	if m.removedmessages != nil {
		edges = append(edges, contact.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contact.EdgeScheduledSends:
		ids := make([]ent.Value, 0, len(m.removedscheduled_sends))
		for id := range m.removedscheduled_sends {
			ids = append(ids, id)
		}
		return ids
	case contact.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcampaign {
		edges = append(edges, contact.EdgeCampaign)
	}
	if m.clearedscheduled_sends {
		edges = append(edges, contact.EdgeScheduledSends)
	}
	if m.clearedmessages {
		edges = append(edges, contact.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	switch name {
	case contact.EdgeCampaign:
		return m.clearedcampaign
	case contact.EdgeScheduledSends:
		return m.clearedscheduled_sends
	case contact.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	switch name {
	case contact.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	switch name {
	case contact.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case contact.EdgeScheduledSends:
		m.ResetScheduledSends()
		return nil
	case contact.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Contact edge %s", name)
}

// MessageTemplateMutation represents an operation that mutates the MessageTemplate nodes in the graph.
type MessageTemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence_number    *int
	addsequence_number *int
	body               *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	campaign           *int
	clearedcampaign    bool
	done               bool
	oldValue           func(context.Context) (*MessageTemplate, error)
	predicates         []predicate.MessageTemplate
}

var _ ent.Mutation = (*MessageTemplateMutation)(nil)

// messagetemplateOption allows management of the mutation configuration using functional options.
type messagetemplateOption func(*MessageTemplateMutation)

// newMessageTemplateMutation creates new mutation for the MessageTemplate entity.
func newMessageTemplateMutation(c config, op Op, opts ...messagetemplateOption) *MessageTemplateMutation {
	m := &MessageTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageTemplateID sets the ID field of the mutation.
func withMessageTemplateID(id int) messagetemplateOption {
	return func(m *MessageTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageTemplate
		)
		m.oldValue = func(ctx context.Context) (*MessageTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageTemplate sets the old MessageTemplate of the mutation.
func withMessageTemplate(node *MessageTemplate) messagetemplateOption {
	return func(m *MessageTemplateMutation) {
		m.oldValue = func(context.Context) (*MessageTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageTemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageTemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *MessageTemplateMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *MessageTemplateMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *MessageTemplateMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *MessageTemplateMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *MessageTemplateMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *MessageTemplateMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *MessageTemplateMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *MessageTemplateMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetBody sets the "body" field.
func (m *MessageTemplateMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageTemplateMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageTemplateMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageTemplate entity.
// If the MessageTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *MessageTemplateMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[messagetemplate.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *MessageTemplateMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *MessageTemplateMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *MessageTemplateMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// Where appends a list predicates to the MessageTemplateMutation builder.
func (m *MessageTemplateMutation) Where(ps ...predicate.MessageTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageTemplate).
func (m *MessageTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageTemplateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.campaign != nil {
		fields = append(fields, messagetemplate.FieldCampaignID)
	}
	if m.sequence_number != nil {
		fields = append(fields, messagetemplate.FieldSequenceNumber)
	}
	if m.body != nil {
		fields = append(fields, messagetemplate.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, messagetemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagetemplate.FieldCampaignID:
		return m.CampaignID()
	case messagetemplate.FieldSequenceNumber:
		return m.SequenceNumber()
	case messagetemplate.FieldBody:
		return m.Body()
	case messagetemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagetemplate.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case messagetemplate.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case messagetemplate.FieldBody:
		return m.OldBody(ctx)
	case messagetemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagetemplate.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case messagetemplate.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case messagetemplate.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case messagetemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, messagetemplate.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case messagetemplate.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case messagetemplate.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageTemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageTemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MessageTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageTemplateMutation) ResetField(name string) error {
	switch name {
	case messagetemplate.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case messagetemplate.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case messagetemplate.FieldBody:
		m.ResetBody()
		return nil
	case messagetemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.campaign != nil {
		edges = append(edges, messagetemplate.EdgeCampaign)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagetemplate.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcampaign {
		edges = append(edges, messagetemplate.EdgeCampaign)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case messagetemplate.EdgeCampaign:
		return m.clearedcampaign
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageTemplateMutation) ClearEdge(name string) error {
	switch name {
	case messagetemplate.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageTemplateMutation) ResetEdge(name string) error {
	switch name {
	case messagetemplate.EdgeCampaign:
		m.ResetCampaign()
		return nil
	}
	return fmt.Errorf("unknown MessageTemplate edge %s", name)
}

// SMSMessageMutation represents an operation that mutates the SMSMessage nodes in the graph.
type SMSMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	direction          *smsmessage.Direction
	sequence_number    *int
	addsequence_number *int
	message_body       *string
	status             *smsmessage.Status
	twilio_sid         *string
	error_message      *string
	error_code         *int
	adderror_code      *int
	sent_at            *time.Time
	delivered_at       *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	campaign           *int
	clearedcampaign    bool
	contact            *int
	clearedcontact     bool
	done               bool
	oldValue           func(context.Context) (*SMSMessage, error)
	predicates         []predicate.SMSMessage
}

var _ ent.Mutation = (*SMSMessageMutation)(nil)

// smsmessageOption allows management of the mutation configuration using functional options.
type smsmessageOption func(*SMSMessageMutation)

// newSMSMessageMutation creates new mutation for the SMSMessage entity.
func newSMSMessageMutation(c config, op Op, opts ...smsmessageOption) *SMSMessageMutation {
	m := &SMSMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeSMSMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSMSMessageID sets the ID field of the mutation.
func withSMSMessageID(id int) smsmessageOption {
	return func(m *SMSMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *SMSMessage
		)
		m.oldValue = func(ctx context.Context) (*SMSMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SMSMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSMSMessage sets the old SMSMessage of the mutation.
func withSMSMessage(node *SMSMessage) smsmessageOption {
	return func(m *SMSMessageMutation) {
		m.oldValue = func(context.Context) (*SMSMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SMSMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SMSMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SMSMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SMSMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SMSMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *SMSMessageMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *SMSMessageMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *SMSMessageMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetContactID sets the "contact_id" field.
func (m *SMSMessageMutation) SetContactID(i int) {
	m.contact = &i
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *SMSMessageMutation) ContactID() (r int, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldContactID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *SMSMessageMutation) ClearContactID() {
	m.contact = nil
	m.clearedFields[smsmessage.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *SMSMessageMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *SMSMessageMutation) ResetContactID() {
	m.contact = nil
	delete(m.clearedFields, smsmessage.FieldContactID)
}

// SetDirection sets the "direction" field.
func (m *SMSMessageMutation) SetDirection(s smsmessage.Direction) {
	m.direction = &s
}

// Direction returns the value of the "direction" field in the mutation.
func (m *SMSMessageMutation) Direction() (r smsmessage.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldDirection(ctx context.Context) (v smsmessage.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *SMSMessageMutation) ResetDirection() {
	m.direction = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *SMSMessageMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *SMSMessageMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldSequenceNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *SMSMessageMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *SMSMessageMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearSequenceNumber clears the value of the "sequence_number" field.
func (m *SMSMessageMutation) ClearSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
	m.clearedFields[smsmessage.FieldSequenceNumber] = struct{}{}
}

// SequenceNumberCleared returns if the "sequence_number" field was cleared in this mutation.
func (m *SMSMessageMutation) SequenceNumberCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldSequenceNumber]
	return ok
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *SMSMessageMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
	delete(m.clearedFields, smsmessage.FieldSequenceNumber)
}

// SetMessageBody sets the "message_body" field.
func (m *SMSMessageMutation) SetMessageBody(s string) {
	m.message_body = &s
}

// MessageBody returns the value of the "message_body" field in the mutation.
func (m *SMSMessageMutation) MessageBody() (r string, exists bool) {
	v := m.message_body
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageBody returns the old "message_body" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldMessageBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageBody: %w", err)
	}
	return oldValue.MessageBody, nil
}

// ResetMessageBody resets all changes to the "message_body" field.
func (m *SMSMessageMutation) ResetMessageBody() {
	m.message_body = nil
}

// SetStatus sets the "status" field.
func (m *SMSMessageMutation) SetStatus(s smsmessage.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SMSMessageMutation) Status() (r smsmessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldStatus(ctx context.Context) (v smsmessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SMSMessageMutation) ResetStatus() {
	m.status = nil
}

// SetTwilioSid sets the "twilio_sid" field.
func (m *SMSMessageMutation) SetTwilioSid(s string) {
	m.twilio_sid = &s
}

// TwilioSid returns the value of the "twilio_sid" field in the mutation.
func (m *SMSMessageMutation) TwilioSid() (r string, exists bool) {
	v := m.twilio_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldTwilioSid returns the old "twilio_sid" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldTwilioSid(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwilioSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwilioSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwilioSid: %w", err)
	}
	return oldValue.TwilioSid, nil
}

// ClearTwilioSid clears the value of the "twilio_sid" field.
func (m *SMSMessageMutation) ClearTwilioSid() {
	m.twilio_sid = nil
	m.clearedFields[smsmessage.FieldTwilioSid] = struct{}{}
}

// TwilioSidCleared returns if the "twilio_sid" field was cleared in this mutation.
func (m *SMSMessageMutation) TwilioSidCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldTwilioSid]
	return ok
}

// ResetTwilioSid resets all changes to the "twilio_sid" field.
func (m *SMSMessageMutation) ResetTwilioSid() {
	m.twilio_sid = nil
	delete(m.clearedFields, smsmessage.FieldTwilioSid)
}

// SetErrorMessage sets the "error_message" field.
func (m *SMSMessageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SMSMessageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SMSMessageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[smsmessage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SMSMessageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SMSMessageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, smsmessage.FieldErrorMessage)
}

// SetErrorCode sets the "error_code" field.
func (m *SMSMessageMutation) SetErrorCode(i int) {
	m.error_code = &i
	m.adderror_code = nil
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *SMSMessageMutation) ErrorCode() (r int, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldErrorCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// AddErrorCode adds i to the "error_code" field.
func (m *SMSMessageMutation) AddErrorCode(i int) {
	if m.adderror_code != nil {
		*m.adderror_code += i
	} else {
		m.adderror_code = &i
	}
}

// AddedErrorCode returns the value that was added to the "error_code" field in this mutation.
func (m *SMSMessageMutation) AddedErrorCode() (r int, exists bool) {
	v := m.adderror_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *SMSMessageMutation) ClearErrorCode() {
	m.error_code = nil
	m.adderror_code = nil
	m.clearedFields[smsmessage.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *SMSMessageMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *SMSMessageMutation) ResetErrorCode() {
	m.error_code = nil
	m.adderror_code = nil
	delete(m.clearedFields, smsmessage.FieldErrorCode)
}

// SetSentAt sets the "sent_at" field.
func (m *SMSMessageMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *SMSMessageMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *SMSMessageMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[smsmessage.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *SMSMessageMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *SMSMessageMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, smsmessage.FieldSentAt)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *SMSMessageMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *SMSMessageMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *SMSMessageMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[smsmessage.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *SMSMessageMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[smsmessage.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *SMSMessageMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, smsmessage.FieldDeliveredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SMSMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SMSMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SMSMessage entity.
// If the SMSMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SMSMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SMSMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *SMSMessageMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[smsmessage.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *SMSMessageMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *SMSMessageMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *SMSMessageMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// ClearContact clears the "contact" edge to the Contact entity.
func (m *SMSMessageMutation) ClearContact() {
	m.clearedcontact = true
	m.clearedFields[smsmessage.FieldContactID] = struct{}{}
}

// ContactCleared reports if the "contact" edge to the Contact entity was cleared.
func (m *SMSMessageMutation) ContactCleared() bool {
	return m.ContactIDCleared() || m.clearedcontact
}

// ContactIDs returns the "contact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContactID instead. It exists only for internal usage by the builders.
func (m *SMSMessageMutation) ContactIDs() (ids []int) {
	if id := m.contact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContact resets all changes to the "contact" edge.
func (m *SMSMessageMutation) ResetContact() {
	m.contact = nil
	m.clearedcontact = false
}

// Where appends a list predicates to the SMSMessageMutation builder.
func (m *SMSMessageMutation) Where(ps ...predicate.SMSMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SMSMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SMSMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SMSMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SMSMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SMSMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SMSMessage).
func (m *SMSMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SMSMessageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.campaign != nil {
		fields = append(fields, smsmessage.FieldCampaignID)
	}
	if m.contact != nil {
		fields = append(fields, smsmessage.FieldContactID)
	}
	if m.direction != nil {
		fields = append(fields, smsmessage.FieldDirection)
	}
	if m.sequence_number != nil {
		fields = append(fields, smsmessage.FieldSequenceNumber)
	}
	if m.message_body != nil {
		fields = append(fields, smsmessage.FieldMessageBody)
	}
	if m.status != nil {
		fields = append(fields, smsmessage.FieldStatus)
	}
	if m.twilio_sid != nil {
		fields = append(fields, smsmessage.FieldTwilioSid)
	}
	if m.error_message != nil {
		fields = append(fields, smsmessage.FieldErrorMessage)
	}
	if m.error_code != nil {
		fields = append(fields, smsmessage.FieldErrorCode)
	}
	if m.sent_at != nil {
		fields = append(fields, smsmessage.FieldSentAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, smsmessage.FieldDeliveredAt)
	}
	if m.created_at != nil {
		fields = append(fields, smsmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SMSMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case smsmessage.FieldCampaignID:
		return m.CampaignID()
	case smsmessage.FieldContactID:
		return m.ContactID()
	case smsmessage.FieldDirection:
		return m.Direction()
	case smsmessage.FieldSequenceNumber:
		return m.SequenceNumber()
	case smsmessage.FieldMessageBody:
		return m.MessageBody()
	case smsmessage.FieldStatus:
		return m.Status()
	case smsmessage.FieldTwilioSid:
		return m.TwilioSid()
	case smsmessage.FieldErrorMessage:
		return m.ErrorMessage()
	case smsmessage.FieldErrorCode:
		return m.ErrorCode()
	case smsmessage.FieldSentAt:
		return m.SentAt()
	case smsmessage.FieldDeliveredAt:
		return m.DeliveredAt()
	case smsmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SMSMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case smsmessage.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case smsmessage.FieldContactID:
		return m.OldContactID(ctx)
	case smsmessage.FieldDirection:
		return m.OldDirection(ctx)
	case smsmessage.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case smsmessage.FieldMessageBody:
		return m.OldMessageBody(ctx)
	case smsmessage.FieldStatus:
		return m.OldStatus(ctx)
	case smsmessage.FieldTwilioSid:
		return m.OldTwilioSid(ctx)
	case smsmessage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case smsmessage.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case smsmessage.FieldSentAt:
		return m.OldSentAt(ctx)
	case smsmessage.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case smsmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SMSMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SMSMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case smsmessage.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case smsmessage.FieldContactID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case smsmessage.FieldDirection:
		v, ok := value.(smsmessage.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case smsmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case smsmessage.FieldMessageBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageBody(v)
		return nil
	case smsmessage.FieldStatus:
		v, ok := value.(smsmessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case smsmessage.FieldTwilioSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwilioSid(v)
		return nil
	case smsmessage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case smsmessage.FieldErrorCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case smsmessage.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case smsmessage.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case smsmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SMSMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SMSMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, smsmessage.FieldSequenceNumber)
	}
	if m.adderror_code != nil {
		fields = append(fields, smsmessage.FieldErrorCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SMSMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case smsmessage.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case smsmessage.FieldErrorCode:
		return m.AddedErrorCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SMSMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case smsmessage.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case smsmessage.FieldErrorCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCode(v)
		return nil
	}
	return fmt.Errorf("unknown SMSMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SMSMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(smsmessage.FieldContactID) {
		fields = append(fields, smsmessage.FieldContactID)
	}
	if m.FieldCleared(smsmessage.FieldSequenceNumber) {
		fields = append(fields, smsmessage.FieldSequenceNumber)
	}
	if m.FieldCleared(smsmessage.FieldTwilioSid) {
		fields = append(fields, smsmessage.FieldTwilioSid)
	}
	if m.FieldCleared(smsmessage.FieldErrorMessage) {
		fields = append(fields, smsmessage.FieldErrorMessage)
	}
	if m.FieldCleared(smsmessage.FieldErrorCode) {
		fields = append(fields, smsmessage.FieldErrorCode)
	}
	if m.FieldCleared(smsmessage.FieldSentAt) {
		fields = append(fields, smsmessage.FieldSentAt)
	}
	if m.FieldCleared(smsmessage.FieldDeliveredAt) {
		fields = append(fields, smsmessage.FieldDeliveredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SMSMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SMSMessageMutation) ClearField(name string) error {
	switch name {
	case smsmessage.FieldContactID:
		m.ClearContactID()
		return nil
	case smsmessage.FieldSequenceNumber:
		m.ClearSequenceNumber()
		return nil
	case smsmessage.FieldTwilioSid:
		m.ClearTwilioSid()
		return nil
	case smsmessage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case smsmessage.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case smsmessage.FieldSentAt:
		m.ClearSentAt()
		return nil
	case smsmessage.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown SMSMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SMSMessageMutation) ResetField(name string) error {
	switch name {
	case smsmessage.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case smsmessage.FieldContactID:
		m.ResetContactID()
		return nil
	case smsmessage.FieldDirection:
		m.ResetDirection()
		return nil
	case smsmessage.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case smsmessage.FieldMessageBody:
		m.ResetMessageBody()
		return nil
	case smsmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case smsmessage.FieldTwilioSid:
		m.ResetTwilioSid()
		return nil
	case smsmessage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case smsmessage.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case smsmessage.FieldSentAt:
		m.ResetSentAt()
		return nil
	case smsmessage.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case smsmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SMSMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SMSMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.campaign != nil {
		edges = append(edges, smsmessage.EdgeCampaign)
	}
	if m.contact != nil {
		edges = append(edges, smsmessage.EdgeContact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SMSMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case smsmessage.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case smsmessage.EdgeContact:
		if id := m.contact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SMSMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SMSMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SMSMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcampaign {
		edges = append(edges, smsmessage.EdgeCampaign)
	}
	if m.clearedcontact {
		edges = append(edges, smsmessage.EdgeContact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SMSMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case smsmessage.EdgeCampaign:
		return m.clearedcampaign
	case smsmessage.EdgeContact:
		return m.clearedcontact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SMSMessageMutation) ClearEdge(name string) error {
	switch name {
	case smsmessage.EdgeCampaign:
		m.ClearCampaign()
		return nil
	case smsmessage.EdgeContact:
		m.ClearContact()
		return nil
	}
	return fmt.Errorf("unknown SMSMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SMSMessageMutation) ResetEdge(name string) error {
	switch name {
	case smsmessage.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case smsmessage.EdgeContact:
		m.ResetContact()
		return nil
	}
	return fmt.Errorf("unknown SMSMessage edge %s", name)
}

// ScheduledSendMutation represents an operation that mutates the ScheduledSend nodes in the graph.
type ScheduledSendMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence_number    *int
	addsequence_number *int
	scheduled_for      *time.Time
	status             *scheduledsend.Status
	error_message      *string
	processed_at       *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	campaign           *int
	clearedcampaign    bool
	contact            *int
	clearedcontact     bool
	done               bool
	oldValue           func(context.Context) (*ScheduledSend, error)
	predicates         []predicate.ScheduledSend
}

var _ ent.Mutation = (*ScheduledSendMutation)(nil)

// scheduledsendOption allows management of the mutation configuration using functional options.
type scheduledsendOption func(*ScheduledSendMutation)

// newScheduledSendMutation creates new mutation for the ScheduledSend entity.
func newScheduledSendMutation(c config, op Op, opts ...scheduledsendOption) *ScheduledSendMutation {
	m := &ScheduledSendMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledSend,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledSendID sets the ID field of the mutation.
func withScheduledSendID(id int) scheduledsendOption {
	return func(m *ScheduledSendMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledSend
		)
		m.oldValue = func(ctx context.Context) (*ScheduledSend, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledSend.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledSend sets the old ScheduledSend of the mutation.
func withScheduledSend(node *ScheduledSend) scheduledsendOption {
	return func(m *ScheduledSendMutation) {
		m.oldValue = func(context.Context) (*ScheduledSend, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledSendMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledSendMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledSendMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledSendMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledSend.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *ScheduledSendMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *ScheduledSendMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *ScheduledSendMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetContactID sets the "contact_id" field.
func (m *ScheduledSendMutation) SetContactID(i int) {
	m.contact = &i
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *ScheduledSendMutation) ContactID() (r int, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldContactID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *ScheduledSendMutation) ResetContactID() {
	m.contact = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *ScheduledSendMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *ScheduledSendMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *ScheduledSendMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *ScheduledSendMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *ScheduledSendMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *ScheduledSendMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *ScheduledSendMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldScheduledFor(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *ScheduledSendMutation) ResetScheduledFor() {
	m.scheduled_for = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledSendMutation) SetStatus(s scheduledsend.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledSendMutation) Status() (r scheduledsend.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldStatus(ctx context.Context) (v scheduledsend.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledSendMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ScheduledSendMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScheduledSendMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScheduledSendMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scheduledsend.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScheduledSendMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scheduledsend.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScheduledSendMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scheduledsend.FieldErrorMessage)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ScheduledSendMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ScheduledSendMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ScheduledSendMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[scheduledsend.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ScheduledSendMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[scheduledsend.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ScheduledSendMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, scheduledsend.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledSendMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledSendMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledSendMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduledSendMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduledSendMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduledSend entity.
// If the ScheduledSend object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledSendMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduledSendMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *ScheduledSendMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[scheduledsend.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *ScheduledSendMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *ScheduledSendMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *ScheduledSendMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// ClearContact clears the "contact" edge to the Contact entity.
func (m *ScheduledSendMutation) ClearContact() {
	m.clearedcontact = true
	m.clearedFields[scheduledsend.FieldContactID] = struct{}{}
}

// ContactCleared reports if the "contact" edge to the Contact entity was cleared.
func (m *ScheduledSendMutation) ContactCleared() bool {
	return m.clearedcontact
}

// ContactIDs returns the "contact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContactID instead. It exists only for internal usage by the builders.
func (m *ScheduledSendMutation) ContactIDs() (ids []int) {
	if id := m.contact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContact resets all changes to the "contact" edge.
func (m *ScheduledSendMutation) ResetContact() {
	m.contact = nil
	m.clearedcontact = false
}

// Where appends a list predicates to the ScheduledSendMutation builder.
func (m *ScheduledSendMutation) Where(ps ...predicate.ScheduledSend) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledSendMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledSendMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledSend, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledSendMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledSendMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledSend).
func (m *ScheduledSendMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledSendMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.campaign != nil {
		fields = append(fields, scheduledsend.FieldCampaignID)
	}
	if m.contact != nil {
		fields = append(fields, scheduledsend.FieldContactID)
	}
	if m.sequence_number != nil {
		fields = append(fields, scheduledsend.FieldSequenceNumber)
	}
	if m.scheduled_for != nil {
		fields = append(fields, scheduledsend.FieldScheduledFor)
	}
	if m.status != nil {
		fields = append(fields, scheduledsend.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, scheduledsend.FieldErrorMessage)
	}
	if m.processed_at != nil {
		fields = append(fields, scheduledsend.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledsend.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduledsend.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledSendMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledsend.FieldCampaignID:
		return m.CampaignID()
	case scheduledsend.FieldContactID:
		return m.ContactID()
	case scheduledsend.FieldSequenceNumber:
		return m.SequenceNumber()
	case scheduledsend.FieldScheduledFor:
		return m.ScheduledFor()
	case scheduledsend.FieldStatus:
		return m.Status()
	case scheduledsend.FieldErrorMessage:
		return m.ErrorMessage()
	case scheduledsend.FieldProcessedAt:
		return m.ProcessedAt()
	case scheduledsend.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledsend.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledSendMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledsend.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case scheduledsend.FieldContactID:
		return m.OldContactID(ctx)
	case scheduledsend.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case scheduledsend.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case scheduledsend.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledsend.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scheduledsend.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case scheduledsend.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledsend.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledSend field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledSendMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledsend.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case scheduledsend.FieldContactID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case scheduledsend.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case scheduledsend.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case scheduledsend.FieldStatus:
		v, ok := value.(scheduledsend.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledsend.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scheduledsend.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case scheduledsend.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledsend.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledSend field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledSendMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, scheduledsend.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledSendMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledsend.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledSendMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledsend.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledSend numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledSendMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledsend.FieldErrorMessage) {
		fields = append(fields, scheduledsend.FieldErrorMessage)
	}
	if m.FieldCleared(scheduledsend.FieldProcessedAt) {
		fields = append(fields, scheduledsend.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledSendMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledSendMutation) ClearField(name string) error {
	switch name {
	case scheduledsend.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case scheduledsend.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledSend nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledSendMutation) ResetField(name string) error {
	switch name {
	case scheduledsend.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case scheduledsend.FieldContactID:
		m.ResetContactID()
		return nil
	case scheduledsend.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case scheduledsend.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case scheduledsend.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledsend.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scheduledsend.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case scheduledsend.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledsend.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledSend field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledSendMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.campaign != nil {
		edges = append(edges, scheduledsend.EdgeCampaign)
	}
	if m.contact != nil {
		edges = append(edges, scheduledsend.EdgeContact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledSendMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledsend.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case scheduledsend.EdgeContact:
		if id := m.contact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledSendMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledSendMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledSendMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcampaign {
		edges = append(edges, scheduledsend.EdgeCampaign)
	}
	if m.clearedcontact {
		edges = append(edges, scheduledsend.EdgeContact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledSendMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledsend.EdgeCampaign:
		return m.clearedcampaign
	case scheduledsend.EdgeContact:
		return m.clearedcontact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledSendMutation) ClearEdge(name string) error {
	switch name {
	case scheduledsend.EdgeCampaign:
		m.ClearCampaign()
		return nil
	case scheduledsend.EdgeContact:
		m.ClearContact()
		return nil
	}
	return fmt.Errorf("unknown ScheduledSend unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledSendMutation) ResetEdge(name string) error {
	switch name {
	case scheduledsend.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case scheduledsend.EdgeContact:
		m.ResetContact()
		return nil
	}
	return fmt.Errorf("unknown ScheduledSend edge %s", name)
}

// TwilioAccountMutation represents an operation that mutates the TwilioAccount nodes in the graph.
type TwilioAccountMutation struct {
	config
	op            Op
	typ           string
	id            *int
	account_sid   *string
	auth_token    *string
	phone_number  *string
	is_verified   *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*TwilioAccount, error)
	predicates    []predicate.TwilioAccount
}

var _ ent.Mutation = (*TwilioAccountMutation)(nil)

// twilioaccountOption allows management of the mutation configuration using functional options.
type twilioaccountOption func(*TwilioAccountMutation)

// newTwilioAccountMutation creates new mutation for the TwilioAccount entity.
func newTwilioAccountMutation(c config, op Op, opts ...twilioaccountOption) *TwilioAccountMutation {
	m := &TwilioAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeTwilioAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTwilioAccountID sets the ID field of the mutation.
func withTwilioAccountID(id int) twilioaccountOption {
	return func(m *TwilioAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *TwilioAccount
		)
		m.oldValue = func(ctx context.Context) (*TwilioAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TwilioAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTwilioAccount sets the old TwilioAccount of the mutation.
func withTwilioAccount(node *TwilioAccount) twilioaccountOption {
	return func(m *TwilioAccountMutation) {
		m.oldValue = func(context.Context) (*TwilioAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TwilioAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TwilioAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TwilioAccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TwilioAccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TwilioAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TwilioAccountMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TwilioAccountMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TwilioAccountMutation) ResetUserID() {
	m.user = nil
}

// SetAccountSid sets the "account_sid" field.
func (m *TwilioAccountMutation) SetAccountSid(s string) {
	m.account_sid = &s
}

// AccountSid returns the value of the "account_sid" field in the mutation.
func (m *TwilioAccountMutation) AccountSid() (r string, exists bool) {
	v := m.account_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountSid returns the old "account_sid" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldAccountSid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountSid: %w", err)
	}
	return oldValue.AccountSid, nil
}

// ResetAccountSid resets all changes to the "account_sid" field.
func (m *TwilioAccountMutation) ResetAccountSid() {
	m.account_sid = nil
}

// SetAuthToken sets the "auth_token" field.
func (m *TwilioAccountMutation) SetAuthToken(s string) {
	m.auth_token = &s
}

// AuthToken returns the value of the "auth_token" field in the mutation.
func (m *TwilioAccountMutation) AuthToken() (r string, exists bool) {
	v := m.auth_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthToken returns the old "auth_token" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldAuthToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthToken: %w", err)
	}
	return oldValue.AuthToken, nil
}

// ResetAuthToken resets all changes to the "auth_token" field.
func (m *TwilioAccountMutation) ResetAuthToken() {
	m.auth_token = nil
}

// SetPhoneNumber sets the "phone_number" field.
func (m *TwilioAccountMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *TwilioAccountMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldPhoneNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *TwilioAccountMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[twilioaccount.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *TwilioAccountMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[twilioaccount.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *TwilioAccountMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, twilioaccount.FieldPhoneNumber)
}

// SetIsVerified sets the "is_verified" field.
func (m *TwilioAccountMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *TwilioAccountMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *TwilioAccountMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TwilioAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TwilioAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TwilioAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TwilioAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TwilioAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TwilioAccount entity.
// If the TwilioAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TwilioAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TwilioAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *TwilioAccountMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[twilioaccount.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TwilioAccountMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TwilioAccountMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TwilioAccountMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the TwilioAccountMutation builder.
func (m *TwilioAccountMutation) Where(ps ...predicate.TwilioAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TwilioAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TwilioAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TwilioAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TwilioAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TwilioAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TwilioAccount).
func (m *TwilioAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TwilioAccountMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, twilioaccount.FieldUserID)
	}
	if m.account_sid != nil {
		fields = append(fields, twilioaccount.FieldAccountSid)
	}
	if m.auth_token != nil {
		fields = append(fields, twilioaccount.FieldAuthToken)
	}
	if m.phone_number != nil {
		fields = append(fields, twilioaccount.FieldPhoneNumber)
	}
	if m.is_verified != nil {
		fields = append(fields, twilioaccount.FieldIsVerified)
	}
	if m.created_at != nil {
		fields = append(fields, twilioaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, twilioaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TwilioAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case twilioaccount.FieldUserID:
		return m.UserID()
	case twilioaccount.FieldAccountSid:
		return m.AccountSid()
	case twilioaccount.FieldAuthToken:
		return m.AuthToken()
	case twilioaccount.FieldPhoneNumber:
		return m.PhoneNumber()
	case twilioaccount.FieldIsVerified:
		return m.IsVerified()
	case twilioaccount.FieldCreatedAt:
		return m.CreatedAt()
	case twilioaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TwilioAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case twilioaccount.FieldUserID:
		return m.OldUserID(ctx)
	case twilioaccount.FieldAccountSid:
		return m.OldAccountSid(ctx)
	case twilioaccount.FieldAuthToken:
		return m.OldAuthToken(ctx)
	case twilioaccount.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case twilioaccount.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case twilioaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case twilioaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TwilioAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TwilioAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case twilioaccount.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case twilioaccount.FieldAccountSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountSid(v)
		return nil
	case twilioaccount.FieldAuthToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthToken(v)
		return nil
	case twilioaccount.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case twilioaccount.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case twilioaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case twilioaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TwilioAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TwilioAccountMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TwilioAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TwilioAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TwilioAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TwilioAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(twilioaccount.FieldPhoneNumber) {
		fields = append(fields, twilioaccount.FieldPhoneNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TwilioAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TwilioAccountMutation) ClearField(name string) error {
	switch name {
	case twilioaccount.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	}
	return fmt.Errorf("unknown TwilioAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TwilioAccountMutation) ResetField(name string) error {
	switch name {
	case twilioaccount.FieldUserID:
		m.ResetUserID()
		return nil
	case twilioaccount.FieldAccountSid:
		m.ResetAccountSid()
		return nil
	case twilioaccount.FieldAuthToken:
		m.ResetAuthToken()
		return nil
	case twilioaccount.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case twilioaccount.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case twilioaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case twilioaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TwilioAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TwilioAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, twilioaccount.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TwilioAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case twilioaccount.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TwilioAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TwilioAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TwilioAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, twilioaccount.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TwilioAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case twilioaccount.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TwilioAccountMutation) ClearEdge(name string) error {
	switch name {
	case twilioaccount.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown TwilioAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TwilioAccountMutation) ResetEdge(name string) error {
	switch name {
	case twilioaccount.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown TwilioAccount edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	email                   *string
	name                    *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	campaigns               map[int]struct{}
	removedcampaigns        map[int]struct{}
	clearedcampaigns        bool
	billing                 map[int]struct{}
	removedbilling          map[int]struct{}
	clearedbilling          bool
	a2p_registration        map[int]struct{}
	removeda2p_registration map[int]struct{}
	cleareda2p_registration bool
	twilio_account          map[int]struct{}
	removedtwilio_account   map[int]struct{}
	clearedtwilio_account   bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *UserMutation) AddCampaignIDs(ids ...int) {
	if m.campaigns == nil {
		m.campaigns = make(map[int]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *UserMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *UserMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *UserMutation) RemoveCampaignIDs(ids ...int) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *UserMutation) RemovedCampaignsIDs() (ids []int) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *UserMutation) CampaignsIDs() (ids []int) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *UserMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// AddBillingIDs adds the "billing" edge to the UserBilling entity by ids.
func (m *UserMutation) AddBillingIDs(ids ...int) {
	if m.billing == nil {
		m.billing = make(map[int]struct{})
	}
	for i := range ids {
		m.billing[ids[i]] = struct{}{}
	}
}

// ClearBilling clears the "billing" edge to the UserBilling entity.
func (m *UserMutation) ClearBilling() {
	m.clearedbilling = true
}

// BillingCleared reports if the "billing" edge to the UserBilling entity was cleared.
func (m *UserMutation) BillingCleared() bool {
	return m.clearedbilling
}

// RemoveBillingIDs removes the "billing" edge to the UserBilling entity by IDs.
func (m *UserMutation) RemoveBillingIDs(ids ...int) {
	if m.removedbilling == nil {
		m.removedbilling = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.billing, ids[i])
		m.removedbilling[ids[i]] = struct{}{}
	}
}

// RemovedBilling returns the removed IDs of the "billing" edge to the UserBilling entity.
func (m *UserMutation) RemovedBillingIDs() (ids []int) {
	for id := range m.removedbilling {
		ids = append(ids, id)
	}
	return
}

// BillingIDs returns the "billing" edge IDs in the mutation.
func (m *UserMutation) BillingIDs() (ids []int) {
	for id := range m.billing {
		ids = append(ids, id)
	}
	return
}

// ResetBilling resets all changes to the "billing" edge.
func (m *UserMutation) ResetBilling() {
	m.billing = nil
	m.clearedbilling = false
	m.removedbilling = nil
}

// AddA2pRegistrationIDs adds the "a2p_registration" edge to the A2PRegistration entity by ids.
func (m *UserMutation) AddA2pRegistrationIDs(ids ...int) {
	if m.a2p_registration == nil {
		m.a2p_registration = make(map[int]struct{})
	}
	for i := range ids {
		m.a2p_registration[ids[i]] = struct{}{}
	}
}

// ClearA2pRegistration clears the "a2p_registration" edge to the A2PRegistration entity.
func (m *UserMutation) ClearA2pRegistration() {
	m.cleareda2p_registration = true
}

// A2pRegistrationCleared reports if the "a2p_registration" edge to the A2PRegistration entity was cleared.
func (m *UserMutation) A2pRegistrationCleared() bool {
	return m.cleareda2p_registration
}

// RemoveA2pRegistrationIDs removes the "a2p_registration" edge to the A2PRegistration entity by IDs.
func (m *UserMutation) RemoveA2pRegistrationIDs(ids ...int) {
	if m.removeda2p_registration == nil {
		m.removeda2p_registration = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.a2p_registration, ids[i])
		m.removeda2p_registration[ids[i]] = struct{}{}
	}
}

// RemovedA2pRegistration returns the removed IDs of the "a2p_registration" edge to the A2PRegistration entity.
func (m *UserMutation) RemovedA2pRegistrationIDs() (ids []int) {
	for id := range m.removeda2p_registration {
		ids = append(ids, id)
	}
	return
}

// A2pRegistrationIDs returns the "a2p_registration" edge IDs in the mutation.
func (m *UserMutation) A2pRegistrationIDs() (ids []int) {
	for id := range m.a2p_registration {
		ids = append(ids, id)
	}
	return
}

// ResetA2pRegistration resets all changes to the "a2p_registration" edge.
func (m *UserMutation) ResetA2pRegistration() {
	m.a2p_registration = nil
	m.cleareda2p_registration = false
	m.removeda2p_registration = nil
}

// AddTwilioAccountIDs adds the "twilio_account" edge to the TwilioAccount entity by ids.
func (m *UserMutation) AddTwilioAccountIDs(ids ...int) {
	if m.twilio_account == nil {
		m.twilio_account = make(map[int]struct{})
	}
	for i := range ids {
		m.twilio_account[ids[i]] = struct{}{}
	}
}

// ClearTwilioAccount clears the "twilio_account" edge to the TwilioAccount entity.
func (m *UserMutation) ClearTwilioAccount() {
	m.clearedtwilio_account = true
}

// TwilioAccountCleared reports if the "twilio_account" edge to the TwilioAccount entity was cleared.
func (m *UserMutation) TwilioAccountCleared() bool {
	return m.clearedtwilio_account
}

// RemoveTwilioAccountIDs removes the "twilio_account" edge to the TwilioAccount entity by IDs.
func (m *UserMutation) RemoveTwilioAccountIDs(ids ...int) {
	if m.removedtwilio_account == nil {
		m.removedtwilio_account = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.twilio_account, ids[i])
		m.removedtwilio_account[ids[i]] = struct{}{}
	}
}

// RemovedTwilioAccount returns the removed IDs of the "twilio_account" edge to the TwilioAccount entity.
func (m *UserMutation) RemovedTwilioAccountIDs() (ids []int) {
	for id := range m.removedtwilio_account {
		ids = append(ids, id)
	}
	return
}

// TwilioAccountIDs returns the "twilio_account" edge IDs in the mutation.
func (m *UserMutation) TwilioAccountIDs() (ids []int) {
	for id := range m.twilio_account {
		ids = append(ids, id)
	}
	return
}

// ResetTwilioAccount resets all changes to the "twilio_account" edge.
func (m *UserMutation) ResetTwilioAccount() {
	m.twilio_account = nil
	m.clearedtwilio_account = false
	m.removedtwilio_account = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.campaigns != nil {
		edges = append(edges, user.EdgeCampaigns)
	}
	if m.billing != nil {
		edges = append(edges, user.EdgeBilling)
	}
	if m.a2p_registration != nil {
		edges = append(edges, user.EdgeA2pRegistration)
	}
	if m.twilio_account != nil {
		edges = append(edges, user.EdgeTwilioAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeBilling:
		ids := make([]ent.Value, 0, len(m.billing))
		for id := range m.billing {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeA2pRegistration:
		ids := make([]ent.Value, 0, len(m.a2p_registration))
		for id := range m.a2p_registration {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTwilioAccount:
		ids := make([]ent.Value, 0, len(m.twilio_account))
		for id := range m.twilio_account {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcampaigns != nil {
		edges = append(edges, user.EdgeCampaigns)
	}
	if m.removedbilling != nil {
		edges = append(edges, user.EdgeBilling)
	}
	if m.removeda2p_registration != nil {
		edges = append(edges, user.EdgeA2pRegistration)
	}
	if m.removedtwilio_account != nil {
		edges = append(edges, user.EdgeTwilioAccount)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeBilling:
		ids := make([]ent.Value, 0, len(m.removedbilling))
		for id := range m.removedbilling {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeA2pRegistration:
		ids := make([]ent.Value, 0, len(m.removeda2p_registration))
		for id := range m.removeda2p_registration {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTwilioAccount:
		ids := make([]ent.Value, 0, len(m.removedtwilio_account))
		for id := range m.removedtwilio_account {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcampaigns {
		edges = append(edges, user.EdgeCampaigns)
	}
	if m.clearedbilling {
		edges = append(edges, user.EdgeBilling)
	}
	if m.cleareda2p_registration {
		edges = append(edges, user.EdgeA2pRegistration)
	}
	if m.clearedtwilio_account {
		edges = append(edges, user.EdgeTwilioAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCampaigns:
		return m.clearedcampaigns
	case user.EdgeBilling:
		return m.clearedbilling
	case user.EdgeA2pRegistration:
		return m.cleareda2p_registration
	case user.EdgeTwilioAccount:
		return m.clearedtwilio_account
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	case user.EdgeBilling:
		m.ResetBilling()
		return nil
	case user.EdgeA2pRegistration:
		m.ResetA2pRegistration()
		return nil
	case user.EdgeTwilioAccount:
		m.ResetTwilioAccount()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserBillingMutation represents an operation that mutates the UserBilling nodes in the graph.
type UserBillingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	plan_id                *string
	status                 *userbilling.Status
	credits_remaining      *int
	addcredits_remaining   *int
	stripe_customer_id     *string
	stripe_subscription_id *string
	renew_date             *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	user                   *int
	cleareduser            bool
	done                   bool
	oldValue               func(context.Context) (*UserBilling, error)
	predicates             []predicate.UserBilling
}

var _ ent.Mutation = (*UserBillingMutation)(nil)

// userbillingOption allows management of the mutation configuration using functional options.
type userbillingOption func(*UserBillingMutation)

// newUserBillingMutation creates new mutation for the UserBilling entity.
func newUserBillingMutation(c config, op Op, opts ...userbillingOption) *UserBillingMutation {
	m := &UserBillingMutation{
		config:        c,
		op:            op,
		typ:           TypeUserBilling,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserBillingID sets the ID field of the mutation.
func withUserBillingID(id int) userbillingOption {
	return func(m *UserBillingMutation) {
		var (
			err   error
			once  sync.Once
			value *UserBilling
		)
		m.oldValue = func(ctx context.Context) (*UserBilling, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserBilling.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserBilling sets the old UserBilling of the mutation.
func withUserBilling(node *UserBilling) userbillingOption {
	return func(m *UserBillingMutation) {
		m.oldValue = func(context.Context) (*UserBilling, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserBillingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserBillingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserBillingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserBillingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserBilling.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserBillingMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserBillingMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserBillingMutation) ResetUserID() {
	m.user = nil
}

// SetPlanID sets the "plan_id" field.
func (m *UserBillingMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *UserBillingMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ClearPlanID clears the value of the "plan_id" field.
func (m *UserBillingMutation) ClearPlanID() {
	m.plan_id = nil
	m.clearedFields[userbilling.FieldPlanID] = struct{}{}
}

// PlanIDCleared returns if the "plan_id" field was cleared in this mutation.
func (m *UserBillingMutation) PlanIDCleared() bool {
	_, ok := m.clearedFields[userbilling.FieldPlanID]
	return ok
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *UserBillingMutation) ResetPlanID() {
	m.plan_id = nil
	delete(m.clearedFields, userbilling.FieldPlanID)
}

// SetStatus sets the "status" field.
func (m *UserBillingMutation) SetStatus(u userbilling.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserBillingMutation) Status() (r userbilling.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldStatus(ctx context.Context) (v userbilling.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserBillingMutation) ResetStatus() {
	m.status = nil
}

// SetCreditsRemaining sets the "credits_remaining" field.
func (m *UserBillingMutation) SetCreditsRemaining(i int) {
	m.credits_remaining = &i
	m.addcredits_remaining = nil
}

// CreditsRemaining returns the value of the "credits_remaining" field in the mutation.
func (m *UserBillingMutation) CreditsRemaining() (r int, exists bool) {
	v := m.credits_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsRemaining returns the old "credits_remaining" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldCreditsRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsRemaining: %w", err)
	}
	return oldValue.CreditsRemaining, nil
}

// AddCreditsRemaining adds i to the "credits_remaining" field.
func (m *UserBillingMutation) AddCreditsRemaining(i int) {
	if m.addcredits_remaining != nil {
		*m.addcredits_remaining += i
	} else {
		m.addcredits_remaining = &i
	}
}

// AddedCreditsRemaining returns the value that was added to the "credits_remaining" field in this mutation.
func (m *UserBillingMutation) AddedCreditsRemaining() (r int, exists bool) {
	v := m.addcredits_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsRemaining resets all changes to the "credits_remaining" field.
func (m *UserBillingMutation) ResetCreditsRemaining() {
	m.credits_remaining = nil
	m.addcredits_remaining = nil
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *UserBillingMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *UserBillingMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldStripeCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *UserBillingMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[userbilling.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *UserBillingMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[userbilling.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *UserBillingMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, userbilling.FieldStripeCustomerID)
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (m *UserBillingMutation) SetStripeSubscriptionID(s string) {
	m.stripe_subscription_id = &s
}

// StripeSubscriptionID returns the value of the "stripe_subscription_id" field in the mutation.
func (m *UserBillingMutation) StripeSubscriptionID() (r string, exists bool) {
	v := m.stripe_subscription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSubscriptionID returns the old "stripe_subscription_id" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldStripeSubscriptionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSubscriptionID: %w", err)
	}
	return oldValue.StripeSubscriptionID, nil
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (m *UserBillingMutation) ClearStripeSubscriptionID() {
	m.stripe_subscription_id = nil
	m.clearedFields[userbilling.FieldStripeSubscriptionID] = struct{}{}
}

// StripeSubscriptionIDCleared returns if the "stripe_subscription_id" field was cleared in this mutation.
func (m *UserBillingMutation) StripeSubscriptionIDCleared() bool {
	_, ok := m.clearedFields[userbilling.FieldStripeSubscriptionID]
	return ok
}

// ResetStripeSubscriptionID resets all changes to the "stripe_subscription_id" field.
func (m *UserBillingMutation) ResetStripeSubscriptionID() {
	m.stripe_subscription_id = nil
	delete(m.clearedFields, userbilling.FieldStripeSubscriptionID)
}

// SetRenewDate sets the "renew_date" field.
func (m *UserBillingMutation) SetRenewDate(t time.Time) {
	m.renew_date = &t
}

// RenewDate returns the value of the "renew_date" field in the mutation.
func (m *UserBillingMutation) RenewDate() (r time.Time, exists bool) {
	v := m.renew_date
	if v == nil {
		return
	}
	return *v, true
}

// OldRenewDate returns the old "renew_date" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldRenewDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenewDate: %w", err)
	}
	return oldValue.RenewDate, nil
}

// ClearRenewDate clears the value of the "renew_date" field.
func (m *UserBillingMutation) ClearRenewDate() {
	m.renew_date = nil
	m.clearedFields[userbilling.FieldRenewDate] = struct{}{}
}

// RenewDateCleared returns if the "renew_date" field was cleared in this mutation.
func (m *UserBillingMutation) RenewDateCleared() bool {
	_, ok := m.clearedFields[userbilling.FieldRenewDate]
	return ok
}

// ResetRenewDate resets all changes to the "renew_date" field.
func (m *UserBillingMutation) ResetRenewDate() {
	m.renew_date = nil
	delete(m.clearedFields, userbilling.FieldRenewDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserBillingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserBillingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserBillingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserBillingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserBillingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserBilling entity.
// If the UserBilling object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserBillingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserBillingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserBillingMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[userbilling.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserBillingMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserBillingMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserBillingMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserBillingMutation builder.
func (m *UserBillingMutation) Where(ps ...predicate.UserBilling) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserBillingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserBillingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserBilling, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserBillingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserBillingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserBilling).
func (m *UserBillingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserBillingMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, userbilling.FieldUserID)
	}
	if m.plan_id != nil {
		fields = append(fields, userbilling.FieldPlanID)
	}
	if m.status != nil {
		fields = append(fields, userbilling.FieldStatus)
	}
	if m.credits_remaining != nil {
		fields = append(fields, userbilling.FieldCreditsRemaining)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, userbilling.FieldStripeCustomerID)
	}
	if m.stripe_subscription_id != nil {
		fields = append(fields, userbilling.FieldStripeSubscriptionID)
	}
	if m.renew_date != nil {
		fields = append(fields, userbilling.FieldRenewDate)
	}
	if m.created_at != nil {
		fields = append(fields, userbilling.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userbilling.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserBillingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userbilling.FieldUserID:
		return m.UserID()
	case userbilling.FieldPlanID:
		return m.PlanID()
	case userbilling.FieldStatus:
		return m.Status()
	case userbilling.FieldCreditsRemaining:
		return m.CreditsRemaining()
	case userbilling.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case userbilling.FieldStripeSubscriptionID:
		return m.StripeSubscriptionID()
	case userbilling.FieldRenewDate:
		return m.RenewDate()
	case userbilling.FieldCreatedAt:
		return m.CreatedAt()
	case userbilling.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserBillingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userbilling.FieldUserID:
		return m.OldUserID(ctx)
	case userbilling.FieldPlanID:
		return m.OldPlanID(ctx)
	case userbilling.FieldStatus:
		return m.OldStatus(ctx)
	case userbilling.FieldCreditsRemaining:
		return m.OldCreditsRemaining(ctx)
	case userbilling.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case userbilling.FieldStripeSubscriptionID:
		return m.OldStripeSubscriptionID(ctx)
	case userbilling.FieldRenewDate:
		return m.OldRenewDate(ctx)
	case userbilling.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userbilling.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserBilling field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserBillingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userbilling.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userbilling.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case userbilling.FieldStatus:
		v, ok := value.(userbilling.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case userbilling.FieldCreditsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsRemaining(v)
		return nil
	case userbilling.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case userbilling.FieldStripeSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSubscriptionID(v)
		return nil
	case userbilling.FieldRenewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenewDate(v)
		return nil
	case userbilling.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userbilling.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserBilling field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserBillingMutation) AddedFields() []string {
	var fields []string
	if m.addcredits_remaining != nil {
		fields = append(fields, userbilling.FieldCreditsRemaining)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserBillingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userbilling.FieldCreditsRemaining:
		return m.AddedCreditsRemaining()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserBillingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userbilling.FieldCreditsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsRemaining(v)
		return nil
	}
	return fmt.Errorf("unknown UserBilling numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserBillingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userbilling.FieldPlanID) {
		fields = append(fields, userbilling.FieldPlanID)
	}
	if m.FieldCleared(userbilling.FieldStripeCustomerID) {
		fields = append(fields, userbilling.FieldStripeCustomerID)
	}
	if m.FieldCleared(userbilling.FieldStripeSubscriptionID) {
		fields = append(fields, userbilling.FieldStripeSubscriptionID)
	}
	if m.FieldCleared(userbilling.FieldRenewDate) {
		fields = append(fields, userbilling.FieldRenewDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserBillingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserBillingMutation) ClearField(name string) error {
	switch name {
	case userbilling.FieldPlanID:
		m.ClearPlanID()
		return nil
	case userbilling.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	case userbilling.FieldStripeSubscriptionID:
		m.ClearStripeSubscriptionID()
		return nil
	case userbilling.FieldRenewDate:
		m.ClearRenewDate()
		return nil
	}
	return fmt.Errorf("unknown UserBilling nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserBillingMutation) ResetField(name string) error {
	switch name {
	case userbilling.FieldUserID:
		m.ResetUserID()
		return nil
	case userbilling.FieldPlanID:
		m.ResetPlanID()
		return nil
	case userbilling.FieldStatus:
		m.ResetStatus()
		return nil
	case userbilling.FieldCreditsRemaining:
		m.ResetCreditsRemaining()
		return nil
	case userbilling.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case userbilling.FieldStripeSubscriptionID:
		m.ResetStripeSubscriptionID()
		return nil
	case userbilling.FieldRenewDate:
		m.ResetRenewDate()
		return nil
	case userbilling.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userbilling.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserBilling field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserBillingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, userbilling.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserBillingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userbilling.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserBillingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserBillingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserBillingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, userbilling.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserBillingMutation) EdgeCleared(name string) bool {
	switch name {
	case userbilling.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserBillingMutation) ClearEdge(name string) error {
	switch name {
	case userbilling.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserBilling unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserBillingMutation) ResetEdge(name string) error {
	switch name {
	case userbilling.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserBilling edge %s", name)
}
