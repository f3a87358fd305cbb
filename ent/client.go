// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/danielmv/leadrevive/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/campaign"
	"github.com/danielmv/leadrevive/ent/campaignevent"
	"github.com/danielmv/leadrevive/ent/contact"
	"github.com/danielmv/leadrevive/ent/messagetemplate"
	"github.com/danielmv/leadrevive/ent/scheduledsend"
	"github.com/danielmv/leadrevive/ent/smsmessage"
	"github.com/danielmv/leadrevive/ent/twilioaccount"
	"github.com/danielmv/leadrevive/ent/user"
	"github.com/danielmv/leadrevive/ent/userbilling"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// A2PRegistration is the client for interacting with the A2PRegistration builders.
	A2PRegistration *A2PRegistrationClient
	// Campaign is the client for interacting with the Campaign builders.
	Campaign *CampaignClient
	// CampaignEvent is the client for interacting with the CampaignEvent builders.
	CampaignEvent *CampaignEventClient
	// Contact is the client for interacting with the Contact builders.
	Contact *ContactClient
	// MessageTemplate is the client for interacting with the MessageTemplate builders.
	MessageTemplate *MessageTemplateClient
	// SMSMessage is the client for interacting with the SMSMessage builders.
	SMSMessage *SMSMessageClient
	// ScheduledSend is the client for interacting with the ScheduledSend builders.
	ScheduledSend *ScheduledSendClient
	// TwilioAccount is the client for interacting with the TwilioAccount builders.
	TwilioAccount *TwilioAccountClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserBilling is the client for interacting with the UserBilling builders.
	UserBilling *UserBillingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.A2PRegistration = NewA2PRegistrationClient(c.config)
	c.Campaign = NewCampaignClient(c.config)
	c.CampaignEvent = NewCampaignEventClient(c.config)
	c.Contact = NewContactClient(c.config)
	c.MessageTemplate = NewMessageTemplateClient(c.config)
	c.SMSMessage = NewSMSMessageClient(c.config)
	c.ScheduledSend = NewScheduledSendClient(c.config)
	c.TwilioAccount = NewTwilioAccountClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserBilling = NewUserBillingClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		A2PRegistration: NewA2PRegistrationClient(cfg),
		Campaign:        NewCampaignClient(cfg),
		CampaignEvent:   NewCampaignEventClient(cfg),
		Contact:         NewContactClient(cfg),
		MessageTemplate: NewMessageTemplateClient(cfg),
		SMSMessage:      NewSMSMessageClient(cfg),
		ScheduledSend:   NewScheduledSendClient(cfg),
		TwilioAccount:   NewTwilioAccountClient(cfg),
		User:            NewUserClient(cfg),
		UserBilling:     NewUserBillingClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		A2PRegistration: NewA2PRegistrationClient(cfg),
		Campaign:        NewCampaignClient(cfg),
		CampaignEvent:   NewCampaignEventClient(cfg),
		Contact:         NewContactClient(cfg),
		MessageTemplate: NewMessageTemplateClient(cfg),
		SMSMessage:      NewSMSMessageClient(cfg),
		ScheduledSend:   NewScheduledSendClient(cfg),
		TwilioAccount:   NewTwilioAccountClient(cfg),
		User:            NewUserClient(cfg),
		UserBilling:     NewUserBillingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		A2PRegistration.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.A2PRegistration, c.Campaign, c.CampaignEvent, c.Contact, c.MessageTemplate,
		c.SMSMessage, c.ScheduledSend, c.TwilioAccount, c.User, c.UserBilling,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.A2PRegistration, c.Campaign, c.CampaignEvent, c.Contact, c.MessageTemplate,
		c.SMSMessage, c.ScheduledSend, c.TwilioAccount, c.User, c.UserBilling,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *A2PRegistrationMutation:
		return c.A2PRegistration.mutate(ctx, m)
	case *CampaignMutation:
		return c.Campaign.mutate(ctx, m)
	case *CampaignEventMutation:
		return c.CampaignEvent.mutate(ctx, m)
	case *ContactMutation:
		return c.Contact.mutate(ctx, m)
	case *MessageTemplateMutation:
		return c.MessageTemplate.mutate(ctx, m)
	case *SMSMessageMutation:
		return c.SMSMessage.mutate(ctx, m)
	case *ScheduledSendMutation:
		return c.ScheduledSend.mutate(ctx, m)
	case *TwilioAccountMutation:
		return c.TwilioAccount.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserBillingMutation:
		return c.UserBilling.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// A2PRegistrationClient is a client for the A2PRegistration schema.
type A2PRegistrationClient struct {
	config
}

// NewA2PRegistrationClient returns a client for the A2PRegistration from the given config.
func NewA2PRegistrationClient(c config) *A2PRegistrationClient {
	return &A2PRegistrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `a2pregistration.Hooks(f(g(h())))`.
func (c *A2PRegistrationClient) Use(hooks ...Hook) {
	c.hooks.A2PRegistration = append(c.hooks.A2PRegistration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `a2pregistration.Intercept(f(g(h())))`.
func (c *A2PRegistrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.A2PRegistration = append(c.inters.A2PRegistration, interceptors...)
}

// Create returns a builder for creating a A2PRegistration entity.
func (c *A2PRegistrationClient) Create() *A2PRegistrationCreate {
	mutation := newA2PRegistrationMutation(c.config, OpCreate)
	return &A2PRegistrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of A2PRegistration entities.
func (c *A2PRegistrationClient) CreateBulk(builders ...*A2PRegistrationCreate) *A2PRegistrationCreateBulk {
	return &A2PRegistrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *A2PRegistrationClient) MapCreateBulk(slice any, setFunc func(*A2PRegistrationCreate, int)) *A2PRegistrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &A2PRegistrationCreateBulk{err: fmt.Errorf("calling to A2PRegistrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*A2PRegistrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &A2PRegistrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for A2PRegistration.
func (c *A2PRegistrationClient) Update() *A2PRegistrationUpdate {
	mutation := newA2PRegistrationMutation(c.config, OpUpdate)
	return &A2PRegistrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *A2PRegistrationClient) UpdateOne(_m *A2PRegistration) *A2PRegistrationUpdateOne {
	mutation := newA2PRegistrationMutation(c.config, OpUpdateOne, withA2PRegistration(_m))
	return &A2PRegistrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *A2PRegistrationClient) UpdateOneID(id int) *A2PRegistrationUpdateOne {
	mutation := newA2PRegistrationMutation(c.config, OpUpdateOne, withA2PRegistrationID(id))
	return &A2PRegistrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for A2PRegistration.
func (c *A2PRegistrationClient) Delete() *A2PRegistrationDelete {
	mutation := newA2PRegistrationMutation(c.config, OpDelete)
	return &A2PRegistrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *A2PRegistrationClient) DeleteOne(_m *A2PRegistration) *A2PRegistrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *A2PRegistrationClient) DeleteOneID(id int) *A2PRegistrationDeleteOne {
	builder := c.Delete().Where(a2pregistration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &A2PRegistrationDeleteOne{builder}
}

// Query returns a query builder for A2PRegistration.
func (c *A2PRegistrationClient) Query() *A2PRegistrationQuery {
	return &A2PRegistrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeA2PRegistration},
		inters: c.Interceptors(),
	}
}

// Get returns a A2PRegistration entity by its id.
func (c *A2PRegistrationClient) Get(ctx context.Context, id int) (*A2PRegistration, error) {
	return c.Query().Where(a2pregistration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *A2PRegistrationClient) GetX(ctx context.Context, id int) *A2PRegistration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a A2PRegistration.
func (c *A2PRegistrationClient) QueryUser(_m *A2PRegistration) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(a2pregistration.Table, a2pregistration.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, a2pregistration.UserTable, a2pregistration.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *A2PRegistrationClient) Hooks() []Hook {
	return c.hooks.A2PRegistration
}

// Interceptors returns the client interceptors.
func (c *A2PRegistrationClient) Interceptors() []Interceptor {
	return c.inters.A2PRegistration
}

func (c *A2PRegistrationClient) mutate(ctx context.Context, m *A2PRegistrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&A2PRegistrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&A2PRegistrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&A2PRegistrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&A2PRegistrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown A2PRegistration mutation op: %q", m.Op())
	}
}

// CampaignClient is a client for the Campaign schema.
type CampaignClient struct {
	config
}

// NewCampaignClient returns a client for the Campaign from the given config.
func NewCampaignClient(c config) *CampaignClient {
	return &CampaignClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `campaign.Hooks(f(g(h())))`.
func (c *CampaignClient) Use(hooks ...Hook) {
	c.hooks.Campaign = append(c.hooks.Campaign, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `campaign.Intercept(f(g(h())))`.
func (c *CampaignClient) Intercept(interceptors ...Interceptor) {
	c.inters.Campaign = append(c.inters.Campaign, interceptors...)
}

// Create returns a builder for creating a Campaign entity.
func (c *CampaignClient) Create() *CampaignCreate {
	mutation := newCampaignMutation(c.config, OpCreate)
	return &CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Campaign entities.
func (c *CampaignClient) CreateBulk(builders ...*CampaignCreate) *CampaignCreateBulk {
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CampaignClient) MapCreateBulk(slice any, setFunc func(*CampaignCreate, int)) *CampaignCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CampaignCreateBulk{err: fmt.Errorf("calling to CampaignClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CampaignCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Campaign.
func (c *CampaignClient) Update() *CampaignUpdate {
	mutation := newCampaignMutation(c.config, OpUpdate)
	return &CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CampaignClient) UpdateOne(_m *Campaign) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaign(_m))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CampaignClient) UpdateOneID(id int) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaignID(id))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Campaign.
func (c *CampaignClient) Delete() *CampaignDelete {
	mutation := newCampaignMutation(c.config, OpDelete)
	return &CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CampaignClient) DeleteOne(_m *Campaign) *CampaignDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CampaignClient) DeleteOneID(id int) *CampaignDeleteOne {
	builder := c.Delete().Where(campaign.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CampaignDeleteOne{builder}
}

// Query returns a query builder for Campaign.
func (c *CampaignClient) Query() *CampaignQuery {
	return &CampaignQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCampaign},
		inters: c.Interceptors(),
	}
}

// Get returns a Campaign entity by its id.
func (c *CampaignClient) Get(ctx context.Context, id int) (*Campaign, error) {
	return c.Query().Where(campaign.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CampaignClient) GetX(ctx context.Context, id int) *Campaign {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Campaign.
func (c *CampaignClient) QueryUser(_m *Campaign) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campaign.UserTable, campaign.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContacts queries the contacts edge of a Campaign.
func (c *CampaignClient) QueryContacts(_m *Campaign) *ContactQuery {
	query := (&ContactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.ContactsTable, campaign.ContactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplates queries the templates edge of a Campaign.
func (c *CampaignClient) QueryTemplates(_m *Campaign) *MessageTemplateQuery {
	query := (&MessageTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(messagetemplate.Table, messagetemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.TemplatesTable, campaign.TemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScheduledSends queries the scheduled_sends edge of a Campaign.
func (c *CampaignClient) QueryScheduledSends(_m *Campaign) *ScheduledSendQuery {
	query := (&ScheduledSendClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(scheduledsend.Table, scheduledsend.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.ScheduledSendsTable, campaign.ScheduledSendsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Campaign.
func (c *CampaignClient) QueryMessages(_m *Campaign) *SMSMessageQuery {
	query := (&SMSMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(smsmessage.Table, smsmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.MessagesTable, campaign.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Campaign.
func (c *CampaignClient) QueryEvents(_m *Campaign) *CampaignEventQuery {
	query := (&CampaignEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(campaignevent.Table, campaignevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.EventsTable, campaign.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CampaignClient) Hooks() []Hook {
	return c.hooks.Campaign
}

// Interceptors returns the client interceptors.
func (c *CampaignClient) Interceptors() []Interceptor {
	return c.inters.Campaign
}

func (c *CampaignClient) mutate(ctx context.Context, m *CampaignMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Campaign mutation op: %q", m.Op())
	}
}

// CampaignEventClient is a client for the CampaignEvent schema.
type CampaignEventClient struct {
	config
}

// NewCampaignEventClient returns a client for the CampaignEvent from the given config.
func NewCampaignEventClient(c config) *CampaignEventClient {
	return &CampaignEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `campaignevent.Hooks(f(g(h())))`.
func (c *CampaignEventClient) Use(hooks ...Hook) {
	c.hooks.CampaignEvent = append(c.hooks.CampaignEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `campaignevent.Intercept(f(g(h())))`.
func (c *CampaignEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CampaignEvent = append(c.inters.CampaignEvent, interceptors...)
}

// Create returns a builder for creating a CampaignEvent entity.
func (c *CampaignEventClient) Create() *CampaignEventCreate {
	mutation := newCampaignEventMutation(c.config, OpCreate)
	return &CampaignEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CampaignEvent entities.
func (c *CampaignEventClient) CreateBulk(builders ...*CampaignEventCreate) *CampaignEventCreateBulk {
	return &CampaignEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CampaignEventClient) MapCreateBulk(slice any, setFunc func(*CampaignEventCreate, int)) *CampaignEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CampaignEventCreateBulk{err: fmt.Errorf("calling to CampaignEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CampaignEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CampaignEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CampaignEvent.
func (c *CampaignEventClient) Update() *CampaignEventUpdate {
	mutation := newCampaignEventMutation(c.config, OpUpdate)
	return &CampaignEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CampaignEventClient) UpdateOne(_m *CampaignEvent) *CampaignEventUpdateOne {
	mutation := newCampaignEventMutation(c.config, OpUpdateOne, withCampaignEvent(_m))
	return &CampaignEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CampaignEventClient) UpdateOneID(id int) *CampaignEventUpdateOne {
	mutation := newCampaignEventMutation(c.config, OpUpdateOne, withCampaignEventID(id))
	return &CampaignEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CampaignEvent.
func (c *CampaignEventClient) Delete() *CampaignEventDelete {
	mutation := newCampaignEventMutation(c.config, OpDelete)
	return &CampaignEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CampaignEventClient) DeleteOne(_m *CampaignEvent) *CampaignEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CampaignEventClient) DeleteOneID(id int) *CampaignEventDeleteOne {
	builder := c.Delete().Where(campaignevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CampaignEventDeleteOne{builder}
}

// Query returns a query builder for CampaignEvent.
func (c *CampaignEventClient) Query() *CampaignEventQuery {
	return &CampaignEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCampaignEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CampaignEvent entity by its id.
func (c *CampaignEventClient) Get(ctx context.Context, id int) (*CampaignEvent, error) {
	return c.Query().Where(campaignevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CampaignEventClient) GetX(ctx context.Context, id int) *CampaignEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a CampaignEvent.
func (c *CampaignEventClient) QueryCampaign(_m *CampaignEvent) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaignevent.Table, campaignevent.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campaignevent.CampaignTable, campaignevent.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CampaignEventClient) Hooks() []Hook {
	return c.hooks.CampaignEvent
}

// Interceptors returns the client interceptors.
func (c *CampaignEventClient) Interceptors() []Interceptor {
	return c.inters.CampaignEvent
}

func (c *CampaignEventClient) mutate(ctx context.Context, m *CampaignEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CampaignEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CampaignEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CampaignEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CampaignEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CampaignEvent mutation op: %q", m.Op())
	}
}

// ContactClient is a client for the Contact schema.
type ContactClient struct {
	config
}

// NewContactClient returns a client for the Contact from the given config.
func NewContactClient(c config) *ContactClient {
	return &ContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contact.Hooks(f(g(h())))`.
func (c *ContactClient) Use(hooks ...Hook) {
	c.hooks.Contact = append(c.hooks.Contact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contact.Intercept(f(g(h())))`.
func (c *ContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contact = append(c.inters.Contact, interceptors...)
}

// Create returns a builder for creating a Contact entity.
func (c *ContactClient) Create() *ContactCreate {
	mutation := newContactMutation(c.config, OpCreate)
	return &ContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contact entities.
func (c *ContactClient) CreateBulk(builders ...*ContactCreate) *ContactCreateBulk {
	return &ContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactClient) MapCreateBulk(slice any, setFunc func(*ContactCreate, int)) *ContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactCreateBulk{err: fmt.Errorf("calling to ContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contact.
func (c *ContactClient) Update() *ContactUpdate {
	mutation := newContactMutation(c.config, OpUpdate)
	return &ContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactClient) UpdateOne(_m *Contact) *ContactUpdateOne {
	mutation := newContactMutation(c.config, OpUpdateOne, withContact(_m))
	return &ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactClient) UpdateOneID(id int) *ContactUpdateOne {
	mutation := newContactMutation(c.config, OpUpdateOne, withContactID(id))
	return &ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contact.
func (c *ContactClient) Delete() *ContactDelete {
	mutation := newContactMutation(c.config, OpDelete)
	return &ContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactClient) DeleteOne(_m *Contact) *ContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactClient) DeleteOneID(id int) *ContactDeleteOne {
	builder := c.Delete().Where(contact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactDeleteOne{builder}
}

// Query returns a query builder for Contact.
func (c *ContactClient) Query() *ContactQuery {
	return &ContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContact},
		inters: c.Interceptors(),
	}
}

// Get returns a Contact entity by its id.
func (c *ContactClient) Get(ctx context.Context, id int) (*Contact, error) {
	return c.Query().Where(contact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactClient) GetX(ctx context.Context, id int) *Contact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a Contact.
func (c *ContactClient) QueryCampaign(_m *Contact) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contact.Table, contact.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contact.CampaignTable, contact.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScheduledSends queries the scheduled_sends edge of a Contact.
func (c *ContactClient) QueryScheduledSends(_m *Contact) *ScheduledSendQuery {
	query := (&ScheduledSendClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contact.Table, contact.FieldID, id),
			sqlgraph.To(scheduledsend.Table, scheduledsend.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contact.ScheduledSendsTable, contact.ScheduledSendsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Contact.
func (c *ContactClient) QueryMessages(_m *Contact) *SMSMessageQuery {
	query := (&SMSMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contact.Table, contact.FieldID, id),
			sqlgraph.To(smsmessage.Table, smsmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contact.MessagesTable, contact.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContactClient) Hooks() []Hook {
	return c.hooks.Contact
}

// Interceptors returns the client interceptors.
func (c *ContactClient) Interceptors() []Interceptor {
	return c.inters.Contact
}

func (c *ContactClient) mutate(ctx context.Context, m *ContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contact mutation op: %q", m.Op())
	}
}

// MessageTemplateClient is a client for the MessageTemplate schema.
type MessageTemplateClient struct {
	config
}

// NewMessageTemplateClient returns a client for the MessageTemplate from the given config.
func NewMessageTemplateClient(c config) *MessageTemplateClient {
	return &MessageTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagetemplate.Hooks(f(g(h())))`.
func (c *MessageTemplateClient) Use(hooks ...Hook) {
	c.hooks.MessageTemplate = append(c.hooks.MessageTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagetemplate.Intercept(f(g(h())))`.
func (c *MessageTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageTemplate = append(c.inters.MessageTemplate, interceptors...)
}

// Create returns a builder for creating a MessageTemplate entity.
func (c *MessageTemplateClient) Create() *MessageTemplateCreate {
	mutation := newMessageTemplateMutation(c.config, OpCreate)
	return &MessageTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageTemplate entities.
func (c *MessageTemplateClient) CreateBulk(builders ...*MessageTemplateCreate) *MessageTemplateCreateBulk {
	return &MessageTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageTemplateClient) MapCreateBulk(slice any, setFunc func(*MessageTemplateCreate, int)) *MessageTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageTemplateCreateBulk{err: fmt.Errorf("calling to MessageTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageTemplate.
func (c *MessageTemplateClient) Update() *MessageTemplateUpdate {
	mutation := newMessageTemplateMutation(c.config, OpUpdate)
	return &MessageTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageTemplateClient) UpdateOne(_m *MessageTemplate) *MessageTemplateUpdateOne {
	mutation := newMessageTemplateMutation(c.config, OpUpdateOne, withMessageTemplate(_m))
	return &MessageTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageTemplateClient) UpdateOneID(id int) *MessageTemplateUpdateOne {
	mutation := newMessageTemplateMutation(c.config, OpUpdateOne, withMessageTemplateID(id))
	return &MessageTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageTemplate.
func (c *MessageTemplateClient) Delete() *MessageTemplateDelete {
	mutation := newMessageTemplateMutation(c.config, OpDelete)
	return &MessageTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageTemplateClient) DeleteOne(_m *MessageTemplate) *MessageTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageTemplateClient) DeleteOneID(id int) *MessageTemplateDeleteOne {
	builder := c.Delete().Where(messagetemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageTemplateDeleteOne{builder}
}

// Query returns a query builder for MessageTemplate.
func (c *MessageTemplateClient) Query() *MessageTemplateQuery {
	return &MessageTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageTemplate entity by its id.
func (c *MessageTemplateClient) Get(ctx context.Context, id int) (*MessageTemplate, error) {
	return c.Query().Where(messagetemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageTemplateClient) GetX(ctx context.Context, id int) *MessageTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a MessageTemplate.
func (c *MessageTemplateClient) QueryCampaign(_m *MessageTemplate) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(messagetemplate.Table, messagetemplate.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, messagetemplate.CampaignTable, messagetemplate.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageTemplateClient) Hooks() []Hook {
	return c.hooks.MessageTemplate
}

// Interceptors returns the client interceptors.
func (c *MessageTemplateClient) Interceptors() []Interceptor {
	return c.inters.MessageTemplate
}

func (c *MessageTemplateClient) mutate(ctx context.Context, m *MessageTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageTemplate mutation op: %q", m.Op())
	}
}

// SMSMessageClient is a client for the SMSMessage schema.
type SMSMessageClient struct {
	config
}

// NewSMSMessageClient returns a client for the SMSMessage from the given config.
func NewSMSMessageClient(c config) *SMSMessageClient {
	return &SMSMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `smsmessage.Hooks(f(g(h())))`.
func (c *SMSMessageClient) Use(hooks ...Hook) {
	c.hooks.SMSMessage = append(c.hooks.SMSMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `smsmessage.Intercept(f(g(h())))`.
func (c *SMSMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SMSMessage = append(c.inters.SMSMessage, interceptors...)
}

// Create returns a builder for creating a SMSMessage entity.
func (c *SMSMessageClient) Create() *SMSMessageCreate {
	mutation := newSMSMessageMutation(c.config, OpCreate)
	return &SMSMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SMSMessage entities.
func (c *SMSMessageClient) CreateBulk(builders ...*SMSMessageCreate) *SMSMessageCreateBulk {
	return &SMSMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SMSMessageClient) MapCreateBulk(slice any, setFunc func(*SMSMessageCreate, int)) *SMSMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SMSMessageCreateBulk{err: fmt.Errorf("calling to SMSMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SMSMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SMSMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SMSMessage.
func (c *SMSMessageClient) Update() *SMSMessageUpdate {
	mutation := newSMSMessageMutation(c.config, OpUpdate)
	return &SMSMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SMSMessageClient) UpdateOne(_m *SMSMessage) *SMSMessageUpdateOne {
	mutation := newSMSMessageMutation(c.config, OpUpdateOne, withSMSMessage(_m))
	return &SMSMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SMSMessageClient) UpdateOneID(id int) *SMSMessageUpdateOne {
	mutation := newSMSMessageMutation(c.config, OpUpdateOne, withSMSMessageID(id))
	return &SMSMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SMSMessage.
func (c *SMSMessageClient) Delete() *SMSMessageDelete {
	mutation := newSMSMessageMutation(c.config, OpDelete)
	return &SMSMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SMSMessageClient) DeleteOne(_m *SMSMessage) *SMSMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SMSMessageClient) DeleteOneID(id int) *SMSMessageDeleteOne {
	builder := c.Delete().Where(smsmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SMSMessageDeleteOne{builder}
}

// Query returns a query builder for SMSMessage.
func (c *SMSMessageClient) Query() *SMSMessageQuery {
	return &SMSMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSMSMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a SMSMessage entity by its id.
func (c *SMSMessageClient) Get(ctx context.Context, id int) (*SMSMessage, error) {
	return c.Query().Where(smsmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SMSMessageClient) GetX(ctx context.Context, id int) *SMSMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a SMSMessage.
func (c *SMSMessageClient) QueryCampaign(_m *SMSMessage) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(smsmessage.Table, smsmessage.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, smsmessage.CampaignTable, smsmessage.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContact queries the contact edge of a SMSMessage.
func (c *SMSMessageClient) QueryContact(_m *SMSMessage) *ContactQuery {
	query := (&ContactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(smsmessage.Table, smsmessage.FieldID, id),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, smsmessage.ContactTable, smsmessage.ContactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SMSMessageClient) Hooks() []Hook {
	return c.hooks.SMSMessage
}

// Interceptors returns the client interceptors.
func (c *SMSMessageClient) Interceptors() []Interceptor {
	return c.inters.SMSMessage
}

func (c *SMSMessageClient) mutate(ctx context.Context, m *SMSMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SMSMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SMSMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SMSMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SMSMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SMSMessage mutation op: %q", m.Op())
	}
}

// ScheduledSendClient is a client for the ScheduledSend schema.
type ScheduledSendClient struct {
	config
}

// NewScheduledSendClient returns a client for the ScheduledSend from the given config.
func NewScheduledSendClient(c config) *ScheduledSendClient {
	return &ScheduledSendClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledsend.Hooks(f(g(h())))`.
func (c *ScheduledSendClient) Use(hooks ...Hook) {
	c.hooks.ScheduledSend = append(c.hooks.ScheduledSend, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledsend.Intercept(f(g(h())))`.
func (c *ScheduledSendClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledSend = append(c.inters.ScheduledSend, interceptors...)
}

// Create returns a builder for creating a ScheduledSend entity.
func (c *ScheduledSendClient) Create() *ScheduledSendCreate {
	mutation := newScheduledSendMutation(c.config, OpCreate)
	return &ScheduledSendCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledSend entities.
func (c *ScheduledSendClient) CreateBulk(builders ...*ScheduledSendCreate) *ScheduledSendCreateBulk {
	return &ScheduledSendCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledSendClient) MapCreateBulk(slice any, setFunc func(*ScheduledSendCreate, int)) *ScheduledSendCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledSendCreateBulk{err: fmt.Errorf("calling to ScheduledSendClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledSendCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledSendCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledSend.
func (c *ScheduledSendClient) Update() *ScheduledSendUpdate {
	mutation := newScheduledSendMutation(c.config, OpUpdate)
	return &ScheduledSendUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledSendClient) UpdateOne(_m *ScheduledSend) *ScheduledSendUpdateOne {
	mutation := newScheduledSendMutation(c.config, OpUpdateOne, withScheduledSend(_m))
	return &ScheduledSendUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledSendClient) UpdateOneID(id int) *ScheduledSendUpdateOne {
	mutation := newScheduledSendMutation(c.config, OpUpdateOne, withScheduledSendID(id))
	return &ScheduledSendUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledSend.
func (c *ScheduledSendClient) Delete() *ScheduledSendDelete {
	mutation := newScheduledSendMutation(c.config, OpDelete)
	return &ScheduledSendDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledSendClient) DeleteOne(_m *ScheduledSend) *ScheduledSendDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledSendClient) DeleteOneID(id int) *ScheduledSendDeleteOne {
	builder := c.Delete().Where(scheduledsend.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledSendDeleteOne{builder}
}

// Query returns a query builder for ScheduledSend.
func (c *ScheduledSendClient) Query() *ScheduledSendQuery {
	return &ScheduledSendQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledSend},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledSend entity by its id.
func (c *ScheduledSendClient) Get(ctx context.Context, id int) (*ScheduledSend, error) {
	return c.Query().Where(scheduledsend.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledSendClient) GetX(ctx context.Context, id int) *ScheduledSend {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a ScheduledSend.
func (c *ScheduledSendClient) QueryCampaign(_m *ScheduledSend) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledsend.Table, scheduledsend.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledsend.CampaignTable, scheduledsend.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContact queries the contact edge of a ScheduledSend.
func (c *ScheduledSendClient) QueryContact(_m *ScheduledSend) *ContactQuery {
	query := (&ContactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scheduledsend.Table, scheduledsend.FieldID, id),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scheduledsend.ContactTable, scheduledsend.ContactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScheduledSendClient) Hooks() []Hook {
	return c.hooks.ScheduledSend
}

// Interceptors returns the client interceptors.
func (c *ScheduledSendClient) Interceptors() []Interceptor {
	return c.inters.ScheduledSend
}

func (c *ScheduledSendClient) mutate(ctx context.Context, m *ScheduledSendMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledSendCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledSendUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledSendUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledSendDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledSend mutation op: %q", m.Op())
	}
}

// TwilioAccountClient is a client for the TwilioAccount schema.
type TwilioAccountClient struct {
	config
}

// NewTwilioAccountClient returns a client for the TwilioAccount from the given config.
func NewTwilioAccountClient(c config) *TwilioAccountClient {
	return &TwilioAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `twilioaccount.Hooks(f(g(h())))`.
func (c *TwilioAccountClient) Use(hooks ...Hook) {
	c.hooks.TwilioAccount = append(c.hooks.TwilioAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `twilioaccount.Intercept(f(g(h())))`.
func (c *TwilioAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.TwilioAccount = append(c.inters.TwilioAccount, interceptors...)
}

// Create returns a builder for creating a TwilioAccount entity.
func (c *TwilioAccountClient) Create() *TwilioAccountCreate {
	mutation := newTwilioAccountMutation(c.config, OpCreate)
	return &TwilioAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TwilioAccount entities.
func (c *TwilioAccountClient) CreateBulk(builders ...*TwilioAccountCreate) *TwilioAccountCreateBulk {
	return &TwilioAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TwilioAccountClient) MapCreateBulk(slice any, setFunc func(*TwilioAccountCreate, int)) *TwilioAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TwilioAccountCreateBulk{err: fmt.Errorf("calling to TwilioAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TwilioAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TwilioAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TwilioAccount.
func (c *TwilioAccountClient) Update() *TwilioAccountUpdate {
	mutation := newTwilioAccountMutation(c.config, OpUpdate)
	return &TwilioAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TwilioAccountClient) UpdateOne(_m *TwilioAccount) *TwilioAccountUpdateOne {
	mutation := newTwilioAccountMutation(c.config, OpUpdateOne, withTwilioAccount(_m))
	return &TwilioAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TwilioAccountClient) UpdateOneID(id int) *TwilioAccountUpdateOne {
	mutation := newTwilioAccountMutation(c.config, OpUpdateOne, withTwilioAccountID(id))
	return &TwilioAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TwilioAccount.
func (c *TwilioAccountClient) Delete() *TwilioAccountDelete {
	mutation := newTwilioAccountMutation(c.config, OpDelete)
	return &TwilioAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TwilioAccountClient) DeleteOne(_m *TwilioAccount) *TwilioAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TwilioAccountClient) DeleteOneID(id int) *TwilioAccountDeleteOne {
	builder := c.Delete().Where(twilioaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TwilioAccountDeleteOne{builder}
}

// Query returns a query builder for TwilioAccount.
func (c *TwilioAccountClient) Query() *TwilioAccountQuery {
	return &TwilioAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTwilioAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a TwilioAccount entity by its id.
func (c *TwilioAccountClient) Get(ctx context.Context, id int) (*TwilioAccount, error) {
	return c.Query().Where(twilioaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TwilioAccountClient) GetX(ctx context.Context, id int) *TwilioAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a TwilioAccount.
func (c *TwilioAccountClient) QueryUser(_m *TwilioAccount) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(twilioaccount.Table, twilioaccount.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, twilioaccount.UserTable, twilioaccount.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TwilioAccountClient) Hooks() []Hook {
	return c.hooks.TwilioAccount
}

// Interceptors returns the client interceptors.
func (c *TwilioAccountClient) Interceptors() []Interceptor {
	return c.inters.TwilioAccount
}

func (c *TwilioAccountClient) mutate(ctx context.Context, m *TwilioAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TwilioAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TwilioAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TwilioAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TwilioAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TwilioAccount mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaigns queries the campaigns edge of a User.
func (c *UserClient) QueryCampaigns(_m *User) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CampaignsTable, user.CampaignsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBilling queries the billing edge of a User.
func (c *UserClient) QueryBilling(_m *User) *UserBillingQuery {
	query := (&UserBillingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(userbilling.Table, userbilling.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.BillingTable, user.BillingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryA2pRegistration queries the a2p_registration edge of a User.
func (c *UserClient) QueryA2pRegistration(_m *User) *A2PRegistrationQuery {
	query := (&A2PRegistrationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(a2pregistration.Table, a2pregistration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.A2pRegistrationTable, user.A2pRegistrationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTwilioAccount queries the twilio_account edge of a User.
func (c *UserClient) QueryTwilioAccount(_m *User) *TwilioAccountQuery {
	query := (&TwilioAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(twilioaccount.Table, twilioaccount.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TwilioAccountTable, user.TwilioAccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserBillingClient is a client for the UserBilling schema.
type UserBillingClient struct {
	config
}

// NewUserBillingClient returns a client for the UserBilling from the given config.
func NewUserBillingClient(c config) *UserBillingClient {
	return &UserBillingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userbilling.Hooks(f(g(h())))`.
func (c *UserBillingClient) Use(hooks ...Hook) {
	c.hooks.UserBilling = append(c.hooks.UserBilling, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userbilling.Intercept(f(g(h())))`.
func (c *UserBillingClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserBilling = append(c.inters.UserBilling, interceptors...)
}

// Create returns a builder for creating a UserBilling entity.
func (c *UserBillingClient) Create() *UserBillingCreate {
	mutation := newUserBillingMutation(c.config, OpCreate)
	return &UserBillingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserBilling entities.
func (c *UserBillingClient) CreateBulk(builders ...*UserBillingCreate) *UserBillingCreateBulk {
	return &UserBillingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserBillingClient) MapCreateBulk(slice any, setFunc func(*UserBillingCreate, int)) *UserBillingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserBillingCreateBulk{err: fmt.Errorf("calling to UserBillingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserBillingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserBillingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserBilling.
func (c *UserBillingClient) Update() *UserBillingUpdate {
	mutation := newUserBillingMutation(c.config, OpUpdate)
	return &UserBillingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserBillingClient) UpdateOne(_m *UserBilling) *UserBillingUpdateOne {
	mutation := newUserBillingMutation(c.config, OpUpdateOne, withUserBilling(_m))
	return &UserBillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserBillingClient) UpdateOneID(id int) *UserBillingUpdateOne {
	mutation := newUserBillingMutation(c.config, OpUpdateOne, withUserBillingID(id))
	return &UserBillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserBilling.
func (c *UserBillingClient) Delete() *UserBillingDelete {
	mutation := newUserBillingMutation(c.config, OpDelete)
	return &UserBillingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserBillingClient) DeleteOne(_m *UserBilling) *UserBillingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserBillingClient) DeleteOneID(id int) *UserBillingDeleteOne {
	builder := c.Delete().Where(userbilling.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserBillingDeleteOne{builder}
}

// Query returns a query builder for UserBilling.
func (c *UserBillingClient) Query() *UserBillingQuery {
	return &UserBillingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserBilling},
		inters: c.Interceptors(),
	}
}

// Get returns a UserBilling entity by its id.
func (c *UserBillingClient) Get(ctx context.Context, id int) (*UserBilling, error) {
	return c.Query().Where(userbilling.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserBillingClient) GetX(ctx context.Context, id int) *UserBilling {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserBilling.
func (c *UserBillingClient) QueryUser(_m *UserBilling) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userbilling.Table, userbilling.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, userbilling.UserTable, userbilling.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserBillingClient) Hooks() []Hook {
	return c.hooks.UserBilling
}

// Interceptors returns the client interceptors.
func (c *UserBillingClient) Interceptors() []Interceptor {
	return c.inters.UserBilling
}

func (c *UserBillingClient) mutate(ctx context.Context, m *UserBillingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserBillingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserBillingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserBillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserBillingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserBilling mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		A2PRegistration, Campaign, CampaignEvent, Contact, MessageTemplate, SMSMessage,
		ScheduledSend, TwilioAccount, User, UserBilling []ent.Hook
	}
	inters struct {
		A2PRegistration, Campaign, CampaignEvent, Contact, MessageTemplate, SMSMessage,
		ScheduledSend, TwilioAccount, User, UserBilling []ent.Interceptor
	}
)
