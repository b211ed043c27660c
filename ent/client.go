// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/lessonq/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonq/ent/progressdoc"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ProgressDoc is the client for interacting with the ProgressDoc builders.
	ProgressDoc *ProgressDocClient
	// ScheduleEvent is the client for interacting with the ScheduleEvent builders.
	ScheduleEvent *ScheduleEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ProgressDoc = NewProgressDocClient(c.config)
	c.ScheduleEvent = NewScheduleEventClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ProgressDoc:   NewProgressDocClient(cfg),
		ScheduleEvent: NewScheduleEventClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ProgressDoc:   NewProgressDocClient(cfg),
		ScheduleEvent: NewScheduleEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ProgressDoc.
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
	c.ProgressDoc.Use(hooks...)
	c.ScheduleEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ProgressDoc.Intercept(interceptors...)
	c.ScheduleEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ProgressDocMutation:
		return c.ProgressDoc.mutate(ctx, m)
	case *ScheduleEventMutation:
		return c.ScheduleEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ProgressDocClient is a client for the ProgressDoc schema.
type ProgressDocClient struct {
	config
}

// NewProgressDocClient returns a client for the ProgressDoc from the given config.
func NewProgressDocClient(c config) *ProgressDocClient {
	return &ProgressDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressdoc.Hooks(f(g(h())))`.
func (c *ProgressDocClient) Use(hooks ...Hook) {
	c.hooks.ProgressDoc = append(c.hooks.ProgressDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressdoc.Intercept(f(g(h())))`.
func (c *ProgressDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressDoc = append(c.inters.ProgressDoc, interceptors...)
}

// Create returns a builder for creating a ProgressDoc entity.
func (c *ProgressDocClient) Create() *ProgressDocCreate {
	mutation := newProgressDocMutation(c.config, OpCreate)
	return &ProgressDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressDoc entities.
func (c *ProgressDocClient) CreateBulk(builders ...*ProgressDocCreate) *ProgressDocCreateBulk {
	return &ProgressDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressDocClient) MapCreateBulk(slice any, setFunc func(*ProgressDocCreate, int)) *ProgressDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressDocCreateBulk{err: fmt.Errorf("calling to ProgressDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressDoc.
func (c *ProgressDocClient) Update() *ProgressDocUpdate {
	mutation := newProgressDocMutation(c.config, OpUpdate)
	return &ProgressDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressDocClient) UpdateOne(_m *ProgressDoc) *ProgressDocUpdateOne {
	mutation := newProgressDocMutation(c.config, OpUpdateOne, withProgressDoc(_m))
	return &ProgressDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressDocClient) UpdateOneID(id int) *ProgressDocUpdateOne {
	mutation := newProgressDocMutation(c.config, OpUpdateOne, withProgressDocID(id))
	return &ProgressDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressDoc.
func (c *ProgressDocClient) Delete() *ProgressDocDelete {
	mutation := newProgressDocMutation(c.config, OpDelete)
	return &ProgressDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressDocClient) DeleteOne(_m *ProgressDoc) *ProgressDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressDocClient) DeleteOneID(id int) *ProgressDocDeleteOne {
	builder := c.Delete().Where(progressdoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressDocDeleteOne{builder}
}

// Query returns a query builder for ProgressDoc.
func (c *ProgressDocClient) Query() *ProgressDocQuery {
	return &ProgressDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressDoc entity by its id.
func (c *ProgressDocClient) Get(ctx context.Context, id int) (*ProgressDoc, error) {
	return c.Query().Where(progressdoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressDocClient) GetX(ctx context.Context, id int) *ProgressDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressDocClient) Hooks() []Hook {
	return c.hooks.ProgressDoc
}

// Interceptors returns the client interceptors.
func (c *ProgressDocClient) Interceptors() []Interceptor {
	return c.inters.ProgressDoc
}

func (c *ProgressDocClient) mutate(ctx context.Context, m *ProgressDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressDoc mutation op: %q", m.Op())
	}
}

// ScheduleEventClient is a client for the ScheduleEvent schema.
type ScheduleEventClient struct {
	config
}

// NewScheduleEventClient returns a client for the ScheduleEvent from the given config.
func NewScheduleEventClient(c config) *ScheduleEventClient {
	return &ScheduleEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduleevent.Hooks(f(g(h())))`.
func (c *ScheduleEventClient) Use(hooks ...Hook) {
	c.hooks.ScheduleEvent = append(c.hooks.ScheduleEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduleevent.Intercept(f(g(h())))`.
func (c *ScheduleEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleEvent = append(c.inters.ScheduleEvent, interceptors...)
}

// Create returns a builder for creating a ScheduleEvent entity.
func (c *ScheduleEventClient) Create() *ScheduleEventCreate {
	mutation := newScheduleEventMutation(c.config, OpCreate)
	return &ScheduleEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleEvent entities.
func (c *ScheduleEventClient) CreateBulk(builders ...*ScheduleEventCreate) *ScheduleEventCreateBulk {
	return &ScheduleEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleEventClient) MapCreateBulk(slice any, setFunc func(*ScheduleEventCreate, int)) *ScheduleEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleEventCreateBulk{err: fmt.Errorf("calling to ScheduleEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleEvent.
func (c *ScheduleEventClient) Update() *ScheduleEventUpdate {
	mutation := newScheduleEventMutation(c.config, OpUpdate)
	return &ScheduleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleEventClient) UpdateOne(_m *ScheduleEvent) *ScheduleEventUpdateOne {
	mutation := newScheduleEventMutation(c.config, OpUpdateOne, withScheduleEvent(_m))
	return &ScheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleEventClient) UpdateOneID(id int) *ScheduleEventUpdateOne {
	mutation := newScheduleEventMutation(c.config, OpUpdateOne, withScheduleEventID(id))
	return &ScheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleEvent.
func (c *ScheduleEventClient) Delete() *ScheduleEventDelete {
	mutation := newScheduleEventMutation(c.config, OpDelete)
	return &ScheduleEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleEventClient) DeleteOne(_m *ScheduleEvent) *ScheduleEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleEventClient) DeleteOneID(id int) *ScheduleEventDeleteOne {
	builder := c.Delete().Where(scheduleevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleEventDeleteOne{builder}
}

// Query returns a query builder for ScheduleEvent.
func (c *ScheduleEventClient) Query() *ScheduleEventQuery {
	return &ScheduleEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleEvent entity by its id.
func (c *ScheduleEventClient) Get(ctx context.Context, id int) (*ScheduleEvent, error) {
	return c.Query().Where(scheduleevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleEventClient) GetX(ctx context.Context, id int) *ScheduleEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleEventClient) Hooks() []Hook {
	return c.hooks.ScheduleEvent
}

// Interceptors returns the client interceptors.
func (c *ScheduleEventClient) Interceptors() []Interceptor {
	return c.inters.ScheduleEvent
}

func (c *ScheduleEventClient) mutate(ctx context.Context, m *ScheduleEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduleEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ProgressDoc, ScheduleEvent []ent.Hook
	}
	inters struct {
		ProgressDoc, ScheduleEvent []ent.Interceptor
	}
)
