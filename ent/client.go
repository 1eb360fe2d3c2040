// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// StoredDocument is the client for interacting with the StoredDocument builders.
	StoredDocument *StoredDocumentClient
	// VerificationSubmission is the client for interacting with the VerificationSubmission builders.
	VerificationSubmission *VerificationSubmissionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.StoredDocument = NewStoredDocumentClient(c.config)
	c.VerificationSubmission = NewVerificationSubmissionClient(c.config)
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
		ctx:                    ctx,
		config:                 cfg,
		StoredDocument:         NewStoredDocumentClient(cfg),
		VerificationSubmission: NewVerificationSubmissionClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		StoredDocument:         NewStoredDocumentClient(cfg),
		VerificationSubmission: NewVerificationSubmissionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		StoredDocument.
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
	c.StoredDocument.Use(hooks...)
	c.VerificationSubmission.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.StoredDocument.Intercept(interceptors...)
	c.VerificationSubmission.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *StoredDocumentMutation:
		return c.StoredDocument.mutate(ctx, m)
	case *VerificationSubmissionMutation:
		return c.VerificationSubmission.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// StoredDocumentClient is a client for the StoredDocument schema.
type StoredDocumentClient struct {
	config
}

// NewStoredDocumentClient returns a client for the StoredDocument from the given config.
func NewStoredDocumentClient(c config) *StoredDocumentClient {
	return &StoredDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `storeddocument.Hooks(f(g(h())))`.
func (c *StoredDocumentClient) Use(hooks ...Hook) {
	c.hooks.StoredDocument = append(c.hooks.StoredDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `storeddocument.Intercept(f(g(h())))`.
func (c *StoredDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.StoredDocument = append(c.inters.StoredDocument, interceptors...)
}

// Create returns a builder for creating a StoredDocument entity.
func (c *StoredDocumentClient) Create() *StoredDocumentCreate {
	mutation := newStoredDocumentMutation(c.config, OpCreate)
	return &StoredDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StoredDocument entities.
func (c *StoredDocumentClient) CreateBulk(builders ...*StoredDocumentCreate) *StoredDocumentCreateBulk {
	return &StoredDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StoredDocumentClient) MapCreateBulk(slice any, setFunc func(*StoredDocumentCreate, int)) *StoredDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StoredDocumentCreateBulk{err: fmt.Errorf("calling to StoredDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StoredDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StoredDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StoredDocument.
func (c *StoredDocumentClient) Update() *StoredDocumentUpdate {
	mutation := newStoredDocumentMutation(c.config, OpUpdate)
	return &StoredDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StoredDocumentClient) UpdateOne(sd *StoredDocument) *StoredDocumentUpdateOne {
	mutation := newStoredDocumentMutation(c.config, OpUpdateOne, withStoredDocument(sd))
	return &StoredDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StoredDocumentClient) UpdateOneID(id uuid.UUID) *StoredDocumentUpdateOne {
	mutation := newStoredDocumentMutation(c.config, OpUpdateOne, withStoredDocumentID(id))
	return &StoredDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StoredDocument.
func (c *StoredDocumentClient) Delete() *StoredDocumentDelete {
	mutation := newStoredDocumentMutation(c.config, OpDelete)
	return &StoredDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StoredDocumentClient) DeleteOne(sd *StoredDocument) *StoredDocumentDeleteOne {
	return c.DeleteOneID(sd.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StoredDocumentClient) DeleteOneID(id uuid.UUID) *StoredDocumentDeleteOne {
	builder := c.Delete().Where(storeddocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StoredDocumentDeleteOne{builder}
}

// Query returns a query builder for StoredDocument.
func (c *StoredDocumentClient) Query() *StoredDocumentQuery {
	return &StoredDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStoredDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a StoredDocument entity by its id.
func (c *StoredDocumentClient) Get(ctx context.Context, id uuid.UUID) (*StoredDocument, error) {
	return c.Query().Where(storeddocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StoredDocumentClient) GetX(ctx context.Context, id uuid.UUID) *StoredDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a StoredDocument.
func (c *StoredDocumentClient) QuerySubmission(sd *StoredDocument) *VerificationSubmissionQuery {
	query := (&VerificationSubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sd.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(storeddocument.Table, storeddocument.FieldID, id),
			sqlgraph.To(verificationsubmission.Table, verificationsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, storeddocument.SubmissionTable, storeddocument.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(sd.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StoredDocumentClient) Hooks() []Hook {
	return c.hooks.StoredDocument
}

// Interceptors returns the client interceptors.
func (c *StoredDocumentClient) Interceptors() []Interceptor {
	return c.inters.StoredDocument
}

func (c *StoredDocumentClient) mutate(ctx context.Context, m *StoredDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StoredDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StoredDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StoredDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StoredDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StoredDocument mutation op: %q", m.Op())
	}
}

// VerificationSubmissionClient is a client for the VerificationSubmission schema.
type VerificationSubmissionClient struct {
	config
}

// NewVerificationSubmissionClient returns a client for the VerificationSubmission from the given config.
func NewVerificationSubmissionClient(c config) *VerificationSubmissionClient {
	return &VerificationSubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationsubmission.Hooks(f(g(h())))`.
func (c *VerificationSubmissionClient) Use(hooks ...Hook) {
	c.hooks.VerificationSubmission = append(c.hooks.VerificationSubmission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationsubmission.Intercept(f(g(h())))`.
func (c *VerificationSubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationSubmission = append(c.inters.VerificationSubmission, interceptors...)
}

// Create returns a builder for creating a VerificationSubmission entity.
func (c *VerificationSubmissionClient) Create() *VerificationSubmissionCreate {
	mutation := newVerificationSubmissionMutation(c.config, OpCreate)
	return &VerificationSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationSubmission entities.
func (c *VerificationSubmissionClient) CreateBulk(builders ...*VerificationSubmissionCreate) *VerificationSubmissionCreateBulk {
	return &VerificationSubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationSubmissionClient) MapCreateBulk(slice any, setFunc func(*VerificationSubmissionCreate, int)) *VerificationSubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationSubmissionCreateBulk{err: fmt.Errorf("calling to VerificationSubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationSubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationSubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationSubmission.
func (c *VerificationSubmissionClient) Update() *VerificationSubmissionUpdate {
	mutation := newVerificationSubmissionMutation(c.config, OpUpdate)
	return &VerificationSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationSubmissionClient) UpdateOne(vs *VerificationSubmission) *VerificationSubmissionUpdateOne {
	mutation := newVerificationSubmissionMutation(c.config, OpUpdateOne, withVerificationSubmission(vs))
	return &VerificationSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationSubmissionClient) UpdateOneID(id uuid.UUID) *VerificationSubmissionUpdateOne {
	mutation := newVerificationSubmissionMutation(c.config, OpUpdateOne, withVerificationSubmissionID(id))
	return &VerificationSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationSubmission.
func (c *VerificationSubmissionClient) Delete() *VerificationSubmissionDelete {
	mutation := newVerificationSubmissionMutation(c.config, OpDelete)
	return &VerificationSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationSubmissionClient) DeleteOne(vs *VerificationSubmission) *VerificationSubmissionDeleteOne {
	return c.DeleteOneID(vs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationSubmissionClient) DeleteOneID(id uuid.UUID) *VerificationSubmissionDeleteOne {
	builder := c.Delete().Where(verificationsubmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationSubmissionDeleteOne{builder}
}

// Query returns a query builder for VerificationSubmission.
func (c *VerificationSubmissionClient) Query() *VerificationSubmissionQuery {
	return &VerificationSubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationSubmission entity by its id.
func (c *VerificationSubmissionClient) Get(ctx context.Context, id uuid.UUID) (*VerificationSubmission, error) {
	return c.Query().Where(verificationsubmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationSubmissionClient) GetX(ctx context.Context, id uuid.UUID) *VerificationSubmission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStoredDocuments queries the stored_documents edge of a VerificationSubmission.
func (c *VerificationSubmissionClient) QueryStoredDocuments(vs *VerificationSubmission) *StoredDocumentQuery {
	query := (&StoredDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := vs.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationsubmission.Table, verificationsubmission.FieldID, id),
			sqlgraph.To(storeddocument.Table, storeddocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verificationsubmission.StoredDocumentsTable, verificationsubmission.StoredDocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(vs.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationSubmissionClient) Hooks() []Hook {
	return c.hooks.VerificationSubmission
}

// Interceptors returns the client interceptors.
func (c *VerificationSubmissionClient) Interceptors() []Interceptor {
	return c.inters.VerificationSubmission
}

func (c *VerificationSubmissionClient) mutate(ctx context.Context, m *VerificationSubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationSubmission mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		StoredDocument, VerificationSubmission []ent.Hook
	}
	inters struct {
		StoredDocument, VerificationSubmission []ent.Interceptor
	}
)
