// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// StoredDocumentQuery is the builder for querying StoredDocument entities.
type StoredDocumentQuery struct {
	config
	ctx            *QueryContext
	order          []storeddocument.OrderOption
	inters         []Interceptor
	predicates     []predicate.StoredDocument
	withSubmission *VerificationSubmissionQuery
	withFKs        bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the StoredDocumentQuery builder.
func (sdq *StoredDocumentQuery) Where(ps ...predicate.StoredDocument) *StoredDocumentQuery {
	sdq.predicates = append(sdq.predicates, ps...)
	return sdq
}

// Limit the number of records to be returned by this query.
func (sdq *StoredDocumentQuery) Limit(limit int) *StoredDocumentQuery {
	sdq.ctx.Limit = &limit
	return sdq
}

// Offset to start from.
func (sdq *StoredDocumentQuery) Offset(offset int) *StoredDocumentQuery {
	sdq.ctx.Offset = &offset
	return sdq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (sdq *StoredDocumentQuery) Unique(unique bool) *StoredDocumentQuery {
	sdq.ctx.Unique = &unique
	return sdq
}

// Order specifies how the records should be ordered.
func (sdq *StoredDocumentQuery) Order(o ...storeddocument.OrderOption) *StoredDocumentQuery {
	sdq.order = append(sdq.order, o...)
	return sdq
}

// QuerySubmission chains the current query on the "submission" edge.
func (sdq *StoredDocumentQuery) QuerySubmission() *VerificationSubmissionQuery {
	query := (&VerificationSubmissionClient{config: sdq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := sdq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := sdq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(storeddocument.Table, storeddocument.FieldID, selector),
			sqlgraph.To(verificationsubmission.Table, verificationsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, storeddocument.SubmissionTable, storeddocument.SubmissionColumn),
		)
		fromU = sqlgraph.SetNeighbors(sdq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first StoredDocument entity from the query.
// Returns a *NotFoundError when no StoredDocument was found.
func (sdq *StoredDocumentQuery) First(ctx context.Context) (*StoredDocument, error) {
	nodes, err := sdq.Limit(1).All(setContextOp(ctx, sdq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{storeddocument.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (sdq *StoredDocumentQuery) FirstX(ctx context.Context) *StoredDocument {
	node, err := sdq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first StoredDocument ID from the query.
// Returns a *NotFoundError when no StoredDocument ID was found.
func (sdq *StoredDocumentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = sdq.Limit(1).IDs(setContextOp(ctx, sdq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{storeddocument.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (sdq *StoredDocumentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := sdq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single StoredDocument entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one StoredDocument entity is found.
// Returns a *NotFoundError when no StoredDocument entities are found.
func (sdq *StoredDocumentQuery) Only(ctx context.Context) (*StoredDocument, error) {
	nodes, err := sdq.Limit(2).All(setContextOp(ctx, sdq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{storeddocument.Label}
	default:
		return nil, &NotSingularError{storeddocument.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (sdq *StoredDocumentQuery) OnlyX(ctx context.Context) *StoredDocument {
	node, err := sdq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only StoredDocument ID in the query.
// Returns a *NotSingularError when more than one StoredDocument ID is found.
// Returns a *NotFoundError when no entities are found.
func (sdq *StoredDocumentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = sdq.Limit(2).IDs(setContextOp(ctx, sdq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{storeddocument.Label}
	default:
		err = &NotSingularError{storeddocument.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (sdq *StoredDocumentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := sdq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of StoredDocuments.
func (sdq *StoredDocumentQuery) All(ctx context.Context) ([]*StoredDocument, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryAll)
	if err := sdq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*StoredDocument, *StoredDocumentQuery]()
	return withInterceptors[[]*StoredDocument](ctx, sdq, qr, sdq.inters)
}

// AllX is like All, but panics if an error occurs.
func (sdq *StoredDocumentQuery) AllX(ctx context.Context) []*StoredDocument {
	nodes, err := sdq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of StoredDocument IDs.
func (sdq *StoredDocumentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if sdq.ctx.Unique == nil && sdq.path != nil {
		sdq.Unique(true)
	}
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryIDs)
	if err = sdq.Select(storeddocument.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (sdq *StoredDocumentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := sdq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (sdq *StoredDocumentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryCount)
	if err := sdq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, sdq, querierCount[*StoredDocumentQuery](), sdq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (sdq *StoredDocumentQuery) CountX(ctx context.Context) int {
	count, err := sdq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (sdq *StoredDocumentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryExist)
	switch _, err := sdq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (sdq *StoredDocumentQuery) ExistX(ctx context.Context) bool {
	exist, err := sdq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the StoredDocumentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (sdq *StoredDocumentQuery) Clone() *StoredDocumentQuery {
	if sdq == nil {
		return nil
	}
	return &StoredDocumentQuery{
		config:         sdq.config,
		ctx:            sdq.ctx.Clone(),
		order:          append([]storeddocument.OrderOption{}, sdq.order...),
		inters:         append([]Interceptor{}, sdq.inters...),
		predicates:     append([]predicate.StoredDocument{}, sdq.predicates...),
		withSubmission: sdq.withSubmission.Clone(),
		// clone intermediate query.
		sql:  sdq.sql.Clone(),
		path: sdq.path,
	}
}

// WithSubmission tells the query-builder to eager-load the nodes that are connected to
// the "submission" edge. The optional arguments are used to configure the query builder of the edge.
func (sdq *StoredDocumentQuery) WithSubmission(opts ...func(*VerificationSubmissionQuery)) *StoredDocumentQuery {
	query := (&VerificationSubmissionClient{config: sdq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	sdq.withSubmission = query
	return sdq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.StoredDocument.Query().
//		GroupBy(storeddocument.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (sdq *StoredDocumentQuery) GroupBy(field string, fields ...string) *StoredDocumentGroupBy {
	sdq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &StoredDocumentGroupBy{build: sdq}
	grbuild.flds = &sdq.ctx.Fields
	grbuild.label = storeddocument.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.StoredDocument.Query().
//		Select(storeddocument.FieldCreatedAt).
//		Scan(ctx, &v)
func (sdq *StoredDocumentQuery) Select(fields ...string) *StoredDocumentSelect {
	sdq.ctx.Fields = append(sdq.ctx.Fields, fields...)
	sbuild := &StoredDocumentSelect{StoredDocumentQuery: sdq}
	sbuild.label = storeddocument.Label
	sbuild.flds, sbuild.scan = &sdq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a StoredDocumentSelect configured with the given aggregations.
func (sdq *StoredDocumentQuery) Aggregate(fns ...AggregateFunc) *StoredDocumentSelect {
	return sdq.Select().Aggregate(fns...)
}

func (sdq *StoredDocumentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range sdq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, sdq); err != nil {
				return err
			}
		}
	}
	for _, f := range sdq.ctx.Fields {
		if !storeddocument.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if sdq.path != nil {
		prev, err := sdq.path(ctx)
		if err != nil {
			return err
		}
		sdq.sql = prev
	}
	return nil
}

func (sdq *StoredDocumentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*StoredDocument, error) {
	var (
		nodes       = []*StoredDocument{}
		withFKs     = sdq.withFKs
		_spec       = sdq.querySpec()
		loadedTypes = [1]bool{
			sdq.withSubmission != nil,
		}
	)
	if sdq.withSubmission != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, storeddocument.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*StoredDocument).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &StoredDocument{config: sdq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, sdq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := sdq.withSubmission; query != nil {
		if err := sdq.loadSubmission(ctx, query, nodes, nil,
			func(n *StoredDocument, e *VerificationSubmission) { n.Edges.Submission = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (sdq *StoredDocumentQuery) loadSubmission(ctx context.Context, query *VerificationSubmissionQuery, nodes []*StoredDocument, init func(*StoredDocument), assign func(*StoredDocument, *VerificationSubmission)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*StoredDocument)
	for i := range nodes {
		if nodes[i].verification_submission_stored_documents == nil {
			continue
		}
		fk := *nodes[i].verification_submission_stored_documents
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(verificationsubmission.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "verification_submission_stored_documents" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (sdq *StoredDocumentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := sdq.querySpec()
	_spec.Node.Columns = sdq.ctx.Fields
	if len(sdq.ctx.Fields) > 0 {
		_spec.Unique = sdq.ctx.Unique != nil && *sdq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, sdq.driver, _spec)
}

func (sdq *StoredDocumentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(storeddocument.Table, storeddocument.Columns, sqlgraph.NewFieldSpec(storeddocument.FieldID, field.TypeUUID))
	_spec.From = sdq.sql
	if unique := sdq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if sdq.path != nil {
		_spec.Unique = true
	}
	if fields := sdq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storeddocument.FieldID)
		for i := range fields {
			if fields[i] != storeddocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := sdq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := sdq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := sdq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := sdq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (sdq *StoredDocumentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(sdq.driver.Dialect())
	t1 := builder.Table(storeddocument.Table)
	columns := sdq.ctx.Fields
	if len(columns) == 0 {
		columns = storeddocument.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if sdq.sql != nil {
		selector = sdq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if sdq.ctx.Unique != nil && *sdq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range sdq.predicates {
		p(selector)
	}
	for _, p := range sdq.order {
		p(selector)
	}
	if offset := sdq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := sdq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// StoredDocumentGroupBy is the group-by builder for StoredDocument entities.
type StoredDocumentGroupBy struct {
	selector
	build *StoredDocumentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sdgb *StoredDocumentGroupBy) Aggregate(fns ...AggregateFunc) *StoredDocumentGroupBy {
	sdgb.fns = append(sdgb.fns, fns...)
	return sdgb
}

// Scan applies the selector query and scans the result into the given value.
func (sdgb *StoredDocumentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sdgb.build.ctx, ent.OpQueryGroupBy)
	if err := sdgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StoredDocumentQuery, *StoredDocumentGroupBy](ctx, sdgb.build, sdgb, sdgb.build.inters, v)
}

func (sdgb *StoredDocumentGroupBy) sqlScan(ctx context.Context, root *StoredDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sdgb.fns))
	for _, fn := range sdgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sdgb.flds)+len(sdgb.fns))
		for _, f := range *sdgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sdgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sdgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// StoredDocumentSelect is the builder for selecting fields of StoredDocument entities.
type StoredDocumentSelect struct {
	*StoredDocumentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sds *StoredDocumentSelect) Aggregate(fns ...AggregateFunc) *StoredDocumentSelect {
	sds.fns = append(sds.fns, fns...)
	return sds
}

// Scan applies the selector query and scans the result into the given value.
func (sds *StoredDocumentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sds.ctx, ent.OpQuerySelect)
	if err := sds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StoredDocumentQuery, *StoredDocumentSelect](ctx, sds.StoredDocumentQuery, sds, sds.inters, v)
}

func (sds *StoredDocumentSelect) sqlScan(ctx context.Context, root *StoredDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sds.fns))
	for _, fn := range sds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
