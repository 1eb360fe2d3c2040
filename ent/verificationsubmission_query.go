// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// VerificationSubmissionQuery is the builder for querying VerificationSubmission entities.
type VerificationSubmissionQuery struct {
	config
	ctx                 *QueryContext
	order               []verificationsubmission.OrderOption
	inters              []Interceptor
	predicates          []predicate.VerificationSubmission
	withStoredDocuments *StoredDocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VerificationSubmissionQuery builder.
func (vsq *VerificationSubmissionQuery) Where(ps ...predicate.VerificationSubmission) *VerificationSubmissionQuery {
	vsq.predicates = append(vsq.predicates, ps...)
	return vsq
}

// Limit the number of records to be returned by this query.
func (vsq *VerificationSubmissionQuery) Limit(limit int) *VerificationSubmissionQuery {
	vsq.ctx.Limit = &limit
	return vsq
}

// Offset to start from.
func (vsq *VerificationSubmissionQuery) Offset(offset int) *VerificationSubmissionQuery {
	vsq.ctx.Offset = &offset
	return vsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (vsq *VerificationSubmissionQuery) Unique(unique bool) *VerificationSubmissionQuery {
	vsq.ctx.Unique = &unique
	return vsq
}

// Order specifies how the records should be ordered.
func (vsq *VerificationSubmissionQuery) Order(o ...verificationsubmission.OrderOption) *VerificationSubmissionQuery {
	vsq.order = append(vsq.order, o...)
	return vsq
}

// QueryStoredDocuments chains the current query on the "stored_documents" edge.
func (vsq *VerificationSubmissionQuery) QueryStoredDocuments() *StoredDocumentQuery {
	query := (&StoredDocumentClient{config: vsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := vsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := vsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationsubmission.Table, verificationsubmission.FieldID, selector),
			sqlgraph.To(storeddocument.Table, storeddocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verificationsubmission.StoredDocumentsTable, verificationsubmission.StoredDocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(vsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VerificationSubmission entity from the query.
// Returns a *NotFoundError when no VerificationSubmission was found.
func (vsq *VerificationSubmissionQuery) First(ctx context.Context) (*VerificationSubmission, error) {
	nodes, err := vsq.Limit(1).All(setContextOp(ctx, vsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{verificationsubmission.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) FirstX(ctx context.Context) *VerificationSubmission {
	node, err := vsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VerificationSubmission ID from the query.
// Returns a *NotFoundError when no VerificationSubmission ID was found.
func (vsq *VerificationSubmissionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = vsq.Limit(1).IDs(setContextOp(ctx, vsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{verificationsubmission.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := vsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VerificationSubmission entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VerificationSubmission entity is found.
// Returns a *NotFoundError when no VerificationSubmission entities are found.
func (vsq *VerificationSubmissionQuery) Only(ctx context.Context) (*VerificationSubmission, error) {
	nodes, err := vsq.Limit(2).All(setContextOp(ctx, vsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{verificationsubmission.Label}
	default:
		return nil, &NotSingularError{verificationsubmission.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) OnlyX(ctx context.Context) *VerificationSubmission {
	node, err := vsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VerificationSubmission ID in the query.
// Returns a *NotSingularError when more than one VerificationSubmission ID is found.
// Returns a *NotFoundError when no entities are found.
func (vsq *VerificationSubmissionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = vsq.Limit(2).IDs(setContextOp(ctx, vsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{verificationsubmission.Label}
	default:
		err = &NotSingularError{verificationsubmission.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := vsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VerificationSubmissions.
func (vsq *VerificationSubmissionQuery) All(ctx context.Context) ([]*VerificationSubmission, error) {
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryAll)
	if err := vsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VerificationSubmission, *VerificationSubmissionQuery]()
	return withInterceptors[[]*VerificationSubmission](ctx, vsq, qr, vsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) AllX(ctx context.Context) []*VerificationSubmission {
	nodes, err := vsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VerificationSubmission IDs.
func (vsq *VerificationSubmissionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if vsq.ctx.Unique == nil && vsq.path != nil {
		vsq.Unique(true)
	}
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryIDs)
	if err = vsq.Select(verificationsubmission.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := vsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (vsq *VerificationSubmissionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryCount)
	if err := vsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, vsq, querierCount[*VerificationSubmissionQuery](), vsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) CountX(ctx context.Context) int {
	count, err := vsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (vsq *VerificationSubmissionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, vsq.ctx, ent.OpQueryExist)
	switch _, err := vsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (vsq *VerificationSubmissionQuery) ExistX(ctx context.Context) bool {
	exist, err := vsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VerificationSubmissionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (vsq *VerificationSubmissionQuery) Clone() *VerificationSubmissionQuery {
	if vsq == nil {
		return nil
	}
	return &VerificationSubmissionQuery{
		config:              vsq.config,
		ctx:                 vsq.ctx.Clone(),
		order:               append([]verificationsubmission.OrderOption{}, vsq.order...),
		inters:              append([]Interceptor{}, vsq.inters...),
		predicates:          append([]predicate.VerificationSubmission{}, vsq.predicates...),
		withStoredDocuments: vsq.withStoredDocuments.Clone(),
		// clone intermediate query.
		sql:  vsq.sql.Clone(),
		path: vsq.path,
	}
}

// WithStoredDocuments tells the query-builder to eager-load the nodes that are connected to
// the "stored_documents" edge. The optional arguments are used to configure the query builder of the edge.
func (vsq *VerificationSubmissionQuery) WithStoredDocuments(opts ...func(*StoredDocumentQuery)) *VerificationSubmissionQuery {
	query := (&StoredDocumentClient{config: vsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	vsq.withStoredDocuments = query
	return vsq
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
//	client.VerificationSubmission.Query().
//		GroupBy(verificationsubmission.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (vsq *VerificationSubmissionQuery) GroupBy(field string, fields ...string) *VerificationSubmissionGroupBy {
	vsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VerificationSubmissionGroupBy{build: vsq}
	grbuild.flds = &vsq.ctx.Fields
	grbuild.label = verificationsubmission.Label
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
//	client.VerificationSubmission.Query().
//		Select(verificationsubmission.FieldCreatedAt).
//		Scan(ctx, &v)
func (vsq *VerificationSubmissionQuery) Select(fields ...string) *VerificationSubmissionSelect {
	vsq.ctx.Fields = append(vsq.ctx.Fields, fields...)
	sbuild := &VerificationSubmissionSelect{VerificationSubmissionQuery: vsq}
	sbuild.label = verificationsubmission.Label
	sbuild.flds, sbuild.scan = &vsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VerificationSubmissionSelect configured with the given aggregations.
func (vsq *VerificationSubmissionQuery) Aggregate(fns ...AggregateFunc) *VerificationSubmissionSelect {
	return vsq.Select().Aggregate(fns...)
}

func (vsq *VerificationSubmissionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range vsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, vsq); err != nil {
				return err
			}
		}
	}
	for _, f := range vsq.ctx.Fields {
		if !verificationsubmission.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if vsq.path != nil {
		prev, err := vsq.path(ctx)
		if err != nil {
			return err
		}
		vsq.sql = prev
	}
	return nil
}

func (vsq *VerificationSubmissionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VerificationSubmission, error) {
	var (
		nodes       = []*VerificationSubmission{}
		_spec       = vsq.querySpec()
		loadedTypes = [1]bool{
			vsq.withStoredDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VerificationSubmission).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VerificationSubmission{config: vsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, vsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := vsq.withStoredDocuments; query != nil {
		if err := vsq.loadStoredDocuments(ctx, query, nodes,
			func(n *VerificationSubmission) { n.Edges.StoredDocuments = []*StoredDocument{} },
			func(n *VerificationSubmission, e *StoredDocument) {
				n.Edges.StoredDocuments = append(n.Edges.StoredDocuments, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (vsq *VerificationSubmissionQuery) loadStoredDocuments(ctx context.Context, query *StoredDocumentQuery, nodes []*VerificationSubmission, init func(*VerificationSubmission), assign func(*VerificationSubmission, *StoredDocument)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*VerificationSubmission)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.StoredDocument(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(verificationsubmission.StoredDocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.verification_submission_stored_documents
		if fk == nil {
			return fmt.Errorf(`foreign-key "verification_submission_stored_documents" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "verification_submission_stored_documents" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (vsq *VerificationSubmissionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := vsq.querySpec()
	_spec.Node.Columns = vsq.ctx.Fields
	if len(vsq.ctx.Fields) > 0 {
		_spec.Unique = vsq.ctx.Unique != nil && *vsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, vsq.driver, _spec)
}

func (vsq *VerificationSubmissionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(verificationsubmission.Table, verificationsubmission.Columns, sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID))
	_spec.From = vsq.sql
	if unique := vsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if vsq.path != nil {
		_spec.Unique = true
	}
	if fields := vsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationsubmission.FieldID)
		for i := range fields {
			if fields[i] != verificationsubmission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := vsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := vsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := vsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := vsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (vsq *VerificationSubmissionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(vsq.driver.Dialect())
	t1 := builder.Table(verificationsubmission.Table)
	columns := vsq.ctx.Fields
	if len(columns) == 0 {
		columns = verificationsubmission.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if vsq.sql != nil {
		selector = vsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if vsq.ctx.Unique != nil && *vsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range vsq.predicates {
		p(selector)
	}
	for _, p := range vsq.order {
		p(selector)
	}
	if offset := vsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := vsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VerificationSubmissionGroupBy is the group-by builder for VerificationSubmission entities.
type VerificationSubmissionGroupBy struct {
	selector
	build *VerificationSubmissionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vsgb *VerificationSubmissionGroupBy) Aggregate(fns ...AggregateFunc) *VerificationSubmissionGroupBy {
	vsgb.fns = append(vsgb.fns, fns...)
	return vsgb
}

// Scan applies the selector query and scans the result into the given value.
func (vsgb *VerificationSubmissionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vsgb.build.ctx, ent.OpQueryGroupBy)
	if err := vsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VerificationSubmissionQuery, *VerificationSubmissionGroupBy](ctx, vsgb.build, vsgb, vsgb.build.inters, v)
}

func (vsgb *VerificationSubmissionGroupBy) sqlScan(ctx context.Context, root *VerificationSubmissionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vsgb.fns))
	for _, fn := range vsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vsgb.flds)+len(vsgb.fns))
		for _, f := range *vsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VerificationSubmissionSelect is the builder for selecting fields of VerificationSubmission entities.
type VerificationSubmissionSelect struct {
	*VerificationSubmissionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (vss *VerificationSubmissionSelect) Aggregate(fns ...AggregateFunc) *VerificationSubmissionSelect {
	vss.fns = append(vss.fns, fns...)
	return vss
}

// Scan applies the selector query and scans the result into the given value.
func (vss *VerificationSubmissionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vss.ctx, ent.OpQuerySelect)
	if err := vss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VerificationSubmissionQuery, *VerificationSubmissionSelect](ctx, vss.VerificationSubmissionQuery, vss, vss.inters, v)
}

func (vss *VerificationSubmissionSelect) sqlScan(ctx context.Context, root *VerificationSubmissionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(vss.fns))
	for _, fn := range vss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*vss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
