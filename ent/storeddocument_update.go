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
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// StoredDocumentUpdate is the builder for updating StoredDocument entities.
type StoredDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *StoredDocumentMutation
}

// Where appends a list predicates to the StoredDocumentUpdate builder.
func (sdu *StoredDocumentUpdate) Where(ps ...predicate.StoredDocument) *StoredDocumentUpdate {
	sdu.mutation.Where(ps...)
	return sdu
}

// SetUpdatedAt sets the "updated_at" field.
func (sdu *StoredDocumentUpdate) SetUpdatedAt(t time.Time) *StoredDocumentUpdate {
	sdu.mutation.SetUpdatedAt(t)
	return sdu
}

// SetCategory sets the "category" field.
func (sdu *StoredDocumentUpdate) SetCategory(s string) *StoredDocumentUpdate {
	sdu.mutation.SetCategory(s)
	return sdu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableCategory(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetCategory(*s)
	}
	return sdu
}

// SetStoragePath sets the "storage_path" field.
func (sdu *StoredDocumentUpdate) SetStoragePath(s string) *StoredDocumentUpdate {
	sdu.mutation.SetStoragePath(s)
	return sdu
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableStoragePath(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetStoragePath(*s)
	}
	return sdu
}

// SetOriginalName sets the "original_name" field.
func (sdu *StoredDocumentUpdate) SetOriginalName(s string) *StoredDocumentUpdate {
	sdu.mutation.SetOriginalName(s)
	return sdu
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableOriginalName(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetOriginalName(*s)
	}
	return sdu
}

// SetMimeType sets the "mime_type" field.
func (sdu *StoredDocumentUpdate) SetMimeType(s string) *StoredDocumentUpdate {
	sdu.mutation.SetMimeType(s)
	return sdu
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableMimeType(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetMimeType(*s)
	}
	return sdu
}

// SetSizeBytes sets the "size_bytes" field.
func (sdu *StoredDocumentUpdate) SetSizeBytes(i int64) *StoredDocumentUpdate {
	sdu.mutation.ResetSizeBytes()
	sdu.mutation.SetSizeBytes(i)
	return sdu
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableSizeBytes(i *int64) *StoredDocumentUpdate {
	if i != nil {
		sdu.SetSizeBytes(*i)
	}
	return sdu
}

// AddSizeBytes adds i to the "size_bytes" field.
func (sdu *StoredDocumentUpdate) AddSizeBytes(i int64) *StoredDocumentUpdate {
	sdu.mutation.AddSizeBytes(i)
	return sdu
}

// SetSide sets the "side" field.
func (sdu *StoredDocumentUpdate) SetSide(s storeddocument.Side) *StoredDocumentUpdate {
	sdu.mutation.SetSide(s)
	return sdu
}

// SetNillableSide sets the "side" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableSide(s *storeddocument.Side) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetSide(*s)
	}
	return sdu
}

// ClearSide clears the value of the "side" field.
func (sdu *StoredDocumentUpdate) ClearSide() *StoredDocumentUpdate {
	sdu.mutation.ClearSide()
	return sdu
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (sdu *StoredDocumentUpdate) SetSourceFieldReference(s string) *StoredDocumentUpdate {
	sdu.mutation.SetSourceFieldReference(s)
	return sdu
}

// SetNillableSourceFieldReference sets the "source_field_reference" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableSourceFieldReference(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetSourceFieldReference(*s)
	}
	return sdu
}

// ClearSourceFieldReference clears the value of the "source_field_reference" field.
func (sdu *StoredDocumentUpdate) ClearSourceFieldReference() *StoredDocumentUpdate {
	sdu.mutation.ClearSourceFieldReference()
	return sdu
}

// SetIssuingCountry sets the "issuing_country" field.
func (sdu *StoredDocumentUpdate) SetIssuingCountry(s string) *StoredDocumentUpdate {
	sdu.mutation.SetIssuingCountry(s)
	return sdu
}

// SetNillableIssuingCountry sets the "issuing_country" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableIssuingCountry(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetIssuingCountry(*s)
	}
	return sdu
}

// ClearIssuingCountry clears the value of the "issuing_country" field.
func (sdu *StoredDocumentUpdate) ClearIssuingCountry() *StoredDocumentUpdate {
	sdu.mutation.ClearIssuingCountry()
	return sdu
}

// SetStatus sets the "status" field.
func (sdu *StoredDocumentUpdate) SetStatus(s storeddocument.Status) *StoredDocumentUpdate {
	sdu.mutation.SetStatus(s)
	return sdu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableStatus(s *storeddocument.Status) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetStatus(*s)
	}
	return sdu
}

// SetRejectionReason sets the "rejection_reason" field.
func (sdu *StoredDocumentUpdate) SetRejectionReason(s string) *StoredDocumentUpdate {
	sdu.mutation.SetRejectionReason(s)
	return sdu
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (sdu *StoredDocumentUpdate) SetNillableRejectionReason(s *string) *StoredDocumentUpdate {
	if s != nil {
		sdu.SetRejectionReason(*s)
	}
	return sdu
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (sdu *StoredDocumentUpdate) ClearRejectionReason() *StoredDocumentUpdate {
	sdu.mutation.ClearRejectionReason()
	return sdu
}

// SetSubmissionID sets the "submission" edge to the VerificationSubmission entity by ID.
func (sdu *StoredDocumentUpdate) SetSubmissionID(id uuid.UUID) *StoredDocumentUpdate {
	sdu.mutation.SetSubmissionID(id)
	return sdu
}

// SetSubmission sets the "submission" edge to the VerificationSubmission entity.
func (sdu *StoredDocumentUpdate) SetSubmission(v *VerificationSubmission) *StoredDocumentUpdate {
	return sdu.SetSubmissionID(v.ID)
}

// Mutation returns the StoredDocumentMutation object of the builder.
func (sdu *StoredDocumentUpdate) Mutation() *StoredDocumentMutation {
	return sdu.mutation
}

// ClearSubmission clears the "submission" edge to the VerificationSubmission entity.
func (sdu *StoredDocumentUpdate) ClearSubmission() *StoredDocumentUpdate {
	sdu.mutation.ClearSubmission()
	return sdu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sdu *StoredDocumentUpdate) Save(ctx context.Context) (int, error) {
	sdu.defaults()
	return withHooks(ctx, sdu.sqlSave, sdu.mutation, sdu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sdu *StoredDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := sdu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sdu *StoredDocumentUpdate) Exec(ctx context.Context) error {
	_, err := sdu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdu *StoredDocumentUpdate) ExecX(ctx context.Context) {
	if err := sdu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sdu *StoredDocumentUpdate) defaults() {
	if _, ok := sdu.mutation.UpdatedAt(); !ok {
		v := storeddocument.UpdateDefaultUpdatedAt()
		sdu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sdu *StoredDocumentUpdate) check() error {
	if v, ok := sdu.mutation.Side(); ok {
		if err := storeddocument.SideValidator(v); err != nil {
			return &ValidationError{Name: "side", err: fmt.Errorf(`ent: validator failed for field "StoredDocument.side": %w`, err)}
		}
	}
	if v, ok := sdu.mutation.Status(); ok {
		if err := storeddocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoredDocument.status": %w`, err)}
		}
	}
	if sdu.mutation.SubmissionCleared() && len(sdu.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoredDocument.submission"`)
	}
	return nil
}

func (sdu *StoredDocumentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sdu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(storeddocument.Table, storeddocument.Columns, sqlgraph.NewFieldSpec(storeddocument.FieldID, field.TypeUUID))
	if ps := sdu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sdu.mutation.UpdatedAt(); ok {
		_spec.SetField(storeddocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := sdu.mutation.Category(); ok {
		_spec.SetField(storeddocument.FieldCategory, field.TypeString, value)
	}
	if value, ok := sdu.mutation.StoragePath(); ok {
		_spec.SetField(storeddocument.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := sdu.mutation.OriginalName(); ok {
		_spec.SetField(storeddocument.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := sdu.mutation.MimeType(); ok {
		_spec.SetField(storeddocument.FieldMimeType, field.TypeString, value)
	}
	if value, ok := sdu.mutation.SizeBytes(); ok {
		_spec.SetField(storeddocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := sdu.mutation.AddedSizeBytes(); ok {
		_spec.AddField(storeddocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := sdu.mutation.Side(); ok {
		_spec.SetField(storeddocument.FieldSide, field.TypeEnum, value)
	}
	if sdu.mutation.SideCleared() {
		_spec.ClearField(storeddocument.FieldSide, field.TypeEnum)
	}
	if value, ok := sdu.mutation.SourceFieldReference(); ok {
		_spec.SetField(storeddocument.FieldSourceFieldReference, field.TypeString, value)
	}
	if sdu.mutation.SourceFieldReferenceCleared() {
		_spec.ClearField(storeddocument.FieldSourceFieldReference, field.TypeString)
	}
	if value, ok := sdu.mutation.IssuingCountry(); ok {
		_spec.SetField(storeddocument.FieldIssuingCountry, field.TypeString, value)
	}
	if sdu.mutation.IssuingCountryCleared() {
		_spec.ClearField(storeddocument.FieldIssuingCountry, field.TypeString)
	}
	if value, ok := sdu.mutation.Status(); ok {
		_spec.SetField(storeddocument.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := sdu.mutation.RejectionReason(); ok {
		_spec.SetField(storeddocument.FieldRejectionReason, field.TypeString, value)
	}
	if sdu.mutation.RejectionReasonCleared() {
		_spec.ClearField(storeddocument.FieldRejectionReason, field.TypeString)
	}
	if sdu.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storeddocument.SubmissionTable,
			Columns: []string{storeddocument.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sdu.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storeddocument.SubmissionTable,
			Columns: []string{storeddocument.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sdu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storeddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sdu.mutation.done = true
	return n, nil
}

// StoredDocumentUpdateOne is the builder for updating a single StoredDocument entity.
type StoredDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoredDocumentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (sduo *StoredDocumentUpdateOne) SetUpdatedAt(t time.Time) *StoredDocumentUpdateOne {
	sduo.mutation.SetUpdatedAt(t)
	return sduo
}

// SetCategory sets the "category" field.
func (sduo *StoredDocumentUpdateOne) SetCategory(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetCategory(s)
	return sduo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableCategory(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetCategory(*s)
	}
	return sduo
}

// SetStoragePath sets the "storage_path" field.
func (sduo *StoredDocumentUpdateOne) SetStoragePath(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetStoragePath(s)
	return sduo
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableStoragePath(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetStoragePath(*s)
	}
	return sduo
}

// SetOriginalName sets the "original_name" field.
func (sduo *StoredDocumentUpdateOne) SetOriginalName(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetOriginalName(s)
	return sduo
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableOriginalName(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetOriginalName(*s)
	}
	return sduo
}

// SetMimeType sets the "mime_type" field.
func (sduo *StoredDocumentUpdateOne) SetMimeType(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetMimeType(s)
	return sduo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableMimeType(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetMimeType(*s)
	}
	return sduo
}

// SetSizeBytes sets the "size_bytes" field.
func (sduo *StoredDocumentUpdateOne) SetSizeBytes(i int64) *StoredDocumentUpdateOne {
	sduo.mutation.ResetSizeBytes()
	sduo.mutation.SetSizeBytes(i)
	return sduo
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableSizeBytes(i *int64) *StoredDocumentUpdateOne {
	if i != nil {
		sduo.SetSizeBytes(*i)
	}
	return sduo
}

// AddSizeBytes adds i to the "size_bytes" field.
func (sduo *StoredDocumentUpdateOne) AddSizeBytes(i int64) *StoredDocumentUpdateOne {
	sduo.mutation.AddSizeBytes(i)
	return sduo
}

// SetSide sets the "side" field.
func (sduo *StoredDocumentUpdateOne) SetSide(s storeddocument.Side) *StoredDocumentUpdateOne {
	sduo.mutation.SetSide(s)
	return sduo
}

// SetNillableSide sets the "side" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableSide(s *storeddocument.Side) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetSide(*s)
	}
	return sduo
}

// ClearSide clears the value of the "side" field.
func (sduo *StoredDocumentUpdateOne) ClearSide() *StoredDocumentUpdateOne {
	sduo.mutation.ClearSide()
	return sduo
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (sduo *StoredDocumentUpdateOne) SetSourceFieldReference(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetSourceFieldReference(s)
	return sduo
}

// SetNillableSourceFieldReference sets the "source_field_reference" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableSourceFieldReference(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetSourceFieldReference(*s)
	}
	return sduo
}

// ClearSourceFieldReference clears the value of the "source_field_reference" field.
func (sduo *StoredDocumentUpdateOne) ClearSourceFieldReference() *StoredDocumentUpdateOne {
	sduo.mutation.ClearSourceFieldReference()
	return sduo
}

// SetIssuingCountry sets the "issuing_country" field.
func (sduo *StoredDocumentUpdateOne) SetIssuingCountry(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetIssuingCountry(s)
	return sduo
}

// SetNillableIssuingCountry sets the "issuing_country" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableIssuingCountry(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetIssuingCountry(*s)
	}
	return sduo
}

// ClearIssuingCountry clears the value of the "issuing_country" field.
func (sduo *StoredDocumentUpdateOne) ClearIssuingCountry() *StoredDocumentUpdateOne {
	sduo.mutation.ClearIssuingCountry()
	return sduo
}

// SetStatus sets the "status" field.
func (sduo *StoredDocumentUpdateOne) SetStatus(s storeddocument.Status) *StoredDocumentUpdateOne {
	sduo.mutation.SetStatus(s)
	return sduo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableStatus(s *storeddocument.Status) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetStatus(*s)
	}
	return sduo
}

// SetRejectionReason sets the "rejection_reason" field.
func (sduo *StoredDocumentUpdateOne) SetRejectionReason(s string) *StoredDocumentUpdateOne {
	sduo.mutation.SetRejectionReason(s)
	return sduo
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (sduo *StoredDocumentUpdateOne) SetNillableRejectionReason(s *string) *StoredDocumentUpdateOne {
	if s != nil {
		sduo.SetRejectionReason(*s)
	}
	return sduo
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (sduo *StoredDocumentUpdateOne) ClearRejectionReason() *StoredDocumentUpdateOne {
	sduo.mutation.ClearRejectionReason()
	return sduo
}

// SetSubmissionID sets the "submission" edge to the VerificationSubmission entity by ID.
func (sduo *StoredDocumentUpdateOne) SetSubmissionID(id uuid.UUID) *StoredDocumentUpdateOne {
	sduo.mutation.SetSubmissionID(id)
	return sduo
}

// SetSubmission sets the "submission" edge to the VerificationSubmission entity.
func (sduo *StoredDocumentUpdateOne) SetSubmission(v *VerificationSubmission) *StoredDocumentUpdateOne {
	return sduo.SetSubmissionID(v.ID)
}

// Mutation returns the StoredDocumentMutation object of the builder.
func (sduo *StoredDocumentUpdateOne) Mutation() *StoredDocumentMutation {
	return sduo.mutation
}

// ClearSubmission clears the "submission" edge to the VerificationSubmission entity.
func (sduo *StoredDocumentUpdateOne) ClearSubmission() *StoredDocumentUpdateOne {
	sduo.mutation.ClearSubmission()
	return sduo
}

// Where appends a list predicates to the StoredDocumentUpdate builder.
func (sduo *StoredDocumentUpdateOne) Where(ps ...predicate.StoredDocument) *StoredDocumentUpdateOne {
	sduo.mutation.Where(ps...)
	return sduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sduo *StoredDocumentUpdateOne) Select(field string, fields ...string) *StoredDocumentUpdateOne {
	sduo.fields = append([]string{field}, fields...)
	return sduo
}

// Save executes the query and returns the updated StoredDocument entity.
func (sduo *StoredDocumentUpdateOne) Save(ctx context.Context) (*StoredDocument, error) {
	sduo.defaults()
	return withHooks(ctx, sduo.sqlSave, sduo.mutation, sduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sduo *StoredDocumentUpdateOne) SaveX(ctx context.Context) *StoredDocument {
	node, err := sduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sduo *StoredDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := sduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sduo *StoredDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := sduo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sduo *StoredDocumentUpdateOne) defaults() {
	if _, ok := sduo.mutation.UpdatedAt(); !ok {
		v := storeddocument.UpdateDefaultUpdatedAt()
		sduo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sduo *StoredDocumentUpdateOne) check() error {
	if v, ok := sduo.mutation.Side(); ok {
		if err := storeddocument.SideValidator(v); err != nil {
			return &ValidationError{Name: "side", err: fmt.Errorf(`ent: validator failed for field "StoredDocument.side": %w`, err)}
		}
	}
	if v, ok := sduo.mutation.Status(); ok {
		if err := storeddocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoredDocument.status": %w`, err)}
		}
	}
	if sduo.mutation.SubmissionCleared() && len(sduo.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoredDocument.submission"`)
	}
	return nil
}

func (sduo *StoredDocumentUpdateOne) sqlSave(ctx context.Context) (_node *StoredDocument, err error) {
	if err := sduo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storeddocument.Table, storeddocument.Columns, sqlgraph.NewFieldSpec(storeddocument.FieldID, field.TypeUUID))
	id, ok := sduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoredDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storeddocument.FieldID)
		for _, f := range fields {
			if !storeddocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storeddocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sduo.mutation.UpdatedAt(); ok {
		_spec.SetField(storeddocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := sduo.mutation.Category(); ok {
		_spec.SetField(storeddocument.FieldCategory, field.TypeString, value)
	}
	if value, ok := sduo.mutation.StoragePath(); ok {
		_spec.SetField(storeddocument.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := sduo.mutation.OriginalName(); ok {
		_spec.SetField(storeddocument.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := sduo.mutation.MimeType(); ok {
		_spec.SetField(storeddocument.FieldMimeType, field.TypeString, value)
	}
	if value, ok := sduo.mutation.SizeBytes(); ok {
		_spec.SetField(storeddocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := sduo.mutation.AddedSizeBytes(); ok {
		_spec.AddField(storeddocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := sduo.mutation.Side(); ok {
		_spec.SetField(storeddocument.FieldSide, field.TypeEnum, value)
	}
	if sduo.mutation.SideCleared() {
		_spec.ClearField(storeddocument.FieldSide, field.TypeEnum)
	}
	if value, ok := sduo.mutation.SourceFieldReference(); ok {
		_spec.SetField(storeddocument.FieldSourceFieldReference, field.TypeString, value)
	}
	if sduo.mutation.SourceFieldReferenceCleared() {
		_spec.ClearField(storeddocument.FieldSourceFieldReference, field.TypeString)
	}
	if value, ok := sduo.mutation.IssuingCountry(); ok {
		_spec.SetField(storeddocument.FieldIssuingCountry, field.TypeString, value)
	}
	if sduo.mutation.IssuingCountryCleared() {
		_spec.ClearField(storeddocument.FieldIssuingCountry, field.TypeString)
	}
	if value, ok := sduo.mutation.Status(); ok {
		_spec.SetField(storeddocument.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := sduo.mutation.RejectionReason(); ok {
		_spec.SetField(storeddocument.FieldRejectionReason, field.TypeString, value)
	}
	if sduo.mutation.RejectionReasonCleared() {
		_spec.ClearField(storeddocument.FieldRejectionReason, field.TypeString)
	}
	if sduo.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storeddocument.SubmissionTable,
			Columns: []string{storeddocument.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sduo.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storeddocument.SubmissionTable,
			Columns: []string{storeddocument.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StoredDocument{config: sduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storeddocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sduo.mutation.done = true
	return _node, nil
}
