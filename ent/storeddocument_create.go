// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// StoredDocumentCreate is the builder for creating a StoredDocument entity.
type StoredDocumentCreate struct {
	config
	mutation *StoredDocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (sdc *StoredDocumentCreate) SetCreatedAt(t time.Time) *StoredDocumentCreate {
	sdc.mutation.SetCreatedAt(t)
	return sdc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableCreatedAt(t *time.Time) *StoredDocumentCreate {
	if t != nil {
		sdc.SetCreatedAt(*t)
	}
	return sdc
}

// SetUpdatedAt sets the "updated_at" field.
func (sdc *StoredDocumentCreate) SetUpdatedAt(t time.Time) *StoredDocumentCreate {
	sdc.mutation.SetUpdatedAt(t)
	return sdc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableUpdatedAt(t *time.Time) *StoredDocumentCreate {
	if t != nil {
		sdc.SetUpdatedAt(*t)
	}
	return sdc
}

// SetCategory sets the "category" field.
func (sdc *StoredDocumentCreate) SetCategory(s string) *StoredDocumentCreate {
	sdc.mutation.SetCategory(s)
	return sdc
}

// SetStoragePath sets the "storage_path" field.
func (sdc *StoredDocumentCreate) SetStoragePath(s string) *StoredDocumentCreate {
	sdc.mutation.SetStoragePath(s)
	return sdc
}

// SetOriginalName sets the "original_name" field.
func (sdc *StoredDocumentCreate) SetOriginalName(s string) *StoredDocumentCreate {
	sdc.mutation.SetOriginalName(s)
	return sdc
}

// SetMimeType sets the "mime_type" field.
func (sdc *StoredDocumentCreate) SetMimeType(s string) *StoredDocumentCreate {
	sdc.mutation.SetMimeType(s)
	return sdc
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableMimeType(s *string) *StoredDocumentCreate {
	if s != nil {
		sdc.SetMimeType(*s)
	}
	return sdc
}

// SetSizeBytes sets the "size_bytes" field.
func (sdc *StoredDocumentCreate) SetSizeBytes(i int64) *StoredDocumentCreate {
	sdc.mutation.SetSizeBytes(i)
	return sdc
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableSizeBytes(i *int64) *StoredDocumentCreate {
	if i != nil {
		sdc.SetSizeBytes(*i)
	}
	return sdc
}

// SetSide sets the "side" field.
func (sdc *StoredDocumentCreate) SetSide(s storeddocument.Side) *StoredDocumentCreate {
	sdc.mutation.SetSide(s)
	return sdc
}

// SetNillableSide sets the "side" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableSide(s *storeddocument.Side) *StoredDocumentCreate {
	if s != nil {
		sdc.SetSide(*s)
	}
	return sdc
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (sdc *StoredDocumentCreate) SetSourceFieldReference(s string) *StoredDocumentCreate {
	sdc.mutation.SetSourceFieldReference(s)
	return sdc
}

// SetNillableSourceFieldReference sets the "source_field_reference" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableSourceFieldReference(s *string) *StoredDocumentCreate {
	if s != nil {
		sdc.SetSourceFieldReference(*s)
	}
	return sdc
}

// SetIssuingCountry sets the "issuing_country" field.
func (sdc *StoredDocumentCreate) SetIssuingCountry(s string) *StoredDocumentCreate {
	sdc.mutation.SetIssuingCountry(s)
	return sdc
}

// SetNillableIssuingCountry sets the "issuing_country" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableIssuingCountry(s *string) *StoredDocumentCreate {
	if s != nil {
		sdc.SetIssuingCountry(*s)
	}
	return sdc
}

// SetStatus sets the "status" field.
func (sdc *StoredDocumentCreate) SetStatus(s storeddocument.Status) *StoredDocumentCreate {
	sdc.mutation.SetStatus(s)
	return sdc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableStatus(s *storeddocument.Status) *StoredDocumentCreate {
	if s != nil {
		sdc.SetStatus(*s)
	}
	return sdc
}

// SetRejectionReason sets the "rejection_reason" field.
func (sdc *StoredDocumentCreate) SetRejectionReason(s string) *StoredDocumentCreate {
	sdc.mutation.SetRejectionReason(s)
	return sdc
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableRejectionReason(s *string) *StoredDocumentCreate {
	if s != nil {
		sdc.SetRejectionReason(*s)
	}
	return sdc
}

// SetID sets the "id" field.
func (sdc *StoredDocumentCreate) SetID(u uuid.UUID) *StoredDocumentCreate {
	sdc.mutation.SetID(u)
	return sdc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sdc *StoredDocumentCreate) SetNillableID(u *uuid.UUID) *StoredDocumentCreate {
	if u != nil {
		sdc.SetID(*u)
	}
	return sdc
}

// SetSubmissionID sets the "submission" edge to the VerificationSubmission entity by ID.
func (sdc *StoredDocumentCreate) SetSubmissionID(id uuid.UUID) *StoredDocumentCreate {
	sdc.mutation.SetSubmissionID(id)
	return sdc
}

// SetSubmission sets the "submission" edge to the VerificationSubmission entity.
func (sdc *StoredDocumentCreate) SetSubmission(v *VerificationSubmission) *StoredDocumentCreate {
	return sdc.SetSubmissionID(v.ID)
}

// Mutation returns the StoredDocumentMutation object of the builder.
func (sdc *StoredDocumentCreate) Mutation() *StoredDocumentMutation {
	return sdc.mutation
}

// Save creates the StoredDocument in the database.
func (sdc *StoredDocumentCreate) Save(ctx context.Context) (*StoredDocument, error) {
	sdc.defaults()
	return withHooks(ctx, sdc.sqlSave, sdc.mutation, sdc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sdc *StoredDocumentCreate) SaveX(ctx context.Context) *StoredDocument {
	v, err := sdc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sdc *StoredDocumentCreate) Exec(ctx context.Context) error {
	_, err := sdc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdc *StoredDocumentCreate) ExecX(ctx context.Context) {
	if err := sdc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sdc *StoredDocumentCreate) defaults() {
	if _, ok := sdc.mutation.CreatedAt(); !ok {
		v := storeddocument.DefaultCreatedAt()
		sdc.mutation.SetCreatedAt(v)
	}
	if _, ok := sdc.mutation.UpdatedAt(); !ok {
		v := storeddocument.DefaultUpdatedAt()
		sdc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sdc.mutation.MimeType(); !ok {
		v := storeddocument.DefaultMimeType
		sdc.mutation.SetMimeType(v)
	}
	if _, ok := sdc.mutation.SizeBytes(); !ok {
		v := storeddocument.DefaultSizeBytes
		sdc.mutation.SetSizeBytes(v)
	}
	if _, ok := sdc.mutation.Status(); !ok {
		v := storeddocument.DefaultStatus
		sdc.mutation.SetStatus(v)
	}
	if _, ok := sdc.mutation.ID(); !ok {
		v := storeddocument.DefaultID()
		sdc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sdc *StoredDocumentCreate) check() error {
	if _, ok := sdc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StoredDocument.created_at"`)}
	}
	if _, ok := sdc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StoredDocument.updated_at"`)}
	}
	if _, ok := sdc.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "StoredDocument.category"`)}
	}
	if _, ok := sdc.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "StoredDocument.storage_path"`)}
	}
	if _, ok := sdc.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`ent: missing required field "StoredDocument.original_name"`)}
	}
	if _, ok := sdc.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "StoredDocument.mime_type"`)}
	}
	if _, ok := sdc.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "StoredDocument.size_bytes"`)}
	}
	if v, ok := sdc.mutation.Side(); ok {
		if err := storeddocument.SideValidator(v); err != nil {
			return &ValidationError{Name: "side", err: fmt.Errorf(`ent: validator failed for field "StoredDocument.side": %w`, err)}
		}
	}
	if _, ok := sdc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StoredDocument.status"`)}
	}
	if v, ok := sdc.mutation.Status(); ok {
		if err := storeddocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StoredDocument.status": %w`, err)}
		}
	}
	if len(sdc.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "StoredDocument.submission"`)}
	}
	return nil
}

func (sdc *StoredDocumentCreate) sqlSave(ctx context.Context) (*StoredDocument, error) {
	if err := sdc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sdc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sdc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	sdc.mutation.id = &_node.ID
	sdc.mutation.done = true
	return _node, nil
}

func (sdc *StoredDocumentCreate) createSpec() (*StoredDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &StoredDocument{config: sdc.config}
		_spec = sqlgraph.NewCreateSpec(storeddocument.Table, sqlgraph.NewFieldSpec(storeddocument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = sdc.conflict
	if id, ok := sdc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sdc.mutation.CreatedAt(); ok {
		_spec.SetField(storeddocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sdc.mutation.UpdatedAt(); ok {
		_spec.SetField(storeddocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := sdc.mutation.Category(); ok {
		_spec.SetField(storeddocument.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := sdc.mutation.StoragePath(); ok {
		_spec.SetField(storeddocument.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := sdc.mutation.OriginalName(); ok {
		_spec.SetField(storeddocument.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := sdc.mutation.MimeType(); ok {
		_spec.SetField(storeddocument.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := sdc.mutation.SizeBytes(); ok {
		_spec.SetField(storeddocument.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := sdc.mutation.Side(); ok {
		_spec.SetField(storeddocument.FieldSide, field.TypeEnum, value)
		_node.Side = value
	}
	if value, ok := sdc.mutation.SourceFieldReference(); ok {
		_spec.SetField(storeddocument.FieldSourceFieldReference, field.TypeString, value)
		_node.SourceFieldReference = value
	}
	if value, ok := sdc.mutation.IssuingCountry(); ok {
		_spec.SetField(storeddocument.FieldIssuingCountry, field.TypeString, value)
		_node.IssuingCountry = value
	}
	if value, ok := sdc.mutation.Status(); ok {
		_spec.SetField(storeddocument.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := sdc.mutation.RejectionReason(); ok {
		_spec.SetField(storeddocument.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if nodes := sdc.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.verification_submission_stored_documents = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StoredDocument.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoredDocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (sdc *StoredDocumentCreate) OnConflict(opts ...sql.ConflictOption) *StoredDocumentUpsertOne {
	sdc.conflict = opts
	return &StoredDocumentUpsertOne{
		create: sdc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StoredDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sdc *StoredDocumentCreate) OnConflictColumns(columns ...string) *StoredDocumentUpsertOne {
	sdc.conflict = append(sdc.conflict, sql.ConflictColumns(columns...))
	return &StoredDocumentUpsertOne{
		create: sdc,
	}
}

type (
	// StoredDocumentUpsertOne is the builder for "upsert"-ing
	//  one StoredDocument node.
	StoredDocumentUpsertOne struct {
		create *StoredDocumentCreate
	}

	// StoredDocumentUpsert is the "OnConflict" setter.
	StoredDocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StoredDocumentUpsert) SetUpdatedAt(v time.Time) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateUpdatedAt() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldUpdatedAt)
	return u
}

// SetCategory sets the "category" field.
func (u *StoredDocumentUpsert) SetCategory(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateCategory() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldCategory)
	return u
}

// SetStoragePath sets the "storage_path" field.
func (u *StoredDocumentUpsert) SetStoragePath(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldStoragePath, v)
	return u
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateStoragePath() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldStoragePath)
	return u
}

// SetOriginalName sets the "original_name" field.
func (u *StoredDocumentUpsert) SetOriginalName(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldOriginalName, v)
	return u
}

// UpdateOriginalName sets the "original_name" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateOriginalName() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldOriginalName)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *StoredDocumentUpsert) SetMimeType(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateMimeType() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldMimeType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *StoredDocumentUpsert) SetSizeBytes(v int64) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateSizeBytes() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *StoredDocumentUpsert) AddSizeBytes(v int64) *StoredDocumentUpsert {
	u.Add(storeddocument.FieldSizeBytes, v)
	return u
}

// SetSide sets the "side" field.
func (u *StoredDocumentUpsert) SetSide(v storeddocument.Side) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldSide, v)
	return u
}

// UpdateSide sets the "side" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateSide() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldSide)
	return u
}

// ClearSide clears the value of the "side" field.
func (u *StoredDocumentUpsert) ClearSide() *StoredDocumentUpsert {
	u.SetNull(storeddocument.FieldSide)
	return u
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (u *StoredDocumentUpsert) SetSourceFieldReference(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldSourceFieldReference, v)
	return u
}

// UpdateSourceFieldReference sets the "source_field_reference" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateSourceFieldReference() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldSourceFieldReference)
	return u
}

// ClearSourceFieldReference clears the value of the "source_field_reference" field.
func (u *StoredDocumentUpsert) ClearSourceFieldReference() *StoredDocumentUpsert {
	u.SetNull(storeddocument.FieldSourceFieldReference)
	return u
}

// SetIssuingCountry sets the "issuing_country" field.
func (u *StoredDocumentUpsert) SetIssuingCountry(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldIssuingCountry, v)
	return u
}

// UpdateIssuingCountry sets the "issuing_country" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateIssuingCountry() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldIssuingCountry)
	return u
}

// ClearIssuingCountry clears the value of the "issuing_country" field.
func (u *StoredDocumentUpsert) ClearIssuingCountry() *StoredDocumentUpsert {
	u.SetNull(storeddocument.FieldIssuingCountry)
	return u
}

// SetStatus sets the "status" field.
func (u *StoredDocumentUpsert) SetStatus(v storeddocument.Status) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateStatus() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldStatus)
	return u
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *StoredDocumentUpsert) SetRejectionReason(v string) *StoredDocumentUpsert {
	u.Set(storeddocument.FieldRejectionReason, v)
	return u
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *StoredDocumentUpsert) UpdateRejectionReason() *StoredDocumentUpsert {
	u.SetExcluded(storeddocument.FieldRejectionReason)
	return u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *StoredDocumentUpsert) ClearRejectionReason() *StoredDocumentUpsert {
	u.SetNull(storeddocument.FieldRejectionReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StoredDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(storeddocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StoredDocumentUpsertOne) UpdateNewValues() *StoredDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(storeddocument.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(storeddocument.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StoredDocument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StoredDocumentUpsertOne) Ignore() *StoredDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoredDocumentUpsertOne) DoNothing() *StoredDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoredDocumentCreate.OnConflict
// documentation for more info.
func (u *StoredDocumentUpsertOne) Update(set func(*StoredDocumentUpsert)) *StoredDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoredDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StoredDocumentUpsertOne) SetUpdatedAt(v time.Time) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateUpdatedAt() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCategory sets the "category" field.
func (u *StoredDocumentUpsertOne) SetCategory(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateCategory() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateCategory()
	})
}

// SetStoragePath sets the "storage_path" field.
func (u *StoredDocumentUpsertOne) SetStoragePath(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetStoragePath(v)
	})
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateStoragePath() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateStoragePath()
	})
}

// SetOriginalName sets the "original_name" field.
func (u *StoredDocumentUpsertOne) SetOriginalName(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetOriginalName(v)
	})
}

// UpdateOriginalName sets the "original_name" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateOriginalName() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateOriginalName()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *StoredDocumentUpsertOne) SetMimeType(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateMimeType() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateMimeType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *StoredDocumentUpsertOne) SetSizeBytes(v int64) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *StoredDocumentUpsertOne) AddSizeBytes(v int64) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateSizeBytes() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetSide sets the "side" field.
func (u *StoredDocumentUpsertOne) SetSide(v storeddocument.Side) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetSide(v)
	})
}

// UpdateSide sets the "side" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateSide() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateSide()
	})
}

// ClearSide clears the value of the "side" field.
func (u *StoredDocumentUpsertOne) ClearSide() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearSide()
	})
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (u *StoredDocumentUpsertOne) SetSourceFieldReference(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetSourceFieldReference(v)
	})
}

// UpdateSourceFieldReference sets the "source_field_reference" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateSourceFieldReference() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateSourceFieldReference()
	})
}

// ClearSourceFieldReference clears the value of the "source_field_reference" field.
func (u *StoredDocumentUpsertOne) ClearSourceFieldReference() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearSourceFieldReference()
	})
}

// SetIssuingCountry sets the "issuing_country" field.
func (u *StoredDocumentUpsertOne) SetIssuingCountry(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetIssuingCountry(v)
	})
}

// UpdateIssuingCountry sets the "issuing_country" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateIssuingCountry() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateIssuingCountry()
	})
}

// ClearIssuingCountry clears the value of the "issuing_country" field.
func (u *StoredDocumentUpsertOne) ClearIssuingCountry() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearIssuingCountry()
	})
}

// SetStatus sets the "status" field.
func (u *StoredDocumentUpsertOne) SetStatus(v storeddocument.Status) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateStatus() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *StoredDocumentUpsertOne) SetRejectionReason(v string) *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *StoredDocumentUpsertOne) UpdateRejectionReason() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *StoredDocumentUpsertOne) ClearRejectionReason() *StoredDocumentUpsertOne {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearRejectionReason()
	})
}

// Exec executes the query.
func (u *StoredDocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoredDocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoredDocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StoredDocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StoredDocumentUpsertOne.ID is not supported by MySQL driver. Use StoredDocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StoredDocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StoredDocumentCreateBulk is the builder for creating many StoredDocument entities in bulk.
type StoredDocumentCreateBulk struct {
	config
	err      error
	builders []*StoredDocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the StoredDocument entities in the database.
func (sdcb *StoredDocumentCreateBulk) Save(ctx context.Context) ([]*StoredDocument, error) {
	if sdcb.err != nil {
		return nil, sdcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sdcb.builders))
	nodes := make([]*StoredDocument, len(sdcb.builders))
	mutators := make([]Mutator, len(sdcb.builders))
	for i := range sdcb.builders {
		func(i int, root context.Context) {
			builder := sdcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoredDocumentMutation)
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
					_, err = mutators[i+1].Mutate(root, sdcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = sdcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sdcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, sdcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sdcb *StoredDocumentCreateBulk) SaveX(ctx context.Context) []*StoredDocument {
	v, err := sdcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sdcb *StoredDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := sdcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdcb *StoredDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := sdcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StoredDocument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoredDocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (sdcb *StoredDocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *StoredDocumentUpsertBulk {
	sdcb.conflict = opts
	return &StoredDocumentUpsertBulk{
		create: sdcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StoredDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sdcb *StoredDocumentCreateBulk) OnConflictColumns(columns ...string) *StoredDocumentUpsertBulk {
	sdcb.conflict = append(sdcb.conflict, sql.ConflictColumns(columns...))
	return &StoredDocumentUpsertBulk{
		create: sdcb,
	}
}

// StoredDocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of StoredDocument nodes.
type StoredDocumentUpsertBulk struct {
	create *StoredDocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StoredDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(storeddocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StoredDocumentUpsertBulk) UpdateNewValues() *StoredDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(storeddocument.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(storeddocument.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StoredDocument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StoredDocumentUpsertBulk) Ignore() *StoredDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoredDocumentUpsertBulk) DoNothing() *StoredDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoredDocumentCreateBulk.OnConflict
// documentation for more info.
func (u *StoredDocumentUpsertBulk) Update(set func(*StoredDocumentUpsert)) *StoredDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoredDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StoredDocumentUpsertBulk) SetUpdatedAt(v time.Time) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateUpdatedAt() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCategory sets the "category" field.
func (u *StoredDocumentUpsertBulk) SetCategory(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateCategory() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateCategory()
	})
}

// SetStoragePath sets the "storage_path" field.
func (u *StoredDocumentUpsertBulk) SetStoragePath(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetStoragePath(v)
	})
}

// UpdateStoragePath sets the "storage_path" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateStoragePath() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateStoragePath()
	})
}

// SetOriginalName sets the "original_name" field.
func (u *StoredDocumentUpsertBulk) SetOriginalName(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetOriginalName(v)
	})
}

// UpdateOriginalName sets the "original_name" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateOriginalName() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateOriginalName()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *StoredDocumentUpsertBulk) SetMimeType(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateMimeType() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateMimeType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *StoredDocumentUpsertBulk) SetSizeBytes(v int64) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *StoredDocumentUpsertBulk) AddSizeBytes(v int64) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateSizeBytes() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetSide sets the "side" field.
func (u *StoredDocumentUpsertBulk) SetSide(v storeddocument.Side) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetSide(v)
	})
}

// UpdateSide sets the "side" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateSide() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateSide()
	})
}

// ClearSide clears the value of the "side" field.
func (u *StoredDocumentUpsertBulk) ClearSide() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearSide()
	})
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (u *StoredDocumentUpsertBulk) SetSourceFieldReference(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetSourceFieldReference(v)
	})
}

// UpdateSourceFieldReference sets the "source_field_reference" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateSourceFieldReference() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateSourceFieldReference()
	})
}

// ClearSourceFieldReference clears the value of the "source_field_reference" field.
func (u *StoredDocumentUpsertBulk) ClearSourceFieldReference() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearSourceFieldReference()
	})
}

// SetIssuingCountry sets the "issuing_country" field.
func (u *StoredDocumentUpsertBulk) SetIssuingCountry(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetIssuingCountry(v)
	})
}

// UpdateIssuingCountry sets the "issuing_country" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateIssuingCountry() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateIssuingCountry()
	})
}

// ClearIssuingCountry clears the value of the "issuing_country" field.
func (u *StoredDocumentUpsertBulk) ClearIssuingCountry() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearIssuingCountry()
	})
}

// SetStatus sets the "status" field.
func (u *StoredDocumentUpsertBulk) SetStatus(v storeddocument.Status) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateStatus() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *StoredDocumentUpsertBulk) SetRejectionReason(v string) *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *StoredDocumentUpsertBulk) UpdateRejectionReason() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *StoredDocumentUpsertBulk) ClearRejectionReason() *StoredDocumentUpsertBulk {
	return u.Update(func(s *StoredDocumentUpsert) {
		s.ClearRejectionReason()
	})
}

// Exec executes the query.
func (u *StoredDocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StoredDocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoredDocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoredDocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
