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
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeStoredDocument         = "StoredDocument"
	TypeVerificationSubmission = "VerificationSubmission"
)

// StoredDocumentMutation represents an operation that mutates the StoredDocument nodes in the graph.
type StoredDocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	category               *string
	storage_path           *string
	original_name          *string
	mime_type              *string
	size_bytes             *int64
	addsize_bytes          *int64
	side                   *storeddocument.Side
	source_field_reference *string
	issuing_country        *string
	status                 *storeddocument.Status
	rejection_reason       *string
	clearedFields          map[string]struct{}
	submission             *uuid.UUID
	clearedsubmission      bool
	done                   bool
	oldValue               func(context.Context) (*StoredDocument, error)
	predicates             []predicate.StoredDocument
}

var _ ent.Mutation = (*StoredDocumentMutation)(nil)

// storeddocumentOption allows management of the mutation configuration using functional options.
type storeddocumentOption func(*StoredDocumentMutation)

// newStoredDocumentMutation creates new mutation for the StoredDocument entity.
func newStoredDocumentMutation(c config, op Op, opts ...storeddocumentOption) *StoredDocumentMutation {
	m := &StoredDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeStoredDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoredDocumentID sets the ID field of the mutation.
func withStoredDocumentID(id uuid.UUID) storeddocumentOption {
	return func(m *StoredDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *StoredDocument
		)
		m.oldValue = func(ctx context.Context) (*StoredDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoredDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoredDocument sets the old StoredDocument of the mutation.
func withStoredDocument(node *StoredDocument) storeddocumentOption {
	return func(m *StoredDocumentMutation) {
		m.oldValue = func(context.Context) (*StoredDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoredDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoredDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoredDocument entities.
func (m *StoredDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoredDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoredDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoredDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StoredDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoredDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StoredDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StoredDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StoredDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StoredDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCategory sets the "category" field.
func (m *StoredDocumentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *StoredDocumentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *StoredDocumentMutation) ResetCategory() {
	m.category = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *StoredDocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *StoredDocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *StoredDocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetOriginalName sets the "original_name" field.
func (m *StoredDocumentMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *StoredDocumentMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *StoredDocumentMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetMimeType sets the "mime_type" field.
func (m *StoredDocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *StoredDocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *StoredDocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *StoredDocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *StoredDocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *StoredDocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *StoredDocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *StoredDocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetSide sets the "side" field.
func (m *StoredDocumentMutation) SetSide(s storeddocument.Side) {
	m.side = &s
}

// Side returns the value of the "side" field in the mutation.
func (m *StoredDocumentMutation) Side() (r storeddocument.Side, exists bool) {
	v := m.side
	if v == nil {
		return
	}
	return *v, true
}

// OldSide returns the old "side" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldSide(ctx context.Context) (v storeddocument.Side, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSide: %w", err)
	}
	return oldValue.Side, nil
}

// ClearSide clears the value of the "side" field.
func (m *StoredDocumentMutation) ClearSide() {
	m.side = nil
	m.clearedFields[storeddocument.FieldSide] = struct{}{}
}

// SideCleared returns if the "side" field was cleared in this mutation.
func (m *StoredDocumentMutation) SideCleared() bool {
	_, ok := m.clearedFields[storeddocument.FieldSide]
	return ok
}

// ResetSide resets all changes to the "side" field.
func (m *StoredDocumentMutation) ResetSide() {
	m.side = nil
	delete(m.clearedFields, storeddocument.FieldSide)
}

// SetSourceFieldReference sets the "source_field_reference" field.
func (m *StoredDocumentMutation) SetSourceFieldReference(s string) {
	m.source_field_reference = &s
}

// SourceFieldReference returns the value of the "source_field_reference" field in the mutation.
func (m *StoredDocumentMutation) SourceFieldReference() (r string, exists bool) {
	v := m.source_field_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFieldReference returns the old "source_field_reference" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldSourceFieldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFieldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFieldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFieldReference: %w", err)
	}
	return oldValue.SourceFieldReference, nil
}

// ClearSourceFieldReference clears the value of the "source_field_reference" field.
func (m *StoredDocumentMutation) ClearSourceFieldReference() {
	m.source_field_reference = nil
	m.clearedFields[storeddocument.FieldSourceFieldReference] = struct{}{}
}

// SourceFieldReferenceCleared returns if the "source_field_reference" field was cleared in this mutation.
func (m *StoredDocumentMutation) SourceFieldReferenceCleared() bool {
	_, ok := m.clearedFields[storeddocument.FieldSourceFieldReference]
	return ok
}

// ResetSourceFieldReference resets all changes to the "source_field_reference" field.
func (m *StoredDocumentMutation) ResetSourceFieldReference() {
	m.source_field_reference = nil
	delete(m.clearedFields, storeddocument.FieldSourceFieldReference)
}

// SetIssuingCountry sets the "issuing_country" field.
func (m *StoredDocumentMutation) SetIssuingCountry(s string) {
	m.issuing_country = &s
}

// IssuingCountry returns the value of the "issuing_country" field in the mutation.
func (m *StoredDocumentMutation) IssuingCountry() (r string, exists bool) {
	v := m.issuing_country
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuingCountry returns the old "issuing_country" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldIssuingCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuingCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuingCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuingCountry: %w", err)
	}
	return oldValue.IssuingCountry, nil
}

// ClearIssuingCountry clears the value of the "issuing_country" field.
func (m *StoredDocumentMutation) ClearIssuingCountry() {
	m.issuing_country = nil
	m.clearedFields[storeddocument.FieldIssuingCountry] = struct{}{}
}

// IssuingCountryCleared returns if the "issuing_country" field was cleared in this mutation.
func (m *StoredDocumentMutation) IssuingCountryCleared() bool {
	_, ok := m.clearedFields[storeddocument.FieldIssuingCountry]
	return ok
}

// ResetIssuingCountry resets all changes to the "issuing_country" field.
func (m *StoredDocumentMutation) ResetIssuingCountry() {
	m.issuing_country = nil
	delete(m.clearedFields, storeddocument.FieldIssuingCountry)
}

// SetStatus sets the "status" field.
func (m *StoredDocumentMutation) SetStatus(s storeddocument.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StoredDocumentMutation) Status() (r storeddocument.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldStatus(ctx context.Context) (v storeddocument.Status, err error) {
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
func (m *StoredDocumentMutation) ResetStatus() {
	m.status = nil
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *StoredDocumentMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *StoredDocumentMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the StoredDocument entity.
// If the StoredDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoredDocumentMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *StoredDocumentMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[storeddocument.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *StoredDocumentMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[storeddocument.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *StoredDocumentMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, storeddocument.FieldRejectionReason)
}

// SetSubmissionID sets the "submission" edge to the VerificationSubmission entity by id.
func (m *StoredDocumentMutation) SetSubmissionID(id uuid.UUID) {
	m.submission = &id
}

// ClearSubmission clears the "submission" edge to the VerificationSubmission entity.
func (m *StoredDocumentMutation) ClearSubmission() {
	m.clearedsubmission = true
}

// SubmissionCleared reports if the "submission" edge to the VerificationSubmission entity was cleared.
func (m *StoredDocumentMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionID returns the "submission" edge ID in the mutation.
func (m *StoredDocumentMutation) SubmissionID() (id uuid.UUID, exists bool) {
	if m.submission != nil {
		return *m.submission, true
	}
	return
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *StoredDocumentMutation) SubmissionIDs() (ids []uuid.UUID) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *StoredDocumentMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the StoredDocumentMutation builder.
func (m *StoredDocumentMutation) Where(ps ...predicate.StoredDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoredDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoredDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoredDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoredDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoredDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoredDocument).
func (m *StoredDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoredDocumentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, storeddocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, storeddocument.FieldUpdatedAt)
	}
	if m.category != nil {
		fields = append(fields, storeddocument.FieldCategory)
	}
	if m.storage_path != nil {
		fields = append(fields, storeddocument.FieldStoragePath)
	}
	if m.original_name != nil {
		fields = append(fields, storeddocument.FieldOriginalName)
	}
	if m.mime_type != nil {
		fields = append(fields, storeddocument.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, storeddocument.FieldSizeBytes)
	}
	if m.side != nil {
		fields = append(fields, storeddocument.FieldSide)
	}
	if m.source_field_reference != nil {
		fields = append(fields, storeddocument.FieldSourceFieldReference)
	}
	if m.issuing_country != nil {
		fields = append(fields, storeddocument.FieldIssuingCountry)
	}
	if m.status != nil {
		fields = append(fields, storeddocument.FieldStatus)
	}
	if m.rejection_reason != nil {
		fields = append(fields, storeddocument.FieldRejectionReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoredDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storeddocument.FieldCreatedAt:
		return m.CreatedAt()
	case storeddocument.FieldUpdatedAt:
		return m.UpdatedAt()
	case storeddocument.FieldCategory:
		return m.Category()
	case storeddocument.FieldStoragePath:
		return m.StoragePath()
	case storeddocument.FieldOriginalName:
		return m.OriginalName()
	case storeddocument.FieldMimeType:
		return m.MimeType()
	case storeddocument.FieldSizeBytes:
		return m.SizeBytes()
	case storeddocument.FieldSide:
		return m.Side()
	case storeddocument.FieldSourceFieldReference:
		return m.SourceFieldReference()
	case storeddocument.FieldIssuingCountry:
		return m.IssuingCountry()
	case storeddocument.FieldStatus:
		return m.Status()
	case storeddocument.FieldRejectionReason:
		return m.RejectionReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoredDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storeddocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case storeddocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case storeddocument.FieldCategory:
		return m.OldCategory(ctx)
	case storeddocument.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case storeddocument.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case storeddocument.FieldMimeType:
		return m.OldMimeType(ctx)
	case storeddocument.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case storeddocument.FieldSide:
		return m.OldSide(ctx)
	case storeddocument.FieldSourceFieldReference:
		return m.OldSourceFieldReference(ctx)
	case storeddocument.FieldIssuingCountry:
		return m.OldIssuingCountry(ctx)
	case storeddocument.FieldStatus:
		return m.OldStatus(ctx)
	case storeddocument.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	}
	return nil, fmt.Errorf("unknown StoredDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoredDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storeddocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case storeddocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case storeddocument.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case storeddocument.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case storeddocument.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case storeddocument.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case storeddocument.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case storeddocument.FieldSide:
		v, ok := value.(storeddocument.Side)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSide(v)
		return nil
	case storeddocument.FieldSourceFieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFieldReference(v)
		return nil
	case storeddocument.FieldIssuingCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuingCountry(v)
		return nil
	case storeddocument.FieldStatus:
		v, ok := value.(storeddocument.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case storeddocument.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	}
	return fmt.Errorf("unknown StoredDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoredDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, storeddocument.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoredDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storeddocument.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoredDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storeddocument.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown StoredDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoredDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(storeddocument.FieldSide) {
		fields = append(fields, storeddocument.FieldSide)
	}
	if m.FieldCleared(storeddocument.FieldSourceFieldReference) {
		fields = append(fields, storeddocument.FieldSourceFieldReference)
	}
	if m.FieldCleared(storeddocument.FieldIssuingCountry) {
		fields = append(fields, storeddocument.FieldIssuingCountry)
	}
	if m.FieldCleared(storeddocument.FieldRejectionReason) {
		fields = append(fields, storeddocument.FieldRejectionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoredDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoredDocumentMutation) ClearField(name string) error {
	switch name {
	case storeddocument.FieldSide:
		m.ClearSide()
		return nil
	case storeddocument.FieldSourceFieldReference:
		m.ClearSourceFieldReference()
		return nil
	case storeddocument.FieldIssuingCountry:
		m.ClearIssuingCountry()
		return nil
	case storeddocument.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown StoredDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoredDocumentMutation) ResetField(name string) error {
	switch name {
	case storeddocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case storeddocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case storeddocument.FieldCategory:
		m.ResetCategory()
		return nil
	case storeddocument.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case storeddocument.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case storeddocument.FieldMimeType:
		m.ResetMimeType()
		return nil
	case storeddocument.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case storeddocument.FieldSide:
		m.ResetSide()
		return nil
	case storeddocument.FieldSourceFieldReference:
		m.ResetSourceFieldReference()
		return nil
	case storeddocument.FieldIssuingCountry:
		m.ResetIssuingCountry()
		return nil
	case storeddocument.FieldStatus:
		m.ResetStatus()
		return nil
	case storeddocument.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown StoredDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoredDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submission != nil {
		edges = append(edges, storeddocument.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoredDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case storeddocument.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoredDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoredDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoredDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmission {
		edges = append(edges, storeddocument.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoredDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case storeddocument.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoredDocumentMutation) ClearEdge(name string) error {
	switch name {
	case storeddocument.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown StoredDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoredDocumentMutation) ResetEdge(name string) error {
	switch name {
	case storeddocument.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown StoredDocument edge %s", name)
}

// VerificationSubmissionMutation represents an operation that mutates the VerificationSubmission nodes in the graph.
type VerificationSubmissionMutation struct {
	config
	op                            Op
	typ                           string
	id                            *uuid.UUID
	created_at                    *time.Time
	updated_at                    *time.Time
	kind                          *verificationsubmission.Kind
	current_step                  *int
	addcurrent_step               *int
	status                        *verificationsubmission.Status
	fields                        *map[string]interface{}
	documents                     *[]types.DocumentRef
	appenddocuments               []types.DocumentRef
	identifying_information       *[]types.IdentifyingInformation
	appendidentifying_information []types.IdentifyingInformation
	forwarded_providers           *[]string
	appendforwarded_providers     []string
	submitted_at                  *time.Time
	clearedFields                 map[string]struct{}
	stored_documents              map[uuid.UUID]struct{}
	removedstored_documents       map[uuid.UUID]struct{}
	clearedstored_documents       bool
	done                          bool
	oldValue                      func(context.Context) (*VerificationSubmission, error)
	predicates                    []predicate.VerificationSubmission
}

var _ ent.Mutation = (*VerificationSubmissionMutation)(nil)

// verificationsubmissionOption allows management of the mutation configuration using functional options.
type verificationsubmissionOption func(*VerificationSubmissionMutation)

// newVerificationSubmissionMutation creates new mutation for the VerificationSubmission entity.
func newVerificationSubmissionMutation(c config, op Op, opts ...verificationsubmissionOption) *VerificationSubmissionMutation {
	m := &VerificationSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationSubmissionID sets the ID field of the mutation.
func withVerificationSubmissionID(id uuid.UUID) verificationsubmissionOption {
	return func(m *VerificationSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationSubmission
		)
		m.oldValue = func(ctx context.Context) (*VerificationSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationSubmission sets the old VerificationSubmission of the mutation.
func withVerificationSubmission(node *VerificationSubmission) verificationsubmissionOption {
	return func(m *VerificationSubmissionMutation) {
		m.oldValue = func(context.Context) (*VerificationSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationSubmission entities.
func (m *VerificationSubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationSubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationSubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationSubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationSubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VerificationSubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VerificationSubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VerificationSubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VerificationSubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKind sets the "kind" field.
func (m *VerificationSubmissionMutation) SetKind(v verificationsubmission.Kind) {
	m.kind = &v
}

// Kind returns the value of the "kind" field in the mutation.
func (m *VerificationSubmissionMutation) Kind() (r verificationsubmission.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldKind(ctx context.Context) (v verificationsubmission.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *VerificationSubmissionMutation) ResetKind() {
	m.kind = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *VerificationSubmissionMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *VerificationSubmissionMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *VerificationSubmissionMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *VerificationSubmissionMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *VerificationSubmissionMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetStatus sets the "status" field.
func (m *VerificationSubmissionMutation) SetStatus(v verificationsubmission.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationSubmissionMutation) Status() (r verificationsubmission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldStatus(ctx context.Context) (v verificationsubmission.Status, err error) {
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
func (m *VerificationSubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetFields sets the "fields" field.
func (m *VerificationSubmissionMutation) SetFields(value map[string]interface{}) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *VerificationSubmissionMutation) GetFields() (r map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ResetFields resets all changes to the "fields" field.
func (m *VerificationSubmissionMutation) ResetFields() {
	m.fields = nil
}

// SetDocuments sets the "documents" field.
func (m *VerificationSubmissionMutation) SetDocuments(tr []types.DocumentRef) {
	m.documents = &tr
	m.appenddocuments = nil
}

// Documents returns the value of the "documents" field in the mutation.
func (m *VerificationSubmissionMutation) Documents() (r []types.DocumentRef, exists bool) {
	v := m.documents
	if v == nil {
		return
	}
	return *v, true
}

// OldDocuments returns the old "documents" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldDocuments(ctx context.Context) (v []types.DocumentRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocuments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocuments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocuments: %w", err)
	}
	return oldValue.Documents, nil
}

// AppendDocuments adds tr to the "documents" field.
func (m *VerificationSubmissionMutation) AppendDocuments(tr []types.DocumentRef) {
	m.appenddocuments = append(m.appenddocuments, tr...)
}

// AppendedDocuments returns the list of values that were appended to the "documents" field in this mutation.
func (m *VerificationSubmissionMutation) AppendedDocuments() ([]types.DocumentRef, bool) {
	if len(m.appenddocuments) == 0 {
		return nil, false
	}
	return m.appenddocuments, true
}

// ClearDocuments clears the value of the "documents" field.
func (m *VerificationSubmissionMutation) ClearDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	m.clearedFields[verificationsubmission.FieldDocuments] = struct{}{}
}

// DocumentsCleared returns if the "documents" field was cleared in this mutation.
func (m *VerificationSubmissionMutation) DocumentsCleared() bool {
	_, ok := m.clearedFields[verificationsubmission.FieldDocuments]
	return ok
}

// ResetDocuments resets all changes to the "documents" field.
func (m *VerificationSubmissionMutation) ResetDocuments() {
	m.documents = nil
	m.appenddocuments = nil
	delete(m.clearedFields, verificationsubmission.FieldDocuments)
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (m *VerificationSubmissionMutation) SetIdentifyingInformation(ti []types.IdentifyingInformation) {
	m.identifying_information = &ti
	m.appendidentifying_information = nil
}

// IdentifyingInformation returns the value of the "identifying_information" field in the mutation.
func (m *VerificationSubmissionMutation) IdentifyingInformation() (r []types.IdentifyingInformation, exists bool) {
	v := m.identifying_information
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifyingInformation returns the old "identifying_information" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldIdentifyingInformation(ctx context.Context) (v []types.IdentifyingInformation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifyingInformation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifyingInformation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifyingInformation: %w", err)
	}
	return oldValue.IdentifyingInformation, nil
}

// AppendIdentifyingInformation adds ti to the "identifying_information" field.
func (m *VerificationSubmissionMutation) AppendIdentifyingInformation(ti []types.IdentifyingInformation) {
	m.appendidentifying_information = append(m.appendidentifying_information, ti...)
}

// AppendedIdentifyingInformation returns the list of values that were appended to the "identifying_information" field in this mutation.
func (m *VerificationSubmissionMutation) AppendedIdentifyingInformation() ([]types.IdentifyingInformation, bool) {
	if len(m.appendidentifying_information) == 0 {
		return nil, false
	}
	return m.appendidentifying_information, true
}

// ClearIdentifyingInformation clears the value of the "identifying_information" field.
func (m *VerificationSubmissionMutation) ClearIdentifyingInformation() {
	m.identifying_information = nil
	m.appendidentifying_information = nil
	m.clearedFields[verificationsubmission.FieldIdentifyingInformation] = struct{}{}
}

// IdentifyingInformationCleared returns if the "identifying_information" field was cleared in this mutation.
func (m *VerificationSubmissionMutation) IdentifyingInformationCleared() bool {
	_, ok := m.clearedFields[verificationsubmission.FieldIdentifyingInformation]
	return ok
}

// ResetIdentifyingInformation resets all changes to the "identifying_information" field.
func (m *VerificationSubmissionMutation) ResetIdentifyingInformation() {
	m.identifying_information = nil
	m.appendidentifying_information = nil
	delete(m.clearedFields, verificationsubmission.FieldIdentifyingInformation)
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (m *VerificationSubmissionMutation) SetForwardedProviders(s []string) {
	m.forwarded_providers = &s
	m.appendforwarded_providers = nil
}

// ForwardedProviders returns the value of the "forwarded_providers" field in the mutation.
func (m *VerificationSubmissionMutation) ForwardedProviders() (r []string, exists bool) {
	v := m.forwarded_providers
	if v == nil {
		return
	}
	return *v, true
}

// OldForwardedProviders returns the old "forwarded_providers" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldForwardedProviders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForwardedProviders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForwardedProviders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForwardedProviders: %w", err)
	}
	return oldValue.ForwardedProviders, nil
}

// AppendForwardedProviders adds s to the "forwarded_providers" field.
func (m *VerificationSubmissionMutation) AppendForwardedProviders(s []string) {
	m.appendforwarded_providers = append(m.appendforwarded_providers, s...)
}

// AppendedForwardedProviders returns the list of values that were appended to the "forwarded_providers" field in this mutation.
func (m *VerificationSubmissionMutation) AppendedForwardedProviders() ([]string, bool) {
	if len(m.appendforwarded_providers) == 0 {
		return nil, false
	}
	return m.appendforwarded_providers, true
}

// ClearForwardedProviders clears the value of the "forwarded_providers" field.
func (m *VerificationSubmissionMutation) ClearForwardedProviders() {
	m.forwarded_providers = nil
	m.appendforwarded_providers = nil
	m.clearedFields[verificationsubmission.FieldForwardedProviders] = struct{}{}
}

// ForwardedProvidersCleared returns if the "forwarded_providers" field was cleared in this mutation.
func (m *VerificationSubmissionMutation) ForwardedProvidersCleared() bool {
	_, ok := m.clearedFields[verificationsubmission.FieldForwardedProviders]
	return ok
}

// ResetForwardedProviders resets all changes to the "forwarded_providers" field.
func (m *VerificationSubmissionMutation) ResetForwardedProviders() {
	m.forwarded_providers = nil
	m.appendforwarded_providers = nil
	delete(m.clearedFields, verificationsubmission.FieldForwardedProviders)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *VerificationSubmissionMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *VerificationSubmissionMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the VerificationSubmission entity.
// If the VerificationSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationSubmissionMutation) OldSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (m *VerificationSubmissionMutation) ClearSubmittedAt() {
	m.submitted_at = nil
	m.clearedFields[verificationsubmission.FieldSubmittedAt] = struct{}{}
}

// SubmittedAtCleared returns if the "submitted_at" field was cleared in this mutation.
func (m *VerificationSubmissionMutation) SubmittedAtCleared() bool {
	_, ok := m.clearedFields[verificationsubmission.FieldSubmittedAt]
	return ok
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *VerificationSubmissionMutation) ResetSubmittedAt() {
	m.submitted_at = nil
	delete(m.clearedFields, verificationsubmission.FieldSubmittedAt)
}

// AddStoredDocumentIDs adds the "stored_documents" edge to the StoredDocument entity by ids.
func (m *VerificationSubmissionMutation) AddStoredDocumentIDs(ids ...uuid.UUID) {
	if m.stored_documents == nil {
		m.stored_documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.stored_documents[ids[i]] = struct{}{}
	}
}

// ClearStoredDocuments clears the "stored_documents" edge to the StoredDocument entity.
func (m *VerificationSubmissionMutation) ClearStoredDocuments() {
	m.clearedstored_documents = true
}

// StoredDocumentsCleared reports if the "stored_documents" edge to the StoredDocument entity was cleared.
func (m *VerificationSubmissionMutation) StoredDocumentsCleared() bool {
	return m.clearedstored_documents
}

// RemoveStoredDocumentIDs removes the "stored_documents" edge to the StoredDocument entity by IDs.
func (m *VerificationSubmissionMutation) RemoveStoredDocumentIDs(ids ...uuid.UUID) {
	if m.removedstored_documents == nil {
		m.removedstored_documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.stored_documents, ids[i])
		m.removedstored_documents[ids[i]] = struct{}{}
	}
}

// RemovedStoredDocuments returns the removed IDs of the "stored_documents" edge to the StoredDocument entity.
func (m *VerificationSubmissionMutation) RemovedStoredDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removedstored_documents {
		ids = append(ids, id)
	}
	return
}

// StoredDocumentsIDs returns the "stored_documents" edge IDs in the mutation.
func (m *VerificationSubmissionMutation) StoredDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.stored_documents {
		ids = append(ids, id)
	}
	return
}

// ResetStoredDocuments resets all changes to the "stored_documents" edge.
func (m *VerificationSubmissionMutation) ResetStoredDocuments() {
	m.stored_documents = nil
	m.clearedstored_documents = false
	m.removedstored_documents = nil
}

// Where appends a list predicates to the VerificationSubmissionMutation builder.
func (m *VerificationSubmissionMutation) Where(ps ...predicate.VerificationSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationSubmission).
func (m *VerificationSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, verificationsubmission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, verificationsubmission.FieldUpdatedAt)
	}
	if m.kind != nil {
		fields = append(fields, verificationsubmission.FieldKind)
	}
	if m.current_step != nil {
		fields = append(fields, verificationsubmission.FieldCurrentStep)
	}
	if m.status != nil {
		fields = append(fields, verificationsubmission.FieldStatus)
	}
	if m.fields != nil {
		fields = append(fields, verificationsubmission.FieldFields)
	}
	if m.documents != nil {
		fields = append(fields, verificationsubmission.FieldDocuments)
	}
	if m.identifying_information != nil {
		fields = append(fields, verificationsubmission.FieldIdentifyingInformation)
	}
	if m.forwarded_providers != nil {
		fields = append(fields, verificationsubmission.FieldForwardedProviders)
	}
	if m.submitted_at != nil {
		fields = append(fields, verificationsubmission.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationsubmission.FieldCreatedAt:
		return m.CreatedAt()
	case verificationsubmission.FieldUpdatedAt:
		return m.UpdatedAt()
	case verificationsubmission.FieldKind:
		return m.Kind()
	case verificationsubmission.FieldCurrentStep:
		return m.CurrentStep()
	case verificationsubmission.FieldStatus:
		return m.Status()
	case verificationsubmission.FieldFields:
		return m.GetFields()
	case verificationsubmission.FieldDocuments:
		return m.Documents()
	case verificationsubmission.FieldIdentifyingInformation:
		return m.IdentifyingInformation()
	case verificationsubmission.FieldForwardedProviders:
		return m.ForwardedProviders()
	case verificationsubmission.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationsubmission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationsubmission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case verificationsubmission.FieldKind:
		return m.OldKind(ctx)
	case verificationsubmission.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case verificationsubmission.FieldStatus:
		return m.OldStatus(ctx)
	case verificationsubmission.FieldFields:
		return m.OldFields(ctx)
	case verificationsubmission.FieldDocuments:
		return m.OldDocuments(ctx)
	case verificationsubmission.FieldIdentifyingInformation:
		return m.OldIdentifyingInformation(ctx)
	case verificationsubmission.FieldForwardedProviders:
		return m.OldForwardedProviders(ctx)
	case verificationsubmission.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationsubmission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationsubmission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case verificationsubmission.FieldKind:
		v, ok := value.(verificationsubmission.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case verificationsubmission.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case verificationsubmission.FieldStatus:
		v, ok := value.(verificationsubmission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationsubmission.FieldFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case verificationsubmission.FieldDocuments:
		v, ok := value.([]types.DocumentRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocuments(v)
		return nil
	case verificationsubmission.FieldIdentifyingInformation:
		v, ok := value.([]types.IdentifyingInformation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifyingInformation(v)
		return nil
	case verificationsubmission.FieldForwardedProviders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForwardedProviders(v)
		return nil
	case verificationsubmission.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationSubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step != nil {
		fields = append(fields, verificationsubmission.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationsubmission.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationsubmission.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationSubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationsubmission.FieldDocuments) {
		fields = append(fields, verificationsubmission.FieldDocuments)
	}
	if m.FieldCleared(verificationsubmission.FieldIdentifyingInformation) {
		fields = append(fields, verificationsubmission.FieldIdentifyingInformation)
	}
	if m.FieldCleared(verificationsubmission.FieldForwardedProviders) {
		fields = append(fields, verificationsubmission.FieldForwardedProviders)
	}
	if m.FieldCleared(verificationsubmission.FieldSubmittedAt) {
		fields = append(fields, verificationsubmission.FieldSubmittedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationSubmissionMutation) ClearField(name string) error {
	switch name {
	case verificationsubmission.FieldDocuments:
		m.ClearDocuments()
		return nil
	case verificationsubmission.FieldIdentifyingInformation:
		m.ClearIdentifyingInformation()
		return nil
	case verificationsubmission.FieldForwardedProviders:
		m.ClearForwardedProviders()
		return nil
	case verificationsubmission.FieldSubmittedAt:
		m.ClearSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationSubmissionMutation) ResetField(name string) error {
	switch name {
	case verificationsubmission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationsubmission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case verificationsubmission.FieldKind:
		m.ResetKind()
		return nil
	case verificationsubmission.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case verificationsubmission.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationsubmission.FieldFields:
		m.ResetFields()
		return nil
	case verificationsubmission.FieldDocuments:
		m.ResetDocuments()
		return nil
	case verificationsubmission.FieldIdentifyingInformation:
		m.ResetIdentifyingInformation()
		return nil
	case verificationsubmission.FieldForwardedProviders:
		m.ResetForwardedProviders()
		return nil
	case verificationsubmission.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stored_documents != nil {
		edges = append(edges, verificationsubmission.EdgeStoredDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationsubmission.EdgeStoredDocuments:
		ids := make([]ent.Value, 0, len(m.stored_documents))
		for id := range m.stored_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstored_documents != nil {
		edges = append(edges, verificationsubmission.EdgeStoredDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationSubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case verificationsubmission.EdgeStoredDocuments:
		ids := make([]ent.Value, 0, len(m.removedstored_documents))
		for id := range m.removedstored_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstored_documents {
		edges = append(edges, verificationsubmission.EdgeStoredDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationsubmission.EdgeStoredDocuments:
		return m.clearedstored_documents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationSubmissionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case verificationsubmission.EdgeStoredDocuments:
		m.ResetStoredDocuments()
		return nil
	}
	return fmt.Errorf("unknown VerificationSubmission edge %s", name)
}
