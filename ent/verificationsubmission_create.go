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
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// VerificationSubmissionCreate is the builder for creating a VerificationSubmission entity.
type VerificationSubmissionCreate struct {
	config
	mutation *VerificationSubmissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (vsc *VerificationSubmissionCreate) SetCreatedAt(t time.Time) *VerificationSubmissionCreate {
	vsc.mutation.SetCreatedAt(t)
	return vsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vsc *VerificationSubmissionCreate) SetNillableCreatedAt(t *time.Time) *VerificationSubmissionCreate {
	if t != nil {
		vsc.SetCreatedAt(*t)
	}
	return vsc
}

// SetUpdatedAt sets the "updated_at" field.
func (vsc *VerificationSubmissionCreate) SetUpdatedAt(t time.Time) *VerificationSubmissionCreate {
	vsc.mutation.SetUpdatedAt(t)
	return vsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (vsc *VerificationSubmissionCreate) SetNillableUpdatedAt(t *time.Time) *VerificationSubmissionCreate {
	if t != nil {
		vsc.SetUpdatedAt(*t)
	}
	return vsc
}

// SetKind sets the "kind" field.
func (vsc *VerificationSubmissionCreate) SetKind(v verificationsubmission.Kind) *VerificationSubmissionCreate {
	vsc.mutation.SetKind(v)
	return vsc
}

// SetCurrentStep sets the "current_step" field.
func (vsc *VerificationSubmissionCreate) SetCurrentStep(i int) *VerificationSubmissionCreate {
	vsc.mutation.SetCurrentStep(i)
	return vsc
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (vsc *VerificationSubmissionCreate) SetNillableCurrentStep(i *int) *VerificationSubmissionCreate {
	if i != nil {
		vsc.SetCurrentStep(*i)
	}
	return vsc
}

// SetStatus sets the "status" field.
func (vsc *VerificationSubmissionCreate) SetStatus(v verificationsubmission.Status) *VerificationSubmissionCreate {
	vsc.mutation.SetStatus(v)
	return vsc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vsc *VerificationSubmissionCreate) SetNillableStatus(v *verificationsubmission.Status) *VerificationSubmissionCreate {
	if v != nil {
		vsc.SetStatus(*v)
	}
	return vsc
}

// SetFields sets the "fields" field.
func (vsc *VerificationSubmissionCreate) SetFields(m map[string]interface{}) *VerificationSubmissionCreate {
	vsc.mutation.SetFields(m)
	return vsc
}

// SetDocuments sets the "documents" field.
func (vsc *VerificationSubmissionCreate) SetDocuments(tr []types.DocumentRef) *VerificationSubmissionCreate {
	vsc.mutation.SetDocuments(tr)
	return vsc
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (vsc *VerificationSubmissionCreate) SetIdentifyingInformation(ti []types.IdentifyingInformation) *VerificationSubmissionCreate {
	vsc.mutation.SetIdentifyingInformation(ti)
	return vsc
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (vsc *VerificationSubmissionCreate) SetForwardedProviders(s []string) *VerificationSubmissionCreate {
	vsc.mutation.SetForwardedProviders(s)
	return vsc
}

// SetSubmittedAt sets the "submitted_at" field.
func (vsc *VerificationSubmissionCreate) SetSubmittedAt(t time.Time) *VerificationSubmissionCreate {
	vsc.mutation.SetSubmittedAt(t)
	return vsc
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (vsc *VerificationSubmissionCreate) SetNillableSubmittedAt(t *time.Time) *VerificationSubmissionCreate {
	if t != nil {
		vsc.SetSubmittedAt(*t)
	}
	return vsc
}

// SetID sets the "id" field.
func (vsc *VerificationSubmissionCreate) SetID(u uuid.UUID) *VerificationSubmissionCreate {
	vsc.mutation.SetID(u)
	return vsc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (vsc *VerificationSubmissionCreate) SetNillableID(u *uuid.UUID) *VerificationSubmissionCreate {
	if u != nil {
		vsc.SetID(*u)
	}
	return vsc
}

// AddStoredDocumentIDs adds the "stored_documents" edge to the StoredDocument entity by IDs.
func (vsc *VerificationSubmissionCreate) AddStoredDocumentIDs(ids ...uuid.UUID) *VerificationSubmissionCreate {
	vsc.mutation.AddStoredDocumentIDs(ids...)
	return vsc
}

// AddStoredDocuments adds the "stored_documents" edges to the StoredDocument entity.
func (vsc *VerificationSubmissionCreate) AddStoredDocuments(s ...*StoredDocument) *VerificationSubmissionCreate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return vsc.AddStoredDocumentIDs(ids...)
}

// Mutation returns the VerificationSubmissionMutation object of the builder.
func (vsc *VerificationSubmissionCreate) Mutation() *VerificationSubmissionMutation {
	return vsc.mutation
}

// Save creates the VerificationSubmission in the database.
func (vsc *VerificationSubmissionCreate) Save(ctx context.Context) (*VerificationSubmission, error) {
	vsc.defaults()
	return withHooks(ctx, vsc.sqlSave, vsc.mutation, vsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vsc *VerificationSubmissionCreate) SaveX(ctx context.Context) *VerificationSubmission {
	v, err := vsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vsc *VerificationSubmissionCreate) Exec(ctx context.Context) error {
	_, err := vsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vsc *VerificationSubmissionCreate) ExecX(ctx context.Context) {
	if err := vsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vsc *VerificationSubmissionCreate) defaults() {
	if _, ok := vsc.mutation.CreatedAt(); !ok {
		v := verificationsubmission.DefaultCreatedAt()
		vsc.mutation.SetCreatedAt(v)
	}
	if _, ok := vsc.mutation.UpdatedAt(); !ok {
		v := verificationsubmission.DefaultUpdatedAt()
		vsc.mutation.SetUpdatedAt(v)
	}
	if _, ok := vsc.mutation.CurrentStep(); !ok {
		v := verificationsubmission.DefaultCurrentStep
		vsc.mutation.SetCurrentStep(v)
	}
	if _, ok := vsc.mutation.Status(); !ok {
		v := verificationsubmission.DefaultStatus
		vsc.mutation.SetStatus(v)
	}
	if _, ok := vsc.mutation.GetFields(); !ok {
		v := verificationsubmission.DefaultFields
		vsc.mutation.SetFields(v)
	}
	if _, ok := vsc.mutation.ID(); !ok {
		v := verificationsubmission.DefaultID()
		vsc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vsc *VerificationSubmissionCreate) check() error {
	if _, ok := vsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationSubmission.created_at"`)}
	}
	if _, ok := vsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VerificationSubmission.updated_at"`)}
	}
	if _, ok := vsc.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "VerificationSubmission.kind"`)}
	}
	if v, ok := vsc.mutation.Kind(); ok {
		if err := verificationsubmission.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "VerificationSubmission.kind": %w`, err)}
		}
	}
	if _, ok := vsc.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "VerificationSubmission.current_step"`)}
	}
	if _, ok := vsc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationSubmission.status"`)}
	}
	if v, ok := vsc.mutation.Status(); ok {
		if err := verificationsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationSubmission.status": %w`, err)}
		}
	}
	if _, ok := vsc.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "VerificationSubmission.fields"`)}
	}
	return nil
}

func (vsc *VerificationSubmissionCreate) sqlSave(ctx context.Context) (*VerificationSubmission, error) {
	if err := vsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vsc.driver, _spec); err != nil {
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
	vsc.mutation.id = &_node.ID
	vsc.mutation.done = true
	return _node, nil
}

func (vsc *VerificationSubmissionCreate) createSpec() (*VerificationSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationSubmission{config: vsc.config}
		_spec = sqlgraph.NewCreateSpec(verificationsubmission.Table, sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = vsc.conflict
	if id, ok := vsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := vsc.mutation.CreatedAt(); ok {
		_spec.SetField(verificationsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := vsc.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationsubmission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := vsc.mutation.Kind(); ok {
		_spec.SetField(verificationsubmission.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := vsc.mutation.CurrentStep(); ok {
		_spec.SetField(verificationsubmission.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := vsc.mutation.Status(); ok {
		_spec.SetField(verificationsubmission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := vsc.mutation.GetFields(); ok {
		_spec.SetField(verificationsubmission.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := vsc.mutation.Documents(); ok {
		_spec.SetField(verificationsubmission.FieldDocuments, field.TypeJSON, value)
		_node.Documents = value
	}
	if value, ok := vsc.mutation.IdentifyingInformation(); ok {
		_spec.SetField(verificationsubmission.FieldIdentifyingInformation, field.TypeJSON, value)
		_node.IdentifyingInformation = value
	}
	if value, ok := vsc.mutation.ForwardedProviders(); ok {
		_spec.SetField(verificationsubmission.FieldForwardedProviders, field.TypeJSON, value)
		_node.ForwardedProviders = value
	}
	if value, ok := vsc.mutation.SubmittedAt(); ok {
		_spec.SetField(verificationsubmission.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if nodes := vsc.mutation.StoredDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationsubmission.StoredDocumentsTable,
			Columns: []string{verificationsubmission.StoredDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storeddocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VerificationSubmission.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VerificationSubmissionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (vsc *VerificationSubmissionCreate) OnConflict(opts ...sql.ConflictOption) *VerificationSubmissionUpsertOne {
	vsc.conflict = opts
	return &VerificationSubmissionUpsertOne{
		create: vsc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VerificationSubmission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vsc *VerificationSubmissionCreate) OnConflictColumns(columns ...string) *VerificationSubmissionUpsertOne {
	vsc.conflict = append(vsc.conflict, sql.ConflictColumns(columns...))
	return &VerificationSubmissionUpsertOne{
		create: vsc,
	}
}

type (
	// VerificationSubmissionUpsertOne is the builder for "upsert"-ing
	//  one VerificationSubmission node.
	VerificationSubmissionUpsertOne struct {
		create *VerificationSubmissionCreate
	}

	// VerificationSubmissionUpsert is the "OnConflict" setter.
	VerificationSubmissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VerificationSubmissionUpsert) SetUpdatedAt(v time.Time) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateUpdatedAt() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldUpdatedAt)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *VerificationSubmissionUpsert) SetCurrentStep(v int) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateCurrentStep() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldCurrentStep)
	return u
}

// AddCurrentStep adds v to the "current_step" field.
func (u *VerificationSubmissionUpsert) AddCurrentStep(v int) *VerificationSubmissionUpsert {
	u.Add(verificationsubmission.FieldCurrentStep, v)
	return u
}

// SetStatus sets the "status" field.
func (u *VerificationSubmissionUpsert) SetStatus(v verificationsubmission.Status) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateStatus() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldStatus)
	return u
}

// SetFields sets the "fields" field.
func (u *VerificationSubmissionUpsert) SetFields(v map[string]interface{}) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldFields, v)
	return u
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateFields() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldFields)
	return u
}

// SetDocuments sets the "documents" field.
func (u *VerificationSubmissionUpsert) SetDocuments(v []types.DocumentRef) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldDocuments, v)
	return u
}

// UpdateDocuments sets the "documents" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateDocuments() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldDocuments)
	return u
}

// ClearDocuments clears the value of the "documents" field.
func (u *VerificationSubmissionUpsert) ClearDocuments() *VerificationSubmissionUpsert {
	u.SetNull(verificationsubmission.FieldDocuments)
	return u
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (u *VerificationSubmissionUpsert) SetIdentifyingInformation(v []types.IdentifyingInformation) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldIdentifyingInformation, v)
	return u
}

// UpdateIdentifyingInformation sets the "identifying_information" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateIdentifyingInformation() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldIdentifyingInformation)
	return u
}

// ClearIdentifyingInformation clears the value of the "identifying_information" field.
func (u *VerificationSubmissionUpsert) ClearIdentifyingInformation() *VerificationSubmissionUpsert {
	u.SetNull(verificationsubmission.FieldIdentifyingInformation)
	return u
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (u *VerificationSubmissionUpsert) SetForwardedProviders(v []string) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldForwardedProviders, v)
	return u
}

// UpdateForwardedProviders sets the "forwarded_providers" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateForwardedProviders() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldForwardedProviders)
	return u
}

// ClearForwardedProviders clears the value of the "forwarded_providers" field.
func (u *VerificationSubmissionUpsert) ClearForwardedProviders() *VerificationSubmissionUpsert {
	u.SetNull(verificationsubmission.FieldForwardedProviders)
	return u
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *VerificationSubmissionUpsert) SetSubmittedAt(v time.Time) *VerificationSubmissionUpsert {
	u.Set(verificationsubmission.FieldSubmittedAt, v)
	return u
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *VerificationSubmissionUpsert) UpdateSubmittedAt() *VerificationSubmissionUpsert {
	u.SetExcluded(verificationsubmission.FieldSubmittedAt)
	return u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *VerificationSubmissionUpsert) ClearSubmittedAt() *VerificationSubmissionUpsert {
	u.SetNull(verificationsubmission.FieldSubmittedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VerificationSubmission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(verificationsubmission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VerificationSubmissionUpsertOne) UpdateNewValues() *VerificationSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(verificationsubmission.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(verificationsubmission.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(verificationsubmission.FieldKind)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VerificationSubmission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VerificationSubmissionUpsertOne) Ignore() *VerificationSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VerificationSubmissionUpsertOne) DoNothing() *VerificationSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VerificationSubmissionCreate.OnConflict
// documentation for more info.
func (u *VerificationSubmissionUpsertOne) Update(set func(*VerificationSubmissionUpsert)) *VerificationSubmissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VerificationSubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VerificationSubmissionUpsertOne) SetUpdatedAt(v time.Time) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateUpdatedAt() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *VerificationSubmissionUpsertOne) SetCurrentStep(v int) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetCurrentStep(v)
	})
}

// AddCurrentStep adds v to the "current_step" field.
func (u *VerificationSubmissionUpsertOne) AddCurrentStep(v int) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.AddCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateCurrentStep() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateCurrentStep()
	})
}

// SetStatus sets the "status" field.
func (u *VerificationSubmissionUpsertOne) SetStatus(v verificationsubmission.Status) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateStatus() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateStatus()
	})
}

// SetFields sets the "fields" field.
func (u *VerificationSubmissionUpsertOne) SetFields(v map[string]interface{}) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateFields() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateFields()
	})
}

// SetDocuments sets the "documents" field.
func (u *VerificationSubmissionUpsertOne) SetDocuments(v []types.DocumentRef) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetDocuments(v)
	})
}

// UpdateDocuments sets the "documents" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateDocuments() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateDocuments()
	})
}

// ClearDocuments clears the value of the "documents" field.
func (u *VerificationSubmissionUpsertOne) ClearDocuments() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearDocuments()
	})
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (u *VerificationSubmissionUpsertOne) SetIdentifyingInformation(v []types.IdentifyingInformation) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetIdentifyingInformation(v)
	})
}

// UpdateIdentifyingInformation sets the "identifying_information" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateIdentifyingInformation() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateIdentifyingInformation()
	})
}

// ClearIdentifyingInformation clears the value of the "identifying_information" field.
func (u *VerificationSubmissionUpsertOne) ClearIdentifyingInformation() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearIdentifyingInformation()
	})
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (u *VerificationSubmissionUpsertOne) SetForwardedProviders(v []string) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetForwardedProviders(v)
	})
}

// UpdateForwardedProviders sets the "forwarded_providers" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateForwardedProviders() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateForwardedProviders()
	})
}

// ClearForwardedProviders clears the value of the "forwarded_providers" field.
func (u *VerificationSubmissionUpsertOne) ClearForwardedProviders() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearForwardedProviders()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *VerificationSubmissionUpsertOne) SetSubmittedAt(v time.Time) *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertOne) UpdateSubmittedAt() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *VerificationSubmissionUpsertOne) ClearSubmittedAt() *VerificationSubmissionUpsertOne {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearSubmittedAt()
	})
}

// Exec executes the query.
func (u *VerificationSubmissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VerificationSubmissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VerificationSubmissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VerificationSubmissionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VerificationSubmissionUpsertOne.ID is not supported by MySQL driver. Use VerificationSubmissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VerificationSubmissionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VerificationSubmissionCreateBulk is the builder for creating many VerificationSubmission entities in bulk.
type VerificationSubmissionCreateBulk struct {
	config
	err      error
	builders []*VerificationSubmissionCreate
	conflict []sql.ConflictOption
}

// Save creates the VerificationSubmission entities in the database.
func (vscb *VerificationSubmissionCreateBulk) Save(ctx context.Context) ([]*VerificationSubmission, error) {
	if vscb.err != nil {
		return nil, vscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vscb.builders))
	nodes := make([]*VerificationSubmission, len(vscb.builders))
	mutators := make([]Mutator, len(vscb.builders))
	for i := range vscb.builders {
		func(i int, root context.Context) {
			builder := vscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationSubmissionMutation)
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
					_, err = mutators[i+1].Mutate(root, vscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = vscb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vscb *VerificationSubmissionCreateBulk) SaveX(ctx context.Context) []*VerificationSubmission {
	v, err := vscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vscb *VerificationSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := vscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vscb *VerificationSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := vscb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VerificationSubmission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VerificationSubmissionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (vscb *VerificationSubmissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *VerificationSubmissionUpsertBulk {
	vscb.conflict = opts
	return &VerificationSubmissionUpsertBulk{
		create: vscb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VerificationSubmission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (vscb *VerificationSubmissionCreateBulk) OnConflictColumns(columns ...string) *VerificationSubmissionUpsertBulk {
	vscb.conflict = append(vscb.conflict, sql.ConflictColumns(columns...))
	return &VerificationSubmissionUpsertBulk{
		create: vscb,
	}
}

// VerificationSubmissionUpsertBulk is the builder for "upsert"-ing
// a bulk of VerificationSubmission nodes.
type VerificationSubmissionUpsertBulk struct {
	create *VerificationSubmissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VerificationSubmission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(verificationsubmission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VerificationSubmissionUpsertBulk) UpdateNewValues() *VerificationSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(verificationsubmission.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(verificationsubmission.FieldCreatedAt)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(verificationsubmission.FieldKind)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VerificationSubmission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VerificationSubmissionUpsertBulk) Ignore() *VerificationSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VerificationSubmissionUpsertBulk) DoNothing() *VerificationSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VerificationSubmissionCreateBulk.OnConflict
// documentation for more info.
func (u *VerificationSubmissionUpsertBulk) Update(set func(*VerificationSubmissionUpsert)) *VerificationSubmissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VerificationSubmissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VerificationSubmissionUpsertBulk) SetUpdatedAt(v time.Time) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateUpdatedAt() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *VerificationSubmissionUpsertBulk) SetCurrentStep(v int) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetCurrentStep(v)
	})
}

// AddCurrentStep adds v to the "current_step" field.
func (u *VerificationSubmissionUpsertBulk) AddCurrentStep(v int) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.AddCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateCurrentStep() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateCurrentStep()
	})
}

// SetStatus sets the "status" field.
func (u *VerificationSubmissionUpsertBulk) SetStatus(v verificationsubmission.Status) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateStatus() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateStatus()
	})
}

// SetFields sets the "fields" field.
func (u *VerificationSubmissionUpsertBulk) SetFields(v map[string]interface{}) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetFields(v)
	})
}

// UpdateFields sets the "fields" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateFields() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateFields()
	})
}

// SetDocuments sets the "documents" field.
func (u *VerificationSubmissionUpsertBulk) SetDocuments(v []types.DocumentRef) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetDocuments(v)
	})
}

// UpdateDocuments sets the "documents" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateDocuments() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateDocuments()
	})
}

// ClearDocuments clears the value of the "documents" field.
func (u *VerificationSubmissionUpsertBulk) ClearDocuments() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearDocuments()
	})
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (u *VerificationSubmissionUpsertBulk) SetIdentifyingInformation(v []types.IdentifyingInformation) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetIdentifyingInformation(v)
	})
}

// UpdateIdentifyingInformation sets the "identifying_information" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateIdentifyingInformation() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateIdentifyingInformation()
	})
}

// ClearIdentifyingInformation clears the value of the "identifying_information" field.
func (u *VerificationSubmissionUpsertBulk) ClearIdentifyingInformation() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearIdentifyingInformation()
	})
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (u *VerificationSubmissionUpsertBulk) SetForwardedProviders(v []string) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetForwardedProviders(v)
	})
}

// UpdateForwardedProviders sets the "forwarded_providers" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateForwardedProviders() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateForwardedProviders()
	})
}

// ClearForwardedProviders clears the value of the "forwarded_providers" field.
func (u *VerificationSubmissionUpsertBulk) ClearForwardedProviders() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearForwardedProviders()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *VerificationSubmissionUpsertBulk) SetSubmittedAt(v time.Time) *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *VerificationSubmissionUpsertBulk) UpdateSubmittedAt() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *VerificationSubmissionUpsertBulk) ClearSubmittedAt() *VerificationSubmissionUpsertBulk {
	return u.Update(func(s *VerificationSubmissionUpsert) {
		s.ClearSubmittedAt()
	})
}

// Exec executes the query.
func (u *VerificationSubmissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VerificationSubmissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VerificationSubmissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VerificationSubmissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
