// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// VerificationSubmissionUpdate is the builder for updating VerificationSubmission entities.
type VerificationSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationSubmissionMutation
}

// Where appends a list predicates to the VerificationSubmissionUpdate builder.
func (vsu *VerificationSubmissionUpdate) Where(ps ...predicate.VerificationSubmission) *VerificationSubmissionUpdate {
	vsu.mutation.Where(ps...)
	return vsu
}

// SetUpdatedAt sets the "updated_at" field.
func (vsu *VerificationSubmissionUpdate) SetUpdatedAt(t time.Time) *VerificationSubmissionUpdate {
	vsu.mutation.SetUpdatedAt(t)
	return vsu
}

// SetCurrentStep sets the "current_step" field.
func (vsu *VerificationSubmissionUpdate) SetCurrentStep(i int) *VerificationSubmissionUpdate {
	vsu.mutation.ResetCurrentStep()
	vsu.mutation.SetCurrentStep(i)
	return vsu
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (vsu *VerificationSubmissionUpdate) SetNillableCurrentStep(i *int) *VerificationSubmissionUpdate {
	if i != nil {
		vsu.SetCurrentStep(*i)
	}
	return vsu
}

// AddCurrentStep adds i to the "current_step" field.
func (vsu *VerificationSubmissionUpdate) AddCurrentStep(i int) *VerificationSubmissionUpdate {
	vsu.mutation.AddCurrentStep(i)
	return vsu
}

// SetStatus sets the "status" field.
func (vsu *VerificationSubmissionUpdate) SetStatus(v verificationsubmission.Status) *VerificationSubmissionUpdate {
	vsu.mutation.SetStatus(v)
	return vsu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vsu *VerificationSubmissionUpdate) SetNillableStatus(v *verificationsubmission.Status) *VerificationSubmissionUpdate {
	if v != nil {
		vsu.SetStatus(*v)
	}
	return vsu
}

// SetFields sets the "fields" field.
func (vsu *VerificationSubmissionUpdate) SetFields(m map[string]interface{}) *VerificationSubmissionUpdate {
	vsu.mutation.SetFields(m)
	return vsu
}

// SetDocuments sets the "documents" field.
func (vsu *VerificationSubmissionUpdate) SetDocuments(tr []types.DocumentRef) *VerificationSubmissionUpdate {
	vsu.mutation.SetDocuments(tr)
	return vsu
}

// AppendDocuments appends tr to the "documents" field.
func (vsu *VerificationSubmissionUpdate) AppendDocuments(tr []types.DocumentRef) *VerificationSubmissionUpdate {
	vsu.mutation.AppendDocuments(tr)
	return vsu
}

// ClearDocuments clears the value of the "documents" field.
func (vsu *VerificationSubmissionUpdate) ClearDocuments() *VerificationSubmissionUpdate {
	vsu.mutation.ClearDocuments()
	return vsu
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (vsu *VerificationSubmissionUpdate) SetIdentifyingInformation(ti []types.IdentifyingInformation) *VerificationSubmissionUpdate {
	vsu.mutation.SetIdentifyingInformation(ti)
	return vsu
}

// AppendIdentifyingInformation appends ti to the "identifying_information" field.
func (vsu *VerificationSubmissionUpdate) AppendIdentifyingInformation(ti []types.IdentifyingInformation) *VerificationSubmissionUpdate {
	vsu.mutation.AppendIdentifyingInformation(ti)
	return vsu
}

// ClearIdentifyingInformation clears the value of the "identifying_information" field.
func (vsu *VerificationSubmissionUpdate) ClearIdentifyingInformation() *VerificationSubmissionUpdate {
	vsu.mutation.ClearIdentifyingInformation()
	return vsu
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (vsu *VerificationSubmissionUpdate) SetForwardedProviders(s []string) *VerificationSubmissionUpdate {
	vsu.mutation.SetForwardedProviders(s)
	return vsu
}

// AppendForwardedProviders appends s to the "forwarded_providers" field.
func (vsu *VerificationSubmissionUpdate) AppendForwardedProviders(s []string) *VerificationSubmissionUpdate {
	vsu.mutation.AppendForwardedProviders(s)
	return vsu
}

// ClearForwardedProviders clears the value of the "forwarded_providers" field.
func (vsu *VerificationSubmissionUpdate) ClearForwardedProviders() *VerificationSubmissionUpdate {
	vsu.mutation.ClearForwardedProviders()
	return vsu
}

// SetSubmittedAt sets the "submitted_at" field.
func (vsu *VerificationSubmissionUpdate) SetSubmittedAt(t time.Time) *VerificationSubmissionUpdate {
	vsu.mutation.SetSubmittedAt(t)
	return vsu
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (vsu *VerificationSubmissionUpdate) SetNillableSubmittedAt(t *time.Time) *VerificationSubmissionUpdate {
	if t != nil {
		vsu.SetSubmittedAt(*t)
	}
	return vsu
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (vsu *VerificationSubmissionUpdate) ClearSubmittedAt() *VerificationSubmissionUpdate {
	vsu.mutation.ClearSubmittedAt()
	return vsu
}

// AddStoredDocumentIDs adds the "stored_documents" edge to the StoredDocument entity by IDs.
func (vsu *VerificationSubmissionUpdate) AddStoredDocumentIDs(ids ...uuid.UUID) *VerificationSubmissionUpdate {
	vsu.mutation.AddStoredDocumentIDs(ids...)
	return vsu
}

// AddStoredDocuments adds the "stored_documents" edges to the StoredDocument entity.
func (vsu *VerificationSubmissionUpdate) AddStoredDocuments(s ...*StoredDocument) *VerificationSubmissionUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return vsu.AddStoredDocumentIDs(ids...)
}

// Mutation returns the VerificationSubmissionMutation object of the builder.
func (vsu *VerificationSubmissionUpdate) Mutation() *VerificationSubmissionMutation {
	return vsu.mutation
}

// ClearStoredDocuments clears all "stored_documents" edges to the StoredDocument entity.
func (vsu *VerificationSubmissionUpdate) ClearStoredDocuments() *VerificationSubmissionUpdate {
	vsu.mutation.ClearStoredDocuments()
	return vsu
}

// RemoveStoredDocumentIDs removes the "stored_documents" edge to StoredDocument entities by IDs.
func (vsu *VerificationSubmissionUpdate) RemoveStoredDocumentIDs(ids ...uuid.UUID) *VerificationSubmissionUpdate {
	vsu.mutation.RemoveStoredDocumentIDs(ids...)
	return vsu
}

// RemoveStoredDocuments removes "stored_documents" edges to StoredDocument entities.
func (vsu *VerificationSubmissionUpdate) RemoveStoredDocuments(s ...*StoredDocument) *VerificationSubmissionUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return vsu.RemoveStoredDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vsu *VerificationSubmissionUpdate) Save(ctx context.Context) (int, error) {
	vsu.defaults()
	return withHooks(ctx, vsu.sqlSave, vsu.mutation, vsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vsu *VerificationSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := vsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vsu *VerificationSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := vsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vsu *VerificationSubmissionUpdate) ExecX(ctx context.Context) {
	if err := vsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vsu *VerificationSubmissionUpdate) defaults() {
	if _, ok := vsu.mutation.UpdatedAt(); !ok {
		v := verificationsubmission.UpdateDefaultUpdatedAt()
		vsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vsu *VerificationSubmissionUpdate) check() error {
	if v, ok := vsu.mutation.Status(); ok {
		if err := verificationsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationSubmission.status": %w`, err)}
		}
	}
	return nil
}

func (vsu *VerificationSubmissionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationsubmission.Table, verificationsubmission.Columns, sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID))
	if ps := vsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vsu.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationsubmission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vsu.mutation.CurrentStep(); ok {
		_spec.SetField(verificationsubmission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := vsu.mutation.AddedCurrentStep(); ok {
		_spec.AddField(verificationsubmission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := vsu.mutation.Status(); ok {
		_spec.SetField(verificationsubmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := vsu.mutation.GetFields(); ok {
		_spec.SetField(verificationsubmission.FieldFields, field.TypeJSON, value)
	}
	if value, ok := vsu.mutation.Documents(); ok {
		_spec.SetField(verificationsubmission.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := vsu.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationsubmission.FieldDocuments, value)
		})
	}
	if vsu.mutation.DocumentsCleared() {
		_spec.ClearField(verificationsubmission.FieldDocuments, field.TypeJSON)
	}
	if value, ok := vsu.mutation.IdentifyingInformation(); ok {
		_spec.SetField(verificationsubmission.FieldIdentifyingInformation, field.TypeJSON, value)
	}
	if value, ok := vsu.mutation.AppendedIdentifyingInformation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationsubmission.FieldIdentifyingInformation, value)
		})
	}
	if vsu.mutation.IdentifyingInformationCleared() {
		_spec.ClearField(verificationsubmission.FieldIdentifyingInformation, field.TypeJSON)
	}
	if value, ok := vsu.mutation.ForwardedProviders(); ok {
		_spec.SetField(verificationsubmission.FieldForwardedProviders, field.TypeJSON, value)
	}
	if value, ok := vsu.mutation.AppendedForwardedProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationsubmission.FieldForwardedProviders, value)
		})
	}
	if vsu.mutation.ForwardedProvidersCleared() {
		_spec.ClearField(verificationsubmission.FieldForwardedProviders, field.TypeJSON)
	}
	if value, ok := vsu.mutation.SubmittedAt(); ok {
		_spec.SetField(verificationsubmission.FieldSubmittedAt, field.TypeTime, value)
	}
	if vsu.mutation.SubmittedAtCleared() {
		_spec.ClearField(verificationsubmission.FieldSubmittedAt, field.TypeTime)
	}
	if vsu.mutation.StoredDocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vsu.mutation.RemovedStoredDocumentsIDs(); len(nodes) > 0 && !vsu.mutation.StoredDocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vsu.mutation.StoredDocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vsu.mutation.done = true
	return n, nil
}

// VerificationSubmissionUpdateOne is the builder for updating a single VerificationSubmission entity.
type VerificationSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationSubmissionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (vsuo *VerificationSubmissionUpdateOne) SetUpdatedAt(t time.Time) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetUpdatedAt(t)
	return vsuo
}

// SetCurrentStep sets the "current_step" field.
func (vsuo *VerificationSubmissionUpdateOne) SetCurrentStep(i int) *VerificationSubmissionUpdateOne {
	vsuo.mutation.ResetCurrentStep()
	vsuo.mutation.SetCurrentStep(i)
	return vsuo
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (vsuo *VerificationSubmissionUpdateOne) SetNillableCurrentStep(i *int) *VerificationSubmissionUpdateOne {
	if i != nil {
		vsuo.SetCurrentStep(*i)
	}
	return vsuo
}

// AddCurrentStep adds i to the "current_step" field.
func (vsuo *VerificationSubmissionUpdateOne) AddCurrentStep(i int) *VerificationSubmissionUpdateOne {
	vsuo.mutation.AddCurrentStep(i)
	return vsuo
}

// SetStatus sets the "status" field.
func (vsuo *VerificationSubmissionUpdateOne) SetStatus(v verificationsubmission.Status) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetStatus(v)
	return vsuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (vsuo *VerificationSubmissionUpdateOne) SetNillableStatus(v *verificationsubmission.Status) *VerificationSubmissionUpdateOne {
	if v != nil {
		vsuo.SetStatus(*v)
	}
	return vsuo
}

// SetFields sets the "fields" field.
func (vsuo *VerificationSubmissionUpdateOne) SetFields(m map[string]interface{}) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetFields(m)
	return vsuo
}

// SetDocuments sets the "documents" field.
func (vsuo *VerificationSubmissionUpdateOne) SetDocuments(tr []types.DocumentRef) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetDocuments(tr)
	return vsuo
}

// AppendDocuments appends tr to the "documents" field.
func (vsuo *VerificationSubmissionUpdateOne) AppendDocuments(tr []types.DocumentRef) *VerificationSubmissionUpdateOne {
	vsuo.mutation.AppendDocuments(tr)
	return vsuo
}

// ClearDocuments clears the value of the "documents" field.
func (vsuo *VerificationSubmissionUpdateOne) ClearDocuments() *VerificationSubmissionUpdateOne {
	vsuo.mutation.ClearDocuments()
	return vsuo
}

// SetIdentifyingInformation sets the "identifying_information" field.
func (vsuo *VerificationSubmissionUpdateOne) SetIdentifyingInformation(ti []types.IdentifyingInformation) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetIdentifyingInformation(ti)
	return vsuo
}

// AppendIdentifyingInformation appends ti to the "identifying_information" field.
func (vsuo *VerificationSubmissionUpdateOne) AppendIdentifyingInformation(ti []types.IdentifyingInformation) *VerificationSubmissionUpdateOne {
	vsuo.mutation.AppendIdentifyingInformation(ti)
	return vsuo
}

// ClearIdentifyingInformation clears the value of the "identifying_information" field.
func (vsuo *VerificationSubmissionUpdateOne) ClearIdentifyingInformation() *VerificationSubmissionUpdateOne {
	vsuo.mutation.ClearIdentifyingInformation()
	return vsuo
}

// SetForwardedProviders sets the "forwarded_providers" field.
func (vsuo *VerificationSubmissionUpdateOne) SetForwardedProviders(s []string) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetForwardedProviders(s)
	return vsuo
}

// AppendForwardedProviders appends s to the "forwarded_providers" field.
func (vsuo *VerificationSubmissionUpdateOne) AppendForwardedProviders(s []string) *VerificationSubmissionUpdateOne {
	vsuo.mutation.AppendForwardedProviders(s)
	return vsuo
}

// ClearForwardedProviders clears the value of the "forwarded_providers" field.
func (vsuo *VerificationSubmissionUpdateOne) ClearForwardedProviders() *VerificationSubmissionUpdateOne {
	vsuo.mutation.ClearForwardedProviders()
	return vsuo
}

// SetSubmittedAt sets the "submitted_at" field.
func (vsuo *VerificationSubmissionUpdateOne) SetSubmittedAt(t time.Time) *VerificationSubmissionUpdateOne {
	vsuo.mutation.SetSubmittedAt(t)
	return vsuo
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (vsuo *VerificationSubmissionUpdateOne) SetNillableSubmittedAt(t *time.Time) *VerificationSubmissionUpdateOne {
	if t != nil {
		vsuo.SetSubmittedAt(*t)
	}
	return vsuo
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (vsuo *VerificationSubmissionUpdateOne) ClearSubmittedAt() *VerificationSubmissionUpdateOne {
	vsuo.mutation.ClearSubmittedAt()
	return vsuo
}

// AddStoredDocumentIDs adds the "stored_documents" edge to the StoredDocument entity by IDs.
func (vsuo *VerificationSubmissionUpdateOne) AddStoredDocumentIDs(ids ...uuid.UUID) *VerificationSubmissionUpdateOne {
	vsuo.mutation.AddStoredDocumentIDs(ids...)
	return vsuo
}

// AddStoredDocuments adds the "stored_documents" edges to the StoredDocument entity.
func (vsuo *VerificationSubmissionUpdateOne) AddStoredDocuments(s ...*StoredDocument) *VerificationSubmissionUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return vsuo.AddStoredDocumentIDs(ids...)
}

// Mutation returns the VerificationSubmissionMutation object of the builder.
func (vsuo *VerificationSubmissionUpdateOne) Mutation() *VerificationSubmissionMutation {
	return vsuo.mutation
}

// ClearStoredDocuments clears all "stored_documents" edges to the StoredDocument entity.
func (vsuo *VerificationSubmissionUpdateOne) ClearStoredDocuments() *VerificationSubmissionUpdateOne {
	vsuo.mutation.ClearStoredDocuments()
	return vsuo
}

// RemoveStoredDocumentIDs removes the "stored_documents" edge to StoredDocument entities by IDs.
func (vsuo *VerificationSubmissionUpdateOne) RemoveStoredDocumentIDs(ids ...uuid.UUID) *VerificationSubmissionUpdateOne {
	vsuo.mutation.RemoveStoredDocumentIDs(ids...)
	return vsuo
}

// RemoveStoredDocuments removes "stored_documents" edges to StoredDocument entities.
func (vsuo *VerificationSubmissionUpdateOne) RemoveStoredDocuments(s ...*StoredDocument) *VerificationSubmissionUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return vsuo.RemoveStoredDocumentIDs(ids...)
}

// Where appends a list predicates to the VerificationSubmissionUpdate builder.
func (vsuo *VerificationSubmissionUpdateOne) Where(ps ...predicate.VerificationSubmission) *VerificationSubmissionUpdateOne {
	vsuo.mutation.Where(ps...)
	return vsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vsuo *VerificationSubmissionUpdateOne) Select(field string, fields ...string) *VerificationSubmissionUpdateOne {
	vsuo.fields = append([]string{field}, fields...)
	return vsuo
}

// Save executes the query and returns the updated VerificationSubmission entity.
func (vsuo *VerificationSubmissionUpdateOne) Save(ctx context.Context) (*VerificationSubmission, error) {
	vsuo.defaults()
	return withHooks(ctx, vsuo.sqlSave, vsuo.mutation, vsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vsuo *VerificationSubmissionUpdateOne) SaveX(ctx context.Context) *VerificationSubmission {
	node, err := vsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vsuo *VerificationSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := vsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vsuo *VerificationSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := vsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vsuo *VerificationSubmissionUpdateOne) defaults() {
	if _, ok := vsuo.mutation.UpdatedAt(); !ok {
		v := verificationsubmission.UpdateDefaultUpdatedAt()
		vsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vsuo *VerificationSubmissionUpdateOne) check() error {
	if v, ok := vsuo.mutation.Status(); ok {
		if err := verificationsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationSubmission.status": %w`, err)}
		}
	}
	return nil
}

func (vsuo *VerificationSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *VerificationSubmission, err error) {
	if err := vsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationsubmission.Table, verificationsubmission.Columns, sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID))
	id, ok := vsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationsubmission.FieldID)
		for _, f := range fields {
			if !verificationsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationsubmission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationsubmission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := vsuo.mutation.CurrentStep(); ok {
		_spec.SetField(verificationsubmission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := vsuo.mutation.AddedCurrentStep(); ok {
		_spec.AddField(verificationsubmission.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := vsuo.mutation.Status(); ok {
		_spec.SetField(verificationsubmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := vsuo.mutation.GetFields(); ok {
		_spec.SetField(verificationsubmission.FieldFields, field.TypeJSON, value)
	}
	if value, ok := vsuo.mutation.Documents(); ok {
		_spec.SetField(verificationsubmission.FieldDocuments, field.TypeJSON, value)
	}
	if value, ok := vsuo.mutation.AppendedDocuments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationsubmission.FieldDocuments, value)
		})
	}
	if vsuo.mutation.DocumentsCleared() {
		_spec.ClearField(verificationsubmission.FieldDocuments, field.TypeJSON)
	}
	if value, ok := vsuo.mutation.IdentifyingInformation(); ok {
		_spec.SetField(verificationsubmission.FieldIdentifyingInformation, field.TypeJSON, value)
	}
	if value, ok := vsuo.mutation.AppendedIdentifyingInformation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationsubmission.FieldIdentifyingInformation, value)
		})
	}
	if vsuo.mutation.IdentifyingInformationCleared() {
		_spec.ClearField(verificationsubmission.FieldIdentifyingInformation, field.TypeJSON)
	}
	if value, ok := vsuo.mutation.ForwardedProviders(); ok {
		_spec.SetField(verificationsubmission.FieldForwardedProviders, field.TypeJSON, value)
	}
	if value, ok := vsuo.mutation.AppendedForwardedProviders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationsubmission.FieldForwardedProviders, value)
		})
	}
	if vsuo.mutation.ForwardedProvidersCleared() {
		_spec.ClearField(verificationsubmission.FieldForwardedProviders, field.TypeJSON)
	}
	if value, ok := vsuo.mutation.SubmittedAt(); ok {
		_spec.SetField(verificationsubmission.FieldSubmittedAt, field.TypeTime, value)
	}
	if vsuo.mutation.SubmittedAtCleared() {
		_spec.ClearField(verificationsubmission.FieldSubmittedAt, field.TypeTime)
	}
	if vsuo.mutation.StoredDocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vsuo.mutation.RemovedStoredDocumentsIDs(); len(nodes) > 0 && !vsuo.mutation.StoredDocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vsuo.mutation.StoredDocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationSubmission{config: vsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vsuo.mutation.done = true
	return _node, nil
}
