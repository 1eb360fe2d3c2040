// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
	"github.com/towoju5/bridge-verification-system-sub001/ent/verificationsubmission"
)

// VerificationSubmissionDelete is the builder for deleting a VerificationSubmission entity.
type VerificationSubmissionDelete struct {
	config
	hooks    []Hook
	mutation *VerificationSubmissionMutation
}

// Where appends a list predicates to the VerificationSubmissionDelete builder.
func (vsd *VerificationSubmissionDelete) Where(ps ...predicate.VerificationSubmission) *VerificationSubmissionDelete {
	vsd.mutation.Where(ps...)
	return vsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (vsd *VerificationSubmissionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, vsd.sqlExec, vsd.mutation, vsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (vsd *VerificationSubmissionDelete) ExecX(ctx context.Context) int {
	n, err := vsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (vsd *VerificationSubmissionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(verificationsubmission.Table, sqlgraph.NewFieldSpec(verificationsubmission.FieldID, field.TypeUUID))
	if ps := vsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, vsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	vsd.mutation.done = true
	return affected, err
}

// VerificationSubmissionDeleteOne is the builder for deleting a single VerificationSubmission entity.
type VerificationSubmissionDeleteOne struct {
	vsd *VerificationSubmissionDelete
}

// Where appends a list predicates to the VerificationSubmissionDelete builder.
func (vsdo *VerificationSubmissionDeleteOne) Where(ps ...predicate.VerificationSubmission) *VerificationSubmissionDeleteOne {
	vsdo.vsd.mutation.Where(ps...)
	return vsdo
}

// Exec executes the deletion query.
func (vsdo *VerificationSubmissionDeleteOne) Exec(ctx context.Context) error {
	n, err := vsdo.vsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{verificationsubmission.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vsdo *VerificationSubmissionDeleteOne) ExecX(ctx context.Context) {
	if err := vsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
