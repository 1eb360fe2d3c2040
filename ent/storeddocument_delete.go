// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/towoju5/bridge-verification-system-sub001/ent/predicate"
	"github.com/towoju5/bridge-verification-system-sub001/ent/storeddocument"
)

// StoredDocumentDelete is the builder for deleting a StoredDocument entity.
type StoredDocumentDelete struct {
	config
	hooks    []Hook
	mutation *StoredDocumentMutation
}

// Where appends a list predicates to the StoredDocumentDelete builder.
func (sdd *StoredDocumentDelete) Where(ps ...predicate.StoredDocument) *StoredDocumentDelete {
	sdd.mutation.Where(ps...)
	return sdd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (sdd *StoredDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, sdd.sqlExec, sdd.mutation, sdd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (sdd *StoredDocumentDelete) ExecX(ctx context.Context) int {
	n, err := sdd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (sdd *StoredDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(storeddocument.Table, sqlgraph.NewFieldSpec(storeddocument.FieldID, field.TypeUUID))
	if ps := sdd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, sdd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	sdd.mutation.done = true
	return affected, err
}

// StoredDocumentDeleteOne is the builder for deleting a single StoredDocument entity.
type StoredDocumentDeleteOne struct {
	sdd *StoredDocumentDelete
}

// Where appends a list predicates to the StoredDocumentDelete builder.
func (sddo *StoredDocumentDeleteOne) Where(ps ...predicate.StoredDocument) *StoredDocumentDeleteOne {
	sddo.sdd.mutation.Where(ps...)
	return sddo
}

// Exec executes the deletion query.
func (sddo *StoredDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := sddo.sdd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{storeddocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sddo *StoredDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := sddo.Exec(ctx); err != nil {
		panic(err)
	}
}
