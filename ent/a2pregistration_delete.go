// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danielmv/leadrevive/ent/a2pregistration"
	"github.com/danielmv/leadrevive/ent/predicate"
)

// A2PRegistrationDelete is the builder for deleting a A2PRegistration entity.
type A2PRegistrationDelete struct {
	config
	hooks    []Hook
	mutation *A2PRegistrationMutation
}

// Where appends a list predicates to the A2PRegistrationDelete builder.
func (_d *A2PRegistrationDelete) Where(ps ...predicate.A2PRegistration) *A2PRegistrationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *A2PRegistrationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *A2PRegistrationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *A2PRegistrationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(a2pregistration.Table, sqlgraph.NewFieldSpec(a2pregistration.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// A2PRegistrationDeleteOne is the builder for deleting a single A2PRegistration entity.
type A2PRegistrationDeleteOne struct {
	_d *A2PRegistrationDelete
}

// Where appends a list predicates to the A2PRegistrationDelete builder.
func (_d *A2PRegistrationDeleteOne) Where(ps ...predicate.A2PRegistration) *A2PRegistrationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *A2PRegistrationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{a2pregistration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *A2PRegistrationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
