// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewforge/ent/predicate"
	"github.com/crewforge/crewforge/ent/stacktemplate"
)

// StackTemplateUpdate is the builder for updating StackTemplate entities.
type StackTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *StackTemplateMutation
}

// Where appends a list predicates to the StackTemplateUpdate builder.
func (_u *StackTemplateUpdate) Where(ps ...predicate.StackTemplate) *StackTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StackTemplateUpdate) SetTitle(v string) *StackTemplateUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StackTemplateUpdate) SetNillableTitle(v *string) *StackTemplateUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBackend sets the "backend" field.
func (_u *StackTemplateUpdate) SetBackend(v string) *StackTemplateUpdate {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *StackTemplateUpdate) SetNillableBackend(v *string) *StackTemplateUpdate {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetFrontend sets the "frontend" field.
func (_u *StackTemplateUpdate) SetFrontend(v string) *StackTemplateUpdate {
	_u.mutation.SetFrontend(v)
	return _u
}

// SetNillableFrontend sets the "frontend" field if the given value is not nil.
func (_u *StackTemplateUpdate) SetNillableFrontend(v *string) *StackTemplateUpdate {
	if v != nil {
		_u.SetFrontend(*v)
	}
	return _u
}

// SetDatabase sets the "database" field.
func (_u *StackTemplateUpdate) SetDatabase(v string) *StackTemplateUpdate {
	_u.mutation.SetDatabase(v)
	return _u
}

// SetNillableDatabase sets the "database" field if the given value is not nil.
func (_u *StackTemplateUpdate) SetNillableDatabase(v *string) *StackTemplateUpdate {
	if v != nil {
		_u.SetDatabase(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StackTemplateUpdate) SetDescription(v string) *StackTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StackTemplateUpdate) SetNillableDescription(v *string) *StackTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *StackTemplateUpdate) SetEmbedding(v []float64) *StackTemplateUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *StackTemplateUpdate) AppendEmbedding(v []float64) *StackTemplateUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// Mutation returns the StackTemplateMutation object of the builder.
func (_u *StackTemplateUpdate) Mutation() *StackTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StackTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StackTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StackTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StackTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StackTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stacktemplate.Table, stacktemplate.Columns, sqlgraph.NewFieldSpec(stacktemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(stacktemplate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(stacktemplate.FieldBackend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frontend(); ok {
		_spec.SetField(stacktemplate.FieldFrontend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Database(); ok {
		_spec.SetField(stacktemplate.FieldDatabase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stacktemplate.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(stacktemplate.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stacktemplate.FieldEmbedding, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stacktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StackTemplateUpdateOne is the builder for updating a single StackTemplate entity.
type StackTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StackTemplateMutation
}

// SetTitle sets the "title" field.
func (_u *StackTemplateUpdateOne) SetTitle(v string) *StackTemplateUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StackTemplateUpdateOne) SetNillableTitle(v *string) *StackTemplateUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBackend sets the "backend" field.
func (_u *StackTemplateUpdateOne) SetBackend(v string) *StackTemplateUpdateOne {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *StackTemplateUpdateOne) SetNillableBackend(v *string) *StackTemplateUpdateOne {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetFrontend sets the "frontend" field.
func (_u *StackTemplateUpdateOne) SetFrontend(v string) *StackTemplateUpdateOne {
	_u.mutation.SetFrontend(v)
	return _u
}

// SetNillableFrontend sets the "frontend" field if the given value is not nil.
func (_u *StackTemplateUpdateOne) SetNillableFrontend(v *string) *StackTemplateUpdateOne {
	if v != nil {
		_u.SetFrontend(*v)
	}
	return _u
}

// SetDatabase sets the "database" field.
func (_u *StackTemplateUpdateOne) SetDatabase(v string) *StackTemplateUpdateOne {
	_u.mutation.SetDatabase(v)
	return _u
}

// SetNillableDatabase sets the "database" field if the given value is not nil.
func (_u *StackTemplateUpdateOne) SetNillableDatabase(v *string) *StackTemplateUpdateOne {
	if v != nil {
		_u.SetDatabase(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StackTemplateUpdateOne) SetDescription(v string) *StackTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StackTemplateUpdateOne) SetNillableDescription(v *string) *StackTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *StackTemplateUpdateOne) SetEmbedding(v []float64) *StackTemplateUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *StackTemplateUpdateOne) AppendEmbedding(v []float64) *StackTemplateUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// Mutation returns the StackTemplateMutation object of the builder.
func (_u *StackTemplateUpdateOne) Mutation() *StackTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the StackTemplateUpdate builder.
func (_u *StackTemplateUpdateOne) Where(ps ...predicate.StackTemplate) *StackTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StackTemplateUpdateOne) Select(field string, fields ...string) *StackTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StackTemplate entity.
func (_u *StackTemplateUpdateOne) Save(ctx context.Context) (*StackTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StackTemplateUpdateOne) SaveX(ctx context.Context) *StackTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StackTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StackTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StackTemplateUpdateOne) sqlSave(ctx context.Context) (_node *StackTemplate, err error) {
	_spec := sqlgraph.NewUpdateSpec(stacktemplate.Table, stacktemplate.Columns, sqlgraph.NewFieldSpec(stacktemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StackTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stacktemplate.FieldID)
		for _, f := range fields {
			if !stacktemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stacktemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(stacktemplate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(stacktemplate.FieldBackend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frontend(); ok {
		_spec.SetField(stacktemplate.FieldFrontend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Database(); ok {
		_spec.SetField(stacktemplate.FieldDatabase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stacktemplate.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(stacktemplate.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stacktemplate.FieldEmbedding, value)
		})
	}
	_node = &StackTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stacktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
