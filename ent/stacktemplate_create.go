// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewforge/ent/stacktemplate"
)

// StackTemplateCreate is the builder for creating a StackTemplate entity.
type StackTemplateCreate struct {
	config
	mutation *StackTemplateMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *StackTemplateCreate) SetTitle(v string) *StackTemplateCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBackend sets the "backend" field.
func (_c *StackTemplateCreate) SetBackend(v string) *StackTemplateCreate {
	_c.mutation.SetBackend(v)
	return _c
}

// SetFrontend sets the "frontend" field.
func (_c *StackTemplateCreate) SetFrontend(v string) *StackTemplateCreate {
	_c.mutation.SetFrontend(v)
	return _c
}

// SetDatabase sets the "database" field.
func (_c *StackTemplateCreate) SetDatabase(v string) *StackTemplateCreate {
	_c.mutation.SetDatabase(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StackTemplateCreate) SetDescription(v string) *StackTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *StackTemplateCreate) SetEmbedding(v []float64) *StackTemplateCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StackTemplateCreate) SetID(v string) *StackTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StackTemplateMutation object of the builder.
func (_c *StackTemplateCreate) Mutation() *StackTemplateMutation {
	return _c.mutation
}

// Save creates the StackTemplate in the database.
func (_c *StackTemplateCreate) Save(ctx context.Context) (*StackTemplate, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StackTemplateCreate) SaveX(ctx context.Context) *StackTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StackTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StackTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StackTemplateCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StackTemplate.title"`)}
	}
	if _, ok := _c.mutation.Backend(); !ok {
		return &ValidationError{Name: "backend", err: errors.New(`ent: missing required field "StackTemplate.backend"`)}
	}
	if _, ok := _c.mutation.Frontend(); !ok {
		return &ValidationError{Name: "frontend", err: errors.New(`ent: missing required field "StackTemplate.frontend"`)}
	}
	if _, ok := _c.mutation.Database(); !ok {
		return &ValidationError{Name: "database", err: errors.New(`ent: missing required field "StackTemplate.database"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "StackTemplate.description"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "StackTemplate.embedding"`)}
	}
	return nil
}

func (_c *StackTemplateCreate) sqlSave(ctx context.Context) (*StackTemplate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StackTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StackTemplateCreate) createSpec() (*StackTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &StackTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stacktemplate.Table, sqlgraph.NewFieldSpec(stacktemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(stacktemplate.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Backend(); ok {
		_spec.SetField(stacktemplate.FieldBackend, field.TypeString, value)
		_node.Backend = value
	}
	if value, ok := _c.mutation.Frontend(); ok {
		_spec.SetField(stacktemplate.FieldFrontend, field.TypeString, value)
		_node.Frontend = value
	}
	if value, ok := _c.mutation.Database(); ok {
		_spec.SetField(stacktemplate.FieldDatabase, field.TypeString, value)
		_node.Database = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(stacktemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(stacktemplate.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	return _node, _spec
}

// StackTemplateCreateBulk is the builder for creating many StackTemplate entities in bulk.
type StackTemplateCreateBulk struct {
	config
	err      error
	builders []*StackTemplateCreate
}

// Save creates the StackTemplate entities in the database.
func (_c *StackTemplateCreateBulk) Save(ctx context.Context) ([]*StackTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StackTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StackTemplateMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StackTemplateCreateBulk) SaveX(ctx context.Context) []*StackTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StackTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StackTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
