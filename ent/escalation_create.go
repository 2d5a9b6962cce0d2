// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/swarm"
)

// EscalationCreate is the builder for creating a Escalation entity.
type EscalationCreate struct {
	config
	mutation *EscalationMutation
	hooks    []Hook
}

// SetSwarmID sets the "swarm_id" field.
func (_c *EscalationCreate) SetSwarmID(v string) *EscalationCreate {
	_c.mutation.SetSwarmID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *EscalationCreate) SetTaskID(v string) *EscalationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableTaskID(v *string) *EscalationCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *EscalationCreate) SetAgentID(v string) *EscalationCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableAgentID(v *string) *EscalationCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *EscalationCreate) SetKind(v escalation.Kind) *EscalationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *EscalationCreate) SetSeverity(v string) *EscalationCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableSeverity(v *string) *EscalationCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *EscalationCreate) SetDescription(v string) *EscalationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSuggestedActions sets the "suggested_actions" field.
func (_c *EscalationCreate) SetSuggestedActions(v []string) *EscalationCreate {
	_c.mutation.SetSuggestedActions(v)
	return _c
}

// SetCanContinueWithout sets the "can_continue_without" field.
func (_c *EscalationCreate) SetCanContinueWithout(v bool) *EscalationCreate {
	_c.mutation.SetCanContinueWithout(v)
	return _c
}

// SetNillableCanContinueWithout sets the "can_continue_without" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableCanContinueWithout(v *bool) *EscalationCreate {
	if v != nil {
		_c.SetCanContinueWithout(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EscalationCreate) SetStatus(v escalation.Status) *EscalationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableStatus(v *escalation.Status) *EscalationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *EscalationCreate) SetResolution(v map[string]interface{}) *EscalationCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EscalationCreate) SetCreatedAt(v time.Time) *EscalationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableCreatedAt(v *time.Time) *EscalationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *EscalationCreate) SetResolvedAt(v time.Time) *EscalationCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableResolvedAt(v *time.Time) *EscalationCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EscalationCreate) SetID(v string) *EscalationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSwarm sets the "swarm" edge to the Swarm entity.
func (_c *EscalationCreate) SetSwarm(v *Swarm) *EscalationCreate {
	return _c.SetSwarmID(v.ID)
}

// Mutation returns the EscalationMutation object of the builder.
func (_c *EscalationCreate) Mutation() *EscalationMutation {
	return _c.mutation
}

// Save creates the Escalation in the database.
func (_c *EscalationCreate) Save(ctx context.Context) (*Escalation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EscalationCreate) SaveX(ctx context.Context) *Escalation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EscalationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EscalationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EscalationCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := escalation.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.CanContinueWithout(); !ok {
		v := escalation.DefaultCanContinueWithout
		_c.mutation.SetCanContinueWithout(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := escalation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := escalation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EscalationCreate) check() error {
	if _, ok := _c.mutation.SwarmID(); !ok {
		return &ValidationError{Name: "swarm_id", err: errors.New(`ent: missing required field "Escalation.swarm_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Escalation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := escalation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Escalation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Escalation.severity"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Escalation.description"`)}
	}
	if _, ok := _c.mutation.CanContinueWithout(); !ok {
		return &ValidationError{Name: "can_continue_without", err: errors.New(`ent: missing required field "Escalation.can_continue_without"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Escalation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := escalation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Escalation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Escalation.created_at"`)}
	}
	if len(_c.mutation.SwarmIDs()) == 0 {
		return &ValidationError{Name: "swarm", err: errors.New(`ent: missing required edge "Escalation.swarm"`)}
	}
	return nil
}

func (_c *EscalationCreate) sqlSave(ctx context.Context) (*Escalation, error) {
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
			return nil, fmt.Errorf("unexpected Escalation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EscalationCreate) createSpec() (*Escalation, *sqlgraph.CreateSpec) {
	var (
		_node = &Escalation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(escalation.Table, sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(escalation.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(escalation.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(escalation.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(escalation.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(escalation.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SuggestedActions(); ok {
		_spec.SetField(escalation.FieldSuggestedActions, field.TypeJSON, value)
		_node.SuggestedActions = value
	}
	if value, ok := _c.mutation.CanContinueWithout(); ok {
		_spec.SetField(escalation.FieldCanContinueWithout, field.TypeBool, value)
		_node.CanContinueWithout = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(escalation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(escalation.FieldResolution, field.TypeJSON, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(escalation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(escalation.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.SwarmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   escalation.SwarmTable,
			Columns: []string{escalation.SwarmColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(swarm.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SwarmID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EscalationCreateBulk is the builder for creating many Escalation entities in bulk.
type EscalationCreateBulk struct {
	config
	err      error
	builders []*EscalationCreate
}

// Save creates the Escalation entities in the database.
func (_c *EscalationCreateBulk) Save(ctx context.Context) ([]*Escalation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Escalation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EscalationMutation)
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
func (_c *EscalationCreateBulk) SaveX(ctx context.Context) []*Escalation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EscalationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EscalationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
