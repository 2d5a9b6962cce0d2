// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewforge/ent/agent"
	"github.com/crewforge/crewforge/ent/swarm"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetSwarmID sets the "swarm_id" field.
func (_c *AgentCreate) SetSwarmID(v string) *AgentCreate {
	_c.mutation.SetSwarmID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentCreate) SetRole(v string) *AgentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_c *AgentCreate) SetCurrentTaskID(v string) *AgentCreate {
	_c.mutation.SetCurrentTaskID(v)
	return _c
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCurrentTaskID(v *string) *AgentCreate {
	if v != nil {
		_c.SetCurrentTaskID(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *AgentCreate) SetData(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *AgentCreate) SetAssignedAt(v time.Time) *AgentCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAssignedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSwarm sets the "swarm" edge to the Swarm entity.
func (_c *AgentCreate) SetSwarm(v *Swarm) *AgentCreate {
	return _c.SetSwarmID(v.ID)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		v := agent.DefaultAssignedAt()
		_c.mutation.SetAssignedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.SwarmID(); !ok {
		return &ValidationError{Name: "swarm_id", err: errors.New(`ent: missing required field "Agent.swarm_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Agent.role"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`ent: missing required field "Agent.assigned_at"`)}
	}
	if len(_c.mutation.SwarmIDs()) == 0 {
		return &ValidationError{Name: "swarm", err: errors.New(`ent: missing required edge "Agent.swarm"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
		_node.CurrentTaskID = &value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(agent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(agent.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if nodes := _c.mutation.SwarmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.SwarmTable,
			Columns: []string{agent.SwarmColumn},
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

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
