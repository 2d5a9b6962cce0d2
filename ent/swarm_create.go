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
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
)

// SwarmCreate is the builder for creating a Swarm entity.
type SwarmCreate struct {
	config
	mutation *SwarmMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SwarmCreate) SetName(v string) *SwarmCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SwarmCreate) SetStatus(v swarm.Status) *SwarmCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableStatus(v *swarm.Status) *SwarmCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNumAgents sets the "num_agents" field.
func (_c *SwarmCreate) SetNumAgents(v int) *SwarmCreate {
	_c.mutation.SetNumAgents(v)
	return _c
}

// SetNillableNumAgents sets the "num_agents" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableNumAgents(v *int) *SwarmCreate {
	if v != nil {
		_c.SetNumAgents(*v)
	}
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *SwarmCreate) SetComplexity(v string) *SwarmCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableComplexity(v *string) *SwarmCreate {
	if v != nil {
		_c.SetComplexity(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SwarmCreate) SetMetadata(v map[string]interface{}) *SwarmCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SwarmCreate) SetCreatedAt(v time.Time) *SwarmCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableCreatedAt(v *time.Time) *SwarmCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SwarmCreate) SetStartedAt(v time.Time) *SwarmCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableStartedAt(v *time.Time) *SwarmCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SwarmCreate) SetCompletedAt(v time.Time) *SwarmCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableCompletedAt(v *time.Time) *SwarmCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SwarmCreate) SetErrorMessage(v string) *SwarmCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableErrorMessage(v *string) *SwarmCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *SwarmCreate) SetPodID(v string) *SwarmCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *SwarmCreate) SetNillablePodID(v *string) *SwarmCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *SwarmCreate) SetLastHeartbeatAt(v time.Time) *SwarmCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *SwarmCreate) SetNillableLastHeartbeatAt(v *time.Time) *SwarmCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SwarmCreate) SetID(v string) *SwarmCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *SwarmCreate) AddAgentIDs(ids ...string) *SwarmCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *SwarmCreate) AddAgents(v ...*Agent) *SwarmCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *SwarmCreate) AddTaskIDs(ids ...string) *SwarmCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *SwarmCreate) AddTasks(v ...*Task) *SwarmCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddEscalationIDs adds the "escalations" edge to the Escalation entity by IDs.
func (_c *SwarmCreate) AddEscalationIDs(ids ...string) *SwarmCreate {
	_c.mutation.AddEscalationIDs(ids...)
	return _c
}

// AddEscalations adds the "escalations" edges to the Escalation entity.
func (_c *SwarmCreate) AddEscalations(v ...*Escalation) *SwarmCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEscalationIDs(ids...)
}

// Mutation returns the SwarmMutation object of the builder.
func (_c *SwarmCreate) Mutation() *SwarmMutation {
	return _c.mutation
}

// Save creates the Swarm in the database.
func (_c *SwarmCreate) Save(ctx context.Context) (*Swarm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SwarmCreate) SaveX(ctx context.Context) *Swarm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SwarmCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SwarmCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SwarmCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := swarm.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.NumAgents(); !ok {
		v := swarm.DefaultNumAgents
		_c.mutation.SetNumAgents(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := swarm.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SwarmCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Swarm.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Swarm.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := swarm.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Swarm.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumAgents(); !ok {
		return &ValidationError{Name: "num_agents", err: errors.New(`ent: missing required field "Swarm.num_agents"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Swarm.created_at"`)}
	}
	return nil
}

func (_c *SwarmCreate) sqlSave(ctx context.Context) (*Swarm, error) {
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
			return nil, fmt.Errorf("unexpected Swarm.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SwarmCreate) createSpec() (*Swarm, *sqlgraph.CreateSpec) {
	var (
		_node = &Swarm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(swarm.Table, sqlgraph.NewFieldSpec(swarm.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(swarm.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(swarm.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NumAgents(); ok {
		_spec.SetField(swarm.FieldNumAgents, field.TypeInt, value)
		_node.NumAgents = value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(swarm.FieldComplexity, field.TypeString, value)
		_node.Complexity = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(swarm.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(swarm.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(swarm.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(swarm.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(swarm.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(swarm.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(swarm.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   swarm.AgentsTable,
			Columns: []string{swarm.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   swarm.TasksTable,
			Columns: []string{swarm.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EscalationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   swarm.EscalationsTable,
			Columns: []string{swarm.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SwarmCreateBulk is the builder for creating many Swarm entities in bulk.
type SwarmCreateBulk struct {
	config
	err      error
	builders []*SwarmCreate
}

// Save creates the Swarm entities in the database.
func (_c *SwarmCreateBulk) Save(ctx context.Context) ([]*Swarm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Swarm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SwarmMutation)
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
func (_c *SwarmCreateBulk) SaveX(ctx context.Context) []*Swarm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SwarmCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SwarmCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
