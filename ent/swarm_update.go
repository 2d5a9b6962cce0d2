// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewforge/ent/agent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/predicate"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
)

// SwarmUpdate is the builder for updating Swarm entities.
type SwarmUpdate struct {
	config
	hooks    []Hook
	mutation *SwarmMutation
}

// Where appends a list predicates to the SwarmUpdate builder.
func (_u *SwarmUpdate) Where(ps ...predicate.Swarm) *SwarmUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SwarmUpdate) SetName(v string) *SwarmUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableName(v *string) *SwarmUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SwarmUpdate) SetStatus(v swarm.Status) *SwarmUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableStatus(v *swarm.Status) *SwarmUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNumAgents sets the "num_agents" field.
func (_u *SwarmUpdate) SetNumAgents(v int) *SwarmUpdate {
	_u.mutation.ResetNumAgents()
	_u.mutation.SetNumAgents(v)
	return _u
}

// SetNillableNumAgents sets the "num_agents" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableNumAgents(v *int) *SwarmUpdate {
	if v != nil {
		_u.SetNumAgents(*v)
	}
	return _u
}

// AddNumAgents adds value to the "num_agents" field.
func (_u *SwarmUpdate) AddNumAgents(v int) *SwarmUpdate {
	_u.mutation.AddNumAgents(v)
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *SwarmUpdate) SetComplexity(v string) *SwarmUpdate {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableComplexity(v *string) *SwarmUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *SwarmUpdate) ClearComplexity() *SwarmUpdate {
	_u.mutation.ClearComplexity()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SwarmUpdate) SetMetadata(v map[string]interface{}) *SwarmUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SwarmUpdate) ClearMetadata() *SwarmUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SwarmUpdate) SetStartedAt(v time.Time) *SwarmUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableStartedAt(v *time.Time) *SwarmUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SwarmUpdate) ClearStartedAt() *SwarmUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SwarmUpdate) SetCompletedAt(v time.Time) *SwarmUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableCompletedAt(v *time.Time) *SwarmUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SwarmUpdate) ClearCompletedAt() *SwarmUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SwarmUpdate) SetErrorMessage(v string) *SwarmUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableErrorMessage(v *string) *SwarmUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SwarmUpdate) ClearErrorMessage() *SwarmUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SwarmUpdate) SetPodID(v string) *SwarmUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillablePodID(v *string) *SwarmUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SwarmUpdate) ClearPodID() *SwarmUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SwarmUpdate) SetLastHeartbeatAt(v time.Time) *SwarmUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SwarmUpdate) SetNillableLastHeartbeatAt(v *time.Time) *SwarmUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *SwarmUpdate) ClearLastHeartbeatAt() *SwarmUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *SwarmUpdate) AddAgentIDs(ids ...string) *SwarmUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *SwarmUpdate) AddAgents(v ...*Agent) *SwarmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *SwarmUpdate) AddTaskIDs(ids ...string) *SwarmUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *SwarmUpdate) AddTasks(v ...*Task) *SwarmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddEscalationIDs adds the "escalations" edge to the Escalation entity by IDs.
func (_u *SwarmUpdate) AddEscalationIDs(ids ...string) *SwarmUpdate {
	_u.mutation.AddEscalationIDs(ids...)
	return _u
}

// AddEscalations adds the "escalations" edges to the Escalation entity.
func (_u *SwarmUpdate) AddEscalations(v ...*Escalation) *SwarmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEscalationIDs(ids...)
}

// Mutation returns the SwarmMutation object of the builder.
func (_u *SwarmUpdate) Mutation() *SwarmMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *SwarmUpdate) ClearAgents() *SwarmUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *SwarmUpdate) RemoveAgentIDs(ids ...string) *SwarmUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *SwarmUpdate) RemoveAgents(v ...*Agent) *SwarmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *SwarmUpdate) ClearTasks() *SwarmUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *SwarmUpdate) RemoveTaskIDs(ids ...string) *SwarmUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *SwarmUpdate) RemoveTasks(v ...*Task) *SwarmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearEscalations clears all "escalations" edges to the Escalation entity.
func (_u *SwarmUpdate) ClearEscalations() *SwarmUpdate {
	_u.mutation.ClearEscalations()
	return _u
}

// RemoveEscalationIDs removes the "escalations" edge to Escalation entities by IDs.
func (_u *SwarmUpdate) RemoveEscalationIDs(ids ...string) *SwarmUpdate {
	_u.mutation.RemoveEscalationIDs(ids...)
	return _u
}

// RemoveEscalations removes "escalations" edges to Escalation entities.
func (_u *SwarmUpdate) RemoveEscalations(v ...*Escalation) *SwarmUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEscalationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SwarmUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SwarmUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SwarmUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SwarmUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SwarmUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := swarm.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Swarm.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SwarmUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(swarm.Table, swarm.Columns, sqlgraph.NewFieldSpec(swarm.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(swarm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(swarm.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NumAgents(); ok {
		_spec.SetField(swarm.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAgents(); ok {
		_spec.AddField(swarm.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(swarm.FieldComplexity, field.TypeString, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(swarm.FieldComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(swarm.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(swarm.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(swarm.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(swarm.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(swarm.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(swarm.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(swarm.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(swarm.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(swarm.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(swarm.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(swarm.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(swarm.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEscalationsIDs(); len(nodes) > 0 && !_u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{swarm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SwarmUpdateOne is the builder for updating a single Swarm entity.
type SwarmUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SwarmMutation
}

// SetName sets the "name" field.
func (_u *SwarmUpdateOne) SetName(v string) *SwarmUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableName(v *string) *SwarmUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SwarmUpdateOne) SetStatus(v swarm.Status) *SwarmUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableStatus(v *swarm.Status) *SwarmUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNumAgents sets the "num_agents" field.
func (_u *SwarmUpdateOne) SetNumAgents(v int) *SwarmUpdateOne {
	_u.mutation.ResetNumAgents()
	_u.mutation.SetNumAgents(v)
	return _u
}

// SetNillableNumAgents sets the "num_agents" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableNumAgents(v *int) *SwarmUpdateOne {
	if v != nil {
		_u.SetNumAgents(*v)
	}
	return _u
}

// AddNumAgents adds value to the "num_agents" field.
func (_u *SwarmUpdateOne) AddNumAgents(v int) *SwarmUpdateOne {
	_u.mutation.AddNumAgents(v)
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *SwarmUpdateOne) SetComplexity(v string) *SwarmUpdateOne {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableComplexity(v *string) *SwarmUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *SwarmUpdateOne) ClearComplexity() *SwarmUpdateOne {
	_u.mutation.ClearComplexity()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SwarmUpdateOne) SetMetadata(v map[string]interface{}) *SwarmUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SwarmUpdateOne) ClearMetadata() *SwarmUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SwarmUpdateOne) SetStartedAt(v time.Time) *SwarmUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableStartedAt(v *time.Time) *SwarmUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SwarmUpdateOne) ClearStartedAt() *SwarmUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SwarmUpdateOne) SetCompletedAt(v time.Time) *SwarmUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableCompletedAt(v *time.Time) *SwarmUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SwarmUpdateOne) ClearCompletedAt() *SwarmUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SwarmUpdateOne) SetErrorMessage(v string) *SwarmUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableErrorMessage(v *string) *SwarmUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SwarmUpdateOne) ClearErrorMessage() *SwarmUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *SwarmUpdateOne) SetPodID(v string) *SwarmUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillablePodID(v *string) *SwarmUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *SwarmUpdateOne) ClearPodID() *SwarmUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SwarmUpdateOne) SetLastHeartbeatAt(v time.Time) *SwarmUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SwarmUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *SwarmUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *SwarmUpdateOne) ClearLastHeartbeatAt() *SwarmUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *SwarmUpdateOne) AddAgentIDs(ids ...string) *SwarmUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *SwarmUpdateOne) AddAgents(v ...*Agent) *SwarmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *SwarmUpdateOne) AddTaskIDs(ids ...string) *SwarmUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *SwarmUpdateOne) AddTasks(v ...*Task) *SwarmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddEscalationIDs adds the "escalations" edge to the Escalation entity by IDs.
func (_u *SwarmUpdateOne) AddEscalationIDs(ids ...string) *SwarmUpdateOne {
	_u.mutation.AddEscalationIDs(ids...)
	return _u
}

// AddEscalations adds the "escalations" edges to the Escalation entity.
func (_u *SwarmUpdateOne) AddEscalations(v ...*Escalation) *SwarmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEscalationIDs(ids...)
}

// Mutation returns the SwarmMutation object of the builder.
func (_u *SwarmUpdateOne) Mutation() *SwarmMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *SwarmUpdateOne) ClearAgents() *SwarmUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *SwarmUpdateOne) RemoveAgentIDs(ids ...string) *SwarmUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *SwarmUpdateOne) RemoveAgents(v ...*Agent) *SwarmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *SwarmUpdateOne) ClearTasks() *SwarmUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *SwarmUpdateOne) RemoveTaskIDs(ids ...string) *SwarmUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *SwarmUpdateOne) RemoveTasks(v ...*Task) *SwarmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearEscalations clears all "escalations" edges to the Escalation entity.
func (_u *SwarmUpdateOne) ClearEscalations() *SwarmUpdateOne {
	_u.mutation.ClearEscalations()
	return _u
}

// RemoveEscalationIDs removes the "escalations" edge to Escalation entities by IDs.
func (_u *SwarmUpdateOne) RemoveEscalationIDs(ids ...string) *SwarmUpdateOne {
	_u.mutation.RemoveEscalationIDs(ids...)
	return _u
}

// RemoveEscalations removes "escalations" edges to Escalation entities.
func (_u *SwarmUpdateOne) RemoveEscalations(v ...*Escalation) *SwarmUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEscalationIDs(ids...)
}

// Where appends a list predicates to the SwarmUpdate builder.
func (_u *SwarmUpdateOne) Where(ps ...predicate.Swarm) *SwarmUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SwarmUpdateOne) Select(field string, fields ...string) *SwarmUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Swarm entity.
func (_u *SwarmUpdateOne) Save(ctx context.Context) (*Swarm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SwarmUpdateOne) SaveX(ctx context.Context) *Swarm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SwarmUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SwarmUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SwarmUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := swarm.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Swarm.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SwarmUpdateOne) sqlSave(ctx context.Context) (_node *Swarm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(swarm.Table, swarm.Columns, sqlgraph.NewFieldSpec(swarm.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Swarm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, swarm.FieldID)
		for _, f := range fields {
			if !swarm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != swarm.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(swarm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(swarm.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NumAgents(); ok {
		_spec.SetField(swarm.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAgents(); ok {
		_spec.AddField(swarm.FieldNumAgents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(swarm.FieldComplexity, field.TypeString, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(swarm.FieldComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(swarm.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(swarm.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(swarm.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(swarm.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(swarm.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(swarm.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(swarm.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(swarm.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(swarm.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(swarm.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(swarm.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(swarm.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEscalationsIDs(); len(nodes) > 0 && !_u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Swarm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{swarm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
