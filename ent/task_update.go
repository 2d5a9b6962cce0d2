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
	"github.com/crewforge/crewforge/ent/predicate"
	"github.com/crewforge/crewforge/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskKey sets the "task_key" field.
func (_u *TaskUpdate) SetTaskKey(v string) *TaskUpdate {
	_u.mutation.SetTaskKey(v)
	return _u
}

// SetNillableTaskKey sets the "task_key" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskKey(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskKey(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TaskUpdate) SetAgentID(v string) *TaskUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TaskUpdate) ClearAgentID() *TaskUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v int) *TaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdate) AddPriority(v int) *TaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdate) SetDependencies(v []string) *TaskUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *TaskUpdate) AppendDependencies(v []string) *TaskUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdate) ClearDependencies() *TaskUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetData sets the "data" field.
func (_u *TaskUpdate) SetData(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *TaskUpdate) ClearData() *TaskUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdate) SetAttempts(v int) *TaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdate) AddAttempts(v int) *TaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdate) SetMaxAttempts(v int) *TaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdate) AddMaxAttempts(v int) *TaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *TaskUpdate) SetPhase(v string) *TaskUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePhase(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *TaskUpdate) ClearPhase() *TaskUpdate {
	_u.mutation.ClearPhase()
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *TaskUpdate) SetMilestone(v bool) *TaskUpdate {
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMilestone(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdate) SetFailureReason(v string) *TaskUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailureReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdate) ClearFailureReason() *TaskUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLastFailedAt sets the "last_failed_at" field.
func (_u *TaskUpdate) SetLastFailedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastFailedAt(v)
	return _u
}

// SetNillableLastFailedAt sets the "last_failed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastFailedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastFailedAt(*v)
	}
	return _u
}

// ClearLastFailedAt clears the value of the "last_failed_at" field.
func (_u *TaskUpdate) ClearLastFailedAt() *TaskUpdate {
	_u.mutation.ClearLastFailedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.SwarmCleared() && len(_u.mutation.SwarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.swarm"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskKey(); ok {
		_spec.SetField(task.FieldTaskKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(task.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(task.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(task.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(task.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(task.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(task.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(task.FieldMilestone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastFailedAt(); ok {
		_spec.SetField(task.FieldLastFailedAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedAtCleared() {
		_spec.ClearField(task.FieldLastFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTaskKey sets the "task_key" field.
func (_u *TaskUpdateOne) SetTaskKey(v string) *TaskUpdateOne {
	_u.mutation.SetTaskKey(v)
	return _u
}

// SetNillableTaskKey sets the "task_key" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskKey(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskKey(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TaskUpdateOne) SetAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TaskUpdateOne) ClearAgentID() *TaskUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v int) *TaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdateOne) AddPriority(v int) *TaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdateOne) SetDependencies(v []string) *TaskUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *TaskUpdateOne) AppendDependencies(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdateOne) ClearDependencies() *TaskUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetData sets the "data" field.
func (_u *TaskUpdateOne) SetData(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *TaskUpdateOne) ClearData() *TaskUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdateOne) SetAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdateOne) AddAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdateOne) SetMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdateOne) AddMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *TaskUpdateOne) SetPhase(v string) *TaskUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePhase(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *TaskUpdateOne) ClearPhase() *TaskUpdateOne {
	_u.mutation.ClearPhase()
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *TaskUpdateOne) SetMilestone(v bool) *TaskUpdateOne {
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMilestone(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdateOne) SetFailureReason(v string) *TaskUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailureReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdateOne) ClearFailureReason() *TaskUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLastFailedAt sets the "last_failed_at" field.
func (_u *TaskUpdateOne) SetLastFailedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastFailedAt(v)
	return _u
}

// SetNillableLastFailedAt sets the "last_failed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastFailedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastFailedAt(*v)
	}
	return _u
}

// ClearLastFailedAt clears the value of the "last_failed_at" field.
func (_u *TaskUpdateOne) ClearLastFailedAt() *TaskUpdateOne {
	_u.mutation.ClearLastFailedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.SwarmCleared() && len(_u.mutation.SwarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.swarm"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.TaskKey(); ok {
		_spec.SetField(task.FieldTaskKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(task.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(task.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(task.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(task.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(task.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(task.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(task.FieldMilestone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastFailedAt(); ok {
		_spec.SetField(task.FieldLastFailedAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedAtCleared() {
		_spec.ClearField(task.FieldLastFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
