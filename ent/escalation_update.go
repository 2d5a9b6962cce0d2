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
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/predicate"
)

// EscalationUpdate is the builder for updating Escalation entities.
type EscalationUpdate struct {
	config
	hooks    []Hook
	mutation *EscalationMutation
}

// Where appends a list predicates to the EscalationUpdate builder.
func (_u *EscalationUpdate) Where(ps ...predicate.Escalation) *EscalationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *EscalationUpdate) SetTaskID(v string) *EscalationUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableTaskID(v *string) *EscalationUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *EscalationUpdate) ClearTaskID() *EscalationUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *EscalationUpdate) SetAgentID(v string) *EscalationUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableAgentID(v *string) *EscalationUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *EscalationUpdate) ClearAgentID() *EscalationUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *EscalationUpdate) SetKind(v escalation.Kind) *EscalationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableKind(v *escalation.Kind) *EscalationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *EscalationUpdate) SetSeverity(v string) *EscalationUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableSeverity(v *string) *EscalationUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EscalationUpdate) SetDescription(v string) *EscalationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableDescription(v *string) *EscalationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSuggestedActions sets the "suggested_actions" field.
func (_u *EscalationUpdate) SetSuggestedActions(v []string) *EscalationUpdate {
	_u.mutation.SetSuggestedActions(v)
	return _u
}

// AppendSuggestedActions appends value to the "suggested_actions" field.
func (_u *EscalationUpdate) AppendSuggestedActions(v []string) *EscalationUpdate {
	_u.mutation.AppendSuggestedActions(v)
	return _u
}

// ClearSuggestedActions clears the value of the "suggested_actions" field.
func (_u *EscalationUpdate) ClearSuggestedActions() *EscalationUpdate {
	_u.mutation.ClearSuggestedActions()
	return _u
}

// SetCanContinueWithout sets the "can_continue_without" field.
func (_u *EscalationUpdate) SetCanContinueWithout(v bool) *EscalationUpdate {
	_u.mutation.SetCanContinueWithout(v)
	return _u
}

// SetNillableCanContinueWithout sets the "can_continue_without" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableCanContinueWithout(v *bool) *EscalationUpdate {
	if v != nil {
		_u.SetCanContinueWithout(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EscalationUpdate) SetStatus(v escalation.Status) *EscalationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableStatus(v *escalation.Status) *EscalationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *EscalationUpdate) SetResolution(v map[string]interface{}) *EscalationUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *EscalationUpdate) ClearResolution() *EscalationUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *EscalationUpdate) SetResolvedAt(v time.Time) *EscalationUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableResolvedAt(v *time.Time) *EscalationUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *EscalationUpdate) ClearResolvedAt() *EscalationUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the EscalationMutation object of the builder.
func (_u *EscalationUpdate) Mutation() *EscalationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EscalationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EscalationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EscalationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EscalationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EscalationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := escalation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Escalation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := escalation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Escalation.status": %w`, err)}
		}
	}
	if _u.mutation.SwarmCleared() && len(_u.mutation.SwarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Escalation.swarm"`)
	}
	return nil
}

func (_u *EscalationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(escalation.Table, escalation.Columns, sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(escalation.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(escalation.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(escalation.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(escalation.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(escalation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(escalation.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(escalation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedActions(); ok {
		_spec.SetField(escalation.FieldSuggestedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, escalation.FieldSuggestedActions, value)
		})
	}
	if _u.mutation.SuggestedActionsCleared() {
		_spec.ClearField(escalation.FieldSuggestedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanContinueWithout(); ok {
		_spec.SetField(escalation.FieldCanContinueWithout, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(escalation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(escalation.FieldResolution, field.TypeJSON, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(escalation.FieldResolution, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(escalation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(escalation.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{escalation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EscalationUpdateOne is the builder for updating a single Escalation entity.
type EscalationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EscalationMutation
}

// SetTaskID sets the "task_id" field.
func (_u *EscalationUpdateOne) SetTaskID(v string) *EscalationUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableTaskID(v *string) *EscalationUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *EscalationUpdateOne) ClearTaskID() *EscalationUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *EscalationUpdateOne) SetAgentID(v string) *EscalationUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableAgentID(v *string) *EscalationUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *EscalationUpdateOne) ClearAgentID() *EscalationUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetKind sets the "kind" field.
func (_u *EscalationUpdateOne) SetKind(v escalation.Kind) *EscalationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableKind(v *escalation.Kind) *EscalationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *EscalationUpdateOne) SetSeverity(v string) *EscalationUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableSeverity(v *string) *EscalationUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EscalationUpdateOne) SetDescription(v string) *EscalationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableDescription(v *string) *EscalationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSuggestedActions sets the "suggested_actions" field.
func (_u *EscalationUpdateOne) SetSuggestedActions(v []string) *EscalationUpdateOne {
	_u.mutation.SetSuggestedActions(v)
	return _u
}

// AppendSuggestedActions appends value to the "suggested_actions" field.
func (_u *EscalationUpdateOne) AppendSuggestedActions(v []string) *EscalationUpdateOne {
	_u.mutation.AppendSuggestedActions(v)
	return _u
}

// ClearSuggestedActions clears the value of the "suggested_actions" field.
func (_u *EscalationUpdateOne) ClearSuggestedActions() *EscalationUpdateOne {
	_u.mutation.ClearSuggestedActions()
	return _u
}

// SetCanContinueWithout sets the "can_continue_without" field.
func (_u *EscalationUpdateOne) SetCanContinueWithout(v bool) *EscalationUpdateOne {
	_u.mutation.SetCanContinueWithout(v)
	return _u
}

// SetNillableCanContinueWithout sets the "can_continue_without" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableCanContinueWithout(v *bool) *EscalationUpdateOne {
	if v != nil {
		_u.SetCanContinueWithout(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EscalationUpdateOne) SetStatus(v escalation.Status) *EscalationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableStatus(v *escalation.Status) *EscalationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *EscalationUpdateOne) SetResolution(v map[string]interface{}) *EscalationUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *EscalationUpdateOne) ClearResolution() *EscalationUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *EscalationUpdateOne) SetResolvedAt(v time.Time) *EscalationUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableResolvedAt(v *time.Time) *EscalationUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *EscalationUpdateOne) ClearResolvedAt() *EscalationUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the EscalationMutation object of the builder.
func (_u *EscalationUpdateOne) Mutation() *EscalationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EscalationUpdate builder.
func (_u *EscalationUpdateOne) Where(ps ...predicate.Escalation) *EscalationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EscalationUpdateOne) Select(field string, fields ...string) *EscalationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Escalation entity.
func (_u *EscalationUpdateOne) Save(ctx context.Context) (*Escalation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EscalationUpdateOne) SaveX(ctx context.Context) *Escalation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EscalationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EscalationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EscalationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := escalation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Escalation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := escalation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Escalation.status": %w`, err)}
		}
	}
	if _u.mutation.SwarmCleared() && len(_u.mutation.SwarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Escalation.swarm"`)
	}
	return nil
}

func (_u *EscalationUpdateOne) sqlSave(ctx context.Context) (_node *Escalation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(escalation.Table, escalation.Columns, sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Escalation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, escalation.FieldID)
		for _, f := range fields {
			if !escalation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != escalation.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(escalation.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(escalation.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(escalation.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(escalation.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(escalation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(escalation.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(escalation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedActions(); ok {
		_spec.SetField(escalation.FieldSuggestedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, escalation.FieldSuggestedActions, value)
		})
	}
	if _u.mutation.SuggestedActionsCleared() {
		_spec.ClearField(escalation.FieldSuggestedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanContinueWithout(); ok {
		_spec.SetField(escalation.FieldCanContinueWithout, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(escalation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(escalation.FieldResolution, field.TypeJSON, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(escalation.FieldResolution, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(escalation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(escalation.FieldResolvedAt, field.TypeTime)
	}
	_node = &Escalation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{escalation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
