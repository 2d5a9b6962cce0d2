// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/crewforge/crewforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// SwarmID applies equality check predicate on the "swarm_id" field. It's identical to SwarmIDEQ.
func SwarmID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSwarmID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRole, v))
}

// CurrentTaskID applies equality check predicate on the "current_task_id" field. It's identical to CurrentTaskIDEQ.
func CurrentTaskID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentTaskID, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAssignedAt, v))
}

// SwarmIDEQ applies the EQ predicate on the "swarm_id" field.
func SwarmIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSwarmID, v))
}

// SwarmIDNEQ applies the NEQ predicate on the "swarm_id" field.
func SwarmIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSwarmID, v))
}

// SwarmIDIn applies the In predicate on the "swarm_id" field.
func SwarmIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSwarmID, vs...))
}

// SwarmIDNotIn applies the NotIn predicate on the "swarm_id" field.
func SwarmIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSwarmID, vs...))
}

// SwarmIDGT applies the GT predicate on the "swarm_id" field.
func SwarmIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSwarmID, v))
}

// SwarmIDGTE applies the GTE predicate on the "swarm_id" field.
func SwarmIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSwarmID, v))
}

// SwarmIDLT applies the LT predicate on the "swarm_id" field.
func SwarmIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSwarmID, v))
}

// SwarmIDLTE applies the LTE predicate on the "swarm_id" field.
func SwarmIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSwarmID, v))
}

// SwarmIDContains applies the Contains predicate on the "swarm_id" field.
func SwarmIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSwarmID, v))
}

// SwarmIDHasPrefix applies the HasPrefix predicate on the "swarm_id" field.
func SwarmIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSwarmID, v))
}

// SwarmIDHasSuffix applies the HasSuffix predicate on the "swarm_id" field.
func SwarmIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSwarmID, v))
}

// SwarmIDEqualFold applies the EqualFold predicate on the "swarm_id" field.
func SwarmIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSwarmID, v))
}

// SwarmIDContainsFold applies the ContainsFold predicate on the "swarm_id" field.
func SwarmIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSwarmID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRole, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentTaskIDEQ applies the EQ predicate on the "current_task_id" field.
func CurrentTaskIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentTaskID, v))
}

// CurrentTaskIDNEQ applies the NEQ predicate on the "current_task_id" field.
func CurrentTaskIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCurrentTaskID, v))
}

// CurrentTaskIDIn applies the In predicate on the "current_task_id" field.
func CurrentTaskIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCurrentTaskID, vs...))
}

// CurrentTaskIDNotIn applies the NotIn predicate on the "current_task_id" field.
func CurrentTaskIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCurrentTaskID, vs...))
}

// CurrentTaskIDGT applies the GT predicate on the "current_task_id" field.
func CurrentTaskIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCurrentTaskID, v))
}

// CurrentTaskIDGTE applies the GTE predicate on the "current_task_id" field.
func CurrentTaskIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCurrentTaskID, v))
}

// CurrentTaskIDLT applies the LT predicate on the "current_task_id" field.
func CurrentTaskIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCurrentTaskID, v))
}

// CurrentTaskIDLTE applies the LTE predicate on the "current_task_id" field.
func CurrentTaskIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCurrentTaskID, v))
}

// CurrentTaskIDContains applies the Contains predicate on the "current_task_id" field.
func CurrentTaskIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCurrentTaskID, v))
}

// CurrentTaskIDHasPrefix applies the HasPrefix predicate on the "current_task_id" field.
func CurrentTaskIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCurrentTaskID, v))
}

// CurrentTaskIDHasSuffix applies the HasSuffix predicate on the "current_task_id" field.
func CurrentTaskIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCurrentTaskID, v))
}

// CurrentTaskIDIsNil applies the IsNil predicate on the "current_task_id" field.
func CurrentTaskIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCurrentTaskID))
}

// CurrentTaskIDNotNil applies the NotNil predicate on the "current_task_id" field.
func CurrentTaskIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCurrentTaskID))
}

// CurrentTaskIDEqualFold applies the EqualFold predicate on the "current_task_id" field.
func CurrentTaskIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCurrentTaskID, v))
}

// CurrentTaskIDContainsFold applies the ContainsFold predicate on the "current_task_id" field.
func CurrentTaskIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCurrentTaskID, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldData))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAssignedAt, v))
}

// HasSwarm applies the HasEdge predicate on the "swarm" edge.
func HasSwarm() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SwarmTable, SwarmColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSwarmWith applies the HasEdge predicate on the "swarm" edge with a given conditions (other predicates).
func HasSwarmWith(preds ...predicate.Swarm) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newSwarmStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
