// Code generated by ent, DO NOT EDIT.

package escalation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/crewforge/crewforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldID, id))
}

// SwarmID applies equality check predicate on the "swarm_id" field. It's identical to SwarmIDEQ.
func SwarmID(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldSwarmID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldTaskID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldAgentID, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldSeverity, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldDescription, v))
}

// CanContinueWithout applies equality check predicate on the "can_continue_without" field. It's identical to CanContinueWithoutEQ.
func CanContinueWithout(v bool) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldCanContinueWithout, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldResolvedAt, v))
}

// SwarmIDEQ applies the EQ predicate on the "swarm_id" field.
func SwarmIDEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldSwarmID, v))
}

// SwarmIDNEQ applies the NEQ predicate on the "swarm_id" field.
func SwarmIDNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldSwarmID, v))
}

// SwarmIDIn applies the In predicate on the "swarm_id" field.
func SwarmIDIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldSwarmID, vs...))
}

// SwarmIDNotIn applies the NotIn predicate on the "swarm_id" field.
func SwarmIDNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldSwarmID, vs...))
}

// SwarmIDGT applies the GT predicate on the "swarm_id" field.
func SwarmIDGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldSwarmID, v))
}

// SwarmIDGTE applies the GTE predicate on the "swarm_id" field.
func SwarmIDGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldSwarmID, v))
}

// SwarmIDLT applies the LT predicate on the "swarm_id" field.
func SwarmIDLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldSwarmID, v))
}

// SwarmIDLTE applies the LTE predicate on the "swarm_id" field.
func SwarmIDLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldSwarmID, v))
}

// SwarmIDContains applies the Contains predicate on the "swarm_id" field.
func SwarmIDContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldSwarmID, v))
}

// SwarmIDHasPrefix applies the HasPrefix predicate on the "swarm_id" field.
func SwarmIDHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldSwarmID, v))
}

// SwarmIDHasSuffix applies the HasSuffix predicate on the "swarm_id" field.
func SwarmIDHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldSwarmID, v))
}

// SwarmIDEqualFold applies the EqualFold predicate on the "swarm_id" field.
func SwarmIDEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldSwarmID, v))
}

// SwarmIDContainsFold applies the ContainsFold predicate on the "swarm_id" field.
func SwarmIDContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldSwarmID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldAgentID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldKind, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldSeverity, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldDescription, v))
}

// SuggestedActionsIsNil applies the IsNil predicate on the "suggested_actions" field.
func SuggestedActionsIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldSuggestedActions))
}

// SuggestedActionsNotNil applies the NotNil predicate on the "suggested_actions" field.
func SuggestedActionsNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldSuggestedActions))
}

// CanContinueWithoutEQ applies the EQ predicate on the "can_continue_without" field.
func CanContinueWithoutEQ(v bool) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldCanContinueWithout, v))
}

// CanContinueWithoutNEQ applies the NEQ predicate on the "can_continue_without" field.
func CanContinueWithoutNEQ(v bool) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldCanContinueWithout, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldResolution))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldResolvedAt))
}

// HasSwarm applies the HasEdge predicate on the "swarm" edge.
func HasSwarm() predicate.Escalation {
	return predicate.Escalation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SwarmTable, SwarmColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSwarmWith applies the HasEdge predicate on the "swarm" edge with a given conditions (other predicates).
func HasSwarmWith(preds ...predicate.Swarm) predicate.Escalation {
	return predicate.Escalation(func(s *sql.Selector) {
		step := newSwarmStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Escalation) predicate.Escalation {
	return predicate.Escalation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Escalation) predicate.Escalation {
	return predicate.Escalation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Escalation) predicate.Escalation {
	return predicate.Escalation(sql.NotPredicates(p))
}
