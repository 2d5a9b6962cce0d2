// Code generated by ent, DO NOT EDIT.

package swarm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/crewforge/crewforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldName, v))
}

// NumAgents applies equality check predicate on the "num_agents" field. It's identical to NumAgentsEQ.
func NumAgents(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldNumAgents, v))
}

// Complexity applies equality check predicate on the "complexity" field. It's identical to ComplexityEQ.
func Complexity(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldComplexity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldStatus, vs...))
}

// NumAgentsEQ applies the EQ predicate on the "num_agents" field.
func NumAgentsEQ(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldNumAgents, v))
}

// NumAgentsNEQ applies the NEQ predicate on the "num_agents" field.
func NumAgentsNEQ(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldNumAgents, v))
}

// NumAgentsIn applies the In predicate on the "num_agents" field.
func NumAgentsIn(vs ...int) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldNumAgents, vs...))
}

// NumAgentsNotIn applies the NotIn predicate on the "num_agents" field.
func NumAgentsNotIn(vs ...int) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldNumAgents, vs...))
}

// NumAgentsGT applies the GT predicate on the "num_agents" field.
func NumAgentsGT(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldNumAgents, v))
}

// NumAgentsGTE applies the GTE predicate on the "num_agents" field.
func NumAgentsGTE(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldNumAgents, v))
}

// NumAgentsLT applies the LT predicate on the "num_agents" field.
func NumAgentsLT(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldNumAgents, v))
}

// NumAgentsLTE applies the LTE predicate on the "num_agents" field.
func NumAgentsLTE(v int) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldNumAgents, v))
}

// ComplexityEQ applies the EQ predicate on the "complexity" field.
func ComplexityEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldComplexity, v))
}

// ComplexityNEQ applies the NEQ predicate on the "complexity" field.
func ComplexityNEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldComplexity, v))
}

// ComplexityIn applies the In predicate on the "complexity" field.
func ComplexityIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldComplexity, vs...))
}

// ComplexityNotIn applies the NotIn predicate on the "complexity" field.
func ComplexityNotIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldComplexity, vs...))
}

// ComplexityGT applies the GT predicate on the "complexity" field.
func ComplexityGT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldComplexity, v))
}

// ComplexityGTE applies the GTE predicate on the "complexity" field.
func ComplexityGTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldComplexity, v))
}

// ComplexityLT applies the LT predicate on the "complexity" field.
func ComplexityLT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldComplexity, v))
}

// ComplexityLTE applies the LTE predicate on the "complexity" field.
func ComplexityLTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldComplexity, v))
}

// ComplexityContains applies the Contains predicate on the "complexity" field.
func ComplexityContains(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContains(FieldComplexity, v))
}

// ComplexityHasPrefix applies the HasPrefix predicate on the "complexity" field.
func ComplexityHasPrefix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasPrefix(FieldComplexity, v))
}

// ComplexityHasSuffix applies the HasSuffix predicate on the "complexity" field.
func ComplexityHasSuffix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasSuffix(FieldComplexity, v))
}

// ComplexityIsNil applies the IsNil predicate on the "complexity" field.
func ComplexityIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldComplexity))
}

// ComplexityNotNil applies the NotNil predicate on the "complexity" field.
func ComplexityNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldComplexity))
}

// ComplexityEqualFold applies the EqualFold predicate on the "complexity" field.
func ComplexityEqualFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEqualFold(FieldComplexity, v))
}

// ComplexityContainsFold applies the ContainsFold predicate on the "complexity" field.
func ComplexityContainsFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContainsFold(FieldComplexity, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Swarm {
	return predicate.Swarm(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Swarm {
	return predicate.Swarm(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Swarm {
	return predicate.Swarm(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Swarm {
	return predicate.Swarm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.Agent) predicate.Swarm {
	return predicate.Swarm(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Swarm {
	return predicate.Swarm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Swarm {
	return predicate.Swarm(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEscalations applies the HasEdge predicate on the "escalations" edge.
func HasEscalations() predicate.Swarm {
	return predicate.Swarm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EscalationsTable, EscalationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEscalationsWith applies the HasEdge predicate on the "escalations" edge with a given conditions (other predicates).
func HasEscalationsWith(preds ...predicate.Escalation) predicate.Swarm {
	return predicate.Swarm(func(s *sql.Selector) {
		step := newEscalationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Swarm) predicate.Swarm {
	return predicate.Swarm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Swarm) predicate.Swarm {
	return predicate.Swarm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Swarm) predicate.Swarm {
	return predicate.Swarm(sql.NotPredicates(p))
}
