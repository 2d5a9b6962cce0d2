// Code generated by ent, DO NOT EDIT.

package escalation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the escalation type in the database.
	Label = "escalation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "escalation_id"
	// FieldSwarmID holds the string denoting the swarm_id field in the database.
	FieldSwarmID = "swarm_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSuggestedActions holds the string denoting the suggested_actions field in the database.
	FieldSuggestedActions = "suggested_actions"
	// FieldCanContinueWithout holds the string denoting the can_continue_without field in the database.
	FieldCanContinueWithout = "can_continue_without"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeSwarm holds the string denoting the swarm edge name in mutations.
	EdgeSwarm = "swarm"
	// SwarmFieldID holds the string denoting the ID field of the Swarm.
	SwarmFieldID = "swarm_id"
	// Table holds the table name of the escalation in the database.
	Table = "escalations"
	// SwarmTable is the table that holds the swarm relation/edge.
	SwarmTable = "escalations"
	// SwarmInverseTable is the table name for the Swarm entity.
	// It exists in this package in order to avoid circular dependency with the "swarm" package.
	SwarmInverseTable = "swarms"
	// SwarmColumn is the table column denoting the swarm relation/edge.
	SwarmColumn = "swarm_id"
)

// Columns holds all SQL columns for escalation fields.
var Columns = []string{
	FieldID,
	FieldSwarmID,
	FieldTaskID,
	FieldAgentID,
	FieldKind,
	FieldSeverity,
	FieldDescription,
	FieldSuggestedActions,
	FieldCanContinueWithout,
	FieldStatus,
	FieldResolution,
	FieldCreatedAt,
	FieldResolvedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
	// DefaultCanContinueWithout holds the default value on creation for the "can_continue_without" field.
	DefaultCanContinueWithout bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindConfiguration      Kind = "configuration"
	KindDesignDecision     Kind = "design_decision"
	KindExternalService    Kind = "external_service"
	KindUnclearRequirement Kind = "unclear_requirement"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindConfiguration, KindDesignDecision, KindExternalService, KindUnclearRequirement:
		return nil
	default:
		return fmt.Errorf("escalation: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusResolved  Status = "resolved"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusResolved, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("escalation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Escalation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySwarmID orders the results by the swarm_id field.
func BySwarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSwarmID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCanContinueWithout orders the results by the can_continue_without field.
func ByCanContinueWithout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanContinueWithout, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// BySwarmField orders the results by swarm field.
func BySwarmField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSwarmStep(), sql.OrderByField(field, opts...))
	}
}
func newSwarmStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SwarmInverseTable, SwarmFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SwarmTable, SwarmColumn),
	)
}
