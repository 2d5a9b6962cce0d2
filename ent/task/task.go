// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldSwarmID holds the string denoting the swarm_id field in the database.
	FieldSwarmID = "swarm_id"
	// FieldTaskKey holds the string denoting the task_key field in the database.
	FieldTaskKey = "task_key"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldMilestone holds the string denoting the milestone field in the database.
	FieldMilestone = "milestone"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldLastFailedAt holds the string denoting the last_failed_at field in the database.
	FieldLastFailedAt = "last_failed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSwarm holds the string denoting the swarm edge name in mutations.
	EdgeSwarm = "swarm"
	// SwarmFieldID holds the string denoting the ID field of the Swarm.
	SwarmFieldID = "swarm_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// SwarmTable is the table that holds the swarm relation/edge.
	SwarmTable = "tasks"
	// SwarmInverseTable is the table name for the Swarm entity.
	// It exists in this package in order to avoid circular dependency with the "swarm" package.
	SwarmInverseTable = "swarms"
	// SwarmColumn is the table column denoting the swarm relation/edge.
	SwarmColumn = "swarm_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldSwarmID,
	FieldTaskKey,
	FieldAgentID,
	FieldTitle,
	FieldDescription,
	FieldPriority,
	FieldStatus,
	FieldDependencies,
	FieldData,
	FieldAttempts,
	FieldMaxAttempts,
	FieldPhase,
	FieldMilestone,
	FieldFailureReason,
	FieldLastFailedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultMilestone holds the default value on creation for the "milestone" field.
	DefaultMilestone bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusBlocked    Status = "blocked"
	StatusSkipped    Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusBlocked, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySwarmID orders the results by the swarm_id field.
func BySwarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSwarmID, opts...).ToFunc()
}

// ByTaskKey orders the results by the task_key field.
func ByTaskKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskKey, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByMilestone orders the results by the milestone field.
func ByMilestone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestone, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByLastFailedAt orders the results by the last_failed_at field.
func ByLastFailedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFailedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
