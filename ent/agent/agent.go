// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldSwarmID holds the string denoting the swarm_id field in the database.
	FieldSwarmID = "swarm_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentTaskID holds the string denoting the current_task_id field in the database.
	FieldCurrentTaskID = "current_task_id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// EdgeSwarm holds the string denoting the swarm edge name in mutations.
	EdgeSwarm = "swarm"
	// SwarmFieldID holds the string denoting the ID field of the Swarm.
	SwarmFieldID = "swarm_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// SwarmTable is the table that holds the swarm relation/edge.
	SwarmTable = "agents"
	// SwarmInverseTable is the table name for the Swarm entity.
	// It exists in this package in order to avoid circular dependency with the "swarm" package.
	SwarmInverseTable = "swarms"
	// SwarmColumn is the table column denoting the swarm relation/edge.
	SwarmColumn = "swarm_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldSwarmID,
	FieldRole,
	FieldStatus,
	FieldCurrentTaskID,
	FieldData,
	FieldAssignedAt,
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
	// DefaultAssignedAt holds the default value on creation for the "assigned_at" field.
	DefaultAssignedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle    Status = "idle"
	StatusWorking Status = "working"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusWorking:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySwarmID orders the results by the swarm_id field.
func BySwarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSwarmID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentTaskID orders the results by the current_task_id field.
func ByCurrentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTaskID, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
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
