// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent/swarm"
)

// Swarm is the model entity for the Swarm schema.
type Swarm struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status swarm.Status `json:"status,omitempty"`
	// NumAgents holds the value of the "num_agents" field.
	NumAgents int `json:"num_agents,omitempty"`
	// Plan bucket: simple, medium, complex, monster
	Complexity string `json:"complexity,omitempty"`
	// Full scope record plus workflow checkpoints
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the swarm (idle to running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SwarmQuery when eager-loading is set.
	Edges        SwarmEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SwarmEdges holds the relations/edges for other nodes in the graph.
type SwarmEdges struct {
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Escalations holds the value of the escalations edge.
	Escalations []*Escalation `json:"escalations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e SwarmEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[0] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e SwarmEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// EscalationsOrErr returns the Escalations value or an error if the edge
// was not loaded in eager-loading.
func (e SwarmEdges) EscalationsOrErr() ([]*Escalation, error) {
	if e.loadedTypes[2] {
		return e.Escalations, nil
	}
	return nil, &NotLoadedError{edge: "escalations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Swarm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case swarm.FieldMetadata:
			values[i] = new([]byte)
		case swarm.FieldNumAgents:
			values[i] = new(sql.NullInt64)
		case swarm.FieldID, swarm.FieldName, swarm.FieldStatus, swarm.FieldComplexity, swarm.FieldErrorMessage, swarm.FieldPodID:
			values[i] = new(sql.NullString)
		case swarm.FieldCreatedAt, swarm.FieldStartedAt, swarm.FieldCompletedAt, swarm.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Swarm fields.
func (_m *Swarm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case swarm.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case swarm.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case swarm.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = swarm.Status(value.String)
			}
		case swarm.FieldNumAgents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_agents", values[i])
			} else if value.Valid {
				_m.NumAgents = int(value.Int64)
			}
		case swarm.FieldComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field complexity", values[i])
			} else if value.Valid {
				_m.Complexity = value.String
			}
		case swarm.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case swarm.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case swarm.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case swarm.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case swarm.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case swarm.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case swarm.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Swarm.
// This includes values selected through modifiers, order, etc.
func (_m *Swarm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgents queries the "agents" edge of the Swarm entity.
func (_m *Swarm) QueryAgents() *AgentQuery {
	return NewSwarmClient(_m.config).QueryAgents(_m)
}

// QueryTasks queries the "tasks" edge of the Swarm entity.
func (_m *Swarm) QueryTasks() *TaskQuery {
	return NewSwarmClient(_m.config).QueryTasks(_m)
}

// QueryEscalations queries the "escalations" edge of the Swarm entity.
func (_m *Swarm) QueryEscalations() *EscalationQuery {
	return NewSwarmClient(_m.config).QueryEscalations(_m)
}

// Update returns a builder for updating this Swarm.
// Note that you need to call Swarm.Unwrap() before calling this method if this Swarm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Swarm) Update() *SwarmUpdateOne {
	return NewSwarmClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Swarm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Swarm) Unwrap() *Swarm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Swarm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Swarm) String() string {
	var builder strings.Builder
	builder.WriteString("Swarm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("num_agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumAgents))
	builder.WriteString(", ")
	builder.WriteString("complexity=")
	builder.WriteString(_m.Complexity)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Swarms is a parsable slice of Swarm.
type Swarms []*Swarm
