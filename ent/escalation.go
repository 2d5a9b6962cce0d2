// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/swarm"
)

// Escalation is the model entity for the Escalation schema.
type Escalation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SwarmID holds the value of the "swarm_id" field.
	SwarmID string `json:"swarm_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID *string `json:"task_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind escalation.Kind `json:"kind,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SuggestedActions holds the value of the "suggested_actions" field.
	SuggestedActions []string `json:"suggested_actions,omitempty"`
	// CanContinueWithout holds the value of the "can_continue_without" field.
	CanContinueWithout bool `json:"can_continue_without,omitempty"`
	// Status holds the value of the "status" field.
	Status escalation.Status `json:"status,omitempty"`
	// Payload supplied by a human; partial input merges here
	Resolution map[string]interface{} `json:"resolution,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EscalationQuery when eager-loading is set.
	Edges        EscalationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EscalationEdges holds the relations/edges for other nodes in the graph.
type EscalationEdges struct {
	// Swarm holds the value of the swarm edge.
	Swarm *Swarm `json:"swarm,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SwarmOrErr returns the Swarm value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EscalationEdges) SwarmOrErr() (*Swarm, error) {
	if e.Swarm != nil {
		return e.Swarm, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: swarm.Label}
	}
	return nil, &NotLoadedError{edge: "swarm"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Escalation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case escalation.FieldSuggestedActions, escalation.FieldResolution:
			values[i] = new([]byte)
		case escalation.FieldCanContinueWithout:
			values[i] = new(sql.NullBool)
		case escalation.FieldID, escalation.FieldSwarmID, escalation.FieldTaskID, escalation.FieldAgentID, escalation.FieldKind, escalation.FieldSeverity, escalation.FieldDescription, escalation.FieldStatus:
			values[i] = new(sql.NullString)
		case escalation.FieldCreatedAt, escalation.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Escalation fields.
func (_m *Escalation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case escalation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case escalation.FieldSwarmID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field swarm_id", values[i])
			} else if value.Valid {
				_m.SwarmID = value.String
			}
		case escalation.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case escalation.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case escalation.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = escalation.Kind(value.String)
			}
		case escalation.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case escalation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case escalation.FieldSuggestedActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuggestedActions); err != nil {
					return fmt.Errorf("unmarshal field suggested_actions: %w", err)
				}
			}
		case escalation.FieldCanContinueWithout:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_continue_without", values[i])
			} else if value.Valid {
				_m.CanContinueWithout = value.Bool
			}
		case escalation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = escalation.Status(value.String)
			}
		case escalation.FieldResolution:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Resolution); err != nil {
					return fmt.Errorf("unmarshal field resolution: %w", err)
				}
			}
		case escalation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case escalation.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Escalation.
// This includes values selected through modifiers, order, etc.
func (_m *Escalation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySwarm queries the "swarm" edge of the Escalation entity.
func (_m *Escalation) QuerySwarm() *SwarmQuery {
	return NewEscalationClient(_m.config).QuerySwarm(_m)
}

// Update returns a builder for updating this Escalation.
// Note that you need to call Escalation.Unwrap() before calling this method if this Escalation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Escalation) Update() *EscalationUpdateOne {
	return NewEscalationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Escalation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Escalation) Unwrap() *Escalation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Escalation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Escalation) String() string {
	var builder strings.Builder
	builder.WriteString("Escalation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("swarm_id=")
	builder.WriteString(_m.SwarmID)
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("suggested_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestedActions))
	builder.WriteString(", ")
	builder.WriteString("can_continue_without=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanContinueWithout))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolution))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Escalations is a parsable slice of Escalation.
type Escalations []*Escalation
