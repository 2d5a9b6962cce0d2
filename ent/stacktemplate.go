// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent/stacktemplate"
)

// StackTemplate is the model entity for the StackTemplate schema.
type StackTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Backend holds the value of the "backend" field.
	Backend string `json:"backend,omitempty"`
	// Frontend holds the value of the "frontend" field.
	Frontend string `json:"frontend,omitempty"`
	// Database holds the value of the "database" field.
	Database string `json:"database,omitempty"`
	// Canonical description; its embedding is stored alongside
	Description string `json:"description,omitempty"`
	// 1536-dim embedding of the description
	Embedding    []float64 `json:"embedding,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StackTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stacktemplate.FieldEmbedding:
			values[i] = new([]byte)
		case stacktemplate.FieldID, stacktemplate.FieldTitle, stacktemplate.FieldBackend, stacktemplate.FieldFrontend, stacktemplate.FieldDatabase, stacktemplate.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StackTemplate fields.
func (_m *StackTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stacktemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stacktemplate.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case stacktemplate.FieldBackend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backend", values[i])
			} else if value.Valid {
				_m.Backend = value.String
			}
		case stacktemplate.FieldFrontend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frontend", values[i])
			} else if value.Valid {
				_m.Frontend = value.String
			}
		case stacktemplate.FieldDatabase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field database", values[i])
			} else if value.Valid {
				_m.Database = value.String
			}
		case stacktemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case stacktemplate.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StackTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *StackTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StackTemplate.
// Note that you need to call StackTemplate.Unwrap() before calling this method if this StackTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StackTemplate) Update() *StackTemplateUpdateOne {
	return NewStackTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StackTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StackTemplate) Unwrap() *StackTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StackTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StackTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("StackTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("backend=")
	builder.WriteString(_m.Backend)
	builder.WriteString(", ")
	builder.WriteString("frontend=")
	builder.WriteString(_m.Frontend)
	builder.WriteString(", ")
	builder.WriteString("database=")
	builder.WriteString(_m.Database)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteByte(')')
	return builder.String()
}

// StackTemplates is a parsable slice of StackTemplate.
type StackTemplates []*StackTemplate
