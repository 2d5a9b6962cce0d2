// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Escalation is the predicate function for escalation builders.
type Escalation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// StackTemplate is the predicate function for stacktemplate builders.
type StackTemplate func(*sql.Selector)

// Swarm is the predicate function for swarm builders.
type Swarm func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
