package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the append-only
// audit log of retries, conflicts, locks, escalations, and SLO outcomes.
//
// Events reference swarms by ID only (no FK edge): they survive swarm
// deletion and are kept for postmortem analysis. The integer primary key
// provides the total append order per swarm.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("swarm_id").
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("retry, conflict_resolved, lock_acquired, lock_released, lock_broken, escalation, slo_breach, decision, constraint, learning"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("swarm_id"),
		index.Fields("swarm_id", "kind"),
		index.Fields("timestamp"),
	}
}
