package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Swarm holds the schema definition for the Swarm entity — the top-level
// execution unit for a single user request.
type Swarm struct {
	ent.Schema
}

// Fields of the Swarm.
func (Swarm) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("swarm_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("status").
			Values("idle", "running", "paused", "awaiting_approval", "completed", "failed", "cancelled").
			Default("idle"),
		field.Int("num_agents").
			Default(0),
		field.String("complexity").
			Optional().
			Comment("Plan bucket: simple, medium, complex, monster"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Full scope record plus workflow checkpoints"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the swarm (idle to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Swarm.
func (Swarm) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("escalations", Escalation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Swarm.
func (Swarm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("pod_id"),
	}
}
