package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — a logical
// role-scoped worker belonging to a swarm.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("swarm_id").
			Immutable(),
		field.String("role").
			Comment("e.g. frontend_architect, backend_integrator, deployment_guardian"),
		field.Enum("status").
			Values("idle", "working").
			Default("idle"),
		field.String("current_task_id").
			Optional().
			Nillable().
			Comment("Set only while the referenced task is in_progress"),
		field.JSON("data", map[string]interface{}{}).
			Optional(),
		field.Time("assigned_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("swarm", Swarm.Type).
			Ref("agents").
			Field("swarm_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("swarm_id"),
		index.Fields("swarm_id", "role"),
	}
}
