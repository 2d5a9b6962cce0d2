package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the atomic
// dispatchable unit of work within a swarm.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("swarm_id").
			Immutable(),
		field.String("task_key").
			Comment("Stable hierarchy-encoded key within the swarm, e.g. \"1.2\""),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Owning agent; exactly one while in_progress"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Int("priority").
			Default(5).
			Comment("1..10, higher is scheduled first"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "blocked", "skipped").
			Default("pending"),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("task_key references within the same swarm; must form a DAG"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Comment("Inputs and produced artifacts"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5),
		field.String("phase").
			Optional().
			Comment("Delivery phase for phased plans: mvp, enhanced, polish"),
		field.Bool("milestone").
			Default(false).
			Comment("True for phase-gate tasks in monster plans"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("last_failed_at").
			Optional().
			Nillable().
			Comment("Drives retry backoff in the monitor"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("swarm", Swarm.Type).
			Ref("tasks").
			Field("swarm_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("swarm_id", "task_key").
			Unique(),
		index.Fields("swarm_id", "status"),
		index.Fields("status", "updated_at"),
		index.Fields("agent_id"),
	}
}
