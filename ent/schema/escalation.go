package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Escalation holds the schema definition for the Escalation entity — a
// surfaced blocker that requires human input to resolve.
type Escalation struct {
	ent.Schema
}

// Fields of the Escalation.
func (Escalation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("escalation_id").
			Unique().
			Immutable(),
		field.String("swarm_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.Enum("kind").
			Values("configuration", "design_decision", "external_service", "unclear_requirement"),
		field.String("severity").
			Default("high"),
		field.Text("description"),
		field.JSON("suggested_actions", []string{}).
			Optional(),
		field.Bool("can_continue_without").
			Default(false),
		field.Enum("status").
			Values("pending", "resolved", "cancelled").
			Default("pending"),
		field.JSON("resolution", map[string]interface{}{}).
			Optional().
			Comment("Payload supplied by a human; partial input merges here"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Escalation.
func (Escalation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("swarm", Swarm.Type).
			Ref("escalations").
			Field("swarm_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Escalation.
func (Escalation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("swarm_id", "status"),
	}
}
