package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StackTemplate holds the schema definition for the StackTemplate entity —
// a seeded technology-stack row used for nearest-neighbor lookup.
type StackTemplate struct {
	ent.Schema
}

// Fields of the StackTemplate.
func (StackTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("title").
			Unique(),
		field.String("backend"),
		field.String("frontend"),
		field.String("database"),
		field.Text("description").
			Comment("Canonical description; its embedding is stored alongside"),
		field.JSON("embedding", []float64{}).
			Comment("1536-dim embedding of the description"),
	}
}
