package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionNote holds the schema definition for the SessionNote entity.
// Notes live in the external Docs provider; this record keeps the
// session-scoped pointer (and an optional content snapshot) so later
// requests in the session can find what was created.
type SessionNote struct {
	ent.Schema
}

// Fields of the SessionNote.
func (SessionNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("note_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("title"),
		field.String("provider_doc_id").
			Optional().
			Nillable(),
		field.String("url").
			Optional().
			Nillable(),
		field.Text("content").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SessionNote.
func (SessionNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("notes").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionNote.
func (SessionNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
