package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Session holds the schema definition for the Session entity.
// A session owns every persisted artifact produced on its behalf: chat
// transcript, email drafts, notes, uploaded files. Sessions are created
// implicitly on first write and removed only by explicit admin action.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Verified user identity from the outer auth layer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_active_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ChatMessage.Type),
		edge.To("drafts", EmailDraft.Type),
		edge.To("notes", SessionNote.Type),
		edge.To("files", UploadedFile.Type),
	}
}
