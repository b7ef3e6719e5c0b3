package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UploadedFile holds the schema definition for the UploadedFile entity.
// Raw uploaded blobs, session-scoped.
type UploadedFile struct {
	ent.Schema
}

// Fields of the UploadedFile.
func (UploadedFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("name"),
		field.String("extension").
			Comment("Lowercase, without the leading dot"),
		field.Int64("size"),
		field.Bytes("content"),
		field.Time("uploaded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UploadedFile.
func (UploadedFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("files").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UploadedFile.
func (UploadedFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "uploaded_at"),
	}
}
