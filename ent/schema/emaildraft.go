package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmailDraft holds the schema definition for the EmailDraft entity.
// Drafts have a long-lived identity and may outlive the request that
// created them. Status moves only along the approval state machine;
// sent, rejected and failed are terminal.
type EmailDraft struct {
	ent.Schema
}

// Fields of the EmailDraft.
func (EmailDraft) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("draft_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("to"),
		field.JSON("cc", []string{}).
			Optional(),
		field.JSON("bcc", []string{}).
			Optional(),
		field.String("subject"),
		field.Text("body"),
		field.String("tone").
			Default("professional"),
		field.String("priority").
			Default("normal"),
		field.Enum("status").
			Values("drafted", "pending_approval", "approved", "rejected", "scheduled", "sent", "failed").
			Default("drafted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Approval deadline; past-due pending drafts are rejected by the janitor"),
		field.Text("conversation_context").
			Optional(),
		field.Text("ai_reasoning").
			Optional(),
		field.JSON("safety_checks", map[string]interface{}{}).
			Optional(),
		field.String("approval_feedback").
			Optional().
			Nillable(),
		field.String("provider_message_id").
			Optional().
			Nillable().
			Comment("Set exactly once, on the sent transition"),
		field.String("provider_thread_id").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
	}
}

// Edges of the EmailDraft.
func (EmailDraft) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("drafts").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EmailDraft.
func (EmailDraft) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
		// Janitor sweep for approval expiry
		index.Fields("status", "expires_at"),
	}
}
