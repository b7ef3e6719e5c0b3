package models

import "time"

// DraftSummary is the compact draft view returned to callers alongside the
// compiled response and from the draft listing endpoints.
type DraftSummary struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDraftRequest contains fields for persisting a new email draft.
type CreateDraftRequest struct {
	SessionID           string         `json:"session_id"`
	UserID              string         `json:"user_id,omitempty"`
	To                  string         `json:"to"`
	CC                  []string       `json:"cc,omitempty"`
	BCC                 []string       `json:"bcc,omitempty"`
	Subject             string         `json:"subject"`
	Body                string         `json:"body"`
	Tone                string         `json:"tone,omitempty"`
	Priority            string         `json:"priority,omitempty"`
	ConversationContext string         `json:"conversation_context,omitempty"`
	AIReasoning         string         `json:"ai_reasoning,omitempty"`
	SafetyChecks        map[string]any `json:"safety_checks,omitempty"`
}

// DraftUpdate carries field-level modifications for an existing draft.
// Nil fields are left unchanged.
type DraftUpdate struct {
	To           *string        `json:"to,omitempty"`
	CC           []string       `json:"cc,omitempty"`
	BCC          []string       `json:"bcc,omitempty"`
	Subject      *string        `json:"subject,omitempty"`
	Body         *string        `json:"body,omitempty"`
	Tone         *string        `json:"tone,omitempty"`
	Priority     *string        `json:"priority,omitempty"`
	SafetyChecks map[string]any `json:"safety_checks,omitempty"`
}

// ApprovalDecision is a human (or auto-approve shortcut) verdict on a
// pending draft.
type ApprovalDecision struct {
	DraftID       string      `json:"draft_id"`
	Approved      bool        `json:"approved"`
	Feedback      string      `json:"feedback,omitempty"`
	Modifications DraftUpdate `json:"modifications,omitempty"`
}
