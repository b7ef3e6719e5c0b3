package models

import "time"

// AppendMessageRequest contains fields for appending one transcript entry.
type AppendMessageRequest struct {
	SessionID string `json:"session_id"`
	Sender    string `json:"sender"` // "user" or "agent"
	AgentType string `json:"agent_type,omitempty"`
	Body      string `json:"body"`
}

// ChatMessageView is the wire shape of one persisted transcript entry.
type ChatMessageView struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Sender    string    `json:"sender"`
	AgentType string    `json:"agent_type,omitempty"`
	Body      string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// OrchestrateRequest is the input of one orchestration run.
type OrchestrateRequest struct {
	Message         string `json:"message"`
	SessionID       string `json:"session_id"`
	UserID          string `json:"user_id,omitempty"`
	ThirdPartyToken string `json:"-"`
	FileBlob        []byte `json:"-"`
	FileName        string `json:"file_name,omitempty"`
}

// OrchestrateResponse is the output of one orchestration run.
type OrchestrateResponse struct {
	RequestID    string        `json:"request_id"`
	Response     string        `json:"response"`
	SessionID    string        `json:"session_id"`
	AgentsUsed   []AgentName   `json:"agents_used"`
	WorkflowType string        `json:"workflow_type,omitempty"`
	DraftCreated *DraftSummary `json:"draft_created,omitempty"`
}
