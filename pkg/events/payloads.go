package events

// RequestStartedPayload announces that orchestration of a request began.
type RequestStartedPayload struct {
	Type      string `json:"type"` // EventTypeRequestStarted
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id"`
}

// PlanCreatedPayload carries the normalized execution plan.
type PlanCreatedPayload struct {
	Type      string   `json:"type"` // EventTypePlanCreated
	RequestID string   `json:"request_id"`
	SessionID string   `json:"session_id"`
	Agents    []string `json:"agents"`
	Workflow  string   `json:"workflow_type"`
}

// AgentStatusPayload covers both agent.started and agent.completed.
type AgentStatusPayload struct {
	Type       string `json:"type"`
	RequestID  string `json:"request_id"`
	SessionID  string `json:"session_id"`
	Agent      string `json:"agent"`
	Outcome    string `json:"outcome,omitempty"` // success or error, completed only
	ErrorKind  string `json:"error_kind,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
}

// RequestCompletedPayload carries the final compiled response.
type RequestCompletedPayload struct {
	Type      string `json:"type"` // EventTypeRequestCompleted
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
	Outcome   string `json:"outcome"` // completed, failed, cancelled
}

// DraftStatusPayload announces an email draft state transition.
type DraftStatusPayload struct {
	Type      string `json:"type"` // EventTypeDraftStatus
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
	Status    string `json:"status"`
}

// StreamChunkPayload is one compiler token burst. Transient.
type StreamChunkPayload struct {
	Type      string `json:"type"` // EventTypeStreamChunk
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id"`
	Delta     string `json:"delta"`
}
