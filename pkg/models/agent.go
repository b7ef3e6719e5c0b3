// Package models contains request/response models and business domain types.
package models

// AgentName identifies one of the registered agent families.
// The planner emits these values; anything else is rejected.
type AgentName string

const (
	CalendarAgent AgentName = "calendar_agent"
	NotesAgent    AgentName = "notes_agent"
	FileAgent     AgentName = "file_agent"
	EmailAgent    AgentName = "email_agent"
	GeneralAgent  AgentName = "general_agent"
)

// AllAgents returns every registered agent name in canonical order.
func AllAgents() []AgentName {
	return []AgentName{CalendarAgent, NotesAgent, FileAgent, EmailAgent, GeneralAgent}
}

// Valid reports whether the name is a registered agent family.
func (n AgentName) Valid() bool {
	switch n {
	case CalendarAgent, NotesAgent, FileAgent, EmailAgent, GeneralAgent:
		return true
	}
	return false
}

// ResultStatus is the success/error discriminator of an AgentResult.
type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
)

// AgentResult is the single output of an agent invocation. Exactly one of
// success/error applies; Message is always present and human-readable.
// Expected failures are carried here, never raised out of Process.
type AgentResult struct {
	Status            ResultStatus   `json:"status"`
	Message           string         `json:"message"`
	Result            map[string]any `json:"result,omitempty"`
	CollaborationData map[string]any `json:"collaboration_data,omitempty"`

	// ErrorKind is set for error results so the invocation log can carry a
	// stable taxonomy value (input_invalid, auth_missing, timeout, ...).
	ErrorKind string `json:"error_kind,omitempty"`
}

// Success builds a success result.
func Success(message string, result map[string]any) *AgentResult {
	return &AgentResult{Status: StatusSuccess, Message: message, Result: result}
}

// Failure builds an error result.
func Failure(message, kind string) *AgentResult {
	return &AgentResult{Status: StatusError, Message: message, ErrorKind: kind}
}
