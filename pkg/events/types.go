// Package events provides real-time event delivery over Server-Sent
// Events, with PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Lifecycle events (request and agent status, draft status) are persisted
// to the events table and broadcast in the same transaction, so a NOTIFY
// is never observed without its row. Streaming chunks are broadcast only:
// high-frequency, ephemeral, lost on disconnect. The final compiled
// response always arrives as a persistent request.completed event.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeRequestStarted   = "request.started"
	EventTypePlanCreated      = "plan.created"
	EventTypeAgentStarted     = "agent.started"
	EventTypeAgentCompleted   = "agent.completed"
	EventTypeRequestCompleted = "request.completed"
	EventTypeDraftStatus      = "draft.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Compiler streaming chunks. High-frequency and ephemeral.
	EventTypeStreamChunk = "stream.chunk"
)

// SessionChannel returns the NOTIFY channel for a session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}
