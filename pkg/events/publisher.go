package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher publishes session events. Persistent events are stored in the
// events table then broadcast via NOTIFY in the same transaction;
// transient events (streaming chunks) are broadcast only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishRequestStarted persists and broadcasts a request.started event.
func (p *Publisher) PublishRequestStarted(ctx context.Context, payload RequestStartedPayload) error {
	payload.Type = EventTypeRequestStarted
	return p.persistAndNotify(ctx, payload.SessionID, payload)
}

// PublishPlanCreated persists and broadcasts a plan.created event.
func (p *Publisher) PublishPlanCreated(ctx context.Context, payload PlanCreatedPayload) error {
	payload.Type = EventTypePlanCreated
	return p.persistAndNotify(ctx, payload.SessionID, payload)
}

// PublishAgentStarted persists and broadcasts an agent.started event.
func (p *Publisher) PublishAgentStarted(ctx context.Context, payload AgentStatusPayload) error {
	payload.Type = EventTypeAgentStarted
	return p.persistAndNotify(ctx, payload.SessionID, payload)
}

// PublishAgentCompleted persists and broadcasts an agent.completed event.
func (p *Publisher) PublishAgentCompleted(ctx context.Context, payload AgentStatusPayload) error {
	payload.Type = EventTypeAgentCompleted
	return p.persistAndNotify(ctx, payload.SessionID, payload)
}

// PublishRequestCompleted persists and broadcasts a request.completed event.
func (p *Publisher) PublishRequestCompleted(ctx context.Context, payload RequestCompletedPayload) error {
	payload.Type = EventTypeRequestCompleted
	return p.persistAndNotify(ctx, payload.SessionID, payload)
}

// PublishDraftStatus persists and broadcasts a draft.status event.
func (p *Publisher) PublishDraftStatus(ctx context.Context, payload DraftStatusPayload) error {
	payload.Type = EventTypeDraftStatus
	return p.persistAndNotify(ctx, payload.SessionID, payload)
}

// PublishStreamChunk broadcasts a stream.chunk transient event.
func (p *Publisher) PublishStreamChunk(ctx context.Context, payload StreamChunkPayload) error {
	payload.Type = EventTypeStreamChunk
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal stream chunk: %w", err)
	}
	return p.notifyOnly(ctx, SessionChannel(payload.SessionID), payloadJSON)
}

// persistAndNotify persists the event and broadcasts via NOTIFY in a
// single transaction. pg_notify is transactional, so the notification is
// held until COMMIT and never observed without its row.
func (p *Publisher) persistAndNotify(ctx context.Context, sessionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	channel := SessionChannel(sessionID)

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
		sessionID, channel, payloadJSON, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded keeps the payload under PostgreSQL's 8000-byte NOTIFY
// limit, falling back to a minimal envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		RequestID string `json:"request_id"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncBytes, err := json.Marshal(map[string]any{
		"type":       routing.Type,
		"request_id": routing.RequestID,
		"session_id": routing.SessionID,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
