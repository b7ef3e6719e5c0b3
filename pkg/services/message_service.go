package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/chatmessage"
	"github.com/sundialhq/maestro/pkg/models"
)

// MessageService manages the append-only session transcript.
type MessageService struct {
	client   *ent.Client
	sessions *SessionService
	clock    func() time.Time
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{
		client:   client,
		sessions: NewSessionService(client),
		clock:    time.Now,
	}
}

// AppendMessage appends one transcript entry. The session is created
// implicitly if this is its first write.
func (s *MessageService) AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*ent.ChatMessage, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Sender != "user" && req.Sender != "agent" {
		return nil, NewValidationError("sender", "must be 'user' or 'agent'")
	}
	if req.Body == "" {
		return nil, NewValidationError("body", "required")
	}

	if _, err := s.sessions.EnsureSession(ctx, req.SessionID, ""); err != nil {
		return nil, err
	}

	create := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetSender(chatmessage.Sender(req.Sender)).
		SetBody(req.Body).
		SetCreatedAt(s.clock().UTC())
	if req.AgentType != "" {
		create = create.SetAgentType(req.AgentType)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// LoadHistory returns the last `limit` messages of the session in
// chronological order (oldest first).
func (s *MessageService) LoadHistory(ctx context.Context, sessionID string, limit int) ([]*ent.ChatMessage, error) {
	if limit <= 0 {
		limit = 10
	}
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	// Reverse the newest-first page into read order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetTranscript returns the full transcript of a session, oldest first.
func (s *MessageService) GetTranscript(ctx context.Context, sessionID string) ([]*ent.ChatMessage, error) {
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return messages, nil
}

// HistorySnapshot converts transcript entries to the agent-facing view.
func HistorySnapshot(messages []*ent.ChatMessage) []models.HistoryMessage {
	snapshot := make([]models.HistoryMessage, 0, len(messages))
	for _, m := range messages {
		snapshot = append(snapshot, models.HistoryMessage{
			Role: string(m.Sender),
			Body: m.Body,
		})
	}
	return snapshot
}

// ToMessageView converts a persisted entry to the wire shape.
func ToMessageView(m *ent.ChatMessage) models.ChatMessageView {
	view := models.ChatMessageView{
		ID:        m.ID,
		SessionID: m.SessionID,
		Sender:    string(m.Sender),
		Body:      m.Body,
		Timestamp: m.CreatedAt.UTC(),
	}
	if m.AgentType != nil {
		view.AgentType = *m.AgentType
	}
	return view
}
