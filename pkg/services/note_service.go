package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/sessionnote"
	"github.com/sundialhq/maestro/pkg/models"
)

// NoteService keeps session-scoped pointers to documents created in the
// external Docs provider, plus optional content snapshots.
type NoteService struct {
	client   *ent.Client
	sessions *SessionService
	clock    func() time.Time
}

// NewNoteService creates a new NoteService
func NewNoteService(client *ent.Client) *NoteService {
	return &NoteService{
		client:   client,
		sessions: NewSessionService(client),
		clock:    time.Now,
	}
}

// SaveNoteRequest contains fields for persisting a note reference.
type SaveNoteRequest struct {
	SessionID     string
	Title         string
	ProviderDocID string
	URL           string
	Content       string
}

// SaveNote persists a note reference for the session.
func (s *NoteService) SaveNote(ctx context.Context, req SaveNoteRequest) (*ent.SessionNote, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	if _, err := s.sessions.EnsureSession(ctx, req.SessionID, ""); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	create := s.client.SessionNote.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetTitle(req.Title).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if req.ProviderDocID != "" {
		create = create.SetProviderDocID(req.ProviderDocID)
	}
	if req.URL != "" {
		create = create.SetURL(req.URL)
	}
	if req.Content != "" {
		create = create.SetContent(req.Content)
	}

	note, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return note, nil
}

// ListNotes returns the session's notes, newest first.
func (s *NoteService) ListNotes(ctx context.Context, sessionID string) ([]*ent.SessionNote, error) {
	notes, err := s.client.SessionNote.Query().
		Where(sessionnote.SessionIDEQ(sessionID)).
		Order(ent.Desc(sessionnote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// HistoryContext builds a compact agent-facing view of recent notes.
func HistoryContext(notes []*ent.SessionNote) []models.HistoryMessage {
	out := make([]models.HistoryMessage, 0, len(notes))
	for _, n := range notes {
		out = append(out, models.HistoryMessage{Role: "agent", Body: n.Title})
	}
	return out
}
