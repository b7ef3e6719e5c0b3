package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/session"
)

// SessionService manages session lifecycle. Sessions are created implicitly
// on first write and removed only by explicit admin action.
type SessionService struct {
	client *ent.Client
	clock  func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client, clock: time.Now}
}

// EnsureSession creates the session if it does not exist and refreshes its
// last_active_at. Safe to call concurrently.
func (s *SessionService) EnsureSession(ctx context.Context, sessionID, userID string) (*ent.Session, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	existing, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err == nil {
		updated, err := existing.Update().
			SetLastActiveAt(s.clock().UTC()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to touch session: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	create := s.client.Session.Create().
		SetID(sessionID).
		SetCreatedAt(s.clock().UTC()).
		SetLastActiveAt(s.clock().UTC())
	if userID != "" {
		create = create.SetUserID(userID)
	}
	created, err := create.Save(ctx)
	if err != nil {
		// A concurrent first write may have created it between query and save.
		if ent.IsConstraintError(err) {
			return s.client.Session.Query().Where(session.IDEQ(sessionID)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetSession fetches a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return found, nil
}
