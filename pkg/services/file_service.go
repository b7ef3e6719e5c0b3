package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/uploadedfile"
)

// FileService stores uploaded file blobs, session-scoped. Content
// validation (size cap, supported extensions) happens in the file agent's
// ingest stage; this layer only persists.
type FileService struct {
	client   *ent.Client
	sessions *SessionService
	clock    func() time.Time
}

// NewFileService creates a new FileService
func NewFileService(client *ent.Client) *FileService {
	return &FileService{
		client:   client,
		sessions: NewSessionService(client),
		clock:    time.Now,
	}
}

// SaveFile persists an uploaded blob for the session.
func (s *FileService) SaveFile(ctx context.Context, sessionID, name string, content []byte) (*ent.UploadedFile, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(content) == 0 {
		return nil, NewValidationError("content", "must not be empty")
	}

	if _, err := s.sessions.EnsureSession(ctx, sessionID, ""); err != nil {
		return nil, err
	}

	file, err := s.client.UploadedFile.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetName(name).
		SetExtension(NormalizeExtension(name)).
		SetSize(int64(len(content))).
		SetContent(content).
		SetUploadedAt(s.clock().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	return file, nil
}

// ListFiles returns metadata for the session's files (no blobs), newest first.
func (s *FileService) ListFiles(ctx context.Context, sessionID string) ([]*ent.UploadedFile, error) {
	files, err := s.client.UploadedFile.Query().
		Where(uploadedfile.SessionIDEQ(sessionID)).
		Order(ent.Desc(uploadedfile.FieldUploadedAt)).
		Select(
			uploadedfile.FieldID,
			uploadedfile.FieldSessionID,
			uploadedfile.FieldName,
			uploadedfile.FieldExtension,
			uploadedfile.FieldSize,
			uploadedfile.FieldUploadedAt,
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// GetFile fetches a file including its blob.
func (s *FileService) GetFile(ctx context.Context, fileID string) (*ent.UploadedFile, error) {
	file, err := s.client.UploadedFile.Query().
		Where(uploadedfile.IDEQ(fileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("file %s: %w", fileID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return file, nil
}

// LatestFile returns the most recently uploaded file in the session,
// including its blob, or ErrNotFound.
func (s *FileService) LatestFile(ctx context.Context, sessionID string) (*ent.UploadedFile, error) {
	file, err := s.client.UploadedFile.Query().
		Where(uploadedfile.SessionIDEQ(sessionID)).
		Order(ent.Desc(uploadedfile.FieldUploadedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s has no files: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest file: %w", err)
	}
	return file, nil
}

// NormalizeExtension extracts the lowercase extension without the dot.
func NormalizeExtension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}
