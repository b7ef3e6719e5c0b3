// Package cleanup provides the background janitors for data retention.
package cleanup

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/sundialhq/maestro/pkg/services"
)

// Config holds the retention knobs.
type Config struct {
	// Interval between janitor passes.
	Interval time.Duration
	// DraftRetention is how long terminal drafts are kept.
	DraftRetention time.Duration
	// EventTTL is how long persisted session events are kept.
	EventTTL time.Duration
}

// DefaultConfig returns the production retention defaults.
func DefaultConfig() Config {
	return Config{
		Interval:       5 * time.Minute,
		DraftRetention: 30 * 24 * time.Hour,
		EventTTL:       24 * time.Hour,
	}
}

// Service periodically enforces retention policies:
//   - Rejects pending approvals whose 24h window has passed
//   - Deletes terminal drafts past the retention window
//   - Removes persisted events past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config Config
	drafts *services.DraftService
	db     *sql.DB

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. db is used for raw event-row
// cleanup and may be nil to skip it.
func NewService(cfg Config, drafts *services.DraftService, db *sql.DB) *Service {
	return &Service{config: cfg, drafts: drafts, db: db}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"draft_retention", s.config.DraftRetention,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one janitor pass.
func (s *Service) RunAll(ctx context.Context) {
	s.expireApprovals(ctx)
	s.cleanupDrafts(ctx)
	s.cleanupEvents(ctx)
}

func (s *Service) expireApprovals(ctx context.Context) {
	count, err := s.drafts.ExpireOverdueApprovals(ctx)
	if err != nil {
		slog.Error("Retention: approval expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired overdue approvals", "count", count)
	}
}

func (s *Service) cleanupDrafts(ctx context.Context) {
	count, err := s.drafts.CleanupOldDrafts(ctx, s.config.DraftRetention)
	if err != nil {
		slog.Error("Retention: draft cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old terminal drafts", "count", count)
	}
}

func (s *Service) cleanupEvents(ctx context.Context) {
	if s.db == nil {
		return
	}
	cutoff := time.Now().UTC().Add(-s.config.EventTTL)
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count, err := result.RowsAffected(); err == nil && count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}
