package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/sundialhq/maestro/pkg/models"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service handles approval notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "notify-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "notify-service"),
	}
}

// NotifyApprovalRequested announces a draft awaiting human approval.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyApprovalRequested(ctx context.Context, draft *models.DraftSummary) {
	if s == nil {
		return
	}

	blocks := BuildApprovalRequestMessage(draft, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send approval notification",
			"draft_id", draft.ID,
			"error", err)
	}
}

// NotifyDraftOutcome announces a terminal draft outcome (sent, rejected,
// failed). Fail-open: errors are logged, never returned.
func (s *Service) NotifyDraftOutcome(ctx context.Context, draft *models.DraftSummary, detail string) {
	if s == nil {
		return
	}

	blocks := BuildOutcomeMessage(draft, detail, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send draft outcome notification",
			"draft_id", draft.ID,
			"status", draft.Status,
			"error", err)
	}
}
