package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/pkg/models"
)

// ApprovalTTL is how long a pending draft waits for a human decision
// before the janitor rejects it.
const ApprovalTTL = 24 * time.Hour

// transitions is the approval state machine. Anything not listed here is
// an illegal transition.
var transitions = map[emaildraft.Status][]emaildraft.Status{
	emaildraft.StatusDrafted:         {emaildraft.StatusPendingApproval},
	emaildraft.StatusPendingApproval: {emaildraft.StatusApproved, emaildraft.StatusRejected},
	emaildraft.StatusApproved:        {emaildraft.StatusSent, emaildraft.StatusFailed},
	emaildraft.StatusScheduled:       {emaildraft.StatusApproved, emaildraft.StatusRejected},
}

// CanTransition reports whether from→to is an edge of the state machine.
func CanTransition(from, to emaildraft.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func IsTerminal(status emaildraft.Status) bool {
	switch status {
	case emaildraft.StatusSent, emaildraft.StatusRejected, emaildraft.StatusFailed:
		return true
	}
	return false
}

// DraftService manages persistent email drafts and their state machine.
// Every state transition is a status-guarded UPDATE, so two concurrent
// attempts serialize in PostgreSQL and exactly one succeeds.
type DraftService struct {
	client   *ent.Client
	sessions *SessionService
	clock    func() time.Time
}

// NewDraftService creates a new DraftService
func NewDraftService(client *ent.Client) *DraftService {
	return &DraftService{
		client:   client,
		sessions: NewSessionService(client),
		clock:    time.Now,
	}
}

// NewDraftServiceWithClock creates a DraftService with an injected clock,
// for tests that need deterministic timestamps.
func NewDraftServiceWithClock(client *ent.Client, clock func() time.Time) *DraftService {
	s := NewDraftService(client)
	s.clock = clock
	return s
}

// CreateDraft persists a new draft in status drafted.
func (s *DraftService) CreateDraft(ctx context.Context, req models.CreateDraftRequest) (*ent.EmailDraft, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.To == "" {
		return nil, NewValidationError("to", "required")
	}
	if req.Subject == "" {
		return nil, NewValidationError("subject", "required")
	}
	if req.Body == "" {
		return nil, NewValidationError("body", "required")
	}

	if _, err := s.sessions.EnsureSession(ctx, req.SessionID, req.UserID); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	create := s.client.EmailDraft.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetTo(req.To).
		SetSubject(req.Subject).
		SetBody(req.Body).
		SetStatus(emaildraft.StatusDrafted).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if req.UserID != "" {
		create = create.SetUserID(req.UserID)
	}
	if len(req.CC) > 0 {
		create = create.SetCc(req.CC)
	}
	if len(req.BCC) > 0 {
		create = create.SetBcc(req.BCC)
	}
	if req.Tone != "" {
		create = create.SetTone(req.Tone)
	}
	if req.Priority != "" {
		create = create.SetPriority(req.Priority)
	}
	if req.ConversationContext != "" {
		create = create.SetConversationContext(req.ConversationContext)
	}
	if req.AIReasoning != "" {
		create = create.SetAiReasoning(req.AIReasoning)
	}
	if req.SafetyChecks != nil {
		create = create.SetSafetyChecks(req.SafetyChecks)
	}

	draft, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return draft, nil
}

// GetDraft fetches a draft by id. When sessionID is empty the lookup
// searches across all sessions.
func (s *DraftService) GetDraft(ctx context.Context, draftID, sessionID string) (*ent.EmailDraft, error) {
	query := s.client.EmailDraft.Query().Where(emaildraft.IDEQ(draftID))
	if sessionID != "" {
		query = query.Where(emaildraft.SessionIDEQ(sessionID))
	}
	draft, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("draft %s: %w", draftID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return draft, nil
}

// ListDrafts returns the session's drafts, newest first. An empty status
// means all statuses.
func (s *DraftService) ListDrafts(ctx context.Context, sessionID string, status emaildraft.Status) ([]*ent.EmailDraft, error) {
	query := s.client.EmailDraft.Query().
		Where(emaildraft.SessionIDEQ(sessionID)).
		Order(ent.Desc(emaildraft.FieldCreatedAt))
	if status != "" {
		query = query.Where(emaildraft.StatusEQ(status))
	}
	drafts, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return drafts, nil
}

// LatestDraft returns the most recent draft in the session with any of the
// given statuses, or ErrNotFound.
func (s *DraftService) LatestDraft(ctx context.Context, sessionID string, statuses ...emaildraft.Status) (*ent.EmailDraft, error) {
	query := s.client.EmailDraft.Query().
		Where(emaildraft.SessionIDEQ(sessionID)).
		Order(ent.Desc(emaildraft.FieldCreatedAt))
	if len(statuses) > 0 {
		query = query.Where(emaildraft.StatusIn(statuses...))
	}
	draft, err := query.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s has no matching draft: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find latest draft: %w", err)
	}
	return draft, nil
}

// ListPendingApprovals returns pending drafts across all sessions.
func (s *DraftService) ListPendingApprovals(ctx context.Context) ([]*ent.EmailDraft, error) {
	drafts, err := s.client.EmailDraft.Query().
		Where(emaildraft.StatusEQ(emaildraft.StatusPendingApproval)).
		Order(ent.Asc(emaildraft.FieldExpiresAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return drafts, nil
}

// UpdateDraft applies field-level modifications. Terminal drafts are
// immutable except for metadata, so any content update is refused.
func (s *DraftService) UpdateDraft(ctx context.Context, draftID string, update models.DraftUpdate) (*ent.EmailDraft, error) {
	mutation := s.client.EmailDraft.Update().
		Where(
			emaildraft.IDEQ(draftID),
			emaildraft.StatusNotIn(emaildraft.StatusSent, emaildraft.StatusRejected, emaildraft.StatusFailed),
		).
		SetUpdatedAt(s.clock().UTC())
	applyDraftUpdate(mutation, update)

	n, err := mutation.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	if n == 0 {
		draft, getErr := s.GetDraft(ctx, draftID, "")
		if getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("draft %s is %s: %w", draftID, draft.Status, ErrTerminalState)
	}
	return s.GetDraft(ctx, draftID, "")
}

// DeleteDraft removes a draft.
func (s *DraftService) DeleteDraft(ctx context.Context, draftID string) error {
	n, err := s.client.EmailDraft.Delete().
		Where(emaildraft.IDEQ(draftID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("draft %s: %w", draftID, ErrNotFound)
	}
	return nil
}

// RequestApproval moves drafted→pending_approval and stamps the expiry.
func (s *DraftService) RequestApproval(ctx context.Context, draftID string) (*ent.EmailDraft, error) {
	now := s.clock().UTC()
	n, err := s.client.EmailDraft.Update().
		Where(
			emaildraft.IDEQ(draftID),
			emaildraft.StatusEQ(emaildraft.StatusDrafted),
		).
		SetStatus(emaildraft.StatusPendingApproval).
		SetExpiresAt(now.Add(ApprovalTTL)).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to request approval: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, draftID, emaildraft.StatusPendingApproval)
	}
	return s.GetDraft(ctx, draftID, "")
}

// Approve moves pending_approval→approved, applying any field-level
// modifications in the same critical section. Approving an already-approved
// draft is a no-op; approving from any other state is an error.
func (s *DraftService) Approve(ctx context.Context, decision models.ApprovalDecision) (*ent.EmailDraft, error) {
	now := s.clock().UTC()
	mutation := s.client.EmailDraft.Update().
		Where(
			emaildraft.IDEQ(decision.DraftID),
			emaildraft.StatusEQ(emaildraft.StatusPendingApproval),
		).
		SetStatus(emaildraft.StatusApproved).
		SetApprovedAt(now).
		SetUpdatedAt(now)
	if decision.Feedback != "" {
		mutation = mutation.SetApprovalFeedback(decision.Feedback)
	}
	applyDraftUpdate(mutation, decision.Modifications)

	n, err := mutation.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve draft: %w", err)
	}
	if n == 0 {
		draft, getErr := s.GetDraft(ctx, decision.DraftID, "")
		if getErr != nil {
			return nil, getErr
		}
		// Approve is idempotent.
		if draft.Status == emaildraft.StatusApproved {
			return draft, nil
		}
		return nil, fmt.Errorf("cannot approve draft in status %s: %w", draft.Status, ErrIllegalTransition)
	}
	return s.GetDraft(ctx, decision.DraftID, "")
}

// Reject moves pending_approval→rejected and records feedback.
func (s *DraftService) Reject(ctx context.Context, draftID, feedback string) (*ent.EmailDraft, error) {
	now := s.clock().UTC()
	mutation := s.client.EmailDraft.Update().
		Where(
			emaildraft.IDEQ(draftID),
			emaildraft.StatusEQ(emaildraft.StatusPendingApproval),
		).
		SetStatus(emaildraft.StatusRejected).
		SetUpdatedAt(now)
	if feedback != "" {
		mutation = mutation.SetApprovalFeedback(feedback)
	}
	n, err := mutation.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reject draft: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, draftID, emaildraft.StatusRejected)
	}
	return s.GetDraft(ctx, draftID, "")
}

// MarkSent moves approved→sent, recording the provider identifiers and
// sent_at exactly once. The status guard makes concurrent sends serialize:
// only one caller observes a successful transition.
func (s *DraftService) MarkSent(ctx context.Context, draftID, providerMessageID, providerThreadID string, retryCount int) (*ent.EmailDraft, error) {
	if providerMessageID == "" {
		return nil, NewValidationError("provider_message_id", "required for sent transition")
	}
	now := s.clock().UTC()
	n, err := s.client.EmailDraft.Update().
		Where(
			emaildraft.IDEQ(draftID),
			emaildraft.StatusEQ(emaildraft.StatusApproved),
		).
		SetStatus(emaildraft.StatusSent).
		SetProviderMessageID(providerMessageID).
		SetProviderThreadID(providerThreadID).
		SetSentAt(now).
		SetRetryCount(retryCount).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark draft sent: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, draftID, emaildraft.StatusSent)
	}
	return s.GetDraft(ctx, draftID, "")
}

// MarkFailed moves approved→failed after retries were exhausted or the
// send outcome was ambiguous.
func (s *DraftService) MarkFailed(ctx context.Context, draftID string, retryCount int, reason string) (*ent.EmailDraft, error) {
	now := s.clock().UTC()
	mutation := s.client.EmailDraft.Update().
		Where(
			emaildraft.IDEQ(draftID),
			emaildraft.StatusEQ(emaildraft.StatusApproved),
		).
		SetStatus(emaildraft.StatusFailed).
		SetRetryCount(retryCount).
		SetUpdatedAt(now)
	if reason != "" {
		mutation = mutation.SetApprovalFeedback(reason)
	}
	n, err := mutation.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark draft failed: %w", err)
	}
	if n == 0 {
		return nil, s.transitionConflict(ctx, draftID, emaildraft.StatusFailed)
	}
	return s.GetDraft(ctx, draftID, "")
}

// ExpireOverdueApprovals rejects every pending draft whose approval window
// has passed. Returns the number of drafts expired.
func (s *DraftService) ExpireOverdueApprovals(ctx context.Context) (int, error) {
	now := s.clock().UTC()
	n, err := s.client.EmailDraft.Update().
		Where(
			emaildraft.StatusEQ(emaildraft.StatusPendingApproval),
			emaildraft.ExpiresAtLT(now),
		).
		SetStatus(emaildraft.StatusRejected).
		SetApprovalFeedback("approval request expired").
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire approvals: %w", err)
	}
	return n, nil
}

// CleanupOldDrafts deletes terminal drafts (sent, rejected, failed) older
// than the retention window. Non-terminal drafts are preserved indefinitely.
func (s *DraftService) CleanupOldDrafts(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := s.clock().UTC().Add(-retention)
	n, err := s.client.EmailDraft.Delete().
		Where(
			emaildraft.StatusIn(emaildraft.StatusSent, emaildraft.StatusRejected, emaildraft.StatusFailed),
			emaildraft.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up drafts: %w", err)
	}
	return n, nil
}

// transitionConflict explains why a guarded transition matched no rows.
func (s *DraftService) transitionConflict(ctx context.Context, draftID string, to emaildraft.Status) error {
	draft, err := s.GetDraft(ctx, draftID, "")
	if err != nil {
		return err
	}
	if IsTerminal(draft.Status) {
		return fmt.Errorf("cannot move draft from %s to %s: %w", draft.Status, to, ErrTerminalState)
	}
	return fmt.Errorf("cannot move draft from %s to %s: %w", draft.Status, to, ErrIllegalTransition)
}

// applyDraftUpdate copies non-nil fields onto the mutation.
func applyDraftUpdate(mutation *ent.EmailDraftUpdate, update models.DraftUpdate) {
	if update.To != nil {
		mutation.SetTo(*update.To)
	}
	if update.CC != nil {
		mutation.SetCc(update.CC)
	}
	if update.BCC != nil {
		mutation.SetBcc(update.BCC)
	}
	if update.Subject != nil {
		mutation.SetSubject(*update.Subject)
	}
	if update.Body != nil {
		mutation.SetBody(*update.Body)
	}
	if update.Tone != nil {
		mutation.SetTone(*update.Tone)
	}
	if update.Priority != nil {
		mutation.SetPriority(*update.Priority)
	}
	if update.SafetyChecks != nil {
		mutation.SetSafetyChecks(update.SafetyChecks)
	}
}

// ToDraftSummary converts a draft to its compact wire shape.
func ToDraftSummary(d *ent.EmailDraft) *models.DraftSummary {
	return &models.DraftSummary{
		ID:        d.ID,
		To:        d.To,
		Subject:   d.Subject,
		Body:      d.Body,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
	}
}
