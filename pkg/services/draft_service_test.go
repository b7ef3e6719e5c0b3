package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
	testdb "github.com/sundialhq/maestro/test/database"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to emaildraft.Status
		allowed  bool
	}{
		{emaildraft.StatusDrafted, emaildraft.StatusPendingApproval, true},
		{emaildraft.StatusPendingApproval, emaildraft.StatusApproved, true},
		{emaildraft.StatusPendingApproval, emaildraft.StatusRejected, true},
		{emaildraft.StatusApproved, emaildraft.StatusSent, true},
		{emaildraft.StatusApproved, emaildraft.StatusFailed, true},
		{emaildraft.StatusDrafted, emaildraft.StatusSent, false},
		{emaildraft.StatusDrafted, emaildraft.StatusApproved, false},
		{emaildraft.StatusSent, emaildraft.StatusDrafted, false},
		{emaildraft.StatusRejected, emaildraft.StatusPendingApproval, false},
		{emaildraft.StatusFailed, emaildraft.StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, services.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, services.IsTerminal(emaildraft.StatusSent))
	assert.True(t, services.IsTerminal(emaildraft.StatusRejected))
	assert.True(t, services.IsTerminal(emaildraft.StatusFailed))
	assert.False(t, services.IsTerminal(emaildraft.StatusDrafted))
	assert.False(t, services.IsTerminal(emaildraft.StatusPendingApproval))
	assert.False(t, services.IsTerminal(emaildraft.StatusApproved))
}

func newDraftRequest(sessionID string) models.CreateDraftRequest {
	return models.CreateDraftRequest{
		SessionID: sessionID,
		To:        "alice@corp.io",
		Subject:   "Quarterly sync",
		Body:      "Hi Alice, can we meet on Thursday?",
	}
}

func TestCreateDraftValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewDraftService(client.Client)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateDraftRequest
	}{
		{"missing session", models.CreateDraftRequest{To: "a@b.io", Subject: "s", Body: "b"}},
		{"missing to", models.CreateDraftRequest{SessionID: "s1", Subject: "s", Body: "b"}},
		{"missing subject", models.CreateDraftRequest{SessionID: "s1", To: "a@b.io", Body: "b"}},
		{"missing body", models.CreateDraftRequest{SessionID: "s1", To: "a@b.io", Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDraft(ctx, tt.req)
			assert.True(t, services.IsValidationError(err))
		})
	}
}

func TestDraftLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewDraftService(client.Client)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusDrafted, draft.Status)
	assert.Equal(t, "alice@corp.io", draft.To)

	pending, err := svc.RequestApproval(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusPendingApproval, pending.Status)
	require.NotNil(t, pending.ExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(services.ApprovalTTL), *pending.ExpiresAt, time.Minute)

	approved, err := svc.Approve(ctx, models.ApprovalDecision{DraftID: draft.ID, Approved: true})
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	sent, err := svc.MarkSent(ctx, draft.ID, "msg-123", "thread-456", 2)
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusSent, sent.Status)
	require.NotNil(t, sent.ProviderMessageID)
	assert.Equal(t, "msg-123", *sent.ProviderMessageID)
	assert.Equal(t, 2, sent.RetryCount)
	require.NotNil(t, sent.SentAt)

	// Terminal drafts refuse content updates.
	newBody := "changed"
	_, err = svc.UpdateDraft(ctx, draft.ID, models.DraftUpdate{Body: &newBody})
	assert.ErrorIs(t, err, services.ErrTerminalState)
}

func TestApproveIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewDraftService(client.Client)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, draft.ID)
	require.NoError(t, err)

	first, err := svc.Approve(ctx, models.ApprovalDecision{DraftID: draft.ID, Approved: true})
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusApproved, first.Status)

	second, err := svc.Approve(ctx, models.ApprovalDecision{DraftID: draft.ID, Approved: true})
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusApproved, second.Status)
}

func TestGuardedTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewDraftService(client.Client)
	ctx := context.Background()

	t.Run("cannot approve a drafted draft", func(t *testing.T) {
		draft, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
		require.NoError(t, err)

		_, err = svc.Approve(ctx, models.ApprovalDecision{DraftID: draft.ID, Approved: true})
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("cannot reject after approval", func(t *testing.T) {
		draft, err := svc.CreateDraft(ctx, newDraftRequest("session-2"))
		require.NoError(t, err)
		_, err = svc.RequestApproval(ctx, draft.ID)
		require.NoError(t, err)
		_, err = svc.Approve(ctx, models.ApprovalDecision{DraftID: draft.ID, Approved: true})
		require.NoError(t, err)

		_, err = svc.Reject(ctx, draft.ID, "changed my mind")
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("cannot send a rejected draft", func(t *testing.T) {
		draft, err := svc.CreateDraft(ctx, newDraftRequest("session-3"))
		require.NoError(t, err)
		_, err = svc.RequestApproval(ctx, draft.ID)
		require.NoError(t, err)
		_, err = svc.Reject(ctx, draft.ID, "no")
		require.NoError(t, err)

		_, err = svc.MarkSent(ctx, draft.ID, "msg-1", "", 0)
		assert.ErrorIs(t, err, services.ErrTerminalState)
	})

	t.Run("mark sent requires a provider message id", func(t *testing.T) {
		_, err := svc.MarkSent(ctx, "whatever", "", "", 0)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestRejectRecordsFeedback(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewDraftService(client.Client)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, draft.ID)
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, draft.ID, "wrong recipient")
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.ApprovalFeedback)
	assert.Equal(t, "wrong recipient", *rejected.ApprovalFeedback)
}

func TestLatestDraftAndListing(t *testing.T) {
	client := testdb.NewTestClient(t)

	now := time.Now().UTC()
	clock := func() time.Time { return now }
	svc := services.NewDraftServiceWithClock(client.Client, clock)
	ctx := context.Background()

	older, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)

	now = now.Add(time.Minute)
	newer, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)

	t.Run("latest picks the newest", func(t *testing.T) {
		latest, err := svc.LatestDraft(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, latest.ID)
	})

	t.Run("status filter applies", func(t *testing.T) {
		_, err := svc.RequestApproval(ctx, older.ID)
		require.NoError(t, err)

		latest, err := svc.LatestDraft(ctx, "session-1", emaildraft.StatusPendingApproval)
		require.NoError(t, err)
		assert.Equal(t, older.ID, latest.ID)
	})

	t.Run("no match is ErrNotFound", func(t *testing.T) {
		_, err := svc.LatestDraft(ctx, "session-1", emaildraft.StatusSent)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		drafts, err := svc.ListDrafts(ctx, "session-1", "")
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		assert.Equal(t, newer.ID, drafts[0].ID)
	})

	t.Run("pending approvals across sessions", func(t *testing.T) {
		other, err := svc.CreateDraft(ctx, newDraftRequest("session-2"))
		require.NoError(t, err)
		_, err = svc.RequestApproval(ctx, other.ID)
		require.NoError(t, err)

		pending, err := svc.ListPendingApprovals(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 2)
	})
}

func TestExpireOverdueApprovals(t *testing.T) {
	client := testdb.NewTestClient(t)

	now := time.Now().UTC()
	clock := func() time.Time { return now }
	svc := services.NewDraftServiceWithClock(client.Client, clock)
	ctx := context.Background()

	overdue, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, overdue.ID)
	require.NoError(t, err)

	// A second pending draft requested later stays within its window.
	now = now.Add(2 * time.Hour)
	fresh, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, fresh.ID)
	require.NoError(t, err)

	// Move past the first draft's deadline but not the second's.
	now = now.Add(services.ApprovalTTL - time.Hour)

	count, err := svc.ExpireOverdueApprovals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expired, err := svc.GetDraft(ctx, overdue.ID, "")
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusRejected, expired.Status)

	stillPending, err := svc.GetDraft(ctx, fresh.ID, "")
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusPendingApproval, stillPending.Status)
}

func TestCleanupOldDraftsKeepsNonTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)

	now := time.Now().UTC().Add(-40 * 24 * time.Hour)
	clock := func() time.Time { return now }
	svc := services.NewDraftServiceWithClock(client.Client, clock)
	ctx := context.Background()

	// Both drafts are 40 days old; only the terminal one may be deleted.
	terminal, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, terminal.ID)
	require.NoError(t, err)
	_, err = svc.Reject(ctx, terminal.ID, "obsolete")
	require.NoError(t, err)

	pending, err := svc.CreateDraft(ctx, newDraftRequest("session-1"))
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, pending.ID)
	require.NoError(t, err)

	now = time.Now().UTC()
	count, err := svc.CleanupOldDrafts(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.GetDraft(ctx, terminal.ID, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	kept, err := svc.GetDraft(ctx, pending.ID, "")
	require.NoError(t, err)
	assert.Equal(t, emaildraft.StatusPendingApproval, kept.Status)
}
