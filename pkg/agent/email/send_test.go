package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
	testdb "github.com/sundialhq/maestro/test/database"
)

// scriptedMail replays one outcome per Send attempt. A nil entry (or running
// past the script) means success.
type scriptedMail struct {
	errs  []error
	calls int
}

func (m *scriptedMail) Send(_ context.Context, _ connectors.OutgoingEmail) (*connectors.SendReceipt, error) {
	m.calls++
	if m.calls <= len(m.errs) && m.errs[m.calls-1] != nil {
		return nil, m.errs[m.calls-1]
	}
	return &connectors.SendReceipt{ProviderMessageID: "msg-1", ProviderThreadID: "thread-1"}, nil
}

func (m *scriptedMail) List(_ context.Context, _ connectors.MailListOptions) ([]connectors.EmailSummary, error) {
	return nil, errors.New("not scripted")
}

func (m *scriptedMail) Get(_ context.Context, _ string) (*connectors.EmailSummary, error) {
	return nil, errors.New("not scripted")
}

func newSendTestAgent(drafts *services.DraftService) *Agent {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(nil, nil, drafts, nil, logger)
	a.sleep = func(context.Context, time.Duration) error { return nil }
	return a
}

func approvedDraft(t *testing.T, drafts *services.DraftService) *ent.EmailDraft {
	t.Helper()
	ctx := context.Background()

	created, err := drafts.CreateDraft(ctx, models.CreateDraftRequest{
		SessionID: "session-1",
		To:        "bob@corp.io",
		Subject:   "Offsite agenda",
		Body:      "Hi Bob, attached is the agenda for the offsite.",
	})
	require.NoError(t, err)
	_, err = drafts.RequestApproval(ctx, created.ID)
	require.NoError(t, err)
	approved, err := drafts.Approve(ctx, models.ApprovalDecision{DraftID: created.ID, Approved: true})
	require.NoError(t, err)
	return approved
}

func TestSendApprovedFirstAttempt(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)
	mail := &scriptedMail{}

	outcome, err := a.sendApproved(context.Background(), mail, approvedDraft(t, drafts))
	require.NoError(t, err)

	assert.True(t, outcome.Sent)
	assert.Equal(t, 0, outcome.Retries)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, emaildraft.StatusSent, outcome.Draft.Status)
	require.NotNil(t, outcome.Draft.ProviderMessageID)
	assert.Equal(t, "msg-1", *outcome.Draft.ProviderMessageID)
}

func TestSendApprovedRetriesTransient(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)

	sleeps := 0
	a.sleep = func(context.Context, time.Duration) error { sleeps++; return nil }
	mail := &scriptedMail{errs: []error{
		connectors.E("mail.send", connectors.KindTransient, errors.New("upstream 503")),
		nil,
	}}

	outcome, err := a.sendApproved(context.Background(), mail, approvedDraft(t, drafts))
	require.NoError(t, err)

	assert.True(t, outcome.Sent)
	assert.Equal(t, 1, outcome.Retries)
	assert.Equal(t, 2, mail.calls)
	assert.Equal(t, 1, sleeps)
	assert.Equal(t, 1, outcome.Draft.RetryCount)
	assert.Equal(t, emaildraft.StatusSent, outcome.Draft.Status)
}

func TestSendApprovedPermanentFailsImmediately(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)

	sendErr := connectors.E("mail.send", connectors.KindPermanent, errors.New("address rejected"))
	mail := &scriptedMail{errs: []error{sendErr}}

	outcome, err := a.sendApproved(context.Background(), mail, approvedDraft(t, drafts))
	require.NoError(t, err)

	assert.False(t, outcome.Sent)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, sendErr.Error(), outcome.Reason)
	assert.Equal(t, emaildraft.StatusFailed, outcome.Draft.Status)
}

func TestSendApprovedExhaustsRetries(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)

	transient := connectors.E("mail.send", connectors.KindRateLimited, errors.New("quota"))
	mail := &scriptedMail{errs: []error{transient, transient, transient}}

	outcome, err := a.sendApproved(context.Background(), mail, approvedDraft(t, drafts))
	require.NoError(t, err)

	assert.False(t, outcome.Sent)
	assert.Equal(t, maxSendAttempts, mail.calls)
	assert.Equal(t, maxSendAttempts-1, outcome.Retries)
	assert.Equal(t, emaildraft.StatusFailed, outcome.Draft.Status)
	assert.Equal(t, maxSendAttempts-1, outcome.Draft.RetryCount)
}

func TestSendApprovedAmbiguousOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)

	// A cancellation surfacing from the wire call means the message may or
	// may not have left; the loop must not try again.
	mail := &scriptedMail{errs: []error{
		connectors.E("mail.send", connectors.KindTransient, context.Canceled),
	}}

	outcome, err := a.sendApproved(context.Background(), mail, approvedDraft(t, drafts))
	require.NoError(t, err)

	assert.False(t, outcome.Sent)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "send was interrupted; please re-send manually", outcome.Reason)
	assert.Equal(t, emaildraft.StatusFailed, outcome.Draft.Status)
}

func TestSendApprovedCancelledWhileWaiting(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)
	a.sleep = func(context.Context, time.Duration) error { return context.Canceled }

	mail := &scriptedMail{errs: []error{
		connectors.E("mail.send", connectors.KindTransient, errors.New("upstream 503")),
		nil,
	}}

	outcome, err := a.sendApproved(context.Background(), mail, approvedDraft(t, drafts))
	require.NoError(t, err)

	assert.False(t, outcome.Sent)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "cancelled while waiting to retry", outcome.Reason)
	assert.Equal(t, emaildraft.StatusFailed, outcome.Draft.Status)
}

func TestSendApprovedSurfacesLostReceipt(t *testing.T) {
	client := testdb.NewTestClient(t)
	drafts := services.NewDraftService(client.Client)
	a := newSendTestAgent(drafts)
	mail := &scriptedMail{}

	// A draft that never reached approved: the wire send succeeds but the
	// guarded sent transition cannot, so the receipt must surface in the
	// error instead of vanishing.
	created, err := drafts.CreateDraft(context.Background(), models.CreateDraftRequest{
		SessionID: "session-1",
		To:        "bob@corp.io",
		Subject:   "Offsite agenda",
		Body:      "Hi Bob.",
	})
	require.NoError(t, err)

	_, err = a.sendApproved(context.Background(), mail, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sent as msg-1")
	assert.Equal(t, 1, mail.calls)
}
