package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/pkg/connectors"
)

const (
	maxSendAttempts = 3
	sendRetryDelay  = 5 * time.Second
)

// sendOutcome is the result of the at-most-once send loop.
type sendOutcome struct {
	Sent    bool
	Draft   *ent.EmailDraft
	Reason  string
	Retries int
}

// sendApproved sends an approved draft with at-most-once semantics. Only
// errors classified transient or rate-limited are retried; an ambiguous
// outcome (cancellation mid-send) marks the draft failed rather than
// risking duplicate delivery. The wire send itself is not idempotent.
func (a *Agent) sendApproved(ctx context.Context, mail connectors.Mail, draft *ent.EmailDraft) (*sendOutcome, error) {
	outgoing := connectors.OutgoingEmail{
		To:      draft.To,
		CC:      draft.Cc,
		BCC:     draft.Bcc,
		Subject: draft.Subject,
		Body:    draft.Body,
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		receipt, err := mail.Send(ctx, outgoing)
		if err == nil {
			sent, markErr := a.drafts.MarkSent(ctx, draft.ID, receipt.ProviderMessageID, receipt.ProviderThreadID, attempt-1)
			if markErr != nil {
				// The provider accepted the message but the transition was
				// lost to a concurrent actor or storage failure. Surface the
				// receipt so the caller can report what actually happened.
				return nil, fmt.Errorf("sent as %s but could not record it: %w", receipt.ProviderMessageID, markErr)
			}
			return &sendOutcome{Sent: true, Draft: sent, Retries: attempt - 1}, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Ambiguous: the request may or may not have reached the
			// provider. Never retry past this point.
			failed, markErr := a.drafts.MarkFailed(ctx, draft.ID, attempt-1, "send outcome ambiguous: "+err.Error())
			if markErr != nil {
				return nil, markErr
			}
			return &sendOutcome{Draft: failed, Reason: "send was interrupted; please re-send manually", Retries: attempt - 1}, nil
		}

		if !connectors.IsRetryable(err) || attempt == maxSendAttempts {
			failed, markErr := a.drafts.MarkFailed(ctx, draft.ID, attempt-1, err.Error())
			if markErr != nil {
				return nil, markErr
			}
			return &sendOutcome{Draft: failed, Reason: err.Error(), Retries: attempt - 1}, nil
		}

		a.logger.Warn("Transient send failure, retrying",
			"draft_id", draft.ID, "attempt", attempt, "error", err)
		if err := a.sleep(ctx, sendRetryDelay); err != nil {
			failed, markErr := a.drafts.MarkFailed(ctx, draft.ID, attempt-1, "cancelled while waiting to retry")
			if markErr != nil {
				return nil, markErr
			}
			return &sendOutcome{Draft: failed, Reason: "cancelled while waiting to retry", Retries: attempt - 1}, nil
		}
	}

	return nil, lastErr
}

// sleepContext waits for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
