// Package email implements the email agent: inbox access plus a drafting
// workflow where every outgoing email passes safety checks and human (or
// explicitly auto-approved) approval before a send is attempted.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sundialhq/maestro/ent"
	"github.com/sundialhq/maestro/ent/emaildraft"
	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/notify"
	"github.com/sundialhq/maestro/pkg/services"
)

// Agent is the email agent.
type Agent struct {
	llm      llm.Client
	provider connectors.Provider
	drafts   *services.DraftService
	notifier *notify.Service
	checker  *Checker
	logger   *slog.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// New creates the email agent. notifier may be nil.
func New(client llm.Client, provider connectors.Provider, drafts *services.DraftService, notifier *notify.Service, logger *slog.Logger) *Agent {
	return &Agent{
		llm:      client,
		provider: provider,
		drafts:   drafts,
		notifier: notifier,
		checker:  NewChecker(),
		logger:   logger.With("component", "email_agent"),
		sleep:    sleepContext,
	}
}

// Name implements agent.Agent.
func (a *Agent) Name() models.AgentName { return models.EmailAgent }

// Process classifies the request and dispatches.
func (a *Agent) Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	action := a.classifyAction(ctx, pad)

	switch action {
	case ActionDraft:
		return a.draft(ctx, pad)
	case ActionUpdate:
		return a.update(ctx, pad)
	case ActionApprove:
		return a.approve(ctx, pad)
	case ActionSend:
		return a.send(ctx, pad)
	case ActionRead:
		return a.read(ctx, pad)
	case ActionList:
		return a.list(ctx, pad)
	default:
		return models.Failure(
			fmt.Sprintf("I did not understand what email action you want (%q).", action),
			"input_invalid")
	}
}

// draft composes, safety-checks and persists a new draft, then moves it to
// pending approval.
func (a *Agent) draft(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	hints := hintsFrom(pad)
	content := a.composeDraft(ctx, pad, hints)
	if content.To == "" {
		return models.Failure("Who should this email go to? Please give me a recipient address.", "input_invalid")
	}

	report := a.checker.Check(content.To, content.CC, nil, content.Subject, content.Body)

	created, err := a.drafts.CreateDraft(ctx, models.CreateDraftRequest{
		SessionID:           pad.SessionID,
		UserID:              pad.UserID,
		To:                  content.To,
		CC:                  content.CC,
		Subject:             content.Subject,
		Body:                content.Body,
		Tone:                content.Tone,
		ConversationContext: pad.UserRequest,
		SafetyChecks:        report.toMap(),
	})
	if err != nil {
		return a.failure(err)
	}

	pending, err := a.drafts.RequestApproval(ctx, created.ID)
	if err != nil {
		return a.failure(err)
	}
	a.notifier.NotifyApprovalRequested(ctx, services.ToDraftSummary(pending))

	pad.DraftCreated = services.ToDraftSummary(pending)
	return models.Success(a.formatDraftMessage(pending, report), map[string]any{
		"draft_id":      pending.ID,
		"status":        string(pending.Status),
		"safety_checks": report.toMap(),
		"action":        "draft",
	})
}

func (a *Agent) formatDraftMessage(draft *ent.EmailDraft, report *SafetyReport) string {
	var b strings.Builder
	b.WriteString("Here is your draft:\n\n")
	fmt.Fprintf(&b, "**To:** %s\n", draft.To)
	if len(draft.Cc) > 0 {
		fmt.Fprintf(&b, "**Cc:** %s\n", strings.Join(draft.Cc, ", "))
	}
	fmt.Fprintf(&b, "**Subject:** %s\n\n%s\n", draft.Subject, draft.Body)

	if report != nil && !report.Passed {
		b.WriteString("\n⚠️ Safety review flagged issues:\n")
		for name, check := range report.Checks {
			for _, flag := range check.Flags {
				fmt.Fprintf(&b, "- %s: %s\n", name, flag)
			}
		}
	}
	b.WriteString("\nThe draft is awaiting your approval before it can be sent.")
	return b.String()
}

// modification is the JSON shape of the update-extraction call.
type modification struct {
	To      string `json:"to,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

const updateSystemPrompt = `The user wants to change an existing email draft. Given the current draft and the request, respond with a single JSON object holding only the fields that change: {"to": "...", "subject": "...", "body": "..."}. When the body changes, return the complete rewritten body.`

func (a *Agent) update(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	draft, failed := a.resolveDraft(ctx, pad, emaildraft.StatusDrafted, emaildraft.StatusPendingApproval)
	if failed != nil {
		return failed
	}

	prompt := fmt.Sprintf("Current draft:\nTo: %s\nSubject: %s\nBody:\n%s\n\nRequest: %s",
		draft.To, draft.Subject, draft.Body, pad.UserRequest)

	var mod modification
	err := llm.CompleteJSON(ctx, a.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.2,
		Messages: []llm.Message{
			{Role: "system", Content: updateSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}, &mod)
	if err != nil {
		return a.failure(err)
	}
	if mod.To == "" && mod.Subject == "" && mod.Body == "" {
		return models.Failure("I could not work out what to change on the draft. Please be specific.", "input_invalid")
	}

	update := models.DraftUpdate{}
	to, subject, body := draft.To, draft.Subject, draft.Body
	if mod.To != "" {
		update.To, to = &mod.To, mod.To
	}
	if mod.Subject != "" {
		update.Subject, subject = &mod.Subject, mod.Subject
	}
	if mod.Body != "" {
		update.Body, body = &mod.Body, mod.Body
	}

	// Safety runs again over the post-update content.
	report := a.checker.Check(to, draft.Cc, draft.Bcc, subject, body)
	update.SafetyChecks = report.toMap()

	updated, err := a.drafts.UpdateDraft(ctx, draft.ID, update)
	if err != nil {
		return a.failure(err)
	}

	return models.Success(a.formatDraftMessage(updated, report), map[string]any{
		"draft_id":      updated.ID,
		"status":        string(updated.Status),
		"safety_checks": report.toMap(),
		"action":        "update",
	})
}

func (a *Agent) approve(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	draft, failed := a.resolveDraft(ctx, pad, emaildraft.StatusPendingApproval)
	if failed != nil {
		return failed
	}

	lower := strings.ToLower(pad.UserRequest)
	if containsAny(lower, "reject", "don't send", "do not send", "cancel") {
		rejected, err := a.drafts.Reject(ctx, draft.ID, pad.UserRequest)
		if err != nil {
			return a.failure(err)
		}
		a.notifier.NotifyDraftOutcome(ctx, services.ToDraftSummary(rejected), "")
		return models.Success(
			fmt.Sprintf("Draft to %s was rejected and will not be sent.", rejected.To),
			map[string]any{"draft_id": rejected.ID, "status": string(rejected.Status), "action": "reject"})
	}

	approved, err := a.drafts.Approve(ctx, models.ApprovalDecision{DraftID: draft.ID, Approved: true})
	if err != nil {
		return a.failure(err)
	}
	return models.Success(
		fmt.Sprintf("Draft to %s is approved. Say \"send it\" when you want it delivered.", approved.To),
		map[string]any{"draft_id": approved.ID, "status": string(approved.Status), "action": "approve"})
}

// send delivers the session's approved draft. A still-pending draft is
// auto-approved first: an explicit send instruction doubles as approval.
func (a *Agent) send(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	mail, err := a.provider.Mail(ctx, pad.ThirdPartyToken)
	if err != nil {
		return a.failure(err)
	}

	draft, failed := a.resolveDraft(ctx, pad, emaildraft.StatusApproved, emaildraft.StatusPendingApproval)
	if failed != nil {
		return failed
	}

	if draft.Status == emaildraft.StatusPendingApproval {
		draft, err = a.drafts.Approve(ctx, models.ApprovalDecision{
			DraftID:  draft.ID,
			Approved: true,
			Feedback: "auto-approved for send",
		})
		if err != nil {
			return a.failure(err)
		}
	}

	outcome, err := a.sendApproved(ctx, mail, draft)
	if err != nil {
		return a.failure(err)
	}

	if outcome.Sent {
		a.notifier.NotifyDraftOutcome(ctx, services.ToDraftSummary(outcome.Draft), "")
		return models.Success(
			fmt.Sprintf("✅ Email Sent to %s: \"%s\"", outcome.Draft.To, outcome.Draft.Subject),
			map[string]any{
				"draft_id":            outcome.Draft.ID,
				"status":              string(outcome.Draft.Status),
				"provider_message_id": outcome.Draft.ProviderMessageID,
				"retry_count":         outcome.Retries,
				"action":              "send",
			})
	}

	a.notifier.NotifyDraftOutcome(ctx, services.ToDraftSummary(outcome.Draft), outcome.Reason)
	return models.Failure(
		fmt.Sprintf("Failed to send email to %s: %s", outcome.Draft.To, outcome.Reason),
		"send_failed")
}

func (a *Agent) read(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	mail, err := a.provider.Mail(ctx, pad.ThirdPartyToken)
	if err != nil {
		return a.failure(err)
	}

	id, _ := pad.Params(models.EmailAgent).Params["message_id"].(string)
	if id == "" {
		// Without an explicit id, read the best match for the request.
		matches, err := mail.List(ctx, connectors.MailListOptions{
			MaxResults: 1,
			Query:      BuildMailQuery(pad.UserRequest),
		})
		if err != nil {
			return a.failure(err)
		}
		if len(matches) == 0 {
			return models.Failure("Could not find an email matching your request.", "not_found")
		}
		id = matches[0].ID
	}

	msg, err := mail.Get(ctx, id)
	if err != nil {
		return a.failure(err)
	}

	return models.Success(
		fmt.Sprintf("From: %s\nSubject: %s\nDate: %s\n\n%s", msg.From, msg.Subject, msg.Date, msg.Body),
		map[string]any{"email": msg, "action": "read"})
}

func (a *Agent) list(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	mail, err := a.provider.Mail(ctx, pad.ThirdPartyToken)
	if err != nil {
		return a.failure(err)
	}

	max := 10
	if v, ok := pad.Params(models.EmailAgent).Params["max_results"].(float64); ok && v > 0 {
		max = int(v)
	}
	if max > maxListResults {
		max = maxListResults
	}

	emails, err := mail.List(ctx, connectors.MailListOptions{
		MaxResults: max,
		Query:      BuildMailQuery(pad.UserRequest),
	})
	if err != nil {
		return a.failure(err)
	}

	if len(emails) == 0 {
		return models.Success("No emails matched your request.",
			map[string]any{"emails": emails, "action": "list"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d emails:\n", len(emails))
	for _, e := range emails {
		marker := ""
		if e.IsUnread {
			marker = " (unread)"
		}
		fmt.Fprintf(&b, "- %s: %s%s\n  %s\n", e.From, e.Subject, marker, e.Snippet)
	}
	return models.Success(b.String(), map[string]any{"emails": emails, "action": "list"})
}

// resolveDraft finds the draft the user is talking about: an explicit
// draft_id parameter first, otherwise the session's most recent draft in
// one of the wanted statuses.
func (a *Agent) resolveDraft(ctx context.Context, pad *models.Scratchpad, statuses ...emaildraft.Status) (*ent.EmailDraft, *models.AgentResult) {
	if id, ok := pad.Params(models.EmailAgent).Params["draft_id"].(string); ok && id != "" {
		draft, err := a.drafts.GetDraft(ctx, id, pad.SessionID)
		if err != nil {
			return nil, a.failure(err)
		}
		return draft, nil
	}

	draft, err := a.drafts.LatestDraft(ctx, pad.SessionID, statuses...)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, models.Failure("There is no draft in this conversation to act on. Ask me to draft one first.", "not_found")
		}
		return nil, a.failure(err)
	}
	return draft, nil
}

// failure maps service, provider and LLM errors to user-facing results.
func (a *Agent) failure(err error) *models.AgentResult {
	var parseErr *llm.ParseError
	switch {
	case connectors.IsAuth(err):
		return models.Failure("Please sign in to Gmail to do that.", string(connectors.KindOf(err)))
	case errors.Is(err, services.ErrTerminalState):
		return models.Failure("That draft is already settled (sent, rejected or failed) and cannot change.", "terminal_state")
	case errors.Is(err, services.ErrIllegalTransition):
		return models.Failure("That draft is not in a state where this action applies.", "illegal_transition")
	case errors.Is(err, services.ErrNotFound):
		return models.Failure("Could not find that draft.", "not_found")
	case errors.As(err, &parseErr):
		return models.Failure("I could not work out the email details. Please rephrase your request.", "llm_parse_error")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return agent.ClassifyErr(models.EmailAgent, err)
	default:
		var pe *connectors.Error
		if errors.As(err, &pe) {
			return models.Failure(fmt.Sprintf("Email request failed: %v.", err), string(pe.Kind))
		}
		return models.Failure(fmt.Sprintf("Email request failed: %v.", err), "error")
	}
}
