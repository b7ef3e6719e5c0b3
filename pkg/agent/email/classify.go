package email

import (
	"context"
	"strings"

	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// Action is the email agent's discriminator.
type Action string

const (
	ActionRead    Action = "read"
	ActionList    Action = "list"
	ActionDraft   Action = "draft"
	ActionUpdate  Action = "update"
	ActionApprove Action = "approve"
	ActionSend    Action = "send"
)

func (a Action) valid() bool {
	switch a {
	case ActionRead, ActionList, ActionDraft, ActionUpdate, ActionApprove, ActionSend:
		return true
	}
	return false
}

const classifySystemPrompt = `Classify the user's email request as exactly one action. Respond with a single JSON object {"action": "..."}:
- "read": open one specific email
- "list": show, search or check the inbox
- "draft": compose or write a new email
- "update": change an existing draft's recipient, subject or body
- "approve": approve or reject a pending draft
- "send": send a draft (including "send it")`

type classifyResult struct {
	Action string `json:"action"`
}

// classifyAction picks the action via one LLM call, falling back to
// keywords when the call fails or returns something unknown.
func (a *Agent) classifyAction(ctx context.Context, pad *models.Scratchpad) Action {
	if spec := pad.Params(models.EmailAgent); spec.Action != "" && Action(spec.Action).valid() {
		return Action(spec.Action)
	}

	var result classifyResult
	err := llm.CompleteJSON(ctx, a.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.0,
		Messages: []llm.Message{
			{Role: "system", Content: classifySystemPrompt},
			{Role: "user", Content: pad.UserRequest},
		},
	}, &result)
	if err == nil && Action(result.Action).valid() {
		return Action(result.Action)
	}

	return classifyByKeyword(pad.UserRequest)
}

// classifyByKeyword is the deterministic fallback. Order matters: send and
// approve outrank draft so "send the email" does not re-draft.
func classifyByKeyword(request string) Action {
	lower := strings.ToLower(request)

	switch {
	case containsAny(lower, "send it", "send the", "send this", "go ahead and send"):
		return ActionSend
	case containsAny(lower, "approve", "reject", "confirm the draft"):
		return ActionApprove
	case containsAny(lower, "change the", "update the draft", "edit the draft", "revise"):
		return ActionUpdate
	case containsAny(lower, "draft", "compose", "write an email", "write a mail", "email to", "send an email"):
		return ActionDraft
	case containsAny(lower, "read the", "open the", "show me the email"):
		return ActionRead
	case containsAny(lower, "inbox", "list", "unread", "check my email", "emails from", "any emails", "search"):
		return ActionList
	default:
		return ActionDraft
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
