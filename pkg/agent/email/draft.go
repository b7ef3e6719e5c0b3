package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// draftContent is the JSON shape the drafting call must return.
type draftContent struct {
	To      string   `json:"to"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Tone    string   `json:"tone,omitempty"`
}

const draftSystemPrompt = `You draft an email on the user's behalf. Respond with a single JSON object:
{"to": "recipient@example", "cc": [], "subject": "...", "body": "...", "tone": "professional|casual|formal|friendly"}
Write a complete, well-structured body. Use context from the conversation and from other assistants (file summaries, calendar details) when relevant. Do not invent a recipient: leave "to" empty if none is given or implied.`

// draftHints carry caller-supplied overrides that win over model output.
type draftHints struct {
	Recipient string
	Subject   string
	Tone      string
}

func hintsFrom(pad *models.Scratchpad) draftHints {
	params := pad.Params(models.EmailAgent).Params
	h := draftHints{}
	if v, ok := params["recipient"].(string); ok {
		h.Recipient = v
	}
	if v, ok := params["subject"].(string); ok {
		h.Subject = v
	}
	if v, ok := params["tone"].(string); ok {
		h.Tone = v
	}
	if h.Recipient == "" {
		if m := emailAddressRegex.FindString(pad.UserRequest); m != "" {
			h.Recipient = m
		}
	}
	return h
}

// composeDraft produces the draft content. LLM failure falls back to a
// minimal template keyed by the raw request so drafting never hard-fails.
func (a *Agent) composeDraft(ctx context.Context, pad *models.Scratchpad, hints draftHints) *draftContent {
	var b strings.Builder
	if history := agent.HistoryText(pad, 5); history != "" {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n", history)
	}
	if peers := agent.PeerContext(pad); peers != "" {
		fmt.Fprintf(&b, "Context from other assistants:\n%s\n", peers)
	}
	if hints.Recipient != "" {
		fmt.Fprintf(&b, "Recipient: %s\n", hints.Recipient)
	}
	if hints.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", hints.Subject)
	}
	if hints.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", hints.Tone)
	}
	fmt.Fprintf(&b, "Request: %s", pad.UserRequest)

	var content draftContent
	err := llm.CompleteJSON(ctx, a.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.4,
		Messages: []llm.Message{
			{Role: "system", Content: draftSystemPrompt},
			{Role: "user", Content: b.String()},
		},
	}, &content)
	if err != nil || content.Body == "" {
		if err != nil {
			a.logger.Warn("Draft composition failed, using template fallback",
				"request_id", pad.RequestID, "error", err)
		}
		content = templateDraft(pad.UserRequest)
	}

	// Caller hints win over whatever the model produced.
	if hints.Recipient != "" {
		content.To = hints.Recipient
	}
	if hints.Subject != "" {
		content.Subject = hints.Subject
	}
	if hints.Tone != "" {
		content.Tone = hints.Tone
	}
	if content.Subject == "" {
		content.Subject = subjectFromRequest(pad.UserRequest)
	}
	return &content
}

// templateDraft is the last-resort fallback when the model cannot produce
// valid draft JSON.
func templateDraft(request string) draftContent {
	return draftContent{
		Subject: subjectFromRequest(request),
		Body: fmt.Sprintf(
			"Hello,\n\nI wanted to reach out regarding: %s\n\nBest regards", request),
		Tone: "professional",
	}
}

func subjectFromRequest(request string) string {
	subject := strings.TrimSpace(request)
	for _, prefix := range []string{"draft an email to ", "write an email to ", "email ", "draft "} {
		if rest, ok := strings.CutPrefix(strings.ToLower(subject), prefix); ok {
			subject = rest
			break
		}
	}
	if idx := strings.Index(subject, " about "); idx >= 0 {
		subject = subject[idx+len(" about "):]
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "Follow-up"
	}
	if len(subject) > 80 {
		subject = subject[:80]
	}
	return strings.ToUpper(subject[:1]) + subject[1:]
}
