package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// Intent is the typed result of LLM intent extraction for notes.
type Intent struct {
	Action   string `json:"action"` // create, update, delete, view_all, view_specific, search
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	DocQuery string `json:"doc_query,omitempty"`
	Append   bool   `json:"append,omitempty"`
}

const intentSystemPrompt = `You extract note-taking intent from a user request. Respond with a single JSON object:
{"action": "create|update|delete|view_all|view_specific|search",
 "title": "short document title",
 "content": "the note body if the user dictated one, else empty",
 "doc_query": "words identifying an existing note (for update/delete/view_specific/search)",
 "append": true when the user wants to add to a note rather than replace it}

Rules:
- "save this", "take a note", "write down" mean create.
- "add to my X note" means update with append=true.
- Leave content empty when the note body must be composed from context
  (for example "save a note about the file we just discussed").
- Omit fields that do not apply.`

// extractIntent runs the JSON-mode intent call.
func (a *Agent) extractIntent(ctx context.Context, pad *models.Scratchpad) (*Intent, error) {
	var b strings.Builder
	if history := agent.HistoryText(pad, 5); history != "" {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n", history)
	}
	if peers := agent.PeerContext(pad); peers != "" {
		fmt.Fprintf(&b, "Context from other assistants:\n%s\n", peers)
	}
	fmt.Fprintf(&b, "Request: %s", pad.UserRequest)

	var intent Intent
	err := llm.CompleteJSON(ctx, a.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.1,
		Messages: []llm.Message{
			{Role: "system", Content: intentSystemPrompt},
			{Role: "user", Content: b.String()},
		},
	}, &intent)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

const composeSystemPrompt = `You write the body of a note on the user's behalf. Use the conversation and any results from other assistants (file summaries, email content, calendar details) as source material. Write clean, well-organized prose or bullet points. Output only the note body, no preamble.`

// composeContent synthesizes a note body when the user did not dictate one.
// File summaries and other peer results are the primary source material.
func (a *Agent) composeContent(ctx context.Context, pad *models.Scratchpad, intent *Intent) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Note title: %s\n", intent.Title)
	if history := agent.HistoryText(pad, 10); history != "" {
		fmt.Fprintf(&b, "Conversation:\n%s\n", history)
	}
	if peers := agent.PeerContext(pad); peers != "" {
		fmt.Fprintf(&b, "Source material from other assistants:\n%s\n", peers)
	}
	fmt.Fprintf(&b, "User request: %s", pad.UserRequest)

	return a.llm.Complete(ctx, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.3,
		Format:      llm.FormatText,
		Messages: []llm.Message{
			{Role: "system", Content: composeSystemPrompt},
			{Role: "user", Content: b.String()},
		},
	})
}
