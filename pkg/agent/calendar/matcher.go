package calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// matchCandidates is how many upcoming events are pulled for grounding a
// mutation target.
const matchCandidates = 50

// minMatchConfidence is the threshold below which the agent asks the user
// to disambiguate instead of mutating.
const minMatchConfidence = 0.5

// matchResult is the typed output of the match call.
type matchResult struct {
	MatchedID  *string `json:"matched_id"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

const matchSystemPrompt = `You match a user's description to one event from a list of their actual calendar events. Respond with a single JSON object:
{"matched_id": "<id from the list or null>", "confidence": 0.0-1.0, "reason": "..."}
Only pick an id that appears in the list. Use null and a low confidence when nothing clearly matches.`

// matchEvent grounds a mutation target against real events: the model may
// only pick from the listed ids, and must do so confidently. Returns the
// matched event or a user-facing disambiguation failure.
func (a *Agent) matchEvent(ctx context.Context, pad *models.Scratchpad, query string, events []connectors.Event) (*connectors.Event, *models.AgentResult) {
	if len(events) == 0 {
		return nil, models.Failure(
			"Could not find a matching event: your calendar has no upcoming events.",
			"not_found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The user wants to act on: %q\n\nTheir upcoming events:\n", query)
	for _, ev := range events {
		fmt.Fprintf(&b, "- id=%s title=%q start=%s\n", ev.ID, ev.Summary, ev.Start)
	}

	var match matchResult
	err := llm.CompleteJSON(ctx, a.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.0,
		Messages: []llm.Message{
			{Role: "system", Content: matchSystemPrompt},
			{Role: "user", Content: b.String()},
		},
	}, &match)
	if err != nil {
		return nil, a.failure(err)
	}

	if match.MatchedID == nil || match.Confidence < minMatchConfidence {
		return nil, models.Failure(
			fmt.Sprintf("Could not find a matching event for %q. Please be more specific about which event you mean.", query),
			"not_found")
	}

	for i := range events {
		if events[i].ID == *match.MatchedID {
			return &events[i], nil
		}
	}
	// The model invented an id that is not in the list.
	return nil, models.Failure(
		fmt.Sprintf("Could not find a matching event for %q. Please be more specific about which event you mean.", query),
		"not_found")
}
