package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// Intent is the typed result of LLM intent extraction.
type Intent struct {
	Action          string   `json:"action"` // create, update, delete, view_all, view_specific, find_free_slots
	Summary         string   `json:"summary,omitempty"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
	EventQuery      string   `json:"event_query,omitempty"`
	Attendees       []string `json:"attendees,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	TimeMin         string   `json:"time_min,omitempty"`
	TimeMax         string   `json:"time_max,omitempty"`
}

// DefaultEventDuration applies when the user gave a start but no end.
const DefaultEventDuration = 30 * time.Minute

const intentSystemPrompt = `You extract calendar intent from a user request. Respond with a single JSON object:
{"action": "create|update|delete|view_all|view_specific|find_free_slots",
 "summary": "...", "description": "...", "location": "...",
 "start_time": "...", "end_time": "...",
 "event_query": "words identifying an existing event (for update/delete/view_specific)",
 "attendees": ["email", ...], "duration_minutes": 30,
 "time_min": "...", "time_max": "..."}

Timestamp rules (follow exactly):
- If the user names a timezone (IST, PST, EST, CET, ...), emit RFC-3339 with the matching numeric offset. Examples: IST is +05:30, PST is -08:00, PDT is -07:00, EST is -05:00, EDT is -04:00, CET is +01:00, UTC/GMT is +00:00.
- If no timezone is named, emit a local-naive timestamp like 2025-10-28T11:00:00 with no offset; the calendar applies the user's default zone.
- When both a meeting time and a reminder time appear, the meeting time is the event time; discard the reminder.
- Omit fields that do not apply. For summaries, keep the user's wording (e.g. "standup meeting").`

// extractIntent runs the JSON-mode intent call.
func (a *Agent) extractIntent(ctx context.Context, pad *models.Scratchpad) (*Intent, error) {
	now := a.clock().UTC()
	var b strings.Builder
	fmt.Fprintf(&b, "Current date: %s\nCurrent time (UTC): %s\n\n",
		now.Format("2006-01-02"), now.Format("15:04:05"))
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

// timestampLayouts are the accepted shapes, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp accepts RFC-3339 with offset or a local-naive timestamp.
// Naive values are treated as UTC per the capability contract.
func parseTimestamp(s string) (time.Time, string, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unrecognized timestamp %q", s)
}

// defaultEnd derives an end timestamp from the start, preserving the
// start's layout so a naive start yields a naive end.
func defaultEnd(start string) (string, error) {
	t, layout, err := parseTimestamp(start)
	if err != nil {
		return "", err
	}
	return t.Add(DefaultEventDuration).Format(layout), nil
}
