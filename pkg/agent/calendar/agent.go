// Package calendar implements the calendar agent: LLM intent extraction,
// match-before-mutate grounding, and dispatch against the Calendar
// capability.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// viewAllWindow bounds open-ended listings.
const viewAllWindow = 30 * 24 * time.Hour

// Agent is the calendar agent.
type Agent struct {
	llm      llm.Client
	provider connectors.Provider
	clock    func() time.Time
}

// New creates the calendar agent.
func New(client llm.Client, provider connectors.Provider) *Agent {
	return &Agent{llm: client, provider: provider, clock: time.Now}
}

// NewWithClock creates the calendar agent with an injected clock.
func NewWithClock(client llm.Client, provider connectors.Provider, clock func() time.Time) *Agent {
	a := New(client, provider)
	a.clock = clock
	return a
}

// Name implements agent.Agent.
func (a *Agent) Name() models.AgentName { return models.CalendarAgent }

// Process extracts intent and dispatches. Provider errors surface as error
// results and are never retried here: create/update/delete are not
// idempotent at this layer.
func (a *Agent) Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	client, err := a.provider.Calendar(ctx, pad.ThirdPartyToken)
	if err != nil {
		return a.failure(err)
	}

	intent, err := a.extractIntent(ctx, pad)
	if err != nil {
		return a.failure(err)
	}

	switch intent.Action {
	case "create":
		return a.create(ctx, client, intent)
	case "update":
		return a.update(ctx, pad, client, intent)
	case "delete":
		return a.delete(ctx, pad, client, intent)
	case "view_all":
		return a.viewAll(ctx, client)
	case "view_specific":
		return a.viewSpecific(ctx, client, intent)
	case "find_free_slots":
		return a.findFreeSlots(ctx, client, intent)
	default:
		return models.Failure(
			fmt.Sprintf("I did not understand what calendar action you want (%q).", intent.Action),
			"input_invalid")
	}
}

func (a *Agent) create(ctx context.Context, client connectors.Calendar, intent *Intent) *models.AgentResult {
	if intent.Summary == "" {
		return models.Failure("Please tell me what the event should be called.", "input_invalid")
	}
	if intent.StartTime == "" {
		return models.Failure("Please tell me when the event should start.", "input_invalid")
	}

	end := intent.EndTime
	if end == "" {
		derived, err := defaultEnd(intent.StartTime)
		if err != nil {
			return models.Failure(fmt.Sprintf("I could not understand the time %q.", intent.StartTime), "input_invalid")
		}
		end = derived
	}

	created, err := client.Create(ctx, connectors.Event{
		Summary:     intent.Summary,
		Description: intent.Description,
		Location:    intent.Location,
		Start:       intent.StartTime,
		End:         end,
		Attendees:   intent.Attendees,
	})
	if err != nil {
		return a.failure(err)
	}

	return models.Success(
		fmt.Sprintf("Event '%s' created for %s.", created.Summary, created.Start),
		map[string]any{"event": created, "action": "create"})
}

func (a *Agent) update(ctx context.Context, pad *models.Scratchpad, client connectors.Calendar, intent *Intent) *models.AgentResult {
	target, failed := a.groundTarget(ctx, pad, client, intent)
	if failed != nil {
		return failed
	}

	patch := connectors.EventPatch{Attendees: intent.Attendees}
	if intent.Summary != "" && !strings.EqualFold(intent.Summary, target.Summary) {
		patch.Summary = &intent.Summary
	}
	if intent.Description != "" {
		patch.Description = &intent.Description
	}
	if intent.Location != "" {
		patch.Location = &intent.Location
	}
	if intent.StartTime != "" {
		patch.Start = &intent.StartTime
		end := intent.EndTime
		if end == "" {
			if derived, err := defaultEnd(intent.StartTime); err == nil {
				end = derived
			}
		}
		if end != "" {
			patch.End = &end
		}
	} else if intent.EndTime != "" {
		patch.End = &intent.EndTime
	}

	updated, err := client.Update(ctx, target.ID, patch)
	if err != nil {
		return a.failure(err)
	}

	return models.Success(
		fmt.Sprintf("Successfully updated event '%s'.", updated.Summary),
		map[string]any{"event": updated, "action": "update"})
}

func (a *Agent) delete(ctx context.Context, pad *models.Scratchpad, client connectors.Calendar, intent *Intent) *models.AgentResult {
	target, failed := a.groundTarget(ctx, pad, client, intent)
	if failed != nil {
		return failed
	}

	if err := client.Delete(ctx, target.ID); err != nil {
		return a.failure(err)
	}

	return models.Success(
		fmt.Sprintf("Deleted event '%s'.", target.Summary),
		map[string]any{"event_id": target.ID, "action": "delete"})
}

// groundTarget implements match-before-mutate: the model never picks the
// target id directly; it matches against the next 50 real upcoming events.
func (a *Agent) groundTarget(ctx context.Context, pad *models.Scratchpad, client connectors.Calendar, intent *Intent) (*connectors.Event, *models.AgentResult) {
	query := intent.EventQuery
	if query == "" {
		query = intent.Summary
	}
	if query == "" {
		query = pad.UserRequest
	}

	now := a.clock().UTC()
	upcoming, err := client.List(ctx, connectors.CalendarListOptions{
		TimeMin:    now,
		MaxResults: matchCandidates,
	})
	if err != nil {
		return nil, a.failure(err)
	}

	return a.matchEvent(ctx, pad, query, upcoming)
}

func (a *Agent) viewAll(ctx context.Context, client connectors.Calendar) *models.AgentResult {
	now := a.clock().UTC()
	events, err := client.List(ctx, connectors.CalendarListOptions{
		TimeMin:    now,
		TimeMax:    now.Add(viewAllWindow),
		MaxResults: matchCandidates,
	})
	if err != nil {
		return a.failure(err)
	}

	if len(events) == 0 {
		return models.Success("You have no upcoming events in the next 30 days.",
			map[string]any{"events": events, "action": "view_all"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d upcoming events:\n", len(events))
	for _, ev := range events {
		fmt.Fprintf(&b, "- %s (%s)\n", ev.Summary, ev.Start)
	}
	return models.Success(b.String(), map[string]any{"events": events, "action": "view_all"})
}

func (a *Agent) viewSpecific(ctx context.Context, client connectors.Calendar, intent *Intent) *models.AgentResult {
	query := intent.EventQuery
	if query == "" {
		query = intent.Summary
	}

	// Try the query as an id first; fall back to free-text search.
	event, err := client.Get(ctx, query)
	if err == nil {
		return models.Success(
			fmt.Sprintf("Found event '%s' at %s.", event.Summary, event.Start),
			map[string]any{"events": []connectors.Event{*event}, "action": "view_specific"})
	}
	if connectors.KindOf(err) != connectors.KindNotFound {
		return a.failure(err)
	}

	matches, err := client.Search(ctx, query, 5)
	if err != nil {
		return a.failure(err)
	}
	if len(matches) == 0 {
		return models.Failure(
			fmt.Sprintf("Could not find an event matching %q.", query),
			"not_found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching events:\n", len(matches))
	for _, ev := range matches {
		fmt.Fprintf(&b, "- %s (%s)\n", ev.Summary, ev.Start)
	}
	return models.Success(b.String(), map[string]any{"events": matches, "action": "view_specific"})
}

func (a *Agent) findFreeSlots(ctx context.Context, client connectors.Calendar, intent *Intent) *models.AgentResult {
	now := a.clock().UTC()
	timeMin := now
	timeMax := now.Add(7 * 24 * time.Hour)
	if intent.TimeMin != "" {
		if t, _, err := parseTimestamp(intent.TimeMin); err == nil {
			timeMin = t
		}
	}
	if intent.TimeMax != "" {
		if t, _, err := parseTimestamp(intent.TimeMax); err == nil {
			timeMax = t
		}
	}
	duration := intent.DurationMinutes
	if duration <= 0 {
		duration = int(DefaultEventDuration.Minutes())
	}

	slots, err := client.FindFreeSlots(ctx, connectors.FreeSlotQuery{
		TimeMin:         timeMin,
		TimeMax:         timeMax,
		DurationMinutes: duration,
		Attendees:       intent.Attendees,
	})
	if err != nil {
		return a.failure(err)
	}

	if len(slots) == 0 {
		return models.Success("No free slots of that length in the requested window.",
			map[string]any{"slots": slots, "action": "find_free_slots"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d free slots:\n", len(slots))
	for _, s := range slots {
		fmt.Fprintf(&b, "- %s to %s\n", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
	}
	return models.Success(b.String(), map[string]any{"slots": slots, "action": "find_free_slots"})
}

// failure maps provider and LLM errors to user-facing error results.
func (a *Agent) failure(err error) *models.AgentResult {
	var parseErr *llm.ParseError
	switch {
	case connectors.IsAuth(err):
		return models.Failure("Please sign in to Google Calendar to do that.", string(connectors.KindOf(err)))
	case errors.As(err, &parseErr):
		return models.Failure("I could not work out the calendar details. Please rephrase your request.", "llm_parse_error")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return agent.ClassifyErr(models.CalendarAgent, err)
	default:
		var pe *connectors.Error
		if errors.As(err, &pe) {
			return models.Failure(fmt.Sprintf("Calendar request failed: %v.", err), string(pe.Kind))
		}
		return models.Failure(fmt.Sprintf("Calendar request failed: %v.", err), "error")
	}
}
