package google

import (
	"context"
	"time"

	"github.com/sundialhq/maestro/pkg/connectors"
	"google.golang.org/api/calendar/v3"
)

// GCalendar implements connectors.Calendar over the Google Calendar API.
type GCalendar struct {
	svc *calendar.Service
}

var _ connectors.Calendar = (*GCalendar)(nil)

// Create inserts a new event on the primary calendar.
func (c *GCalendar) Create(ctx context.Context, event connectors.Event) (*connectors.Event, error) {
	created, err := c.svc.Events.Insert("primary", toGoogleEvent(event)).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("calendar.create", err)
	}
	return fromGoogleEvent(created), nil
}

// Update patches an existing event.
func (c *GCalendar) Update(ctx context.Context, id string, patch connectors.EventPatch) (*connectors.Event, error) {
	ev := &calendar.Event{}
	if patch.Summary != nil {
		ev.Summary = *patch.Summary
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.Location != nil {
		ev.Location = *patch.Location
	}
	if patch.Start != nil {
		ev.Start = &calendar.EventDateTime{DateTime: *patch.Start}
	}
	if patch.End != nil {
		ev.End = &calendar.EventDateTime{DateTime: *patch.End}
	}
	for _, a := range patch.Attendees {
		ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: a})
	}

	updated, err := c.svc.Events.Patch("primary", id, ev).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("calendar.update", err)
	}
	return fromGoogleEvent(updated), nil
}

// Delete removes an event.
func (c *GCalendar) Delete(ctx context.Context, id string) error {
	if err := c.svc.Events.Delete("primary", id).Context(ctx).Do(); err != nil {
		return mapErr("calendar.delete", err)
	}
	return nil
}

// List returns events within the window, expanded and ordered by start time.
func (c *GCalendar) List(ctx context.Context, opts connectors.CalendarListOptions) ([]connectors.Event, error) {
	max := opts.MaxResults
	if max <= 0 {
		max = 50
	}
	call := c.svc.Events.List("primary").
		MaxResults(int64(max)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !opts.TimeMin.IsZero() {
		call = call.TimeMin(opts.TimeMin.Format(time.RFC3339))
	}
	if !opts.TimeMax.IsZero() {
		call = call.TimeMax(opts.TimeMax.Format(time.RFC3339))
	}
	resp, err := call.Do()
	if err != nil {
		return nil, mapErr("calendar.list", err)
	}

	events := make([]connectors.Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, *fromGoogleEvent(item))
	}
	return events, nil
}

// Get fetches one event by id.
func (c *GCalendar) Get(ctx context.Context, id string) (*connectors.Event, error) {
	ev, err := c.svc.Events.Get("primary", id).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("calendar.get", err)
	}
	return fromGoogleEvent(ev), nil
}

// Search runs a free-text query over upcoming events.
func (c *GCalendar) Search(ctx context.Context, query string, max int) ([]connectors.Event, error) {
	if max <= 0 {
		max = 5
	}
	resp, err := c.svc.Events.List("primary").
		Q(query).
		MaxResults(int64(max)).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapErr("calendar.search", err)
	}

	events := make([]connectors.Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, *fromGoogleEvent(item))
	}
	return events, nil
}

// FindFreeSlots queries free/busy across the primary calendar and every
// attendee, merges the busy intervals, and returns open slots.
func (c *GCalendar) FindFreeSlots(ctx context.Context, q connectors.FreeSlotQuery) ([]connectors.TimeSlot, error) {
	items := []*calendar.FreeBusyRequestItem{{Id: "primary"}}
	for _, attendee := range q.Attendees {
		items = append(items, &calendar.FreeBusyRequestItem{Id: attendee})
	}

	resp, err := c.svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: q.TimeMin.Format(time.RFC3339),
		TimeMax: q.TimeMax.Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("calendar.freebusy", err)
	}

	var busy []connectors.TimeSlot
	for _, cal := range resp.Calendars {
		for _, period := range cal.Busy {
			start, err := time.Parse(time.RFC3339, period.Start)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339, period.End)
			if err != nil {
				continue
			}
			busy = append(busy, connectors.TimeSlot{Start: start, End: end})
		}
	}

	duration := time.Duration(q.DurationMinutes) * time.Minute
	return connectors.MergeFreeSlots(busy, q.TimeMin, q.TimeMax, duration), nil
}

func toGoogleEvent(event connectors.Event) *calendar.Event {
	ev := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start:       &calendar.EventDateTime{DateTime: event.Start},
		End:         &calendar.EventDateTime{DateTime: event.End},
	}
	for _, a := range event.Attendees {
		ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: a})
	}
	return ev
}

func fromGoogleEvent(ev *calendar.Event) *connectors.Event {
	out := &connectors.Event{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		HTMLLink:    ev.HtmlLink,
	}
	if ev.Start != nil {
		out.Start = ev.Start.DateTime
		if out.Start == "" {
			out.Start = ev.Start.Date // all-day events
		}
	}
	if ev.End != nil {
		out.End = ev.End.DateTime
		if out.End == "" {
			out.End = ev.End.Date
		}
	}
	for _, a := range ev.Attendees {
		out.Attendees = append(out.Attendees, a.Email)
	}
	return out
}
