package connectors

import (
	"context"
	"sort"
	"time"
)

// Event is a calendar event. Start and End are RFC-3339 timestamps that may
// carry a numeric offset, or local-naive timestamps (no offset) which the
// provider interprets in the user's default zone.
type Event struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Attendees   []string `json:"attendees,omitempty"`
	HTMLLink    string   `json:"html_link,omitempty"`
}

// EventPatch carries partial event updates; nil fields are left unchanged.
type EventPatch struct {
	Summary     *string
	Description *string
	Location    *string
	Start       *string
	End         *string
	Attendees   []string
}

// CalendarListOptions bounds an event listing.
type CalendarListOptions struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int
}

// FreeSlotQuery asks for open intervals across the primary calendar and all
// attendee calendars.
type FreeSlotQuery struct {
	TimeMin         time.Time
	TimeMax         time.Time
	DurationMinutes int
	Attendees       []string
}

// TimeSlot is one interval, used both for busy blocks and for free slots.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Calendar is the calendar capability.
type Calendar interface {
	Create(ctx context.Context, event Event) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts CalendarListOptions) ([]Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Search(ctx context.Context, query string, max int) ([]Event, error)
	FindFreeSlots(ctx context.Context, q FreeSlotQuery) ([]TimeSlot, error)
}

// MaxFreeSlots bounds the number of slots FindFreeSlots returns.
const MaxFreeSlots = 10

// MergeFreeSlots computes open slots within [timeMin, timeMax) given the
// busy intervals of every participant. Busy intervals are merged after
// sorting by start; any gap of at least duration becomes a slot, up to
// MaxFreeSlots.
func MergeFreeSlots(busy []TimeSlot, timeMin, timeMax time.Time, duration time.Duration) []TimeSlot {
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	var merged []TimeSlot
	for _, b := range busy {
		if len(merged) > 0 && !b.Start.After(merged[len(merged)-1].End) {
			if b.End.After(merged[len(merged)-1].End) {
				merged[len(merged)-1].End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}

	var slots []TimeSlot
	cursor := timeMin
	for _, b := range merged {
		if b.End.Before(cursor) {
			continue
		}
		if b.Start.After(cursor) {
			gapEnd := b.Start
			if gapEnd.After(timeMax) {
				gapEnd = timeMax
			}
			if gapEnd.Sub(cursor) >= duration {
				slots = append(slots, TimeSlot{Start: cursor, End: gapEnd})
				if len(slots) == MaxFreeSlots {
					return slots
				}
			}
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
		if !cursor.Before(timeMax) {
			return slots
		}
	}
	if timeMax.Sub(cursor) >= duration {
		slots = append(slots, TimeSlot{Start: cursor, End: timeMax})
	}
	return slots
}
