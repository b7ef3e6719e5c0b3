package connectors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeFreeSlots(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	tests := []struct {
		name     string
		busy     []TimeSlot
		timeMin  time.Time
		timeMax  time.Time
		duration time.Duration
		expected []TimeSlot
	}{
		{
			name:     "no busy intervals yields the whole window",
			timeMin:  at(9, 0),
			timeMax:  at(17, 0),
			duration: 30 * time.Minute,
			expected: []TimeSlot{{Start: at(9, 0), End: at(17, 0)}},
		},
		{
			name: "gaps around one meeting",
			busy: []TimeSlot{
				{Start: at(10, 0), End: at(11, 0)},
			},
			timeMin:  at(9, 0),
			timeMax:  at(12, 0),
			duration: 30 * time.Minute,
			expected: []TimeSlot{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(11, 0), End: at(12, 0)},
			},
		},
		{
			name: "overlapping busy intervals are merged",
			busy: []TimeSlot{
				{Start: at(10, 0), End: at(11, 0)},
				{Start: at(10, 30), End: at(11, 30)},
			},
			timeMin:  at(9, 0),
			timeMax:  at(13, 0),
			duration: time.Hour,
			expected: []TimeSlot{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(11, 30), End: at(13, 0)},
			},
		},
		{
			name: "unsorted input is handled",
			busy: []TimeSlot{
				{Start: at(14, 0), End: at(15, 0)},
				{Start: at(10, 0), End: at(11, 0)},
			},
			timeMin:  at(9, 0),
			timeMax:  at(16, 0),
			duration: time.Hour,
			expected: []TimeSlot{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(11, 0), End: at(14, 0)},
				{Start: at(15, 0), End: at(16, 0)},
			},
		},
		{
			name: "gaps shorter than the duration are dropped",
			busy: []TimeSlot{
				{Start: at(9, 15), End: at(12, 0)},
			},
			timeMin:  at(9, 0),
			timeMax:  at(12, 30),
			duration: 30 * time.Minute,
			expected: []TimeSlot{
				{Start: at(12, 0), End: at(12, 30)},
			},
		},
		{
			name: "busy interval covering the whole window",
			busy: []TimeSlot{
				{Start: at(8, 0), End: at(18, 0)},
			},
			timeMin:  at(9, 0),
			timeMax:  at(17, 0),
			duration: 30 * time.Minute,
			expected: nil,
		},
		{
			name: "busy interval entirely before the window is ignored",
			busy: []TimeSlot{
				{Start: at(6, 0), End: at(7, 0)},
			},
			timeMin:  at(9, 0),
			timeMax:  at(10, 0),
			duration: 30 * time.Minute,
			expected: []TimeSlot{{Start: at(9, 0), End: at(10, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := MergeFreeSlots(tt.busy, tt.timeMin, tt.timeMax, tt.duration)
			assert.Equal(t, tt.expected, slots)
		})
	}
}

func TestMergeFreeSlotsCap(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// 15 one-hour meetings, each followed by a one-hour gap.
	var busy []TimeSlot
	for i := 0; i < 15; i++ {
		start := day.Add(time.Duration(i*2) * time.Hour)
		busy = append(busy, TimeSlot{Start: start, End: start.Add(time.Hour)})
	}

	slots := MergeFreeSlots(busy, day, day.Add(40*time.Hour), 30*time.Minute)
	assert.Len(t, slots, MaxFreeSlots)
}
