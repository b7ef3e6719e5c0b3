package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "RFC-3339 with offset",
			input:    "2026-03-02T11:00:00+05:30",
			expected: time.Date(2026, 3, 2, 11, 0, 0, 0, time.FixedZone("", 5*3600+30*60)),
		},
		{
			name:     "local naive with seconds",
			input:    "2026-03-02T11:00:00",
			expected: time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			name:     "local naive without seconds",
			input:    "2026-03-02T11:00",
			expected: time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2026-03-02",
			expected: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, _, err := parseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.expected), "got %s, want %s", parsed, tt.expected)
		})
	}

	t.Run("garbage is rejected", func(t *testing.T) {
		_, _, err := parseTimestamp("tomorrow at noon")
		assert.Error(t, err)
	})
}

func TestDefaultEnd(t *testing.T) {
	t.Run("naive start yields naive end", func(t *testing.T) {
		end, err := defaultEnd("2026-03-02T11:00:00")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02T11:30:00", end)
	})

	t.Run("offset start keeps the offset", func(t *testing.T) {
		end, err := defaultEnd("2026-03-02T11:00:00+05:30")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02T11:30:00+05:30", end)
	})

	t.Run("duration crosses midnight", func(t *testing.T) {
		end, err := defaultEnd("2026-03-02T23:45:00")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-03T00:15:00", end)
	})

	t.Run("invalid start propagates the error", func(t *testing.T) {
		_, err := defaultEnd("noonish")
		assert.Error(t, err)
	})
}
