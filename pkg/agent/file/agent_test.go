package file

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sundialhq/maestro/pkg/models"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name     string
		request  string
		params   map[string]any
		expected SummaryMode
	}{
		{
			name:     "planner parameter wins",
			request:  "give me a quick overview",
			params:   map[string]any{"summary_mode": "technical"},
			expected: ModeTechnical,
		},
		{
			name:     "unknown planner value falls back to keywords",
			request:  "give me a quick overview",
			params:   map[string]any{"summary_mode": "verbose"},
			expected: ModeBrief,
		},
		{
			name:     "brief keyword",
			request:  "a brief summary please",
			expected: ModeBrief,
		},
		{
			name:     "short keyword",
			request:  "keep it short",
			expected: ModeBrief,
		},
		{
			name:     "executive keyword",
			request:  "executive summary for the board",
			expected: ModeExecutive,
		},
		{
			name:     "technical keyword",
			request:  "technical deep dive on this paper",
			expected: ModeTechnical,
		},
		{
			name:     "default is detailed",
			request:  "summarize this document",
			expected: ModeDetailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectMode(tt.request, tt.params))
		})
	}
}

func TestDetectQuery(t *testing.T) {
	t.Run("planner query wins", func(t *testing.T) {
		q := detectQuery("summarize this", map[string]any{"query": "what is the budget?"})
		assert.Equal(t, "what is the budget?", q)
	})

	t.Run("question-shaped request becomes the query", func(t *testing.T) {
		q := detectQuery("what does section 3 say?", nil)
		assert.Equal(t, "what does section 3 say?", q)
	})

	t.Run("statements yield no query", func(t *testing.T) {
		assert.Empty(t, detectQuery("summarize this document", nil))
	})
}

func TestCachedSummary(t *testing.T) {
	long := strings.Repeat("The document summary covers quarterly results. ", 15)

	t.Run("finds the latest qualifying agent message", func(t *testing.T) {
		pad := &models.Scratchpad{History: []models.HistoryMessage{
			{Role: "user", Body: "summarize the report"},
			{Role: "agent", Body: long},
			{Role: "user", Body: "thanks"},
		}}
		assert.Equal(t, long, cachedSummary(pad))
	})

	t.Run("short agent messages do not qualify", func(t *testing.T) {
		pad := &models.Scratchpad{History: []models.HistoryMessage{
			{Role: "agent", Body: "Here is your document summary."},
		}}
		assert.Empty(t, cachedSummary(pad))
	})

	t.Run("long messages without markers do not qualify", func(t *testing.T) {
		pad := &models.Scratchpad{History: []models.HistoryMessage{
			{Role: "agent", Body: strings.Repeat("general chit chat without the magic words ", 20)},
		}}
		assert.Empty(t, cachedSummary(pad))
	})

	t.Run("user messages never qualify", func(t *testing.T) {
		pad := &models.Scratchpad{History: []models.HistoryMessage{
			{Role: "user", Body: long},
		}}
		assert.Empty(t, cachedSummary(pad))
	})
}

func TestLooksLikeQuestion(t *testing.T) {
	tests := []struct {
		request  string
		expected bool
	}{
		{"what is the total revenue?", true},
		{"tell me what the document says about hiring", true},
		{"how does the pipeline work", true},
		{"is there a section on risk", true},
		{"summarize the attached file", false},
		{"create a note from this", false},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeQuestion(tt.request))
		})
	}
}
