package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no fences",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"a\": 1}\n```\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripFences(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Action     string  `json:"action"`
		Confidence float64 `json:"confidence"`
	}

	t.Run("valid JSON", func(t *testing.T) {
		var p payload
		err := Decode(`{"action": "create", "confidence": 0.9}`, &p)
		require.NoError(t, err)
		assert.Equal(t, "create", p.Action)
		assert.InDelta(t, 0.9, p.Confidence, 0.001)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		var p payload
		err := Decode("```json\n{\"action\": \"delete\"}\n```", &p)
		require.NoError(t, err)
		assert.Equal(t, "delete", p.Action)
	})

	t.Run("repairs single quotes and trailing comma", func(t *testing.T) {
		var p payload
		err := Decode(`{'action': 'update', 'confidence': 0.5,}`, &p)
		require.NoError(t, err)
		assert.Equal(t, "update", p.Action)
	})

	t.Run("prose is a parse error", func(t *testing.T) {
		var p payload
		err := Decode("I cannot answer that.", &p)
		require.Error(t, err)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

// stubClient returns canned responses in order.
type stubClient struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubClient) Complete(_ context.Context, _ Request) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("no more responses")
}

func (s *stubClient) Stream(_ context.Context, _ Request) (<-chan Chunk, error) {
	ch := make(chan Chunk)
	close(ch)
	return ch, nil
}

func (s *stubClient) Close() error { return nil }

func TestCompleteJSON(t *testing.T) {
	type out struct {
		Value string `json:"value"`
	}

	t.Run("first response parses", func(t *testing.T) {
		client := &stubClient{responses: []string{`{"value": "ok"}`}}
		var v out
		err := CompleteJSON(context.Background(), client, Request{}, &v)
		require.NoError(t, err)
		assert.Equal(t, "ok", v.Value)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("strict retry after unparseable response", func(t *testing.T) {
		client := &stubClient{responses: []string{"not json at all %%", `{"value": "second"}`}}
		var v out
		err := CompleteJSON(context.Background(), client, Request{}, &v)
		require.NoError(t, err)
		assert.Equal(t, "second", v.Value)
		assert.Equal(t, 2, client.calls)
	})

	t.Run("parse error after both attempts", func(t *testing.T) {
		client := &stubClient{responses: []string{"garbage %%", "more garbage %%"}}
		var v out
		err := CompleteJSON(context.Background(), client, Request{}, &v)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("transport errors pass through", func(t *testing.T) {
		transportErr := errors.New("connection refused")
		client := &stubClient{errs: []error{transportErr}}
		var v out
		err := CompleteJSON(context.Background(), client, Request{}, &v)
		assert.ErrorIs(t, err, transportErr)
	})
}
