package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// fakeLLM returns a fixed response for every completion.
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Complete(_ context.Context, _ llm.Request) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Stream(_ context.Context, _ llm.Request) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk, 1)
	ch <- llm.Chunk{Content: f.response}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func newTestAgent(response string) *Agent {
	return New(&fakeLLM{response: response}, nil)
}

func testEvents() []connectors.Event {
	return []connectors.Event{
		{ID: "ev-1", Summary: "Standup meeting", Start: "2026-03-02T09:00:00"},
		{ID: "ev-2", Summary: "Design review", Start: "2026-03-02T14:00:00"},
	}
}

func TestMatchEvent(t *testing.T) {
	pad := &models.Scratchpad{RequestID: "req-1", UserRequest: "move the standup"}

	t.Run("confident in-list match succeeds", func(t *testing.T) {
		a := newTestAgent(`{"matched_id": "ev-1", "confidence": 0.92, "reason": "title match"}`)
		ev, failure := a.matchEvent(context.Background(), pad, "standup", testEvents())
		require.Nil(t, failure)
		require.NotNil(t, ev)
		assert.Equal(t, "ev-1", ev.ID)
	})

	t.Run("low confidence asks for disambiguation", func(t *testing.T) {
		a := newTestAgent(`{"matched_id": "ev-1", "confidence": 0.3, "reason": "weak"}`)
		ev, failure := a.matchEvent(context.Background(), pad, "standup", testEvents())
		assert.Nil(t, ev)
		require.NotNil(t, failure)
		assert.Equal(t, models.StatusError, failure.Status)
		assert.Equal(t, "not_found", failure.ErrorKind)
		assert.Contains(t, failure.Message, "more specific")
	})

	t.Run("null match asks for disambiguation", func(t *testing.T) {
		a := newTestAgent(`{"matched_id": null, "confidence": 0.9, "reason": "nothing fits"}`)
		ev, failure := a.matchEvent(context.Background(), pad, "standup", testEvents())
		assert.Nil(t, ev)
		require.NotNil(t, failure)
		assert.Equal(t, "not_found", failure.ErrorKind)
	})

	t.Run("invented id is rejected", func(t *testing.T) {
		a := newTestAgent(`{"matched_id": "ev-999", "confidence": 0.99, "reason": "hallucinated"}`)
		ev, failure := a.matchEvent(context.Background(), pad, "standup", testEvents())
		assert.Nil(t, ev)
		require.NotNil(t, failure)
		assert.Equal(t, "not_found", failure.ErrorKind)
	})

	t.Run("empty calendar fails without an LLM call", func(t *testing.T) {
		a := newTestAgent(`unused`)
		ev, failure := a.matchEvent(context.Background(), pad, "standup", nil)
		assert.Nil(t, ev)
		require.NotNil(t, failure)
		assert.Contains(t, failure.Message, "no upcoming events")
	})
}
