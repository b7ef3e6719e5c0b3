package compiler

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// fakeLLM serves a canned response; Stream replays it in fixed chunks.
type fakeLLM struct {
	response  string
	err       error
	completes int
	streams   int
}

func (f *fakeLLM) Complete(_ context.Context, _ llm.Request) (string, error) {
	f.completes++
	return f.response, f.err
}

func (f *fakeLLM) Stream(_ context.Context, _ llm.Request) (<-chan llm.Chunk, error) {
	f.streams++
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan llm.Chunk)
	go func() {
		defer close(ch)
		for _, word := range strings.SplitAfter(f.response, " ") {
			ch <- llm.Chunk{Content: word}
		}
	}()
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func padWithPlan(agents ...models.AgentName) *models.Scratchpad {
	return &models.Scratchpad{
		RequestID:      "req-1",
		UserRequest:    "do the thing",
		Plan:           &models.Plan{Agents: agents},
		PartialResults: make(map[models.AgentName]*models.AgentResult),
	}
}

func TestCompileEmptyPlan(t *testing.T) {
	c := New(&fakeLLM{})

	t.Run("precomputed response passes through", func(t *testing.T) {
		pad := &models.Scratchpad{FinalResponse: "Nothing to do."}
		var deltas []string
		got, err := c.Compile(context.Background(), pad, func(s string) { deltas = append(deltas, s) })
		require.NoError(t, err)
		assert.Equal(t, "Nothing to do.", got)
		assert.Equal(t, []string{"Nothing to do."}, deltas)
	})

	t.Run("empty pad gets the default line", func(t *testing.T) {
		got, err := c.Compile(context.Background(), &models.Scratchpad{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "I could not find anything to do for that request.", got)
	})
}

func TestCompileSingleAgent(t *testing.T) {
	t.Run("formatter output skips the model", func(t *testing.T) {
		client := &fakeLLM{response: "should not be used"}
		c := New(client)
		pad := padWithPlan(models.GeneralAgent)
		pad.PartialResults[models.GeneralAgent] = models.Success("Here is your answer.", nil)

		got, err := c.Compile(context.Background(), pad, nil)
		require.NoError(t, err)
		assert.Equal(t, "Here is your answer.", got)
		assert.Zero(t, client.completes)
		assert.Zero(t, client.streams)
	})

	t.Run("error slot becomes an actionable line", func(t *testing.T) {
		c := New(&fakeLLM{})
		pad := padWithPlan(models.FileAgent)
		pad.PartialResults[models.FileAgent] = models.Failure("deadline exceeded", "timeout")

		got, err := c.Compile(context.Background(), pad, nil)
		require.NoError(t, err)
		assert.Equal(t, "The file agent took too long. Please try again.", got)
	})

	t.Run("missing result falls back to synthesis", func(t *testing.T) {
		client := &fakeLLM{response: "Synthesized reply."}
		c := New(client)
		pad := padWithPlan(models.GeneralAgent)

		got, err := c.Compile(context.Background(), pad, nil)
		require.NoError(t, err)
		assert.Equal(t, "Synthesized reply.", got)
		assert.Equal(t, 1, client.completes)
	})

	t.Run("synthesis streams when deltas are wanted", func(t *testing.T) {
		client := &fakeLLM{response: "one two three"}
		c := New(client)
		pad := padWithPlan(models.GeneralAgent)

		var streamed strings.Builder
		got, err := c.Compile(context.Background(), pad, func(s string) { streamed.WriteString(s) })
		require.NoError(t, err)
		assert.Equal(t, "one two three", got)
		assert.Equal(t, got, streamed.String())
		assert.Equal(t, 1, client.streams)
		assert.Zero(t, client.completes)
	})
}

func TestCompileMultiAgent(t *testing.T) {
	c := New(&fakeLLM{})

	t.Run("sections come out in fixed order", func(t *testing.T) {
		// Plan order says calendar first; section order puts email first.
		pad := padWithPlan(models.CalendarAgent, models.EmailAgent)
		pad.PartialResults[models.CalendarAgent] = models.Success("Meeting booked for 2pm.", nil)
		pad.PartialResults[models.EmailAgent] = models.Success("Draft is awaiting approval.", nil)

		got, err := c.Compile(context.Background(), pad, nil)
		require.NoError(t, err)
		assert.Equal(t, "Draft is awaiting approval.\n\nMeeting booked for 2pm.", got)
	})

	t.Run("errored slot contributes a notice and the rest survive", func(t *testing.T) {
		pad := padWithPlan(models.EmailAgent, models.CalendarAgent)
		pad.PartialResults[models.EmailAgent] = models.Failure("deadline exceeded", "timeout")
		pad.PartialResults[models.CalendarAgent] = models.Success("Meeting booked for 2pm.", nil)

		got, err := c.Compile(context.Background(), pad, nil)
		require.NoError(t, err)
		assert.Contains(t, got, "The email agent took too long.")
		assert.Contains(t, got, "Meeting booked for 2pm.")
	})

	t.Run("all slots missing yields the apology", func(t *testing.T) {
		pad := padWithPlan(models.EmailAgent, models.CalendarAgent)
		got, err := c.Compile(context.Background(), pad, nil)
		require.NoError(t, err)
		assert.Equal(t, "None of the assistants could complete your request. Please try again.", got)
	})
}

func TestFormatFile(t *testing.T) {
	t.Run("long summaries are truncated", func(t *testing.T) {
		summary := strings.Repeat("x", 2000)
		result := models.Success("done", map[string]any{"summary": summary})
		got := formatFile(result)
		assert.Contains(t, got, strings.Repeat("x", 1500)+"...")
		assert.NotContains(t, got, strings.Repeat("x", 1501))
	})

	t.Run("key insights are listed", func(t *testing.T) {
		result := models.Success("done", map[string]any{
			"summary":      "A short summary.",
			"key_insights": []string{"revenue up", "costs flat"},
		})
		got := formatFile(result)
		assert.Contains(t, got, "A short summary.")
		assert.Contains(t, got, "- revenue up\n")
		assert.Contains(t, got, "- costs flat\n")
	})

	t.Run("no summary falls back to the message", func(t *testing.T) {
		result := models.Success("Processed the file.", nil)
		assert.Equal(t, "Processed the file.", formatFile(result))
	})
}
