package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/models"
)

type funcAgent struct {
	name    models.AgentName
	process func(ctx context.Context, pad *models.Scratchpad) *models.AgentResult
}

func (a *funcAgent) Name() models.AgentName { return a.name }

func (a *funcAgent) Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	return a.process(ctx, pad)
}

func TestInvoke(t *testing.T) {
	pad := &models.Scratchpad{SessionID: "session-1"}

	t.Run("result passes through", func(t *testing.T) {
		a := &funcAgent{name: models.GeneralAgent, process: func(context.Context, *models.Scratchpad) *models.AgentResult {
			return models.Success("done", nil)
		}}
		result := Invoke(context.Background(), a, pad, time.Second)
		assert.Equal(t, models.StatusSuccess, result.Status)
		assert.Equal(t, "done", result.Message)
	})

	t.Run("timeout surfaces through the agent's context", func(t *testing.T) {
		a := &funcAgent{name: models.GeneralAgent, process: func(ctx context.Context, _ *models.Scratchpad) *models.AgentResult {
			<-ctx.Done()
			return ClassifyErr(models.GeneralAgent, ctx.Err())
		}}
		result := Invoke(context.Background(), a, pad, 10*time.Millisecond)
		require.Equal(t, models.StatusError, result.Status)
		assert.Equal(t, "timeout", result.ErrorKind)
	})

	t.Run("panic becomes a synthetic internal failure", func(t *testing.T) {
		a := &funcAgent{name: models.FileAgent, process: func(context.Context, *models.Scratchpad) *models.AgentResult {
			panic("index out of range")
		}}
		result := Invoke(context.Background(), a, pad, time.Second)
		require.NotNil(t, result)
		assert.Equal(t, models.StatusError, result.Status)
		assert.Equal(t, "internal", result.ErrorKind)
	})

	t.Run("nil result is an internal failure", func(t *testing.T) {
		a := &funcAgent{name: models.NotesAgent, process: func(context.Context, *models.Scratchpad) *models.AgentResult {
			return nil
		}}
		result := Invoke(context.Background(), a, pad, time.Second)
		require.NotNil(t, result)
		assert.Equal(t, "internal", result.ErrorKind)
	})
}

func TestClassifyErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"cancelled", context.Canceled, "cancelled"},
		{"other", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyErr(models.GeneralAgent, tt.err)
			assert.Equal(t, models.StatusError, result.Status)
			assert.Equal(t, tt.expected, result.ErrorKind)
		})
	}
}

func TestHistoryText(t *testing.T) {
	pad := &models.Scratchpad{History: []models.HistoryMessage{
		{Role: "user", Body: "hello"},
		{Role: "agent", Body: "hi"},
		{Role: "user", Body: "draft an email"},
	}}

	t.Run("renders the newest window", func(t *testing.T) {
		text := HistoryText(pad, 2)
		assert.NotContains(t, text, "hello")
		assert.Contains(t, text, "hi")
		assert.Contains(t, text, "draft an email")
	})

	t.Run("empty history is empty", func(t *testing.T) {
		assert.Empty(t, HistoryText(&models.Scratchpad{}, 5))
	})
}

func TestPeerContext(t *testing.T) {
	pad := &models.Scratchpad{
		Plan: &models.Plan{Agents: []models.AgentName{models.FileAgent, models.EmailAgent}},
		PartialResults: map[models.AgentName]*models.AgentResult{
			models.FileAgent:  models.Success("Summary ready.", nil),
			models.EmailAgent: models.Failure("no recipient", "input_invalid"),
		},
	}

	text := PeerContext(pad)
	assert.Contains(t, text, "Summary ready.")
	assert.NotContains(t, text, "no recipient")

	assert.Empty(t, PeerContext(&models.Scratchpad{}))
}
