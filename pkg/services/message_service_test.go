package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
	testdb "github.com/sundialhq/maestro/test/database"
)

func TestAppendMessageValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.AppendMessageRequest
	}{
		{"missing session", models.AppendMessageRequest{Sender: "user", Body: "hi"}},
		{"bad sender", models.AppendMessageRequest{SessionID: "s1", Sender: "robot", Body: "hi"}},
		{"missing body", models.AppendMessageRequest{SessionID: "s1", Sender: "user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AppendMessage(ctx, tt.req)
			assert.True(t, services.IsValidationError(err))
		})
	}
}

func TestTranscriptOrdering(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		sender := "user"
		if i%2 == 1 {
			sender = "agent"
		}
		_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID: "session-1",
			Sender:    sender,
			Body:      fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	t.Run("full transcript oldest first", func(t *testing.T) {
		transcript, err := svc.GetTranscript(ctx, "session-1")
		require.NoError(t, err)
		require.Len(t, transcript, 5)
		for i, m := range transcript {
			assert.Equal(t, fmt.Sprintf("message %d", i), m.Body)
		}
	})

	t.Run("history window keeps the newest in read order", func(t *testing.T) {
		history, err := svc.LoadHistory(ctx, "session-1", 3)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, "message 2", history[0].Body)
		assert.Equal(t, "message 4", history[2].Body)
	})

	t.Run("other sessions are isolated", func(t *testing.T) {
		transcript, err := svc.GetTranscript(ctx, "session-2")
		require.NoError(t, err)
		assert.Empty(t, transcript)
	})
}

func TestHistorySnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewMessageService(client.Client)
	ctx := context.Background()

	_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: "session-1", Sender: "user", Body: "hello",
	})
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: "session-1", Sender: "agent", AgentType: "orchestrator", Body: "hi there",
	})
	require.NoError(t, err)

	history, err := svc.LoadHistory(ctx, "session-1", 10)
	require.NoError(t, err)

	snapshot := services.HistorySnapshot(history)
	require.Len(t, snapshot, 2)
	assert.Equal(t, models.HistoryMessage{Role: "user", Body: "hello"}, snapshot[0])
	assert.Equal(t, models.HistoryMessage{Role: "agent", Body: "hi there"}, snapshot[1])

	view := services.ToMessageView(history[1])
	assert.Equal(t, "orchestrator", view.AgentType)
	assert.Equal(t, "hi there", view.Body)
}
