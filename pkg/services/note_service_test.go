package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/services"
	testdb "github.com/sundialhq/maestro/test/database"
)

func TestSaveNoteValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewNoteService(client.Client)
	ctx := context.Background()

	_, err := svc.SaveNote(ctx, services.SaveNoteRequest{Title: "Minutes"})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.SaveNote(ctx, services.SaveNoteRequest{SessionID: "session-1"})
	assert.True(t, services.IsValidationError(err))
}

func TestNoteRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewNoteService(client.Client)
	ctx := context.Background()

	saved, err := svc.SaveNote(ctx, services.SaveNoteRequest{
		SessionID:     "session-1",
		Title:         "Offsite minutes",
		ProviderDocID: "doc-42",
		URL:           "https://docs.example.com/doc-42",
		Content:       "Decisions from the offsite.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	notes, err := svc.ListNotes(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Offsite minutes", notes[0].Title)
	assert.Equal(t, "doc-42", notes[0].ProviderDocID)
	assert.Equal(t, "Decisions from the offsite.", notes[0].Content)
}

func TestListNotesScopedToSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewNoteService(client.Client)
	ctx := context.Background()

	_, err := svc.SaveNote(ctx, services.SaveNoteRequest{SessionID: "session-1", Title: "mine"})
	require.NoError(t, err)
	_, err = svc.SaveNote(ctx, services.SaveNoteRequest{SessionID: "session-2", Title: "theirs"})
	require.NoError(t, err)

	notes, err := svc.ListNotes(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Title)

	empty, err := svc.ListNotes(ctx, "session-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
