package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/services"
	testdb "github.com/sundialhq/maestro/test/database"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"report.PDF", "pdf"},
		{"notes.md", "md"},
		{"archive.tar.gz", "gz"},
		{"noextension", ""},
		{"data.XLSX", "xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, services.NormalizeExtension(tt.name))
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewFileService(client.Client)
	ctx := context.Background()

	content := []byte("hello, file pipeline")
	saved, err := svc.SaveFile(ctx, "session-1", "Notes.TXT", content)
	require.NoError(t, err)
	assert.Equal(t, "txt", saved.Extension)
	assert.Equal(t, int64(len(content)), saved.Size)

	fetched, err := svc.GetFile(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, content, fetched.Content)
	assert.Equal(t, "Notes.TXT", fetched.Name)
}

func TestSaveFileValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewFileService(client.Client)
	ctx := context.Background()

	_, err := svc.SaveFile(ctx, "", "a.txt", []byte("x"))
	assert.True(t, services.IsValidationError(err))

	_, err = svc.SaveFile(ctx, "session-1", "", []byte("x"))
	assert.True(t, services.IsValidationError(err))

	_, err = svc.SaveFile(ctx, "session-1", "a.txt", nil)
	assert.True(t, services.IsValidationError(err))
}

func TestLatestFile(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewFileService(client.Client)
	ctx := context.Background()

	t.Run("empty session is ErrNotFound", func(t *testing.T) {
		_, err := svc.LatestFile(ctx, "session-1")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("newest upload wins", func(t *testing.T) {
		_, err := svc.SaveFile(ctx, "session-1", "first.txt", []byte("one"))
		require.NoError(t, err)
		second, err := svc.SaveFile(ctx, "session-1", "second.txt", []byte("two"))
		require.NoError(t, err)

		latest, err := svc.LatestFile(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, second.ID, latest.ID)
		assert.Equal(t, []byte("two"), latest.Content)
	})

	t.Run("listing omits blobs", func(t *testing.T) {
		files, err := svc.ListFiles(ctx, "session-1")
		require.NoError(t, err)
		require.Len(t, files, 2)
		for _, f := range files {
			assert.Empty(t, f.Content)
			assert.NotEmpty(t, f.Name)
			assert.Positive(t, f.Size)
		}
	})
}
