package file

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("just one short paragraph")
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].ID)
	assert.Equal(t, "just one short paragraph", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].StartChar)
	assert.Equal(t, len("just one short paragraph"), chunks[0].EndChar)
}

func TestSplitTextEmptyInput(t *testing.T) {
	assert.Empty(t, SplitText(""))
}

func TestSplitTextParagraphs(t *testing.T) {
	para := strings.Repeat("word ", 300) // ~1500 chars
	text := para + "\n\n" + para + "\n\n" + para

	chunks := SplitText(text)
	require.Greater(t, len(chunks), 1)

	for i, c := range chunks {
		assert.Equal(t, i, c.ID)
		assert.Equal(t, len(c.Text), c.Length)
		assert.Equal(t, c.StartChar+c.Length, c.EndChar)
		// Chunk text must be the literal slice of the source at its offsets.
		assert.Equal(t, text[c.StartChar:c.EndChar], c.Text)
	}

	// Consecutive chunks overlap by the configured amount.
	for i := 1; i < len(chunks); i++ {
		overlap := chunks[i-1].EndChar - chunks[i].StartChar
		assert.Equal(t, chunkOverlap, overlap,
			"chunks %d and %d should overlap by %d chars", i-1, i, chunkOverlap)
	}
}

func TestSplitTextNoSeparators(t *testing.T) {
	// A single run with no separators at all forces character-level splits.
	text := strings.Repeat("x", 4500)

	chunks := SplitText(text)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, c.Length, chunkSize+chunkOverlap)
	}
	// Full coverage: the last chunk ends at the end of the text.
	assert.Equal(t, len(text), chunks[len(chunks)-1].EndChar)
}

func TestAssignPages(t *testing.T) {
	chunks := []Chunk{
		{StartChar: 0},
		{StartChar: 2500},
		{StartChar: 5000},
		{StartChar: 9999},
	}

	// 10000 chars over 4 pages: 2500 chars per page.
	assignPages(chunks, 10000, 4)

	assert.Equal(t, 1, chunks[0].EstimatedPage)
	assert.Equal(t, 2, chunks[1].EstimatedPage)
	assert.Equal(t, 3, chunks[2].EstimatedPage)
	assert.Equal(t, 4, chunks[3].EstimatedPage)
}

func TestAssignPagesNoPageInfo(t *testing.T) {
	chunks := []Chunk{{StartChar: 0}, {StartChar: 2000}}

	assignPages(chunks, 4000, 0)
	for _, c := range chunks {
		assert.Zero(t, c.EstimatedPage)
	}
}
