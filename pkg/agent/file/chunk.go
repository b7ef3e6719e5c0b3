package file

import "strings"

// Chunking targets. Oversized pieces are split on progressively finer
// separators; the empty-string separator is the character-level last resort.
const (
	chunkSize    = 2000
	chunkOverlap = 200
)

var chunkSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Chunk is one contiguous slice of the extracted text.
type Chunk struct {
	ID            int    `json:"chunk_id"`
	Text          string `json:"text"`
	Length        int    `json:"length"`
	StartChar     int    `json:"start_char"`
	EndChar       int    `json:"end_char"`
	EstimatedPage int    `json:"estimated_page,omitempty"`
}

// SplitText recursively splits text into ~chunkSize pieces with
// chunkOverlap characters of overlap between consecutive chunks.
func SplitText(text string) []Chunk {
	pieces := splitRecursive(text, chunkSeparators)

	chunks := make([]Chunk, 0, len(pieces))
	cursor := 0
	for i, piece := range pieces {
		start := cursor
		if i > 0 && start >= chunkOverlap {
			start -= chunkOverlap
		}
		body := text[start:min(cursor+len(piece), len(text))]
		chunks = append(chunks, Chunk{
			ID:        len(chunks),
			Text:      body,
			Length:    len(body),
			StartChar: start,
			EndChar:   start + len(body),
		})
		cursor += len(piece)
	}
	return chunks
}

// splitRecursive splits text on the first separator, merging adjacent
// pieces up to chunkSize and recursing with finer separators on pieces
// that are still too large.
func splitRecursive(text string, separators []string) []string {
	if len(text) <= chunkSize {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	sep := separators[0]
	if sep == "" {
		// Character-level split.
		var out []string
		for len(text) > chunkSize {
			out = append(out, text[:chunkSize])
			text = text[chunkSize:]
		}
		if text != "" {
			out = append(out, text)
		}
		return out
	}

	parts := strings.SplitAfter(text, sep)
	var out []string
	var current strings.Builder
	for _, part := range parts {
		if current.Len()+len(part) > chunkSize && current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
		if len(part) > chunkSize {
			out = append(out, splitRecursive(part, separators[1:])...)
			continue
		}
		current.WriteString(part)
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}

// assignPages estimates each chunk's page from the document's page count,
// assuming pages carry roughly equal character weight.
func assignPages(chunks []Chunk, totalChars, totalPages int) {
	if totalPages <= 0 || totalChars <= 0 {
		return
	}
	charsPerPage := float64(totalChars) / float64(totalPages)
	for i := range chunks {
		chunks[i].EstimatedPage = int(float64(chunks[i].StartChar)/charsPerPage) + 1
	}
}
