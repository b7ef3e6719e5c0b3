// Package llm provides the gateway to the external LLM service: a single
// complete/stream capability with bounded concurrency and JSON-mode parsing.
package llm

import (
	"context"
	"time"
)

// ResponseFormat selects the shape the model must return.
type ResponseFormat string

const (
	FormatText ResponseFormat = "text"
	FormatJSON ResponseFormat = "json_object"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Request is a single completion request. Timeout of zero means the
// gateway default (60s).
type Request struct {
	RequestID   string
	Messages    []Message
	Temperature float64
	Format      ResponseFormat
	Timeout     time.Duration
}

// Chunk is one streamed token delta. Err is set on the final chunk when the
// stream failed; Content chunks concatenate byte-exactly to the
// non-streaming result.
type Chunk struct {
	Content string
	Err     error
}

// Client is the LLM capability. Calls are cancellable; on cancellation the
// caller sees ctx.Err() without side effects.
type Client interface {
	// Complete returns the full response text.
	Complete(ctx context.Context, req Request) (string, error)

	// Stream returns a channel of token deltas, closed on completion.
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// DefaultTimeout is the per-call budget applied when Request.Timeout is zero.
const DefaultTimeout = 60 * time.Second
