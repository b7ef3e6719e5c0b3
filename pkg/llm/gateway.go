package llm

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// Gateway wraps a Client with a global concurrency bound. Excess callers
// queue on the semaphore and remain cancellable while queued.
type Gateway struct {
	client Client
	sem    *semaphore.Weighted
	logger *slog.Logger
}

var _ Client = (*Gateway)(nil)

// NewGateway creates a gateway allowing at most maxConcurrent in-flight
// LLM calls.
func NewGateway(client Client, maxConcurrent int64) *Gateway {
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &Gateway{
		client: client,
		sem:    semaphore.NewWeighted(maxConcurrent),
		logger: slog.Default().With("component", "llm-gateway"),
	}
}

// Complete runs a completion under the concurrency bound.
func (g *Gateway) Complete(ctx context.Context, req Request) (string, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("llm gateway: %w", err)
	}
	defer g.sem.Release(1)
	return g.client.Complete(ctx, req)
}

// Stream runs a streaming completion under the concurrency bound. The slot
// is held until the stream is drained.
func (g *Gateway) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("llm gateway: %w", err)
	}

	inner, err := g.client.Stream(ctx, req)
	if err != nil {
		g.sem.Release(1)
		return nil, err
	}

	out := make(chan Chunk, 32)
	go func() {
		defer close(out)
		defer g.sem.Release(1)
		for chunk := range inner {
			out <- chunk
		}
	}()
	return out, nil
}

// Close releases the wrapped client.
func (g *Gateway) Close() error {
	return g.client.Close()
}
