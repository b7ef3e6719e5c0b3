// Package agent defines the agent execution contract and the registry of
// agent families the planner may invoke.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sundialhq/maestro/pkg/models"
)

// Agent is the single contract every agent family implements. Process may
// read shared scratchpad fields and its own params; it must only write its
// own slot in PartialResults (the runner records the returned result there).
// Expected failures come back inside the AgentResult, never as a panic.
type Agent interface {
	Name() models.AgentName
	Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult
}

// Registry is the compile-time-fixed mapping from agent name to
// implementation.
type Registry struct {
	agents map[models.AgentName]Agent
}

// NewRegistry builds a registry from the given agents.
func NewRegistry(agents ...Agent) *Registry {
	r := &Registry{agents: make(map[models.AgentName]Agent, len(agents))}
	for _, a := range agents {
		r.agents[a.Name()] = a
	}
	return r
}

// Get returns the agent registered under name.
func (r *Registry) Get(name models.AgentName) (Agent, bool) {
	a, ok := r.agents[name]
	return a, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name models.AgentName) bool {
	_, ok := r.agents[name]
	return ok
}

// Invoke runs one agent under its per-agent timeout with panic containment.
// A timed-out, cancelled or panicked agent yields a synthetic error result
// so the orchestrator can continue with the rest of the plan.
func Invoke(ctx context.Context, a Agent, pad *models.Scratchpad, timeout time.Duration) (result *models.AgentResult) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Agent panicked",
				"agent", a.Name(),
				"session_id", pad.SessionID,
				"panic", r)
			result = models.Failure(
				fmt.Sprintf("%s failed unexpectedly", a.Name()),
				"internal")
		}
	}()

	result = a.Process(ctx, pad)
	if result == nil {
		// A nil result without a panic is a bug in the agent.
		return models.Failure(fmt.Sprintf("%s returned no result", a.Name()), "internal")
	}
	return result
}

// ClassifyErr maps a context or provider error to a user-facing error
// result. Checks the returned error (not ctx.Err()) so a concurrent context
// expiration doesn't misclassify an unrelated failure.
func ClassifyErr(name models.AgentName, err error) *models.AgentResult {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.Failure(fmt.Sprintf("%s timed out, please try again", name), "timeout")
	case errors.Is(err, context.Canceled):
		return models.Failure("request cancelled", "cancelled")
	default:
		return models.Failure(err.Error(), "error")
	}
}
