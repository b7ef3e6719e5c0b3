// Package orchestrator turns one chat request into a plan, executes the
// planned agents sequentially, and compiles the final response.
package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/compiler"
	"github.com/sundialhq/maestro/pkg/events"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
)

// historyWindow is how many transcript entries agents see.
const historyWindow = 10

// agentTimeouts are the per-invocation budgets. The file pipeline gets the
// largest one because its map stage makes many LLM calls.
var agentTimeouts = map[models.AgentName]time.Duration{
	models.CalendarAgent: 60 * time.Second,
	models.EmailAgent:    60 * time.Second,
	models.NotesAgent:    60 * time.Second,
	models.GeneralAgent:  90 * time.Second,
	models.FileAgent:     120 * time.Second,
}

// Orchestrator coordinates planning, execution and response compilation.
type Orchestrator struct {
	llm       llm.Client
	registry  *agent.Registry
	messages  *services.MessageService
	compiler  *compiler.Compiler
	publisher *events.Publisher
	logger    *slog.Logger
	active    *activeRequests
}

// New creates an Orchestrator. publisher may be nil; events are then
// skipped.
func New(client llm.Client, registry *agent.Registry, messages *services.MessageService, comp *compiler.Compiler, publisher *events.Publisher, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		llm:       client,
		registry:  registry,
		messages:  messages,
		compiler:  comp,
		publisher: publisher,
		logger:    logger.With("component", "orchestrator"),
		active:    newActiveRequests(),
	}
}

// Orchestrate handles one request end to end.
func (o *Orchestrator) Orchestrate(ctx context.Context, req models.OrchestrateRequest) (*models.OrchestrateResponse, error) {
	return o.orchestrate(ctx, req, nil)
}

// OrchestrateStream is Orchestrate with incremental response delivery:
// onDelta receives response text as it is produced, and the returned
// response carries the same full string.
func (o *Orchestrator) OrchestrateStream(ctx context.Context, req models.OrchestrateRequest, onDelta func(string)) (*models.OrchestrateResponse, error) {
	return o.orchestrate(ctx, req, onDelta)
}

func (o *Orchestrator) orchestrate(ctx context.Context, req models.OrchestrateRequest, onDelta func(string)) (*models.OrchestrateResponse, error) {
	if req.Message == "" {
		return nil, services.NewValidationError("message", "required")
	}
	if req.SessionID == "" {
		return nil, services.NewValidationError("session_id", "required")
	}

	requestID := uuid.New().String()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.active.register(requestID, cancel)
	defer o.active.unregister(requestID)

	// The user turn is persisted before any processing so the transcript
	// is never missing the request that produced a response.
	if _, err := o.messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: req.SessionID,
		Sender:    "user",
		Body:      req.Message,
	}); err != nil {
		return nil, err
	}
	o.publish(ctx, func(p *events.Publisher) error {
		return p.PublishRequestStarted(ctx, events.RequestStartedPayload{
			RequestID: requestID, SessionID: req.SessionID,
		})
	})

	history, err := o.messages.LoadHistory(ctx, req.SessionID, historyWindow)
	if err != nil {
		return nil, err
	}

	pad := &models.Scratchpad{
		RequestID:       requestID,
		UserRequest:     req.Message,
		SessionID:       req.SessionID,
		UserID:          req.UserID,
		ThirdPartyToken: req.ThirdPartyToken,
		FileBlob:        req.FileBlob,
		FileName:        req.FileName,
		History:         services.HistorySnapshot(history),
		PartialResults:  make(map[models.AgentName]*models.AgentResult),
	}

	plan, err := o.buildPlan(ctx, pad)
	if err != nil {
		if ctx.Err() != nil {
			o.finishCancelled(req.SessionID, requestID)
			return nil, ctx.Err()
		}
		o.logger.Warn("Planner call failed, using keyword-only plan",
			"request_id", requestID, "error", err)
		plan = &models.Plan{WorkflowType: "multi_agent"}
		NormalizePlan(plan, o.registry, req.Message)
	}
	if len(plan.Agents) == 0 && plan.WorkflowType != "no_action" {
		plan.Agents = []models.AgentName{models.GeneralAgent}
	}
	pad.Plan = plan
	o.publish(ctx, func(p *events.Publisher) error {
		return p.PublishPlanCreated(ctx, events.PlanCreatedPayload{
			RequestID: requestID, SessionID: req.SessionID,
			Agents: agentNames(plan.Agents), Workflow: plan.WorkflowType,
		})
	})

	if plan.WorkflowType == "no_action" && len(plan.Agents) == 0 {
		response := plan.Reasoning
		if response == "" {
			response = "There is nothing I need to do for that. Let me know if you want help with something."
		}
		pad.FinalResponse = response
		return o.finish(ctx, pad, onDelta)
	}

	o.runPlan(ctx, pad)
	if ctx.Err() != nil {
		o.finishCancelled(req.SessionID, requestID)
		return nil, ctx.Err()
	}

	return o.finish(ctx, pad, onDelta)
}

// runPlan executes the planned agents sequentially. A failed agent does
// not stop the plan: later agents still run and the compiler reports the
// mixed outcome.
func (o *Orchestrator) runPlan(ctx context.Context, pad *models.Scratchpad) {
	for _, name := range pad.Plan.Agents {
		if ctx.Err() != nil {
			return
		}
		a, ok := o.registry.Get(name)
		if !ok {
			continue
		}

		o.publish(ctx, func(p *events.Publisher) error {
			return p.PublishAgentStarted(ctx, events.AgentStatusPayload{
				RequestID: pad.RequestID, SessionID: pad.SessionID, Agent: string(name),
			})
		})

		started := time.Now()
		result := agent.Invoke(ctx, a, pad, timeoutFor(name))
		duration := time.Since(started)
		pad.PartialResults[name] = result

		o.logger.Info("Agent invocation finished",
			"request_id", pad.RequestID,
			"session_id", pad.SessionID,
			"agent", name,
			"duration_ms", duration.Milliseconds(),
			"outcome", result.Status,
			"error_kind", result.ErrorKind)

		o.publish(ctx, func(p *events.Publisher) error {
			return p.PublishAgentCompleted(ctx, events.AgentStatusPayload{
				RequestID: pad.RequestID, SessionID: pad.SessionID, Agent: string(name),
				Outcome: string(result.Status), ErrorKind: result.ErrorKind,
				DurationMs: duration.Milliseconds(),
			})
		})
	}
}

// finish compiles the response, persists the agent turn, and publishes
// completion.
func (o *Orchestrator) finish(ctx context.Context, pad *models.Scratchpad, onDelta func(string)) (*models.OrchestrateResponse, error) {
	response := pad.FinalResponse
	if response == "" {
		compiled, err := o.compiler.Compile(ctx, pad, onDelta)
		if err != nil {
			if ctx.Err() != nil {
				o.finishCancelled(pad.SessionID, pad.RequestID)
				return nil, ctx.Err()
			}
			return nil, err
		}
		response = compiled
	} else if onDelta != nil {
		onDelta(response)
	}
	pad.FinalResponse = response

	if _, err := o.messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: pad.SessionID,
		Sender:    "agent",
		AgentType: "orchestrator",
		Body:      response,
	}); err != nil {
		return nil, err
	}

	o.publish(ctx, func(p *events.Publisher) error {
		return p.PublishRequestCompleted(ctx, events.RequestCompletedPayload{
			RequestID: pad.RequestID, SessionID: pad.SessionID,
			Response: response, Outcome: "completed",
		})
	})

	return &models.OrchestrateResponse{
		RequestID:    pad.RequestID,
		Response:     response,
		SessionID:    pad.SessionID,
		AgentsUsed:   pad.Plan.Agents,
		WorkflowType: pad.Plan.WorkflowType,
		DraftCreated: pad.DraftCreated,
	}, nil
}

// finishCancelled closes out the transcript pair after a cancellation.
// The request context is dead, so the writes run on a short detached one.
func (o *Orchestrator) finishCancelled(sessionID, requestID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := o.messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Sender:    "agent",
		AgentType: "orchestrator",
		Body:      "Request cancelled.",
	}); err != nil {
		o.logger.Warn("Failed to record cancellation in transcript",
			"session_id", sessionID, "error", err)
	}

	o.publish(ctx, func(p *events.Publisher) error {
		return p.PublishRequestCompleted(ctx, events.RequestCompletedPayload{
			RequestID: requestID, SessionID: sessionID, Outcome: "cancelled",
		})
	})
}

// Cancel aborts a running request by id. Returns false when the request
// is not running.
func (o *Orchestrator) Cancel(requestID string) bool {
	return o.active.cancel(requestID)
}

// publish runs fn when a publisher is configured; event delivery failures
// never fail the request.
func (o *Orchestrator) publish(ctx context.Context, fn func(*events.Publisher) error) {
	if o.publisher == nil {
		return
	}
	if err := fn(o.publisher); err != nil && ctx.Err() == nil {
		o.logger.Warn("Failed to publish event", "error", err)
	}
}

func timeoutFor(name models.AgentName) time.Duration {
	if t, ok := agentTimeouts[name]; ok {
		return t
	}
	return 60 * time.Second
}

func agentNames(agents []models.AgentName) []string {
	out := make([]string, len(agents))
	for i, a := range agents {
		out[i] = string(a)
	}
	return out
}

// activeRequests tracks cancel functions of in-flight requests.
type activeRequests struct {
	mu sync.Mutex
	m  map[string]context.CancelFunc
}

func newActiveRequests() *activeRequests {
	return &activeRequests{m: make(map[string]context.CancelFunc)}
}

func (a *activeRequests) register(id string, cancel context.CancelFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m[id] = cancel
}

func (a *activeRequests) unregister(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.m, id)
}

func (a *activeRequests) cancel(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if cancel, ok := a.m[id]; ok {
		cancel()
		return true
	}
	return false
}
