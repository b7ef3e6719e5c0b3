// Package file implements the file summarization agent: a staged pipeline
// from raw upload bytes to a document summary, key insights and optional
// question answering, with a per-session result cache.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
)

// cacheEntries bounds the cross-session result cache.
const cacheEntries = 64

// Agent is the file summarization agent.
type Agent struct {
	llm    llm.Client
	files  *services.FileService
	cache  *lru.Cache[string, *State]
	logger *slog.Logger
}

// New creates the file agent.
func New(client llm.Client, files *services.FileService, logger *slog.Logger) *Agent {
	cache, _ := lru.New[string, *State](cacheEntries)
	return &Agent{
		llm:    client,
		files:  files,
		cache:  cache,
		logger: logger.With("component", "file_agent"),
	}
}

// Name implements agent.Agent.
func (a *Agent) Name() models.AgentName { return models.FileAgent }

// Process answers from a cached summary when possible, otherwise runs the
// full pipeline against the request's file or the session's latest upload.
func (a *Agent) Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	if answer, err := a.tryAnswerFromCache(ctx, pad); err == nil && answer != "" {
		return models.Success(answer, map[string]any{
			"query_response": answer,
			"from_cache":     true,
		})
	} else if err != nil {
		a.logger.Warn("Cached-answer fast path failed, running full pipeline",
			"session_id", pad.SessionID, "error", err)
	}

	blob, name, failed := a.resolveFile(ctx, pad)
	if failed != nil {
		return failed
	}

	params := pad.Params(models.FileAgent).Params
	st := &State{
		Blob:         blob,
		Name:         name,
		DetectedType: services.NormalizeExtension(name),
		Mode:         detectMode(pad.UserRequest, params),
		Query:        detectQuery(pad.UserRequest, params),
	}

	key := cacheKey(pad.SessionID, st)
	if cached, ok := a.cache.Get(key); ok && cached.Complete {
		return a.format(cached)
	}

	a.run(ctx, pad, st)
	if !st.Complete {
		return a.pipelineFailure(st)
	}
	a.cache.Add(key, st)

	return a.format(st)
}

// resolveFile prefers the bytes attached to this request and falls back to
// the session's most recent upload.
func (a *Agent) resolveFile(ctx context.Context, pad *models.Scratchpad) ([]byte, string, *models.AgentResult) {
	if len(pad.FileBlob) > 0 {
		return pad.FileBlob, pad.FileName, nil
	}

	latest, err := a.files.LatestFile(ctx, pad.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, "", models.Failure(
				"No file to work with. Please upload a file first.",
				"input_invalid")
		}
		return nil, "", models.Failure(
			fmt.Sprintf("Could not load your uploaded file: %v.", err), "error")
	}
	return latest.Content, latest.Name, nil
}

// detectMode takes an explicit planner parameter first, then request
// keywords, defaulting to a detailed summary.
func detectMode(request string, params map[string]any) SummaryMode {
	if m, ok := params["summary_mode"].(string); ok {
		switch SummaryMode(m) {
		case ModeBrief, ModeDetailed, ModeExecutive, ModeTechnical:
			return SummaryMode(m)
		}
	}

	lower := strings.ToLower(request)
	switch {
	case strings.Contains(lower, "brief") || strings.Contains(lower, "short") || strings.Contains(lower, "quick"):
		return ModeBrief
	case strings.Contains(lower, "executive"):
		return ModeExecutive
	case strings.Contains(lower, "technical"):
		return ModeTechnical
	default:
		return ModeDetailed
	}
}

// detectQuery uses the planner-provided query when present; otherwise a
// question-shaped request doubles as the query.
func detectQuery(request string, params map[string]any) string {
	if q, ok := params["query"].(string); ok && q != "" {
		return q
	}
	if strings.Contains(request, "?") {
		return request
	}
	return ""
}

func cacheKey(sessionID string, st *State) string {
	sum := sha256.Sum256(st.Blob)
	return fmt.Sprintf("%s|%s|%s|%s", sessionID, hex.EncodeToString(sum[:8]), st.Mode, st.Query)
}

func (a *Agent) pipelineFailure(st *State) *models.AgentResult {
	msg := fmt.Sprintf("Could not process '%s': %s", st.Name, strings.Join(st.Errors, "; "))
	kind := "error"
	switch st.CurrentStep {
	case StepIngested:
		kind = "input_invalid"
	case StepExtracted, StepChunked:
		kind = "input_invalid"
	}
	for _, e := range st.Errors {
		if strings.Contains(e, context.DeadlineExceeded.Error()) {
			return agent.ClassifyErr(models.FileAgent, context.DeadlineExceeded)
		}
	}
	return models.Failure(msg, kind)
}

// format renders the completed pipeline state as the agent result.
func (a *Agent) format(st *State) *models.AgentResult {
	var b strings.Builder
	fmt.Fprintf(&b, "Summary of '%s':\n\n%s\n", st.Name, st.FinalSummary)
	if len(st.KeyInsights) > 0 {
		b.WriteString("\nKey insights:\n")
		for _, insight := range st.KeyInsights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}
	if st.QueryResponse != "" {
		fmt.Fprintf(&b, "\nAnswer to your question:\n%s\n", st.QueryResponse)
	}

	result := map[string]any{
		"summary":      st.FinalSummary,
		"key_insights": st.KeyInsights,
		"metadata":     st.Metadata,
		"file_type":    st.DetectedType,
	}
	if st.QueryResponse != "" {
		result["query_response"] = st.QueryResponse
	}
	return models.Success(b.String(), result)
}
