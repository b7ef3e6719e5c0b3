// Package notes implements the notes agent: documents created in the
// external Docs provider, with a session-scoped reference persisted for
// later retrieval.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
	"github.com/sundialhq/maestro/pkg/services"
)

// Agent is the notes agent.
type Agent struct {
	llm      llm.Client
	provider connectors.Provider
	notes    *services.NoteService
	logger   *slog.Logger
}

// New creates the notes agent.
func New(client llm.Client, provider connectors.Provider, notes *services.NoteService, logger *slog.Logger) *Agent {
	return &Agent{
		llm:      client,
		provider: provider,
		notes:    notes,
		logger:   logger.With("component", "notes_agent"),
	}
}

// Name implements agent.Agent.
func (a *Agent) Name() models.AgentName { return models.NotesAgent }

// Process extracts intent and dispatches against the Docs capability.
func (a *Agent) Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	client, err := a.provider.Docs(ctx, pad.ThirdPartyToken)
	if err != nil {
		return a.failure(err)
	}

	intent, err := a.extractIntent(ctx, pad)
	if err != nil {
		return a.failure(err)
	}

	switch intent.Action {
	case "create":
		return a.create(ctx, pad, client, intent)
	case "update":
		return a.update(ctx, pad, client, intent)
	case "delete":
		return a.delete(ctx, pad, client, intent)
	case "view_all":
		return a.viewAll(ctx, client)
	case "view_specific":
		return a.viewSpecific(ctx, pad, client, intent)
	case "search":
		return a.search(ctx, client, intent)
	default:
		return models.Failure(
			fmt.Sprintf("I did not understand what note action you want (%q).", intent.Action),
			"input_invalid")
	}
}

func (a *Agent) create(ctx context.Context, pad *models.Scratchpad, client connectors.Docs, intent *Intent) *models.AgentResult {
	title := intent.Title
	if title == "" {
		title = "Untitled note"
	}

	content := intent.Content
	if content == "" {
		composed, err := a.composeContent(ctx, pad, intent)
		if err != nil {
			return a.failure(err)
		}
		content = composed
	}

	doc, err := client.Create(ctx, connectors.CreateDocRequest{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return a.failure(err)
	}

	// Link sharing is best effort. The note exists either way.
	if err := client.Share(ctx, doc.ID); err != nil {
		a.logger.Warn("Failed to enable link sharing on note",
			"doc_id", doc.ID, "error", err)
	}

	if _, err := a.notes.SaveNote(ctx, services.SaveNoteRequest{
		SessionID:     pad.SessionID,
		Title:         doc.Title,
		ProviderDocID: doc.ID,
		URL:           doc.URL,
		Content:       content,
	}); err != nil {
		a.logger.Warn("Failed to persist note reference",
			"session_id", pad.SessionID, "doc_id", doc.ID, "error", err)
	}

	return models.Success(
		fmt.Sprintf("Note '%s' created: %s", doc.Title, doc.URL),
		map[string]any{"document": doc, "action": "create"})
}

func (a *Agent) update(ctx context.Context, pad *models.Scratchpad, client connectors.Docs, intent *Intent) *models.AgentResult {
	target, failed := a.groundTarget(ctx, pad, client, intent)
	if failed != nil {
		return failed
	}

	content := intent.Content
	if content == "" {
		composed, err := a.composeContent(ctx, pad, intent)
		if err != nil {
			return a.failure(err)
		}
		content = composed
	}

	req := connectors.UpdateDocRequest{Content: &content, Append: intent.Append}
	if intent.Title != "" && !strings.EqualFold(intent.Title, target.Title) {
		req.Title = &intent.Title
	}

	if err := client.Update(ctx, target.ID, req); err != nil {
		return a.failure(err)
	}

	verb := "updated"
	if intent.Append {
		verb = "appended to"
	}
	return models.Success(
		fmt.Sprintf("Successfully %s note '%s'.", verb, target.Title),
		map[string]any{"document": target, "action": "update"})
}

func (a *Agent) delete(ctx context.Context, pad *models.Scratchpad, client connectors.Docs, intent *Intent) *models.AgentResult {
	target, failed := a.groundTarget(ctx, pad, client, intent)
	if failed != nil {
		return failed
	}

	if err := client.Delete(ctx, target.ID); err != nil {
		return a.failure(err)
	}

	return models.Success(
		fmt.Sprintf("Moved note '%s' to trash.", target.Title),
		map[string]any{"doc_id": target.ID, "action": "delete"})
}

func (a *Agent) viewAll(ctx context.Context, client connectors.Docs) *models.AgentResult {
	docs, err := client.List(ctx, matchCandidates)
	if err != nil {
		return a.failure(err)
	}

	if len(docs) == 0 {
		return models.Success("You have no saved notes yet.",
			map[string]any{"documents": docs, "action": "view_all"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d notes:\n", len(docs))
	for _, d := range docs {
		fmt.Fprintf(&b, "- %s (%s)\n", d.Title, d.URL)
	}
	return models.Success(b.String(), map[string]any{"documents": docs, "action": "view_all"})
}

func (a *Agent) viewSpecific(ctx context.Context, pad *models.Scratchpad, client connectors.Docs, intent *Intent) *models.AgentResult {
	target, failed := a.groundTarget(ctx, pad, client, intent)
	if failed != nil {
		return failed
	}

	doc, err := client.Get(ctx, target.ID)
	if err != nil {
		return a.failure(err)
	}

	return models.Success(
		fmt.Sprintf("Note '%s':\n\n%s", doc.Title, doc.PlainText),
		map[string]any{"document": doc, "action": "view_specific"})
}

func (a *Agent) search(ctx context.Context, client connectors.Docs, intent *Intent) *models.AgentResult {
	query := intent.DocQuery
	if query == "" {
		query = intent.Title
	}
	if query == "" {
		return models.Failure("Please tell me what to search your notes for.", "input_invalid")
	}

	docs, err := client.Search(ctx, query, 10)
	if err != nil {
		return a.failure(err)
	}
	if len(docs) == 0 {
		return models.Success(
			fmt.Sprintf("No notes matched %q.", query),
			map[string]any{"documents": docs, "action": "search"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d notes matching %q:\n", len(docs), query)
	for _, d := range docs {
		fmt.Fprintf(&b, "- %s (%s)\n", d.Title, d.URL)
	}
	return models.Success(b.String(), map[string]any{"documents": docs, "action": "search"})
}

// groundTarget lists real documents and matches the user's description
// against them before any mutation.
func (a *Agent) groundTarget(ctx context.Context, pad *models.Scratchpad, client connectors.Docs, intent *Intent) (*connectors.Document, *models.AgentResult) {
	query := intent.DocQuery
	if query == "" {
		query = intent.Title
	}
	if query == "" {
		query = pad.UserRequest
	}

	docs, err := client.List(ctx, matchCandidates)
	if err != nil {
		return nil, a.failure(err)
	}

	return a.matchDoc(ctx, pad, query, docs)
}

// failure maps provider and LLM errors to user-facing error results.
func (a *Agent) failure(err error) *models.AgentResult {
	var parseErr *llm.ParseError
	switch {
	case connectors.IsAuth(err):
		return models.Failure("Please sign in to Google Docs to do that.", string(connectors.KindOf(err)))
	case errors.As(err, &parseErr):
		return models.Failure("I could not work out the note details. Please rephrase your request.", "llm_parse_error")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return agent.ClassifyErr(models.NotesAgent, err)
	default:
		var pe *connectors.Error
		if errors.As(err, &pe) {
			return models.Failure(fmt.Sprintf("Notes request failed: %v.", err), string(pe.Kind))
		}
		return models.Failure(fmt.Sprintf("Notes request failed: %v.", err), "error")
	}
}
