package file

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// mapConcurrency caps in-flight per-chunk summary calls for one request.
const mapConcurrency = 4

// SummaryMode selects the register of the produced summary.
type SummaryMode string

const (
	ModeBrief     SummaryMode = "brief"
	ModeDetailed  SummaryMode = "detailed"
	ModeExecutive SummaryMode = "executive"
	ModeTechnical SummaryMode = "technical"
)

func (m SummaryMode) instruction() string {
	switch m {
	case ModeBrief:
		return "Summarize in 2-3 sentences covering only the most important points."
	case ModeExecutive:
		return "Write an executive summary: key findings, decisions and recommendations, suitable for leadership."
	case ModeTechnical:
		return "Write a technical summary preserving terminology, figures, methods and data points."
	default:
		return "Write a thorough summary covering all significant points, organized by topic."
	}
}

// summarizeChunks runs the map stage: one summary call per chunk, at most
// mapConcurrency in flight, results kept in chunk order.
func (a *Agent) summarizeChunks(ctx context.Context, pad *models.Scratchpad, mode SummaryMode, chunks []Chunk) ([]string, error) {
	summaries := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(mapConcurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			out, err := a.llm.Complete(gctx, llm.Request{
				RequestID:   pad.RequestID,
				Temperature: 0.3,
				Format:      llm.FormatText,
				Messages: []llm.Message{
					{Role: "system", Content: "You summarize one section of a larger document. " + mode.instruction()},
					{Role: "user", Content: fmt.Sprintf("Section %d of %d:\n\n%s", chunk.ID+1, len(chunks), chunk.Text)},
				},
			})
			if err != nil {
				return fmt.Errorf("chunk %d: %w", chunk.ID, err)
			}
			summaries[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// reduceSummaries produces the document-level summary from the ordered
// chunk summaries, conditioned on recent history and the user's request.
func (a *Agent) reduceSummaries(ctx context.Context, pad *models.Scratchpad, mode SummaryMode, name string, summaries []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n\n", name)
	if history := agent.HistoryText(pad, 5); history != "" {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n", history)
	}
	fmt.Fprintf(&b, "User request: %s\n\nSection summaries, in order:\n\n%s",
		pad.UserRequest, strings.Join(summaries, "\n\n"))

	return a.llm.Complete(ctx, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.3,
		Format:      llm.FormatText,
		Messages: []llm.Message{
			{Role: "system", Content: "You combine section summaries into one coherent document summary. " + mode.instruction()},
			{Role: "user", Content: b.String()},
		},
	})
}

// extractInsights asks for 3-5 key insights as a JSON list. On JSON
// failure it falls back to the first 5 non-empty lines of the raw reply.
func (a *Agent) extractInsights(ctx context.Context, pad *models.Scratchpad, summary string) []string {
	raw, err := a.llm.Complete(ctx, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.3,
		Format:      llm.FormatJSON,
		Messages: []llm.Message{
			{Role: "system", Content: `Extract 3 to 5 key insights from the summary. Respond with a JSON array of strings, for example ["insight one", "insight two", "insight three"].`},
			{Role: "user", Content: summary},
		},
	})
	if err != nil {
		return nil
	}

	var insights []string
	if err := llm.Decode(raw, &insights); err == nil && len(insights) > 0 {
		if len(insights) > 5 {
			insights = insights[:5]
		}
		return insights
	}

	// Fallback: first 5 non-empty lines of whatever came back.
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
			if len(lines) == 5 {
				break
			}
		}
	}
	return lines
}

// answerQuery selects chunks by token overlap with the query and asks the
// model to answer from the top 3.
func (a *Agent) answerQuery(ctx context.Context, pad *models.Scratchpad, query string, chunks []Chunk) (string, error) {
	selected := selectChunks(query, chunks, 3)
	if len(selected) == 0 {
		selected = chunks[:min(3, len(chunks))]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nRelevant document excerpts:\n\n", query)
	for _, c := range selected {
		fmt.Fprintf(&b, "[chunk %d] %s\n\n", c.ID, truncate(c.Text, 500))
	}

	return a.llm.Complete(ctx, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.2,
		Format:      llm.FormatText,
		Messages: []llm.Message{
			{Role: "system", Content: "Answer the question directly from the document excerpts. Say so if the excerpts do not contain the answer."},
			{Role: "user", Content: b.String()},
		},
	})
}

// selectChunks keeps chunks whose text contains at least one query token,
// preserving chunk order, up to max.
func selectChunks(query string, chunks []Chunk, max int) []Chunk {
	tokens := strings.Fields(strings.ToLower(query))
	var out []Chunk
	for _, c := range chunks {
		lower := strings.ToLower(c.Text)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				out = append(out, c)
				break
			}
		}
		if len(out) == max {
			break
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
