package file

import (
	"context"
	"strings"

	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// Fast-path thresholds: a prior assistant message qualifies as a document
// summary when it is substantive and mentions one of the markers.
const minCachedSummaryLen = 500

var summaryMarkers = []string{"summary", "document", "analysis", "key insights", "extracted"}

var interrogatives = []string{"what", "how", "why", "when", "where", "who", "which", "does", "is there", "can you"}

// insufficientSentinel is the phrase the model must emit to decline.
const insufficientSentinel = "insufficient information"

// cachedSummary returns the most recent substantive assistant message that
// reads like a document summary, or "".
func cachedSummary(pad *models.Scratchpad) string {
	for i := len(pad.History) - 1; i >= 0; i-- {
		msg := pad.History[i]
		if msg.Role != "agent" || len(msg.Body) < minCachedSummaryLen {
			continue
		}
		lower := strings.ToLower(msg.Body)
		for _, marker := range summaryMarkers {
			if strings.Contains(lower, marker) {
				return msg.Body
			}
		}
	}
	return ""
}

// looksLikeQuestion reports whether the request is asking about prior
// content rather than requesting a fresh summarization.
func looksLikeQuestion(request string) bool {
	if strings.Contains(request, "?") {
		return true
	}
	lower := strings.ToLower(request)
	for _, w := range interrogatives {
		if strings.HasPrefix(lower, w+" ") || strings.Contains(lower, " "+w+" ") {
			return true
		}
	}
	return false
}

// tryAnswerFromCache attempts to answer the request from a prior summary
// without re-running the pipeline. Returns ("", nil) to fall through.
func (a *Agent) tryAnswerFromCache(ctx context.Context, pad *models.Scratchpad) (string, error) {
	prior := cachedSummary(pad)
	if prior == "" || !looksLikeQuestion(pad.UserRequest) {
		return "", nil
	}

	answer, err := a.llm.Complete(ctx, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.2,
		Format:      llm.FormatText,
		Messages: []llm.Message{
			{Role: "system", Content: `Answer the user's question using only the prior document summary below. If the summary does not contain enough to answer, reply with exactly "insufficient information".`},
			{Role: "user", Content: "Prior summary:\n" + prior + "\n\nQuestion: " + pad.UserRequest},
		},
	})
	if err != nil {
		return "", err
	}
	if strings.Contains(strings.ToLower(answer), insufficientSentinel) {
		return "", nil
	}
	return answer, nil
}
