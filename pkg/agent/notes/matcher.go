package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/connectors"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// matchCandidates is how many documents are pulled for grounding a
// mutation target.
const matchCandidates = 50

// minMatchConfidence is the threshold below which the agent asks the user
// to disambiguate instead of mutating.
const minMatchConfidence = 0.5

type matchResult struct {
	MatchedID  *string `json:"matched_id"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

const matchSystemPrompt = `You match a user's description to one document from a list of their actual documents. Respond with a single JSON object:
{"matched_id": "<id from the list or null>", "confidence": 0.0-1.0, "reason": "..."}
Only pick an id that appears in the list. Use null and a low confidence when nothing clearly matches.`

// matchDoc grounds a mutation target against real documents: the model may
// only pick from the listed ids, and must do so confidently.
func (a *Agent) matchDoc(ctx context.Context, pad *models.Scratchpad, query string, docs []connectors.Document) (*connectors.Document, *models.AgentResult) {
	if len(docs) == 0 {
		return nil, models.Failure(
			"Could not find a matching note: you have no saved notes yet.",
			"not_found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The user wants to act on: %q\n\nTheir documents:\n", query)
	for _, d := range docs {
		fmt.Fprintf(&b, "- id=%s title=%q modified=%s\n", d.ID, d.Title, d.ModifiedAt.Format("2006-01-02"))
	}

	var match matchResult
	err := llm.CompleteJSON(ctx, a.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.0,
		Messages: []llm.Message{
			{Role: "system", Content: matchSystemPrompt},
			{Role: "user", Content: b.String()},
		},
	}, &match)
	if err != nil {
		return nil, a.failure(err)
	}

	if match.MatchedID == nil || match.Confidence < minMatchConfidence {
		return nil, models.Failure(
			fmt.Sprintf("Could not find a matching note for %q. Please be more specific about which note you mean.", query),
			"not_found")
	}

	for i := range docs {
		if docs[i].ID == *match.MatchedID {
			return &docs[i], nil
		}
	}
	return nil, models.Failure(
		fmt.Sprintf("Could not find a matching note for %q. Please be more specific about which note you mean.", query),
		"not_found")
}
