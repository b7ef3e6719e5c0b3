package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseError means the model returned non-conforming JSON after
// sanitization and one strict retry.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm returned invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// strictJSONSystemMessage is appended on the retry after a parse failure.
const strictJSONSystemMessage = "Your previous response was not valid JSON. " +
	"Return ONLY a single valid JSON object. No prose, no Markdown fences, no trailing text."

// StripFences removes a surrounding ```json ... ``` or ``` ... ``` fence.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Decode sanitizes raw model output and unmarshals it into v, repairing
// mildly malformed JSON (single quotes, trailing commas, truncation).
func Decode(raw string, v any) error {
	cleaned := StripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr != nil {
		return &ParseError{Raw: raw, Err: repairErr}
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return &ParseError{Raw: raw, Err: err}
	}
	return nil
}

// CompleteJSON runs a JSON-mode completion and decodes the result into v.
// On a parse failure it retries once with a stricter system message before
// giving up with ParseError.
func CompleteJSON(ctx context.Context, client Client, req Request, v any) error {
	req.Format = FormatJSON

	raw, err := client.Complete(ctx, req)
	if err != nil {
		return err
	}
	if decodeErr := Decode(raw, v); decodeErr == nil {
		return nil
	}

	retry := req
	retry.Messages = append([]Message{{Role: "system", Content: strictJSONSystemMessage}}, req.Messages...)
	raw, err = client.Complete(ctx, retry)
	if err != nil {
		return err
	}
	return Decode(raw, v)
}
