// Package compiler turns the scratchpad's partial results into the single
// response string returned to the user.
package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// Compiler builds the final response. Typed formatters cover the common
// shapes; an LLM synthesis call is the fallback when no formatter fits.
type Compiler struct {
	llm llm.Client
}

// New creates a Compiler.
func New(client llm.Client) *Compiler {
	return &Compiler{llm: client}
}

// Compile produces the final response string. onDelta, when non-nil,
// receives response text incrementally; formatter output arrives as one
// delta, LLM-synthesized output streams token by token. The returned
// string always equals the concatenation of the deltas.
func (c *Compiler) Compile(ctx context.Context, pad *models.Scratchpad, onDelta func(string)) (string, error) {
	if pad.Plan == nil || len(pad.Plan.Agents) == 0 {
		response := pad.FinalResponse
		if response == "" {
			response = "I could not find anything to do for that request."
		}
		emit(onDelta, response)
		return response, nil
	}

	if len(pad.Plan.Agents) >= 2 {
		response := c.compileMulti(pad)
		emit(onDelta, response)
		return response, nil
	}

	name := pad.Plan.Agents[0]
	result := pad.ResultFor(name)
	if result == nil {
		return c.synthesize(ctx, pad, onDelta)
	}
	if result.Status == models.StatusError {
		response := formatError(name, result)
		emit(onDelta, response)
		return response, nil
	}

	response := formatSection(name, result)
	if response == "" {
		return c.synthesize(ctx, pad, onDelta)
	}
	emit(onDelta, response)
	return response, nil
}

// compileMulti concatenates type-aware sections in fixed order. Errored
// slots contribute a one-line notice; missing slots are skipped.
func (c *Compiler) compileMulti(pad *models.Scratchpad) string {
	var sections []string
	for _, name := range sectionOrder {
		result := pad.ResultFor(name)
		if result == nil {
			continue
		}
		if result.Status == models.StatusError {
			sections = append(sections, formatError(name, result))
			continue
		}
		if section := formatSection(name, result); section != "" {
			sections = append(sections, section)
		}
	}
	if len(sections) == 0 {
		return "None of the assistants could complete your request. Please try again."
	}
	return strings.Join(sections, "\n\n")
}

// synthesize is the LLM fallback when no typed formatter applies.
func (c *Compiler) synthesize(ctx context.Context, pad *models.Scratchpad, onDelta func(string)) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "User request: %s\n\nAssistant results:\n", pad.UserRequest)
	for name, result := range pad.PartialResults {
		fmt.Fprintf(&b, "[%s] (%s) %s\n", name, result.Status, result.Message)
	}

	req := llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.1,
		Format:      llm.FormatText,
		Messages: []llm.Message{
			{Role: "system", Content: "Combine the assistant results into one concise, helpful reply to the user. Do not mention the assistants or internal mechanics."},
			{Role: "user", Content: b.String()},
		},
	}

	if onDelta == nil {
		return c.llm.Complete(ctx, req)
	}

	chunks, err := c.llm.Stream(ctx, req)
	if err != nil {
		return "", err
	}
	var response strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			return "", chunk.Err
		}
		response.WriteString(chunk.Content)
		onDelta(chunk.Content)
	}
	return response.String(), nil
}

func emit(onDelta func(string), s string) {
	if onDelta != nil && s != "" {
		onDelta(s)
	}
}
