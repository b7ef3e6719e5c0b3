// Package general implements the LLM-only assistant agent for questions,
// planning and task shaping that no specialized agent covers.
package general

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

// Timeout bounds the single LLM call this agent makes.
const Timeout = 90 * time.Second

// Category is the request family the keyword classifier assigns.
type Category string

const (
	CategoryTaskManagement Category = "task_management"
	CategoryQuestionAnswer Category = "question_answer"
	CategoryPlanning       Category = "planning"
	CategoryGeneral        Category = "general_assistance"
)

// Agent answers general requests with a single purpose-prompted LLM call.
type Agent struct {
	llm llm.Client
}

// New creates the general agent.
func New(client llm.Client) *Agent {
	return &Agent{llm: client}
}

// Name implements agent.Agent.
func (a *Agent) Name() models.AgentName { return models.GeneralAgent }

// Process classifies the request by keyword and dispatches one LLM call
// under the 90 second budget.
func (a *Agent) Process(ctx context.Context, pad *models.Scratchpad) *models.AgentResult {
	category := Classify(pad.UserRequest)

	response, err := a.llm.Complete(ctx, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.7,
		Timeout:     Timeout,
		Format:      llm.FormatText,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt(category)},
			{Role: "user", Content: userPrompt(pad)},
		},
	})
	if err != nil {
		if ctx.Err() != nil || strings.Contains(err.Error(), "deadline") {
			return models.Failure("I took too long to answer that one. Please try again.", "timeout")
		}
		return agent.ClassifyErr(models.GeneralAgent, err)
	}

	return models.Success(response, map[string]any{
		"category": string(category),
		"response": response,
	})
}

// Classify assigns the request to a category by keyword membership.
func Classify(request string) Category {
	lower := strings.ToLower(request)

	for _, kw := range []string{"task", "todo", "to-do", "remind", "organize", "prioriti"} {
		if strings.Contains(lower, kw) {
			return CategoryTaskManagement
		}
	}
	for _, kw := range []string{"plan", "strategy", "roadmap", "goal", "milestone"} {
		if strings.Contains(lower, kw) {
			return CategoryPlanning
		}
	}
	for _, kw := range []string{"what", "how", "why", "when", "where", "who", "explain", "?"} {
		if strings.Contains(lower, kw) {
			return CategoryQuestionAnswer
		}
	}
	return CategoryGeneral
}

func systemPrompt(category Category) string {
	switch category {
	case CategoryTaskManagement:
		return "You are a productivity assistant. Help the user break down, organize and prioritize their tasks. Be concrete and actionable."
	case CategoryQuestionAnswer:
		return "You are a knowledgeable assistant. Answer the user's question accurately and concisely. Say so when you are unsure."
	case CategoryPlanning:
		return "You are a planning assistant. Help the user shape a realistic plan with clear steps and rough time estimates."
	default:
		return "You are a helpful assistant. Respond to the user's request clearly and helpfully."
	}
}

func userPrompt(pad *models.Scratchpad) string {
	var b strings.Builder
	if history := agent.HistoryText(pad, 5); history != "" {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n", history)
	}
	if peers := agent.PeerContext(pad); peers != "" {
		fmt.Fprintf(&b, "Results from other assistants this turn:\n%s\n", peers)
	}
	fmt.Fprintf(&b, "Request: %s", pad.UserRequest)
	return b.String()
}
