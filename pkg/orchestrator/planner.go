package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/models"
)

const planSystemPrompt = `You plan which assistants handle a user request. Available assistants:
- calendar_agent: events, meetings, reminders, scheduling, free slots
- notes_agent: creating, updating and finding notes and documents
- file_agent: summarizing and answering questions about an uploaded file
- email_agent: reading, listing, drafting, approving and sending email
- general_agent: anything else (questions, planning, task help)

Respond with a single JSON object:
{"agents_to_invoke": ["agent_name", ...], "reasoning": "...",
 "workflow_type": "single_agent|multi_agent|no_action",
 "agent_actions": {"agent_name": {"action": "...", "params": {}}},
 "confidence": 0.0-1.0}

Ordering rules: file_agent before email_agent, email_agent before
calendar_agent, file_agent before notes_agent. Use "no_action" with an
empty agent list only when the request needs no assistant at all.`

// fallbackKeywords imply an agent when the planner missed it. Scanned only
// when the plan's workflow type is not no_action.
var fallbackKeywords = map[models.AgentName][]string{
	models.CalendarAgent: {"calendar", "meeting", "schedule", "event", "remind", "appointment"},
	models.NotesAgent:    {"note", "notes", "write down", "document", "save this"},
	models.FileAgent:     {"file", "summarize", "pdf", "document you uploaded", "attachment", "uploaded"},
	models.EmailAgent:    {"email", "mail", "inbox", "draft", "send"},
}

// buildPlan asks the model for a plan and normalizes it: unknown agents
// dropped, duplicates removed keeping first occurrence, keyword fallback
// appended, ordering invariants enforced.
func (o *Orchestrator) buildPlan(ctx context.Context, pad *models.Scratchpad) (*models.Plan, error) {
	var b strings.Builder
	if history := agent.HistoryText(pad, 10); history != "" {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n", history)
	}
	if len(pad.FileBlob) > 0 {
		fmt.Fprintf(&b, "The user attached a file: %s\n", pad.FileName)
	}
	fmt.Fprintf(&b, "Request: %s", pad.UserRequest)

	var plan models.Plan
	err := llm.CompleteJSON(ctx, o.llm, llm.Request{
		RequestID:   pad.RequestID,
		Temperature: 0.1,
		Messages: []llm.Message{
			{Role: "system", Content: planSystemPrompt},
			{Role: "user", Content: b.String()},
		},
	}, &plan)
	if err != nil {
		return nil, err
	}

	NormalizePlan(&plan, o.registry, pad.UserRequest)
	return &plan, nil
}

// NormalizePlan enforces the plan contract in place.
func NormalizePlan(plan *models.Plan, registry *agent.Registry, request string) {
	// Registry subset, duplicates dropped preserving first occurrence.
	seen := make(map[models.AgentName]bool, len(plan.Agents))
	kept := plan.Agents[:0]
	for _, name := range plan.Agents {
		if !registry.Has(name) || seen[name] {
			continue
		}
		seen[name] = true
		kept = append(kept, name)
	}
	plan.Agents = kept

	// Keyword fallback appends newly implied agents at the tail. no_action
	// disables it so the model can decline outright.
	if plan.WorkflowType != "no_action" {
		lower := strings.ToLower(request)
		for _, name := range models.AllAgents() {
			if seen[name] || !registry.Has(name) {
				continue
			}
			for _, kw := range fallbackKeywords[name] {
				if strings.Contains(lower, kw) {
					plan.Agents = append(plan.Agents, name)
					seen[name] = true
					break
				}
			}
		}
	}

	plan.Agents = enforceOrdering(plan.Agents)
}

// orderRank drives the stable re-sort that repairs ordering violations:
// file before email and notes, email before calendar. Equal ranks keep
// their planner-given relative order.
func orderRank(name models.AgentName) int {
	switch name {
	case models.FileAgent:
		return 0
	case models.EmailAgent:
		return 1
	case models.NotesAgent, models.CalendarAgent:
		return 2
	default:
		return 3
	}
}

// mustPrecede lists the pairwise ordering invariants.
var mustPrecede = [][2]models.AgentName{
	{models.FileAgent, models.EmailAgent},
	{models.EmailAgent, models.CalendarAgent},
	{models.FileAgent, models.NotesAgent},
}

// enforceOrdering leaves a compliant plan untouched; a violated plan is
// repaired with a stable sort so unconstrained agents keep their planner
// order relative to each other.
func enforceOrdering(agents []models.AgentName) []models.AgentName {
	pos := make(map[models.AgentName]int, len(agents))
	for i, name := range agents {
		pos[name] = i
	}

	violated := false
	for _, pair := range mustPrecede {
		first, hasFirst := pos[pair[0]]
		second, hasSecond := pos[pair[1]]
		if hasFirst && hasSecond && first > second {
			violated = true
			break
		}
	}
	if !violated {
		return agents
	}

	// Stable insertion sort by rank; five elements at most.
	for i := 1; i < len(agents); i++ {
		for j := i; j > 0 && orderRank(agents[j]) < orderRank(agents[j-1]); j-- {
			agents[j], agents[j-1] = agents[j-1], agents[j]
		}
	}
	return agents
}
