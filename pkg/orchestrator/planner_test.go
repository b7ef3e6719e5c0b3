package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/models"
)

// noopAgent registers a name without doing any work.
type noopAgent struct{ name models.AgentName }

func (a *noopAgent) Name() models.AgentName { return a.name }

func (a *noopAgent) Process(_ context.Context, _ *models.Scratchpad) *models.AgentResult {
	return models.Success("ok", nil)
}

func fullRegistry() *agent.Registry {
	var agents []agent.Agent
	for _, name := range models.AllAgents() {
		agents = append(agents, &noopAgent{name: name})
	}
	return agent.NewRegistry(agents...)
}

func TestNormalizePlan(t *testing.T) {
	registry := fullRegistry()

	tests := []struct {
		name     string
		plan     models.Plan
		request  string
		expected []models.AgentName
	}{
		{
			name: "unknown agents are dropped",
			plan: models.Plan{Agents: []models.AgentName{
				"weather_agent", models.GeneralAgent,
			}},
			request:  "what should I do today",
			expected: []models.AgentName{models.GeneralAgent},
		},
		{
			name: "duplicates keep first occurrence",
			plan: models.Plan{Agents: []models.AgentName{
				models.EmailAgent, models.CalendarAgent, models.EmailAgent,
			}},
			request:  "plan my day",
			expected: []models.AgentName{models.EmailAgent, models.CalendarAgent},
		},
		{
			name:     "keyword fallback fills a missed agent",
			plan:     models.Plan{Agents: []models.AgentName{models.GeneralAgent}},
			request:  "also check my email please",
			expected: []models.AgentName{models.GeneralAgent, models.EmailAgent},
		},
		{
			name:     "no_action disables the keyword fallback",
			plan:     models.Plan{WorkflowType: "no_action"},
			request:  "never mind the email",
			expected: nil,
		},
		{
			name: "compliant order is untouched",
			plan: models.Plan{Agents: []models.AgentName{
				models.GeneralAgent, models.FileAgent,
			}},
			request:  "summarize the uploaded file and give advice",
			expected: []models.AgentName{models.GeneralAgent, models.FileAgent},
		},
		{
			name: "ordering violation is repaired",
			plan: models.Plan{Agents: []models.AgentName{
				models.CalendarAgent, models.EmailAgent, models.FileAgent,
			}},
			request:  "summarize the file, email it, then schedule a meeting",
			expected: []models.AgentName{models.FileAgent, models.EmailAgent, models.CalendarAgent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := tt.plan
			NormalizePlan(&plan, registry, tt.request)
			assert.Equal(t, tt.expected, plan.Agents)
		})
	}
}

func TestEnforceOrdering(t *testing.T) {
	t.Run("unconstrained pairs keep planner order", func(t *testing.T) {
		// notes and calendar have no invariant between them; with a
		// violation elsewhere the repair must not swap them needlessly.
		agents := []models.AgentName{
			models.NotesAgent, models.CalendarAgent, models.EmailAgent, models.FileAgent,
		}
		repaired := enforceOrdering(agents)
		assert.Equal(t, []models.AgentName{
			models.FileAgent, models.EmailAgent, models.NotesAgent, models.CalendarAgent,
		}, repaired)
	})

	t.Run("compliant plans pass through unchanged", func(t *testing.T) {
		agents := []models.AgentName{
			models.GeneralAgent, models.FileAgent, models.NotesAgent,
		}
		assert.Equal(t, agents, enforceOrdering(agents))
	})

	t.Run("single agent is trivially compliant", func(t *testing.T) {
		agents := []models.AgentName{models.EmailAgent}
		assert.Equal(t, agents, enforceOrdering(agents))
	})
}
