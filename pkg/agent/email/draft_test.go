package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sundialhq/maestro/pkg/models"
)

func TestSubjectFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		request  string
		expected string
	}{
		{
			name:     "about clause becomes the subject",
			request:  "draft an email to bob about the quarterly review",
			expected: "The quarterly review",
		},
		{
			name:     "command prefix is stripped",
			request:  "draft an email to alice@corp.io",
			expected: "Alice@corp.io",
		},
		{
			name:     "plain request is capitalized",
			request:  "lunch on friday",
			expected: "Lunch on friday",
		},
		{
			name:     "empty request gets a fallback",
			request:  "",
			expected: "Follow-up",
		},
		{
			name:     "long subjects are truncated to 80",
			request:  strings.Repeat("word ", 30),
			expected: "W" + strings.Repeat("word ", 30)[1:80],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, subjectFromRequest(tt.request))
		})
	}
}

func TestTemplateDraft(t *testing.T) {
	d := templateDraft("ask bob about the offsite")
	assert.Equal(t, "The offsite", d.Subject)
	assert.Contains(t, d.Body, "ask bob about the offsite")
	assert.Equal(t, "professional", d.Tone)
	assert.Empty(t, d.To)
}

func TestHintsFrom(t *testing.T) {
	t.Run("planner params win", func(t *testing.T) {
		pad := &models.Scratchpad{
			UserRequest: "email carol@corp.io about the launch",
			Plan: &models.Plan{AgentActions: map[models.AgentName]models.ActionSpec{
				models.EmailAgent: {Params: map[string]any{
					"recipient": "bob@corp.io",
					"subject":   "Launch plan",
					"tone":      "casual",
				}},
			}},
		}
		h := hintsFrom(pad)
		assert.Equal(t, "bob@corp.io", h.Recipient)
		assert.Equal(t, "Launch plan", h.Subject)
		assert.Equal(t, "casual", h.Tone)
	})

	t.Run("recipient extracted from the request text", func(t *testing.T) {
		pad := &models.Scratchpad{UserRequest: "email carol@corp.io about the launch"}
		h := hintsFrom(pad)
		assert.Equal(t, "carol@corp.io", h.Recipient)
		assert.Empty(t, h.Subject)
	})

	t.Run("no recipient anywhere", func(t *testing.T) {
		pad := &models.Scratchpad{UserRequest: "write an email about the launch"}
		h := hintsFrom(pad)
		assert.Empty(t, h.Recipient)
	})
}
