package notify

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundialhq/maestro/pkg/models"
)

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected a section block, got %T", block)
	require.NotNil(t, section.Text)
	return section.Text.Text
}

func buttonURL(t *testing.T, block goslack.Block) string {
	t.Helper()
	action, ok := block.(*goslack.ActionBlock)
	require.True(t, ok, "expected an action block, got %T", block)
	require.NotEmpty(t, action.Elements.ElementSet)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok, "expected a button element, got %T", action.Elements.ElementSet[0])
	return btn.URL
}

func TestBuildApprovalRequestMessage(t *testing.T) {
	draft := &models.DraftSummary{
		ID:      "draft-1",
		To:      "bob@corp.io",
		Subject: "Offsite agenda",
		Body:    "Hi Bob, here is the agenda.",
		Status:  "pending_approval",
	}

	blocks := BuildApprovalRequestMessage(draft, "https://app.example.com")
	require.Len(t, blocks, 3)

	header := sectionText(t, blocks[0])
	assert.Contains(t, header, "awaiting approval")
	assert.Contains(t, header, "bob@corp.io")
	assert.Contains(t, header, "Offsite agenda")

	assert.Equal(t, "Hi Bob, here is the agenda.", sectionText(t, blocks[1]))
	assert.Equal(t, "https://app.example.com/drafts/draft-1", buttonURL(t, blocks[2]))
}

func TestBuildApprovalRequestMessageTruncatesBody(t *testing.T) {
	draft := &models.DraftSummary{
		ID:      "draft-1",
		To:      "bob@corp.io",
		Subject: "Long one",
		Body:    strings.Repeat("a", maxBlockTextLength+500),
	}

	blocks := BuildApprovalRequestMessage(draft, "https://app.example.com")
	body := sectionText(t, blocks[1])
	assert.True(t, strings.HasSuffix(body, "_... (truncated)_"))
	assert.LessOrEqual(t, len(body), maxBlockTextLength+50)
}

func TestBuildOutcomeMessage(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"sent", ":white_check_mark: *Email Sent*"},
		{"rejected", ":no_entry_sign: *Draft Rejected*"},
		{"failed", ":x: *Send Failed*"},
		{"scheduled", ":question: *Draft scheduled*"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			draft := &models.DraftSummary{
				ID: "draft-1", To: "bob@corp.io", Subject: "Offsite agenda", Status: tt.status,
			}
			blocks := BuildOutcomeMessage(draft, "", "https://app.example.com")
			require.Len(t, blocks, 2)
			assert.Contains(t, sectionText(t, blocks[0]), tt.expected)
			assert.Equal(t, "https://app.example.com/drafts/draft-1", buttonURL(t, blocks[1]))
		})
	}

	t.Run("detail is appended", func(t *testing.T) {
		draft := &models.DraftSummary{ID: "draft-1", To: "bob@corp.io", Subject: "x", Status: "failed"}
		blocks := BuildOutcomeMessage(draft, "mail.send: permanent: address rejected", "https://app.example.com")
		assert.Contains(t, sectionText(t, blocks[0]), "address rejected")
	})
}
