package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/sundialhq/maestro/pkg/models"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"sent":     ":white_check_mark:",
	"rejected": ":no_entry_sign:",
	"failed":   ":x:",
}

var statusLabel = map[string]string{
	"sent":     "Email Sent",
	"rejected": "Draft Rejected",
	"failed":   "Send Failed",
}

func draftURL(draftID, dashboardURL string) string {
	return fmt.Sprintf("%s/drafts/%s", dashboardURL, draftID)
}

// BuildApprovalRequestMessage creates Block Kit blocks announcing a draft
// that awaits a human decision.
func BuildApprovalRequestMessage(draft *models.DraftSummary, dashboardURL string) []goslack.Block {
	header := fmt.Sprintf(":email: *Email draft awaiting approval*\n*To:* %s\n*Subject:* %s", draft.To, draft.Subject)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateBlockText(draft.Body), false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "Review Draft", false, false))
	btn.URL = draftURL(draft.ID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildOutcomeMessage creates Block Kit blocks for a terminal draft outcome.
func BuildOutcomeMessage(draft *models.DraftSummary, detail, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[draft.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[draft.Status]
	if label == "" {
		label = "Draft " + draft.Status
	}

	text := fmt.Sprintf("%s *%s*\n*To:* %s\n*Subject:* %s", emoji, label, draft.To, draft.Subject)
	if detail != "" {
		text += "\n\n" + truncateBlockText(detail)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Details", false, false))
	btn.URL = draftURL(draft.ID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateBlockText(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
