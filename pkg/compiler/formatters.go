package compiler

import (
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/models"
)

// sectionOrder fixes the multi-agent concatenation order.
var sectionOrder = []models.AgentName{
	models.NotesAgent,
	models.EmailAgent,
	models.CalendarAgent,
	models.FileAgent,
	models.GeneralAgent,
}

// formatSection renders one agent's successful result as a response
// section, extracting structured fields instead of dumping raw JSON.
func formatSection(name models.AgentName, result *models.AgentResult) string {
	switch name {
	case models.NotesAgent:
		return formatNotes(result)
	case models.EmailAgent:
		return formatEmail(result)
	case models.CalendarAgent:
		return formatCalendar(result)
	case models.FileAgent:
		return formatFile(result)
	case models.GeneralAgent:
		return result.Message
	default:
		return result.Message
	}
}

func formatNotes(result *models.AgentResult) string {
	return result.Message
}

// formatEmail relies on the email agent rendering its own draft, approval
// and send messages; they already tell the user what happens next.
func formatEmail(result *models.AgentResult) string {
	return result.Message
}

func formatCalendar(result *models.AgentResult) string {
	return result.Message
}

// formatFile keeps the summary preview bounded in multi-agent responses.
func formatFile(result *models.AgentResult) string {
	summary, _ := result.Result["summary"].(string)
	if summary == "" {
		return result.Message
	}

	var b strings.Builder
	b.WriteString("📄 Document summary:\n")
	if len(summary) > 1500 {
		b.WriteString(summary[:1500])
		b.WriteString("...")
	} else {
		b.WriteString(summary)
	}
	if insights, ok := result.Result["key_insights"].([]string); ok && len(insights) > 0 {
		b.WriteString("\n\nKey insights:\n")
		for _, insight := range insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}
	return b.String()
}

// formatError turns an errored slot into a single actionable line.
func formatError(name models.AgentName, result *models.AgentResult) string {
	switch result.ErrorKind {
	case "input_invalid":
		return result.Message
	case "auth_missing", "auth_expired":
		return result.Message
	case "timeout":
		return fmt.Sprintf("The %s took too long. Please try again.", friendlyName(name))
	case "cancelled":
		return "The request was cancelled."
	default:
		return fmt.Sprintf("The %s ran into a problem: %s", friendlyName(name), result.Message)
	}
}

func friendlyName(name models.AgentName) string {
	return strings.ReplaceAll(string(name), "_", " ")
}
