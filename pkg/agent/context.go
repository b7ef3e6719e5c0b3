package agent

import (
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/models"
)

// HistoryText renders the last n transcript entries as role-tagged lines
// for inclusion in a prompt. Empty history renders as "" so callers can
// leave the section out entirely.
func HistoryText(pad *models.Scratchpad, n int) string {
	history := pad.History
	if n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Body)
	}
	return b.String()
}

// PeerContext renders the messages of agents that already ran in this
// request, so downstream agents can build on their output.
func PeerContext(pad *models.Scratchpad) string {
	if pad.Plan == nil || len(pad.PartialResults) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range pad.Plan.Agents {
		result := pad.PartialResults[name]
		if result == nil || result.Status != models.StatusSuccess {
			continue
		}
		fmt.Fprintf(&b, "[%s] %s\n", name, result.Message)
	}
	return b.String()
}
