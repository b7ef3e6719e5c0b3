// Package masking provides compiled regex pattern groups for detecting and
// masking sensitive data in outgoing email bodies and transcripts.
package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are the patterns compiled into every Masker.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
	description string
}{
	{
		name:        "ssn",
		pattern:     `\b\d{3}-\d{2}-\d{4}\b`,
		replacement: "***-**-****",
		description: "US social security number",
	},
	{
		name:        "credit_card",
		pattern:     `\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`,
		replacement: "****-****-****-****",
		description: "Credit card number",
	},
	{
		name:        "password_assignment",
		pattern:     `(?i)password[:= ]\S*`,
		replacement: "password: ******",
		description: "Inline password assignment",
	},
	{
		name:        "api_key",
		pattern:     `(?i)\b(api[_-]?key|secret[_-]?key|access[_-]?token)[:= ]\S+`,
		replacement: "$1: ******",
		description: "API key or token assignment",
	},
}

// patternGroups names reusable subsets of the builtin patterns.
var patternGroups = map[string][]string{
	"pii":     {"ssn", "credit_card", "password_assignment"},
	"secrets": {"password_assignment", "api_key"},
}

// compileBuiltins compiles the builtin pattern table. Invalid patterns are
// logged and skipped rather than failing startup.
func compileBuiltins() map[string]*CompiledPattern {
	patterns := make(map[string]*CompiledPattern, len(builtinPatterns))
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		patterns[p.name] = &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
			Description: p.description,
		}
	}
	return patterns
}
