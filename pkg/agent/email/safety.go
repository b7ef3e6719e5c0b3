package email

import (
	"regexp"
	"strings"

	"github.com/sundialhq/maestro/pkg/masking"
)

// CheckResult is the outcome of one safety check.
type CheckResult struct {
	Passed          bool     `json:"passed"`
	Flags           []string `json:"flags,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// SafetyReport aggregates the five checks. Passed is the AND of the pii,
// toxic, recipients and subject checks; length is advisory only.
type SafetyReport struct {
	Passed    bool                   `json:"passed"`
	RiskLevel string                 `json:"risk_level"`
	Checks    map[string]CheckResult `json:"checks"`
}

var recipientRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// blockedDomains are test/example domains that must never receive real mail.
var blockedDomains = []string{"example.com", "example.org", "example.net", "test.com", "invalid"}

var toxicWords = []string{
	"idiot", "stupid", "hate", "moron", "dumb", "shut up", "worthless", "pathetic",
}

var spamWords = []string{
	"free money", "act now", "limited time", "click here", "winner",
	"congratulations", "urgent", "100% free", "no obligation",
}

// Checker runs draft safety checks. Pattern matching for PII and secrets
// is delegated to the masking package.
type Checker struct {
	masker *masking.Masker
}

// NewChecker creates a Checker with the builtin masking patterns.
func NewChecker() *Checker {
	return &Checker{masker: masking.NewMasker()}
}

// Check runs all five checks and aggregates risk.
func (c *Checker) Check(to string, cc, bcc []string, subject, body string) *SafetyReport {
	checks := map[string]CheckResult{
		"pii":        c.checkPII(subject + "\n" + body),
		"toxic":      c.checkToxic(subject, body),
		"recipients": c.checkRecipients(to, cc, bcc),
		"length":     c.checkLength(body),
		"subject":    c.checkSubject(subject),
	}

	failed := 0
	flags := 0
	for _, result := range checks {
		if !result.Passed {
			failed++
		}
		flags += len(result.Flags)
	}

	risk := "low"
	switch {
	case failed >= 2 || flags >= 5:
		risk = "high"
	case failed == 1 || flags >= 3:
		risk = "medium"
	}

	passed := checks["pii"].Passed && checks["toxic"].Passed &&
		checks["recipients"].Passed && checks["subject"].Passed

	return &SafetyReport{Passed: passed, RiskLevel: risk, Checks: checks}
}

// checkPII scans for SSNs, card numbers and password assignments.
func (c *Checker) checkPII(text string) CheckResult {
	hits := c.masker.DetectGroup("pii", text)
	hits = append(hits, c.masker.DetectGroup("secrets", text)...)
	if len(hits) == 0 {
		return CheckResult{Passed: true}
	}
	return CheckResult{
		Passed:          false,
		Flags:           hits,
		Recommendations: []string{"remove personal or secret data before sending"},
	}
}

func (c *Checker) checkToxic(subject, body string) CheckResult {
	var result CheckResult
	result.Passed = true

	lower := strings.ToLower(subject + " " + body)
	for _, word := range toxicWords {
		if strings.Contains(lower, word) {
			result.Passed = false
			result.Flags = append(result.Flags, "toxic_language: "+word)
		}
	}

	if len(subject) > 10 && subject == strings.ToUpper(subject) && strings.ToLower(subject) != subject {
		result.Flags = append(result.Flags, "all_caps_subject")
		result.Recommendations = append(result.Recommendations, "avoid all-caps subjects")
	}

	if !result.Passed {
		result.Recommendations = append(result.Recommendations, "soften the tone before sending")
	}
	return result
}

func (c *Checker) checkRecipients(to string, cc, bcc []string) CheckResult {
	var result CheckResult
	result.Passed = true

	if !recipientRegex.MatchString(to) {
		result.Passed = false
		result.Flags = append(result.Flags, "invalid_recipient: "+to)
		result.Recommendations = append(result.Recommendations, "fix the recipient address")
	}

	domain := ""
	if at := strings.LastIndex(to, "@"); at >= 0 {
		domain = strings.ToLower(to[at+1:])
	}
	for _, blocked := range blockedDomains {
		if domain == blocked {
			result.Passed = false
			result.Flags = append(result.Flags, "blocked_domain: "+domain)
		}
	}

	total := 1 + len(cc) + len(bcc)
	if total > 10 {
		result.Flags = append(result.Flags, "many_recipients")
		result.Recommendations = append(result.Recommendations, "confirm all recipients are intended")
	}
	return result
}

// checkLength never fails the draft; extremes are advisory.
func (c *Checker) checkLength(body string) CheckResult {
	result := CheckResult{Passed: true}
	switch {
	case len(body) < 10:
		result.Flags = append(result.Flags, "very_short_body")
		result.Recommendations = append(result.Recommendations, "consider adding more context")
	case len(body) > 5000:
		result.Flags = append(result.Flags, "very_long_body")
		result.Recommendations = append(result.Recommendations, "consider shortening the email")
	}
	return result
}

func (c *Checker) checkSubject(subject string) CheckResult {
	var result CheckResult
	result.Passed = true

	if strings.TrimSpace(subject) == "" {
		result.Passed = false
		result.Flags = append(result.Flags, "empty_subject")
		result.Recommendations = append(result.Recommendations, "add a subject line")
		return result
	}
	if len(subject) < 5 {
		result.Flags = append(result.Flags, "short_subject")
	}
	if len(subject) > 100 {
		result.Flags = append(result.Flags, "long_subject")
	}

	lower := strings.ToLower(subject)
	for _, word := range spamWords {
		if strings.Contains(lower, word) {
			result.Flags = append(result.Flags, "spam_word: "+word)
			result.Recommendations = append(result.Recommendations, "rephrase spam-like wording")
		}
	}
	return result
}

// toMap converts the report for persistence in the draft record.
func (r *SafetyReport) toMap() map[string]any {
	checks := make(map[string]any, len(r.Checks))
	for name, c := range r.Checks {
		checks[name] = map[string]any{
			"passed":          c.Passed,
			"flags":           c.Flags,
			"recommendations": c.Recommendations,
		}
	}
	return map[string]any{
		"passed":     r.Passed,
		"risk_level": r.RiskLevel,
		"checks":     checks,
	}
}
