package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanDraft(t *testing.T) {
	checker := NewChecker()

	report := checker.Check("alice@corp.io", nil, nil,
		"Quarterly planning sync",
		"Hi Alice, could we meet Thursday to walk through the Q2 roadmap? Thanks!")

	assert.True(t, report.Passed)
	assert.Equal(t, "low", report.RiskLevel)
	for name, check := range report.Checks {
		assert.True(t, check.Passed, "check %s should pass", name)
	}
}

func TestCheckPII(t *testing.T) {
	checker := NewChecker()

	t.Run("ssn fails the draft", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil,
			"Your records", "Your SSN is 123-45-6789 as requested.")
		assert.False(t, report.Passed)
		assert.False(t, report.Checks["pii"].Passed)
	})

	t.Run("password assignment fails the draft", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil,
			"Credentials", "The login is admin and password=hunter2secret for staging.")
		assert.False(t, report.Passed)
		assert.False(t, report.Checks["pii"].Passed)
	})
}

func TestCheckToxic(t *testing.T) {
	checker := NewChecker()

	t.Run("toxic wording fails", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil,
			"Feedback", "Honestly this plan is stupid and you should feel bad.")
		assert.False(t, report.Checks["toxic"].Passed)
		assert.False(t, report.Passed)
	})

	t.Run("all-caps subject flags without failing", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil,
			"PLEASE READ THIS NOW", "A perfectly calm and reasonable body of text.")
		toxic := report.Checks["toxic"]
		assert.True(t, toxic.Passed)
		assert.Contains(t, toxic.Flags, "all_caps_subject")
	})
}

func TestCheckRecipients(t *testing.T) {
	checker := NewChecker()

	t.Run("malformed address fails", func(t *testing.T) {
		report := checker.Check("not-an-address", nil, nil,
			"Hello there", "A reasonable body with enough words in it.")
		assert.False(t, report.Checks["recipients"].Passed)
		assert.False(t, report.Passed)
	})

	t.Run("blocked domain fails", func(t *testing.T) {
		report := checker.Check("someone@example.com", nil, nil,
			"Hello there", "A reasonable body with enough words in it.")
		recipients := report.Checks["recipients"]
		assert.False(t, recipients.Passed)
		assert.Contains(t, strings.Join(recipients.Flags, " "), "blocked_domain")
	})

	t.Run("many recipients is advisory only", func(t *testing.T) {
		cc := make([]string, 12)
		for i := range cc {
			cc[i] = "person@corp.io"
		}
		report := checker.Check("alice@corp.io", cc, nil,
			"Team update", "A reasonable body with enough words in it.")
		recipients := report.Checks["recipients"]
		assert.True(t, recipients.Passed)
		assert.Contains(t, recipients.Flags, "many_recipients")
	})
}

func TestCheckLengthAndSubject(t *testing.T) {
	checker := NewChecker()

	t.Run("short body never fails the draft", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil, "Quick one", "ok")
		length := report.Checks["length"]
		assert.True(t, length.Passed)
		assert.Contains(t, length.Flags, "very_short_body")
		assert.True(t, report.Passed)
	})

	t.Run("empty subject fails", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil, "  ",
			"A reasonable body with enough words in it.")
		assert.False(t, report.Checks["subject"].Passed)
		assert.False(t, report.Passed)
	})

	t.Run("spam wording flags without failing", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil,
			"Congratulations winner, act now",
			"A reasonable body with enough words in it.")
		subject := report.Checks["subject"]
		assert.True(t, subject.Passed)
		assert.GreaterOrEqual(t, len(subject.Flags), 2)
	})
}

func TestRiskAggregation(t *testing.T) {
	checker := NewChecker()

	t.Run("one failed check is medium risk", func(t *testing.T) {
		report := checker.Check("alice@corp.io", nil, nil, "",
			"A reasonable body with enough words in it.")
		require.False(t, report.Passed)
		assert.Equal(t, "medium", report.RiskLevel)
	})

	t.Run("two failed checks are high risk", func(t *testing.T) {
		report := checker.Check("broken-address", nil, nil, "",
			"A reasonable body with enough words in it.")
		assert.False(t, report.Passed)
		assert.Equal(t, "high", report.RiskLevel)
	})
}

func TestReportToMap(t *testing.T) {
	checker := NewChecker()
	report := checker.Check("alice@corp.io", nil, nil,
		"Quarterly planning sync",
		"Hi Alice, could we meet Thursday to walk through the Q2 roadmap? Thanks!")

	m := report.toMap()
	assert.Equal(t, true, m["passed"])
	assert.Equal(t, "low", m["risk_level"])
	checks, ok := m["checks"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, checks, 5)
}
