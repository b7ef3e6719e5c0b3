package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	m := NewMasker()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "clean text",
			text:     "Let's meet on Thursday to discuss the roadmap.",
			expected: nil,
		},
		{
			name:     "ssn",
			text:     "My SSN is 123-45-6789.",
			expected: []string{"ssn"},
		},
		{
			name:     "credit card with dashes",
			text:     "Card: 4111-1111-1111-1111",
			expected: []string{"credit_card"},
		},
		{
			name:     "credit card with spaces",
			text:     "Card: 4111 1111 1111 1111",
			expected: []string{"credit_card"},
		},
		{
			name:     "password assignment",
			text:     "password=sup3rs3cret",
			expected: []string{"password_assignment"},
		},
		{
			name:     "api key assignment",
			text:     "api_key=sk-abc123def",
			expected: []string{"api_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Detect(tt.text))
		})
	}
}

func TestDetectGroup(t *testing.T) {
	m := NewMasker()

	t.Run("pii group ignores api keys", func(t *testing.T) {
		hits := m.DetectGroup("pii", "access_token=tok_12345")
		assert.Empty(t, hits)
	})

	t.Run("secrets group catches api keys", func(t *testing.T) {
		hits := m.DetectGroup("secrets", "access_token=tok_12345")
		assert.Equal(t, []string{"api_key"}, hits)
	})

	t.Run("unknown group matches nothing", func(t *testing.T) {
		assert.Empty(t, m.DetectGroup("nonexistent", "password=abc"))
	})
}

func TestMask(t *testing.T) {
	m := NewMasker()

	masked := m.Mask("SSN 123-45-6789 and password=hunter2 in one line")
	assert.NotContains(t, masked, "123-45-6789")
	assert.NotContains(t, masked, "hunter2")
	assert.Contains(t, masked, "***-**-****")
	assert.Contains(t, masked, "password: ******")
}
