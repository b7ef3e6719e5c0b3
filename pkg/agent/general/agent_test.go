package general

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		request  string
		expected Category
	}{
		{"help me organize my todo list", CategoryTaskManagement},
		{"remind me to call the dentist", CategoryTaskManagement},
		{"prioritize these items for me", CategoryTaskManagement},
		{"build a roadmap for the migration", CategoryPlanning},
		{"I need a plan for next quarter", CategoryPlanning},
		{"what is the capital of France", CategoryQuestionAnswer},
		{"explain kubernetes to me", CategoryQuestionAnswer},
		{"is this safe?", CategoryQuestionAnswer},
		{"write me a haiku", CategoryGeneral},
		{"", CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.request))
		})
	}
}
