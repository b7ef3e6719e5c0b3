package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMailQuery(t *testing.T) {
	tests := []struct {
		name     string
		request  string
		expected string
	}{
		{
			name:     "unread predicate",
			request:  "show me my unread emails",
			expected: "is:unread",
		},
		{
			name:     "important predicate",
			request:  "any important mail?",
			expected: "is:important",
		},
		{
			name:     "sender by address",
			request:  "emails from bob@corp.io",
			expected: "from:bob@corp.io",
		},
		{
			name:     "sender by name",
			request:  "check my emails from alice",
			expected: "from:alice",
		},
		{
			name:     "free text terms are OR-joined",
			request:  "find emails about the budget proposal",
			expected: "(budget OR proposal)",
		},
		{
			name:     "single term stays bare",
			request:  "emails about invoices",
			expected: "invoices",
		},
		{
			name:     "predicates combine with terms",
			request:  "unread emails from alice about the offsite",
			expected: "is:unread from:alice offsite",
		},
		{
			name:     "all stop words yields empty query",
			request:  "show me my emails please",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildMailQuery(tt.request))
		})
	}
}

func TestClassifyByKeyword(t *testing.T) {
	tests := []struct {
		request  string
		expected Action
	}{
		{"send it", ActionSend},
		{"go ahead and send the email", ActionSend},
		{"approve the draft", ActionApprove},
		{"reject that draft", ActionApprove},
		{"change the subject to Q2 update", ActionUpdate},
		{"revise the body to be friendlier", ActionUpdate},
		{"draft an email to bob about lunch", ActionDraft},
		{"compose a note to the team", ActionDraft},
		{"write an email to alice", ActionDraft},
		{"read the latest email from bob", ActionRead},
		{"open the first one", ActionRead},
		{"check my email", ActionList},
		{"any emails from the vendor?", ActionList},
		{"what's in my inbox", ActionList},
		// Ambiguous requests default to drafting.
		{"something about email", ActionDraft},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyByKeyword(tt.request))
		})
	}
}
