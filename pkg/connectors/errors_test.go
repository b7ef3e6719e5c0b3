package connectors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"direct taxonomy error", E("mail.send", KindTransient, nil), KindTransient},
		{"wrapped taxonomy error", fmt.Errorf("outer: %w", E("calendar.list", KindRateLimited, nil)), KindRateLimited},
		{"plain error defaults to permanent", errors.New("boom"), KindPermanent},
		{"nil defaults to permanent", nil, KindPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(E("mail.send", KindTransient, nil)))
	assert.True(t, IsRetryable(E("mail.send", KindRateLimited, nil)))
	assert.False(t, IsRetryable(E("mail.send", KindAuthExpired, nil)))
	assert.False(t, IsRetryable(E("mail.send", KindNotFound, nil)))
	assert.False(t, IsRetryable(errors.New("unclassified")))
}

func TestIsAuth(t *testing.T) {
	assert.True(t, IsAuth(E("mail.list", KindAuthMissing, nil)))
	assert.True(t, IsAuth(E("mail.list", KindAuthExpired, nil)))
	assert.False(t, IsAuth(E("mail.list", KindPermissionDenied, nil)))
	assert.False(t, IsAuth(errors.New("unclassified")))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	inner := errors.New("503 backend unavailable")
	err := E("mail.send", KindTransient, inner)

	assert.Equal(t, "mail.send: transient: 503 backend unavailable", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := E("docs.get", KindNotFound, nil)
	assert.Equal(t, "docs.get: not_found", bare.Error())
}
