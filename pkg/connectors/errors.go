// Package connectors defines the capability-shaped interfaces over external
// providers (Mail, Calendar, Docs) and the uniform failure taxonomy the rest
// of the system reasons about. Core code never sees transport codes.
package connectors

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies a provider failure.
type Kind string

const (
	KindAuthMissing      Kind = "auth_missing"
	KindAuthExpired      Kind = "auth_expired"
	KindNotFound         Kind = "not_found"
	KindPermissionDenied Kind = "permission_denied"
	KindRateLimited      Kind = "rate_limited"
	KindTransient        Kind = "transient"
	KindPermanent        Kind = "permanent"
)

// Error is the uniform provider error. Retry decisions are made on Kind,
// never on the wrapped transport error.
type Error struct {
	Kind Kind
	Op   string // e.g. "mail.send", "calendar.list"

	// RetryAfter is a suggested backoff for KindRateLimited; zero otherwise.
	RetryAfter time.Duration

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a taxonomy error.
func E(op string, kind Kind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the taxonomy kind from any error chain.
// Unclassified errors report KindPermanent.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindPermanent
}

// IsRetryable reports whether a bounded retry is permitted for this error.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindTransient, KindRateLimited:
		return true
	}
	return false
}

// IsAuth reports whether the error means the user must (re-)authenticate.
func IsAuth(err error) bool {
	switch KindOf(err) {
	case KindAuthMissing, KindAuthExpired:
		return true
	}
	return false
}
