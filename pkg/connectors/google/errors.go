package google

import (
	"context"
	"errors"
	"time"

	"github.com/sundialhq/maestro/pkg/connectors"
	"google.golang.org/api/googleapi"
)

// mapErr translates a Google API error into the uniform taxonomy.
// Context cancellation and deadline errors pass through untouched so
// callers can distinguish Cancelled/Timeout from provider failures.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		// DNS failures, connection resets and friends are worth retrying.
		return connectors.E(op, connectors.KindTransient, err)
	}

	switch {
	case apiErr.Code == 401:
		return connectors.E(op, connectors.KindAuthExpired, err)
	case apiErr.Code == 429:
		e := connectors.E(op, connectors.KindRateLimited, err)
		e.RetryAfter = 5 * time.Second
		return e
	case apiErr.Code == 403:
		if isRateReason(apiErr) {
			e := connectors.E(op, connectors.KindRateLimited, err)
			e.RetryAfter = 5 * time.Second
			return e
		}
		return connectors.E(op, connectors.KindPermissionDenied, err)
	case apiErr.Code == 404:
		return connectors.E(op, connectors.KindNotFound, err)
	case apiErr.Code >= 500:
		return connectors.E(op, connectors.KindTransient, err)
	default:
		return connectors.E(op, connectors.KindPermanent, err)
	}
}

func isRateReason(apiErr *googleapi.Error) bool {
	for _, item := range apiErr.Errors {
		switch item.Reason {
		case "rateLimitExceeded", "userRateLimitExceeded", "quotaExceeded":
			return true
		}
	}
	return false
}
