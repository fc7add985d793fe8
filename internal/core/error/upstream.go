package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// WrapUpstream records a non-success answer from a third-party API. A 429 keeps
// its status so callers can tell rate limiting apart from other failures.
func WrapUpstream(service string, status int, err error) error {
	if err == nil {
		err = fmt.Errorf("%s answered %d", service, status)
	}
	if status == http.StatusTooManyRequests {
		return New(err, http.StatusTooManyRequests, RateLimitedMessage)
	}
	return New(err, http.StatusBadGateway, UpstreamErrorMessage)
}

// IsRateLimited reports whether err came from an upstream 429.
func IsRateLimited(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Status == http.StatusTooManyRequests
}
