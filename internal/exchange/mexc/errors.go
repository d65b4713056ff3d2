package mexc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-success HTTP response from the MEXC API,
// carrying the status code and the verbatim response body.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("MEXC API error %d: %s", e.Status, e.Body)
}

// NewAPIError creates an APIError from a response status and body.
func NewAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Body: string(body)}
}

// IsRetryableError reports whether an error may be retried. Only
// transport-level failures qualify: once the exchange has returned a
// status, retrying could duplicate a conversion.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// IsAuthenticationError checks if the error is a credential or
// signature rejection.
func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// IsRateLimitError checks if the error is due to rate limiting.
func IsRateLimitError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests
	}
	return false
}
