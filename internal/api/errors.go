package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork is returned (wrapped) when no HTTP response was received at all:
// connection refused, DNS failure, timeout. The server-side taxonomy below
// never applies to these.
var ErrNetwork = errors.New("server unreachable")

// ErrResponseTooLarge is returned when a response body exceeds maxResponseBody.
var ErrResponseTooLarge = errors.New("response body too large")

// ErrInvalidBaseURL is returned when the base URL is empty or malformed.
var ErrInvalidBaseURL = errors.New("invalid base URL: must be non-empty with scheme and host")

// Error represents a response the backend answered with a 4xx/5xx status.
// Message carries the `message` (or `error`) field of the body when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 for network-level
// failures and non-API errors.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the backend-provided message carried by err, or the
// empty string when there is none.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsUnauthenticated reports a 401: the session expired or was never
// established. Callers must navigate to the login screen.
func IsUnauthenticated(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsFeatureDisabled reports a 402: the tenant's subscription lapsed and the
// feature is gated. Callers surface a warning and keep whatever rows they
// already have.
func IsFeatureDisabled(err error) bool {
	return StatusOf(err) == http.StatusPaymentRequired
}

// IsNotFound reports a 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsValidation reports a 400: the backend rejected the payload. The body
// message is user-facing.
func IsValidation(err error) bool {
	return StatusOf(err) == http.StatusBadRequest
}

// IsServerError reports a 5xx.
func IsServerError(err error) bool {
	return StatusOf(err) >= 500
}

// IsNetwork reports a transport-level failure with no HTTP response.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
