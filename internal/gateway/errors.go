package gateway

import (
	"errors"
	"fmt"
)

// ErrSessionExpired marks any call the backend rejected as
// unauthenticated. The page layer turns it into a hard redirect to the
// login entry point.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx backend response other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// ErrorMessage extracts the backend-supplied message from err, falling
// back to the given generic message.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
