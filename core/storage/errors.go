package storage

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrURLNotConfigured is returned when the storage base URL is missing.
	ErrURLNotConfigured = errors.New("storage: SUPABASE_URL not configured")
	// ErrServiceKeyNotConfigured is returned when the privileged credential is missing.
	ErrServiceKeyNotConfigured = errors.New("storage: service credential not available in server environment")
	// ErrUnknownDriver is returned for an unsupported driver name.
	ErrUnknownDriver = errors.New("storage: unknown driver")
	// ErrNotFound matches any *Error carrying a 404 status.
	ErrNotFound = errors.New("storage: object not found")
)

// Error is a structured error reported by the storage backend.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("storage: %s (status %d): %s", e.Code, e.StatusCode, msg)
	}
	return fmt.Sprintf("storage: status %d: %s", e.StatusCode, msg)
}

// Is makes errors.Is(err, ErrNotFound) true for 404 errors.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
