package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never produced a response: the
	// backend is unreachable or the call timed out.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthenticated means an operation that needs a current user found
	// none. Callers resolve it by steering the user to login, never by
	// showing it as a form error.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrForbidden means the current user lacks the role an operation
	// requires.
	ErrForbidden = errors.New("operation not allowed")
)

// Error is a business failure: a well-formed response in which the server
// reports that the operation did not happen. Message carries the server's
// wording verbatim and may be empty.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (HTTP %d)", e.Status)
	}
	return e.Message
}

// ServerMessage extracts the verbatim server message from err, or returns
// fallback when err is not a business failure or carries no message.
func ServerMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
