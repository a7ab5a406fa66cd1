package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrBackendUnreachable = errors.New("cannot reach marketplace backend")
var ErrSessionNotFound = errors.New("session not found")
var ErrBusy = errors.New("another operation is already in progress")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidTransition = errors.New("invalid order status transition")

// RemoteError is a non-2xx response from the backend, carrying the message
// the backend reported (or a generic fallback when the body had none).
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// NewRemoteError builds a RemoteError, substituting a generic message when the
// backend body carried none.
func NewRemoteError(status int, message string) *RemoteError {
	if message == "" {
		message = "an error occurred, please try again"
	}
	return &RemoteError{StatusCode: status, Message: message}
}

// IsUnauthorized reports whether err is a backend 401/403. During the
// reachability probe this means "server up but not authorized", which is not a
// connectivity fault.
func IsUnauthorized(err error) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.StatusCode == http.StatusUnauthorized || re.StatusCode == http.StatusForbidden
	}
	return false
}
