package lib

import (
	"errors"
	"fmt"
)

// Order flow errors. All three end the flow in the Failed state.
var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrTransportFailure  = errors.New("transport failure")
	ErrMalformedResponse = errors.New("malformed response")
)

var (
	ErrInvalidOrder = errors.New("invalid order")
	ErrNotFound     = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountActionRequired means the credentials are right but the account
	// must be confirmed or its password reset first.
	ErrAccountActionRequired = errors.New("account action required")
)
)

// StatusError is returned when the remote API answers with a non-success status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrTransportFailure
}

func IsNotFound(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == 404
	}
	return errors.Is(err, ErrNotFound)
}
