package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized marks an HTTP 401: the credential is invalid or
	// expired. The response-inspection stage has already cleared the
	// credential store by the time this error reaches the caller.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden marks an HTTP 403. Treated as an authorization
	// failure alongside [ErrUnauthorized].
	ErrForbidden = errors.New("access forbidden")

	// ErrValidation marks a structured 4xx rejection of the request
	// payload. The concrete error is a [*ValidationError] carrying the
	// server's message and optional field-keyed details.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrServer marks a 5xx response or a malformed server reply.
	ErrServer = errors.New("server failure")
)

// ValidationError is a structured 4xx rejection. Message is the server's
// error text, preserved verbatim so the UI can show the precise reason
// without re-deriving it; Details is the optional field-keyed validation
// map (e.g. password policy violations keyed by "password").
type ValidationError struct {
	Status  int
	Message string
	Details map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) classify the failure.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsAuthFailure reports whether err is an authorization failure (401/403).
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
