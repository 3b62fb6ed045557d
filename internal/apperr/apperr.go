// Package apperr defines the error kinds the HTTP layer knows how to map to
// status codes. Anything else that bubbles up is treated as an internal error.
package apperr

import "errors"

var (
	// ErrConflict marks duplicate-resource failures (e.g. registering a
	// username or email that is already taken).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized marks failed authentication: bad credentials or a
	// missing/invalid/expired token. Callers must not attach detail that
	// distinguishes unknown user from wrong password.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a resource that does not exist for the caller. An
	// existing portfolio owned by someone else is NotFound, not
	// Unauthorized; the ownership check doubles as the existence check.
	ErrNotFound = errors.New("not found")

	// ErrInvalid marks a malformed or unparseable request body.
	ErrInvalid = errors.New("invalid request")
)

// ErrValidation reports a single bad field in a request payload.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ErrValidation) Unwrap() error {
	return ErrInvalid
}

// IsKind reports whether err wraps the given sentinel kind.
func IsKind(err, kind error) bool {
	return errors.Is(err, kind)
}
