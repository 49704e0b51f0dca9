package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the service layer. Handlers map them to HTTP
// statuses with errors.Is / errors.As; the service never recovers from
// them locally.
var (
	// ErrNotFound means the referenced point or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the acting user does not own the point it is
	// trying to mutate.
	ErrForbidden = errors.New("forbidden")

	// ErrStorage wraps repository failures, including conflicting
	// concurrent mutations. Transport detail stays out of the message.
	ErrStorage = errors.New("storage error")
)

// ValidationError reports an invariant violation on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
