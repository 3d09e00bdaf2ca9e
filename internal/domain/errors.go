package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an identifier does not resolve to a stored
// course, lesson, assignment, user or progress record. Callers wrap it with
// the entity that was missing and test for it with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrLocked is returned when a lesson is requested before the lesson ahead
// of it in the course has been completed.
var ErrLocked = errors.New("lesson locked")

// ValidationError reports input rejected before it reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
