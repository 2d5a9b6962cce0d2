package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrAlreadyResolved is returned when resolving a non-pending escalation
	ErrAlreadyResolved = errors.New("escalation already resolved")

	// ErrConcurrentModification is returned when an optimistic update lost the race
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrStorageUnavailable is returned when the database round-trip failed
	// after the retry budget; callers surface it as 503.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Failure kinds for structured API failure records. Clients switch on the
// kind instead of parsing message text.
const (
	FailureValidation      = "validation"
	FailureNotFound        = "not_found"
	FailureConflict        = "conflict"
	FailureAlreadyResolved = "already_resolved"
	FailureInternal        = "internal"
)

// FailureKind buckets a service error into the failure-record taxonomy.
// Storage outages report as internal: the caller may retry, but the cause
// is ours, not theirs.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidationError(err):
		return FailureValidation
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	case errors.Is(err, ErrAlreadyResolved):
		return FailureAlreadyResolved
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConcurrentModification):
		return FailureConflict
	default:
		return FailureInternal
	}
}

// Retryable reports whether a service error is worth retrying as-is: the
// write lost an optimistic race or the store was briefly unreachable.
func Retryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrStorageUnavailable)
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
