package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("name", "required"), FailureValidation},
		{"not found", ErrNotFound, FailureNotFound},
		{"wrapped not found", fmt.Errorf("loading swarm: %w", ErrNotFound), FailureNotFound},
		{"already resolved", ErrAlreadyResolved, FailureAlreadyResolved},
		{"duplicate", ErrAlreadyExists, FailureConflict},
		{"lost race", ErrConcurrentModification, FailureConflict},
		{"storage outage", ErrStorageUnavailable, FailureInternal},
		{"unknown", fmt.Errorf("boom"), FailureInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureKind(tt.err))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrConcurrentModification))
	assert.True(t, Retryable(fmt.Errorf("saving task: %w", ErrStorageUnavailable)))
	assert.False(t, Retryable(ErrNotFound))
	assert.False(t, Retryable(nil))
}

func TestIsValidationError(t *testing.T) {
	err := NewValidationError("key", "required")
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("creating task: %w", err)))
	assert.False(t, IsValidationError(ErrNotFound))
	assert.Contains(t, err.Error(), "key")
}
