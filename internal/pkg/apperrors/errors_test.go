package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewAlreadyExistsError("student S1 already exists")
	wrapped := fmt.Errorf("register student: %w", err)

	assert.True(t, errors.Is(wrapped, ErrResourceAlreadyExists))
	assert.True(t, errors.Is(wrapped, err))
	assert.False(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.Equal(t, "register student: student S1 already exists", wrapped.Error())
}

func TestCustomErrorFallsBackToUnderlyingMessage(t *testing.T) {
	err := NewCustomError(ErrValidationFailed, "")
	assert.Equal(t, "validation failed", err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestIsMatchesAnyTarget(t *testing.T) {
	err := NewResourceNotFoundError("notification n1 not found")

	assert.True(t, Is(err, ErrValidationFailed, ErrInvalidTransition, ErrResourceNotFound))
	assert.False(t, Is(err, ErrValidationFailed, ErrInvalidTransition))
}

func TestCustomErrorBuilders(t *testing.T) {
	err := NewCustomError(ErrBadRequest, "n must be an integer").
		WithCode("VAL_002").
		WithDetails(map[string]interface{}{"n": "abc"})

	assert.Equal(t, "VAL_002", err.Code)
	assert.Equal(t, "abc", err.Details["n"])
	assert.ErrorIs(t, NewBadRequestError("missing filter"), ErrBadRequest)
}
