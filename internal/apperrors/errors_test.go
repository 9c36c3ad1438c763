package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesSentinels(t *testing.T) {
	validation := NewValidationError("size must be a number")
	assert.True(t, errors.Is(validation, ErrValidation))
	assert.Equal(t, http.StatusBadRequest, validation.Code)
	assert.Equal(t, "size must be a number: validation error", validation.Error())

	notFound := NewNotFoundError("batch not found")
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrValidation))

	wrapped := fmt.Errorf("failed to record batch: %w", validation)
	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "size must be a number", appErr.Message)
}

func TestNewAppErrorWithoutCause(t *testing.T) {
	err := NewAppError(http.StatusInternalServerError, "store unavailable", nil)
	assert.Equal(t, "store unavailable", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewFieldValidationError(t *testing.T) {
	err := NewFieldValidationError(map[string]string{
		"size": "Total volume must be a number",
		"abv":  "ABV% must be a number",
	})
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "invalid input: abv, size", err.Message)
	assert.Equal(t, "ABV% must be a number", err.Fields["abv"])
}
