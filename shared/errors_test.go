package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorStatusCodes(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, http.StatusBadRequest, NewBadRequestError(cause, "bad").StatusCode)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError(cause, "missing").StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, NewRateLimitError("slow down").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError(cause, "oops").StatusCode)
}

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError(errors.New("no row"), "Visitor not found")

	found, ok := GetAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, "Visitor not found", found.Message)

	wrapped := fmt.Errorf("handler: %w", appErr)
	found, ok = GetAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, found.StatusCode)

	_, ok = GetAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("constraint violated")
	appErr := NewInternalError(cause, "oops")

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, "constraint violated", appErr.Error())
	assert.Equal(t, "slow down", NewRateLimitError("slow down").Error())
}
