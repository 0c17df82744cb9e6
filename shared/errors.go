package shared

import (
	"errors"
	"net/http"
)

// AppError is the typed error kind every service surfaces instead of raw
// store errors. The HTTP boundary maps StatusCode onto the response envelope;
// Err carries the underlying cause for logging and is never returned to the
// caller.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message, Err: err}
}

func NewNotFoundError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message, Err: err}
}

func NewRateLimitError(message string) *AppError {
	return &AppError{StatusCode: http.StatusTooManyRequests, Message: message}
}

func NewInternalError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// GetAppError unwraps err down to an AppError if one is in the chain.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
