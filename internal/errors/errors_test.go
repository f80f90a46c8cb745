package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeCredentials,
				Message: "failed to assume role",
				Cause:   errors.New("AccessDenied"),
			},
			expected: "failed to assume role: AccessDenied",
		},
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeTaskNotFound,
				Message: "task not found",
			},
			expected: "task not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := ErrRegistry("describe tasks failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		target   error
		expected bool
	}{
		{
			name:     "same error code matches",
			err:      ErrTaskNotFound("task t1 not found", nil),
			target:   &AppError{Code: ErrCodeTaskNotFound},
			expected: true,
		},
		{
			name:     "different error code does not match",
			err:      ErrTaskNotFound("task t1 not found", nil),
			target:   &AppError{Code: ErrCodeRegistry},
			expected: false,
		},
		{
			name:     "empty code never matches",
			err:      &AppError{Message: "no code"},
			target:   &AppError{},
			expected: false,
		},
		{
			name:     "non AppError target",
			err:      ErrConfig("bad config", nil),
			target:   errors.New("bad config"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Is(tt.target))
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{name: "invalid event", err: ErrInvalidEvent("m", cause), code: ErrCodeInvalidEvent},
		{name: "credentials", err: ErrCredentials("m", cause), code: ErrCodeCredentials},
		{name: "account lookup", err: ErrAccountLookup("m", cause), code: ErrCodeAccountLookup},
		{name: "registry", err: ErrRegistry("m", cause), code: ErrCodeRegistry},
		{name: "task not found", err: ErrTaskNotFound("m", cause), code: ErrCodeTaskNotFound},
		{name: "notification", err: ErrNotification("m", cause), code: ErrCodeNotificationFailure},
		{name: "config", err: ErrConfig("m", cause), code: ErrCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, "m", tt.err.Message)
			assert.Equal(t, cause, tt.err.Cause)
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrNotification("webhook returned 500", nil))

	assert.Equal(t, ErrCodeNotificationFailure, GetErrorCode(wrapped))
	assert.Empty(t, GetErrorCode(errors.New("plain")))
}

func TestGetErrorMessage(t *testing.T) {
	err := ErrCredentials("failed to assume role", errors.New("AccessDenied"))

	assert.Equal(t, "failed to assume role", GetErrorMessage(err))
	assert.Equal(t, "plain", GetErrorMessage(errors.New("plain")))
}

func TestGetErrorDetails(t *testing.T) {
	withCause := ErrCredentials("failed to assume role", errors.New("AccessDenied"))
	withoutCause := ErrTaskNotFound("task not found", nil)

	assert.Equal(t, "AccessDenied", GetErrorDetails(withCause))
	assert.Equal(t, "task not found", GetErrorDetails(withoutCause))
	assert.Equal(t, "plain", GetErrorDetails(errors.New("plain")))
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrRegistry("describe failed", nil))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeRegistry, appErr.Code)
}
