// Package errors provides error types and handling for ecs-state-check.
// Every failure is fatal for the invocation; the codes let callers and logs tell the stages apart.
package errors

import (
	"errors"
	"fmt"
)

// AppError represents an application error tagged with the pipeline stage that produced it.
type AppError struct {
	// Code is an error code string for programmatic handling
	Code string
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with AppError.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	ErrCodeInvalidEvent        = "INVALID_EVENT"
	ErrCodeCredentials         = "CREDENTIALS_ERROR"
	ErrCodeAccountLookup       = "ACCOUNT_LOOKUP_ERROR"
	ErrCodeRegistry            = "REGISTRY_ERROR"
	ErrCodeTaskNotFound        = "TASK_NOT_FOUND"
	ErrCodeNotificationFailure = "NOTIFICATION_ERROR"
	ErrCodeConfig              = "CONFIG_ERROR"
)

// New creates an AppError with the given code.
func New(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Convenience constructors for common errors

// ErrInvalidEvent creates an error for events that cannot be parsed or fail validation.
func ErrInvalidEvent(message string, cause error) *AppError {
	return New(ErrCodeInvalidEvent, message, cause)
}

// ErrCredentials creates an error for caller identity or role assumption failures.
func ErrCredentials(message string, cause error) *AppError {
	return New(ErrCodeCredentials, message, cause)
}

// ErrAccountLookup creates an error for account alias lookup failures.
func ErrAccountLookup(message string, cause error) *AppError {
	return New(ErrCodeAccountLookup, message, cause)
}

// ErrRegistry creates an error for task registry query failures.
func ErrRegistry(message string, cause error) *AppError {
	return New(ErrCodeRegistry, message, cause)
}

// ErrTaskNotFound creates an error for registry lookups that returned no task.
func ErrTaskNotFound(message string, cause error) *AppError {
	return New(ErrCodeTaskNotFound, message, cause)
}

// ErrNotification creates an error for webhook delivery failures.
func ErrNotification(message string, cause error) *AppError {
	return New(ErrCodeNotificationFailure, message, cause)
}

// ErrConfig creates an error for missing or invalid configuration.
func ErrConfig(message string, cause error) *AppError {
	return New(ErrCodeConfig, message, cause)
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an AppError.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetErrorDetails extracts detailed error information including the underlying cause.
// Returns the underlying error message if available, otherwise returns the main error message.
func GetErrorDetails(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			return appErr.Cause.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
