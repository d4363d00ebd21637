// Package errors provides application-level error types and utilities.
// It defines the error taxonomy used across the bot: configuration,
// location, validation, not found, platform, and internal errors.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration covers missing per-guild setup (intake channel,
	// moderator role, archive channel). User-visible, never retried.
	ErrorTypeConfiguration ErrorType = "configuration_error"
	// ErrorTypeLocation covers commands issued in the wrong channel
	// (ticket outside the intake channel, finish outside a ticket channel).
	ErrorTypeLocation   ErrorType = "location_error"
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	// ErrorTypePlatform covers failures of Discord API calls.
	ErrorTypePlatform ErrorType = "platform_error"
	ErrorTypeInternal ErrorType = "internal_error"
)

// AppError represents an application error with additional context.
// For configuration and location errors, Message is the exact text
// replied to the invoking user.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string, details ...string) *AppError {
	return newError(ErrorTypeConfiguration, message, details...)
}

// NewLocationError creates a new location error
func NewLocationError(message string, details ...string) *AppError {
	return newError(ErrorTypeLocation, message, details...)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, message, details...)
}

// NewPlatformError creates a new platform error
func NewPlatformError(message string, details ...string) *AppError {
	return newError(ErrorTypePlatform, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, message, details...)
}

func newError(errType ErrorType, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Details: detail,
	}
}

// GetAppError extracts an AppError from an error chain, if present
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Type == errType
}

// IsUserFacing reports whether the error message should be relayed to the
// invoking user verbatim. Platform and internal errors are surfaced
// generically instead.
func IsUserFacing(err error) bool {
	appErr, ok := GetAppError(err)
	if !ok {
		return false
	}
	switch appErr.Type {
	case ErrorTypeConfiguration, ErrorTypeLocation, ErrorTypeValidation, ErrorTypeNotFound:
		return true
	}
	return false
}
