// Package errors defines custom error types for randomwall
package errors

import (
	"errors"
	"fmt"
)

// Application error types
var (
	ErrNoWallpapers    = errors.New("no available wallpapers found in directory")
	ErrDownloadFailed  = errors.New("failed to download wallpaper")
	ErrAPIRequest      = errors.New("API request failed")
	ErrInvalidResponse = errors.New("invalid API response")
	ErrUnknownSource   = errors.New("unknown wallpaper source")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrFileOperation   = errors.New("file operation failed")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%s': %s", e.Field, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

// APIError represents an API-related error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e APIError) Error() string {
	return fmt.Sprintf("API error at %s: status %d - %s", e.Endpoint, e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrAPIRequest.
func (e APIError) Unwrap() error {
	return ErrAPIRequest
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, message string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewAPIError creates a new API error
func NewAPIError(endpoint string, statusCode int, message string) error {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}
