// Package apierr defines the error kinds surfaced by the listing pipeline.
// Typed errors let the HTTP boundary map failures to status codes with
// errors.As/errors.Is instead of string matching.
package apierr

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is checks.
var (
	// ErrInvalidInput indicates malformed or missing caller input
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamFailed indicates a non-success response from the upstream API
	ErrUpstreamFailed = errors.New("upstream request failed")

	// ErrRateLimited indicates the upstream rejected the call with 429
	ErrRateLimited = errors.New("rate limited")
)

// ValidationError represents a validation failure of caller input.
// It maps to a client error (400) at the HTTP boundary and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError represents a non-success response from the upstream API.
// The status code is embedded in the message; the pipeline never retries,
// a single failed call propagates immediately.
type UpstreamError struct {
	StatusCode int
	Endpoint   string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("upstream responded with status %d for %s", e.StatusCode, e.Endpoint)
	}
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

// Is implements errors.Is support
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUpstreamFailed:
		return true
	case ErrRateLimited:
		return e.StatusCode == 429
	}

	return false
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(statusCode int, endpoint string) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, Endpoint: endpoint}
}
