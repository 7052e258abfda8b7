// internal/common/errors/errors.go

// Package errors provides standardized error handling for the analysis pipeline.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Schema & normalization errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Model response errors
	ErrCodeEmptyResponse   ErrorCode = "EMPTY_RESPONSE"
	ErrCodeMalformedJSON   ErrorCode = "MALFORMED_JSON"
	ErrCodeSchemaViolation ErrorCode = "SCHEMA_VIOLATION"

	// Catch-all for transport, quota and unexpected model failures.
	// Never carries internal detail; that is logged, not surfaced.
	ErrCodeAnalysisFailed ErrorCode = "ANALYSIS_FAILED"

	// Infrastructure errors
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
	ErrCodePayloadTooLarge    ErrorCode = "PAYLOAD_TOO_LARGE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Field     string    `json:"field,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// AsStandardError unwraps err into a *StandardError when possible.
func AsStandardError(err error) (*StandardError, bool) {
	var se *StandardError
	ok := errors.As(err, &se)
	return se, ok
}

// CodeOf returns the error code of err, or ANALYSIS_FAILED for unknown errors.
func CodeOf(err error) ErrorCode {
	if se, ok := AsStandardError(err); ok {
		return se.Code
	}
	return ErrCodeAnalysisFailed
}

// NewValidationFailedError creates a non-retryable validation error
// identifying the first offending field.
func NewValidationFailedError(field, reason string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   fmt.Sprintf("Validation failed for field '%s': %s", field, reason),
		Field:     field,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyResponseError creates a retryable error for a model reply with no text.
func NewEmptyResponseError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyResponse,
		Message:   "The AI service returned an empty response. Please try again.",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedJSONError creates a retryable error for unparseable model output.
func NewMalformedJSONError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedJSON,
		Message:   "The AI service returned an unreadable response. Please try again.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaViolationError creates a retryable error for model output that
// parsed but failed domain validation.
func NewSchemaViolationError(field, reason string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaViolation,
		Message:   "The AI service returned an incomplete analysis. Please try again.",
		Details:   fmt.Sprintf("field: %s, reason: %s", field, reason),
		Field:     field,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnalysisFailedError creates the generic retryable analysis error.
// The underlying cause is intentionally not included in the message.
func NewAnalysisFailedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAnalysisFailed,
		Message:   "Analysis could not be completed. Please try again in a moment.",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session persistence error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Failed to persist analysis session",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadTooLargeError creates a non-retryable request size error.
func NewPayloadTooLargeError(what string, limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadTooLarge,
		Message:   fmt.Sprintf("%s exceeds the maximum allowed size of %d bytes", what, limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
