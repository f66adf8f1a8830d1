package domain

import (
	"fmt"
	"net/http"
)

// AppErrorCode represents a machine-readable error code for API responses.
type AppErrorCode string

const (
	// ErrCodeNoImageField indicates the multipart body carried no "image" field.
	ErrCodeNoImageField AppErrorCode = "NO_IMAGE_FIELD"
	// ErrCodeMalformedStream indicates a framing error while reading the upload.
	ErrCodeMalformedStream AppErrorCode = "MALFORMED_STREAM"
	// ErrCodeIOFailure indicates a storage allocation, write, flush, read, or delete failure.
	ErrCodeIOFailure AppErrorCode = "IO_FAILURE"
	// ErrCodeUnreadableImage indicates the uploaded bytes could not be decoded.
	ErrCodeUnreadableImage AppErrorCode = "UNREADABLE_IMAGE"
	// ErrCodeEncodeFailure indicates re-encoding the binarized image failed.
	ErrCodeEncodeFailure AppErrorCode = "ENCODE_FAILURE"
	// ErrCodeRequestTooLarge indicates the request body exceeds the upload cap.
	ErrCodeRequestTooLarge AppErrorCode = "REQUEST_TOO_LARGE"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal AppErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with context for API responses.
type AppError struct {
	// Machine-readable error code
	Code AppErrorCode `json:"code"`

	// Human-readable error message
	Message string `json:"message"`

	// HTTP status code
	StatusCode int `json:"-"`

	// Additional error details
	Details map[string]interface{} `json:"details,omitempty"`

	// Original error
	Err error `json:"-"`
}

// NewAppError creates a new application error.
func NewAppError(code AppErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: GetHTTPStatus(code),
	}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	if e.Message == "" && err != nil {
		e.Message = err.Error()
	}
	return e
}

// WithDetails adds additional details to error.
func (e *AppError) WithDetails(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPStatus maps error code to HTTP status.
func GetHTTPStatus(code AppErrorCode) int {
	switch code {
	case ErrCodeNoImageField, ErrCodeMalformedStream:
		return http.StatusBadRequest
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeIOFailure, ErrCodeUnreadableImage, ErrCodeEncodeFailure, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
