package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidRole      = errors.New("invalid role")
)

// Resource errors by entity, all matching ErrResourceNotFound through
// errors.Is.
var (
	ErrStudentNotFound   = fmt.Errorf("student: %w", ErrResourceNotFound)
	ErrRoomNotFound      = fmt.Errorf("room: %w", ErrResourceNotFound)
	ErrFeeNotFound       = fmt.Errorf("fee: %w", ErrResourceNotFound)
	ErrLeaveNotFound     = fmt.Errorf("leave request: %w", ErrResourceNotFound)
	ErrComplaintNotFound = fmt.Errorf("complaint: %w", ErrResourceNotFound)
)

// CustomError carries an underlying sentinel together with a
// caller-supplied message. errors.Is against the sentinel still works
// through Unwrap.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
