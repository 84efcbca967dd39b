package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Resource errors
	ErrProfileNotFound     = errors.New("profile not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrUserNotFound        = errors.New("user not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRole      = errors.New("invalid role")
)

// Application workflow errors
var (
	ErrAlreadyApplied    = errors.New("application already submitted for this opportunity")
	ErrInvalidTransition = errors.New("application status transition not allowed")
)

// NewValidationError creates a custom error for a failed form validation
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
