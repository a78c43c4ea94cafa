package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrUnknownRole      = errors.New("unknown role")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
)

// Entity errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrFileNotFound      = errors.New("file not found")
	ErrUserAlreadyExists = errors.New("user with this name already exists")
)

// Certificate errors
var (
	ErrInvalidCertFilename = errors.New("invalid certificate filename")
)

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
