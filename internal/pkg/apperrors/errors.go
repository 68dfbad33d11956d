package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Grading errors
var (
	// ErrEmptyInput is returned when there is nothing to evaluate.
	ErrEmptyInput = errors.New("no subjects to evaluate")
	// ErrInvalidGrade is returned for a grade that is not on the active scale.
	ErrInvalidGrade = errors.New("invalid grade")
	// ErrOutOfRange is returned for credits or hours outside the configured bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrUnknownScale is returned when a grade scale name is not registered.
	ErrUnknownScale = errors.New("unknown grade scale")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
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

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField records which input field the error refers to
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}
