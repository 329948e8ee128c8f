package apperrors

import "errors"

// Authentication errors
var (
	ErrNoToken            = errors.New("no token provided")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
)

// Authorization errors
var (
	ErrAccessDenied  = errors.New("access denied")
	ErrNotAuthorized = errors.New("not authorized to modify this resource")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Resource errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrStudentNotFound  = errors.New("student not found")
	ErrProgramNotFound  = errors.New("internship program not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrUsernameTaken    = errors.New("username is already taken")
)

// CustomError carries an underlying sentinel plus a request-facing message.
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

// NewCustomError creates a CustomError wrapping the given sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
