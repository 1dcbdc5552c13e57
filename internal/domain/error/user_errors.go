// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotAdmin is returned when a non-admin calls an admin-only operation.
	ErrNotAdmin = errors.New("admin role required")

	// ErrCannotDeleteAdmin is returned when an admin tries to delete another
	// admin account.
	ErrCannotDeleteAdmin = errors.New("cannot delete an admin account")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	ErrCodeUserNotFound      UserErrorCode = "USR-010001"
	ErrCodeNotAdmin          UserErrorCode = "USR-040001"
	ErrCodeCannotDeleteAdmin UserErrorCode = "USR-030001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
