// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when the email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCIDAlreadyExists is returned when the chosen CID is taken.
	ErrCIDAlreadyExists = errors.New("cid already exists")

	// ErrWeakPassword is returned when the password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrMissingSignupFields is returned when a required signup field is empty.
	ErrMissingSignupFields = errors.New("missing required signup fields")

	// ErrInvalidToken is returned when a JWT fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWrongPassword is returned when the current password check fails on a
	// password change.
	ErrWrongPassword = errors.New("wrong password")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUT-030001"
	ErrCodeCIDAlreadyExists   AuthErrorCode = "AUT-030002"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-020001"
	ErrCodeMissingFields      AuthErrorCode = "AUT-020002"
	ErrCodeMissingToken       AuthErrorCode = "AUT-040001"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-040002"
	ErrCodeWrongPassword      AuthErrorCode = "AUT-010002"
	ErrCodeRateLimited        AuthErrorCode = "AUT-050001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
