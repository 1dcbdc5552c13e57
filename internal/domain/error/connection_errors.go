// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Connection domain errors.
var (
	// ErrUserNotFoundByCID is returned when no user matches the given CID.
	ErrUserNotFoundByCID = errors.New("no user found for this cid")

	// ErrCannotConnectSelf is returned when a user tries to connect to themselves.
	ErrCannotConnectSelf = errors.New("cannot connect to yourself")

	// ErrConnectionExists is returned when a connection or pending request
	// between the two users already exists.
	ErrConnectionExists = errors.New("connection already exists")

	// ErrConnectionNotFound is returned when a connection row is absent or does
	// not involve the caller.
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrUsersNotConnected is returned when an operation requires an accepted
	// connection between two users and none exists.
	ErrUsersNotConnected = errors.New("users are not connected")
)

// ConnectionErrorCode defines error codes for connection errors.
// Format: CON-XXYYYY where XX is category and YYYY is specific error.
type ConnectionErrorCode string

const (
	ErrCodeUserNotFoundByCID  ConnectionErrorCode = "CON-010001"
	ErrCodeConnectionNotFound ConnectionErrorCode = "CON-010002"
	ErrCodeCannotConnectSelf  ConnectionErrorCode = "CON-020001"
	ErrCodeConnectionExists   ConnectionErrorCode = "CON-030001"
	ErrCodeUsersNotConnected  ConnectionErrorCode = "CON-040001"
)

// ConnectionError represents a connection error with code and message.
type ConnectionError struct {
	Code    ConnectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError creates a new ConnectionError with the given code and message.
func NewConnectionError(code ConnectionErrorCode, message string, err error) *ConnectionError {
	return &ConnectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
