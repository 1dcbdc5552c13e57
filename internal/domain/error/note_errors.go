// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Note domain errors.
var (
	// ErrNoteNotFound is returned when a note is absent or not owned by the caller.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteTitleRequired is returned when the note title is empty.
	ErrNoteTitleRequired = errors.New("note title is required")

	// ErrNotePasswordMismatch is returned when unlocking a note with the wrong
	// password.
	ErrNotePasswordMismatch = errors.New("invalid note password")

	// ErrNoteNotLocked is returned when verifying the password of a note that
	// has none.
	ErrNoteNotLocked = errors.New("note is not locked")
)

// NoteErrorCode defines error codes for note errors.
// Format: NTE-XXYYYY where XX is category and YYYY is specific error.
type NoteErrorCode string

const (
	ErrCodeNoteNotFound         NoteErrorCode = "NTE-010001"
	ErrCodeNoteTitleRequired    NoteErrorCode = "NTE-020001"
	ErrCodeNotePasswordMismatch NoteErrorCode = "NTE-040001"
	ErrCodeNoteNotLocked        NoteErrorCode = "NTE-030001"
)

// NoteError represents a note error with code and message.
type NoteError struct {
	Code    NoteErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NoteError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NoteError) Unwrap() error {
	return e.Err
}

// NewNoteError creates a new NoteError with the given code and message.
func NewNoteError(code NoteErrorCode, message string, err error) *NoteError {
	return &NoteError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
