// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Connected goal domain errors.
var (
	// ErrConnectedGoalNotFound is returned when a connected goal does not exist
	// or the caller has no accepted participant row on it. Pending and declined
	// participants see the same error as strangers: no financial data leaks
	// before acceptance.
	ErrConnectedGoalNotFound = errors.New("connected goal not found")

	// ErrNotGoalOwner is returned when a non-owner attempts an owner-only
	// mutation (edit, extend, delete, re-invite).
	ErrNotGoalOwner = errors.New("only the goal owner can perform this action")

	// ErrNotAcceptedParticipant is returned when a contribution comes from a
	// user without an accepted participant row.
	ErrNotAcceptedParticipant = errors.New("user is not an accepted participant of this goal")

	// ErrInvitationNotFound is returned when an invitation row is absent or
	// belongs to another user.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrInvitationNotPending is returned when responding to an invitation
	// that has already been answered.
	ErrInvitationNotPending = errors.New("invitation is no longer pending")

	// ErrParticipantNotDeclined is returned when re-inviting a participant who
	// has not declined.
	ErrParticipantNotDeclined = errors.New("participant has not declined")

	// ErrOwnerCannotLeave is returned when the owner tries to leave their own
	// goal; owners delete the goal instead.
	ErrOwnerCannotLeave = errors.New("owner cannot leave their own goal")

	// ErrInvalidContributionAmount is returned when a contribution amount is
	// zero or negative before signing.
	ErrInvalidContributionAmount = errors.New("contribution amount must be greater than zero")

	// ErrInvalidContributionKind is returned for a kind other than income/expense.
	ErrInvalidContributionKind = errors.New("contribution kind must be 'income' or 'expense'")
)

// ConnectedGoalErrorCode defines error codes for connected goal errors.
// Format: CGL-XXYYYY where XX is category and YYYY is specific error.
type ConnectedGoalErrorCode string

const (
	ErrCodeConnectedGoalNotFound     ConnectedGoalErrorCode = "CGL-010001"
	ErrCodeInvitationNotFound        ConnectedGoalErrorCode = "CGL-010002"
	ErrCodeMissingConnectedFields    ConnectedGoalErrorCode = "CGL-020001"
	ErrCodeInvalidContributionAmount ConnectedGoalErrorCode = "CGL-020002"
	ErrCodeInvalidContributionKind   ConnectedGoalErrorCode = "CGL-020003"
	ErrCodeInvitationNotPending      ConnectedGoalErrorCode = "CGL-030001"
	ErrCodeParticipantNotDeclined    ConnectedGoalErrorCode = "CGL-030002"
	ErrCodeOwnerCannotLeave          ConnectedGoalErrorCode = "CGL-030003"
	ErrCodeNotGoalOwner              ConnectedGoalErrorCode = "CGL-040001"
	ErrCodeNotAcceptedParticipant    ConnectedGoalErrorCode = "CGL-040002"
)

// ConnectedGoalError represents a connected goal error with code and message.
type ConnectedGoalError struct {
	Code    ConnectedGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConnectedGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConnectedGoalError) Unwrap() error {
	return e.Err
}

// NewConnectedGoalError creates a new ConnectedGoalError with the given code and message.
func NewConnectedGoalError(code ConnectedGoalErrorCode, message string, err error) *ConnectedGoalError {
	return &ConnectedGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
