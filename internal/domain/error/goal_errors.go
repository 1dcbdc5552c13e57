// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Personal goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or does not belong
	// to the caller. The two cases are deliberately indistinguishable so that
	// probing does not leak which goal ids exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalNameRequired is returned when the goal name is empty.
	ErrGoalNameRequired = errors.New("goal name is required")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidFundAmount is returned when a funding amount is zero or negative.
	ErrInvalidFundAmount = errors.New("fund amount must be greater than zero")

	// ErrGoalNotFailed is returned when extending the date of a goal that is
	// not currently failed. Extension is a recovery action, not a general edit.
	ErrGoalNotFailed = errors.New("goal is not in failed state")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeGoalNameRequired    GoalErrorCode = "GOL-020001"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-020002"
	ErrCodeInvalidFundAmount   GoalErrorCode = "GOL-020003"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-020004"
	ErrCodeGoalNotFailed       GoalErrorCode = "GOL-030001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
