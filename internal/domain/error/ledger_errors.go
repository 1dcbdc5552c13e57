// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Business ledger domain errors.
var (
	// ErrAccountNotFound is returned when an account is absent or not owned by
	// the caller.
	ErrAccountNotFound = errors.New("account not found")

	// ErrLedgerBookNotFound is returned when a ledger book is absent or not
	// owned by the caller.
	ErrLedgerBookNotFound = errors.New("ledger book not found")

	// ErrLedgerEntryNotFound is returned when an entry is absent or not owned
	// by the caller.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrInvalidAccountType is returned for an account type other than
	// client/supplier.
	ErrInvalidAccountType = errors.New("account type must be 'client' or 'supplier'")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrInvalidEntryAmount is returned when a billed or paid amount is negative.
	ErrInvalidEntryAmount = errors.New("amounts must not be negative")

	// ErrInvalidPaymentType is returned for an unknown payment type.
	ErrInvalidPaymentType = errors.New("invalid payment type")
)

// LedgerErrorCode defines error codes for business ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	ErrCodeAccountNotFound     LedgerErrorCode = "LGR-010001"
	ErrCodeLedgerBookNotFound  LedgerErrorCode = "LGR-010002"
	ErrCodeLedgerEntryNotFound LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidAccountType  LedgerErrorCode = "LGR-020001"
	ErrCodeAccountNameRequired LedgerErrorCode = "LGR-020002"
	ErrCodeInvalidEntryAmount  LedgerErrorCode = "LGR-020003"
	ErrCodeInvalidPaymentType  LedgerErrorCode = "LGR-020004"
	ErrCodeMissingLedgerFields LedgerErrorCode = "LGR-020005"
)

// LedgerError represents a business ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
