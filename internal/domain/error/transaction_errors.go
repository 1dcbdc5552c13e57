// Package error defines domain-specific errors for the FinMate application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is absent or not
	// owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned for a type other than income/expense.
	ErrInvalidTransactionType = errors.New("transaction type must be 'income' or 'expense'")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be greater than zero")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound      TransactionErrorCode = "TRX-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TRX-020001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TRX-020002"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TRX-020003"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
