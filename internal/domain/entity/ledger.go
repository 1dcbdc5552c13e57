// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents how a ledger entry was (or will be) settled.
type PaymentType string

const (
	PaymentTypeCash    PaymentType = "cash"
	PaymentTypeOnline  PaymentType = "online"
	PaymentTypeCheque  PaymentType = "cheque"
	PaymentTypePending PaymentType = "pending"
)

// LedgerBook groups the entries of one account, typically per period
// (a monthly book, a season's book). Deleting a book cascades its entries.
type LedgerBook struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	BookDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLedgerBook creates a new LedgerBook entity.
func NewLedgerBook(accountID, ownerID uuid.UUID, name string, bookDate time.Time) *LedgerBook {
	now := time.Now().UTC()
	return &LedgerBook{
		ID:        uuid.New(),
		AccountID: accountID,
		OwnerID:   ownerID,
		Name:      name,
		BookDate:  bookDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LedgerEntry records one billed amount and what has been paid against it.
// Nothing derived is stored: pending, completion and the credit/debit view
// are recomputed from the row and the parent account type on every read.
type LedgerEntry struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	OwnerID     uuid.UUID
	BillNo      string
	EntryDate   time.Time
	Description string
	Quantity    string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	PaymentType PaymentType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(bookID, ownerID uuid.UUID, entryDate time.Time, total, paid decimal.Decimal, paymentType PaymentType) *LedgerEntry {
	now := time.Now().UTC()
	return &LedgerEntry{
		ID:          uuid.New(),
		BookID:      bookID,
		OwnerID:     ownerID,
		EntryDate:   entryDate,
		TotalAmount: total,
		PaidAmount:  paid,
		PaymentType: paymentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Pending returns the outstanding amount of the entry. Negative when overpaid.
func (e *LedgerEntry) Pending() decimal.Decimal {
	return e.TotalAmount.Sub(e.PaidAmount)
}

// Completed reports whether nothing remains outstanding on the entry.
func (e *LedgerEntry) Completed() bool {
	return e.Pending().LessThanOrEqual(decimal.Zero)
}

// LedgerEntryView is a ledger entry annotated with its derived figures for
// one read: pending balance, completion and the account-type credit/debit
// mapping of the paid amount.
type LedgerEntryView struct {
	Entry     *LedgerEntry
	Pending   decimal.Decimal
	Completed bool
	Credit    decimal.Decimal
	Debit     decimal.Decimal
}

// LedgerSummary aggregates the entries of one book. TotalPending is a net
// figure: overpaid entries subtract from it rather than being clamped.
type LedgerSummary struct {
	TotalTurnover decimal.Decimal
	TotalPending  decimal.Decimal
}
