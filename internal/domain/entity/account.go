// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType distinguishes client accounts (money owed to the user) from
// supplier accounts (money the user owes).
type AccountType string

const (
	AccountTypeClient   AccountType = "client"
	AccountTypeSupplier AccountType = "supplier"
)

// Split maps a paid amount onto the credit/debit columns for this account
// type: payments from a client are credits received, payments to a supplier
// are debits paid out. This mapping is recomputed on every read; it is never
// stored on the entry.
func (t AccountType) Split(paid decimal.Decimal) (credit, debit decimal.Decimal) {
	if t == AccountTypeSupplier {
		return decimal.Zero, paid
	}
	return paid, decimal.Zero
}

// Account represents a client or supplier relationship owned by one user.
// Deleting an account cascades its ledger books and their entries.
type Account struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Type          AccountType
	Name          string
	CompanyName   string
	PhoneNumber   string
	AccountNumber string
	UPIID         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(ownerID uuid.UUID, accountType AccountType, name string) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      accountType,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
