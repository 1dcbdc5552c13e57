// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents one personal income or expense row, independent of
// any goal or ledger.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(ownerID uuid.UUID, transactionType TransactionType, amount decimal.Decimal, category string, date time.Time, description string) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DashboardStats aggregates a user's financial position for the dashboard.
type DashboardStats struct {
	TotalBalance   decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	ActiveGoals    int
}
