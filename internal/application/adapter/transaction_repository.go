// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	// Type filters by income/expense when non-empty.
	Type entity.TransactionType
	// Since keeps only transactions on or after the given date when set.
	Since *time.Time
	// Search matches category or description, case-insensitively.
	Search string
}

// TransactionRepository defines the interface for personal transaction persistence.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByOwner retrieves the owner's transactions matching the filter,
	// newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, error)

	// DeleteByIDs removes the given transactions of the owner. Rows belonging
	// to other users are left untouched.
	DeleteByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error

	// SumByType sums amounts of one type for an owner, optionally restricted
	// to transactions on or after since.
	SumByType(ctx context.Context, ownerID uuid.UUID, transactionType entity.TransactionType, since *time.Time) (decimal.Decimal, error)
}
