// Package transaction contains personal transaction use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
)

// DeleteTransactionsInput represents the input for a bulk delete.
type DeleteTransactionsInput struct {
	OwnerID uuid.UUID
	IDs     []uuid.UUID
}

// DeleteTransactionsUseCase bulk-deletes the owner's transactions. IDs that
// are absent or belong to someone else are silently skipped; the delete is
// owner-scoped at the SQL level.
type DeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionsUseCase creates a new DeleteTransactionsUseCase instance.
func NewDeleteTransactionsUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionsUseCase {
	return &DeleteTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the bulk delete.
func (uc *DeleteTransactionsUseCase) Execute(ctx context.Context, input DeleteTransactionsInput) error {
	if len(input.IDs) == 0 {
		return nil
	}
	if err := uc.transactionRepo.DeleteByIDs(ctx, input.OwnerID, input.IDs); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}
