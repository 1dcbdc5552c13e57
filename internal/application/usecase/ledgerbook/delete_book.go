// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// DeleteBookInput represents the input for deleting a ledger book.
type DeleteBookInput struct {
	BookID  uuid.UUID
	OwnerID uuid.UUID
}

// DeleteBookUseCase deletes a ledger book and its entries.
type DeleteBookUseCase struct {
	bookRepo adapter.LedgerBookRepository
}

// NewDeleteBookUseCase creates a new DeleteBookUseCase instance.
func NewDeleteBookUseCase(bookRepo adapter.LedgerBookRepository) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo: bookRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteBookUseCase) Execute(ctx context.Context, input DeleteBookInput) error {
	if err := uc.bookRepo.Delete(ctx, input.BookID, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrLedgerBookNotFound) {
			return bookNotFound()
		}
		return fmt.Errorf("failed to delete ledger book: %w", err)
	}
	return nil
}
