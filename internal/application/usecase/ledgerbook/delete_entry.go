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

// DeleteEntryInput represents the input for deleting a ledger entry.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	OwnerID uuid.UUID
}

// DeleteEntryUseCase deletes a ledger entry.
type DeleteEntryUseCase struct {
	entryRepo adapter.LedgerEntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.LedgerEntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	if err := uc.entryRepo.Delete(ctx, input.EntryID, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrLedgerEntryNotFound) {
			return entryNotFound()
		}
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	return nil
}
