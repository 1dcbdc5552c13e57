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

// DeleteAccountInput represents the input for deleting an account.
type DeleteAccountInput struct {
	AccountID uuid.UUID
	OwnerID   uuid.UUID
}

// DeleteAccountUseCase deletes an account with its books and their entries.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if err := uc.accountRepo.Delete(ctx, input.AccountID, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return accountNotFound()
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
