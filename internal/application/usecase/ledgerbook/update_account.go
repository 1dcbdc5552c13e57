// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for updating an account. Nil fields
// are left unchanged. The account type is fixed at creation: flipping a
// client to a supplier would silently remap every historical credit/debit.
type UpdateAccountInput struct {
	AccountID     uuid.UUID
	OwnerID       uuid.UUID
	Name          *string
	CompanyName   *string
	PhoneNumber   *string
	AccountNumber *string
	UPIID         *string
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account updates.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := findOwnedAccount(ctx, uc.accountRepo, input.AccountID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeAccountNameRequired,
				"account name is required",
				domainerror.ErrAccountNameRequired,
			)
		}
		account.Name = name
	}
	if input.CompanyName != nil {
		account.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.PhoneNumber != nil {
		account.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
	}
	if input.AccountNumber != nil {
		account.AccountNumber = strings.TrimSpace(*input.AccountNumber)
	}
	if input.UPIID != nil {
		account.UPIID = strings.TrimSpace(*input.UPIID)
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
