// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	OwnerID       uuid.UUID
	Type          entity.AccountType
	Name          string
	CompanyName   string
	PhoneNumber   string
	AccountNumber string
	UPIID         string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles client/supplier account creation.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Type != entity.AccountTypeClient && input.Type != entity.AccountTypeSupplier {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'client' or 'supplier'",
			domainerror.ErrInvalidAccountType,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	account := entity.NewAccount(input.OwnerID, input.Type, name)
	account.CompanyName = strings.TrimSpace(input.CompanyName)
	account.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	account.AccountNumber = strings.TrimSpace(input.AccountNumber)
	account.UPIID = strings.TrimSpace(input.UPIID)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
