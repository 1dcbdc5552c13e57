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

// CreateBookInput represents the input for ledger book creation.
type CreateBookInput struct {
	AccountID uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	BookDate  time.Time
}

// CreateBookOutput represents the output of ledger book creation.
type CreateBookOutput struct {
	Book *entity.LedgerBook
}

// CreateBookUseCase creates a ledger book under an owned account.
type CreateBookUseCase struct {
	accountRepo adapter.AccountRepository
	bookRepo    adapter.LedgerBookRepository
}

// NewCreateBookUseCase creates a new CreateBookUseCase instance.
func NewCreateBookUseCase(accountRepo adapter.AccountRepository, bookRepo adapter.LedgerBookRepository) *CreateBookUseCase {
	return &CreateBookUseCase{
		accountRepo: accountRepo,
		bookRepo:    bookRepo,
	}
}

// Execute performs the book creation.
func (uc *CreateBookUseCase) Execute(ctx context.Context, input CreateBookInput) (*CreateBookOutput, error) {
	if _, err := findOwnedAccount(ctx, uc.accountRepo, input.AccountID, input.OwnerID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerFields,
			"book name is required",
			nil,
		)
	}

	book := entity.NewLedgerBook(input.AccountID, input.OwnerID, name, input.BookDate)

	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create ledger book: %w", err)
	}

	return &CreateBookOutput{
		Book: book,
	}, nil
}
