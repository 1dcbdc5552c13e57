// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListBooksInput represents the input for listing an account's books.
type ListBooksInput struct {
	AccountID uuid.UUID
	OwnerID   uuid.UUID
}

// ListBooksOutput represents the output of listing books.
type ListBooksOutput struct {
	Account *entity.Account
	Books   []*entity.LedgerBook
}

// ListBooksUseCase lists the books of an owned account, newest first.
type ListBooksUseCase struct {
	accountRepo adapter.AccountRepository
	bookRepo    adapter.LedgerBookRepository
}

// NewListBooksUseCase creates a new ListBooksUseCase instance.
func NewListBooksUseCase(accountRepo adapter.AccountRepository, bookRepo adapter.LedgerBookRepository) *ListBooksUseCase {
	return &ListBooksUseCase{
		accountRepo: accountRepo,
		bookRepo:    bookRepo,
	}
}

// Execute performs the listing.
func (uc *ListBooksUseCase) Execute(ctx context.Context, input ListBooksInput) (*ListBooksOutput, error) {
	account, err := findOwnedAccount(ctx, uc.accountRepo, input.AccountID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger books: %w", err)
	}

	return &ListBooksOutput{
		Account: account,
		Books:   books,
	}, nil
}
