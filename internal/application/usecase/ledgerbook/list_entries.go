// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing a book's entries.
type ListEntriesInput struct {
	BookID  uuid.UUID
	OwnerID uuid.UUID
}

// ListEntriesOutput represents the output of listing entries. The summary is
// computed server-side over the same rows the listing returns.
type ListEntriesOutput struct {
	Book    *entity.LedgerBook
	Entries []*entity.LedgerEntryView
	Summary entity.LedgerSummary
}

// ListEntriesUseCase lists the entries of an owned book, newest entry date
// first, each annotated with derived pending/completed/credit/debit, plus the
// book totals.
type ListEntriesUseCase struct {
	accountRepo adapter.AccountRepository
	bookRepo    adapter.LedgerBookRepository
	entryRepo   adapter.LedgerEntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(
	accountRepo adapter.AccountRepository,
	bookRepo adapter.LedgerBookRepository,
	entryRepo adapter.LedgerEntryRepository,
) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		accountRepo: accountRepo,
		bookRepo:    bookRepo,
		entryRepo:   entryRepo,
	}
}

// Execute performs the listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	book, err := findOwnedBook(ctx, uc.bookRepo, input.BookID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	account, err := findOwnedAccount(ctx, uc.accountRepo, book.AccountID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.FindByBook(ctx, input.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	views := make([]*entity.LedgerEntryView, 0, len(entries))
	summary := entity.LedgerSummary{
		TotalTurnover: decimal.Zero,
		TotalPending:  decimal.Zero,
	}
	for _, e := range entries {
		view := entryView(e, account.Type)
		views = append(views, view)
		summary.TotalTurnover = summary.TotalTurnover.Add(e.TotalAmount)
		summary.TotalPending = summary.TotalPending.Add(view.Pending)
	}

	return &ListEntriesOutput{
		Book:    book,
		Entries: views,
		Summary: summary,
	}, nil
}
