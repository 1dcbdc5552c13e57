// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// CreateEntryInput represents the input for ledger entry creation.
type CreateEntryInput struct {
	BookID      uuid.UUID
	OwnerID     uuid.UUID
	BillNo      string
	EntryDate   time.Time
	Description string
	Quantity    string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	PaymentType entity.PaymentType
}

// CreateEntryOutput represents the output of ledger entry creation.
type CreateEntryOutput struct {
	Entry *entity.LedgerEntryView
}

// CreateEntryUseCase creates a ledger entry under an owned book and returns
// it with the derived figures of the parent account type.
type CreateEntryUseCase struct {
	accountRepo adapter.AccountRepository
	bookRepo    adapter.LedgerBookRepository
	entryRepo   adapter.LedgerEntryRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	accountRepo adapter.AccountRepository,
	bookRepo adapter.LedgerBookRepository,
	entryRepo adapter.LedgerEntryRepository,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		accountRepo: accountRepo,
		bookRepo:    bookRepo,
		entryRepo:   entryRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	book, err := findOwnedBook(ctx, uc.bookRepo, input.BookID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	account, err := findOwnedAccount(ctx, uc.accountRepo, book.AccountID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.TotalAmount.IsNegative() || input.PaidAmount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amounts must not be negative",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if !validPaymentType(input.PaymentType) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPaymentType,
			"invalid payment type",
			domainerror.ErrInvalidPaymentType,
		)
	}

	entry := entity.NewLedgerEntry(input.BookID, input.OwnerID, input.EntryDate, input.TotalAmount, input.PaidAmount, input.PaymentType)
	entry.BillNo = strings.TrimSpace(input.BillNo)
	entry.Description = strings.TrimSpace(input.Description)
	entry.Quantity = strings.TrimSpace(input.Quantity)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return &CreateEntryOutput{
		Entry: entryView(entry, account.Type),
	}, nil
}

// entryView annotates an entry with its derived figures.
func entryView(entry *entity.LedgerEntry, accountType entity.AccountType) *entity.LedgerEntryView {
	credit, debit := accountType.Split(entry.PaidAmount)
	return &entity.LedgerEntryView{
		Entry:     entry,
		Pending:   entry.Pending(),
		Completed: entry.Completed(),
		Credit:    credit,
		Debit:     debit,
	}
}
