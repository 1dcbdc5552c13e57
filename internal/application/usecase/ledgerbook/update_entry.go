// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for updating a ledger entry. Nil
// fields are left unchanged.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	OwnerID     uuid.UUID
	BillNo      *string
	EntryDate   *time.Time
	Description *string
	Quantity    *string
	TotalAmount *decimal.Decimal
	PaidAmount  *decimal.Decimal
	PaymentType *entity.PaymentType
}

// UpdateEntryOutput represents the output of a ledger entry update.
type UpdateEntryOutput struct {
	Entry *entity.LedgerEntryView
}

// UpdateEntryUseCase handles ledger entry updates, typically recording a
// payment against an open bill.
type UpdateEntryUseCase struct {
	accountRepo adapter.AccountRepository
	bookRepo    adapter.LedgerBookRepository
	entryRepo   adapter.LedgerEntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	accountRepo adapter.AccountRepository,
	bookRepo adapter.LedgerBookRepository,
	entryRepo adapter.LedgerEntryRepository,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		accountRepo: accountRepo,
		bookRepo:    bookRepo,
		entryRepo:   entryRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLedgerEntryNotFound) {
			return nil, entryNotFound()
		}
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}
	if entry.OwnerID != input.OwnerID {
		return nil, entryNotFound()
	}

	if input.BillNo != nil {
		entry.BillNo = strings.TrimSpace(*input.BillNo)
	}
	if input.EntryDate != nil {
		entry.EntryDate = *input.EntryDate
	}
	if input.Description != nil {
		entry.Description = strings.TrimSpace(*input.Description)
	}
	if input.Quantity != nil {
		entry.Quantity = strings.TrimSpace(*input.Quantity)
	}
	if input.TotalAmount != nil {
		if input.TotalAmount.IsNegative() {
			return nil, invalidAmount()
		}
		entry.TotalAmount = *input.TotalAmount
	}
	if input.PaidAmount != nil {
		if input.PaidAmount.IsNegative() {
			return nil, invalidAmount()
		}
		entry.PaidAmount = *input.PaidAmount
	}
	if input.PaymentType != nil {
		if !validPaymentType(*input.PaymentType) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidPaymentType,
				"invalid payment type",
				domainerror.ErrInvalidPaymentType,
			)
		}
		entry.PaymentType = *input.PaymentType
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	book, err := findOwnedBook(ctx, uc.bookRepo, entry.BookID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	account, err := findOwnedAccount(ctx, uc.accountRepo, book.AccountID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &UpdateEntryOutput{
		Entry: entryView(entry, account.Type),
	}, nil
}

func invalidAmount() *domainerror.LedgerError {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidEntryAmount,
		"amounts must not be negative",
		domainerror.ErrInvalidEntryAmount,
	)
}
