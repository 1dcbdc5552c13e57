// Package ledgerbook contains the client/supplier business ledger use cases.
package ledgerbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

func accountNotFound() *domainerror.LedgerError {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeAccountNotFound,
		"account not found",
		domainerror.ErrAccountNotFound,
	)
}

func bookNotFound() *domainerror.LedgerError {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeLedgerBookNotFound,
		"ledger book not found",
		domainerror.ErrLedgerBookNotFound,
	)
}

func entryNotFound() *domainerror.LedgerError {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeLedgerEntryNotFound,
		"ledger entry not found",
		domainerror.ErrLedgerEntryNotFound,
	)
}

// findOwnedAccount loads an account and verifies ownership. Absent and
// not-owned are the same error.
func findOwnedAccount(ctx context.Context, repo adapter.AccountRepository, accountID, ownerID uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, accountNotFound()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.OwnerID != ownerID {
		return nil, accountNotFound()
	}
	return account, nil
}

// findOwnedBook loads a ledger book and verifies ownership.
func findOwnedBook(ctx context.Context, repo adapter.LedgerBookRepository, bookID, ownerID uuid.UUID) (*entity.LedgerBook, error) {
	book, err := repo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLedgerBookNotFound) {
			return nil, bookNotFound()
		}
		return nil, fmt.Errorf("failed to find ledger book: %w", err)
	}
	if book.OwnerID != ownerID {
		return nil, bookNotFound()
	}
	return book, nil
}

// validPaymentType reports whether t is one of the known payment types.
func validPaymentType(t entity.PaymentType) bool {
	switch t {
	case entity.PaymentTypeCash, entity.PaymentTypeOnline, entity.PaymentTypeCheque, entity.PaymentTypePending:
		return true
	}
	return false
}
