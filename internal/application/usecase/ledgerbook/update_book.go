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

// UpdateBookInput represents the input for updating a ledger book. Nil fields
// are left unchanged.
type UpdateBookInput struct {
	BookID   uuid.UUID
	OwnerID  uuid.UUID
	Name     *string
	BookDate *time.Time
}

// UpdateBookOutput represents the output of a ledger book update.
type UpdateBookOutput struct {
	Book *entity.LedgerBook
}

// UpdateBookUseCase handles ledger book updates.
type UpdateBookUseCase struct {
	bookRepo adapter.LedgerBookRepository
}

// NewUpdateBookUseCase creates a new UpdateBookUseCase instance.
func NewUpdateBookUseCase(bookRepo adapter.LedgerBookRepository) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo: bookRepo,
	}
}

// Execute performs the book update.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, input UpdateBookInput) (*UpdateBookOutput, error) {
	book, err := findOwnedBook(ctx, uc.bookRepo, input.BookID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingLedgerFields,
				"book name is required",
				nil,
			)
		}
		book.Name = name
	}
	if input.BookDate != nil {
		book.BookDate = *input.BookDate
	}

	book.UpdatedAt = time.Now().UTC()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update ledger book: %w", err)
	}

	return &UpdateBookOutput{
		Book: book,
	}, nil
}
