// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// AccountRepository defines the interface for client/supplier account persistence.
type AccountRepository interface {
	// Create creates a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByOwner retrieves all accounts of one owner, sorted by name.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Account, error)

	// Update updates an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account with its books and entries in one transaction.
	// Scoped to the owner; zero affected rows surface as ErrAccountNotFound.
	Delete(ctx context.Context, accountID, ownerID uuid.UUID) error
}

// LedgerBookRepository defines the interface for ledger book persistence.
type LedgerBookRepository interface {
	// Create creates a new ledger book.
	Create(ctx context.Context, book *entity.LedgerBook) error

	// FindByID retrieves a ledger book by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerBook, error)

	// FindByAccount retrieves all books of one account, newest book date first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.LedgerBook, error)

	// Update updates an existing ledger book.
	Update(ctx context.Context, book *entity.LedgerBook) error

	// Delete removes a book and its entries in one transaction. Scoped to the
	// owner; zero affected rows surface as ErrLedgerBookNotFound.
	Delete(ctx context.Context, bookID, ownerID uuid.UUID) error
}

// LedgerEntryRepository defines the interface for ledger entry persistence.
type LedgerEntryRepository interface {
	// Create creates a new ledger entry.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// FindByID retrieves a ledger entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByBook retrieves all entries of one book, newest entry date first.
	FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.LedgerEntry, error)

	// Update updates an existing ledger entry.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete removes an entry. Scoped to the owner; zero affected rows surface
	// as ErrLedgerEntryNotFound.
	Delete(ctx context.Context, entryID, ownerID uuid.UUID) error
}
