// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByOwner retrieves all accounts of one owner, sorted by name.
func (r *accountRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Account, error) {
	var models []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(models))
	for i, m := range models {
		accounts[i] = m.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an account with its books and entries in one transaction,
// scoped to the owner.
func (r *accountRepository) Delete(ctx context.Context, accountID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND owner_id = ?", accountID, ownerID).
			Delete(&model.AccountModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}

		books := tx.Model(&model.LedgerBookModel{}).Select("id").Where("account_id = ?", accountID)
		if err := tx.Where("book_id IN (?)", books).Delete(&model.LedgerEntryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ?", accountID).Delete(&model.LedgerBookModel{}).Error
	})
}

// ledgerBookRepository implements the adapter.LedgerBookRepository interface.
type ledgerBookRepository struct {
	db *gorm.DB
}

// NewLedgerBookRepository creates a new ledger book repository instance.
func NewLedgerBookRepository(db *gorm.DB) adapter.LedgerBookRepository {
	return &ledgerBookRepository{
		db: db,
	}
}

// Create creates a new ledger book in the database.
func (r *ledgerBookRepository) Create(ctx context.Context, book *entity.LedgerBook) error {
	bookModel := model.LedgerBookFromEntity(book)
	result := r.db.WithContext(ctx).Create(bookModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a ledger book by its ID.
func (r *ledgerBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerBook, error) {
	var bookModel model.LedgerBookModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&bookModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLedgerBookNotFound
		}
		return nil, result.Error
	}
	return bookModel.ToEntity(), nil
}

// FindByAccount retrieves all books of one account, newest book date first.
func (r *ledgerBookRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.LedgerBook, error) {
	var models []model.LedgerBookModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("book_date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	books := make([]*entity.LedgerBook, len(models))
	for i, m := range models {
		books[i] = m.ToEntity()
	}
	return books, nil
}

// Update updates an existing ledger book in the database.
func (r *ledgerBookRepository) Update(ctx context.Context, book *entity.LedgerBook) error {
	bookModel := model.LedgerBookFromEntity(book)
	result := r.db.WithContext(ctx).Save(bookModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a book and its entries in one transaction, scoped to the
// owner.
func (r *ledgerBookRepository) Delete(ctx context.Context, bookID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND owner_id = ?", bookID, ownerID).
			Delete(&model.LedgerBookModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrLedgerBookNotFound
		}

		return tx.Where("book_id = ?", bookID).Delete(&model.LedgerEntryModel{}).Error
	})
}

// ledgerEntryRepository implements the adapter.LedgerEntryRepository interface.
type ledgerEntryRepository struct {
	db *gorm.DB
}

// NewLedgerEntryRepository creates a new ledger entry repository instance.
func NewLedgerEntryRepository(db *gorm.DB) adapter.LedgerEntryRepository {
	return &ledgerEntryRepository{
		db: db,
	}
}

// Create creates a new ledger entry in the database.
func (r *ledgerEntryRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a ledger entry by its ID.
func (r *ledgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLedgerEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByBook retrieves all entries of one book, newest entry date first.
func (r *ledgerEntryRepository) FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("entry_date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(models))
	for i, m := range models {
		entries[i] = m.ToEntity()
	}
	return entries, nil
}

// Update updates an existing ledger entry in the database.
func (r *ledgerEntryRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an entry, scoped to the owner.
func (r *ledgerEntryRepository) Delete(ctx context.Context, entryID, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", entryID, ownerID).
		Delete(&model.LedgerEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLedgerEntryNotFound
	}
	return nil
}
