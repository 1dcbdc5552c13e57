// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves the owner's transactions matching the filter, newest
// first.
func (r *transactionRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Since != nil {
		query = query.Where("date >= ?", *filter.Since)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(category) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var models []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(models))
	for i, m := range models {
		transactions[i] = m.ToEntity()
	}
	return transactions, nil
}

// DeleteByIDs removes the given transactions of the owner. The owner scope on
// the delete keeps other users' rows untouched even if their IDs are passed.
func (r *transactionRepository) DeleteByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SumByType sums amounts of one type for an owner, optionally restricted to
// transactions on or after since.
func (r *transactionRepository) SumByType(ctx context.Context, ownerID uuid.UUID, transactionType entity.TransactionType, since *time.Time) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("owner_id = ? AND type = ?", ownerID, transactionType)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var total decimal.Decimal
	result := query.Select("COALESCE(SUM(amount), 0)").Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}
