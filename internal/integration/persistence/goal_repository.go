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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByOwner retrieves all goals of one owner, important first, newest first.
func (r *goalRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Goal, error) {
	var models []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("is_important DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(models))
	for i, m := range models {
		goals[i] = m.ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal and its funding history, scoped to the owner.
func (r *goalRepository) Delete(ctx context.Context, goalID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND owner_id = ?", goalID, ownerID).
			Delete(&model.GoalModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}

		return tx.Where("goal_id = ?", goalID).Delete(&model.GoalFundingModel{}).Error
	})
}

// AddFund appends the funding row and bumps the goal's running amount in one
// transaction. The increment is relative so concurrent fundings serialize on
// the goal row.
func (r *goalRepository) AddFund(ctx context.Context, funding *entity.GoalFunding) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.GoalFundingFromEntity(funding)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.GoalModel{}).
			Where("id = ?", funding.GoalID).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount + ?", funding.Amount),
				"updated_at":     funding.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}
		return nil
	})
}

// FindFundings retrieves a goal's funding history, newest first.
func (r *goalRepository) FindFundings(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalFunding, error) {
	var models []model.GoalFundingModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	fundings := make([]*entity.GoalFunding, len(models))
	for i, m := range models {
		fundings[i] = m.ToEntity()
	}
	return fundings, nil
}
