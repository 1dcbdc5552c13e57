// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address. Absence is not an
// error here; callers treat a nil user as "email available".
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByCID retrieves a user by their connection identifier.
func (r *userRepository) FindByCID(ctx context.Context, cid string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("cid = ?", cid).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// ExistsByCID checks if a user with the given CID exists.
func (r *userRepository) ExistsByCID(ctx context.Context, cid string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("cid = ?", cid).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing user in the database.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Save(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a user and every row that belongs to them. All the deletes
// run in one transaction so an admin removal never leaves orphans behind.
// Contributions the user made to other users' goals are kept; those goals'
// running amounts already include them.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.GoalFundingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.GoalModel{}).Error; err != nil {
			return err
		}
		ownedGoals := tx.Model(&model.ConnectedGoalModel{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Where("goal_id IN (?)", ownedGoals).Delete(&model.ContributionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id IN (?)", ownedGoals).Delete(&model.ParticipantModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id IN (?)", ownedGoals).Delete(&model.GoalStarModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.ConnectedGoalModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.ParticipantModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.GoalStarModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requester_id = ? OR recipient_id = ?", id, id).Delete(&model.ConnectionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.LedgerEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.LedgerBookModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.AccountModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.NoteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.NotificationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.RefreshTokenModel{}).Error; err != nil {
			return err
		}
		// Queued mail is keyed by address, so it has to go before the user row.
		userEmail := tx.Model(&model.UserModel{}).Select("email").Where("id = ?", id)
		if err := tx.Where("recipient_email IN (?)", userEmail).Delete(&model.EmailQueueModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.UserModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrUserNotFound
		}
		return nil
	})
}

// ListNonAdmins retrieves every non-admin user, newest first.
func (r *userRepository) ListNonAdmins(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	result := r.db.WithContext(ctx).
		Where("role <> ?", entity.UserRoleAdmin).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]*entity.User, len(models))
	for i, m := range models {
		users[i] = m.ToEntity()
	}
	return users, nil
}

// tokenRepository implements the adapter.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new refresh token repository instance.
func NewTokenRepository(db *gorm.DB) adapter.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveRefreshToken stores a refresh token for a user.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := &model.RefreshTokenModel{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Create(tokenModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// InvalidateRefreshToken marks a refresh token as revoked.
func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("revoked", true)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// IsRefreshTokenValid checks if a refresh token is stored, unrevoked and
// unexpired.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Where("revoked = ?", false).
		Where("expires_at > ?", time.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
