// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// connectedGoalRepository implements the adapter.ConnectedGoalRepository interface.
type connectedGoalRepository struct {
	db *gorm.DB
}

// NewConnectedGoalRepository creates a new connected goal repository instance.
func NewConnectedGoalRepository(db *gorm.DB) adapter.ConnectedGoalRepository {
	return &connectedGoalRepository{
		db: db,
	}
}

// CreateWithParticipants creates the goal and its full participant set in one
// transaction.
func (r *connectedGoalRepository) CreateWithParticipants(ctx context.Context, goal *entity.ConnectedGoal, participants []*entity.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ConnectedGoalFromEntity(goal)).Error; err != nil {
			return err
		}
		for _, participant := range participants {
			if err := tx.Create(model.ParticipantFromEntity(participant)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a connected goal by its ID.
func (r *connectedGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ConnectedGoal, error) {
	var goalModel model.ConnectedGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrConnectedGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindAcceptedForUser retrieves every goal where the user holds an accepted
// participant row, starred first, newest first.
func (r *connectedGoalRepository) FindAcceptedForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedGoal, error) {
	var models []model.ConnectedGoalModel
	result := r.db.WithContext(ctx).
		Model(&model.ConnectedGoalModel{}).
		Select("connected_goals.*").
		Joins("JOIN goal_participants ON goal_participants.goal_id = connected_goals.id").
		Joins("LEFT JOIN goal_stars ON goal_stars.goal_id = connected_goals.id AND goal_stars.user_id = ?", userID).
		Where("goal_participants.user_id = ? AND goal_participants.status = ?", userID, entity.ParticipantStatusAccepted).
		Order("goal_stars.created_at IS NULL, connected_goals.created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.ConnectedGoal, len(models))
	for i, m := range models {
		goals[i] = m.ToEntity()
	}
	return goals, nil
}

// Update updates name, target amount and target date of a goal.
func (r *connectedGoalRepository) Update(ctx context.Context, goal *entity.ConnectedGoal) error {
	result := r.db.WithContext(ctx).
		Model(&model.ConnectedGoalModel{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"name":          goal.Name,
			"target_amount": goal.TargetAmount,
			"target_date":   goal.TargetDate,
			"updated_at":    goal.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrConnectedGoalNotFound
	}
	return nil
}

// Delete removes a goal with its participants, contributions and stars in one
// transaction, scoped to the owner.
func (r *connectedGoalRepository) Delete(ctx context.Context, goalID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND owner_id = ?", goalID, ownerID).
			Delete(&model.ConnectedGoalModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrConnectedGoalNotFound
		}

		if err := tx.Where("goal_id = ?", goalID).Delete(&model.ParticipantModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goalID).Delete(&model.ContributionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("goal_id = ?", goalID).Delete(&model.GoalStarModel{}).Error
	})
}

// AddContribution appends the signed contribution row and adjusts the goal's
// running amount by the same delta in one transaction.
func (r *connectedGoalRepository) AddContribution(ctx context.Context, contribution *entity.Contribution) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ContributionFromEntity(contribution)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.ConnectedGoalModel{}).
			Where("id = ?", contribution.GoalID).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount + ?", contribution.Amount),
				"updated_at":     contribution.CreatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrConnectedGoalNotFound
		}
		return nil
	})
}

// contributionRow carries a contribution joined with its contributor's name.
type contributionRow struct {
	ID          uuid.UUID
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UserName    string
}

// FindContributions retrieves a goal's contributions, newest first, with
// contributor names populated. Contributions outlive their contributor's
// account; rows whose user is gone carry the "Deleted user" placeholder.
func (r *connectedGoalRepository) FindContributions(ctx context.Context, goalID uuid.UUID) ([]*entity.Contribution, error) {
	var rows []contributionRow
	result := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Select("goal_contributions.*, COALESCE(users.name, 'Deleted user') AS user_name").
		Joins("LEFT JOIN users ON users.id = goal_contributions.user_id").
		Where("goal_contributions.goal_id = ?", goalID).
		Order("goal_contributions.date DESC, goal_contributions.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	contributions := make([]*entity.Contribution, len(rows))
	for i, row := range rows {
		contributions[i] = &entity.Contribution{
			ID:          row.ID,
			GoalID:      row.GoalID,
			UserID:      row.UserID,
			Amount:      row.Amount,
			Date:        row.Date,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UserName:    row.UserName,
		}
	}
	return contributions, nil
}

// ContributionsBreakdown aggregates signed contribution totals per
// participant, descending by total. Shares of deleted contributors stay in
// the breakdown under the "Deleted user" placeholder so the shares still sum
// to the goal's current amount.
func (r *connectedGoalRepository) ContributionsBreakdown(ctx context.Context, goalID uuid.UUID) ([]*entity.ParticipantShare, error) {
	var rows []struct {
		UserID   uuid.UUID
		UserName string
		Total    decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.ContributionModel{}).
		Select("goal_contributions.user_id, COALESCE(users.name, 'Deleted user') AS user_name, SUM(goal_contributions.amount) AS total").
		Joins("LEFT JOIN users ON users.id = goal_contributions.user_id").
		Where("goal_contributions.goal_id = ?", goalID).
		Group("goal_contributions.user_id, users.name").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	shares := make([]*entity.ParticipantShare, len(rows))
	for i, row := range rows {
		shares[i] = &entity.ParticipantShare{
			UserID:   row.UserID,
			UserName: row.UserName,
			Total:    row.Total,
		}
	}
	return shares, nil
}

// FindParticipant retrieves the participant row of a user on a goal.
func (r *connectedGoalRepository) FindParticipant(ctx context.Context, goalID, userID uuid.UUID) (*entity.Participant, error) {
	var participantModel model.ParticipantModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		First(&participantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return participantModel.ToEntity(), nil
}

// FindParticipantByID retrieves a participant row by its own ID.
func (r *connectedGoalRepository) FindParticipantByID(ctx context.Context, participantID uuid.UUID) (*entity.Participant, error) {
	var participantModel model.ParticipantModel
	result := r.db.WithContext(ctx).Where("id = ?", participantID).First(&participantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return participantModel.ToEntity(), nil
}

// FindAcceptedParticipants retrieves the accepted participants of a goal with
// user names populated.
func (r *connectedGoalRepository) FindAcceptedParticipants(ctx context.Context, goalID uuid.UUID) ([]*entity.Participant, error) {
	var rows []struct {
		ID       uuid.UUID
		GoalID   uuid.UUID
		UserID   uuid.UUID
		Status   string
		AddedAt  time.Time
		UserName string
	}
	result := r.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Select("goal_participants.*, users.name AS user_name").
		Joins("JOIN users ON users.id = goal_participants.user_id").
		Where("goal_participants.goal_id = ? AND goal_participants.status = ?", goalID, entity.ParticipantStatusAccepted).
		Order("goal_participants.added_at ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	participants := make([]*entity.Participant, len(rows))
	for i, row := range rows {
		participants[i] = &entity.Participant{
			ID:       row.ID,
			GoalID:   row.GoalID,
			UserID:   row.UserID,
			Status:   entity.ParticipantStatus(row.Status),
			AddedAt:  row.AddedAt,
			UserName: row.UserName,
		}
	}
	return participants, nil
}

// UpdateParticipantStatus transitions a participant row.
func (r *connectedGoalRepository) UpdateParticipantStatus(ctx context.Context, participantID uuid.UUID, status entity.ParticipantStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Where("id = ?", participantID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvitationNotFound
	}
	return nil
}

// DeleteParticipant removes a user's participant row from a goal. The user's
// contribution rows stay: the goal's running amount already includes them.
func (r *connectedGoalRepository) DeleteParticipant(ctx context.Context, goalID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		Delete(&model.ParticipantModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrConnectedGoalNotFound
	}
	return nil
}

// FindInvitations retrieves the pending invitations of a user, annotated with
// goal and inviter names.
func (r *connectedGoalRepository) FindInvitations(ctx context.Context, userID uuid.UUID) ([]*entity.Invitation, error) {
	var rows []struct {
		ParticipantID uuid.UUID
		GoalID        uuid.UUID
		GoalName      string
		InvitedBy     string
	}
	result := r.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Select("goal_participants.id AS participant_id, connected_goals.id AS goal_id, connected_goals.name AS goal_name, users.name AS invited_by").
		Joins("JOIN connected_goals ON connected_goals.id = goal_participants.goal_id").
		Joins("JOIN users ON users.id = connected_goals.owner_id").
		Where("goal_participants.user_id = ? AND goal_participants.status = ?", userID, entity.ParticipantStatusPending).
		Order("goal_participants.added_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	invitations := make([]*entity.Invitation, len(rows))
	for i, row := range rows {
		invitations[i] = &entity.Invitation{
			ParticipantID: row.ParticipantID,
			GoalID:        row.GoalID,
			GoalName:      row.GoalName,
			InvitedBy:     row.InvitedBy,
		}
	}
	return invitations, nil
}

// IsStarred reports whether the user has starred the goal.
func (r *connectedGoalRepository) IsStarred(ctx context.Context, goalID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalStarModel{}).
		Where("goal_id = ? AND user_id = ?", goalID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ToggleStar flips the user's star on the goal and returns the new state.
func (r *connectedGoalRepository) ToggleStar(ctx context.Context, goalID, userID uuid.UUID) (bool, error) {
	var starred bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("goal_id = ? AND user_id = ?", goalID, userID).
			Delete(&model.GoalStarModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			starred = false
			return nil
		}

		starred = true
		return tx.Create(&model.GoalStarModel{
			GoalID:    goalID,
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return false, err
	}
	return starred, nil
}
