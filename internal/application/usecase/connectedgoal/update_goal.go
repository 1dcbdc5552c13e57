// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

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

// UpdateGoalInput represents the input for updating a connected goal.
// Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Name         *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
}

// UpdateGoalOutput represents the output of a connected goal update.
type UpdateGoalOutput struct {
	Goal   *entity.ConnectedGoal
	Status entity.GoalStatus
}

// UpdateGoalUseCase updates a connected goal. Only the owner may edit;
// accepted non-owners get a distinct forbidden error since the goal itself is
// visible to them.
type UpdateGoalUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.ConnectedGoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if goal.OwnerID != input.UserID {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeNotGoalOwner,
			"only the goal owner can edit the goal",
			domainerror.ErrNotGoalOwner,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewConnectedGoalError(
				domainerror.ErrCodeMissingConnectedFields,
				"goal name is required",
				nil,
			)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewConnectedGoalError(
				domainerror.ErrCodeMissingConnectedFields,
				"target amount must be greater than zero",
				nil,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update connected goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal:   goal,
		Status: goal.Status(time.Now().UTC()),
	}, nil
}
