// Package goal contains personal savings goal use cases.
package goal

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

// UpdateGoalInput represents the input for updating a goal. Nil fields are
// left unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	OwnerID      uuid.UUID
	Name         *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal   *entity.Goal
	Status entity.GoalStatus
}

// UpdateGoalUseCase handles goal updates. The running amount is never editable
// here; it only moves through fundings.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.OwnerID != input.OwnerID {
		return nil, notFound()
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNameRequired,
				"goal name is required",
				domainerror.ErrGoalNameRequired,
			)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal:   goal,
		Status: goal.Status(time.Now().UTC()),
	}, nil
}
