// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// ToggleImportantInput represents the input for toggling a goal's important flag.
type ToggleImportantInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// ToggleImportantOutput reports the flag state after the toggle.
type ToggleImportantOutput struct {
	IsImportant bool
}

// ToggleImportantUseCase flips the important flag on a goal. Important goals
// sort to the top of the owner's list.
type ToggleImportantUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewToggleImportantUseCase creates a new ToggleImportantUseCase instance.
func NewToggleImportantUseCase(goalRepo adapter.GoalRepository) *ToggleImportantUseCase {
	return &ToggleImportantUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleImportantUseCase) Execute(ctx context.Context, input ToggleImportantInput) (*ToggleImportantOutput, error) {
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

	goal.IsImportant = !goal.IsImportant
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to toggle goal importance: %w", err)
	}

	return &ToggleImportantOutput{
		IsImportant: goal.IsImportant,
	}, nil
}
