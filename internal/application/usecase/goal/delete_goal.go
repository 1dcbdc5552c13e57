// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for deleting a goal.
type DeleteGoalInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion. Deletion removes the goal and its
// funding history together.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.GoalID, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
