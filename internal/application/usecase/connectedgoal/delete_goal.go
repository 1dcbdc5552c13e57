// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for deleting a connected goal.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase deletes a connected goal with its participants,
// contributions and stars. Owner only; the owner-scoped delete treats
// everyone else's attempt as not found.
type DeleteGoalUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.ConnectedGoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.GoalID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrConnectedGoalNotFound) {
			return goalNotFound()
		}
		return fmt.Errorf("failed to delete connected goal: %w", err)
	}
	return nil
}
