// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
)

// ToggleStarInput represents the input for toggling a goal star.
type ToggleStarInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ToggleStarOutput reports the star state after the toggle.
type ToggleStarOutput struct {
	IsStarred bool
}

// ToggleStarUseCase flips the caller's star on a goal. Stars are per user;
// one participant starring a goal changes nothing for the others.
type ToggleStarUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewToggleStarUseCase creates a new ToggleStarUseCase instance.
func NewToggleStarUseCase(goalRepo adapter.ConnectedGoalRepository) *ToggleStarUseCase {
	return &ToggleStarUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleStarUseCase) Execute(ctx context.Context, input ToggleStarInput) (*ToggleStarOutput, error) {
	if _, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	starred, err := uc.goalRepo.ToggleStar(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle star: %w", err)
	}

	return &ToggleStarOutput{
		IsStarred: starred,
	}, nil
}
