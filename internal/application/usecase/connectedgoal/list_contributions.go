// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListContributionsInput represents the input for listing a goal's contributions.
type ListContributionsInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ListContributionsOutput represents the output of a contributions listing.
type ListContributionsOutput struct {
	Contributions []*entity.Contribution
}

// ListContributionsUseCase lists a goal's contributions for an accepted
// participant, newest first, with contributor names populated.
type ListContributionsUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewListContributionsUseCase creates a new ListContributionsUseCase instance.
func NewListContributionsUseCase(goalRepo adapter.ConnectedGoalRepository) *ListContributionsUseCase {
	return &ListContributionsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the listing.
func (uc *ListContributionsUseCase) Execute(ctx context.Context, input ListContributionsInput) (*ListContributionsOutput, error) {
	if _, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	contributions, err := uc.goalRepo.FindContributions(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	return &ListContributionsOutput{
		Contributions: contributions,
	}, nil
}
