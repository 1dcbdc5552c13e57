// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ContributionsBreakdownInput represents the input for a per-participant breakdown.
type ContributionsBreakdownInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ContributionsBreakdownOutput represents the output of a breakdown.
type ContributionsBreakdownOutput struct {
	Shares []*entity.ParticipantShare
}

// ContributionsBreakdownUseCase aggregates net signed totals per participant,
// biggest contributor first. Expenses count against a participant's share.
type ContributionsBreakdownUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewContributionsBreakdownUseCase creates a new ContributionsBreakdownUseCase instance.
func NewContributionsBreakdownUseCase(goalRepo adapter.ConnectedGoalRepository) *ContributionsBreakdownUseCase {
	return &ContributionsBreakdownUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the breakdown.
func (uc *ContributionsBreakdownUseCase) Execute(ctx context.Context, input ContributionsBreakdownInput) (*ContributionsBreakdownOutput, error) {
	if _, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	shares, err := uc.goalRepo.ContributionsBreakdown(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute contributions breakdown: %w", err)
	}

	return &ContributionsBreakdownOutput{
		Shares: shares,
	}, nil
}
