// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// GetGoalInput represents the input for fetching one connected goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of fetching one connected goal.
type GetGoalOutput struct {
	Goal         *entity.ConnectedGoal
	Status       entity.GoalStatus
	IsStarred    bool
	Participants []*entity.Participant
}

// GetGoalUseCase fetches a connected goal for an accepted participant.
type GetGoalUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.ConnectedGoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the fetch.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	starred, err := uc.goalRepo.IsStarred(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read star: %w", err)
	}

	participants, err := uc.goalRepo.FindAcceptedParticipants(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return &GetGoalOutput{
		Goal:         goal,
		Status:       goal.Status(time.Now().UTC()),
		IsStarred:    starred,
		Participants: participants,
	}, nil
}
