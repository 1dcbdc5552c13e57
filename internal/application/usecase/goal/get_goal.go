// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal   *entity.Goal
	Status entity.GoalStatus
}

// GetGoalUseCase handles fetching a single goal.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal fetch.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	return &GetGoalOutput{
		Goal:   goal,
		Status: goal.Status(time.Now().UTC()),
	}, nil
}
