// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// ExtendDateInput represents the input for extending a connected goal's deadline.
type ExtendDateInput struct {
	GoalID     uuid.UUID
	UserID     uuid.UUID
	TargetDate time.Time
}

// ExtendDateOutput represents the output of a deadline extension.
type ExtendDateOutput struct {
	Goal   *entity.ConnectedGoal
	Status entity.GoalStatus
}

// ExtendDateUseCase moves a connected goal's target date. Unlike personal
// goals there is no failed-only gate: the owner may extend at any time, since
// a shared pot keeps moving in both directions.
type ExtendDateUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewExtendDateUseCase creates a new ExtendDateUseCase instance.
func NewExtendDateUseCase(goalRepo adapter.ConnectedGoalRepository) *ExtendDateUseCase {
	return &ExtendDateUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the extension.
func (uc *ExtendDateUseCase) Execute(ctx context.Context, input ExtendDateInput) (*ExtendDateOutput, error) {
	goal, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if goal.OwnerID != input.UserID {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeNotGoalOwner,
			"only the goal owner can extend the date",
			domainerror.ErrNotGoalOwner,
		)
	}

	goal.TargetDate = input.TargetDate
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to extend goal date: %w", err)
	}

	return &ExtendDateOutput{
		Goal:   goal,
		Status: goal.Status(time.Now().UTC()),
	}, nil
}
