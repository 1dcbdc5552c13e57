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

// ExtendDateInput represents the input for extending a failed goal's deadline.
type ExtendDateInput struct {
	GoalID     uuid.UUID
	OwnerID    uuid.UUID
	TargetDate time.Time
}

// ExtendDateOutput represents the output of a deadline extension.
type ExtendDateOutput struct {
	Goal   *entity.Goal
	Status entity.GoalStatus
}

// ExtendDateUseCase handles deadline extensions. Extension is a recovery path
// for failed goals only; active and completed goals change their date through
// a regular update instead.
type ExtendDateUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewExtendDateUseCase creates a new ExtendDateUseCase instance.
func NewExtendDateUseCase(goalRepo adapter.GoalRepository) *ExtendDateUseCase {
	return &ExtendDateUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the deadline extension.
func (uc *ExtendDateUseCase) Execute(ctx context.Context, input ExtendDateInput) (*ExtendDateOutput, error) {
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

	now := time.Now().UTC()
	if goal.Status(now) != entity.GoalStatusFailed {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFailed,
			"only a failed goal can have its date extended",
			domainerror.ErrGoalNotFailed,
		)
	}

	goal.TargetDate = input.TargetDate
	goal.UpdatedAt = now

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to extend goal date: %w", err)
	}

	return &ExtendDateOutput{
		Goal:   goal,
		Status: goal.Status(now),
	}, nil
}
