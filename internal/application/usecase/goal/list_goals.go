// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	OwnerID uuid.UUID
}

// GoalOutput is a goal annotated with its derived status.
type GoalOutput struct {
	Goal   *entity.Goal
	Status entity.GoalStatus
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals. Status is derived per goal at read
// time, so a goal whose target date passed overnight lists as failed without
// any sweep having run.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, &GoalOutput{
			Goal:   g,
			Status: g.Status(now),
		})
	}

	return output, nil
}
