// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// ListFundingsInput represents the input for listing a goal's funding history.
type ListFundingsInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// ListFundingsOutput represents the output of a funding history listing.
type ListFundingsOutput struct {
	Fundings []*entity.GoalFunding
}

// ListFundingsUseCase handles listing a goal's funding history.
type ListFundingsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListFundingsUseCase creates a new ListFundingsUseCase instance.
func NewListFundingsUseCase(goalRepo adapter.GoalRepository) *ListFundingsUseCase {
	return &ListFundingsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the funding history listing.
func (uc *ListFundingsUseCase) Execute(ctx context.Context, input ListFundingsInput) (*ListFundingsOutput, error) {
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

	fundings, err := uc.goalRepo.FindFundings(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundings: %w", err)
	}

	return &ListFundingsOutput{
		Fundings: fundings,
	}, nil
}
