// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// AddFundInput represents the input for adding money to a goal.
type AddFundInput struct {
	GoalID      uuid.UUID
	OwnerID     uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// AddFundOutput represents the output of a fund addition.
type AddFundOutput struct {
	Funding *entity.GoalFunding
}

// AddFundUseCase handles fund additions to a personal goal. The funding row
// and the running-amount increment are written in one database transaction so
// the sum-of-fundings invariant can never be observed broken.
type AddFundUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewAddFundUseCase creates a new AddFundUseCase instance.
func NewAddFundUseCase(goalRepo adapter.GoalRepository) *AddFundUseCase {
	return &AddFundUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the fund addition.
func (uc *AddFundUseCase) Execute(ctx context.Context, input AddFundInput) (*AddFundOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidFundAmount,
			"fund amount must be greater than zero",
			domainerror.ErrInvalidFundAmount,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	// Absent and not-owned are the same error on purpose.
	if goal.OwnerID != input.OwnerID {
		return nil, notFound()
	}

	funding := entity.NewGoalFunding(input.GoalID, input.OwnerID, input.Amount, input.Date, input.Description)

	if err := uc.goalRepo.AddFund(ctx, funding); err != nil {
		return nil, fmt.Errorf("failed to add fund: %w", err)
	}

	return &AddFundOutput{
		Funding: funding,
	}, nil
}

// notFound builds the shared absent-or-not-owner goal error.
func notFound() *domainerror.GoalError {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
