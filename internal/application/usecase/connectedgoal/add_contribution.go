// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// AddContributionInput represents the input for a contribution to a shared goal.
type AddContributionInput struct {
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Kind        entity.ContributionKind
	Date        time.Time
	Description string
}

// AddContributionOutput represents the output of a contribution.
type AddContributionOutput struct {
	Contribution *entity.Contribution
}

// AddContributionUseCase records a signed contribution. The contribution row
// and the running-amount delta are written in one database transaction, so
// concurrent contributors cannot leave the sum and the rows disagreeing.
type AddContributionUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewAddContributionUseCase creates a new AddContributionUseCase instance.
func NewAddContributionUseCase(goalRepo adapter.ConnectedGoalRepository) *AddContributionUseCase {
	return &AddContributionUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the contribution.
func (uc *AddContributionUseCase) Execute(ctx context.Context, input AddContributionInput) (*AddContributionOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeInvalidContributionAmount,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContributionAmount,
		)
	}

	if input.Kind != entity.ContributionKindIncome && input.Kind != entity.ContributionKindExpense {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeInvalidContributionKind,
			"contribution kind must be 'income' or 'expense'",
			domainerror.ErrInvalidContributionKind,
		)
	}

	if _, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	contribution := entity.NewContribution(input.GoalID, input.UserID, input.Amount, input.Kind, input.Date, input.Description)

	if err := uc.goalRepo.AddContribution(ctx, contribution); err != nil {
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}

	return &AddContributionOutput{
		Contribution: contribution,
	}, nil
}
