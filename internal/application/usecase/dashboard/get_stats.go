// Package dashboard contains the dashboard aggregation use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// GetStatsInput represents the input for the dashboard summary.
type GetStatsInput struct {
	UserID uuid.UUID
}

// GetStatsOutput represents the output of the dashboard summary.
type GetStatsOutput struct {
	Stats entity.DashboardStats
}

// GetStatsUseCase aggregates the user's position: all-time balance, the
// current calendar month's income and expense, and the count of active goals.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(transactionRepo adapter.TransactionRepository, goalRepo adapter.GoalRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// Execute computes the dashboard stats.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	totalIncome, err := uc.transactionRepo.SumByType(ctx, input.UserID, entity.TransactionTypeIncome, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	totalExpense, err := uc.transactionRepo.SumByType(ctx, input.UserID, entity.TransactionTypeExpense, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expense: %w", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	monthlyIncome, err := uc.transactionRepo.SumByType(ctx, input.UserID, entity.TransactionTypeIncome, &monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly income: %w", err)
	}
	monthlyExpense, err := uc.transactionRepo.SumByType(ctx, input.UserID, entity.TransactionTypeExpense, &monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly expense: %w", err)
	}

	goals, err := uc.goalRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	activeGoals := 0
	for _, g := range goals {
		if g.Status(now) == entity.GoalStatusActive {
			activeGoals++
		}
	}

	return &GetStatsOutput{
		Stats: entity.DashboardStats{
			TotalBalance:   totalIncome.Sub(totalExpense),
			MonthlyIncome:  monthlyIncome,
			MonthlyExpense: monthlyExpense,
			ActiveGoals:    activeGoals,
		},
	}, nil
}
