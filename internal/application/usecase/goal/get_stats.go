// Package goal contains personal savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// GetStatsInput represents the input for the goal stats summary.
type GetStatsInput struct {
	OwnerID uuid.UUID
}

// GetStatsOutput represents the output of the goal stats summary.
type GetStatsOutput struct {
	Stats entity.GoalStats
}

// GetStatsUseCase counts an owner's goals per derived status. Counting happens
// over derived statuses so the numbers agree with what the list endpoint shows
// at the same instant.
type GetStatsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(goalRepo adapter.GoalRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the stats.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	goals, err := uc.goalRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	stats := entity.GoalStats{Total: len(goals)}
	for _, g := range goals {
		switch g.Status(now) {
		case entity.GoalStatusCompleted:
			stats.Completed++
		case entity.GoalStatusFailed:
			stats.Failed++
		default:
			stats.Active++
		}
	}

	return &GetStatsOutput{
		Stats: stats,
	}, nil
}
