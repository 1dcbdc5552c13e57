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

// ListGoalsInput represents the input for listing connected goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing connected goals.
type ListGoalsOutput struct {
	Goals []*entity.ConnectedGoalListItem
}

// ListGoalsUseCase lists every goal the user has accepted, annotated with the
// derived status, the caller's star and the accepted participant names.
type ListGoalsUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.ConnectedGoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAcceptedForUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected goals: %w", err)
	}

	now := time.Now().UTC()
	items := make([]*entity.ConnectedGoalListItem, 0, len(goals))
	for _, g := range goals {
		starred, err := uc.goalRepo.IsStarred(ctx, g.ID, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to read star: %w", err)
		}

		accepted, err := uc.goalRepo.FindAcceptedParticipants(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list participants: %w", err)
		}
		names := make([]string, 0, len(accepted))
		for _, p := range accepted {
			names = append(names, p.UserName)
		}

		items = append(items, &entity.ConnectedGoalListItem{
			Goal:         g,
			Status:       g.Status(now),
			IsStarred:    starred,
			Participants: names,
		})
	}

	return &ListGoalsOutput{
		Goals: items,
	}, nil
}
