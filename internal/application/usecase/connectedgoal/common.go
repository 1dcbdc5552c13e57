// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// goalNotFound builds the shared absent-or-not-visible goal error. Pending and
// declined participants get the same answer as strangers.
func goalNotFound() *domainerror.ConnectedGoalError {
	return domainerror.NewConnectedGoalError(
		domainerror.ErrCodeConnectedGoalNotFound,
		"connected goal not found",
		domainerror.ErrConnectedGoalNotFound,
	)
}

// findVisibleGoal loads a goal and verifies the caller holds an accepted
// participant row on it.
func findVisibleGoal(ctx context.Context, repo adapter.ConnectedGoalRepository, goalID, userID uuid.UUID) (*entity.ConnectedGoal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrConnectedGoalNotFound) {
			return nil, goalNotFound()
		}
		return nil, fmt.Errorf("failed to find connected goal: %w", err)
	}

	participant, err := repo.FindParticipant(ctx, goalID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	if participant == nil || participant.Status != entity.ParticipantStatusAccepted {
		return nil, goalNotFound()
	}

	return goal, nil
}
