// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// LeaveGoalInput represents the input for leaving a connected goal.
type LeaveGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// LeaveGoalUseCase removes the caller's participant row from a goal. The
// owner cannot leave; they delete the goal instead. Past contributions of a
// leaver are kept so the goal's running amount stays the sum of its rows.
type LeaveGoalUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewLeaveGoalUseCase creates a new LeaveGoalUseCase instance.
func NewLeaveGoalUseCase(goalRepo adapter.ConnectedGoalRepository) *LeaveGoalUseCase {
	return &LeaveGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the leave.
func (uc *LeaveGoalUseCase) Execute(ctx context.Context, input LeaveGoalInput) error {
	goal, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return err
	}

	if goal.OwnerID == input.UserID {
		return domainerror.NewConnectedGoalError(
			domainerror.ErrCodeOwnerCannotLeave,
			"owner cannot leave their own goal",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	if err := uc.goalRepo.DeleteParticipant(ctx, input.GoalID, input.UserID); err != nil {
		return fmt.Errorf("failed to leave goal: %w", err)
	}

	return nil
}
