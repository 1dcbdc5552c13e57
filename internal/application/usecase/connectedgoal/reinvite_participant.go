// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// ReinviteParticipantInput represents the input for re-inviting a declined participant.
type ReinviteParticipantInput struct {
	GoalID        uuid.UUID
	OwnerID       uuid.UUID
	ParticipantID uuid.UUID
}

// ReinviteParticipantUseCase turns a declined participant row back to pending.
// Owner only. The invitee gets a fresh notification and email; their earlier
// decline stays an explicit part of the history until they answer again.
type ReinviteParticipantUseCase struct {
	goalRepo         adapter.ConnectedGoalRepository
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
	emailQueue       adapter.EmailQueueRepository
}

// NewReinviteParticipantUseCase creates a new ReinviteParticipantUseCase instance.
func NewReinviteParticipantUseCase(
	goalRepo adapter.ConnectedGoalRepository,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
	emailQueue adapter.EmailQueueRepository,
) *ReinviteParticipantUseCase {
	return &ReinviteParticipantUseCase{
		goalRepo:         goalRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailQueue:       emailQueue,
	}
}

// Execute performs the re-invitation.
func (uc *ReinviteParticipantUseCase) Execute(ctx context.Context, input ReinviteParticipantInput) error {
	goal, err := findVisibleGoal(ctx, uc.goalRepo, input.GoalID, input.OwnerID)
	if err != nil {
		return err
	}

	if goal.OwnerID != input.OwnerID {
		return domainerror.NewConnectedGoalError(
			domainerror.ErrCodeNotGoalOwner,
			"only the goal owner can re-invite participants",
			domainerror.ErrNotGoalOwner,
		)
	}

	participant, err := uc.goalRepo.FindParticipantByID(ctx, input.ParticipantID)
	if err != nil {
		return fmt.Errorf("failed to find participant: %w", err)
	}
	if participant == nil || participant.GoalID != input.GoalID {
		return domainerror.NewConnectedGoalError(
			domainerror.ErrCodeInvitationNotFound,
			"participant not found on this goal",
			domainerror.ErrInvitationNotFound,
		)
	}

	if participant.Status != entity.ParticipantStatusDeclined {
		return domainerror.NewConnectedGoalError(
			domainerror.ErrCodeParticipantNotDeclined,
			"only a declined participant can be re-invited",
			domainerror.ErrParticipantNotDeclined,
		)
	}

	if err := uc.goalRepo.UpdateParticipantStatus(ctx, input.ParticipantID, entity.ParticipantStatusPending); err != nil {
		return fmt.Errorf("failed to re-invite participant: %w", err)
	}

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to find owner: %w", err)
	}
	invitee, err := uc.userRepo.FindByID(ctx, participant.UserID)
	if err != nil {
		return fmt.Errorf("failed to find invited user: %w", err)
	}

	notification := entity.NewNotification(
		invitee.ID,
		fmt.Sprintf("%s invited you again to the goal %q", owner.Name, goal.Name),
	)
	_ = uc.notificationRepo.Create(ctx, notification)

	job := entity.NewEmailJob(
		entity.TemplateGoalInvitation,
		invitee.Email,
		invitee.Name,
		fmt.Sprintf("You were invited to the goal %q", goal.Name),
		map[string]interface{}{
			"GoalName":     goal.Name,
			"InviterName":  owner.Name,
			"TargetAmount": goal.TargetAmount.StringFixed(2),
		},
	)
	_ = uc.emailQueue.Enqueue(ctx, job)

	return nil
}
