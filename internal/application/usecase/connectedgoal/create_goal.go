// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// CreateGoalInput represents the input for connected goal creation.
type CreateGoalInput struct {
	OwnerID      uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
	Participants []uuid.UUID
}

// CreateGoalOutput represents the output of connected goal creation.
type CreateGoalOutput struct {
	Goal *entity.ConnectedGoal
}

// CreateGoalUseCase creates a connected goal. Invitees must be connections of
// the owner. The goal, the owner's accepted participant row and every
// invitee's pending row are written in one database transaction; invitation
// notifications and emails follow after the commit.
type CreateGoalUseCase struct {
	goalRepo         adapter.ConnectedGoalRepository
	userRepo         adapter.UserRepository
	connectionRepo   adapter.ConnectionRepository
	notificationRepo adapter.NotificationRepository
	emailQueue       adapter.EmailQueueRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.ConnectedGoalRepository,
	userRepo adapter.UserRepository,
	connectionRepo adapter.ConnectionRepository,
	notificationRepo adapter.NotificationRepository,
	emailQueue adapter.EmailQueueRepository,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:         goalRepo,
		userRepo:         userRepo,
		connectionRepo:   connectionRepo,
		notificationRepo: notificationRepo,
		emailQueue:       emailQueue,
	}
}

// Execute performs the connected goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeMissingConnectedFields,
			"goal name and a positive target amount are required",
			nil,
		)
	}

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}

	goal := entity.NewConnectedGoal(input.OwnerID, name, input.TargetAmount, input.TargetDate)

	participants := make([]*entity.Participant, 0, len(input.Participants)+1)
	participants = append(participants, entity.NewParticipant(goal.ID, input.OwnerID, entity.ParticipantStatusAccepted))

	invitees := make([]*entity.User, 0, len(input.Participants))
	for _, userID := range input.Participants {
		if userID == input.OwnerID {
			continue
		}
		invitee, err := uc.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to find invited user: %w", err)
		}
		connected, err := uc.connectionRepo.AreConnected(ctx, input.OwnerID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check connection: %w", err)
		}
		if !connected {
			return nil, domainerror.NewConnectionError(
				domainerror.ErrCodeUsersNotConnected,
				fmt.Sprintf("%s is not one of your connections", invitee.Name),
				domainerror.ErrUsersNotConnected,
			)
		}
		participants = append(participants, entity.NewParticipant(goal.ID, userID, entity.ParticipantStatusPending))
		invitees = append(invitees, invitee)
	}

	if err := uc.goalRepo.CreateWithParticipants(ctx, goal, participants); err != nil {
		return nil, fmt.Errorf("failed to create connected goal: %w", err)
	}

	for _, invitee := range invitees {
		uc.notifyInvitee(ctx, goal, owner, invitee)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

// notifyInvitee records an in-app notification and enqueues the invitation
// email. Failures here do not undo the created goal.
func (uc *CreateGoalUseCase) notifyInvitee(ctx context.Context, goal *entity.ConnectedGoal, owner, invitee *entity.User) {
	notification := entity.NewNotification(
		invitee.ID,
		fmt.Sprintf("%s invited you to the goal %q", owner.Name, goal.Name),
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
}
