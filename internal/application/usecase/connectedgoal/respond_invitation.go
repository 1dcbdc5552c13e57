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

// RespondInvitationInput represents the input for answering an invitation.
type RespondInvitationInput struct {
	ParticipantID uuid.UUID
	UserID        uuid.UUID
	Accept        bool
}

// RespondInvitationOutput reports the resulting participant status.
type RespondInvitationOutput struct {
	Status entity.ParticipantStatus
}

// RespondInvitationUseCase answers a pending invitation. Only the invitee may
// answer, and only once; a declined row stays on the goal until the owner
// re-invites or removes it.
type RespondInvitationUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewRespondInvitationUseCase creates a new RespondInvitationUseCase instance.
func NewRespondInvitationUseCase(goalRepo adapter.ConnectedGoalRepository) *RespondInvitationUseCase {
	return &RespondInvitationUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the response.
func (uc *RespondInvitationUseCase) Execute(ctx context.Context, input RespondInvitationInput) (*RespondInvitationOutput, error) {
	participant, err := uc.goalRepo.FindParticipantByID(ctx, input.ParticipantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}
	if participant == nil || participant.UserID != input.UserID {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeInvitationNotFound,
			"invitation not found",
			domainerror.ErrInvitationNotFound,
		)
	}

	if participant.Status != entity.ParticipantStatusPending {
		return nil, domainerror.NewConnectedGoalError(
			domainerror.ErrCodeInvitationNotPending,
			"invitation is no longer pending",
			domainerror.ErrInvitationNotPending,
		)
	}

	status := entity.ParticipantStatusDeclined
	if input.Accept {
		status = entity.ParticipantStatusAccepted
	}

	if err := uc.goalRepo.UpdateParticipantStatus(ctx, input.ParticipantID, status); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	return &RespondInvitationOutput{
		Status: status,
	}, nil
}
