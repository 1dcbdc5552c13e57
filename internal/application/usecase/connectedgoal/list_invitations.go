// Package connectedgoal contains multi-participant goal use cases.
package connectedgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListInvitationsInput represents the input for listing pending invitations.
type ListInvitationsInput struct {
	UserID uuid.UUID
}

// ListInvitationsOutput represents the output of an invitations listing.
type ListInvitationsOutput struct {
	Invitations []*entity.Invitation
}

// ListInvitationsUseCase lists the caller's pending goal invitations.
type ListInvitationsUseCase struct {
	goalRepo adapter.ConnectedGoalRepository
}

// NewListInvitationsUseCase creates a new ListInvitationsUseCase instance.
func NewListInvitationsUseCase(goalRepo adapter.ConnectedGoalRepository) *ListInvitationsUseCase {
	return &ListInvitationsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the listing.
func (uc *ListInvitationsUseCase) Execute(ctx context.Context, input ListInvitationsInput) (*ListInvitationsOutput, error) {
	invitations, err := uc.goalRepo.FindInvitations(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return &ListInvitationsOutput{
		Invitations: invitations,
	}, nil
}
