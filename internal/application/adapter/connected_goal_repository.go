// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// ConnectedGoalRepository defines the interface for shared goal persistence operations.
type ConnectedGoalRepository interface {
	// CreateWithParticipants creates the goal and every participant row in one
	// database transaction: either the goal exists with its full invitation
	// set, or nothing was written.
	CreateWithParticipants(ctx context.Context, goal *entity.ConnectedGoal, participants []*entity.Participant) error

	// FindByID retrieves a connected goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ConnectedGoal, error)

	// FindAcceptedForUser retrieves every goal where the user holds an
	// accepted participant row, starred first, newest first.
	FindAcceptedForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedGoal, error)

	// Update updates name, target amount and target date of a goal.
	Update(ctx context.Context, goal *entity.ConnectedGoal) error

	// Delete removes a goal with its participants, contributions and stars in
	// one transaction. Scoped to the owner; zero affected rows surface as
	// ErrConnectedGoalNotFound.
	Delete(ctx context.Context, goalID, ownerID uuid.UUID) error

	// AddContribution appends a signed contribution row and adjusts the goal's
	// running amount by the same delta in a single database transaction.
	AddContribution(ctx context.Context, contribution *entity.Contribution) error

	// FindContributions retrieves a goal's contributions, newest first, with
	// contributor names populated.
	FindContributions(ctx context.Context, goalID uuid.UUID) ([]*entity.Contribution, error)

	// ContributionsBreakdown aggregates signed contribution totals per
	// participant, descending by total.
	ContributionsBreakdown(ctx context.Context, goalID uuid.UUID) ([]*entity.ParticipantShare, error)

	// FindParticipant retrieves the participant row of a user on a goal.
	// Returns (nil, nil) when the user was never invited.
	FindParticipant(ctx context.Context, goalID, userID uuid.UUID) (*entity.Participant, error)

	// FindParticipantByID retrieves a participant row by its own ID.
	// Returns (nil, nil) when absent.
	FindParticipantByID(ctx context.Context, participantID uuid.UUID) (*entity.Participant, error)

	// FindAcceptedParticipants retrieves the accepted participants of a goal
	// with user names populated.
	FindAcceptedParticipants(ctx context.Context, goalID uuid.UUID) ([]*entity.Participant, error)

	// UpdateParticipantStatus transitions a participant row.
	UpdateParticipantStatus(ctx context.Context, participantID uuid.UUID, status entity.ParticipantStatus) error

	// DeleteParticipant removes a user's participant row from a goal.
	DeleteParticipant(ctx context.Context, goalID, userID uuid.UUID) error

	// FindInvitations retrieves the pending invitations of a user, annotated
	// with goal and inviter names.
	FindInvitations(ctx context.Context, userID uuid.UUID) ([]*entity.Invitation, error)

	// IsStarred reports whether the user has starred the goal.
	IsStarred(ctx context.Context, goalID, userID uuid.UUID) (bool, error)

	// ToggleStar flips the user's star on the goal and returns the new state.
	ToggleStar(ctx context.Context, goalID, userID uuid.UUID) (bool, error)
}
