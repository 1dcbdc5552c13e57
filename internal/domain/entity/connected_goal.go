// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipantStatus represents the state of a connected-goal invitation.
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusDeclined ParticipantStatus = "declined"
)

// ContributionKind distinguishes money put into a shared goal from money
// taken out of it.
type ContributionKind string

const (
	ContributionKindIncome  ContributionKind = "income"
	ContributionKindExpense ContributionKind = "expense"
)

// ConnectedGoal represents a multi-participant savings goal. The running
// amount is a signed sum of contributions and may move in both directions,
// so the status is always derived, never a sticky flag: a goal that drops
// back below its target after reaching it reverts to active or failed.
type ConnectedGoal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewConnectedGoal creates a new ConnectedGoal entity.
func NewConnectedGoal(ownerID uuid.UUID, name string, targetAmount decimal.Decimal, targetDate time.Time) *ConnectedGoal {
	now := time.Now().UTC()
	return &ConnectedGoal{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Status derives the goal status at the given instant.
func (g *ConnectedGoal) Status(now time.Time) GoalStatus {
	return DeriveGoalStatus(g.CurrentAmount, g.TargetAmount, g.TargetDate, now)
}

// Participant represents a user invited to a connected goal. The owner is
// inserted as accepted at creation; everyone else starts pending. A declined
// row is kept so re-invitations are explicit owner actions, never a silent
// clean slate.
type Participant struct {
	ID      uuid.UUID
	GoalID  uuid.UUID
	UserID  uuid.UUID
	Status  ParticipantStatus
	AddedAt time.Time
	// User information (populated when needed)
	UserName string
}

// NewParticipant creates a new Participant entity.
func NewParticipant(goalID, userID uuid.UUID, status ParticipantStatus) *Participant {
	return &Participant{
		ID:      uuid.New(),
		GoalID:  goalID,
		UserID:  userID,
		Status:  status,
		AddedAt: time.Now().UTC(),
	}
}

// Contribution represents one signed, append-only transaction against a
// connected goal: positive for income, negative for expense. The sum of a
// goal's contributions always equals its CurrentAmount.
type Contribution struct {
	ID          uuid.UUID
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
	// UserName is populated on reads that join the contributor.
	UserName string
}

// NewContribution creates a Contribution, signing the amount by kind.
// The stored amount is +|amount| for income and -|amount| for expense.
func NewContribution(goalID, userID uuid.UUID, amount decimal.Decimal, kind ContributionKind, date time.Time, description string) *Contribution {
	signed := amount.Abs()
	if kind == ContributionKindExpense {
		signed = signed.Neg()
	}
	return &Contribution{
		ID:          uuid.New(),
		GoalID:      goalID,
		UserID:      userID,
		Amount:      signed,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// ParticipantShare is one row of a contributions breakdown: a participant's
// net signed total across all of their contributions to one goal.
type ParticipantShare struct {
	UserID   uuid.UUID
	UserName string
	Total    decimal.Decimal
}

// ConnectedGoalListItem represents a connected goal in a list view, annotated
// with the caller's star flag and the accepted participant names.
type ConnectedGoalListItem struct {
	Goal         *ConnectedGoal
	Status       GoalStatus
	IsStarred    bool
	Participants []string
}

// Invitation represents a pending participant row from the invitee's side.
type Invitation struct {
	ParticipantID uuid.UUID
	GoalID        uuid.UUID
	GoalName      string
	InvitedBy     string
}
