// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the derived lifecycle status of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusFailed    GoalStatus = "failed"
)

// Goal represents a single-owner savings goal in the FinMate system.
//
// Status is never stored. It is derived from the running amount, the target
// and the target date on every read, so a goal can never carry a stale flag.
type Goal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	IsImportant   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity with a zero running amount.
func NewGoal(ownerID uuid.UUID, name string, targetAmount decimal.Decimal, targetDate time.Time) *Goal {
	now := time.Now().UTC()
	return &Goal{
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
func (g *Goal) Status(now time.Time) GoalStatus {
	return DeriveGoalStatus(g.CurrentAmount, g.TargetAmount, g.TargetDate, now)
}

// DeriveGoalStatus computes the status of a goal as a pure function of its
// running amount, target amount and target date. Completion wins over failure:
// a goal funded to its target on the last day is completed, not failed.
func DeriveGoalStatus(current, target decimal.Decimal, targetDate, now time.Time) GoalStatus {
	if current.GreaterThanOrEqual(target) {
		return GoalStatusCompleted
	}
	if endOfDay(targetDate).Before(now) {
		return GoalStatusFailed
	}
	return GoalStatusActive
}

// endOfDay returns the last instant of the calendar day containing t, in UTC.
// A goal due today is still active for the whole of today.
func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
}

// GoalFunding represents one append-only contribution toward a personal goal.
// Fundings are never edited or deleted individually; the sum of a goal's
// fundings always equals its CurrentAmount.
type GoalFunding struct {
	ID          uuid.UUID
	GoalID      uuid.UUID
	OwnerID     uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// NewGoalFunding creates a new GoalFunding entity.
func NewGoalFunding(goalID, ownerID uuid.UUID, amount decimal.Decimal, date time.Time, description string) *GoalFunding {
	return &GoalFunding{
		ID:          uuid.New(),
		GoalID:      goalID,
		OwnerID:     ownerID,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// GoalStats represents per-status goal counts for one owner.
type GoalStats struct {
	Total     int
	Active    int
	Completed int
	Failed    int
}
