package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestDeriveGoalStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		current    string
		target     string
		targetDate time.Time
		want       GoalStatus
	}{
		{
			name:       "underfunded goal with future date is active",
			current:    "100.00",
			target:     "500.00",
			targetDate: now.AddDate(0, 1, 0),
			want:       GoalStatusActive,
		},
		{
			name:       "goal funded to target is completed",
			current:    "500.00",
			target:     "500.00",
			targetDate: now.AddDate(0, 1, 0),
			want:       GoalStatusCompleted,
		},
		{
			name:       "goal funded past target is completed",
			current:    "650.50",
			target:     "500.00",
			targetDate: now.AddDate(0, 1, 0),
			want:       GoalStatusCompleted,
		},
		{
			name:       "underfunded goal past its date is failed",
			current:    "100.00",
			target:     "500.00",
			targetDate: now.AddDate(0, 0, -1),
			want:       GoalStatusFailed,
		},
		{
			name:       "completion wins over an expired date",
			current:    "500.00",
			target:     "500.00",
			targetDate: now.AddDate(0, 0, -30),
			want:       GoalStatusCompleted,
		},
		{
			name:       "goal due today is still active",
			current:    "100.00",
			target:     "500.00",
			targetDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			want:       GoalStatusActive,
		},
		{
			name:       "goal due yesterday failed at midnight",
			current:    "100.00",
			target:     "500.00",
			targetDate: time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
			want:       GoalStatusFailed,
		},
		{
			name:       "zero target counts as completed",
			current:    "0",
			target:     "0",
			targetDate: now.AddDate(0, 1, 0),
			want:       GoalStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, err := decimal.NewFromString(tt.current)
			if err != nil {
				t.Fatalf("invalid current amount: %v", err)
			}
			target, err := decimal.NewFromString(tt.target)
			if err != nil {
				t.Fatalf("invalid target amount: %v", err)
			}

			got := DeriveGoalStatus(current, target, tt.targetDate, now)
			if got != tt.want {
				t.Errorf("DeriveGoalStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGoalStatus_NeverStale(t *testing.T) {
	// The same goal reports different statuses as time moves, without any
	// write in between.
	goal := NewGoal(
		uuid.New(),
		"Vacation",
		decimal.RequireFromString("1000.00"),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	goal.CurrentAmount = decimal.RequireFromString("400.00")

	before := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	if got := goal.Status(before); got != GoalStatusActive {
		t.Errorf("before target date: got %s, want %s", got, GoalStatusActive)
	}

	after := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	if got := goal.Status(after); got != GoalStatusFailed {
		t.Errorf("after target date: got %s, want %s", got, GoalStatusFailed)
	}

	goal.CurrentAmount = decimal.RequireFromString("1000.00")
	if got := goal.Status(after); got != GoalStatusCompleted {
		t.Errorf("after funding to target: got %s, want %s", got, GoalStatusCompleted)
	}
}
