package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

func newGoalRepo(t *testing.T) adapter.GoalRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.GoalModel{}, &model.GoalFundingModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return persistence.NewGoalRepository(db)
}

func mustCreateGoal(t *testing.T, repo adapter.GoalRepository, ownerID uuid.UUID, target string, targetDate time.Time) *entity.Goal {
	t.Helper()

	uc := NewCreateGoalUseCase(repo)
	output, err := uc.Execute(context.Background(), CreateGoalInput{
		OwnerID:      ownerID,
		Name:         "Emergency fund",
		TargetAmount: decimal.RequireFromString(target),
		TargetDate:   targetDate,
	})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return output.Goal
}

func TestCreateGoalUseCase(t *testing.T) {
	repo := newGoalRepo(t)
	uc := NewCreateGoalUseCase(repo)
	ownerID := uuid.New()
	targetDate := time.Now().UTC().AddDate(0, 3, 0)

	t.Run("creates goal with zero running amount", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CreateGoalInput{
			OwnerID:      ownerID,
			Name:         "  New laptop  ",
			TargetAmount: decimal.RequireFromString("1500.00"),
			TargetDate:   targetDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Name != "New laptop" {
			t.Errorf("expected trimmed name, got %q", output.Goal.Name)
		}
		if !output.Goal.CurrentAmount.IsZero() {
			t.Errorf("expected zero current amount, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status(time.Now().UTC()) != entity.GoalStatusActive {
			t.Error("expected new goal to be active")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			OwnerID:      ownerID,
			Name:         "   ",
			TargetAmount: decimal.RequireFromString("100.00"),
			TargetDate:   targetDate,
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNameRequired {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeGoalNameRequired, err)
		}
	})

	t.Run("rejects non-positive target amount", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			OwnerID:      ownerID,
			Name:         "Car",
			TargetAmount: decimal.Zero,
			TargetDate:   targetDate,
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidTargetAmount {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidTargetAmount, err)
		}
	})
}

func TestAddFundUseCase(t *testing.T) {
	ownerID := uuid.New()
	targetDate := time.Now().UTC().AddDate(0, 3, 0)

	t.Run("funding bumps the running amount", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "1000.00", targetDate)

		uc := NewAddFundUseCase(repo)
		output, err := uc.Execute(context.Background(), AddFundInput{
			GoalID:      goal.ID,
			OwnerID:     ownerID,
			Amount:      decimal.RequireFromString("250.00"),
			Date:        time.Now().UTC(),
			Description: "Paycheck",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Funding.GoalID != goal.ID {
			t.Error("funding not linked to goal")
		}

		stored, err := repo.FindByID(context.Background(), goal.ID)
		if err != nil {
			t.Fatalf("failed to re-read goal: %v", err)
		}
		if !stored.CurrentAmount.Equal(decimal.RequireFromString("250.00")) {
			t.Errorf("expected current amount 250.00, got %s", stored.CurrentAmount)
		}
	})

	t.Run("funding to target completes the goal", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "500.00", targetDate)

		uc := NewAddFundUseCase(repo)
		if _, err := uc.Execute(context.Background(), AddFundInput{
			GoalID:  goal.ID,
			OwnerID: ownerID,
			Amount:  decimal.RequireFromString("500.00"),
			Date:    time.Now().UTC(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(context.Background(), goal.ID)
		if err != nil {
			t.Fatalf("failed to re-read goal: %v", err)
		}
		if got := stored.Status(time.Now().UTC()); got != entity.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", got)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "1000.00", targetDate)

		uc := NewAddFundUseCase(repo)
		_, err := uc.Execute(context.Background(), AddFundInput{
			GoalID:  goal.ID,
			OwnerID: ownerID,
			Amount:  decimal.RequireFromString("-10.00"),
			Date:    time.Now().UTC(),
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidFundAmount {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidFundAmount, err)
		}
	})

	t.Run("another user's goal reads as not found", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "1000.00", targetDate)

		uc := NewAddFundUseCase(repo)
		_, err := uc.Execute(context.Background(), AddFundInput{
			GoalID:  goal.ID,
			OwnerID: uuid.New(),
			Amount:  decimal.RequireFromString("10.00"),
			Date:    time.Now().UTC(),
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeGoalNotFound, err)
		}
	})
}

func TestExtendDateUseCase(t *testing.T) {
	ownerID := uuid.New()

	t.Run("extends a failed goal back to active", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "1000.00", time.Now().UTC().AddDate(0, 0, -7))

		uc := NewExtendDateUseCase(repo)
		newDate := time.Now().UTC().AddDate(0, 1, 0)
		output, err := uc.Execute(context.Background(), ExtendDateInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			TargetDate: newDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Status != entity.GoalStatusActive {
			t.Errorf("expected active status after extension, got %s", output.Status)
		}
		if !output.Goal.TargetDate.Equal(newDate) {
			t.Errorf("expected target date %s, got %s", newDate, output.Goal.TargetDate)
		}
	})

	t.Run("rejects extension of an active goal", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "1000.00", time.Now().UTC().AddDate(0, 1, 0))

		uc := NewExtendDateUseCase(repo)
		_, err := uc.Execute(context.Background(), ExtendDateInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			TargetDate: time.Now().UTC().AddDate(0, 2, 0),
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFailed {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeGoalNotFailed, err)
		}
	})

	t.Run("rejects extension of a completed goal", func(t *testing.T) {
		repo := newGoalRepo(t)
		goal := mustCreateGoal(t, repo, ownerID, "100.00", time.Now().UTC().AddDate(0, 0, -7))

		fund := NewAddFundUseCase(repo)
		if _, err := fund.Execute(context.Background(), AddFundInput{
			GoalID:  goal.ID,
			OwnerID: ownerID,
			Amount:  decimal.RequireFromString("100.00"),
			Date:    time.Now().UTC(),
		}); err != nil {
			t.Fatalf("failed to fund goal: %v", err)
		}

		uc := NewExtendDateUseCase(repo)
		_, err := uc.Execute(context.Background(), ExtendDateInput{
			GoalID:     goal.ID,
			OwnerID:    ownerID,
			TargetDate: time.Now().UTC().AddDate(0, 2, 0),
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFailed {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeGoalNotFailed, err)
		}
	})
}
