package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	"github.com/finmate/backend/internal/integration/persistence"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

type dashboardFixture struct {
	transactions adapter.TransactionRepository
	goals        adapter.GoalRepository
}

func newDashboardFixture(t *testing.T) dashboardFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.TransactionModel{},
		&model.GoalModel{},
		&model.GoalFundingModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return dashboardFixture{
		transactions: persistence.NewTransactionRepository(db),
		goals:        persistence.NewGoalRepository(db),
	}
}

func (f dashboardFixture) seedTransaction(t *testing.T, ownerID uuid.UUID, transactionType entity.TransactionType, amount string, date time.Time) {
	t.Helper()

	tx := entity.NewTransaction(ownerID, transactionType, decimal.RequireFromString(amount), "General", date, "")
	if err := f.transactions.Create(context.Background(), tx); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}

func (f dashboardFixture) seedGoal(t *testing.T, ownerID uuid.UUID, targetDate time.Time) {
	t.Helper()

	goal := entity.NewGoal(ownerID, "Goal", decimal.RequireFromString("1000.00"), targetDate)
	if err := f.goals.Create(context.Background(), goal); err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}
}

func TestGetStatsUseCase(t *testing.T) {
	f := newDashboardFixture(t)
	ownerID := uuid.New()
	now := time.Now().UTC()
	lastYear := now.AddDate(-1, 0, 0)

	// All-time: 3000 income, 1100 expense. This month: 500 income, 100 expense.
	f.seedTransaction(t, ownerID, entity.TransactionTypeIncome, "2500.00", lastYear)
	f.seedTransaction(t, ownerID, entity.TransactionTypeExpense, "1000.00", lastYear)
	f.seedTransaction(t, ownerID, entity.TransactionTypeIncome, "500.00", now)
	f.seedTransaction(t, ownerID, entity.TransactionTypeExpense, "100.00", now)
	f.seedTransaction(t, uuid.New(), entity.TransactionTypeIncome, "9999.00", now)

	// One active goal, one past-due goal that derives as failed.
	f.seedGoal(t, ownerID, now.AddDate(1, 0, 0))
	f.seedGoal(t, ownerID, now.AddDate(0, 0, -30))

	uc := NewGetStatsUseCase(f.transactions, f.goals)
	output, err := uc.Execute(context.Background(), GetStatsInput{UserID: ownerID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Stats.TotalBalance.Equal(decimal.RequireFromString("1900.00")) {
		t.Errorf("expected balance 1900.00, got %s", output.Stats.TotalBalance)
	}
	if !output.Stats.MonthlyIncome.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected monthly income 500.00, got %s", output.Stats.MonthlyIncome)
	}
	if !output.Stats.MonthlyExpense.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected monthly expense 100.00, got %s", output.Stats.MonthlyExpense)
	}
	if output.Stats.ActiveGoals != 1 {
		t.Errorf("expected 1 active goal, got %d", output.Stats.ActiveGoals)
	}
}

func TestGetStatsUseCase_EmptyUser(t *testing.T) {
	f := newDashboardFixture(t)

	uc := NewGetStatsUseCase(f.transactions, f.goals)
	output, err := uc.Execute(context.Background(), GetStatsInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Stats.TotalBalance.IsZero() {
		t.Errorf("expected zero balance, got %s", output.Stats.TotalBalance)
	}
	if output.Stats.ActiveGoals != 0 {
		t.Errorf("expected no active goals, got %d", output.Stats.ActiveGoals)
	}
}
