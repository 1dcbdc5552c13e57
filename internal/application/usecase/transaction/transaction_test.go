package transaction

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

func newTransactionRepo(t *testing.T) adapter.TransactionRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return persistence.NewTransactionRepository(db)
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, ownerID uuid.UUID, transactionType entity.TransactionType, amount, category string, date time.Time) *entity.Transaction {
	t.Helper()

	tx := entity.NewTransaction(ownerID, transactionType, decimal.RequireFromString(amount), category, date, "")
	if err := repo.Create(context.Background(), tx); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return tx
}

func TestCreateTransactionUseCase(t *testing.T) {
	t.Run("creates a valid transaction", func(t *testing.T) {
		repo := newTransactionRepo(t)
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			OwnerID:  uuid.New(),
			Type:     entity.TransactionTypeIncome,
			Amount:   decimal.RequireFromString("2500.00"),
			Category: "Salary",
			Date:     time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Category != "Salary" {
			t.Errorf("expected category Salary, got %s", output.Transaction.Category)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := newTransactionRepo(t)
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			OwnerID: uuid.New(),
			Type:    entity.TransactionType("transfer"),
			Amount:  decimal.RequireFromString("10.00"),
			Date:    time.Now().UTC(),
		})

		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) || txErr.Code != domainerror.ErrCodeInvalidTransactionType {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidTransactionType, err)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := newTransactionRepo(t)
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			OwnerID: uuid.New(),
			Type:    entity.TransactionTypeExpense,
			Amount:  decimal.Zero,
			Date:    time.Now().UTC(),
		})

		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) || txErr.Code != domainerror.ErrCodeInvalidTransactionAmount {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidTransactionAmount, err)
		}
	})
}

func TestListTransactionsUseCase_Filters(t *testing.T) {
	repo := newTransactionRepo(t)
	ownerID := uuid.New()
	now := time.Now().UTC()

	seedTransaction(t, repo, ownerID, entity.TransactionTypeIncome, "2500.00", "Salary", now.AddDate(0, -2, 0))
	seedTransaction(t, repo, ownerID, entity.TransactionTypeExpense, "80.00", "Groceries", now.AddDate(0, 0, -2))
	seedTransaction(t, repo, ownerID, entity.TransactionTypeExpense, "900.00", "Rent", now.AddDate(0, 0, -1))
	seedTransaction(t, repo, uuid.New(), entity.TransactionTypeExpense, "50.00", "Groceries", now)

	uc := NewListTransactionsUseCase(repo)

	t.Run("lists only the owner's transactions", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{OwnerID: ownerID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(output.Transactions))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			OwnerID: ownerID,
			Filter:  adapter.TransactionFilter{Type: entity.TransactionTypeExpense},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(output.Transactions))
		}
	})

	t.Run("filters by date", func(t *testing.T) {
		since := now.AddDate(0, 0, -7)
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			OwnerID: ownerID,
			Filter:  adapter.TransactionFilter{Since: &since},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Errorf("expected 2 recent transactions, got %d", len(output.Transactions))
		}
	})

	t.Run("searches category case-insensitively", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			OwnerID: ownerID,
			Filter:  adapter.TransactionFilter{Search: "groc"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 match, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Category != "Groceries" {
			t.Errorf("expected Groceries, got %s", output.Transactions[0].Category)
		}
	})
}

func TestDeleteTransactionsUseCase_OwnerScoped(t *testing.T) {
	repo := newTransactionRepo(t)
	ownerID := uuid.New()
	otherID := uuid.New()
	now := time.Now().UTC()

	mine := seedTransaction(t, repo, ownerID, entity.TransactionTypeExpense, "80.00", "Groceries", now)
	theirs := seedTransaction(t, repo, otherID, entity.TransactionTypeExpense, "50.00", "Groceries", now)

	uc := NewDeleteTransactionsUseCase(repo)
	if err := uc.Execute(context.Background(), DeleteTransactionsInput{
		OwnerID: ownerID,
		IDs:     []uuid.UUID{mine.ID, theirs.ID},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := NewListTransactionsUseCase(repo)

	output, err := list.Execute(context.Background(), ListTransactionsInput{OwnerID: ownerID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 0 {
		t.Errorf("expected owner's transaction deleted, got %d left", len(output.Transactions))
	}

	output, err = list.Execute(context.Background(), ListTransactionsInput{OwnerID: otherID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 1 {
		t.Errorf("expected the other user's transaction to survive, got %d", len(output.Transactions))
	}
}
