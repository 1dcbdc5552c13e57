package ledgerbook

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

type ledgerRepos struct {
	accounts adapter.AccountRepository
	books    adapter.LedgerBookRepository
	entries  adapter.LedgerEntryRepository
}

func newLedgerRepos(t *testing.T) ledgerRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.LedgerBookModel{},
		&model.LedgerEntryModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return ledgerRepos{
		accounts: persistence.NewAccountRepository(db),
		books:    persistence.NewLedgerBookRepository(db),
		entries:  persistence.NewLedgerEntryRepository(db),
	}
}

func mustCreateAccount(t *testing.T, repos ledgerRepos, ownerID uuid.UUID, accountType entity.AccountType) *entity.Account {
	t.Helper()

	uc := NewCreateAccountUseCase(repos.accounts)
	output, err := uc.Execute(context.Background(), CreateAccountInput{
		OwnerID: ownerID,
		Type:    accountType,
		Name:    "Acme Traders",
	})
	if err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return output.Account
}

func mustCreateBook(t *testing.T, repos ledgerRepos, accountID, ownerID uuid.UUID) *entity.LedgerBook {
	t.Helper()

	uc := NewCreateBookUseCase(repos.accounts, repos.books)
	output, err := uc.Execute(context.Background(), CreateBookInput{
		AccountID: accountID,
		OwnerID:   ownerID,
		Name:      "April",
		BookDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to create book: %v", err)
	}
	return output.Book
}

func TestCreateAccountUseCase_Validation(t *testing.T) {
	repos := newLedgerRepos(t)
	uc := NewCreateAccountUseCase(repos.accounts)

	t.Run("rejects unknown account type", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAccountInput{
			OwnerID: uuid.New(),
			Type:    entity.AccountType("vendor"),
			Name:    "Acme",
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidAccountType {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidAccountType, err)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAccountInput{
			OwnerID: uuid.New(),
			Type:    entity.AccountTypeClient,
			Name:    "  ",
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeAccountNameRequired {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeAccountNameRequired, err)
		}
	})
}

func TestCreateEntryUseCase(t *testing.T) {
	ownerID := uuid.New()

	t.Run("client account maps paid amount to credit", func(t *testing.T) {
		repos := newLedgerRepos(t)
		account := mustCreateAccount(t, repos, ownerID, entity.AccountTypeClient)
		book := mustCreateBook(t, repos, account.ID, ownerID)

		uc := NewCreateEntryUseCase(repos.accounts, repos.books, repos.entries)
		output, err := uc.Execute(context.Background(), CreateEntryInput{
			BookID:      book.ID,
			OwnerID:     ownerID,
			BillNo:      "INV-001",
			EntryDate:   time.Now().UTC(),
			TotalAmount: decimal.RequireFromString("1000.00"),
			PaidAmount:  decimal.RequireFromString("600.00"),
			PaymentType: entity.PaymentTypeCash,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Entry.Credit.Equal(decimal.RequireFromString("600.00")) {
			t.Errorf("expected credit 600.00, got %s", output.Entry.Credit)
		}
		if !output.Entry.Debit.IsZero() {
			t.Errorf("expected zero debit, got %s", output.Entry.Debit)
		}
		if !output.Entry.Pending.Equal(decimal.RequireFromString("400.00")) {
			t.Errorf("expected pending 400.00, got %s", output.Entry.Pending)
		}
		if output.Entry.Completed {
			t.Error("expected partially paid entry to be incomplete")
		}
	})

	t.Run("supplier account maps paid amount to debit", func(t *testing.T) {
		repos := newLedgerRepos(t)
		account := mustCreateAccount(t, repos, ownerID, entity.AccountTypeSupplier)
		book := mustCreateBook(t, repos, account.ID, ownerID)

		uc := NewCreateEntryUseCase(repos.accounts, repos.books, repos.entries)
		output, err := uc.Execute(context.Background(), CreateEntryInput{
			BookID:      book.ID,
			OwnerID:     ownerID,
			EntryDate:   time.Now().UTC(),
			TotalAmount: decimal.RequireFromString("500.00"),
			PaidAmount:  decimal.RequireFromString("500.00"),
			PaymentType: entity.PaymentTypeOnline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Entry.Debit.Equal(decimal.RequireFromString("500.00")) {
			t.Errorf("expected debit 500.00, got %s", output.Entry.Debit)
		}
		if !output.Entry.Credit.IsZero() {
			t.Errorf("expected zero credit, got %s", output.Entry.Credit)
		}
		if !output.Entry.Completed {
			t.Error("expected fully paid entry to be completed")
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		repos := newLedgerRepos(t)
		account := mustCreateAccount(t, repos, ownerID, entity.AccountTypeClient)
		book := mustCreateBook(t, repos, account.ID, ownerID)

		uc := NewCreateEntryUseCase(repos.accounts, repos.books, repos.entries)
		_, err := uc.Execute(context.Background(), CreateEntryInput{
			BookID:      book.ID,
			OwnerID:     ownerID,
			EntryDate:   time.Now().UTC(),
			TotalAmount: decimal.RequireFromString("-10.00"),
			PaidAmount:  decimal.Zero,
			PaymentType: entity.PaymentTypeCash,
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidEntryAmount {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidEntryAmount, err)
		}
	})

	t.Run("rejects unknown payment type", func(t *testing.T) {
		repos := newLedgerRepos(t)
		account := mustCreateAccount(t, repos, ownerID, entity.AccountTypeClient)
		book := mustCreateBook(t, repos, account.ID, ownerID)

		uc := NewCreateEntryUseCase(repos.accounts, repos.books, repos.entries)
		_, err := uc.Execute(context.Background(), CreateEntryInput{
			BookID:      book.ID,
			OwnerID:     ownerID,
			EntryDate:   time.Now().UTC(),
			TotalAmount: decimal.RequireFromString("10.00"),
			PaidAmount:  decimal.Zero,
			PaymentType: entity.PaymentType("barter"),
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidPaymentType {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidPaymentType, err)
		}
	})
}

func TestListEntriesUseCase_Summary(t *testing.T) {
	repos := newLedgerRepos(t)
	ownerID := uuid.New()
	account := mustCreateAccount(t, repos, ownerID, entity.AccountTypeClient)
	book := mustCreateBook(t, repos, account.ID, ownerID)

	create := NewCreateEntryUseCase(repos.accounts, repos.books, repos.entries)
	entries := []struct {
		total string
		paid  string
	}{
		{"1000.00", "600.00"},
		{"500.00", "500.00"},
		{"200.00", "0.00"},
	}
	for _, e := range entries {
		if _, err := create.Execute(context.Background(), CreateEntryInput{
			BookID:      book.ID,
			OwnerID:     ownerID,
			EntryDate:   time.Now().UTC(),
			TotalAmount: decimal.RequireFromString(e.total),
			PaidAmount:  decimal.RequireFromString(e.paid),
			PaymentType: entity.PaymentTypeCash,
		}); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	list := NewListEntriesUseCase(repos.accounts, repos.books, repos.entries)
	output, err := list.Execute(context.Background(), ListEntriesInput{
		BookID:  book.ID,
		OwnerID: ownerID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(output.Entries))
	}
	if !output.Summary.TotalTurnover.Equal(decimal.RequireFromString("1700.00")) {
		t.Errorf("expected turnover 1700.00, got %s", output.Summary.TotalTurnover)
	}
	if !output.Summary.TotalPending.Equal(decimal.RequireFromString("600.00")) {
		t.Errorf("expected pending 600.00, got %s", output.Summary.TotalPending)
	}
}

func TestListEntriesUseCase_OtherUsersBookIsOpaque(t *testing.T) {
	repos := newLedgerRepos(t)
	ownerID := uuid.New()
	account := mustCreateAccount(t, repos, ownerID, entity.AccountTypeClient)
	book := mustCreateBook(t, repos, account.ID, ownerID)

	list := NewListEntriesUseCase(repos.accounts, repos.books, repos.entries)
	_, err := list.Execute(context.Background(), ListEntriesInput{
		BookID:  book.ID,
		OwnerID: uuid.New(),
	})

	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeLedgerBookNotFound {
		t.Errorf("expected %s error, got %v", domainerror.ErrCodeLedgerBookNotFound, err)
	}
}
