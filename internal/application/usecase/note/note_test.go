package note

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/adapters"
	"github.com/finmate/backend/internal/integration/persistence"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

func newNoteRepo(t *testing.T) adapter.NoteRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.NoteModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return persistence.NewNoteRepository(db)
}

func TestNoteLockLifecycle(t *testing.T) {
	repo := newNoteRepo(t)
	passwordService := adapters.NewPasswordService()
	ownerID := uuid.New()

	create := NewCreateNoteUseCase(repo)
	lock := NewLockNoteUseCase(repo, passwordService)
	unlock := NewUnlockNoteUseCase(repo, passwordService)
	removeLock := NewRemoveLockUseCase(repo, passwordService)
	list := NewListNotesUseCase(repo)

	created, err := create.Execute(context.Background(), CreateNoteInput{
		OwnerID: ownerID,
		Title:   "Bank details",
		Content: "account 1234",
	})
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	noteID := created.Note.ID

	t.Run("unlocking an unlocked note conflicts", func(t *testing.T) {
		_, err := unlock.Execute(context.Background(), UnlockNoteInput{
			NoteID:   noteID,
			OwnerID:  ownerID,
			Password: "secret",
		})

		var noteErr *domainerror.NoteError
		if !errors.As(err, &noteErr) || noteErr.Code != domainerror.ErrCodeNoteNotLocked {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeNoteNotLocked, err)
		}
	})

	t.Run("locking hides content from listing", func(t *testing.T) {
		if err := lock.Execute(context.Background(), LockNoteInput{
			NoteID:   noteID,
			OwnerID:  ownerID,
			Password: "secret",
		}); err != nil {
			t.Fatalf("failed to lock note: %v", err)
		}

		output, err := list.Execute(context.Background(), ListNotesInput{OwnerID: ownerID})
		if err != nil {
			t.Fatalf("failed to list notes: %v", err)
		}
		if len(output.Notes) != 1 {
			t.Fatalf("expected 1 note, got %d", len(output.Notes))
		}
		if output.Notes[0].Content != "" {
			t.Errorf("expected locked note content to be blanked, got %q", output.Notes[0].Content)
		}
	})

	t.Run("unlock with wrong password is rejected", func(t *testing.T) {
		_, err := unlock.Execute(context.Background(), UnlockNoteInput{
			NoteID:   noteID,
			OwnerID:  ownerID,
			Password: "wrong",
		})

		var noteErr *domainerror.NoteError
		if !errors.As(err, &noteErr) || noteErr.Code != domainerror.ErrCodeNotePasswordMismatch {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeNotePasswordMismatch, err)
		}
	})

	t.Run("unlock with the right password returns content", func(t *testing.T) {
		output, err := unlock.Execute(context.Background(), UnlockNoteInput{
			NoteID:   noteID,
			OwnerID:  ownerID,
			Password: "secret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Note.Content != "account 1234" {
			t.Errorf("expected full content, got %q", output.Note.Content)
		}
		if !output.Note.Locked() {
			t.Error("expected note to stay locked after a read")
		}
	})

	t.Run("remove lock requires the password", func(t *testing.T) {
		err := removeLock.Execute(context.Background(), RemoveLockInput{
			NoteID:   noteID,
			OwnerID:  ownerID,
			Password: "wrong",
		})

		var noteErr *domainerror.NoteError
		if !errors.As(err, &noteErr) || noteErr.Code != domainerror.ErrCodeNotePasswordMismatch {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeNotePasswordMismatch, err)
		}
	})

	t.Run("remove lock restores plain listing", func(t *testing.T) {
		if err := removeLock.Execute(context.Background(), RemoveLockInput{
			NoteID:   noteID,
			OwnerID:  ownerID,
			Password: "secret",
		}); err != nil {
			t.Fatalf("failed to remove lock: %v", err)
		}

		output, err := list.Execute(context.Background(), ListNotesInput{OwnerID: ownerID})
		if err != nil {
			t.Fatalf("failed to list notes: %v", err)
		}
		if output.Notes[0].Content != "account 1234" {
			t.Errorf("expected content back after unlock, got %q", output.Notes[0].Content)
		}
	})
}

func TestCreateNoteUseCase_TitleRequired(t *testing.T) {
	repo := newNoteRepo(t)
	create := NewCreateNoteUseCase(repo)

	_, err := create.Execute(context.Background(), CreateNoteInput{
		OwnerID: uuid.New(),
		Title:   "   ",
		Content: "body",
	})

	var noteErr *domainerror.NoteError
	if !errors.As(err, &noteErr) || noteErr.Code != domainerror.ErrCodeNoteTitleRequired {
		t.Errorf("expected %s error, got %v", domainerror.ErrCodeNoteTitleRequired, err)
	}
}

func TestNoteOwnershipIsOpaque(t *testing.T) {
	repo := newNoteRepo(t)
	create := NewCreateNoteUseCase(repo)
	ownerID := uuid.New()

	created, err := create.Execute(context.Background(), CreateNoteInput{
		OwnerID: ownerID,
		Title:   "Private",
		Content: "mine",
	})
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	lock := NewLockNoteUseCase(repo, adapters.NewPasswordService())
	err = lock.Execute(context.Background(), LockNoteInput{
		NoteID:   created.Note.ID,
		OwnerID:  uuid.New(),
		Password: "secret",
	})

	var noteErr *domainerror.NoteError
	if !errors.As(err, &noteErr) || noteErr.Code != domainerror.ErrCodeNoteNotFound {
		t.Errorf("expected %s error, got %v", domainerror.ErrCodeNoteNotFound, err)
	}
}
