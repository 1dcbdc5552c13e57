// Package note contains note and reminder use cases.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// RemoveLockInput represents the input for removing a note's password.
type RemoveLockInput struct {
	NoteID   uuid.UUID
	OwnerID  uuid.UUID
	Password string
}

// RemoveLockUseCase removes a note's password after verifying it.
type RemoveLockUseCase struct {
	noteRepo        adapter.NoteRepository
	passwordService adapter.PasswordService
}

// NewRemoveLockUseCase creates a new RemoveLockUseCase instance.
func NewRemoveLockUseCase(noteRepo adapter.NoteRepository, passwordService adapter.PasswordService) *RemoveLockUseCase {
	return &RemoveLockUseCase{
		noteRepo:        noteRepo,
		passwordService: passwordService,
	}
}

// Execute performs the lock removal.
func (uc *RemoveLockUseCase) Execute(ctx context.Context, input RemoveLockInput) error {
	note, err := findOwnedNote(ctx, uc.noteRepo, input.NoteID, input.OwnerID)
	if err != nil {
		return err
	}

	if !note.Locked() {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNoteNotLocked,
			"note is not locked",
			domainerror.ErrNoteNotLocked,
		)
	}

	if err := uc.passwordService.VerifyPassword(note.PasswordHash, input.Password); err != nil {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNotePasswordMismatch,
			"invalid note password",
			domainerror.ErrNotePasswordMismatch,
		)
	}

	note.PasswordHash = ""
	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return fmt.Errorf("failed to remove note lock: %w", err)
	}

	return nil
}
