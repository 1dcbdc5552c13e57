// Package note contains note and reminder use cases.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
)

// LockNoteInput represents the input for locking a note with a password.
type LockNoteInput struct {
	NoteID   uuid.UUID
	OwnerID  uuid.UUID
	Password string
}

// LockNoteUseCase attaches a password to a note. Note passwords are hashed
// exactly like account passwords; the plain text is never stored. Locking an
// already-locked note replaces its password.
type LockNoteUseCase struct {
	noteRepo        adapter.NoteRepository
	passwordService adapter.PasswordService
}

// NewLockNoteUseCase creates a new LockNoteUseCase instance.
func NewLockNoteUseCase(noteRepo adapter.NoteRepository, passwordService adapter.PasswordService) *LockNoteUseCase {
	return &LockNoteUseCase{
		noteRepo:        noteRepo,
		passwordService: passwordService,
	}
}

// Execute performs the lock.
func (uc *LockNoteUseCase) Execute(ctx context.Context, input LockNoteInput) error {
	note, err := findOwnedNote(ctx, uc.noteRepo, input.NoteID, input.OwnerID)
	if err != nil {
		return err
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash note password: %w", err)
	}

	note.PasswordHash = hash
	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return fmt.Errorf("failed to lock note: %w", err)
	}

	return nil
}
