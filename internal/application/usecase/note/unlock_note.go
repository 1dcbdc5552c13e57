// Package note contains note and reminder use cases.
package note

import (
	"context"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// UnlockNoteInput represents the input for reading a locked note.
type UnlockNoteInput struct {
	NoteID   uuid.UUID
	OwnerID  uuid.UUID
	Password string
}

// UnlockNoteOutput represents the output of a successful unlock: the full
// note including its content.
type UnlockNoteOutput struct {
	Note *entity.Note
}

// UnlockNoteUseCase verifies a locked note's password and releases its
// content for this read. The note stays locked.
type UnlockNoteUseCase struct {
	noteRepo        adapter.NoteRepository
	passwordService adapter.PasswordService
}

// NewUnlockNoteUseCase creates a new UnlockNoteUseCase instance.
func NewUnlockNoteUseCase(noteRepo adapter.NoteRepository, passwordService adapter.PasswordService) *UnlockNoteUseCase {
	return &UnlockNoteUseCase{
		noteRepo:        noteRepo,
		passwordService: passwordService,
	}
}

// Execute performs the unlock.
func (uc *UnlockNoteUseCase) Execute(ctx context.Context, input UnlockNoteInput) (*UnlockNoteOutput, error) {
	note, err := findOwnedNote(ctx, uc.noteRepo, input.NoteID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if !note.Locked() {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNoteNotLocked,
			"note is not locked",
			domainerror.ErrNoteNotLocked,
		)
	}

	if err := uc.passwordService.VerifyPassword(note.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNotePasswordMismatch,
			"invalid note password",
			domainerror.ErrNotePasswordMismatch,
		)
	}

	return &UnlockNoteOutput{
		Note: note,
	}, nil
}
