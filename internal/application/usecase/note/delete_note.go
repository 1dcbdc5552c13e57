// Package note contains note and reminder use cases.
package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// DeleteNoteInput represents the input for deleting a note.
type DeleteNoteInput struct {
	NoteID  uuid.UUID
	OwnerID uuid.UUID
}

// DeleteNoteUseCase handles note deletion.
type DeleteNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewDeleteNoteUseCase creates a new DeleteNoteUseCase instance.
func NewDeleteNoteUseCase(noteRepo adapter.NoteRepository) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, input DeleteNoteInput) error {
	if err := uc.noteRepo.Delete(ctx, input.NoteID, input.OwnerID); err != nil {
		if errors.Is(err, domainerror.ErrNoteNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
