// Package note contains note and reminder use cases.
package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

func notFound() *domainerror.NoteError {
	return domainerror.NewNoteError(
		domainerror.ErrCodeNoteNotFound,
		"note not found",
		domainerror.ErrNoteNotFound,
	)
}

// findOwnedNote loads a note and verifies ownership. Absent and not-owned are
// the same error.
func findOwnedNote(ctx context.Context, repo adapter.NoteRepository, noteID, ownerID uuid.UUID) (*entity.Note, error) {
	note, err := repo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoteNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	if note.OwnerID != ownerID {
		return nil, notFound()
	}
	return note, nil
}
