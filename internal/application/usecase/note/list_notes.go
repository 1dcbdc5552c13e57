// Package note contains note and reminder use cases.
package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListNotesInput represents the input for listing notes.
type ListNotesInput struct {
	OwnerID uuid.UUID
	Search  string
}

// ListNotesOutput represents the output of listing notes. Locked notes come
// back with their content blanked; the lock operation is the only reader of
// locked content.
type ListNotesOutput struct {
	Notes []*entity.Note
}

// ListNotesUseCase lists the owner's notes, newest first.
type ListNotesUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewListNotesUseCase creates a new ListNotesUseCase instance.
func NewListNotesUseCase(noteRepo adapter.NoteRepository) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the listing.
func (uc *ListNotesUseCase) Execute(ctx context.Context, input ListNotesInput) (*ListNotesOutput, error) {
	notes, err := uc.noteRepo.FindByOwner(ctx, input.OwnerID, strings.TrimSpace(input.Search))
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	for _, n := range notes {
		if n.Locked() {
			n.Content = ""
		}
	}

	return &ListNotesOutput{
		Notes: notes,
	}, nil
}
