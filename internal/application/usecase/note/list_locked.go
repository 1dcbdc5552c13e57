// Package note contains note and reminder use cases.
package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListLockedInput represents the input for listing locked notes.
type ListLockedInput struct {
	OwnerID uuid.UUID
}

// ListLockedOutput represents the output of listing locked notes. Content is
// blanked; only titles and metadata are visible without the password.
type ListLockedOutput struct {
	Notes []*entity.Note
}

// ListLockedUseCase lists the owner's password-protected notes.
type ListLockedUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewListLockedUseCase creates a new ListLockedUseCase instance.
func NewListLockedUseCase(noteRepo adapter.NoteRepository) *ListLockedUseCase {
	return &ListLockedUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the listing.
func (uc *ListLockedUseCase) Execute(ctx context.Context, input ListLockedInput) (*ListLockedOutput, error) {
	notes, err := uc.noteRepo.FindLockedByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locked notes: %w", err)
	}

	for _, n := range notes {
		n.Content = ""
	}

	return &ListLockedOutput{
		Notes: notes,
	}, nil
}
