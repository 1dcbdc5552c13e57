// Package note contains note and reminder use cases.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
)

// ToggleImportantInput represents the input for toggling a note's important flag.
type ToggleImportantInput struct {
	NoteID  uuid.UUID
	OwnerID uuid.UUID
}

// ToggleImportantOutput reports the flag state after the toggle.
type ToggleImportantOutput struct {
	IsImportant bool
}

// ToggleImportantUseCase flips the important flag on a note.
type ToggleImportantUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewToggleImportantUseCase creates a new ToggleImportantUseCase instance.
func NewToggleImportantUseCase(noteRepo adapter.NoteRepository) *ToggleImportantUseCase {
	return &ToggleImportantUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleImportantUseCase) Execute(ctx context.Context, input ToggleImportantInput) (*ToggleImportantOutput, error) {
	note, err := findOwnedNote(ctx, uc.noteRepo, input.NoteID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	note.IsImportant = !note.IsImportant
	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to toggle note importance: %w", err)
	}

	return &ToggleImportantOutput{
		IsImportant: note.IsImportant,
	}, nil
}
