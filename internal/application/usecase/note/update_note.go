// Package note contains note and reminder use cases.
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// UpdateNoteInput represents the input for updating a note. Nil fields are
// left unchanged. Setting ClearReminder drops the reminder entirely.
type UpdateNoteInput struct {
	NoteID        uuid.UUID
	OwnerID       uuid.UUID
	Title         *string
	Content       *string
	ReminderAt    *time.Time
	ClearReminder bool
}

// UpdateNoteOutput represents the output of a note update.
type UpdateNoteOutput struct {
	Note *entity.Note
}

// UpdateNoteUseCase handles note updates. Moving the reminder re-arms it.
type UpdateNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewUpdateNoteUseCase creates a new UpdateNoteUseCase instance.
func NewUpdateNoteUseCase(noteRepo adapter.NoteRepository) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note update.
func (uc *UpdateNoteUseCase) Execute(ctx context.Context, input UpdateNoteInput) (*UpdateNoteOutput, error) {
	note, err := findOwnedNote(ctx, uc.noteRepo, input.NoteID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewNoteError(
				domainerror.ErrCodeNoteTitleRequired,
				"note title is required",
				domainerror.ErrNoteTitleRequired,
			)
		}
		note.Title = title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.ClearReminder {
		note.ReminderAt = nil
		note.ReminderSent = false
	} else if input.ReminderAt != nil {
		note.ReminderAt = input.ReminderAt
		note.ReminderSent = false
	}

	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &UpdateNoteOutput{
		Note: note,
	}, nil
}
