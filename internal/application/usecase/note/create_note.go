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

// CreateNoteInput represents the input for note creation.
type CreateNoteInput struct {
	OwnerID    uuid.UUID
	Title      string
	Content    string
	ReminderAt *time.Time
}

// CreateNoteOutput represents the output of note creation.
type CreateNoteOutput struct {
	Note *entity.Note
}

// CreateNoteUseCase handles note creation. Notes start unlocked; a password
// is attached through the dedicated lock operation.
type CreateNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewCreateNoteUseCase creates a new CreateNoteUseCase instance.
func NewCreateNoteUseCase(noteRepo adapter.NoteRepository) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note creation.
func (uc *CreateNoteUseCase) Execute(ctx context.Context, input CreateNoteInput) (*CreateNoteOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNoteTitleRequired,
			"note title is required",
			domainerror.ErrNoteTitleRequired,
		)
	}

	note := entity.NewNote(input.OwnerID, title, input.Content, input.ReminderAt)

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteOutput{
		Note: note,
	}, nil
}
