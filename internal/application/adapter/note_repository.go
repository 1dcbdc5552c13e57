// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// NoteRepository defines the interface for note persistence operations.
type NoteRepository interface {
	// Create creates a new note.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)

	// FindByOwner retrieves all notes of one owner, newest first, optionally
	// filtered by a case-insensitive search over title and content.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, search string) ([]*entity.Note, error)

	// FindLockedByOwner retrieves the owner's password-protected notes.
	FindLockedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error)

	// Update updates an existing note.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes a note. Scoped to the owner; zero affected rows surface
	// as ErrNoteNotFound.
	Delete(ctx context.Context, noteID, ownerID uuid.UUID) error

	// FindDueReminders retrieves up to limit notes whose reminder is due and
	// unsent at the given instant.
	FindDueReminders(ctx context.Context, now time.Time, limit int) ([]*entity.Note, error)

	// MarkReminderSent flags a note's reminder as delivered.
	MarkReminderSent(ctx context.Context, noteID uuid.UUID) error
}

// NotificationRepository defines the interface for in-app notifications.
type NotificationRepository interface {
	// Create stores a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindUnread retrieves a user's unread notifications, newest first.
	FindUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead marks the given notifications of the user as read.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}
