// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a user note with an optional reminder and optional
// password lock. A locked note's content is only released after the note's
// own password has been verified.
type Note struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Content      string
	ReminderAt   *time.Time
	ReminderSent bool
	IsImportant  bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewNote creates a new Note entity.
func NewNote(ownerID uuid.UUID, title, content string, reminderAt *time.Time) *Note {
	now := time.Now().UTC()
	return &Note{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      title,
		Content:    content,
		ReminderAt: reminderAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Locked reports whether the note is password protected.
func (n *Note) Locked() bool {
	return n.PasswordHash != ""
}

// ReminderDue reports whether the note has an unsent reminder whose time has
// passed.
func (n *Note) ReminderDue(now time.Time) bool {
	return n.ReminderAt != nil && !n.ReminderSent && !n.ReminderAt.After(now)
}
