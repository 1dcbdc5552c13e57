// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for one user, e.g. a note reminder or a
// connected-goal invitation.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// NewNotification creates an unread notification.
func NewNotification(userID uuid.UUID, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
