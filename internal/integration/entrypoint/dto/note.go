// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finmate/backend/internal/domain/entity"
)

// CreateNoteRequest represents the request body for note creation.
type CreateNoteRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	Content    string     `json:"content"`
	ReminderAt *time.Time `json:"reminder_at,omitempty"`
}

// UpdateNoteRequest represents the request body for note update. Setting
// clear_reminder drops any scheduled reminder.
type UpdateNoteRequest struct {
	Title         *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Content       *string    `json:"content,omitempty"`
	ReminderAt    *time.Time `json:"reminder_at,omitempty"`
	ClearReminder bool       `json:"clear_reminder"`
}

// NotePasswordRequest represents the request body for the note lock endpoints.
type NotePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// NoteResponse represents a single note in API responses. Content is empty
// when the note is locked and has not been unlocked in this request.
type NoteResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ReminderAt  *time.Time `json:"reminder_at,omitempty"`
	IsImportant bool       `json:"is_important"`
	Locked      bool       `json:"locked"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NoteListResponse represents the response for listing notes.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// ToNoteResponse converts a domain Note to a NoteResponse DTO.
func ToNoteResponse(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:          note.ID.String(),
		Title:       note.Title,
		Content:     note.Content,
		ReminderAt:  note.ReminderAt,
		IsImportant: note.IsImportant,
		Locked:      note.Locked(),
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}

// ToNoteListResponse converts domain notes to a NoteListResponse.
func ToNoteListResponse(notes []*entity.Note) NoteListResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return NoteListResponse{
		Notes: responses,
	}
}

// NotificationResponse represents one in-app notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts domain notifications to a list response.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = NotificationResponse{
			ID:        notification.ID.String(),
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		}
	}
	return NotificationListResponse{
		Notifications: responses,
	}
}

// MarkReadRequest represents the request body for acknowledging notifications.
type MarkReadRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
