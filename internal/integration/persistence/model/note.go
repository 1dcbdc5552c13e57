// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// NoteModel represents the notes table in the database.
type NoteModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title        string       `gorm:"type:varchar(255);not null"`
	Content      string       `gorm:"type:text"`
	ReminderAt   sql.NullTime `gorm:"type:timestamptz;index"`
	ReminderSent bool         `gorm:"not null;default:false"`
	IsImportant  bool         `gorm:"not null;default:false"`
	PasswordHash string       `gorm:"type:varchar(255)"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName returns the table name for the NoteModel.
func (NoteModel) TableName() string {
	return "notes"
}

// ToEntity converts a NoteModel to a domain Note entity.
func (m *NoteModel) ToEntity() *entity.Note {
	var reminderAt *time.Time
	if m.ReminderAt.Valid {
		reminderAt = &m.ReminderAt.Time
	}

	return &entity.Note{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		Content:      m.Content,
		ReminderAt:   reminderAt,
		ReminderSent: m.ReminderSent,
		IsImportant:  m.IsImportant,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NoteFromEntity creates a NoteModel from a domain Note entity.
func NoteFromEntity(note *entity.Note) *NoteModel {
	var reminderAt sql.NullTime
	if note.ReminderAt != nil {
		reminderAt = sql.NullTime{Time: *note.ReminderAt, Valid: true}
	}

	return &NoteModel{
		ID:           note.ID,
		OwnerID:      note.OwnerID,
		Title:        note.Title,
		Content:      note.Content,
		ReminderAt:   reminderAt,
		ReminderSent: note.ReminderSent,
		IsImportant:  note.IsImportant,
		PasswordHash: note.PasswordHash,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
