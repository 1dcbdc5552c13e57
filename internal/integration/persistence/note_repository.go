// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// noteRepository implements the adapter.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance.
func NewNoteRepository(db *gorm.DB) adapter.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// Create creates a new note in the database.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).Create(noteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a note by its ID.
func (r *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var noteModel model.NoteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&noteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return noteModel.ToEntity(), nil
}

// FindByOwner retrieves all notes of one owner, important first, newest
// first, optionally filtered by a case-insensitive search over title and
// content.
func (r *noteRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, search string) ([]*entity.Note, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern)
	}

	var models []model.NoteModel
	result := query.Order("is_important DESC, created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.Note, len(models))
	for i, m := range models {
		notes[i] = m.ToEntity()
	}
	return notes, nil
}

// FindLockedByOwner retrieves the owner's password-protected notes.
func (r *noteRepository) FindLockedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Note, error) {
	var models []model.NoteModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND password_hash <> ''", ownerID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.Note, len(models))
	for i, m := range models {
		notes[i] = m.ToEntity()
	}
	return notes, nil
}

// Update updates an existing note in the database. Select("*") forces zeroed
// fields through, so clearing a reminder actually nulls the column.
func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", note.ID).
		Select("*").
		Updates(noteModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNoteNotFound
	}
	return nil
}

// Delete removes a note, scoped to the owner.
func (r *noteRepository) Delete(ctx context.Context, noteID, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", noteID, ownerID).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNoteNotFound
	}
	return nil
}

// FindDueReminders retrieves up to limit notes whose reminder is due and
// unsent at the given instant.
func (r *noteRepository) FindDueReminders(ctx context.Context, now time.Time, limit int) ([]*entity.Note, error) {
	var models []model.NoteModel
	result := r.db.WithContext(ctx).
		Where("reminder_at IS NOT NULL").
		Where("reminder_sent = ?", false).
		Where("reminder_at <= ?", now).
		Order("reminder_at ASC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.Note, len(models))
	for i, m := range models {
		notes[i] = m.ToEntity()
	}
	return notes, nil
}

// MarkReminderSent flags a note's reminder as delivered.
func (r *noteRepository) MarkReminderSent(ctx context.Context, noteID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", noteID).
		Update("reminder_sent", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNoteNotFound
	}
	return nil
}

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create stores a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindUnread retrieves a user's unread notifications, newest first.
func (r *notificationRepository) FindUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var models []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(models))
	for i, m := range models {
		notifications[i] = m.ToEntity()
	}
	return notifications, nil
}

// MarkRead marks the given notifications of the user as read. The user scope
// keeps one user from acknowledging another's notifications.
func (r *notificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
