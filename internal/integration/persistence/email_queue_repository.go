// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Enqueue stores a new email job.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(emailModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetPendingJobs retrieves up to limit due pending jobs and marks them
// processing in the same transaction, so two workers never pick up the same
// job.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("status = ?", entity.EmailStatusPending).
			Where("scheduled_at <= ?", time.Now().UTC()).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&models)
		if result.Error != nil {
			return result.Error
		}
		if len(models) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(models))
		for i, m := range models {
			ids[i] = m.ID
		}
		return tx.Model(&model.EmailQueueModel{}).
			Where("id IN ?", ids).
			Update("status", entity.EmailStatusProcessing).Error
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]*entity.EmailJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
		jobs[i].Status = entity.EmailStatusProcessing
	}
	return jobs, nil
}

// MarkSent records a successful delivery.
func (r *emailQueueRepository) MarkSent(ctx context.Context, jobID uuid.UUID, resendID string) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":       entity.EmailStatusSent,
			"resend_id":    resendID,
			"processed_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// MarkFailed records a failed attempt. Retryable jobs go back to pending with
// a short backoff; exhausted or permanent failures are parked as failed.
func (r *emailQueueRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, canRetry bool) error {
	now := time.Now().UTC()

	updates := map[string]interface{}{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastError,
	}
	if canRetry {
		updates["status"] = entity.EmailStatusPending
		updates["scheduled_at"] = now.Add(time.Minute)
	} else {
		updates["status"] = entity.EmailStatusFailed
		updates["processed_at"] = now
	}

	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", jobID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
