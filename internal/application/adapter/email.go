// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// SendEmailInput holds the parameters for sending one email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider response for a sent email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for dispatching a single email.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailQueueRepository defines the interface for the durable email queue
// drained by the background worker.
type EmailQueueRepository interface {
	// Enqueue stores a new email job.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit pending jobs whose scheduled time
	// has passed, marking them processing so concurrent workers do not pick
	// them up twice.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// MarkSent records a successful delivery.
	MarkSent(ctx context.Context, jobID uuid.UUID, resendID string) error

	// MarkFailed records a failed attempt; the job returns to pending while
	// attempts remain, otherwise it is parked as failed.
	MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, canRetry bool) error
}
