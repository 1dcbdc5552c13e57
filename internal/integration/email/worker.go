// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/email/templates"
)

// SweepFunc runs one reminder sweep and reports how many reminders it
// delivered.
type SweepFunc func(ctx context.Context) (int, error)

// Worker drains the email queue and the note reminder sweep on a fixed
// interval.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	sweep        SweepFunc
	pollInterval time.Duration
	batchSize    int
	logger       *slog.Logger
	running      atomic.Bool
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 30 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(
	queue adapter.EmailQueueRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	sweep SweepFunc,
	config WorkerConfig,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		sweep:        sweep,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		logger:       logger,
	}
}

// Running reports whether the worker loop is currently active. The health
// endpoint uses it to surface the worker state.
func (w *Worker) Running() bool {
	return w.running.Load()
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	w.logger.Info("email worker started",
		slog.Duration("poll_interval", w.pollInterval),
		slog.Int("batch_size", w.batchSize),
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("email worker shutting down")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// tick runs the reminder sweep first so freshly due reminders land in the
// same batch that drains the queue.
func (w *Worker) tick(ctx context.Context) {
	if w.sweep != nil {
		if delivered, err := w.sweep(ctx); err != nil {
			w.logger.Error("reminder sweep failed", slog.String("error", err.Error()))
		} else if delivered > 0 {
			w.logger.Info("reminders delivered", slog.Int("count", delivered))
		}
	}
	w.processBatch(ctx)
}

// processBatch fetches and processes a batch of pending emails.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		w.logger.Error("failed to get pending email jobs", slog.String("error", err.Error()))
		return
	}

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob renders and sends a single email job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := w.logger.With(
		slog.String("job_id", job.ID.String()),
		slog.String("template", string(job.TemplateType)),
		slog.String("recipient", job.RecipientEmail),
	)

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("failed to render email template", slog.String("error", err.Error()))
		// Template errors never fix themselves on retry.
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("failed to send email", slog.String("error", err.Error()))

		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.IsPermanent()
		w.handleFailure(ctx, job, err, permanent)
		return
	}

	if err := w.queue.MarkSent(ctx, job.ID, result.ResendID); err != nil {
		logger.Error("failed to mark job as sent", slog.String("error", err.Error()))
		return
	}

	logger.Info("email sent", slog.String("resend_id", result.ResendID))
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateNoteReminder:
		data = templates.NoteReminderData{
			UserName:   job.RecipientName,
			NoteTitle:  getString(job.TemplateData, "NoteTitle"),
			ReminderAt: getString(job.TemplateData, "ReminderAt"),
		}
	case entity.TemplateGoalInvitation:
		data = templates.GoalInvitationData{
			UserName:     job.RecipientName,
			InviterName:  getString(job.TemplateData, "InviterName"),
			GoalName:     getString(job.TemplateData, "GoalName"),
			TargetAmount: getString(job.TemplateData, "TargetAmount"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			nil,
		)
	}

	return w.renderer.Render(string(job.TemplateType), data)
}

// handleFailure records a failed attempt; retryable jobs return to pending.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, sendErr error, permanent bool) {
	job.Attempts++
	canRetry := !permanent && job.CanRetry()

	if err := w.queue.MarkFailed(ctx, job.ID, sendErr.Error(), canRetry); err != nil {
		w.logger.Error("failed to update job after failure",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if canRetry {
		w.logger.Info("email job scheduled for retry",
			slog.String("job_id", job.ID.String()),
			slog.Int("attempts", job.Attempts),
		)
	} else {
		w.logger.Warn("email job permanently failed",
			slog.String("job_id", job.ID.String()),
			slog.Int("attempts", job.Attempts),
			slog.String("last_error", sendErr.Error()),
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow runs one full tick immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.tick(ctx)
}
