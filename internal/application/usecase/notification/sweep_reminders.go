// Package notification contains in-app notification use cases and the
// reminder sweep.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// sweepBatchSize bounds one sweep so a backlog cannot stall the worker loop.
const sweepBatchSize = 50

// SweepRemindersOutput reports how many reminders one sweep delivered.
type SweepRemindersOutput struct {
	Delivered int
}

// SweepRemindersUseCase finds notes whose reminder time has passed, creates
// the in-app notification, enqueues the reminder email and marks the reminder
// sent. Run periodically by the background worker. Each note is marked before
// moving on, so a crash mid-sweep re-delivers at most the note in flight.
type SweepRemindersUseCase struct {
	noteRepo         adapter.NoteRepository
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
	emailQueue       adapter.EmailQueueRepository
	logger           *slog.Logger
}

// NewSweepRemindersUseCase creates a new SweepRemindersUseCase instance.
func NewSweepRemindersUseCase(
	noteRepo adapter.NoteRepository,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
	emailQueue adapter.EmailQueueRepository,
	logger *slog.Logger,
) *SweepRemindersUseCase {
	return &SweepRemindersUseCase{
		noteRepo:         noteRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailQueue:       emailQueue,
		logger:           logger,
	}
}

// Execute runs one sweep.
func (uc *SweepRemindersUseCase) Execute(ctx context.Context) (*SweepRemindersOutput, error) {
	now := time.Now().UTC()

	due, err := uc.noteRepo.FindDueReminders(ctx, now, sweepBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find due reminders: %w", err)
	}

	delivered := 0
	for _, note := range due {
		if err := uc.deliver(ctx, note); err != nil {
			uc.logger.Error("reminder delivery failed",
				slog.String("note_id", note.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		delivered++
	}

	return &SweepRemindersOutput{
		Delivered: delivered,
	}, nil
}

func (uc *SweepRemindersUseCase) deliver(ctx context.Context, note *entity.Note) error {
	owner, err := uc.userRepo.FindByID(ctx, note.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to find note owner: %w", err)
	}

	notification := entity.NewNotification(
		owner.ID,
		fmt.Sprintf("Reminder: %s", note.Title),
	)
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	job := entity.NewEmailJob(
		entity.TemplateNoteReminder,
		owner.Email,
		owner.Name,
		fmt.Sprintf("Reminder: %s", note.Title),
		map[string]interface{}{
			"NoteTitle":  note.Title,
			"ReminderAt": note.ReminderAt.Format(time.RFC1123),
		},
	)
	if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue reminder email: %w", err)
	}

	if err := uc.noteRepo.MarkReminderSent(ctx, note.ID); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}
