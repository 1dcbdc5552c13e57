package email

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	"github.com/finmate/backend/internal/integration/email/templates"
	"github.com/finmate/backend/internal/integration/persistence"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

func newTestQueue(t *testing.T) (adapter.EmailQueueRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.EmailQueueModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return persistence.NewEmailQueueRepository(db), db
}

func jobStatus(t *testing.T, db *gorm.DB) model.EmailQueueModel {
	t.Helper()

	var row model.EmailQueueModel
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("failed to read job row: %v", err)
	}
	return row
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender, sweep SweepFunc) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	return NewWorker(queue, sender, renderer, sweep, WorkerConfig{
		PollInterval: time.Minute,
		BatchSize:    10,
	}, slog.Default())
}

func invitationJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateGoalInvitation,
		"friend@example.com",
		"Friend",
		"You were invited to a goal",
		map[string]interface{}{
			"GoalName":     "House deposit",
			"InviterName":  "Owner",
			"TargetAmount": "10000.00",
		},
	)
}

func TestWorker_SendsQueuedEmail(t *testing.T) {
	queue, db := newTestQueue(t)
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender, nil)
	ctx := context.Background()

	if err := queue.Enqueue(ctx, invitationJob()); err != nil {
		t.Fatalf("failed to enqueue job: %v", err)
	}

	worker.tick(ctx)

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != "friend@example.com" {
		t.Errorf("expected recipient friend@example.com, got %s", sent.To)
	}
	if sent.HTML == "" || sent.Text == "" {
		t.Error("expected both HTML and text bodies to be rendered")
	}

	row := jobStatus(t, db)
	if row.Status != string(entity.EmailStatusSent) {
		t.Errorf("expected status sent, got %s", row.Status)
	}
}

func TestWorker_TemporaryFailureReturnsJobToPending(t *testing.T) {
	queue, db := newTestQueue(t)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("provider timeout"), false)
	worker := newTestWorker(t, queue, sender, nil)
	ctx := context.Background()

	if err := queue.Enqueue(ctx, invitationJob()); err != nil {
		t.Fatalf("failed to enqueue job: %v", err)
	}

	worker.tick(ctx)

	row := jobStatus(t, db)
	if row.Status != string(entity.EmailStatusPending) {
		t.Errorf("expected status pending for retry, got %s", row.Status)
	}
	if row.Attempts != 1 {
		t.Errorf("expected 1 recorded attempt, got %d", row.Attempts)
	}
	if !row.ScheduledAt.After(time.Now().UTC()) {
		t.Error("expected retry to be scheduled in the future")
	}
}

func TestWorker_PermanentFailureParksJob(t *testing.T) {
	queue, db := newTestQueue(t)
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("recipient address rejected"), true)
	worker := newTestWorker(t, queue, sender, nil)
	ctx := context.Background()

	if err := queue.Enqueue(ctx, invitationJob()); err != nil {
		t.Fatalf("failed to enqueue job: %v", err)
	}

	worker.tick(ctx)

	row := jobStatus(t, db)
	if row.Status != string(entity.EmailStatusFailed) {
		t.Errorf("expected status failed, got %s", row.Status)
	}
}

func TestWorker_UnknownTemplateNeverRetries(t *testing.T) {
	queue, db := newTestQueue(t)
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender, nil)
	ctx := context.Background()

	job := invitationJob()
	job.TemplateType = entity.EmailTemplateType("mystery")
	if err := queue.Enqueue(ctx, job); err != nil {
		t.Fatalf("failed to enqueue job: %v", err)
	}

	worker.tick(ctx)

	if len(sender.SentEmails) != 0 {
		t.Errorf("expected nothing sent, got %d", len(sender.SentEmails))
	}
	row := jobStatus(t, db)
	if row.Status != string(entity.EmailStatusFailed) {
		t.Errorf("expected template failure to be permanent, got status %s", row.Status)
	}
}

func TestWorker_RunsReminderSweep(t *testing.T) {
	queue, _ := newTestQueue(t)
	sender := NewMockEmailSender()

	sweeps := 0
	worker := newTestWorker(t, queue, sender, func(ctx context.Context) (int, error) {
		sweeps++
		return 0, nil
	})

	worker.tick(context.Background())

	if sweeps != 1 {
		t.Errorf("expected 1 sweep per tick, got %d", sweeps)
	}
}
