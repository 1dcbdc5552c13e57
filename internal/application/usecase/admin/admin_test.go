package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/persistence"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

type adminFixture struct {
	users  adapter.UserRepository
	goals  adapter.ConnectedGoalRepository
	emails adapter.EmailQueueRepository
}

// newAdminFixture migrates every table the user delete cascade touches.
func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.TransactionModel{},
		&model.GoalModel{},
		&model.GoalFundingModel{},
		&model.ConnectedGoalModel{},
		&model.ParticipantModel{},
		&model.ContributionModel{},
		&model.GoalStarModel{},
		&model.ConnectionModel{},
		&model.AccountModel{},
		&model.LedgerBookModel{},
		&model.LedgerEntryModel{},
		&model.NoteModel{},
		&model.NotificationModel{},
		&model.EmailQueueModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return adminFixture{
		users:  persistence.NewUserRepository(db),
		goals:  persistence.NewConnectedGoalRepository(db),
		emails: persistence.NewEmailQueueRepository(db),
	}
}

func (f adminFixture) mustCreateUser(t *testing.T, name string) *entity.User {
	t.Helper()

	user := entity.NewUser(name, "", fmt.Sprintf("%s@example.com", uuid.NewString()), "hash", uuid.NewString()[:8])
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestDeleteUserUseCase_RefusesAdmin(t *testing.T) {
	f := newAdminFixture(t)

	admin := entity.NewUser("Root", "", "root@example.com", "hash", "ADMIN234")
	admin.Role = entity.UserRoleAdmin
	if err := f.users.Create(context.Background(), admin); err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	err := NewDeleteUserUseCase(f.users).Execute(context.Background(), DeleteUserInput{UserID: admin.ID})

	var userErr *domainerror.UserError
	if !errors.As(err, &userErr) || userErr.Code != domainerror.ErrCodeCannotDeleteAdmin {
		t.Errorf("expected %s error, got %v", domainerror.ErrCodeCannotDeleteAdmin, err)
	}
}

// Deleting a contributor must not rewrite the history of goals they do not
// own: the goal balance, its transaction feed and its breakdown keep the
// deleted user's contributions, shown under a placeholder name.
func TestDeleteUserUseCase_KeepsContributionsToOthersGoals(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	owner := f.mustCreateUser(t, "Owner")
	friend := f.mustCreateUser(t, "Friend")

	goal := entity.NewConnectedGoal(owner.ID, "House deposit", decimal.RequireFromString("10000.00"), time.Now().UTC().AddDate(1, 0, 0))
	participants := []*entity.Participant{
		entity.NewParticipant(goal.ID, owner.ID, entity.ParticipantStatusAccepted),
		entity.NewParticipant(goal.ID, friend.ID, entity.ParticipantStatusAccepted),
	}
	if err := f.goals.CreateWithParticipants(ctx, goal, participants); err != nil {
		t.Fatalf("failed to create connected goal: %v", err)
	}

	contribution := entity.NewContribution(goal.ID, friend.ID, decimal.RequireFromString("500.00"), entity.ContributionKindIncome, time.Now().UTC(), "first deposit")
	if err := f.goals.AddContribution(ctx, contribution); err != nil {
		t.Fatalf("failed to add contribution: %v", err)
	}

	if err := NewDeleteUserUseCase(f.users).Execute(ctx, DeleteUserInput{UserID: friend.ID}); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	reloaded, err := f.goals.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !reloaded.CurrentAmount.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected current amount 500.00, got %s", reloaded.CurrentAmount)
	}

	contributions, err := f.goals.FindContributions(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to list contributions: %v", err)
	}
	if len(contributions) != 1 {
		t.Fatalf("expected the contribution to survive, got %d rows", len(contributions))
	}
	if contributions[0].UserName != "Deleted user" {
		t.Errorf("expected placeholder contributor name, got %q", contributions[0].UserName)
	}
	if !contributions[0].Amount.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected contribution amount 500.00, got %s", contributions[0].Amount)
	}

	shares, err := f.goals.ContributionsBreakdown(ctx, goal.ID)
	if err != nil {
		t.Fatalf("failed to load breakdown: %v", err)
	}
	if len(shares) != 1 {
		t.Fatalf("expected 1 share, got %d", len(shares))
	}
	if shares[0].UserName != "Deleted user" {
		t.Errorf("expected placeholder share name, got %q", shares[0].UserName)
	}
	if !shares[0].Total.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected share total 500.00, got %s", shares[0].Total)
	}
}

func TestDeleteUserUseCase_DropsQueuedEmail(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	doomed := f.mustCreateUser(t, "Doomed")
	bystander := f.mustCreateUser(t, "Bystander")

	for _, u := range []*entity.User{doomed, bystander} {
		job := entity.NewEmailJob(entity.TemplateNoteReminder, u.Email, u.Name, "Reminder", map[string]interface{}{
			"NoteTitle": "Pay rent",
		})
		if err := f.emails.Enqueue(ctx, job); err != nil {
			t.Fatalf("failed to enqueue email job: %v", err)
		}
	}

	if err := NewDeleteUserUseCase(f.users).Execute(ctx, DeleteUserInput{UserID: doomed.ID}); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	jobs, err := f.emails.GetPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("failed to list pending jobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected only the bystander's job to remain, got %d", len(jobs))
	}
	if jobs[0].RecipientEmail != bystander.Email {
		t.Errorf("expected remaining job for %s, got %s", bystander.Email, jobs[0].RecipientEmail)
	}
}
