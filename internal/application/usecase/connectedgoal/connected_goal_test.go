package connectedgoal

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

type goalFixture struct {
	goals         adapter.ConnectedGoalRepository
	users         adapter.UserRepository
	connections   adapter.ConnectionRepository
	notifications adapter.NotificationRepository
	emails        adapter.EmailQueueRepository
}

func newGoalFixture(t *testing.T) goalFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ConnectionModel{},
		&model.ConnectedGoalModel{},
		&model.ParticipantModel{},
		&model.ContributionModel{},
		&model.GoalStarModel{},
		&model.NotificationModel{},
		&model.EmailQueueModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return goalFixture{
		goals:         persistence.NewConnectedGoalRepository(db),
		users:         persistence.NewUserRepository(db),
		connections:   persistence.NewConnectionRepository(db),
		notifications: persistence.NewNotificationRepository(db),
		emails:        persistence.NewEmailQueueRepository(db),
	}
}

func (f goalFixture) mustCreateUser(t *testing.T, name string) *entity.User {
	t.Helper()

	user := entity.NewUser(name, "", fmt.Sprintf("%s@example.com", uuid.NewString()), "hash", uuid.NewString()[:8])
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func (f goalFixture) mustConnect(t *testing.T, a, b uuid.UUID) {
	t.Helper()

	conn := entity.NewConnection(a, b)
	if err := f.connections.Create(context.Background(), conn); err != nil {
		t.Fatalf("failed to create connection: %v", err)
	}
	if err := f.connections.UpdateStatus(context.Background(), conn.ID, entity.ConnectionStatusConnected); err != nil {
		t.Fatalf("failed to accept connection: %v", err)
	}
}

func (f goalFixture) createUseCase() *CreateGoalUseCase {
	return NewCreateGoalUseCase(f.goals, f.users, f.connections, f.notifications, f.emails)
}

func (f goalFixture) mustCreateGoal(t *testing.T, ownerID uuid.UUID, participants ...uuid.UUID) *entity.ConnectedGoal {
	t.Helper()

	output, err := f.createUseCase().Execute(context.Background(), CreateGoalInput{
		OwnerID:      ownerID,
		Name:         "House deposit",
		TargetAmount: decimal.RequireFromString("10000.00"),
		TargetDate:   time.Now().UTC().AddDate(1, 0, 0),
		Participants: participants,
	})
	if err != nil {
		t.Fatalf("failed to create connected goal: %v", err)
	}
	return output.Goal
}

func TestCreateGoalUseCase_Invitations(t *testing.T) {
	t.Run("rejects invitees outside the owner's connections", func(t *testing.T) {
		f := newGoalFixture(t)
		owner := f.mustCreateUser(t, "Owner")
		stranger := f.mustCreateUser(t, "Stranger")

		_, err := f.createUseCase().Execute(context.Background(), CreateGoalInput{
			OwnerID:      owner.ID,
			Name:         "Trip",
			TargetAmount: decimal.RequireFromString("1000.00"),
			TargetDate:   time.Now().UTC().AddDate(0, 6, 0),
			Participants: []uuid.UUID{stranger.ID},
		})

		var connErr *domainerror.ConnectionError
		if !errors.As(err, &connErr) || connErr.Code != domainerror.ErrCodeUsersNotConnected {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeUsersNotConnected, err)
		}
	})

	t.Run("invites connections and queues the invitation email", func(t *testing.T) {
		f := newGoalFixture(t)
		owner := f.mustCreateUser(t, "Owner")
		friend := f.mustCreateUser(t, "Friend")
		f.mustConnect(t, owner.ID, friend.ID)

		goal := f.mustCreateGoal(t, owner.ID, friend.ID)

		invitations, err := NewListInvitationsUseCase(f.goals).Execute(context.Background(), ListInvitationsInput{
			UserID: friend.ID,
		})
		if err != nil {
			t.Fatalf("failed to list invitations: %v", err)
		}
		if len(invitations.Invitations) != 1 {
			t.Fatalf("expected 1 pending invitation, got %d", len(invitations.Invitations))
		}
		if invitations.Invitations[0].GoalID != goal.ID {
			t.Error("invitation not linked to the created goal")
		}

		jobs, err := f.emails.GetPendingJobs(context.Background(), 10)
		if err != nil {
			t.Fatalf("failed to read email queue: %v", err)
		}
		if len(jobs) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(jobs))
		}
		if jobs[0].TemplateType != entity.TemplateGoalInvitation {
			t.Errorf("expected invitation template, got %s", jobs[0].TemplateType)
		}
	})

	t.Run("owner in the participant list is ignored", func(t *testing.T) {
		f := newGoalFixture(t)
		owner := f.mustCreateUser(t, "Owner")

		goal := f.mustCreateGoal(t, owner.ID, owner.ID)

		output, err := NewGetGoalUseCase(f.goals).Execute(context.Background(), GetGoalInput{
			GoalID: goal.ID,
			UserID: owner.ID,
		})
		if err != nil {
			t.Fatalf("failed to fetch goal: %v", err)
		}
		if len(output.Participants) != 1 {
			t.Errorf("expected only the owner's participant row, got %d", len(output.Participants))
		}
	})
}

func TestGoalVisibility(t *testing.T) {
	f := newGoalFixture(t)
	owner := f.mustCreateUser(t, "Owner")
	friend := f.mustCreateUser(t, "Friend")
	f.mustConnect(t, owner.ID, friend.ID)
	goal := f.mustCreateGoal(t, owner.ID, friend.ID)

	get := NewGetGoalUseCase(f.goals)

	t.Run("pending invitee cannot see the goal", func(t *testing.T) {
		_, err := get.Execute(context.Background(), GetGoalInput{
			GoalID: goal.ID,
			UserID: friend.ID,
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeConnectedGoalNotFound {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeConnectedGoalNotFound, err)
		}
	})

	t.Run("accepting the invitation grants access", func(t *testing.T) {
		participant, err := f.goals.FindParticipant(context.Background(), goal.ID, friend.ID)
		if err != nil {
			t.Fatalf("failed to find participant: %v", err)
		}

		respond := NewRespondInvitationUseCase(f.goals)
		output, err := respond.Execute(context.Background(), RespondInvitationInput{
			ParticipantID: participant.ID,
			UserID:        friend.ID,
			Accept:        true,
		})
		if err != nil {
			t.Fatalf("failed to respond: %v", err)
		}
		if output.Status != entity.ParticipantStatusAccepted {
			t.Errorf("expected accepted status, got %s", output.Status)
		}

		if _, err := get.Execute(context.Background(), GetGoalInput{
			GoalID: goal.ID,
			UserID: friend.ID,
		}); err != nil {
			t.Errorf("expected accepted participant to see the goal, got %v", err)
		}
	})

	t.Run("an answered invitation cannot be answered again", func(t *testing.T) {
		participant, err := f.goals.FindParticipant(context.Background(), goal.ID, friend.ID)
		if err != nil {
			t.Fatalf("failed to find participant: %v", err)
		}

		respond := NewRespondInvitationUseCase(f.goals)
		_, err = respond.Execute(context.Background(), RespondInvitationInput{
			ParticipantID: participant.ID,
			UserID:        friend.ID,
			Accept:        false,
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvitationNotPending {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvitationNotPending, err)
		}
	})

	t.Run("strangers get the same not-found as absent goals", func(t *testing.T) {
		stranger := f.mustCreateUser(t, "Stranger")

		_, err := get.Execute(context.Background(), GetGoalInput{
			GoalID: goal.ID,
			UserID: stranger.ID,
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeConnectedGoalNotFound {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeConnectedGoalNotFound, err)
		}
	})
}

func TestAddContributionUseCase_SignedAmounts(t *testing.T) {
	f := newGoalFixture(t)
	owner := f.mustCreateUser(t, "Owner")
	goal := f.mustCreateGoal(t, owner.ID)

	contribute := NewAddContributionUseCase(f.goals)

	if _, err := contribute.Execute(context.Background(), AddContributionInput{
		GoalID: goal.ID,
		UserID: owner.ID,
		Amount: decimal.RequireFromString("300.00"),
		Kind:   entity.ContributionKindIncome,
		Date:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("income contribution failed: %v", err)
	}

	if _, err := contribute.Execute(context.Background(), AddContributionInput{
		GoalID: goal.ID,
		UserID: owner.ID,
		Amount: decimal.RequireFromString("100.00"),
		Kind:   entity.ContributionKindExpense,
		Date:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("expense contribution failed: %v", err)
	}

	stored, err := f.goals.FindByID(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("failed to re-read goal: %v", err)
	}
	if !stored.CurrentAmount.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("expected net amount 200.00, got %s", stored.CurrentAmount)
	}

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := contribute.Execute(context.Background(), AddContributionInput{
			GoalID: goal.ID,
			UserID: owner.ID,
			Amount: decimal.RequireFromString("10.00"),
			Kind:   entity.ContributionKind("transfer"),
			Date:   time.Now().UTC(),
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidContributionKind {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidContributionKind, err)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := contribute.Execute(context.Background(), AddContributionInput{
			GoalID: goal.ID,
			UserID: owner.ID,
			Amount: decimal.Zero,
			Kind:   entity.ContributionKindIncome,
			Date:   time.Now().UTC(),
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidContributionAmount {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidContributionAmount, err)
		}
	})
}

func TestContributionsBreakdown(t *testing.T) {
	f := newGoalFixture(t)
	owner := f.mustCreateUser(t, "Owner")
	friend := f.mustCreateUser(t, "Friend")
	f.mustConnect(t, owner.ID, friend.ID)
	goal := f.mustCreateGoal(t, owner.ID, friend.ID)

	participant, err := f.goals.FindParticipant(context.Background(), goal.ID, friend.ID)
	if err != nil {
		t.Fatalf("failed to find participant: %v", err)
	}
	if _, err := NewRespondInvitationUseCase(f.goals).Execute(context.Background(), RespondInvitationInput{
		ParticipantID: participant.ID,
		UserID:        friend.ID,
		Accept:        true,
	}); err != nil {
		t.Fatalf("failed to accept invitation: %v", err)
	}

	contribute := NewAddContributionUseCase(f.goals)
	for _, c := range []struct {
		userID uuid.UUID
		amount string
		kind   entity.ContributionKind
	}{
		{owner.ID, "500.00", entity.ContributionKindIncome},
		{friend.ID, "800.00", entity.ContributionKindIncome},
		{friend.ID, "100.00", entity.ContributionKindExpense},
	} {
		if _, err := contribute.Execute(context.Background(), AddContributionInput{
			GoalID: goal.ID,
			UserID: c.userID,
			Amount: decimal.RequireFromString(c.amount),
			Kind:   c.kind,
			Date:   time.Now().UTC(),
		}); err != nil {
			t.Fatalf("contribution failed: %v", err)
		}
	}

	breakdown := NewContributionsBreakdownUseCase(f.goals)
	output, err := breakdown.Execute(context.Background(), ContributionsBreakdownInput{
		GoalID: goal.ID,
		UserID: owner.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(output.Shares))
	}
	if output.Shares[0].UserID != friend.ID || !output.Shares[0].Total.Equal(decimal.RequireFromString("700.00")) {
		t.Errorf("expected friend first with net 700.00, got %s with %s", output.Shares[0].UserName, output.Shares[0].Total)
	}
	if output.Shares[1].UserID != owner.ID || !output.Shares[1].Total.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("expected owner second with 500.00, got %s with %s", output.Shares[1].UserName, output.Shares[1].Total)
	}
}

func TestLeaveGoalUseCase(t *testing.T) {
	f := newGoalFixture(t)
	owner := f.mustCreateUser(t, "Owner")
	friend := f.mustCreateUser(t, "Friend")
	f.mustConnect(t, owner.ID, friend.ID)
	goal := f.mustCreateGoal(t, owner.ID, friend.ID)

	participant, err := f.goals.FindParticipant(context.Background(), goal.ID, friend.ID)
	if err != nil {
		t.Fatalf("failed to find participant: %v", err)
	}
	if _, err := NewRespondInvitationUseCase(f.goals).Execute(context.Background(), RespondInvitationInput{
		ParticipantID: participant.ID,
		UserID:        friend.ID,
		Accept:        true,
	}); err != nil {
		t.Fatalf("failed to accept invitation: %v", err)
	}

	leave := NewLeaveGoalUseCase(f.goals)

	t.Run("owner cannot leave", func(t *testing.T) {
		err := leave.Execute(context.Background(), LeaveGoalInput{
			GoalID: goal.ID,
			UserID: owner.ID,
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeOwnerCannotLeave {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeOwnerCannotLeave, err)
		}
	})

	t.Run("participant leaves and loses access", func(t *testing.T) {
		if err := leave.Execute(context.Background(), LeaveGoalInput{
			GoalID: goal.ID,
			UserID: friend.ID,
		}); err != nil {
			t.Fatalf("failed to leave: %v", err)
		}

		_, err := NewGetGoalUseCase(f.goals).Execute(context.Background(), GetGoalInput{
			GoalID: goal.ID,
			UserID: friend.ID,
		})

		var goalErr *domainerror.ConnectedGoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeConnectedGoalNotFound {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeConnectedGoalNotFound, err)
		}
	})
}
