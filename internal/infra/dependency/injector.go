// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finmate/backend/config"
	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/application/usecase/admin"
	"github.com/finmate/backend/internal/application/usecase/auth"
	"github.com/finmate/backend/internal/application/usecase/connectedgoal"
	"github.com/finmate/backend/internal/application/usecase/connection"
	"github.com/finmate/backend/internal/application/usecase/dashboard"
	"github.com/finmate/backend/internal/application/usecase/goal"
	"github.com/finmate/backend/internal/application/usecase/ledgerbook"
	"github.com/finmate/backend/internal/application/usecase/note"
	"github.com/finmate/backend/internal/application/usecase/notification"
	"github.com/finmate/backend/internal/application/usecase/transaction"
	"github.com/finmate/backend/internal/application/usecase/user"
	"github.com/finmate/backend/internal/infra/server/router"
	"github.com/finmate/backend/internal/integration/adapters"
	"github.com/finmate/backend/internal/integration/email"
	"github.com/finmate/backend/internal/integration/email/templates"
	"github.com/finmate/backend/internal/integration/entrypoint/controller"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
	"github.com/finmate/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	connectedGoalRepo := persistence.NewConnectedGoalRepository(db)
	connectionRepo := persistence.NewConnectionRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	bookRepo := persistence.NewLedgerBookRepository(db)
	entryRepo := persistence.NewLedgerEntryRepository(db)
	noteRepo := persistence.NewNoteRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Auth use cases
	registerUseCase := auth.NewRegisterUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshUseCase(tokenService, userRepo)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Profile and admin use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	listUsersUseCase := admin.NewListUsersUseCase(userRepo)
	deleteUserUseCase := admin.NewDeleteUserUseCase(userRepo)

	// Transaction and dashboard use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionsUseCase := transaction.NewDeleteTransactionsUseCase(transactionRepo)
	dashboardStatsUseCase := dashboard.NewGetStatsUseCase(transactionRepo, goalRepo)

	// Personal goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	extendDateUseCase := goal.NewExtendDateUseCase(goalRepo)
	toggleImportantUseCase := goal.NewToggleImportantUseCase(goalRepo)
	addFundUseCase := goal.NewAddFundUseCase(goalRepo)
	listFundingsUseCase := goal.NewListFundingsUseCase(goalRepo)
	goalStatsUseCase := goal.NewGetStatsUseCase(goalRepo)

	// Connected goal use cases
	createConnectedGoalUseCase := connectedgoal.NewCreateGoalUseCase(
		connectedGoalRepo,
		userRepo,
		connectionRepo,
		notificationRepo,
		emailQueueRepo,
	)
	listConnectedGoalsUseCase := connectedgoal.NewListGoalsUseCase(connectedGoalRepo)
	getConnectedGoalUseCase := connectedgoal.NewGetGoalUseCase(connectedGoalRepo)
	updateConnectedGoalUseCase := connectedgoal.NewUpdateGoalUseCase(connectedGoalRepo)
	deleteConnectedGoalUseCase := connectedgoal.NewDeleteGoalUseCase(connectedGoalRepo)
	extendConnectedDateUseCase := connectedgoal.NewExtendDateUseCase(connectedGoalRepo)
	addContributionUseCase := connectedgoal.NewAddContributionUseCase(connectedGoalRepo)
	listContributionsUseCase := connectedgoal.NewListContributionsUseCase(connectedGoalRepo)
	contributionsBreakdownUseCase := connectedgoal.NewContributionsBreakdownUseCase(connectedGoalRepo)
	toggleStarUseCase := connectedgoal.NewToggleStarUseCase(connectedGoalRepo)
	listInvitationsUseCase := connectedgoal.NewListInvitationsUseCase(connectedGoalRepo)
	respondInvitationUseCase := connectedgoal.NewRespondInvitationUseCase(connectedGoalRepo)
	reinviteParticipantUseCase := connectedgoal.NewReinviteParticipantUseCase(
		connectedGoalRepo,
		userRepo,
		notificationRepo,
		emailQueueRepo,
	)
	leaveGoalUseCase := connectedgoal.NewLeaveGoalUseCase(connectedGoalRepo)

	// Connection use cases
	findUserUseCase := connection.NewFindUserUseCase(userRepo)
	requestConnectionUseCase := connection.NewRequestConnectionUseCase(userRepo, connectionRepo, notificationRepo)
	listRequestsUseCase := connection.NewListRequestsUseCase(connectionRepo)
	respondRequestUseCase := connection.NewRespondRequestUseCase(connectionRepo, userRepo, notificationRepo)
	listConnectionsUseCase := connection.NewListConnectionsUseCase(connectionRepo)
	disconnectUseCase := connection.NewDisconnectUseCase(connectionRepo)

	// Ledger use cases
	createAccountUseCase := ledgerbook.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := ledgerbook.NewListAccountsUseCase(accountRepo)
	updateAccountUseCase := ledgerbook.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := ledgerbook.NewDeleteAccountUseCase(accountRepo)
	createBookUseCase := ledgerbook.NewCreateBookUseCase(accountRepo, bookRepo)
	listBooksUseCase := ledgerbook.NewListBooksUseCase(accountRepo, bookRepo)
	updateBookUseCase := ledgerbook.NewUpdateBookUseCase(bookRepo)
	deleteBookUseCase := ledgerbook.NewDeleteBookUseCase(bookRepo)
	createEntryUseCase := ledgerbook.NewCreateEntryUseCase(accountRepo, bookRepo, entryRepo)
	listEntriesUseCase := ledgerbook.NewListEntriesUseCase(accountRepo, bookRepo, entryRepo)
	updateEntryUseCase := ledgerbook.NewUpdateEntryUseCase(accountRepo, bookRepo, entryRepo)
	deleteEntryUseCase := ledgerbook.NewDeleteEntryUseCase(entryRepo)

	// Note use cases
	createNoteUseCase := note.NewCreateNoteUseCase(noteRepo)
	listNotesUseCase := note.NewListNotesUseCase(noteRepo)
	updateNoteUseCase := note.NewUpdateNoteUseCase(noteRepo)
	deleteNoteUseCase := note.NewDeleteNoteUseCase(noteRepo)
	toggleNoteImportantUseCase := note.NewToggleImportantUseCase(noteRepo)
	lockNoteUseCase := note.NewLockNoteUseCase(noteRepo, passwordService)
	unlockNoteUseCase := note.NewUnlockNoteUseCase(noteRepo, passwordService)
	removeLockUseCase := note.NewRemoveLockUseCase(noteRepo, passwordService)
	listLockedUseCase := note.NewListLockedUseCase(noteRepo)

	// Notification use cases
	listUnreadUseCase := notification.NewListUnreadUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	sweepRemindersUseCase := notification.NewSweepRemindersUseCase(
		noteRepo,
		userRepo,
		notificationRepo,
		emailQueueRepo,
		slog.Default(),
	)

	// Email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}

	emailWorker := email.NewWorker(
		emailQueueRepo,
		sender,
		renderer,
		func(ctx context.Context) (int, error) {
			output, err := sweepRemindersUseCase.Execute(ctx)
			if err != nil {
				return 0, err
			}
			return output.Delivered, nil
		},
		email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		},
		slog.Default(),
	)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() string {
			if !cfg.Email.WorkerEnabled {
				return "disabled"
			}
			if emailWorker.Running() {
				return "running"
			}
			return "stopped"
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshUseCase,
		logoutUseCase,
		changePasswordUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		listUsersUseCase,
		deleteUserUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionsUseCase,
		dashboardStatsUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		extendDateUseCase,
		toggleImportantUseCase,
		addFundUseCase,
		listFundingsUseCase,
		goalStatsUseCase,
	)

	connectedGoalController := controller.NewConnectedGoalController(
		createConnectedGoalUseCase,
		listConnectedGoalsUseCase,
		getConnectedGoalUseCase,
		updateConnectedGoalUseCase,
		deleteConnectedGoalUseCase,
		extendConnectedDateUseCase,
		addContributionUseCase,
		listContributionsUseCase,
		contributionsBreakdownUseCase,
		toggleStarUseCase,
		listInvitationsUseCase,
		respondInvitationUseCase,
		reinviteParticipantUseCase,
		leaveGoalUseCase,
	)

	connectionController := controller.NewConnectionController(
		findUserUseCase,
		requestConnectionUseCase,
		listRequestsUseCase,
		respondRequestUseCase,
		listConnectionsUseCase,
		disconnectUseCase,
	)

	ledgerController := controller.NewLedgerController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		createBookUseCase,
		listBooksUseCase,
		updateBookUseCase,
		deleteBookUseCase,
		createEntryUseCase,
		listEntriesUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	noteController := controller.NewNoteController(
		createNoteUseCase,
		listNotesUseCase,
		updateNoteUseCase,
		deleteNoteUseCase,
		toggleNoteImportantUseCase,
		lockNoteUseCase,
		unlockNoteUseCase,
		removeLockUseCase,
		listLockedUseCase,
	)

	notificationController := controller.NewNotificationController(
		listUnreadUseCase,
		markReadUseCase,
	)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		goalController,
		connectedGoalController,
		connectionController,
		ledgerController,
		noteController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
