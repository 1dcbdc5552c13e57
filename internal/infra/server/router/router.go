// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finmate/backend/internal/integration/entrypoint/controller"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	userController          *controller.UserController
	transactionController   *controller.TransactionController
	goalController          *controller.GoalController
	connectedGoalController *controller.ConnectedGoalController
	connectionController    *controller.ConnectionController
	ledgerController        *controller.LedgerController
	noteController          *controller.NoteController
	notificationController  *controller.NotificationController
	loginRateLimiter        *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	connectedGoalController *controller.ConnectedGoalController,
	connectionController *controller.ConnectionController,
	ledgerController *controller.LedgerController,
	noteController *controller.NoteController,
	notificationController *controller.NotificationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:        healthController,
		authController:          authController,
		userController:          userController,
		transactionController:   transactionController,
		goalController:          goalController,
		connectedGoalController: connectedGoalController,
		connectionController:    connectionController,
		ledgerController:        ledgerController,
		noteController:          noteController,
		notificationController:  notificationController,
		loginRateLimiter:        loginRateLimiter,
		authMiddleware:          authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}

			// Password changes need a verified identity.
			if r.authMiddleware != nil {
				authed := v1.Group("/auth")
				authed.Use(r.authMiddleware.Authenticate())
				{
					authed.POST("/change-password", r.authController.ChangePassword)
				}
			}
		}

		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.GET("/me/cid", r.userController.GetCID)
				users.PUT("/me", r.userController.UpdateProfile)
			}

			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.GET("/users", r.userController.ListUsers)
				admin.DELETE("/users/:id", r.userController.DeleteUser)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/delete", r.transactionController.Delete)
			}

			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/stats", r.transactionController.DashboardStats)
			}
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/stats", r.goalController.Stats)
				goals.GET("/:id", r.goalController.Get)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/extend-date", r.goalController.ExtendDate)
				goals.POST("/:id/toggle-important", r.goalController.ToggleImportant)
				goals.POST("/:id/funds", r.goalController.AddFund)
				goals.GET("/:id/funds", r.goalController.ListFundings)
			}
		}

		if r.connectedGoalController != nil && r.authMiddleware != nil {
			connectedGoals := v1.Group("/connected-goals")
			connectedGoals.Use(r.authMiddleware.Authenticate())
			{
				connectedGoals.GET("", r.connectedGoalController.List)
				connectedGoals.POST("", r.connectedGoalController.Create)
				connectedGoals.GET("/invitations", r.connectedGoalController.ListInvitations)
				connectedGoals.POST("/invitations/:id/respond", r.connectedGoalController.RespondInvitation)
				connectedGoals.GET("/:id", r.connectedGoalController.Get)
				connectedGoals.PUT("/:id", r.connectedGoalController.Update)
				connectedGoals.DELETE("/:id", r.connectedGoalController.Delete)
				connectedGoals.POST("/:id/extend-date", r.connectedGoalController.ExtendDate)
				connectedGoals.POST("/:id/contributions", r.connectedGoalController.AddContribution)
				connectedGoals.GET("/:id/contributions", r.connectedGoalController.ListContributions)
				connectedGoals.GET("/:id/breakdown", r.connectedGoalController.ContributionsBreakdown)
				connectedGoals.POST("/:id/toggle-star", r.connectedGoalController.ToggleStar)
				connectedGoals.POST("/:id/reinvite", r.connectedGoalController.Reinvite)
				connectedGoals.POST("/:id/leave", r.connectedGoalController.Leave)
			}
		}

		if r.connectionController != nil && r.authMiddleware != nil {
			connections := v1.Group("/connections")
			connections.Use(r.authMiddleware.Authenticate())
			{
				connections.GET("", r.connectionController.List)
				connections.GET("/find/:cid", r.connectionController.FindUser)
				connections.POST("/request", r.connectionController.Request)
				connections.GET("/requests", r.connectionController.ListRequests)
				connections.POST("/requests/:id/respond", r.connectionController.Respond)
				connections.DELETE("/:id", r.connectionController.Disconnect)
			}
		}

		if r.ledgerController != nil && r.authMiddleware != nil {
			ledger := v1.Group("/ledger")
			ledger.Use(r.authMiddleware.Authenticate())
			{
				ledger.GET("/accounts", r.ledgerController.ListAccounts)
				ledger.POST("/accounts", r.ledgerController.CreateAccount)
				ledger.PUT("/accounts/:id", r.ledgerController.UpdateAccount)
				ledger.DELETE("/accounts/:id", r.ledgerController.DeleteAccount)
				ledger.GET("/accounts/:id/books", r.ledgerController.ListBooks)
				ledger.POST("/accounts/:id/books", r.ledgerController.CreateBook)
				ledger.PUT("/books/:id", r.ledgerController.UpdateBook)
				ledger.DELETE("/books/:id", r.ledgerController.DeleteBook)
				ledger.GET("/books/:id/entries", r.ledgerController.ListEntries)
				ledger.POST("/books/:id/entries", r.ledgerController.CreateEntry)
				ledger.PUT("/entries/:id", r.ledgerController.UpdateEntry)
				ledger.DELETE("/entries/:id", r.ledgerController.DeleteEntry)
			}
		}

		if r.noteController != nil && r.authMiddleware != nil {
			notes := v1.Group("/notes")
			notes.Use(r.authMiddleware.Authenticate())
			{
				notes.GET("", r.noteController.List)
				notes.POST("", r.noteController.Create)
				notes.GET("/locked", r.noteController.ListLocked)
				notes.PUT("/:id", r.noteController.Update)
				notes.DELETE("/:id", r.noteController.Delete)
				notes.POST("/:id/toggle-important", r.noteController.ToggleImportant)
				notes.POST("/:id/lock", r.noteController.Lock)
				notes.POST("/:id/unlock", r.noteController.Unlock)
				notes.POST("/:id/remove-lock", r.noteController.RemoveLock)
			}
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.ListUnread)
				notifications.POST("/mark-read", r.notificationController.MarkRead)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
