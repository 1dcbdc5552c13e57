package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/usecase/notification"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles in-app notification endpoints.
type NotificationController struct {
	listUnreadUseCase *notification.ListUnreadUseCase
	markReadUseCase   *notification.MarkReadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUnreadUseCase *notification.ListUnreadUseCase,
	markReadUseCase *notification.MarkReadUseCase,
) *NotificationController {
	return &NotificationController{
		listUnreadUseCase: listUnreadUseCase,
		markReadUseCase:   markReadUseCase,
	}
}

// ListUnread handles GET /notifications requests.
func (c *NotificationController) ListUnread(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUnreadUseCase.Execute(ctx.Request.Context(), notification.ListUnreadInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}

// MarkRead handles POST /notifications/mark-read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.MarkReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid notification ID format: " + raw,
			})
			return
		}
		ids = append(ids, id)
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{
		UserID: userID,
		IDs:    ids,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notifications marked as read"})
}
