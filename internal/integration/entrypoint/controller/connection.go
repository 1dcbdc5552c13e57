package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/usecase/connection"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// ConnectionController handles user-to-user connection endpoints.
type ConnectionController struct {
	findUserUseCase          *connection.FindUserUseCase
	requestConnectionUseCase *connection.RequestConnectionUseCase
	listRequestsUseCase      *connection.ListRequestsUseCase
	respondRequestUseCase    *connection.RespondRequestUseCase
	listConnectionsUseCase   *connection.ListConnectionsUseCase
	disconnectUseCase        *connection.DisconnectUseCase
}

// NewConnectionController creates a new connection controller instance.
func NewConnectionController(
	findUserUseCase *connection.FindUserUseCase,
	requestConnectionUseCase *connection.RequestConnectionUseCase,
	listRequestsUseCase *connection.ListRequestsUseCase,
	respondRequestUseCase *connection.RespondRequestUseCase,
	listConnectionsUseCase *connection.ListConnectionsUseCase,
	disconnectUseCase *connection.DisconnectUseCase,
) *ConnectionController {
	return &ConnectionController{
		findUserUseCase:          findUserUseCase,
		requestConnectionUseCase: requestConnectionUseCase,
		listRequestsUseCase:      listRequestsUseCase,
		respondRequestUseCase:    respondRequestUseCase,
		listConnectionsUseCase:   listConnectionsUseCase,
		disconnectUseCase:        disconnectUseCase,
	}
}

// FindUser handles GET /connections/find/:cid requests.
func (c *ConnectionController) FindUser(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cid := ctx.Param("cid")
	if cid == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "CID is required",
		})
		return
	}

	output, err := c.findUserUseCase.Execute(ctx.Request.Context(), connection.FindUserInput{
		CallerID: userID,
		CID:      cid,
	})
	if err != nil {
		c.handleConnectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FindUserResponse{
		UserID: output.UserID.String(),
		Name:   output.Name,
		CID:    output.CID,
	})
}

// Request handles POST /connections/request requests.
func (c *ConnectionController) Request(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.RequestConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.requestConnectionUseCase.Execute(ctx.Request.Context(), connection.RequestConnectionInput{
		RequesterID: userID,
		CID:         req.CID,
	})
	if err != nil {
		c.handleConnectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"connection_id": output.Connection.ID.String(),
		"status":        string(output.Connection.Status),
	})
}

// ListRequests handles GET /connections/requests requests.
func (c *ConnectionController) ListRequests(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listRequestsUseCase.Execute(ctx.Request.Context(), connection.ListRequestsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleConnectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConnectionRequestListResponse(output.Requests))
}

// Respond handles POST /connections/requests/:id/respond requests.
func (c *ConnectionController) Respond(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	connectionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid connection ID format",
		})
		return
	}

	var req dto.RespondRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.respondRequestUseCase.Execute(ctx.Request.Context(), connection.RespondRequestInput{
		ConnectionID: connectionID,
		UserID:       userID,
		Accept:       *req.Accept,
	}); err != nil {
		c.handleConnectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Response recorded"})
}

// List handles GET /connections requests.
func (c *ConnectionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listConnectionsUseCase.Execute(ctx.Request.Context(), connection.ListConnectionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleConnectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConnectionListResponse(output.Connections))
}

// Disconnect handles DELETE /connections/:id requests.
func (c *ConnectionController) Disconnect(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	connectionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid connection ID format",
		})
		return
	}

	if err := c.disconnectUseCase.Execute(ctx.Request.Context(), connection.DisconnectInput{
		ConnectionID: connectionID,
		UserID:       userID,
	}); err != nil {
		c.handleConnectionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleConnectionError handles connection errors and returns appropriate HTTP responses.
func (c *ConnectionController) handleConnectionError(ctx *gin.Context, err error) {
	var connErr *domainerror.ConnectionError
	if errors.As(err, &connErr) {
		ctx.JSON(c.getStatusCodeForConnectionError(connErr.Code), dto.ErrorResponse{
			Error: connErr.Message,
			Code:  string(connErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForConnectionError maps connection error codes to HTTP status codes.
func (c *ConnectionController) getStatusCodeForConnectionError(code domainerror.ConnectionErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFoundByCID, domainerror.ErrCodeConnectionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCannotConnectSelf:
		return http.StatusBadRequest
	case domainerror.ErrCodeConnectionExists, domainerror.ErrCodeUsersNotConnected:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
