package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/usecase/connectedgoal"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// ConnectedGoalController handles shared savings goal endpoints.
type ConnectedGoalController struct {
	createGoalUseCase             *connectedgoal.CreateGoalUseCase
	listGoalsUseCase              *connectedgoal.ListGoalsUseCase
	getGoalUseCase                *connectedgoal.GetGoalUseCase
	updateGoalUseCase             *connectedgoal.UpdateGoalUseCase
	deleteGoalUseCase             *connectedgoal.DeleteGoalUseCase
	extendDateUseCase             *connectedgoal.ExtendDateUseCase
	addContributionUseCase        *connectedgoal.AddContributionUseCase
	listContributionsUseCase      *connectedgoal.ListContributionsUseCase
	contributionsBreakdownUseCase *connectedgoal.ContributionsBreakdownUseCase
	toggleStarUseCase             *connectedgoal.ToggleStarUseCase
	listInvitationsUseCase        *connectedgoal.ListInvitationsUseCase
	respondInvitationUseCase      *connectedgoal.RespondInvitationUseCase
	reinviteParticipantUseCase    *connectedgoal.ReinviteParticipantUseCase
	leaveGoalUseCase              *connectedgoal.LeaveGoalUseCase
}

// NewConnectedGoalController creates a new connected goal controller instance.
func NewConnectedGoalController(
	createGoalUseCase *connectedgoal.CreateGoalUseCase,
	listGoalsUseCase *connectedgoal.ListGoalsUseCase,
	getGoalUseCase *connectedgoal.GetGoalUseCase,
	updateGoalUseCase *connectedgoal.UpdateGoalUseCase,
	deleteGoalUseCase *connectedgoal.DeleteGoalUseCase,
	extendDateUseCase *connectedgoal.ExtendDateUseCase,
	addContributionUseCase *connectedgoal.AddContributionUseCase,
	listContributionsUseCase *connectedgoal.ListContributionsUseCase,
	contributionsBreakdownUseCase *connectedgoal.ContributionsBreakdownUseCase,
	toggleStarUseCase *connectedgoal.ToggleStarUseCase,
	listInvitationsUseCase *connectedgoal.ListInvitationsUseCase,
	respondInvitationUseCase *connectedgoal.RespondInvitationUseCase,
	reinviteParticipantUseCase *connectedgoal.ReinviteParticipantUseCase,
	leaveGoalUseCase *connectedgoal.LeaveGoalUseCase,
) *ConnectedGoalController {
	return &ConnectedGoalController{
		createGoalUseCase:             createGoalUseCase,
		listGoalsUseCase:              listGoalsUseCase,
		getGoalUseCase:                getGoalUseCase,
		updateGoalUseCase:             updateGoalUseCase,
		deleteGoalUseCase:             deleteGoalUseCase,
		extendDateUseCase:             extendDateUseCase,
		addContributionUseCase:        addContributionUseCase,
		listContributionsUseCase:      listContributionsUseCase,
		contributionsBreakdownUseCase: contributionsBreakdownUseCase,
		toggleStarUseCase:             toggleStarUseCase,
		listInvitationsUseCase:        listInvitationsUseCase,
		respondInvitationUseCase:      respondInvitationUseCase,
		reinviteParticipantUseCase:    reinviteParticipantUseCase,
		leaveGoalUseCase:              leaveGoalUseCase,
	}
}

// Create handles POST /connected-goals requests.
func (c *ConnectedGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateConnectedGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingConnectedFields),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingConnectedFields),
		})
		return
	}

	participants := make([]uuid.UUID, 0, len(req.Participants))
	for _, raw := range req.Participants {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid participant ID format: " + raw,
			})
			return
		}
		participants = append(participants, id)
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), connectedgoal.CreateGoalInput{
		OwnerID:      userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
		Participants: participants,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	status := entity.DeriveGoalStatus(output.Goal.CurrentAmount, output.Goal.TargetAmount, output.Goal.TargetDate, time.Now())
	ctx.JSON(http.StatusCreated, dto.ToConnectedGoalResponse(output.Goal, status, false, nil))
}

// List handles GET /connected-goals requests. The listing covers every goal
// the caller has accepted, starred goals first.
func (c *ConnectedGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listGoalsUseCase.Execute(ctx.Request.Context(), connectedgoal.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConnectedGoalListResponse(output.Goals))
}

// Get handles GET /connected-goals/:id requests.
func (c *ConnectedGoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.getGoalUseCase.Execute(ctx.Request.Context(), connectedgoal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConnectedGoalResponse(output.Goal, output.Status, output.IsStarred, output.Participants))
}

// Update handles PUT /connected-goals/:id requests.
func (c *ConnectedGoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateConnectedGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := connectedgoal.UpdateGoalInput{
		GoalID:       goalID,
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.updateGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConnectedGoalResponse(output.Goal, output.Status, false, nil))
}

// Delete handles DELETE /connected-goals/:id requests.
func (c *ConnectedGoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if err := c.deleteGoalUseCase.Execute(ctx.Request.Context(), connectedgoal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExtendDate handles POST /connected-goals/:id/extend-date requests.
func (c *ConnectedGoalController) ExtendDate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.ExtendDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target_date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.extendDateUseCase.Execute(ctx.Request.Context(), connectedgoal.ExtendDateInput{
		GoalID:     goalID,
		UserID:     userID,
		TargetDate: targetDate,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConnectedGoalResponse(output.Goal, output.Status, false, nil))
}

// AddContribution handles POST /connected-goals/:id/contributions requests.
func (c *ConnectedGoalController) AddContribution(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.AddContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidContributionAmount),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.addContributionUseCase.Execute(ctx.Request.Context(), connectedgoal.AddContributionInput{
		GoalID:      goalID,
		UserID:      userID,
		Amount:      req.Amount,
		Kind:        entity.ContributionKind(req.Kind),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContributionResponse(output.Contribution))
}

// ListContributions handles GET /connected-goals/:id/contributions requests.
func (c *ConnectedGoalController) ListContributions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.listContributionsUseCase.Execute(ctx.Request.Context(), connectedgoal.ListContributionsInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributionListResponse(output.Contributions))
}

// ContributionsBreakdown handles GET /connected-goals/:id/breakdown requests.
func (c *ConnectedGoalController) ContributionsBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.contributionsBreakdownUseCase.Execute(ctx.Request.Context(), connectedgoal.ContributionsBreakdownInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output.Shares))
}

// ToggleStar handles POST /connected-goals/:id/toggle-star requests.
func (c *ConnectedGoalController) ToggleStar(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.toggleStarUseCase.Execute(ctx.Request.Context(), connectedgoal.ToggleStarInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleStarResponse{IsStarred: output.IsStarred})
}

// ListInvitations handles GET /connected-goals/invitations requests.
func (c *ConnectedGoalController) ListInvitations(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listInvitationsUseCase.Execute(ctx.Request.Context(), connectedgoal.ListInvitationsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvitationListResponse(output.Invitations))
}

// RespondInvitation handles POST /connected-goals/invitations/:id/respond requests.
func (c *ConnectedGoalController) RespondInvitation(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	participantID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invitation ID format",
		})
		return
	}

	var req dto.RespondInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.respondInvitationUseCase.Execute(ctx.Request.Context(), connectedgoal.RespondInvitationInput{
		ParticipantID: participantID,
		UserID:        userID,
		Accept:        *req.Accept,
	})
	if err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": string(output.Status)})
}

// Reinvite handles POST /connected-goals/:id/reinvite requests.
func (c *ConnectedGoalController) Reinvite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.ReinviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid participant ID format",
		})
		return
	}

	if err := c.reinviteParticipantUseCase.Execute(ctx.Request.Context(), connectedgoal.ReinviteParticipantInput{
		GoalID:        goalID,
		OwnerID:       userID,
		ParticipantID: participantID,
	}); err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Invitation sent again"})
}

// Leave handles POST /connected-goals/:id/leave requests.
func (c *ConnectedGoalController) Leave(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if err := c.leaveGoalUseCase.Execute(ctx.Request.Context(), connectedgoal.LeaveGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		c.handleConnectedGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleConnectedGoalError handles connected goal errors and returns appropriate HTTP responses.
func (c *ConnectedGoalController) handleConnectedGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.ConnectedGoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForConnectedGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var connErr *domainerror.ConnectionError
	if errors.As(err, &connErr) {
		status := http.StatusInternalServerError
		switch connErr.Code {
		case domainerror.ErrCodeUsersNotConnected:
			status = http.StatusConflict
		case domainerror.ErrCodeUserNotFoundByCID, domainerror.ErrCodeConnectionNotFound:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: connErr.Message,
			Code:  string(connErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForConnectedGoalError maps connected goal error codes to HTTP status codes.
func (c *ConnectedGoalController) getStatusCodeForConnectedGoalError(code domainerror.ConnectedGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeConnectedGoalNotFound, domainerror.ErrCodeInvitationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingConnectedFields,
		domainerror.ErrCodeInvalidContributionAmount,
		domainerror.ErrCodeInvalidContributionKind:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvitationNotPending,
		domainerror.ErrCodeParticipantNotDeclined,
		domainerror.ErrCodeOwnerCannotLeave:
		return http.StatusConflict
	case domainerror.ErrCodeNotGoalOwner, domainerror.ErrCodeNotAcceptedParticipant:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
