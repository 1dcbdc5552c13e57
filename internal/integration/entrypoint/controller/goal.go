package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/usecase/goal"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles personal savings goal endpoints.
type GoalController struct {
	createGoalUseCase      *goal.CreateGoalUseCase
	listGoalsUseCase       *goal.ListGoalsUseCase
	getGoalUseCase         *goal.GetGoalUseCase
	updateGoalUseCase      *goal.UpdateGoalUseCase
	deleteGoalUseCase      *goal.DeleteGoalUseCase
	extendDateUseCase      *goal.ExtendDateUseCase
	toggleImportantUseCase *goal.ToggleImportantUseCase
	addFundUseCase         *goal.AddFundUseCase
	listFundingsUseCase    *goal.ListFundingsUseCase
	getStatsUseCase        *goal.GetStatsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createGoalUseCase *goal.CreateGoalUseCase,
	listGoalsUseCase *goal.ListGoalsUseCase,
	getGoalUseCase *goal.GetGoalUseCase,
	updateGoalUseCase *goal.UpdateGoalUseCase,
	deleteGoalUseCase *goal.DeleteGoalUseCase,
	extendDateUseCase *goal.ExtendDateUseCase,
	toggleImportantUseCase *goal.ToggleImportantUseCase,
	addFundUseCase *goal.AddFundUseCase,
	listFundingsUseCase *goal.ListFundingsUseCase,
	getStatsUseCase *goal.GetStatsUseCase,
) *GoalController {
	return &GoalController{
		createGoalUseCase:      createGoalUseCase,
		listGoalsUseCase:       listGoalsUseCase,
		getGoalUseCase:         getGoalUseCase,
		updateGoalUseCase:      updateGoalUseCase,
		deleteGoalUseCase:      deleteGoalUseCase,
		extendDateUseCase:      extendDateUseCase,
		toggleImportantUseCase: toggleImportantUseCase,
		addFundUseCase:         addFundUseCase,
		listFundingsUseCase:    listFundingsUseCase,
		getStatsUseCase:        getStatsUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		OwnerID:      userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal, output.Goal.Status(time.Now())))
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listGoalsUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		OwnerID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = dto.ToGoalResponse(g.Goal, g.Status)
	}

	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: goals})
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
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

	output, err := c.getGoalUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID:  goalID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Status))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
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

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		OwnerID:      userID,
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
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Status))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
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

	if err := c.deleteGoalUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID:  goalID,
		OwnerID: userID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExtendDate handles POST /goals/:id/extend-date requests. Extension only
// applies to goals that have already failed.
func (c *GoalController) ExtendDate(ctx *gin.Context) {
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

	output, err := c.extendDateUseCase.Execute(ctx.Request.Context(), goal.ExtendDateInput{
		GoalID:     goalID,
		OwnerID:    userID,
		TargetDate: targetDate,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Status))
}

// ToggleImportant handles POST /goals/:id/toggle-important requests.
func (c *GoalController) ToggleImportant(ctx *gin.Context) {
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

	output, err := c.toggleImportantUseCase.Execute(ctx.Request.Context(), goal.ToggleImportantInput{
		GoalID:  goalID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleImportantResponse{IsImportant: output.IsImportant})
}

// AddFund handles POST /goals/:id/funds requests.
func (c *GoalController) AddFund(ctx *gin.Context) {
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

	var req dto.AddFundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidFundAmount),
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

	output, err := c.addFundUseCase.Execute(ctx.Request.Context(), goal.AddFundInput{
		GoalID:      goalID,
		OwnerID:     userID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFundingResponse(output.Funding))
}

// ListFundings handles GET /goals/:id/funds requests.
func (c *GoalController) ListFundings(ctx *gin.Context) {
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

	output, err := c.listFundingsUseCase.Execute(ctx.Request.Context(), goal.ListFundingsInput{
		GoalID:  goalID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFundingListResponse(output.Fundings))
}

// Stats handles GET /goals/stats requests.
func (c *GoalController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), goal.GetStatsInput{
		OwnerID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalStatsResponse(output.Stats))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalNotFailed:
		return http.StatusConflict
	case domainerror.ErrCodeGoalNameRequired,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidFundAmount,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-identity response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
