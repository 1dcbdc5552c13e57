package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/application/usecase/dashboard"
	"github.com/finmate/backend/internal/application/usecase/transaction"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction and dashboard endpoints.
type TransactionController struct {
	createTransactionUseCase  *transaction.CreateTransactionUseCase
	listTransactionsUseCase   *transaction.ListTransactionsUseCase
	deleteTransactionsUseCase *transaction.DeleteTransactionsUseCase
	dashboardStatsUseCase     *dashboard.GetStatsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
	deleteTransactionsUseCase *transaction.DeleteTransactionsUseCase,
	dashboardStatsUseCase *dashboard.GetStatsUseCase,
) *TransactionController {
	return &TransactionController{
		createTransactionUseCase:  createTransactionUseCase,
		listTransactionsUseCase:   listTransactionsUseCase,
		deleteTransactionsUseCase: deleteTransactionsUseCase,
		dashboardStatsUseCase:     dashboardStatsUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		OwnerID:     userID,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Filters come from query params:
// type, since (YYYY-MM-DD) and search.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	filter := adapter.TransactionFilter{
		Type:   entity.TransactionType(ctx.Query("type")),
		Search: ctx.Query("search"),
	}
	if since := ctx.Query("since"); since != "" {
		sinceDate, err := time.Parse("2006-01-02", since)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid since format, expected YYYY-MM-DD",
			})
			return
		}
		filter.Since = &sinceDate
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		OwnerID: userID,
		Filter:  filter,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Delete handles POST /transactions/delete requests. Deletion is a bulk
// operation scoped to the caller's rows.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DeleteTransactionsRequest
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
				Error: "Invalid transaction ID format: " + raw,
			})
			return
		}
		ids = append(ids, id)
	}

	if err := c.deleteTransactionsUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionsInput{
		OwnerID: userID,
		IDs:     ids,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DashboardStats handles GET /dashboard/stats requests.
func (c *TransactionController) DashboardStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.dashboardStatsUseCase.Execute(ctx.Request.Context(), dashboard.GetStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output.Stats))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
