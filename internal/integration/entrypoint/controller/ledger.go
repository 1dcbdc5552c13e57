package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/usecase/ledgerbook"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles client/supplier account, book and entry endpoints.
type LedgerController struct {
	createAccountUseCase *ledgerbook.CreateAccountUseCase
	listAccountsUseCase  *ledgerbook.ListAccountsUseCase
	updateAccountUseCase *ledgerbook.UpdateAccountUseCase
	deleteAccountUseCase *ledgerbook.DeleteAccountUseCase
	createBookUseCase    *ledgerbook.CreateBookUseCase
	listBooksUseCase     *ledgerbook.ListBooksUseCase
	updateBookUseCase    *ledgerbook.UpdateBookUseCase
	deleteBookUseCase    *ledgerbook.DeleteBookUseCase
	createEntryUseCase   *ledgerbook.CreateEntryUseCase
	listEntriesUseCase   *ledgerbook.ListEntriesUseCase
	updateEntryUseCase   *ledgerbook.UpdateEntryUseCase
	deleteEntryUseCase   *ledgerbook.DeleteEntryUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	createAccountUseCase *ledgerbook.CreateAccountUseCase,
	listAccountsUseCase *ledgerbook.ListAccountsUseCase,
	updateAccountUseCase *ledgerbook.UpdateAccountUseCase,
	deleteAccountUseCase *ledgerbook.DeleteAccountUseCase,
	createBookUseCase *ledgerbook.CreateBookUseCase,
	listBooksUseCase *ledgerbook.ListBooksUseCase,
	updateBookUseCase *ledgerbook.UpdateBookUseCase,
	deleteBookUseCase *ledgerbook.DeleteBookUseCase,
	createEntryUseCase *ledgerbook.CreateEntryUseCase,
	listEntriesUseCase *ledgerbook.ListEntriesUseCase,
	updateEntryUseCase *ledgerbook.UpdateEntryUseCase,
	deleteEntryUseCase *ledgerbook.DeleteEntryUseCase,
) *LedgerController {
	return &LedgerController{
		createAccountUseCase: createAccountUseCase,
		listAccountsUseCase:  listAccountsUseCase,
		updateAccountUseCase: updateAccountUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
		createBookUseCase:    createBookUseCase,
		listBooksUseCase:     listBooksUseCase,
		updateBookUseCase:    updateBookUseCase,
		deleteBookUseCase:    deleteBookUseCase,
		createEntryUseCase:   createEntryUseCase,
		listEntriesUseCase:   listEntriesUseCase,
		updateEntryUseCase:   updateEntryUseCase,
		deleteEntryUseCase:   deleteEntryUseCase,
	}
}

// CreateAccount handles POST /ledger/accounts requests.
func (c *LedgerController) CreateAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	output, err := c.createAccountUseCase.Execute(ctx.Request.Context(), ledgerbook.CreateAccountInput{
		OwnerID:       userID,
		Type:          entity.AccountType(req.Type),
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		PhoneNumber:   req.PhoneNumber,
		AccountNumber: req.AccountNumber,
		UPIID:         req.UPIID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// ListAccounts handles GET /ledger/accounts requests.
func (c *LedgerController) ListAccounts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listAccountsUseCase.Execute(ctx.Request.Context(), ledgerbook.ListAccountsInput{
		OwnerID: userID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// UpdateAccount handles PUT /ledger/accounts/:id requests.
func (c *LedgerController) UpdateAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateAccountUseCase.Execute(ctx.Request.Context(), ledgerbook.UpdateAccountInput{
		AccountID:     accountID,
		OwnerID:       userID,
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		PhoneNumber:   req.PhoneNumber,
		AccountNumber: req.AccountNumber,
		UPIID:         req.UPIID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// DeleteAccount handles DELETE /ledger/accounts/:id requests.
func (c *LedgerController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	if err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), ledgerbook.DeleteAccountInput{
		AccountID: accountID,
		OwnerID:   userID,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateBook handles POST /ledger/accounts/:id/books requests.
func (c *LedgerController) CreateBook(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	bookDate, err := time.Parse("2006-01-02", req.BookDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid book_date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createBookUseCase.Execute(ctx.Request.Context(), ledgerbook.CreateBookInput{
		AccountID: accountID,
		OwnerID:   userID,
		Name:      req.Name,
		BookDate:  bookDate,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookResponse(output.Book))
}

// ListBooks handles GET /ledger/accounts/:id/books requests.
func (c *LedgerController) ListBooks(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.listBooksUseCase.Execute(ctx.Request.Context(), ledgerbook.ListBooksInput{
		AccountID: accountID,
		OwnerID:   userID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookListResponse(output.Account, output.Books))
}

// UpdateBook handles PUT /ledger/books/:id requests.
func (c *LedgerController) UpdateBook(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	bookID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid book ID format",
		})
		return
	}

	var req dto.UpdateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := ledgerbook.UpdateBookInput{
		BookID:  bookID,
		OwnerID: userID,
		Name:    req.Name,
	}
	if req.BookDate != nil {
		bookDate, err := time.Parse("2006-01-02", *req.BookDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid book_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.BookDate = &bookDate
	}

	output, err := c.updateBookUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// DeleteBook handles DELETE /ledger/books/:id requests.
func (c *LedgerController) DeleteBook(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	bookID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid book ID format",
		})
		return
	}

	if err := c.deleteBookUseCase.Execute(ctx.Request.Context(), ledgerbook.DeleteBookInput{
		BookID:  bookID,
		OwnerID: userID,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateEntry handles POST /ledger/books/:id/entries requests.
func (c *LedgerController) CreateEntry(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	bookID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid book ID format",
		})
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry_date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createEntryUseCase.Execute(ctx.Request.Context(), ledgerbook.CreateEntryInput{
		BookID:      bookID,
		OwnerID:     userID,
		BillNo:      req.BillNo,
		EntryDate:   entryDate,
		Description: req.Description,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		PaymentType: entity.PaymentType(req.PaymentType),
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// ListEntries handles GET /ledger/books/:id/entries requests.
func (c *LedgerController) ListEntries(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	bookID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid book ID format",
		})
		return
	}

	output, err := c.listEntriesUseCase.Execute(ctx.Request.Context(), ledgerbook.ListEntriesInput{
		BookID:  bookID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Book, output.Entries, output.Summary))
}

// UpdateEntry handles PUT /ledger/entries/:id requests.
func (c *LedgerController) UpdateEntry(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := ledgerbook.UpdateEntryInput{
		EntryID:     entryID,
		OwnerID:     userID,
		BillNo:      req.BillNo,
		Description: req.Description,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
	}
	if req.EntryDate != nil {
		entryDate, err := time.Parse("2006-01-02", *req.EntryDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid entry_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EntryDate = &entryDate
	}
	if req.PaymentType != nil {
		paymentType := entity.PaymentType(*req.PaymentType)
		input.PaymentType = &paymentType
	}

	output, err := c.updateEntryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// DeleteEntry handles DELETE /ledger/entries/:id requests.
func (c *LedgerController) DeleteEntry(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	if err := c.deleteEntryUseCase.Execute(ctx.Request.Context(), ledgerbook.DeleteEntryInput{
		EntryID: entryID,
		OwnerID: userID,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound,
		domainerror.ErrCodeLedgerBookNotFound,
		domainerror.ErrCodeLedgerEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeAccountNameRequired,
		domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeInvalidPaymentType,
		domainerror.ErrCodeMissingLedgerFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
