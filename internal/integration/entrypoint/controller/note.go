package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/usecase/note"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/entrypoint/dto"
	"github.com/finmate/backend/internal/integration/entrypoint/middleware"
)

// NoteController handles note endpoints, including reminders and locks.
type NoteController struct {
	createNoteUseCase      *note.CreateNoteUseCase
	listNotesUseCase       *note.ListNotesUseCase
	updateNoteUseCase      *note.UpdateNoteUseCase
	deleteNoteUseCase      *note.DeleteNoteUseCase
	toggleImportantUseCase *note.ToggleImportantUseCase
	lockNoteUseCase        *note.LockNoteUseCase
	unlockNoteUseCase      *note.UnlockNoteUseCase
	removeLockUseCase      *note.RemoveLockUseCase
	listLockedUseCase      *note.ListLockedUseCase
}

// NewNoteController creates a new note controller instance.
func NewNoteController(
	createNoteUseCase *note.CreateNoteUseCase,
	listNotesUseCase *note.ListNotesUseCase,
	updateNoteUseCase *note.UpdateNoteUseCase,
	deleteNoteUseCase *note.DeleteNoteUseCase,
	toggleImportantUseCase *note.ToggleImportantUseCase,
	lockNoteUseCase *note.LockNoteUseCase,
	unlockNoteUseCase *note.UnlockNoteUseCase,
	removeLockUseCase *note.RemoveLockUseCase,
	listLockedUseCase *note.ListLockedUseCase,
) *NoteController {
	return &NoteController{
		createNoteUseCase:      createNoteUseCase,
		listNotesUseCase:       listNotesUseCase,
		updateNoteUseCase:      updateNoteUseCase,
		deleteNoteUseCase:      deleteNoteUseCase,
		toggleImportantUseCase: toggleImportantUseCase,
		lockNoteUseCase:        lockNoteUseCase,
		unlockNoteUseCase:      unlockNoteUseCase,
		removeLockUseCase:      removeLockUseCase,
		listLockedUseCase:      listLockedUseCase,
	}
}

// Create handles POST /notes requests.
func (c *NoteController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeNoteTitleRequired),
		})
		return
	}

	output, err := c.createNoteUseCase.Execute(ctx.Request.Context(), note.CreateNoteInput{
		OwnerID:    userID,
		Title:      req.Title,
		Content:    req.Content,
		ReminderAt: req.ReminderAt,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(output.Note))
}

// List handles GET /notes requests. An optional search query matches title
// and content.
func (c *NoteController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listNotesUseCase.Execute(ctx.Request.Context(), note.ListNotesInput{
		OwnerID: userID,
		Search:  ctx.Query("search"),
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(output.Notes))
}

// Update handles PUT /notes/:id requests.
func (c *NoteController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateNoteUseCase.Execute(ctx.Request.Context(), note.UpdateNoteInput{
		NoteID:        noteID,
		OwnerID:       userID,
		Title:         req.Title,
		Content:       req.Content,
		ReminderAt:    req.ReminderAt,
		ClearReminder: req.ClearReminder,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// Delete handles DELETE /notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	if err := c.deleteNoteUseCase.Execute(ctx.Request.Context(), note.DeleteNoteInput{
		NoteID:  noteID,
		OwnerID: userID,
	}); err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleImportant handles POST /notes/:id/toggle-important requests.
func (c *NoteController) ToggleImportant(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	output, err := c.toggleImportantUseCase.Execute(ctx.Request.Context(), note.ToggleImportantInput{
		NoteID:  noteID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleImportantResponse{IsImportant: output.IsImportant})
}

// Lock handles POST /notes/:id/lock requests.
func (c *NoteController) Lock(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	var req dto.NotePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.lockNoteUseCase.Execute(ctx.Request.Context(), note.LockNoteInput{
		NoteID:   noteID,
		OwnerID:  userID,
		Password: req.Password,
	}); err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Note locked"})
}

// Unlock handles POST /notes/:id/unlock requests. A successful unlock returns
// the note with its content.
func (c *NoteController) Unlock(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	var req dto.NotePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.unlockNoteUseCase.Execute(ctx.Request.Context(), note.UnlockNoteInput{
		NoteID:   noteID,
		OwnerID:  userID,
		Password: req.Password,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// RemoveLock handles POST /notes/:id/remove-lock requests.
func (c *NoteController) RemoveLock(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	var req dto.NotePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.removeLockUseCase.Execute(ctx.Request.Context(), note.RemoveLockInput{
		NoteID:   noteID,
		OwnerID:  userID,
		Password: req.Password,
	}); err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Note lock removed"})
}

// ListLocked handles GET /notes/locked requests.
func (c *NoteController) ListLocked(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listLockedUseCase.Execute(ctx.Request.Context(), note.ListLockedInput{
		OwnerID: userID,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(output.Notes))
}

// handleNoteError handles note errors and returns appropriate HTTP responses.
func (c *NoteController) handleNoteError(ctx *gin.Context, err error) {
	var noteErr *domainerror.NoteError
	if errors.As(err, &noteErr) {
		ctx.JSON(c.getStatusCodeForNoteError(noteErr.Code), dto.ErrorResponse{
			Error: noteErr.Message,
			Code:  string(noteErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForNoteError maps note error codes to HTTP status codes.
func (c *NoteController) getStatusCodeForNoteError(code domainerror.NoteErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoteTitleRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeNotePasswordMismatch:
		return http.StatusForbidden
	case domainerror.ErrCodeNoteNotLocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
