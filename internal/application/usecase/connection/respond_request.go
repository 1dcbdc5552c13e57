// Package connection contains CID-based user connection use cases.
package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// RespondRequestInput represents the input for answering a connection request.
type RespondRequestInput struct {
	ConnectionID uuid.UUID
	UserID       uuid.UUID
	Accept       bool
}

// RespondRequestUseCase answers an incoming connection request. Accepting
// makes the pair connected; declining removes the row so either side can try
// again later.
type RespondRequestUseCase struct {
	connectionRepo   adapter.ConnectionRepository
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
}

// NewRespondRequestUseCase creates a new RespondRequestUseCase instance.
func NewRespondRequestUseCase(
	connectionRepo adapter.ConnectionRepository,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
) *RespondRequestUseCase {
	return &RespondRequestUseCase{
		connectionRepo:   connectionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Execute performs the response.
func (uc *RespondRequestUseCase) Execute(ctx context.Context, input RespondRequestInput) error {
	connection, err := uc.connectionRepo.FindByID(ctx, input.ConnectionID)
	if err != nil {
		return fmt.Errorf("failed to find connection: %w", err)
	}

	// Only the recipient of a pending request may answer it.
	if connection == nil || connection.RecipientID != input.UserID || connection.Status != entity.ConnectionStatusPending {
		return domainerror.NewConnectionError(
			domainerror.ErrCodeConnectionNotFound,
			"connection request not found",
			domainerror.ErrConnectionNotFound,
		)
	}

	if !input.Accept {
		if err := uc.connectionRepo.Delete(ctx, input.ConnectionID); err != nil {
			return fmt.Errorf("failed to decline connection: %w", err)
		}
		return nil
	}

	if err := uc.connectionRepo.UpdateStatus(ctx, input.ConnectionID, entity.ConnectionStatusConnected); err != nil {
		return fmt.Errorf("failed to accept connection: %w", err)
	}

	recipient, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err == nil {
		notification := entity.NewNotification(
			connection.RequesterID,
			fmt.Sprintf("%s accepted your connection request", recipient.Name),
		)
		_ = uc.notificationRepo.Create(ctx, notification)
	}

	return nil
}
