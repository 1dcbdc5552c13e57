// Package connection contains CID-based user connection use cases.
package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// DisconnectInput represents the input for removing a connection.
type DisconnectInput struct {
	ConnectionID uuid.UUID
	UserID       uuid.UUID
}

// DisconnectUseCase removes a connection. Either side may disconnect.
// Existing shared goals are untouched; the pair just cannot start new ones.
type DisconnectUseCase struct {
	connectionRepo adapter.ConnectionRepository
}

// NewDisconnectUseCase creates a new DisconnectUseCase instance.
func NewDisconnectUseCase(connectionRepo adapter.ConnectionRepository) *DisconnectUseCase {
	return &DisconnectUseCase{
		connectionRepo: connectionRepo,
	}
}

// Execute performs the disconnect.
func (uc *DisconnectUseCase) Execute(ctx context.Context, input DisconnectInput) error {
	connection, err := uc.connectionRepo.FindByID(ctx, input.ConnectionID)
	if err != nil {
		return fmt.Errorf("failed to find connection: %w", err)
	}
	if connection == nil || !connection.Involves(input.UserID) {
		return domainerror.NewConnectionError(
			domainerror.ErrCodeConnectionNotFound,
			"connection not found",
			domainerror.ErrConnectionNotFound,
		)
	}

	if err := uc.connectionRepo.Delete(ctx, input.ConnectionID); err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	return nil
}
