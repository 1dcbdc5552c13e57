// Package connection contains CID-based user connection use cases.
package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListConnectionsInput represents the input for listing connected users.
type ListConnectionsInput struct {
	UserID uuid.UUID
}

// ListConnectionsOutput represents the output of listing connected users.
type ListConnectionsOutput struct {
	Connections []*entity.ConnectedUser
}

// ListConnectionsUseCase lists everyone the caller is connected to. These are
// the candidates for connected goal invitations.
type ListConnectionsUseCase struct {
	connectionRepo adapter.ConnectionRepository
}

// NewListConnectionsUseCase creates a new ListConnectionsUseCase instance.
func NewListConnectionsUseCase(connectionRepo adapter.ConnectionRepository) *ListConnectionsUseCase {
	return &ListConnectionsUseCase{
		connectionRepo: connectionRepo,
	}
}

// Execute performs the listing.
func (uc *ListConnectionsUseCase) Execute(ctx context.Context, input ListConnectionsInput) (*ListConnectionsOutput, error) {
	connections, err := uc.connectionRepo.ListConnected(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return &ListConnectionsOutput{
		Connections: connections,
	}, nil
}
