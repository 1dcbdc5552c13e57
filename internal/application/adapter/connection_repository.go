// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// ConnectionRepository defines the interface for user connection persistence.
type ConnectionRepository interface {
	// Create stores a new pending connection request.
	Create(ctx context.Context, connection *entity.Connection) error

	// FindByID retrieves a connection by its ID. Returns (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Connection, error)

	// FindBetween retrieves the connection row between two users regardless of
	// direction. Returns (nil, nil) when absent.
	FindBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Connection, error)

	// UpdateStatus transitions a connection row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConnectionStatus) error

	// Delete removes a connection row.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListRequests retrieves incoming pending requests for a user, annotated
	// with requester names and CIDs.
	ListRequests(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectionRequest, error)

	// ListConnected retrieves every user connected to the given user.
	ListConnected(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedUser, error)

	// AreConnected reports whether an accepted connection exists between two users.
	AreConnected(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}
