// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCID retrieves a user by their connection identifier.
	// Returns (nil, nil) when absent.
	FindByCID(ctx context.Context, cid string) (*entity.User, error)

	// ExistsByCID checks whether a CID is already taken.
	ExistsByCID(ctx context.Context, cid string) (bool, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and all their data.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListNonAdmins retrieves every non-admin user, newest first.
	ListNonAdmins(ctx context.Context) ([]*entity.User, error)
}

// TokenRepository defines the interface for refresh token persistence.
type TokenRepository interface {
	// SaveRefreshToken stores a refresh token for a user.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// InvalidateRefreshToken marks a refresh token as revoked.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid checks if a refresh token is stored and not revoked.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}
