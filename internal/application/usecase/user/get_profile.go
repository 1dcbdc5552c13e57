// Package user contains profile use cases.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// GetProfileInput represents the input for fetching the caller's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of a profile fetch.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase fetches the caller's own profile, including their CID.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the fetch.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetProfileOutput{
		User: user,
	}, nil
}
