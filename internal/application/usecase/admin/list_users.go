// Package admin contains admin-only use cases. The admin gate itself lives in
// the transport middleware; these use cases assume it already ran.
package admin

import (
	"context"
	"fmt"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
)

// ListUsersOutput represents the output of the admin user listing.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase lists every non-admin user, newest first.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the listing.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	users, err := uc.userRepo.ListNonAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{
		Users: users,
	}, nil
}
