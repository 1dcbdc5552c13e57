// Package admin contains admin-only use cases. The admin gate itself lives in
// the transport middleware; these use cases assume it already ran.
package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// DeleteUserInput represents the input for deleting a user account.
type DeleteUserInput struct {
	UserID uuid.UUID
}

// DeleteUserUseCase deletes a user with all their data. Admin accounts cannot
// be deleted through this path.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.IsAdmin() {
		return domainerror.NewUserError(
			domainerror.ErrCodeCannotDeleteAdmin,
			"cannot delete an admin account",
			domainerror.ErrCannotDeleteAdmin,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
