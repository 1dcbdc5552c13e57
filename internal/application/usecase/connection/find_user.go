// Package connection contains CID-based user connection use cases.
package connection

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// FindUserInput represents the input for a CID lookup.
type FindUserInput struct {
	CallerID uuid.UUID
	CID      string
}

// FindUserOutput represents the output of a CID lookup. Only the public
// fields leave this use case; email and phone stay private.
type FindUserOutput struct {
	UserID uuid.UUID
	Name   string
	CID    string
}

// FindUserUseCase looks up a user by CID before sending a connection request.
type FindUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewFindUserUseCase creates a new FindUserUseCase instance.
func NewFindUserUseCase(userRepo adapter.UserRepository) *FindUserUseCase {
	return &FindUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the lookup.
func (uc *FindUserUseCase) Execute(ctx context.Context, input FindUserInput) (*FindUserOutput, error) {
	cid := strings.ToUpper(strings.TrimSpace(input.CID))

	user, err := uc.userRepo.FindByCID(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by cid: %w", err)
	}
	if user == nil || user.ID == input.CallerID {
		// Looking up your own CID behaves like a miss.
		return nil, domainerror.NewConnectionError(
			domainerror.ErrCodeUserNotFoundByCID,
			"no user found for this cid",
			domainerror.ErrUserNotFoundByCID,
		)
	}

	return &FindUserOutput{
		UserID: user.ID,
		Name:   user.Name,
		CID:    user.CID,
	}, nil
}
