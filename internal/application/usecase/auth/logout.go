// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finmate/backend/internal/application/adapter"
)

// LogoutInput represents the input for logout.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase invalidates the caller's refresh token. Access tokens stay
// valid until they expire; only the refresh path is cut.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}
