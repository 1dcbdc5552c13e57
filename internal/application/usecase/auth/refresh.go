// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// RefreshInput represents the input for token refresh.
type RefreshInput struct {
	RefreshToken string
}

// RefreshOutput represents the output of token refresh.
type RefreshOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshUseCase rotates a refresh token: the old token is invalidated in the
// same call that issues the new pair, so a leaked token can be replayed at
// most once.
type RefreshUseCase struct {
	tokenService adapter.TokenService
	userRepo     adapter.UserRepository
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(tokenService adapter.TokenService, userRepo adapter.UserRepository) *RefreshUseCase {
	return &RefreshUseCase{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// Execute performs the refresh.
func (uc *RefreshUseCase) Execute(ctx context.Context, input RefreshInput) (*RefreshOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, invalidToken()
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, invalidToken()
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, invalidToken()
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshOutput{
		Tokens: tokens,
	}, nil
}

func invalidToken() *domainerror.AuthError {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidToken,
		"invalid or expired token",
		domainerror.ErrInvalidToken,
	)
}
