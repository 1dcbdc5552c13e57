// Package auth contains authentication use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// LoginInput represents the input for user login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the output of user login.
type LoginOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// LoginUseCase handles user login. An unknown email and a wrong password
// produce the same error so the endpoint cannot be used to enumerate accounts.
// Rate limiting happens in the transport layer before this runs.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginOutput{
		User:   user,
		Tokens: tokens,
	}, nil
}

func invalidCredentials() *domainerror.AuthError {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid credentials",
		domainerror.ErrInvalidCredentials,
	)
}
