// Package auth contains authentication use cases.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/finmate/backend/internal/application/adapter"
	"github.com/finmate/backend/internal/domain/entity"
	domainerror "github.com/finmate/backend/internal/domain/error"
)

// cidAlphabet excludes 0/O and 1/I so a CID read over the phone survives.
const (
	cidAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	cidLength   = 8
)

// RegisterInput represents the input for user registration.
type RegisterInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
}

// RegisterOutput represents the output of user registration.
type RegisterOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// RegisterUseCase handles user registration. Every user gets a generated CID,
// the shareable identifier other users search for when connecting.
type RegisterUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUseCase creates a new RegisterUseCase instance.
func NewRegisterUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name, email and password are required",
			domainerror.ErrMissingSignupFields,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cid, err := uc.generateCID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cid: %w", err)
	}

	user := entity.NewUser(name, strings.TrimSpace(input.Phone), email, hash, cid)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterOutput{
		User:   user,
		Tokens: tokens,
	}, nil
}

// generateCID draws random CIDs until one is free. Collisions are rare at this
// length, so a handful of retries is plenty.
func (uc *RegisterUseCase) generateCID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		cid, err := randomCID()
		if err != nil {
			return "", err
		}
		taken, err := uc.userRepo.ExistsByCID(ctx, cid)
		if err != nil {
			return "", err
		}
		if !taken {
			return cid, nil
		}
	}
	return "", domainerror.NewAuthError(
		domainerror.ErrCodeCIDAlreadyExists,
		"could not allocate a unique cid",
		domainerror.ErrCIDAlreadyExists,
	)
}

func randomCID() (string, error) {
	var b strings.Builder
	b.Grow(cidLength)
	max := big.NewInt(int64(len(cidAlphabet)))
	for i := 0; i < cidLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(cidAlphabet[n.Int64()])
	}
	return b.String(), nil
}
