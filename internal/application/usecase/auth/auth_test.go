package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finmate/backend/internal/application/adapter"
	domainerror "github.com/finmate/backend/internal/domain/error"
	"github.com/finmate/backend/internal/integration/adapters"
	"github.com/finmate/backend/internal/integration/persistence"
	"github.com/finmate/backend/internal/integration/persistence/model"
)

type authFixture struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.RefreshTokenModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tokenRepo := persistence.NewTokenRepository(db)
	return authFixture{
		userRepo:        persistence.NewUserRepository(db),
		passwordService: adapters.NewPasswordService(),
		tokenService:    adapters.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour, tokenRepo),
	}
}

func TestRegisterUseCase(t *testing.T) {
	t.Run("registers a user with a generated CID and tokens", func(t *testing.T) {
		f := newAuthFixture(t)
		uc := NewRegisterUseCase(f.userRepo, f.passwordService, f.tokenService)

		output, err := uc.Execute(context.Background(), RegisterInput{
			Name:     "Asha Rao",
			Phone:    "9876543210",
			Email:    "Asha@Example.com",
			Password: "Str0ngPass!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Email != "asha@example.com" {
			t.Errorf("expected lowercased email, got %q", output.User.Email)
		}
		if len(output.User.CID) != cidLength {
			t.Errorf("expected CID of length %d, got %q", cidLength, output.User.CID)
		}
		for _, r := range output.User.CID {
			switch r {
			case '0', 'O', '1', 'I':
				t.Errorf("CID %q contains ambiguous character %q", output.User.CID, r)
			}
		}
		if output.Tokens.AccessToken == "" || output.Tokens.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newAuthFixture(t)
		uc := NewRegisterUseCase(f.userRepo, f.passwordService, f.tokenService)

		input := RegisterInput{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Str0ngPass!",
		}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		_, err := uc.Execute(context.Background(), input)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailAlreadyExists {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeEmailAlreadyExists, err)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		f := newAuthFixture(t)
		uc := NewRegisterUseCase(f.userRepo, f.passwordService, f.tokenService)

		_, err := uc.Execute(context.Background(), RegisterInput{
			Name:     "  ",
			Email:    "asha@example.com",
			Password: "Str0ngPass!",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeMissingFields, err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		f := newAuthFixture(t)
		uc := NewRegisterUseCase(f.userRepo, f.passwordService, f.tokenService)

		_, err := uc.Execute(context.Background(), RegisterInput{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "123",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeWeakPassword, err)
		}
	})
}

func TestLoginUseCase(t *testing.T) {
	f := newAuthFixture(t)
	register := NewRegisterUseCase(f.userRepo, f.passwordService, f.tokenService)
	login := NewLoginUseCase(f.userRepo, f.passwordService, f.tokenService)

	if _, err := register.Execute(context.Background(), RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Str0ngPass!",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	t.Run("logs in with correct credentials", func(t *testing.T) {
		output, err := login.Execute(context.Background(), LoginInput{
			Email:    "ASHA@example.com",
			Password: "Str0ngPass!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Tokens.AccessToken == "" {
			t.Error("expected access token")
		}
	})

	t.Run("wrong password and unknown email share one error", func(t *testing.T) {
		_, wrongPassErr := login.Execute(context.Background(), LoginInput{
			Email:    "asha@example.com",
			Password: "wrong",
		})
		_, unknownEmailErr := login.Execute(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "Str0ngPass!",
		})

		var authErr1, authErr2 *domainerror.AuthError
		if !errors.As(wrongPassErr, &authErr1) || authErr1.Code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("wrong password: expected %s, got %v", domainerror.ErrCodeInvalidCredentials, wrongPassErr)
		}
		if !errors.As(unknownEmailErr, &authErr2) || authErr2.Code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("unknown email: expected %s, got %v", domainerror.ErrCodeInvalidCredentials, unknownEmailErr)
		}
		if authErr1 != nil && authErr2 != nil && authErr1.Message != authErr2.Message {
			t.Error("expected identical messages for both failure modes")
		}
	})
}

func TestRefreshUseCase(t *testing.T) {
	f := newAuthFixture(t)
	register := NewRegisterUseCase(f.userRepo, f.passwordService, f.tokenService)
	refresh := NewRefreshUseCase(f.tokenService, f.userRepo)

	registered, err := register.Execute(context.Background(), RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Str0ngPass!",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	t.Run("rotates a valid refresh token", func(t *testing.T) {
		output, err := refresh.Execute(context.Background(), RefreshInput{
			RefreshToken: registered.Tokens.RefreshToken,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Tokens.AccessToken == "" || output.Tokens.RefreshToken == "" {
			t.Error("expected a fresh token pair")
		}
	})

	t.Run("rejects a replayed refresh token", func(t *testing.T) {
		_, err := refresh.Execute(context.Background(), RefreshInput{
			RefreshToken: registered.Tokens.RefreshToken,
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidToken, err)
		}
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		_, err := refresh.Execute(context.Background(), RefreshInput{
			RefreshToken: "not-a-token",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected %s error, got %v", domainerror.ErrCodeInvalidToken, err)
		}
	})
}
