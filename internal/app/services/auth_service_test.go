package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/auth"
)

func newAuthService(users *fakeUserStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: 8 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(users, jwtService)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)
	ctx := context.Background()

	err := svc.Register(ctx, dto.RegisterRequest{
		Username: "ayse",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	token, err := svc.Login(ctx, dto.LoginRequest{Username: "ayse", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := users.GetByUsername(ctx, "ayse")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.Equal(t, models.StatusActive, stored.Status)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	ctx := context.Background()

	req := dto.RegisterRequest{Username: "ayse", Password: "secret123", Role: models.RoleStudent}
	require.NoError(t, svc.Register(ctx, req))

	err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "ayse",
		Password: "secret123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterRequest{
		Username: "ayse", Password: "secret123", Role: models.RoleStudent,
	}))

	// Wrong password and unknown username fail identically.
	_, err := svc.Login(ctx, dto.LoginRequest{Username: "ayse", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, dto.RegisterRequest{
		Username: "ayse", Password: "secret123", Role: models.RoleStudent,
	}))
	user, err := users.GetByUsername(ctx, "ayse")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrWrongOldPassword)

	err = svc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		OldPassword: "secret123", NewPassword: "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ayse", Password: "newsecret"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ayse", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
