package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/auth"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// AuthUserStore is the account access the auth service needs.
type AuthUserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AuthService handles registration, login, and password changes.
type AuthService struct {
	users      AuthUserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users AuthUserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwtService: jwtService}
}

// Register creates a new user account. The username must be unused and the
// role must be one of the known roles.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	if !req.Role.Valid() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be admin, supervisor, or student")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Role:         req.Role,
		Status:       models.StatusActive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")
	return nil
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password are indistinguishable to the caller. Account status
// is not consulted here.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		return "", err
	}

	logger.Info().Str("username", user.Username).Msg("User logged in")
	return token, nil
}

// ChangePassword replaces the caller's password after verifying the old one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// A valid token for a deleted account is a request problem, not a
		// missing resource.
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "user not found")
		}
		return err
	}

	if err := auth.CheckPassword(user.PasswordHash, req.OldPassword); err != nil {
		return apperrors.ErrWrongOldPassword
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	logger.Info().Str("username", user.Username).Msg("Password changed")
	return nil
}
