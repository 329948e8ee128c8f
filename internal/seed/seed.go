// Package seed provisions the default admin account at startup so a fresh
// deployment is immediately operable.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/repositories"
	"github.com/internlink/internlink/internal/config"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/auth"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// EnsureAdmin creates the configured admin account when it does not exist.
// A missing admin password skips seeding rather than creating an account
// with a known credential.
func EnsureAdmin(ctx context.Context, users *repositories.UserRepository, cfg *config.Config) error {
	if cfg.Seed.AdminPassword == "" {
		logger.Warn().Msg("No seed admin password configured, skipping admin seed")
		return nil
	}

	_, err := users.GetByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	passwordHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New(),
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}

	if err := users.Create(ctx, admin); err != nil {
		// Lost a race against a concurrent boot; the account exists.
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("username", admin.Username).Msg("Seeded default admin account")
	return nil
}
