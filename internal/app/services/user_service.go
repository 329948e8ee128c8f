package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/auth"
)

// UserStore is the account access the user service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	CreateMany(ctx context.Context, users []*models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User, newPasswordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService handles account administration.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List retrieves all accounts. Password hashes never serialize.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// GetByID retrieves a single account.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create adds one or more accounts. A batch is inserted in a single
// transaction, so a duplicate username anywhere rejects the whole batch.
func (s *UserService) Create(ctx context.Context, reqs []dto.CreateUserRequest) error {
	users := make([]*models.User, 0, len(reqs))
	for _, req := range reqs {
		if !req.Role.Valid() {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be admin, supervisor, or student")
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			return err
		}

		users = append(users, &models.User{
			ID:           uuid.New(),
			Username:     req.Username,
			PasswordHash: passwordHash,
			Email:        req.Email,
			Role:         req.Role,
			Status:       models.StatusActive,
		})
	}

	if len(users) == 1 {
		return s.users.Create(ctx, users[0])
	}
	return s.users.CreateMany(ctx, users)
}

// Update rewrites an account's username, email, and role. The password is
// only rehashed when the request carries one.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) error {
	if !req.Role.Valid() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be admin, supervisor, or student")
	}

	newPasswordHash := ""
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		newPasswordHash = hash
	}

	user := &models.User{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	return s.users.Update(ctx, user, newPasswordHash)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
