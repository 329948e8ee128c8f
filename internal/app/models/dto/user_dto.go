package dto

import "github.com/internlink/internlink/internal/app/models"

// CreateUserRequest is one element of POST /api/users (object or array).
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Email    *string     `json:"email" binding:"omitempty,email"`
	Role     models.Role `json:"role" binding:"required"`
}

// UpdateUserRequest is the body of PUT /api/users/:id. Password is only
// rehashed when supplied.
type UpdateUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Password *string     `json:"password"`
	Email    *string     `json:"email" binding:"omitempty,email"`
	Role     models.Role `json:"role" binding:"required"`
}
