package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/app/services"
	"github.com/internlink/internlink/internal/middleware"
)

// UserController handles account administration endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// List handles GET /api/users
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.userService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id
func (ctrl *UserController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := ctrl.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users, accepting a single object or an array.
func (ctrl *UserController) Create(c *gin.Context) {
	reqs, ok := bindOneOrMany[dto.CreateUserRequest](c)
	if !ok {
		return
	}

	if err := ctrl.userService.Create(c.Request.Context(), reqs); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "users created successfully"})
}

// Update handles PUT /api/users/:id
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.userService.Update(c.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user updated successfully"})
}

// Delete handles DELETE /api/users/:id
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted successfully"})
}
