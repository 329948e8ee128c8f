// Package controllers holds the gin handlers. Controllers bind and validate
// request bodies, resolve the caller identity, and delegate to services;
// service errors are translated centrally by middleware.HandleAPIError.
package controllers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models/dto"
)

// bindOneOrMany accepts either a single JSON object or an array of them,
// returning a normalized slice. Validation tags apply to every element.
func bindOneOrMany[T any](c *gin.Context) ([]T, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to read request body"))
		return nil, false
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []T
		if err := binding.JSON.BindBody(body, &many); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
			return nil, false
		}
		if len(many) == 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("request array is empty"))
			return nil, false
		}
		return many, true
	}

	var one T
	if err := binding.JSON.BindBody(body, &one); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return nil, false
	}
	return []T{one}, true
}

// bindJSON binds a single JSON body, writing the validation response itself.
func bindJSON[T any](c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return false
	}
	return true
}

// idParam parses the :id route parameter as a UUID.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// mustIdentity returns the authenticated caller. Routes reaching a
// controller always pass Authenticate first, so a missing identity is a
// wiring bug surfaced as 401 rather than a panic.
func mustIdentity(c *gin.Context) (appauth.Identity, bool) {
	identity, ok := appauth.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("no user identity in request"))
		return appauth.Identity{}, false
	}
	return identity, true
}
