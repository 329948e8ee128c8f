package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/auth"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// AuthMiddleware authenticates requests and gates routes by role.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate verifies the bearer token and attaches the caller identity to
// the request context. A missing token is 401; a token that fails
// verification (bad signature, malformed, expired) is 403. No shared state
// is touched, so the middleware is safe under arbitrary concurrency.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("no token provided, please log in"))
			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("token expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("invalid or expired token"))
			return
		}

		appauth.SetIdentity(c, appauth.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})

		c.Next()
	}
}

// RequireRoles passes only callers whose role is in the allowed set. It
// fails closed with 401 when Authenticate has not populated an identity, so
// a route wired without authentication cannot silently become public.
func (m *AuthMiddleware) RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := appauth.IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("no user identity in request"))
			return
		}

		for _, role := range allowed {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		logger.Warn().
			Str("username", identity.Username).
			Str("role", string(identity.Role)).
			Str("path", c.FullPath()).
			Msg("Role check rejected request")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("you do not have permission to access this resource"))
	}
}
