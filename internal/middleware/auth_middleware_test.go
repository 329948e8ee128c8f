package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/internlink/internlink/internal/app/auth"
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: expiration,
		TokenIssuer:     "test",
	})
}

func protectedRouter(jwtService *auth.JWTService, roles ...models.Role) *gin.Engine {
	mw := NewAuthMiddleware(jwtService)
	router := gin.New()

	handlers := []gin.HandlerFunc{mw.Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, mw.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := appauth.IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"username": identity.Username})
	})

	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingToken(t *testing.T) {
	router := protectedRouter(newTestJWTService(time.Hour))

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "Basic abc").Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	router := protectedRouter(newTestJWTService(time.Hour))

	w := doRequest(router, "Bearer garbage.token.here")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	// Issued with a negative lifetime, the token is already expired.
	expiredService := newTestJWTService(-time.Minute)
	token, err := expiredService.Issue(&models.User{
		ID: uuid.New(), Username: "sup", Role: models.RoleSupervisor,
	})
	require.NoError(t, err)

	router := protectedRouter(newTestJWTService(time.Hour))
	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

func TestAuthenticateSuccess(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	token, err := jwtService.Issue(&models.User{
		ID: uuid.New(), Username: "sup", Role: models.RoleSupervisor,
	})
	require.NoError(t, err)

	w := doRequest(protectedRouter(jwtService), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sup")
}

func TestRequireRoles(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := protectedRouter(jwtService, models.RoleAdmin)

	supervisorToken, err := jwtService.Issue(&models.User{
		ID: uuid.New(), Username: "sup", Role: models.RoleSupervisor,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "Bearer "+supervisorToken).Code)

	adminToken, err := jwtService.Issue(&models.User{
		ID: uuid.New(), Username: "boss", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doRequest(router, "Bearer "+adminToken).Code)
}

func TestRequireRolesWithoutIdentity(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWTService(time.Hour))
	router := gin.New()
	// Misconfigured route: role guard without Authenticate fails closed.
	router.GET("/protected", mw.RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "").Code)
}
