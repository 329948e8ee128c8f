package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/internlink/internlink/internal/app/models"
)

// identityKey is the gin context key the auth middleware stores the caller
// identity under.
const identityKey = "identity"

// Identity is the authenticated caller, decoded from a verified session
// token. Claims are trusted as-is for the token's lifetime.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     models.Role
}

// SetIdentity attaches the caller identity to the request context.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the caller identity, if the auth middleware has run.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
