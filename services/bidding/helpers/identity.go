package helpers

import (
	"offer-auction/internal/auth"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the auth middleware stores the
// verified identity under.
const IdentityKey = "auth_identity"

// SetIdentity stores a verified identity on the request context
func SetIdentity(c *gin.Context, id auth.Identity) {
	c.Set(IdentityKey, id)
}

// CurrentIdentity returns the verified identity for the request, if any
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
