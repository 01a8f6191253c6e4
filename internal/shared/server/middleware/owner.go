package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ownerIDKey     = "ownerId"
	ownerIDHeader  = "X-Owner-Id"
	anonymousOwner = "anonymous"
)

// Owner resolves the opaque owner key for a request from the X-Owner-Id
// header. Authentication is deliberately out of scope; the owner key only
// partitions documents and rate-limit buckets.
func Owner() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(ownerIDHeader))
		if owner == "" {
			owner = anonymousOwner
		}
		c.Set(ownerIDKey, owner)
		c.Next()
	}
}

// OwnerIDFromContext fetches the owner ID set by the Owner middleware.
func OwnerIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(ownerIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
