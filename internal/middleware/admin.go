package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared token for privileged routes.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuthMiddleware guards privileged routes with a shared token. The
// service has no user accounts, so the all-owners listing is restricted to
// callers that present the configured token. An empty configured token
// disables the route entirely.
func AdminAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(AdminTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
