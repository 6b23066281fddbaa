package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DebugKey guards debug-only routes. With an empty key the routes behave as
// if they did not exist; otherwise X-Debug-Key must match.
func DebugKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		clientKey := c.GetHeader("X-Debug-Key")
		if subtle.ConstantTimeCompare([]byte(clientKey), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid debug key"})
			return
		}
		c.Next()
	}
}
