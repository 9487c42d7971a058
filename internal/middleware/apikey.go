package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// Paths served without an API key.
var publicPrefixes = []string{
	"/health",
	"/docs",
}

// RequireAPIKey checks the shared-secret header on every non-public route.
// The expected key comes from the API_KEY env var; a missing server-side key
// is a configuration error, not an auth failure.
func RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		supplied := c.GetHeader(apiKeyHeader)
		if supplied == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing API key"})
			return
		}

		expected := os.Getenv("API_KEY")
		if strings.TrimSpace(expected) == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "API key not configured on the server"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid API key"})
			return
		}

		c.Next()
	}
}

func isPublicPath(path string) bool {
	lower := strings.ToLower(path)
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
