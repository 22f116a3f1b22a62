package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/shared/server/respond"
)

// APIKeyAuth validates the X-Api-Key header against the configured key.
// An empty configured key disables authentication entirely.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	key := strings.TrimSpace(apiKey)
	return func(c *gin.Context) {
		if key == "" || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		// Operator surfaces stay reachable without a key.
		if strings.HasSuffix(c.Request.URL.Path, "/health") || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		provided := strings.TrimSpace(c.GetHeader("X-Api-Key"))
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid api key", nil)
			return
		}
		c.Next()
	}
}
