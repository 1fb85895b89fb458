package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"kosku/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CronKeyAuth protects scheduler-triggered endpoints with a static API key
// carried in the x-api-key header. The comparison is an exact string match.
func CronKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			logCronAuthFailure(c, http.StatusInternalServerError, "key_not_configured")
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Cron API key is not configured")
			c.Abort()
			return
		}

		provided := c.GetHeader("x-api-key")
		if provided == "" {
			logCronAuthFailure(c, http.StatusUnauthorized, "missing_key")
			response.Error(c, http.StatusUnauthorized, "AUTH_MISSING", "x-api-key header is required")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			logCronAuthFailure(c, http.StatusUnauthorized, "invalid_key")
			response.Error(c, http.StatusUnauthorized, "AUTH_INVALID", "Invalid API key")
			c.Abort()
			return
		}

		c.Next()
	}
}

func logCronAuthFailure(c *gin.Context, status int, reason string) {
	log.Printf("cron_auth status=%d client_ip=%s reason=%s", status, c.ClientIP(), reason)
}
