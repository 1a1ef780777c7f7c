package middleware

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gin-gonic/gin"
)

const (
	apiKeyHeader     = "X-API-Key"
	authMethodAPIKey = "api_key"
)

// APIKeyAuth authenticates machine clients, such as the bank statement importer, by a
// static key. keys maps each key to the principal recorded as creator. Requests
// without a valid key fall through to JWT authentication.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" || len(keys) == 0 {
			c.Next()
			return
		}

		for candidate, principal := range keys {
			if subtle.ConstantTimeCompare([]byte(candidate), []byte(key)) == 1 {
				setUser(c, principal, authMethodAPIKey)
				c.Next()
				return
			}
		}

		GetLoggerFromCtx(c.Request.Context()).Warn("Unknown API key", slog.String("ip", c.ClientIP()))
		c.Next()
	}
}
