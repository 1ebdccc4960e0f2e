package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/votigram/waitlist-api/config/router"
	"github.com/votigram/waitlist-api/internal/log"
)

// APIKeyHeader carries the admin shared secret.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey rejects requests whose X-API-Key header does not match the
// configured secret. An empty configured key disables the admin surface
// entirely rather than leaving it open.
func RequireAPIKey(apiKey string, logger *log.Logger) router.MiddlewareFunc {
	return func(c *router.RequestContext) {
		provided := c.GetHeader(APIKeyHeader)

		if apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			logger.WithCorrelationID(c.Request.Context()).Warn("Admin request rejected",
				"path", c.Request.URL.Path,
				"remote_addr", c.ClientIP(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, router.UnauthorizedResult("Unauthorized").ToJSON())
			return
		}

		c.Next()
	}
}
