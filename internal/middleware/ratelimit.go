package middleware

import (
	"github.com/gin-gonic/gin"

	"voice-timesheet/pkg/response"
)

// RateLimit rejects requests beyond the configured submission rate.
// Each accepted request consumes a token; exhaustion yields 429.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter != nil && !mw.limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c, "too many submissions, try again shortly")
			c.Abort()
			return
		}
		c.Next()
	}
}
