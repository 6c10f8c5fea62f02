package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// aiRequestTimeout bounds a generation request end to end, provider call
// included.
const aiRequestTimeout = 30 * time.Second

// AITimeout caps the request context for the generation endpoints. The
// provider call inherits the deadline through the request context.
func (m Middleware) AITimeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), aiRequestTimeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
