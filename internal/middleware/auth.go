package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/pkg/response"
	"smart-todo-backend/pkg/scope"
)

// Auth verifies the Bearer token and attaches the resulting scope to the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		sc, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(scope.SetToContext(ctx, sc))
		c.Next()
	}
}
