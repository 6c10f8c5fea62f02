package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps the AI generation endpoints. Both routes require an
// authenticated scope and are throttled per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth(), mw.AIRateLimit(), mw.AITimeout())
	{
		ai.POST("/todos", h.Extract)
		ai.POST("/summary", h.Summarize)
	}
}
