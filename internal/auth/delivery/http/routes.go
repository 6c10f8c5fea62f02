package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. SignUp/SignIn are public; the rest
// require a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/signin", h.SignIn)
		authGroup.POST("/signout", mw.Auth(), h.SignOut)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
