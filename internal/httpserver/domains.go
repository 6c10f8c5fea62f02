package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistHTTP "smart-todo-backend/internal/assist/delivery/http"
	assistUC "smart-todo-backend/internal/assist/usecase"
	authHTTP "smart-todo-backend/internal/auth/delivery/http"
	authRepo "smart-todo-backend/internal/auth/repository/postgre"
	authUC "smart-todo-backend/internal/auth/usecase"
	"smart-todo-backend/internal/middleware"
	todoHTTP "smart-todo-backend/internal/todo/delivery/http"
	todoRepo "smart-todo-backend/internal/todo/repository/postgre"
	todoUC "smart-todo-backend/internal/todo/usecase"
)

// setupAuthDomain initializes the auth domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(repo, srv.l, srv.scopeManager)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

// setupTodoDomain initializes todo CRUD and registers its routes.
func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := todoRepo.New(srv.postgresDB, srv.l)
	uc := todoUC.New(repo, srv.l, srv.calendar, srv.calendarID, srv.timezone)
	h := todoHTTP.New(srv.l, uc)
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}

// setupAssistDomain initializes the AI pipelines and registers their routes.
func (srv *HTTPServer) setupAssistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := assistUC.New(srv.l, srv.geminiClient, srv.hasGeminiKey, srv.timezone)
	h := assistHTTP.New(srv.l, uc)
	assistHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assist domain registered")
	return nil
}
