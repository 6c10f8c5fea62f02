package middleware

import (
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	aiLimiter    *rateLimiter
}

func New(l log.Logger, scopeManager scope.Manager, aiRequestsPerMin int) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		aiLimiter:    newRateLimiter(aiRequestsPerMin),
	}
}
