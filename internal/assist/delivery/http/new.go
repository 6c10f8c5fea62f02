package http

import (
	"smart-todo-backend/internal/assist"
	"smart-todo-backend/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assist.UseCase
}

// New creates a new HTTP handler for the assist domain.
func New(l log.Logger, uc assist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
