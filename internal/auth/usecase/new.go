package usecase

import (
	"smart-todo-backend/internal/auth/repository"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo         repository.Repository
	l            log.Logger
	scopeManager scope.Manager
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, l log.Logger, scopeManager scope.Manager) *implUseCase {
	return &implUseCase{
		repo:         repo,
		l:            l,
		scopeManager: scopeManager,
	}
}
