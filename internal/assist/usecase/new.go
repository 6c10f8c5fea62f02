package usecase

import (
	"time"

	"smart-todo-backend/internal/assist"
	pkgLog "smart-todo-backend/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       assist.Generator
	hasAPIKey bool
	loc       *time.Location
}

var _ assist.UseCase = (*implUseCase)(nil)

// New creates a new assist UseCase instance. hasAPIKey gates both pipelines:
// when false they fail fast before any external call.
func New(l pkgLog.Logger, llm assist.Generator, hasAPIKey bool, timezone string) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		hasAPIKey: hasAPIKey,
		loc:       loc,
	}
}
