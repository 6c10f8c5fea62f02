package usecase

import (
	"smart-todo-backend/internal/todo/repository"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// calendar is optional; nil disables event creation.
	calendar   *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a new todo UseCase implementation. Pass a nil calendar to
// disable calendar event creation.
func New(repo repository.Repository, l log.Logger, calendar *gcalendar.Client, calendarID, timezone string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
