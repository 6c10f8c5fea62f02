package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/todo"
	repo "smart-todo-backend/internal/todo/repository"
	"smart-todo-backend/pkg/gcalendar"
)

const maxTitleLength = 100

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return todo.ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLength {
		return todo.ErrTitleTooLong
	}
	return nil
}

// Create persists a new todo owned by the caller. When a due date is present
// and a calendar client is configured, a calendar event is created as well;
// calendar failures are logged and never fail the create.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return todo.CreateOutput{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return todo.CreateOutput{}, todo.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateOutput{}, err
	}

	uc.createCalendarEvent(ctx, created)

	return todo.CreateOutput{Todo: created}, nil
}

func (uc *implUseCase) createCalendarEvent(ctx context.Context, t model.Todo) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	description := ""
	if t.Description != nil {
		description = *t.Description
	}
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: description,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create CreateEvent: %v", err)
	}
}
