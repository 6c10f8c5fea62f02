package usecase

import (
	"context"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/todo"
	repo "smart-todo-backend/internal/todo/repository"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// List returns the caller's todos filtered, sorted and paginated.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	switch input.Status {
	case "", todo.StatusCompleted, todo.StatusPending:
	default:
		return todo.ListOutput{}, todo.ErrInvalidStatus
	}
	if input.Priority != "" && !model.Priority(input.Priority).IsValid() {
		return todo.ListOutput{}, todo.ErrInvalidPriority
	}
	switch input.SortBy {
	case "", todo.SortCreatedDate, todo.SortDueDate, todo.SortPriority, todo.SortTitle:
	default:
		return todo.ListOutput{}, todo.ErrInvalidSort
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	todos, total, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		UserID:   sc.UserID,
		Search:   input.Search,
		Status:   input.Status,
		Priority: input.Priority,
		Category: input.Category,
		SortBy:   input.SortBy,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{
		Todos:  todos,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
