package repository

import (
	"time"

	"smart-todo-backend/internal/model"
)

// CreateTodoOptions holds parameters for inserting a new Todo. The ID is
// assigned by the caller.
type CreateTodoOptions struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Category    *string
}

// GetOneTodoOptions holds filter parameters for fetching a single Todo.
type GetOneTodoOptions struct {
	ID     string
	UserID string
}

// ListTodosOptions holds filter, sort and pagination parameters for listing
// Todos. Empty filters are skipped.
type ListTodosOptions struct {
	UserID   string
	Search   string // title substring, case-insensitive
	Status   string // completed | pending
	Priority string
	Category string
	SortBy   string
	Limit    int
	Offset   int
}

// UpdateTodoOptions holds the full post-coalesce row state for an update.
type UpdateTodoOptions struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Category    *string
	Completed   bool
}

// DeleteTodoOptions holds parameters for deleting a Todo.
type DeleteTodoOptions struct {
	ID     string
	UserID string
}
