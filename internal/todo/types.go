package todo

import (
	"time"

	"smart-todo-backend/internal/model"
)

// Sort keys accepted by List.
const (
	SortCreatedDate = "created_date"
	SortDueDate     = "due_date"
	SortPriority    = "priority"
	SortTitle       = "title"
)

// Status filters accepted by List.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Category    *string
}

type ListInput struct {
	Search   string
	Status   string
	Priority string
	Category string
	SortBy   string
	Limit    int
	Offset   int
}

// UpdateInput carries a partial update: nil fields keep the stored value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *model.Priority
	Category    *string
	Completed   *bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Todo model.Todo
}

type ListOutput struct {
	Todos  []model.Todo
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Todo model.Todo
}

type UpdateOutput struct {
	Todo model.Todo
}
