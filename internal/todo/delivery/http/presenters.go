package http

import (
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    *string    `json:"category"    binding:"omitempty,max=50"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    model.Priority(r.Priority),
		Category:    r.Category,
	}
}

// ---

type listReq struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Category string `form:"category"`
	SortBy   string `form:"sort_by"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{
		Search:   r.Search,
		Status:   r.Status,
		Priority: r.Priority,
		Category: r.Category,
		SortBy:   r.SortBy,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,min=1,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Category    *string    `json:"category"    binding:"omitempty,max=50"`
	Completed   *bool      `json:"completed"`
}

func (r updateReq) toInput() todo.UpdateInput {
	input := todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Category:    r.Category,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	return input
}

// --- Response DTOs ---

type todoResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	CreatedDate time.Time  `json:"created_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Category    *string    `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedDate: t.CreatedDate,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
	}
}

type createResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newCreateResp(out todo.CreateOutput) createResp {
	return createResp{Todo: newTodoResp(out.Todo)}
}

type listResp struct {
	Todos  []todoResp `json:"todos"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{
		Todos:  todos,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newDetailResp(out todo.DetailOutput) detailResp {
	return detailResp{Todo: newTodoResp(out.Todo)}
}

type updateResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newUpdateResp(out todo.UpdateOutput) updateResp {
	return updateResp{Todo: newTodoResp(out.Todo)}
}
