package postgre

import (
	"fmt"
	"strings"

	repo "smart-todo-backend/internal/todo/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTodo.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTodoOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilters builds the shared WHERE conditions for listing and counting.
func (r *implRepository) buildFilters(opt repo.ListTodosOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, arg)
		idx++
	}

	add("user_id = $%d", opt.UserID)

	if opt.Search != "" {
		add("title ILIKE $%d", "%"+opt.Search+"%")
	}
	switch opt.Status {
	case "completed":
		conditions = append(conditions, "completed = TRUE")
	case "pending":
		conditions = append(conditions, "completed = FALSE")
	}
	if opt.Priority != "" {
		add("priority = $%d", opt.Priority)
	}
	if opt.Category != "" {
		add("category = $%d", opt.Category)
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Todos (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTodosOptions) (string, []any) {
	conditions, args := r.buildFilters(opt)
	return strings.Join(conditions, " AND "), args
}

// orderClause maps a sort key to its ORDER BY expression. Keys are validated
// at the usecase layer; unknown keys fall back to newest-first.
func orderClause(sortBy string) string {
	switch sortBy {
	case "due_date":
		// Todos without a due date sort last.
		return "due_date ASC NULLS LAST"
	case "priority":
		return "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END ASC, created_date DESC"
	case "title":
		return "title ASC"
	default:
		return "created_date DESC"
	}
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTodos.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	conditions, args := r.buildFilters(opt)
	idx := len(args) + 1

	parts := []string{
		"WHERE " + strings.Join(conditions, " AND "),
		"ORDER BY " + orderClause(opt.SortBy),
	}

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
