package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"smart-todo-backend/internal/model"
	repo "smart-todo-backend/internal/todo/repository"
)

const todoColumns = `id, user_id, title, description, created_date, due_date, priority, category, completed`

func scanTodo(row interface{ Scan(...any) error }) (model.Todo, error) {
	var t model.Todo
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedDate,
		&t.DueDate, &t.Priority, &t.Category, &t.Completed,
	)
	return t, err
}

// CreateTodo inserts a new Todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	query := fmt.Sprintf(`
		INSERT INTO todos (id, user_id, title, description, created_date, due_date, priority, category, completed)
		VALUES ($1, $2, $3, $4, NOW(), $5, $6, $7, FALSE)
		RETURNING %s`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Description, opt.DueDate, opt.Priority, opt.Category,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTodo retrieves a single Todo by the provided filters (AND condition).
// Returns zero-value Todo (ID == "") when not found, do NOT return error for not-found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM todos WHERE %s LIMIT 1", todoColumns, mods)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Todo{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTodos returns a filtered, sorted page of Todos and the total count.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM todos WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM todos %s", todoColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return todos, total, nil
}

// UpdateTodo updates a Todo scoped to its owner and returns the updated
// entity. Zero-value result means the row does not exist (or is not theirs).
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	query := fmt.Sprintf(`
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, priority = $4, category = $5, completed = $6
		WHERE id = $7 AND user_id = $8
		RETURNING %s`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.DueDate, opt.Priority, opt.Category, opt.Completed,
		opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return model.Todo{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTodo removes a Todo scoped to its owner.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
