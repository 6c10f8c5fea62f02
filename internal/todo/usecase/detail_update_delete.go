package usecase

import (
	"context"
	"strings"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/todo"
	repo "smart-todo-backend/internal/todo/repository"
)

// Detail retrieves a single owned todo. Returns ErrNotFound when the row does
// not exist or belongs to someone else; the two cases are indistinguishable
// to the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTodo: %v", err)
		return todo.DetailOutput{}, err
	}
	if existing.ID == "" {
		return todo.DetailOutput{}, todo.ErrNotFound
	}
	return todo.DetailOutput{Todo: existing}, nil
}

// Update applies a partial update: nil input fields keep the stored value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateOutput{}, todo.ErrNotFound
	}

	opt := repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Category:    existing.Category,
		Completed:   existing.Completed,
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return todo.UpdateOutput{}, err
		}
		opt.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		opt.Description = input.Description
	}
	if input.DueDate != nil {
		opt.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return todo.UpdateOutput{}, todo.ErrInvalidPriority
		}
		opt.Priority = *input.Priority
	}
	if input.Category != nil {
		opt.Category = input.Category
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return todo.UpdateOutput{}, todo.ErrNotFound
	}
	return todo.UpdateOutput{Todo: updated}, nil
}

// Delete removes an owned todo. Returns ErrNotFound when it does not exist.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTodo: %v", err)
		return err
	}
	if existing.ID == "" {
		return todo.ErrNotFound
	}
	if err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	return nil
}

// ToggleComplete flips the completion flag of an owned todo.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (todo.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete GetOneTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateOutput{}, todo.ErrNotFound
	}

	updated, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Category:    existing.Category,
		Completed:   !existing.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return todo.UpdateOutput{}, todo.ErrNotFound
	}
	return todo.UpdateOutput{Todo: updated}, nil
}
