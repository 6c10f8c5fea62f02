package http

import (
	"smart-todo-backend/internal/todo"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case todo.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "todo not found")
	case todo.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "title is required")
	case todo.ErrTitleTooLong:
		return pkgErrors.NewHTTPError(400, "title is longer than 100 characters")
	case todo.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "priority must be high, medium or low")
	case todo.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "status must be completed or pending")
	case todo.ErrInvalidSort:
		return pkgErrors.NewHTTPError(400, "unsupported sort key")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
