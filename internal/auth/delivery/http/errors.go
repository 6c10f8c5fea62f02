package http

import (
	"smart-todo-backend/internal/auth"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailRequired:
		return pkgErrors.NewHTTPError(400, "email is required")
	case auth.ErrPasswordTooShort:
		return pkgErrors.NewHTTPError(400, "password must be at least 6 characters")
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
