package todo

import "errors"

var (
	ErrNotFound        = errors.New("todo not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is longer than 100 characters")
	ErrInvalidPriority = errors.New("priority must be high, medium or low")
	ErrInvalidStatus   = errors.New("status must be completed or pending")
	ErrInvalidSort     = errors.New("unsupported sort key")
)
