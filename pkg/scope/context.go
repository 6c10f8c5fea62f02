package scope

import (
	"context"

	"smart-todo-backend/internal/model"
)

type ctxKey struct{}

// SetToContext attaches the verified scope to ctx.
func SetToContext(ctx context.Context, s model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the scope attached by the auth middleware.
func FromContext(ctx context.Context) (model.Scope, bool) {
	s, ok := ctx.Value(ctxKey{}).(model.Scope)
	return s, ok
}
