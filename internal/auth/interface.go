package auth

import (
	"context"

	"smart-todo-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (SessionOutput, error)
	SignIn(ctx context.Context, input SignInInput) (SessionOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
