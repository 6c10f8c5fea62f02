package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"smart-todo-backend/internal/auth"
	repo "smart-todo-backend/internal/auth/repository"
	"smart-todo-backend/internal/model"
)

const minPasswordLength = 6

// SignUp registers a new account and returns a fresh session token.
func (uc *implUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.SessionOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return auth.SessionOutput{}, auth.ErrEmailRequired
	}
	if len(input.Password) < minPasswordLength {
		return auth.SessionOutput{}, auth.ErrPasswordTooShort
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if existing.ID != "" {
		return auth.SessionOutput{}, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp GenerateFromPassword: %v", err)
		return auth.SessionOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignUp CreateUser: %v", err)
		return auth.SessionOutput{}, err
	}

	return uc.newSession(ctx, user)
}

// SignIn authenticates an existing account. Unknown email and wrong password
// are indistinguishable to the caller.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.SessionOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn GetOneUser: %v", err)
		return auth.SessionOutput{}, err
	}
	if user.ID == "" {
		return auth.SessionOutput{}, auth.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return auth.SessionOutput{}, auth.ErrInvalidCredentials
	}

	return uc.newSession(ctx, user)
}

// Me resolves the caller's stored identity from the verified scope.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: user}, nil
}

func (uc *implUseCase) newSession(ctx context.Context, user model.User) (auth.SessionOutput, error) {
	token, err := uc.scopeManager.Generate(model.Scope{UserID: user.ID, Email: user.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.newSession Generate: %v", err)
		return auth.SessionOutput{}, err
	}
	return auth.SessionOutput{Token: token, User: user}, nil
}
