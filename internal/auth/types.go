package auth

import "smart-todo-backend/internal/model"

type SignUpInput struct {
	Email    string
	Password string
}

type SignInInput struct {
	Email    string
	Password string
}

// SessionOutput is returned by both SignUp and SignIn: a fresh token plus
// the identity it asserts.
type SessionOutput struct {
	Token string
	User  model.User
}

type MeOutput struct {
	User model.User
}
