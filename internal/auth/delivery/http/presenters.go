package http

import (
	"time"

	"smart-todo-backend/internal/auth"
	"smart-todo-backend/internal/model"
)

// --- Request DTOs ---

type signUpReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r signUpReq) toInput() auth.SignUpInput {
	return auth.SignUpInput{Email: r.Email, Password: r.Password}
}

type signInReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type sessionResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newSessionResp(out auth.SessionOutput) sessionResp {
	return sessionResp{Token: out.Token, User: newUserResp(out.User)}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out auth.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
