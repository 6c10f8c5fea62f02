package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/pkg/response"
	"smart-todo-backend/pkg/scope"
)

// SignUp godoc
// @Summary     Register a new account
// @Description Creates an account and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignUp: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SignIn godoc
// @Summary     Sign in
// @Description Authenticates an account and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SignOut godoc
// @Summary     Sign out
// @Description Tokens are stateless; the client discards its copy. Always returns OK.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current identity
// @Description Returns the account behind the presented token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMeResp(output))
}
