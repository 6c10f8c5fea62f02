package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/assist"
)

type extractReq struct {
	Text string `json:"text"`
}

func (r extractReq) toInput() assist.ExtractInput {
	return assist.ExtractInput{Text: r.Text}
}

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	ctx := c.Request.Context()

	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "assist.delivery.http.processExtractReq.ShouldBindJSON: %v", err)
		return extractReq{}, assist.ErrTextRequired
	}

	return req, nil
}

type summarizeReq struct {
	Todos  []assist.SummaryTodo `json:"todos"`
	Period string               `json:"period"`
}

func (r summarizeReq) toInput() assist.SummarizeInput {
	return assist.SummarizeInput{
		Todos:  r.Todos,
		Period: assist.Period(r.Period),
	}
}

func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	ctx := c.Request.Context()

	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "assist.delivery.http.processSummarizeReq.ShouldBindJSON: %v", err)
		return summarizeReq{}, assist.ErrTodosRequired
	}

	return req, nil
}
