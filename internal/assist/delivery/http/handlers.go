package http

import (
	"github.com/gin-gonic/gin"
)

// Extract godoc
// @Summary     Extract a todo from natural language
// @Description Parses Korean free text into a structured, validated todo draft.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Free text input"
// @Success     200 {object} extractResp
// @Failure     400 {object} errResp "Invalid input"
// @Failure     429 {object} errResp "Generation quota exceeded"
// @Failure     500 {object} errResp "Missing credential or generation failure"
// @Router      /api/v1/ai/todos [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		h.respondError(c, err, extractFailureMessage)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.respondError(c, err, extractFailureMessage)
		return
	}

	c.JSON(200, newExtractResp(output))
}

// Summarize godoc
// @Summary     Summarize a todo collection
// @Description Aggregates statistics over the supplied todos and generates narrative insights.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body summarizeReq true "Todos and analysis period"
// @Success     200 {object} summarizeResp
// @Failure     400 {object} errResp "Missing todos or period"
// @Failure     429 {object} errResp "Generation quota exceeded"
// @Failure     500 {object} errResp "Missing credential or generation failure"
// @Router      /api/v1/ai/summary [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		h.respondError(c, err, summaryFailureMessage)
		return
	}

	output, err := h.uc.Summarize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		h.respondError(c, err, summaryFailureMessage)
		return
	}

	c.JSON(200, newSummarizeResp(output))
}
