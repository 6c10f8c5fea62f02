package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/assist"
)

const (
	extractFailureMessage = "AI 처리 중 오류가 발생했습니다."
	summaryFailureMessage = "AI 분석 중 오류가 발생했습니다."
)

type errResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var errStatus = map[error]struct {
	status  int
	message string
}{
	assist.ErrTextRequired:  {http.StatusBadRequest, "입력 텍스트가 필요합니다."},
	assist.ErrTextTooShort:  {http.StatusBadRequest, "입력은 최소 2자 이상이어야 합니다."},
	assist.ErrTextTooLong:   {http.StatusBadRequest, "입력은 최대 500자까지 가능합니다."},
	assist.ErrTodosRequired: {http.StatusBadRequest, "할 일 목록이 필요합니다."},
	assist.ErrInvalidPeriod: {http.StatusBadRequest, "분석 기간(today/week)이 필요합니다."},
	assist.ErrMissingAPIKey: {http.StatusInternalServerError, "GEMINI_API_KEY가 설정되지 않았습니다."},
	assist.ErrQuotaExceeded: {http.StatusTooManyRequests, "API 호출 한도가 초과되었습니다. 잠시 후 다시 시도해주세요."},
}

// respondError translates pipeline errors to the raw wire contract. Unknown
// errors fall through to a 500 with the failure message and the cause text.
func (h *handler) respondError(c *gin.Context, err error, fallback string) {
	for target, m := range errStatus {
		if errors.Is(err, target) {
			c.JSON(m.status, errResp{Error: m.message})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, errResp{
		Error:   fallback,
		Details: err.Error(),
	})
}
