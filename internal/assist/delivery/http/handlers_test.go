package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/assist"
	assistHTTP "smart-todo-backend/internal/assist/delivery/http"
	"smart-todo-backend/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	extractOut   assist.ExtractOutput
	extractErr   error
	summarizeOut assist.SummarizeOutput
	summarizeErr error
}

func (m *mockUseCase) Extract(ctx context.Context, input assist.ExtractInput) (assist.ExtractOutput, error) {
	if m.extractErr != nil {
		return assist.ExtractOutput{}, m.extractErr
	}
	if err := assist.ValidateInput(input.Text); err != nil {
		return assist.ExtractOutput{}, err
	}
	return m.extractOut, nil
}

func (m *mockUseCase) Summarize(ctx context.Context, input assist.SummarizeInput) (assist.SummarizeOutput, error) {
	if m.summarizeErr != nil {
		return assist.SummarizeOutput{}, m.summarizeErr
	}
	if input.Todos == nil {
		return assist.SummarizeOutput{}, assist.ErrTodosRequired
	}
	if !input.Period.IsValid() {
		return assist.SummarizeOutput{}, assist.ErrInvalidPeriod
	}
	return m.summarizeOut, nil
}

func newTestRouter(uc assist.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := assistHTTP.New(&mockLogger{}, uc)
	r.POST("/api/v1/ai/todos", h.Extract)
	r.POST("/api/v1/ai/summary", h.Summarize)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{extractOut: assist.ExtractOutput{Todo: assist.ExtractedTodo{
			Title:       "회의 준비",
			Description: "오후 3시 회의 자료 준비",
			DueDate:     "2025-03-16T15:00:00",
			DueTime:     "15:00",
			Priority:    model.PriorityHigh,
			Category:    "업무",
		}}}
		w := doJSON(t, newTestRouter(uc), "/api/v1/ai/todos", `{"text": "내일 오후 3시까지 중요한 회의 준비"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got["title"] != "회의 준비" || got["due_date"] != "2025-03-16T15:00:00" ||
			got["due_time"] != "15:00" || got["priority"] != "high" || got["category"] != "업무" {
			t.Errorf("body = %v", got)
		}
	})

	t.Run("OmitsEmptyOptionalFields", func(t *testing.T) {
		uc := &mockUseCase{extractOut: assist.ExtractOutput{Todo: assist.ExtractedTodo{
			Title:    assist.DefaultTitle,
			DueDate:  "2025-03-15T09:00:00",
			DueTime:  "09:00",
			Priority: model.PriorityMedium,
		}}}
		w := doJSON(t, newTestRouter(uc), "/api/v1/ai/todos", `{"text": "장보기"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := w.Body.String()
		if strings.Contains(body, "description") || strings.Contains(body, "category") {
			t.Errorf("empty optional fields serialized: %s", body)
		}
	})

	t.Run("BadInput", func(t *testing.T) {
		cases := []struct {
			name string
			body string
			want string
		}{
			{"MalformedJSON", `{`, "입력 텍스트가 필요합니다."},
			{"MissingText", `{}`, "입력 텍스트가 필요합니다."},
			{"TooShort", `{"text": "a"}`, "입력은 최소 2자 이상이어야 합니다."},
			{"TooLong", fmt.Sprintf(`{"text": %q}`, strings.Repeat("가", 501)), "입력은 최대 500자까지 가능합니다."},
		}
		r := newTestRouter(&mockUseCase{})
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := doJSON(t, r, "/api/v1/ai/todos", tc.body)
				if w.Code != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", w.Code)
				}
				var got map[string]string
				json.Unmarshal(w.Body.Bytes(), &got)
				if got["error"] != tc.want {
					t.Errorf("error = %q, want %q", got["error"], tc.want)
				}
			})
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{extractErr: assist.ErrMissingAPIKey})
		w := doJSON(t, r, "/api/v1/ai/todos", `{"text": "회의 준비"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var got map[string]string
		json.Unmarshal(w.Body.Bytes(), &got)
		if got["error"] != "GEMINI_API_KEY가 설정되지 않았습니다." {
			t.Errorf("error = %q", got["error"])
		}
	})

	t.Run("QuotaExceeded", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: gemini API error 429", assist.ErrQuotaExceeded)
		r := newTestRouter(&mockUseCase{extractErr: wrapped})
		w := doJSON(t, r, "/api/v1/ai/todos", `{"text": "회의 준비"}`)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", w.Code)
		}
		var got map[string]string
		json.Unmarshal(w.Body.Bytes(), &got)
		if got["error"] != "API 호출 한도가 초과되었습니다. 잠시 후 다시 시도해주세요." {
			t.Errorf("error = %q", got["error"])
		}
	})

	t.Run("GenericFailureCarriesDetails", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: connection reset", assist.ErrGenerationFailed)
		r := newTestRouter(&mockUseCase{extractErr: wrapped})
		w := doJSON(t, r, "/api/v1/ai/todos", `{"text": "회의 준비"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var got map[string]string
		json.Unmarshal(w.Body.Bytes(), &got)
		if got["error"] != "AI 처리 중 오류가 발생했습니다." {
			t.Errorf("error = %q", got["error"])
		}
		if !strings.Contains(got["details"], "connection reset") {
			t.Errorf("details = %q", got["details"])
		}
	})
}

func TestSummarizeEndpoint(t *testing.T) {
	okOut := assist.SummarizeOutput{Result: assist.SummaryResult{
		Summary:         "총 2개의 할 일 중 1개 완료(50.0%)",
		UrgentTasks:     []string{"보고서 작성"},
		Insights:        []string{"업무 집중도가 높습니다."},
		Recommendations: []string{"우선순위가 높은 작업부터 처리하세요."},
	}}

	t.Run("Success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{summarizeOut: okOut})
		w := doJSON(t, r, "/api/v1/ai/summary", `{
			"todos": [{"id": "1", "title": "보고서 작성", "created_date": "2025-03-14T09:00:00", "priority": "high", "completed": true}],
			"period": "today"
		}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		for _, key := range []string{"summary", "urgentTasks", "insights", "recommendations"} {
			if _, ok := got[key]; !ok {
				t.Errorf("missing %q in %v", key, got)
			}
		}
	})

	t.Run("MissingTodos", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := doJSON(t, r, "/api/v1/ai/summary", `{"period": "today"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var got map[string]string
		json.Unmarshal(w.Body.Bytes(), &got)
		if got["error"] != "할 일 목록이 필요합니다." {
			t.Errorf("error = %q", got["error"])
		}
	})

	t.Run("InvalidPeriod", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := doJSON(t, r, "/api/v1/ai/summary", `{"todos": [], "period": "month"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var got map[string]string
		json.Unmarshal(w.Body.Bytes(), &got)
		if got["error"] != "분석 기간(today/week)이 필요합니다." {
			t.Errorf("error = %q", got["error"])
		}
	})

	t.Run("GenericFailureUsesSummaryMessage", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: upstream timeout", assist.ErrGenerationFailed)
		r := newTestRouter(&mockUseCase{summarizeErr: wrapped})
		w := doJSON(t, r, "/api/v1/ai/summary", `{"todos": [], "period": "week"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var got map[string]string
		json.Unmarshal(w.Body.Bytes(), &got)
		if got["error"] != "AI 분석 중 오류가 발생했습니다." {
			t.Errorf("error = %q", got["error"])
		}
	})

	t.Run("QuotaExceeded", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{summarizeErr: assist.ErrQuotaExceeded})
		w := doJSON(t, r, "/api/v1/ai/summary", `{"todos": [], "period": "today"}`)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", w.Code)
		}
	})
}
