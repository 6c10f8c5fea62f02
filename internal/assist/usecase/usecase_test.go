package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"smart-todo-backend/internal/assist"
	"smart-todo-backend/internal/assist/usecase"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/gemini"
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

// mockGenerator replays a canned JSON payload or error and records the
// prompt it was called with.
type mockGenerator struct {
	payload string
	err     error

	calls      int
	lastPrompt string
}

func (m *mockGenerator) GenerateObject(ctx context.Context, prompt string, schema *gemini.Schema, out any) error {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return m.err
	}
	return json.Unmarshal([]byte(m.payload), out)
}

func newUseCase(gen *mockGenerator, hasAPIKey bool) assist.UseCase {
	return usecase.New(&mockLogger{}, gen, hasAPIKey, "Asia/Seoul")
}

func TestExtract(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gen := &mockGenerator{payload: `{
			"title": "회의 준비",
			"description": "내일 오후 3시 회의 자료 준비",
			"due_date": "2099-12-31",
			"due_time": "15:00",
			"priority": "high",
			"category": "업무"
		}`}
		uc := newUseCase(gen, true)

		out, err := uc.Extract(context.Background(), assist.ExtractInput{Text: "내일 오후 3시까지 중요한 회의 준비"})
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if out.Todo.Title != "회의 준비" {
			t.Errorf("Title = %q", out.Todo.Title)
		}
		if out.Todo.DueDate != "2099-12-31T15:00:00" {
			t.Errorf("DueDate = %q", out.Todo.DueDate)
		}
		if out.Todo.Priority != model.PriorityHigh {
			t.Errorf("Priority = %q", out.Todo.Priority)
		}
		if out.Todo.Category != "업무" {
			t.Errorf("Category = %q", out.Todo.Category)
		}
		if gen.calls != 1 {
			t.Errorf("generation calls = %d, want 1", gen.calls)
		}
	})

	t.Run("ValidationBeforeCall", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newUseCase(gen, true)

		if _, err := uc.Extract(context.Background(), assist.ExtractInput{Text: ""}); !errors.Is(err, assist.ErrTextRequired) {
			t.Errorf("err = %v, want ErrTextRequired", err)
		}
		if _, err := uc.Extract(context.Background(), assist.ExtractInput{Text: "a"}); !errors.Is(err, assist.ErrTextTooShort) {
			t.Errorf("err = %v, want ErrTextTooShort", err)
		}
		if gen.calls != 0 {
			t.Errorf("generation calls = %d, want 0", gen.calls)
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newUseCase(gen, false)

		_, err := uc.Extract(context.Background(), assist.ExtractInput{Text: "회의 준비"})
		if !errors.Is(err, assist.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
		if gen.calls != 0 {
			t.Errorf("generation calls = %d, want 0", gen.calls)
		}
	})

	t.Run("QuotaError", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("gemini API error 429: RESOURCE_EXHAUSTED")}
		uc := newUseCase(gen, true)

		_, err := uc.Extract(context.Background(), assist.ExtractInput{Text: "회의 준비"})
		if !errors.Is(err, assist.ErrQuotaExceeded) {
			t.Errorf("err = %v, want ErrQuotaExceeded", err)
		}
		if gen.calls != 1 {
			t.Errorf("generation calls = %d, want 1 (no retries)", gen.calls)
		}
	})

	t.Run("GenerationFailure", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("gemini API error 503: overloaded")}
		uc := newUseCase(gen, true)

		_, err := uc.Extract(context.Background(), assist.ExtractInput{Text: "회의 준비"})
		if !errors.Is(err, assist.ErrGenerationFailed) {
			t.Errorf("err = %v, want ErrGenerationFailed", err)
		}
	})

	t.Run("MalformedDraftRepaired", func(t *testing.T) {
		gen := &mockGenerator{payload: `{"title": "", "due_date": "2001-01-01", "priority": "urgent", "category": "쇼핑"}`}
		uc := newUseCase(gen, true)

		out, err := uc.Extract(context.Background(), assist.ExtractInput{Text: "뭐든지"})
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if out.Todo.Title != assist.DefaultTitle {
			t.Errorf("Title = %q, want default", out.Todo.Title)
		}
		if out.Todo.Priority != model.PriorityMedium {
			t.Errorf("Priority = %q, want medium", out.Todo.Priority)
		}
		if out.Todo.Category != "" {
			t.Errorf("Category = %q, want empty", out.Todo.Category)
		}
	})
}

func TestSummarize(t *testing.T) {
	resultJSON := `{
		"summary": "총 2개의 할 일 중 1개 완료(50.0%)",
		"urgentTasks": ["보고서 작성"],
		"insights": ["업무 카테고리 집중도가 높습니다."],
		"recommendations": ["마감일이 가까운 작업부터 처리하세요."]
	}`

	cat := "업무"
	due := "2025-03-15T15:00:00"
	todos := []assist.SummaryTodo{
		{ID: "1", Title: "보고서 작성", CreatedDate: "2025-03-14T09:00:00", DueDate: &due, Priority: "high", Category: &cat, Completed: true},
		{ID: "2", Title: "장보기", CreatedDate: "2025-03-14T09:00:00", Priority: "medium"},
	}

	t.Run("Success", func(t *testing.T) {
		gen := &mockGenerator{payload: resultJSON}
		uc := newUseCase(gen, true)

		out, err := uc.Summarize(context.Background(), assist.SummarizeInput{Todos: todos, Period: assist.PeriodToday})
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if out.Result.Summary == "" {
			t.Error("empty summary")
		}
		if len(out.Result.UrgentTasks) != 1 || out.Result.UrgentTasks[0] != "보고서 작성" {
			t.Errorf("UrgentTasks = %v", out.Result.UrgentTasks)
		}
	})

	t.Run("EmptyCollectionAllowed", func(t *testing.T) {
		gen := &mockGenerator{payload: `{"summary": "할 일이 없습니다.", "urgentTasks": [], "insights": [], "recommendations": []}`}
		uc := newUseCase(gen, true)

		out, err := uc.Summarize(context.Background(), assist.SummarizeInput{Todos: []assist.SummaryTodo{}, Period: assist.PeriodWeek})
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if out.Result.UrgentTasks == nil {
			t.Error("UrgentTasks is nil, want empty slice")
		}
	})

	t.Run("NilTodos", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newUseCase(gen, true)

		_, err := uc.Summarize(context.Background(), assist.SummarizeInput{Period: assist.PeriodToday})
		if !errors.Is(err, assist.ErrTodosRequired) {
			t.Errorf("err = %v, want ErrTodosRequired", err)
		}
		if gen.calls != 0 {
			t.Errorf("generation calls = %d, want 0", gen.calls)
		}
	})

	t.Run("InvalidPeriod", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newUseCase(gen, true)

		for _, period := range []string{"", "month", "TODAY"} {
			_, err := uc.Summarize(context.Background(), assist.SummarizeInput{Todos: todos, Period: assist.Period(period)})
			if !errors.Is(err, assist.ErrInvalidPeriod) {
				t.Errorf("period %q: err = %v, want ErrInvalidPeriod", period, err)
			}
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		gen := &mockGenerator{}
		uc := newUseCase(gen, false)

		_, err := uc.Summarize(context.Background(), assist.SummarizeInput{Todos: todos, Period: assist.PeriodToday})
		if !errors.Is(err, assist.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("QuotaError", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("generation quota exceeded for model")}
		uc := newUseCase(gen, true)

		_, err := uc.Summarize(context.Background(), assist.SummarizeInput{Todos: todos, Period: assist.PeriodToday})
		if !errors.Is(err, assist.ErrQuotaExceeded) {
			t.Errorf("err = %v, want ErrQuotaExceeded", err)
		}
	})

	t.Run("ListsClamped", func(t *testing.T) {
		gen := &mockGenerator{payload: `{
			"summary": "s",
			"urgentTasks": ["1","2","3","4","5","6","7"],
			"insights": ["i"],
			"recommendations": ["1","2","3","4","5"]
		}`}
		uc := newUseCase(gen, true)

		out, err := uc.Summarize(context.Background(), assist.SummarizeInput{Todos: todos, Period: assist.PeriodToday})
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if len(out.Result.UrgentTasks) != 5 {
			t.Errorf("UrgentTasks length = %d, want 5", len(out.Result.UrgentTasks))
		}
		if len(out.Result.Recommendations) != 3 {
			t.Errorf("Recommendations length = %d, want 3", len(out.Result.Recommendations))
		}
	})
}
