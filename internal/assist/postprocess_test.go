package assist_test

import (
	"strings"
	"testing"
	"time"

	"smart-todo-backend/internal/assist"
	"smart-todo-backend/internal/model"
)

// fixedNow anchors every postprocessing test to a known "today".
var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestPostprocessDraftDefaults(t *testing.T) {
	// The zero draft must still come out fully valid.
	got := assist.PostprocessDraft(assist.DraftTodo{}, fixedNow)

	if got.Title != assist.DefaultTitle {
		t.Errorf("Title = %q, want %q", got.Title, assist.DefaultTitle)
	}
	if got.Description != "" {
		t.Errorf("Description = %q, want empty", got.Description)
	}
	if got.DueTime != assist.DefaultDueTime {
		t.Errorf("DueTime = %q, want %q", got.DueTime, assist.DefaultDueTime)
	}
	if got.DueDate != "2025-03-15T09:00:00" {
		t.Errorf("DueDate = %q, want 2025-03-15T09:00:00", got.DueDate)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want medium", got.Priority)
	}
	if got.Category != "" {
		t.Errorf("Category = %q, want empty", got.Category)
	}
}

func TestPostprocessDraftTitle(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"Kept", "회의 준비", "회의 준비"},
		{"Trimmed", "  회의 준비  ", "회의 준비"},
		{"BlankBecomesDefault", "   ", assist.DefaultTitle},
		{"Exactly100Kept", strings.Repeat("가", 100), strings.Repeat("가", 100)},
		{"OverLongTruncated", strings.Repeat("가", 101), strings.Repeat("가", 97) + "..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := assist.PostprocessDraft(assist.DraftTodo{Title: tc.title}, fixedNow)
			if got.Title != tc.want {
				t.Errorf("Title = %q, want %q", got.Title, tc.want)
			}
		})
	}
}

func TestPostprocessDraftDueDate(t *testing.T) {
	cases := []struct {
		name    string
		dueDate string
		dueTime string
		want    string // combined timestamp
	}{
		{"FutureKept", "2025-03-20", "15:00", "2025-03-20T15:00:00"},
		{"TodayKept", "2025-03-15", "09:00", "2025-03-15T09:00:00"},
		{"PastClampedToToday", "2025-03-10", "09:00", "2025-03-15T09:00:00"},
		{"MalformedDefaultsToToday", "다음주", "09:00", "2025-03-15T09:00:00"},
		{"EmptyDefaultsToToday", "", "09:00", "2025-03-15T09:00:00"},
		{"MalformedTimeDefaults", "2025-03-20", "낮", "2025-03-20T09:00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := assist.PostprocessDraft(assist.DraftTodo{DueDate: tc.dueDate, DueTime: tc.dueTime}, fixedNow)
			if got.DueDate != tc.want {
				t.Errorf("DueDate = %q, want %q", got.DueDate, tc.want)
			}
		})
	}
}

func TestPostprocessDraftPriority(t *testing.T) {
	cases := []struct {
		in   string
		want model.Priority
	}{
		{"high", model.PriorityHigh},
		{"low", model.PriorityLow},
		{"medium", model.PriorityMedium},
		{"", model.PriorityMedium},
		{"urgent", model.PriorityMedium},
		{"HIGH", model.PriorityMedium},
	}

	for _, tc := range cases {
		got := assist.PostprocessDraft(assist.DraftTodo{Priority: tc.in}, fixedNow)
		if got.Priority != tc.want {
			t.Errorf("priority %q = %q, want %q", tc.in, got.Priority, tc.want)
		}
	}
}

func TestPostprocessDraftCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"업무", "업무"},
		{"개인", "개인"},
		{"건강", "건강"},
		{"학습", "학습"},
		{"쇼핑", ""},
		{"work", ""},
		{"", ""},
	}

	for _, tc := range cases {
		got := assist.PostprocessDraft(assist.DraftTodo{Category: tc.in}, fixedNow)
		if got.Category != tc.want {
			t.Errorf("category %q = %q, want %q", tc.in, got.Category, tc.want)
		}
	}
}

// Running the repaired output back through the pipeline must not change it
// further: repairs are stable.
func TestPostprocessDraftIdempotent(t *testing.T) {
	drafts := []assist.DraftTodo{
		{},
		{Title: "  회의 준비  ", DueDate: "2025-03-10", Priority: "urgent", Category: "쇼핑"},
		{Title: strings.Repeat("가", 150), DueDate: "2025-04-01", DueTime: "18:30", Priority: "high", Category: "업무"},
	}

	for _, d := range drafts {
		first := assist.PostprocessDraft(d, fixedNow)
		again := assist.PostprocessDraft(assist.DraftTodo{
			Title:       first.Title,
			Description: first.Description,
			DueDate:     strings.SplitN(first.DueDate, "T", 2)[0],
			DueTime:     first.DueTime,
			Priority:    string(first.Priority),
			Category:    first.Category,
		}, fixedNow)
		if again != first {
			t.Errorf("repair not stable:\nfirst = %+v\nagain = %+v", first, again)
		}
	}
}
