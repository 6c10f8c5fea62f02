package assist_test

import (
	"strings"
	"testing"

	"smart-todo-backend/internal/assist"
)

func TestBuildExtractionPrompt(t *testing.T) {
	// fixedNow is 2025-03-15, a Saturday.
	prompt := assist.BuildExtractionPrompt("내일 오후 3시까지 중요한 회의 준비", fixedNow)

	for _, want := range []string{
		"오늘은 2025-03-15 (토요일)입니다",
		`입력: "내일 오후 3시까지 중요한 회의 준비"`,
		`"내일" → 2025-03-16`,
		`"모레" → 2025-03-17`,
		"오늘(2025-03-15)로 설정",
		`"오후 N시" → (N+12):00`,
		"**high**",
		"**업무**",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("extraction prompt missing %q", want)
		}
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	todos := []assist.SummaryTodo{
		todo("보고서 작성", true, "high", strPtr("업무"), strPtr("2025-03-15T15:00:00")),
		todo("장보기", false, "medium", nil, nil),
	}
	snap := assist.Aggregate(todos, fixedNow)

	t.Run("Today", func(t *testing.T) {
		prompt := assist.BuildSummaryPrompt(todos, snap, assist.PeriodToday, fixedNow)
		for _, want := range []string{
			"오늘 할 일 목록을 심층 분석",
			"오늘 날짜는 2025-03-15입니다",
			`"제목": "보고서 작성"`,
			`"완료여부": "완료"`,
			`"우선순위": "높음"`,
			`"카테고리": "없음"`,
			"전체 할 일: 2개",
			"완료: 1개 (완료율 50.0%)",
			"높음: 1/1개 완료 (100.0%)",
			"카테고리 분포: 업무 1개, 기타 1개",
			"시간대별 분포: 오후 1개",
			"요일별 완료 패턴: 토요일 1/1개",
			"가장 많이 완료한 카테고리: 업무",
			"**오늘의 요약**에 집중",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("summary prompt missing %q", want)
			}
		}
		if strings.Contains(prompt, "이번 주 요약") {
			t.Error("today prompt contains the week section")
		}
	})

	t.Run("Week", func(t *testing.T) {
		prompt := assist.BuildSummaryPrompt(todos, snap, assist.PeriodWeek, fixedNow)
		for _, want := range []string{
			"이번 주 할 일 목록을 심층 분석",
			"**이번 주 요약**에 집중",
			"다음 주 계획 수립",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("summary prompt missing %q", want)
			}
		}
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		empty := assist.Aggregate(nil, fixedNow)
		prompt := assist.BuildSummaryPrompt(nil, empty, assist.PeriodToday, fixedNow)
		for _, want := range []string{
			"전체 할 일: 0개",
			"완료: 0개 (완료율 0%)",
			"시간대별 분포: 없음",
			"가장 많이 완료한 카테고리: 없음",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("empty summary prompt missing %q", want)
			}
		}
		// The analysis request section always mentions the day pattern; only
		// the statistics line must be omitted.
		if strings.Contains(prompt, "- 요일별 완료 패턴:") {
			t.Error("empty prompt contains a day pattern statistics line")
		}
	})
}
