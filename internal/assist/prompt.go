package assist

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smart-todo-backend/pkg/gemini"
)

// TodoSchema constrains the extraction call's structured output.
var TodoSchema = &gemini.Schema{
	Type: "object",
	Properties: map[string]*gemini.Schema{
		"title":       {Type: "string", Description: "할 일의 제목"},
		"description": {Type: "string", Description: "할 일의 상세 설명"},
		"due_date":    {Type: "string", Description: "마감일 (YYYY-MM-DD 형식)"},
		"due_time":    {Type: "string", Description: "마감 시간 (HH:MM 형식, 24시간제)"},
		"priority": {
			Type:        "string",
			Enum:        []string{"high", "medium", "low"},
			Description: "우선순위 (high/medium/low)",
		},
		"category": {Type: "string", Description: "카테고리 (업무/개인/건강/학습 중 하나)"},
	},
	Required: []string{"title", "due_date", "priority"},
}

// SummarySchema constrains the summary call's structured output.
var SummarySchema = &gemini.Schema{
	Type: "object",
	Properties: map[string]*gemini.Schema{
		"summary":     {Type: "string", Description: "할 일 요약 (완료율 포함)"},
		"urgentTasks": {Type: "array", Items: &gemini.Schema{Type: "string"}, Description: "긴급한 할 일 목록 (제목만)"},
		"insights":    {Type: "array", Items: &gemini.Schema{Type: "string"}, Description: "인사이트 (분석 결과)"},
		"recommendations": {
			Type: "array", Items: &gemini.Schema{Type: "string"}, Description: "추천 사항",
		},
	},
	Required: []string{"summary", "urgentTasks", "insights", "recommendations"},
}

// BuildExtractionPrompt renders the extraction instruction block for one
// normalized input. Relative date words are ambiguous without an anchor, so
// today/tomorrow/day-after dates and today's weekday are precomputed and
// embedded as literals, never left to model inference.
func BuildExtractionPrompt(text string, now time.Time) string {
	todayStr := now.Format(dateLayout)
	dayOfWeek := koreanWeekdays[now.Weekday()]
	tomorrowStr := now.AddDate(0, 0, 1).Format(dateLayout)
	dayAfterTomorrowStr := now.AddDate(0, 0, 2).Format(dateLayout)

	return fmt.Sprintf(`다음 자연어 입력을 할 일 데이터로 변환해주세요. 오늘은 %[1]s (%[2]s요일)입니다.

입력: "%[5]s"

다음 규칙을 **반드시** 따르세요:

## 1. 날짜 처리 규칙 (due_date: YYYY-MM-DD 형식)
- "오늘" → %[1]s (현재 날짜)
- "내일" → %[3]s (현재 날짜 + 1일)
- "모레" → %[4]s (현재 날짜 + 2일)
- "이번 주 [요일]" → 가장 가까운 해당 요일 (이번 주 내)
- "다음 주 [요일]" → 다음 주의 해당 요일
- 구체적인 날짜가 명시되지 않았으면 오늘(%[1]s)로 설정

## 2. 시간 처리 규칙 (due_time: HH:MM 형식, 24시간제)
- "아침" → 09:00
- "점심" → 12:00
- "오후" → 14:00
- "저녁" → 18:00
- "밤" → 21:00
- 구체적인 시간이 명시되지 않았거나 불명확하면 기본값 "09:00" 사용
- "오전 N시" → 0N:00 형식 (예: 오전 10시 = 10:00)
- "오후 N시" → (N+12):00 형식 (예: 오후 3시 = 15:00)
- "PM N시" → (N+12):00 형식

## 3. 우선순위 판단 규칙 (priority)
- **high**: "급하게", "중요한", "빨리", "꼭", "반드시" 등의 키워드가 포함된 경우
- **medium**: "보통", "적당히" 또는 우선순위 관련 키워드가 없는 경우 (기본값)
- **low**: "여유롭게", "천천히", "언젠가" 등의 키워드가 포함된 경우

## 4. 카테고리 분류 규칙 (category, 선택사항)
- **업무**: "회의", "보고서", "프로젝트", "업무" 등의 키워드
- **개인**: "쇼핑", "친구", "가족", "개인" 등의 키워드
- **건강**: "운동", "병원", "건강", "요가" 등의 키워드
- **학습**: "공부", "책", "강의", "학습" 등의 키워드
- 카테고리가 불명확하면 생략 (빈 문자열 또는 null)

## 5. 출력 형식
- **반드시 JSON 형식**으로 응답
- title: 할 일의 핵심 제목만 추출 (간결하게, 최대 100자)
- description: 입력 내용을 바탕으로 상세 설명 생성 (선택사항, 없으면 생략)
- due_date: YYYY-MM-DD 형식 (예: "2025-12-23")
- due_time: HH:MM 형식 (예: "15:00")
- priority: "high", "medium", "low" 중 하나
- category: "업무", "개인", "건강", "학습" 중 하나 또는 빈 문자열

위 규칙을 정확히 따라 JSON 형식으로 응답해주세요.`,
		todayStr, dayOfWeek, tomorrowStr, dayAfterTomorrowStr, text)
}

// promptTodo is the redacted per-todo projection serialized into the summary
// prompt. Korean keys match what the instruction block refers to.
type promptTodo struct {
	Title     string `json:"제목"`
	Completed string `json:"완료여부"`
	Priority  string `json:"우선순위"`
	Category  string `json:"카테고리"`
	DueDate   string `json:"마감일"`
	Created   string `json:"생성일"`
}

func priorityLabel(priority string) string {
	switch priority {
	case "high":
		return "높음"
	case "medium":
		return "중간"
	default:
		return "낮음"
	}
}

func newPromptTodo(t SummaryTodo) promptTodo {
	completed := "미완료"
	if t.Completed {
		completed = "완료"
	}
	category := NoCategory
	if t.Category != nil && *t.Category != "" {
		category = *t.Category
	}
	dueDate := NoCategory
	if t.DueDate != nil && *t.DueDate != "" {
		dueDate = *t.DueDate
	}
	return promptTodo{
		Title:     t.Title,
		Completed: completed,
		Priority:  priorityLabel(t.Priority),
		Category:  category,
		DueDate:   dueDate,
		Created:   t.CreatedDate,
	}
}

// BuildSummaryPrompt renders the todo list plus the aggregated snapshot into
// the long-form analysis instruction block. Wording differs between the
// today and week periods.
func BuildSummaryPrompt(todos []SummaryTodo, snap Snapshot, period Period, now time.Time) string {
	periodText := "오늘"
	if period == PeriodWeek {
		periodText = "이번 주"
	}

	projected := make([]promptTodo, len(todos))
	for i, t := range todos {
		projected[i] = newPromptTodo(t)
	}
	todosJSON, _ := json.MarshalIndent(projected, "", "  ")

	var catParts []string
	for _, cc := range snap.CategoryCounts {
		catParts = append(catParts, fmt.Sprintf("%s %d개", cc.Category, cc.Count))
	}

	timeSlotsLine := renderTimeSlots(snap.TimeSlots)

	dayPatternLine := ""
	if len(snap.DayOfWeek) > 0 {
		var dayParts []string
		for _, d := range snap.DayOfWeek {
			dayParts = append(dayParts, fmt.Sprintf("%s요일 %d/%d개", d.Day, d.Completed, d.Total))
		}
		dayPatternLine = fmt.Sprintf("\n- 요일별 완료 패턴: %s", strings.Join(dayParts, ", "))
	}

	periodSection := `- **오늘의 요약**에 집중: 오늘의 할 일 집중도와 남은 시간을 고려한 우선순위 제시
- 오늘 하루 남은 시간을 효율적으로 활용할 수 있는 구체적인 제안`
	if period == PeriodWeek {
		periodSection = `- **이번 주 요약**에 집중: 주간 패턴과 트렌드 분석
- 다음 주 계획 수립을 위한 구체적인 제안과 목표 설정`
	}

	return fmt.Sprintf(`%[1]s 할 일 목록을 심층 분석하여 상세한 요약, 인사이트, 그리고 실행 가능한 추천을 제공해주세요. 오늘 날짜는 %[2]s입니다.

## 할 일 데이터:
%[3]s

## 통계 데이터:
- 전체 할 일: %[4]d개
- 완료: %[5]d개 (완료율 %[6]s%%)
- 미완료: %[7]d개
- 우선순위 분포: 높음 %[8]d개, 중간 %[9]d개, 낮음 %[10]d개
- 우선순위별 완료율:
  * 높음: %[11]d/%[8]d개 완료 (%[12]s%%)
  * 중간: %[13]d/%[9]d개 완료 (%[14]s%%)
  * 낮음: %[15]d/%[10]d개 완료 (%[16]s%%)
- 카테고리 분포: %[17]s
- 시간대별 분포: %[18]s
- 마감일 준수율: %[19]s%% (완료된 할 일 중 마감일에 맞춘 비율)
- 연기된 할 일: %[20]d개 (과거 마감일이지만 아직 미완료)
- 가장 많이 완료한 카테고리: %[21]s%[22]s

## 분석 요청사항:

### 1. 완료율 분석
- %[1]s 전체 완료율과 우선순위별 완료 패턴을 분석해주세요
- 높은 우선순위 작업의 완료율이 낮다면 그 원인을 추론해주세요
- 완료율이 높은 우선순위나 카테고리에서 발견되는 패턴을 설명해주세요

### 2. 시간 관리 분석
- 마감일 준수율(%[19]s%%)을 기반으로 시간 관리 능력을 평가해주세요
- 연기된 할 일(%[20]d개)의 특징과 공통점을 분석해주세요 (카테고리, 우선순위 등)
- 시간대별 업무 집중도 분포를 분석하고, 업무가 집중된 시간대와 그 영향에 대해 설명해주세요

### 3. 생산성 패턴
- 요일별 완료 패턴을 분석하여 가장 생산적인 요일을 도출해주세요
- 시간대별 분포를 보고 가장 활발한 작업 시간대를 분석해주세요
- 완료하기 쉬운 작업의 공통 특징을 분석해주세요 (카테고리: %[21]s 등)
- 자주 미루거나 완료되지 않는 작업의 유형과 특징을 분석해주세요

### 4. 실행 가능한 추천
- 구체적이고 실천 가능한 시간 관리 팁 2-3가지를 제시해주세요
- 우선순위 조정이 필요한 항목이나 일정 재배치 제안을 구체적으로 해주세요
- 업무 과부하를 줄이기 위한 작업 분산 전략을 제시해주세요

### 5. 긍정적 피드백
- 사용자가 잘하고 있는 부분을 구체적으로 강조하고 칭찬해주세요 (예: "높은 우선순위 작업을 잘 처리하고 있습니다", "마감일 준수율이 우수합니다" 등)
- 개선점을 지적할 때는 격려하고 동기부여하는 톤으로 작성해주세요
- 마지막에 "화이팅!" 또는 "좋은 일주일 되세요" 같은 긍정적인 메시지를 포함해주세요

### 6. 기간별 차별화
%[23]s

## 출력 형식:
1. **summary**: %[1]s 할 일 요약 (완료율, 주요 성과 포함, 예: "총 8개의 할 일 중 5개 완료(62.5%%), 높은 우선순위 작업을 우수하게 처리했습니다")
2. **urgentTasks**: 긴급한 미완료 할 일 제목 목록 (최대 5개, 과거 마감일 포함)
3. **insights**:
   - 완료율 심층 분석 (우선순위별, 카테고리별 패턴)
   - 시간 관리 능력 평가 (마감일 준수율, 연기 패턴 분석)
   - 생산성 패턴 발견 (생산적인 요일/시간대, 완료하기 쉬운/어려운 작업 유형)
   - 각 인사이트는 2-3문장으로 구체적이고 이해하기 쉽게 작성
4. **recommendations**:
   - 구체적이고 실행 가능한 시간 관리 팁
   - 우선순위 조정 및 일정 재배치 제안
   - 업무 분산 전략
   - 각 추천은 한 문장으로 명확하게 작성 (최대 3개)

친근하고 격려하는 톤으로, 사용자의 노력을 인정하면서도 구체적인 개선 방향을 제시해주세요. 자연스럽고 이해하기 쉬운 한국어 문장으로 작성해주세요.`,
		periodText,                   // 1
		now.Format(dateLayout),       // 2
		string(todosJSON),            // 3
		snap.Total,                   // 4
		snap.Completed,               // 5
		snap.CompletionRate,          // 6
		snap.Total-snap.Completed,    // 7
		snap.High.Total,              // 8
		snap.Medium.Total,            // 9
		snap.Low.Total,               // 10
		snap.High.Completed,          // 11
		snap.High.CompletionRate(),   // 12
		snap.Medium.Completed,        // 13
		snap.Medium.CompletionRate(), // 14
		snap.Low.Completed,           // 15
		snap.Low.CompletionRate(),    // 16
		strings.Join(catParts, ", "), // 17
		timeSlotsLine,                // 18
		snap.DeadlineComplianceRate,  // 19
		snap.PastDueCount,            // 20
		snap.MostCompletedCategory,   // 21
		dayPatternLine,               // 22
		periodSection,                // 23
	)
}

// renderTimeSlots lists non-empty buckets in fixed display order, or "없음"
// when every bucket is empty.
func renderTimeSlots(ts TimeSlots) string {
	slots := []struct {
		name  string
		count int
	}{
		{"아침", ts.Morning},
		{"오전", ts.LateMorning},
		{"점심", ts.Noon},
		{"오후", ts.Afternoon},
		{"저녁", ts.Evening},
		{"밤", ts.Night},
	}
	var parts []string
	for _, s := range slots {
		if s.count > 0 {
			parts = append(parts, fmt.Sprintf("%s %d개", s.name, s.count))
		}
	}
	if len(parts) == 0 {
		return NoCategory
	}
	return strings.Join(parts, ", ")
}
