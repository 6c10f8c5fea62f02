package assist

import "smart-todo-backend/internal/model"

// --- Extraction pipeline ---

// ExtractInput is the raw free-text request for todo extraction.
type ExtractInput struct {
	Text string
}

// DraftTodo is the unvalidated object returned by the generation call.
// Every field may be missing or malformed; postprocessing repairs it.
type DraftTodo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
	DueTime     string `json:"due_time,omitempty"` // HH:MM, 24h
	Priority    string `json:"priority"`
	Category    string `json:"category,omitempty"`
}

// ExtractedTodo is the guaranteed-valid result of postprocessing a draft.
type ExtractedTodo struct {
	Title       string
	Description string // empty means unset
	DueDate     string // combined date-time, "2006-01-02T15:04:00"
	DueTime     string // HH:MM, always present after defaulting
	Priority    model.Priority
	Category    string // empty means unset; otherwise a whitelist member
}

type ExtractOutput struct {
	Todo ExtractedTodo
}

// --- Summary pipeline ---

// Period selects the analysis window wording.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// IsValid reports whether p is a supported analysis period.
func (p Period) IsValid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// SummaryTodo is the client-supplied todo projection analyzed by Summarize.
// It mirrors the persisted row shape; due/created dates arrive as strings.
type SummaryTodo struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CreatedDate string  `json:"created_date"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category,omitempty"`
	Completed   bool    `json:"completed"`
}

type SummarizeInput struct {
	Todos  []SummaryTodo
	Period Period
}

// SummaryResult is the structured artifact returned by the summary call.
type SummaryResult struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

type SummarizeOutput struct {
	Result SummaryResult
}
