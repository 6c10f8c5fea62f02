package http

import (
	"smart-todo-backend/internal/assist"
)

type extractResp struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Priority    string `json:"priority"`
	Category    string `json:"category,omitempty"`
}

func newExtractResp(o assist.ExtractOutput) extractResp {
	return extractResp{
		Title:       o.Todo.Title,
		Description: o.Todo.Description,
		DueDate:     o.Todo.DueDate,
		DueTime:     o.Todo.DueTime,
		Priority:    string(o.Todo.Priority),
		Category:    o.Todo.Category,
	}
}

type summarizeResp struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func newSummarizeResp(o assist.SummarizeOutput) summarizeResp {
	return summarizeResp{
		Summary:         o.Result.Summary,
		UrgentTasks:     o.Result.UrgentTasks,
		Insights:        o.Result.Insights,
		Recommendations: o.Result.Recommendations,
	}
}
