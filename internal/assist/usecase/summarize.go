package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-todo-backend/internal/assist"
	"smart-todo-backend/pkg/gemini"
)

const (
	maxUrgentTasks     = 5
	maxRecommendations = 3
)

// Summarize runs the summary pipeline: validate → aggregate → prompt →
// generation call. The snapshot lives only long enough to build one prompt.
func (uc *implUseCase) Summarize(ctx context.Context, input assist.SummarizeInput) (assist.SummarizeOutput, error) {
	if input.Todos == nil {
		return assist.SummarizeOutput{}, assist.ErrTodosRequired
	}
	if !input.Period.IsValid() {
		return assist.SummarizeOutput{}, assist.ErrInvalidPeriod
	}

	if !uc.hasAPIKey {
		return assist.SummarizeOutput{}, assist.ErrMissingAPIKey
	}

	now := time.Now().In(uc.loc)
	snap := assist.Aggregate(input.Todos, now)
	prompt := assist.BuildSummaryPrompt(input.Todos, snap, input.Period, now)

	uc.l.Infof(ctx, "Summarize: period=%s todos=%d completion_rate=%s",
		input.Period, snap.Total, snap.CompletionRate)

	var result assist.SummaryResult
	if err := uc.llm.GenerateObject(ctx, prompt, assist.SummarySchema, &result); err != nil {
		uc.l.Errorf(ctx, "Summarize: generation call failed: %v", err)
		if gemini.IsQuotaError(err) {
			return assist.SummarizeOutput{}, fmt.Errorf("%w: %s", assist.ErrQuotaExceeded, err)
		}
		return assist.SummarizeOutput{}, fmt.Errorf("%w: %s", assist.ErrGenerationFailed, err)
	}

	// The schema constrains but does not guarantee the shape: clamp list
	// lengths and never return nil slices.
	if result.UrgentTasks == nil {
		result.UrgentTasks = []string{}
	}
	if len(result.UrgentTasks) > maxUrgentTasks {
		result.UrgentTasks = result.UrgentTasks[:maxUrgentTasks]
	}
	if result.Insights == nil {
		result.Insights = []string{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	if len(result.Recommendations) > maxRecommendations {
		result.Recommendations = result.Recommendations[:maxRecommendations]
	}

	return assist.SummarizeOutput{Result: result}, nil
}
