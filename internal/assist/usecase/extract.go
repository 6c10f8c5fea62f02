package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-todo-backend/internal/assist"
	"smart-todo-backend/pkg/gemini"
)

// Extract runs the extraction pipeline: validate → preprocess → prompt →
// generation call → postprocess. The generation call is made at most once;
// failures propagate without retries.
func (uc *implUseCase) Extract(ctx context.Context, input assist.ExtractInput) (assist.ExtractOutput, error) {
	if err := assist.ValidateInput(input.Text); err != nil {
		return assist.ExtractOutput{}, err
	}

	if !uc.hasAPIKey {
		return assist.ExtractOutput{}, assist.ErrMissingAPIKey
	}

	text := assist.PreprocessInput(input.Text)
	now := time.Now().In(uc.loc)
	prompt := assist.BuildExtractionPrompt(text, now)

	uc.l.Infof(ctx, "Extract: input_length=%d", len(text))

	var draft assist.DraftTodo
	if err := uc.llm.GenerateObject(ctx, prompt, assist.TodoSchema, &draft); err != nil {
		uc.l.Errorf(ctx, "Extract: generation call failed: %v", err)
		if gemini.IsQuotaError(err) {
			return assist.ExtractOutput{}, fmt.Errorf("%w: %s", assist.ErrQuotaExceeded, err)
		}
		return assist.ExtractOutput{}, fmt.Errorf("%w: %s", assist.ErrGenerationFailed, err)
	}

	// Postprocessing is total: whatever shape the draft arrived in, the
	// result satisfies the domain invariants.
	todo := assist.PostprocessDraft(draft, now)

	uc.l.Infof(ctx, "Extract: parsed todo %q due=%s priority=%s", todo.Title, todo.DueDate, todo.Priority)

	return assist.ExtractOutput{Todo: todo}, nil
}
