package assist

import (
	"context"

	"smart-todo-backend/pkg/gemini"
)

// UseCase defines the business logic interface for the assist domain:
// the two stateless AI pipelines.
type UseCase interface {
	// Extract turns free-form natural language into a guaranteed-valid todo draft.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// Summarize analyzes a todo collection into narrative insights.
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)
}

// Generator is the structured-output generation dependency. It is fallible,
// latency-variable, and schema-constrained but not schema-guaranteed.
// *gemini.Client satisfies it.
type Generator interface {
	GenerateObject(ctx context.Context, prompt string, schema *gemini.Schema, out any) error
}
