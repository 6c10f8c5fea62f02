package assist

import "errors"

// Domain-specific errors for the assist package.
var (
	// Input validation, detected locally before any generation call.
	ErrTextRequired  = errors.New("input text is required")
	ErrTextTooShort  = errors.New("input text is shorter than 2 characters")
	ErrTextTooLong   = errors.New("input text is longer than 500 characters")
	ErrTodosRequired = errors.New("todo list is required")
	ErrInvalidPeriod = errors.New("analysis period must be today or week")

	// Configuration, checked before any external call.
	ErrMissingAPIKey = errors.New("gemini api key is not configured")

	// External call failures.
	ErrQuotaExceeded    = errors.New("generation quota exceeded")
	ErrGenerationFailed = errors.New("generation call failed")
)
