package model

import "time"

// Priority is the todo priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the three enumerated priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// NormalizePriority returns p when it is an explicit high/low override and
// medium for everything else, including garbage and "medium" itself.
func NormalizePriority(p string) Priority {
	switch Priority(p) {
	case PriorityHigh, PriorityLow:
		return Priority(p)
	}
	return PriorityMedium
}

// ValidCategories is the fixed whitelist applied to AI-extracted todos.
// Manual entry is not constrained to it.
var ValidCategories = []string{"업무", "개인", "건강", "학습"}

// IsValidCategory reports whether category is an exact whitelist member.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if category == c {
			return true
		}
	}
	return false
}

// Todo is the core domain entity: a single task owned by one user.
type Todo struct {
	ID          string
	UserID      string
	Title       string // never empty in a finalized record, ≤100 chars
	Description *string
	CreatedDate time.Time // set once at creation, immutable
	DueDate     *time.Time
	Priority    Priority
	Category    *string
	Completed   bool
}
