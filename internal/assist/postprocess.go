package assist

import (
	"strings"
	"time"

	"smart-todo-backend/internal/model"
)

const (
	// DefaultTitle is the placeholder used when the draft carries no usable title.
	DefaultTitle = "할 일"
	// DefaultDueTime is used when the draft carries no due time.
	DefaultDueTime = "09:00"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	maxTitleLength   = 100
	truncatedTitleAt = 97
)

// PostprocessDraft repairs, defaults and clamps a draft into a guaranteed-valid
// record. It is total: any input, including the zero value, yields a record
// satisfying the domain invariants. now anchors "today" for date defaulting
// and clamping.
func PostprocessDraft(draft DraftTodo, now time.Time) ExtractedTodo {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayStr := today.Format(dateLayout)

	// Title: placeholder when absent, trim, truncate over-long, placeholder
	// again when the trim leaves nothing.
	title := draft.Title
	if title == "" {
		title = DefaultTitle
	}
	title = strings.TrimSpace(title)
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:truncatedTitleAt]) + "..."
	}
	if title == "" {
		title = DefaultTitle
	}

	// Description: trim, empty means unset.
	description := strings.TrimSpace(draft.Description)

	// Due date: default today; clamp past calendar dates forward to today.
	// Comparison is by calendar date only, time-of-day is ignored.
	dueDate := draft.DueDate
	parsed, err := time.ParseInLocation(dateLayout, dueDate, now.Location())
	if err != nil {
		dueDate = todayStr
	} else if parsed.Before(today) {
		dueDate = todayStr
	}

	// Due time: default 09:00; malformed values fall back to the default so
	// the combined timestamp below is always well-formed.
	dueTime := draft.DueTime
	if _, err := time.Parse(timeLayout, dueTime); err != nil {
		dueTime = DefaultDueTime
	}

	// Priority: only explicit high/low survive, everything else is medium.
	priority := model.NormalizePriority(draft.Priority)

	// Category: exact whitelist members only, otherwise unset.
	category := strings.TrimSpace(draft.Category)
	if category != "" && !model.IsValidCategory(category) {
		category = ""
	}

	return ExtractedTodo{
		Title:       title,
		Description: description,
		DueDate:     dueDate + "T" + dueTime + ":00",
		DueTime:     dueTime,
		Priority:    priority,
		Category:    category,
	}
}
