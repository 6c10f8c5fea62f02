package assist

import (
	"math"
	"strconv"
	"time"
)

// NoCategory is the "none" sentinel: it labels a missing category or due date
// in the per-todo projection and is the most-completed-category fallback.
const NoCategory = "없음"

// MiscCategory is the catch-all bucket uncategorized todos fall into in the
// category distribution histogram.
const MiscCategory = "기타"

// koreanWeekdays maps time.Weekday (Sunday=0) to the Korean day name.
var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// TimeSlots is the six-bucket time-of-day histogram, keyed by the due
// timestamp's local hour: [6,9) 아침, [9,12) 오전, [12,14) 점심,
// [14,18) 오후, [18,22) 저녁, everything else 밤.
type TimeSlots struct {
	Morning     int // 아침
	LateMorning int // 오전
	Noon        int // 점심
	Afternoon   int // 오후
	Evening     int // 저녁
	Night       int // 밤
}

// CategoryCount is one category histogram entry. Entries keep
// first-encountered order.
type CategoryCount struct {
	Category string
	Count    int
}

// PriorityStat holds total/completed counters for one priority level.
type PriorityStat struct {
	Total     int
	Completed int
}

// CompletionRate renders completed/total as a one-decimal percentage,
// "0" when the denominator is zero.
func (s PriorityStat) CompletionRate() string {
	return ratio(s.Completed, s.Total)
}

// DayPattern is one weekday's total/completed counters, keyed by the due
// date's weekday. Entries keep first-encountered order.
type DayPattern struct {
	Day       string // Korean single-character day name
	Total     int
	Completed int
}

// Snapshot is the point-in-time aggregate computed from a todo collection.
// It lives for one summary request: computed, rendered into a prompt, discarded.
type Snapshot struct {
	Total          int
	Completed      int
	CompletionRate string // one decimal place, "0" when Total is 0

	High   PriorityStat
	Medium PriorityStat
	Low    PriorityStat

	CategoryCounts []CategoryCount
	TimeSlots      TimeSlots

	DeadlineComplianceRate string // one decimal place, "0" when no completed todo has a due date
	PastDueCount           int    // past calendar due date and still unfinished

	DayOfWeek []DayPattern

	MostCompletedCategory string // NoCategory when nothing is completed
}

// Aggregate computes a Snapshot from todos in a small number of O(n) passes.
// now anchors "today" for past-due detection and deadline compliance; loc is
// the timezone used to read due-hour and weekday from due timestamps.
func Aggregate(todos []SummaryTodo, now time.Time) Snapshot {
	snap := Snapshot{Total: len(todos)}
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	// Completion + priority distribution.
	for _, t := range todos {
		if t.Completed {
			snap.Completed++
		}
		stat := snap.priorityStat(t.Priority)
		stat.Total++
		if t.Completed {
			stat.Completed++
		}
	}
	snap.CompletionRate = ratio(snap.Completed, snap.Total)

	// Category histogram, first-encountered order. Uncategorized todos land
	// in the 기타 bucket here, not 없음.
	catIndex := make(map[string]int)
	for _, t := range todos {
		cat := categoryOr(t, MiscCategory)
		i, ok := catIndex[cat]
		if !ok {
			i = len(snap.CategoryCounts)
			catIndex[cat] = i
			snap.CategoryCounts = append(snap.CategoryCounts, CategoryCount{Category: cat})
		}
		snap.CategoryCounts[i].Count++
	}

	// Time-of-day histogram on the due hour. Todos without a due date are
	// excluded.
	for _, t := range todos {
		due, ok := dueTime(t, loc)
		if !ok {
			continue
		}
		switch hour := due.Hour(); {
		case hour >= 6 && hour < 9:
			snap.TimeSlots.Morning++
		case hour >= 9 && hour < 12:
			snap.TimeSlots.LateMorning++
		case hour >= 12 && hour < 14:
			snap.TimeSlots.Noon++
		case hour >= 14 && hour < 18:
			snap.TimeSlots.Afternoon++
		case hour >= 18 && hour < 22:
			snap.TimeSlots.Evening++
		default:
			snap.TimeSlots.Night++
		}
	}

	// Deadline compliance: among completed todos with a due date, on-time
	// means the due date is on/after now, or within one day of now in either
	// direction. This is a loose heuristic, kept as-is for prompt
	// compatibility; it is not a strict completed-before-due check.
	completedWithDue := 0
	onTime := 0
	for _, t := range todos {
		if !t.Completed {
			continue
		}
		due, ok := dueTime(t, loc)
		if !ok {
			continue
		}
		completedWithDue++
		if !due.Before(now) || math.Abs(due.Sub(now).Hours())/24 <= 1 {
			onTime++
		}
	}
	snap.DeadlineComplianceRate = ratio(onTime, completedWithDue)

	// Past-due unfinished: calendar due day strictly before today.
	for _, t := range todos {
		if t.Completed {
			continue
		}
		due, ok := dueTime(t, loc)
		if !ok {
			continue
		}
		dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
		if dueDay.Before(today) {
			snap.PastDueCount++
		}
	}

	// Day-of-week pattern keyed by the due date's weekday. The completed
	// counter is incremented only inside the due-date-present branch.
	dayIndex := make(map[string]int)
	dayAt := func(name string) *DayPattern {
		i, ok := dayIndex[name]
		if !ok {
			i = len(snap.DayOfWeek)
			dayIndex[name] = i
			snap.DayOfWeek = append(snap.DayOfWeek, DayPattern{Day: name})
		}
		return &snap.DayOfWeek[i]
	}
	for _, t := range todos {
		due, ok := dueTime(t, loc)
		if !ok {
			continue
		}
		day := koreanWeekdays[due.Weekday()]
		if t.Completed {
			dayAt(day).Completed++
		}
		dayAt(day).Total++
	}

	// Most-completed category: highest frequency among completed todos,
	// first-encountered wins ties.
	snap.MostCompletedCategory = NoCategory
	var completedCats []CategoryCount
	completedIndex := make(map[string]int)
	for _, t := range todos {
		if !t.Completed {
			continue
		}
		cat := categoryOr(t, NoCategory)
		i, ok := completedIndex[cat]
		if !ok {
			i = len(completedCats)
			completedIndex[cat] = i
			completedCats = append(completedCats, CategoryCount{Category: cat})
		}
		completedCats[i].Count++
	}
	best := 0
	for _, cc := range completedCats {
		if cc.Count > best {
			best = cc.Count
			snap.MostCompletedCategory = cc.Category
		}
	}

	return snap
}

func (s *Snapshot) priorityStat(priority string) *PriorityStat {
	switch priority {
	case "high":
		return &s.High
	case "low":
		return &s.Low
	default:
		return &s.Medium
	}
}

func categoryOr(t SummaryTodo, fallback string) string {
	if t.Category == nil || *t.Category == "" {
		return fallback
	}
	return *t.Category
}

// dueTime parses a todo's due timestamp in loc. Accepts RFC3339 and the
// combined local form produced by the extractor.
func dueTime(t SummaryTodo, loc *time.Location) (time.Time, bool) {
	if t.DueDate == nil || *t.DueDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, *t.DueDate, loc); err == nil {
			return ts.In(loc), true
		}
	}
	return time.Time{}, false
}

// ratio renders part/total as a percentage with one decimal place,
// "0" when total is zero.
func ratio(part, total int) string {
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 1, 64)
}
