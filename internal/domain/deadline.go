package domain

import (
	"fmt"
	"time"
)

// Date builds a calendar date (midnight UTC). Deadlines and "today" values
// carry no time-of-day component.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// toDate strips any time-of-day component from t.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysLeft returns deadline minus today in whole days. The second return
// is false when there is no deadline. Negative means overdue.
func DaysLeft(deadline *time.Time, today time.Time) (int, bool) {
	if deadline == nil {
		return 0, false
	}
	diff := toDate(*deadline).Sub(toDate(today))
	return int(diff / (24 * time.Hour)), true
}

// IsOverdue reports whether the deadline has passed as of today.
func IsOverdue(deadline *time.Time, today time.Time) bool {
	days, ok := DaysLeft(deadline, today)
	return ok && days < 0
}

// DisplayDeadline formats a deadline for the detail view.
func DisplayDeadline(deadline *time.Time, today time.Time) string {
	days, ok := DaysLeft(deadline, today)
	if !ok {
		return "no deadline"
	}
	switch {
	case days < 0:
		return fmt.Sprintf("overdue by %dd", -days)
	case days == 0:
		return "due today"
	case days <= 3:
		return fmt.Sprintf("urgent (%dd left)", days)
	case days <= 7:
		return fmt.Sprintf("soon (%dd left)", days)
	default:
		return fmt.Sprintf("%dd left", days)
	}
}

// ShortDeadline formats a deadline for the compact matrix rows.
func ShortDeadline(deadline *time.Time, today time.Time) string {
	days, ok := DaysLeft(deadline, today)
	if !ok {
		return "no ddl"
	}
	switch {
	case days < 0:
		return fmt.Sprintf("%dd ago", -days)
	case days == 0:
		return "today"
	default:
		return fmt.Sprintf("%dd", days)
	}
}

// DeadlineTierFor buckets a deadline for coloring. Overdue and anything
// within 3 days is critical, 4-7 days is soon, beyond that safe.
func DeadlineTierFor(deadline *time.Time, today time.Time) DeadlineTier {
	days, ok := DaysLeft(deadline, today)
	if !ok {
		return TierNone
	}
	switch {
	case days <= 3:
		return TierCritical
	case days <= 7:
		return TierSoon
	default:
		return TierSafe
	}
}
