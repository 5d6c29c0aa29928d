package domain

import (
	"strings"
	"time"
)

// NormalizePriority lowercases a raw priority tag and maps anything
// unrecognized (including empty) to PriorityNormal.
func NormalizePriority(raw string) string {
	switch tag := strings.ToLower(strings.TrimSpace(raw)); tag {
	case PriorityHigh, PriorityUrgent, PriorityLow:
		return tag
	default:
		return PriorityNormal
	}
}

// UrgencyFor classifies urgency from the deadline alone. A project is
// urgent when 7 or fewer days remain (overdue included).
func UrgencyFor(deadline *time.Time, today time.Time) Urgency {
	days, ok := DaysLeft(deadline, today)
	if !ok {
		return UrgencyNoDeadline
	}
	if days <= 7 {
		return UrgencyUrgent
	}
	return UrgencyNotUrgent
}

// ImportanceFor classifies importance from the normalized priority tag alone.
func ImportanceFor(priority string) Importance {
	switch priority {
	case PriorityHigh, PriorityUrgent:
		return ImportanceImportant
	case PriorityLow:
		return ImportanceLow
	default:
		return ImportanceRoutine
	}
}

type classKey struct {
	urgency    Urgency
	importance Importance
}

// Projects without a deadline spread across the matrix by importance:
// important habits land in Q1, maintenance in Q4, cleanup candidates in Q6.
var quadrantTable = map[classKey]Quadrant{
	{UrgencyUrgent, ImportanceImportant}:     QuadrantDoFirst,
	{UrgencyNotUrgent, ImportanceImportant}:  QuadrantSchedule,
	{UrgencyUrgent, ImportanceRoutine}:       QuadrantQuickWins,
	{UrgencyNotUrgent, ImportanceRoutine}:    QuadrantOrganize,
	{UrgencyUrgent, ImportanceLow}:           QuadrantReview,
	{UrgencyNotUrgent, ImportanceLow}:        QuadrantDrop,
	{UrgencyNoDeadline, ImportanceImportant}: QuadrantDoFirst,
	{UrgencyNoDeadline, ImportanceRoutine}:   QuadrantOrganize,
	{UrgencyNoDeadline, ImportanceLow}:       QuadrantDrop,
}

// QuadrantFor maps an (urgency, importance) pair to its quadrant.
// Pairs outside the table fall back to Q4 rather than panicking.
func QuadrantFor(urgency Urgency, importance Importance) Quadrant {
	if q, ok := quadrantTable[classKey{urgency, importance}]; ok {
		return q
	}
	return QuadrantOrganize
}
