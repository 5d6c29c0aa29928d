// Package matrix groups classified projects for display: the six-quadrant
// decision matrix and the flat deadline-triage list.
package matrix

import (
	"sort"
	"time"

	"github.com/alexanderramin/muxdash/internal/domain"
)

// noDeadlineDays is the sort key stand-in for projects without a deadline;
// they order as if 9999 days out.
const noDeadlineDays = 9999

// Grouping is the display-ready partition of projects into quadrants.
// Every input project appears in exactly one group; empty groups are valid.
type Grouping map[domain.Quadrant][]*domain.Project

// GroupByQuadrant partitions projects into the six quadrants as of today
// and applies the canonical in-quadrant order: overdue first, then nearest
// deadline, then name.
func GroupByQuadrant(projects []*domain.Project, today time.Time) Grouping {
	groups := make(Grouping, len(domain.AllQuadrants))
	for _, q := range domain.AllQuadrants {
		groups[q] = nil
	}

	for _, p := range projects {
		q := p.Quadrant(today)
		groups[q] = append(groups[q], p)
	}

	for _, group := range groups {
		sortCanonical(group, today)
	}
	return groups
}

// Total returns the number of projects across all groups.
func (g Grouping) Total() int {
	n := 0
	for _, group := range g {
		n += len(group)
	}
	return n
}

// Overdue returns how many grouped projects are past their deadline.
func (g Grouping) Overdue(today time.Time) int {
	n := 0
	for _, group := range g {
		for _, p := range group {
			if p.IsOverdue(today) {
				n++
			}
		}
	}
	return n
}

// sortCanonical orders one quadrant by the composite key
// (0 if overdue else 1, daysLeft or 9999, name).
func sortCanonical(projects []*domain.Project, today time.Time) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]

		overdueA, overdueB := a.IsOverdue(today), b.IsOverdue(today)
		if overdueA != overdueB {
			return overdueA
		}

		daysA := sortDays(a, today)
		daysB := sortDays(b, today)
		if daysA != daysB {
			return daysA < daysB
		}

		return a.Name < b.Name
	})
}

func sortDays(p *domain.Project, today time.Time) int {
	if days, ok := p.DaysLeft(today); ok {
		return days
	}
	return noDeadlineDays
}

// TriageOrder sorts projects in place for the flat list view. Deadline
// presence dominates the key entirely: dated projects come first by
// (deadline, name), undated projects follow sorted by name alone.
func TriageOrder(projects []*domain.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if (a.Deadline == nil) != (b.Deadline == nil) {
			return a.Deadline != nil
		}
		if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}
		return a.Name < b.Name
	})
}
