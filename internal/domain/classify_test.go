package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriority(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{"high", "high"},
		{"HIGH", "high"},
		{"Urgent", "urgent"},
		{"low", "low"},
		{"normal", "normal"},
		{"whatever", "normal"},
		{"", "normal"},
		{"  high  ", "high"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePriority(tc.raw), "raw=%q", tc.raw)
	}
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyNoDeadline, UrgencyFor(nil, testToday))
	assert.Equal(t, UrgencyUrgent, UrgencyFor(dl(2024, time.March, 5), testToday), "overdue is urgent")
	assert.Equal(t, UrgencyUrgent, UrgencyFor(dl(2024, time.March, 17), testToday), "7 days out is urgent")
	assert.Equal(t, UrgencyNotUrgent, UrgencyFor(dl(2024, time.March, 18), testToday), "8 days out is not urgent")
}

func TestImportanceFor(t *testing.T) {
	assert.Equal(t, ImportanceImportant, ImportanceFor(PriorityHigh))
	assert.Equal(t, ImportanceImportant, ImportanceFor(PriorityUrgent))
	assert.Equal(t, ImportanceLow, ImportanceFor(PriorityLow))
	assert.Equal(t, ImportanceRoutine, ImportanceFor(PriorityNormal))
}

func TestQuadrantFor_Table(t *testing.T) {
	cases := []struct {
		urgency    Urgency
		importance Importance
		want       Quadrant
	}{
		{UrgencyUrgent, ImportanceImportant, QuadrantDoFirst},
		{UrgencyNotUrgent, ImportanceImportant, QuadrantSchedule},
		{UrgencyUrgent, ImportanceRoutine, QuadrantQuickWins},
		{UrgencyNotUrgent, ImportanceRoutine, QuadrantOrganize},
		{UrgencyUrgent, ImportanceLow, QuadrantReview},
		{UrgencyNotUrgent, ImportanceLow, QuadrantDrop},
		{UrgencyNoDeadline, ImportanceImportant, QuadrantDoFirst},
		{UrgencyNoDeadline, ImportanceRoutine, QuadrantOrganize},
		{UrgencyNoDeadline, ImportanceLow, QuadrantDrop},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, QuadrantFor(tc.urgency, tc.importance),
			"urgency=%s importance=%s", tc.urgency, tc.importance)
	}
}

func TestQuadrantFor_Total(t *testing.T) {
	urgencies := []Urgency{UrgencyUrgent, UrgencyNotUrgent, UrgencyNoDeadline}
	importances := []Importance{ImportanceImportant, ImportanceRoutine, ImportanceLow}
	for _, u := range urgencies {
		for _, i := range importances {
			q := QuadrantFor(u, i)
			assert.Contains(t, AllQuadrants, q)
		}
	}
}

func TestQuadrantFor_UnmappedFallsBackToQ4(t *testing.T) {
	assert.Equal(t, QuadrantOrganize, QuadrantFor(Urgency("bogus"), ImportanceLow))
	assert.Equal(t, QuadrantOrganize, QuadrantFor(UrgencyUrgent, Importance("")))
}

// Concrete scenarios from the product definition.
func TestProjectClassification_Scenarios(t *testing.T) {
	a := &Project{Name: "A", Deadline: dl(2024, time.March, 13), Priority: PriorityHigh}
	assert.Equal(t, UrgencyUrgent, a.Urgency(testToday))
	assert.Equal(t, ImportanceImportant, a.Importance())
	assert.Equal(t, QuadrantDoFirst, a.Quadrant(testToday))
	assert.Equal(t, "urgent (3d left)", DisplayDeadline(a.Deadline, testToday))

	b := &Project{Name: "B", Priority: PriorityLow}
	assert.Equal(t, QuadrantDrop, b.Quadrant(testToday))
	assert.Equal(t, "no deadline", DisplayDeadline(b.Deadline, testToday))

	c := &Project{Name: "C", Deadline: dl(2024, time.March, 8), Priority: PriorityNormal}
	assert.True(t, c.IsOverdue(testToday))
	assert.Equal(t, QuadrantQuickWins, c.Quadrant(testToday))
	assert.Equal(t, "overdue by 2d", DisplayDeadline(c.Deadline, testToday))
}

func TestPrioritySymbol(t *testing.T) {
	assert.Equal(t, "▲", (&Project{Priority: PriorityHigh}).PrioritySymbol())
	assert.Equal(t, "●", (&Project{Priority: PriorityNormal}).PrioritySymbol())
	assert.Equal(t, "▼", (&Project{Priority: PriorityLow}).PrioritySymbol())
}
