package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testToday = Date(2024, time.March, 10)

func dl(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

func TestDaysLeft_Future(t *testing.T) {
	days, ok := DaysLeft(dl(2024, time.March, 13), testToday)
	assert.True(t, ok)
	assert.Equal(t, 3, days)
}

func TestDaysLeft_Past(t *testing.T) {
	days, ok := DaysLeft(dl(2024, time.March, 8), testToday)
	assert.True(t, ok)
	assert.Equal(t, -2, days)
}

func TestDaysLeft_SameDay(t *testing.T) {
	days, ok := DaysLeft(dl(2024, time.March, 10), testToday)
	assert.True(t, ok)
	assert.Equal(t, 0, days)
}

func TestDaysLeft_NoDeadline(t *testing.T) {
	_, ok := DaysLeft(nil, testToday)
	assert.False(t, ok)
}

func TestDaysLeft_IgnoresTimeOfDay(t *testing.T) {
	lateToday := time.Date(2024, time.March, 10, 23, 45, 0, 0, time.UTC)
	days, ok := DaysLeft(dl(2024, time.March, 11), lateToday)
	assert.True(t, ok)
	assert.Equal(t, 1, days)
}

func TestDaysLeft_SwapNegatesSign(t *testing.T) {
	a := Date(2024, time.March, 4)
	b := Date(2024, time.March, 19)
	forward, _ := DaysLeft(&b, a)
	backward, _ := DaysLeft(&a, b)
	assert.Equal(t, forward, -backward)
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, IsOverdue(dl(2024, time.March, 9), testToday))
	assert.False(t, IsOverdue(dl(2024, time.March, 10), testToday), "due today is not overdue")
	assert.False(t, IsOverdue(dl(2024, time.March, 11), testToday))
	assert.False(t, IsOverdue(nil, testToday))
}

func TestDisplayDeadline(t *testing.T) {
	cases := []struct {
		deadline *time.Time
		want     string
	}{
		{nil, "no deadline"},
		{dl(2024, time.March, 8), "overdue by 2d"},
		{dl(2024, time.March, 10), "due today"},
		{dl(2024, time.March, 11), "urgent (1d left)"},
		{dl(2024, time.March, 13), "urgent (3d left)"},
		{dl(2024, time.March, 14), "soon (4d left)"},
		{dl(2024, time.March, 17), "soon (7d left)"},
		{dl(2024, time.March, 18), "8d left"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayDeadline(tc.deadline, testToday))
	}
}

func TestShortDeadline(t *testing.T) {
	cases := []struct {
		deadline *time.Time
		want     string
	}{
		{nil, "no ddl"},
		{dl(2024, time.March, 7), "3d ago"},
		{dl(2024, time.March, 10), "today"},
		{dl(2024, time.March, 22), "12d"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShortDeadline(tc.deadline, testToday))
	}
}

func TestDeadlineTierFor(t *testing.T) {
	cases := []struct {
		deadline *time.Time
		want     DeadlineTier
	}{
		{nil, TierNone},
		{dl(2024, time.March, 5), TierCritical}, // overdue
		{dl(2024, time.March, 10), TierCritical},
		{dl(2024, time.March, 13), TierCritical},
		{dl(2024, time.March, 14), TierSoon},
		{dl(2024, time.March, 17), TierSoon},
		{dl(2024, time.March, 18), TierSafe},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeadlineTierFor(tc.deadline, testToday))
	}
}
