package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/project"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 15, 13, 0, 0, 0, time.UTC)
}

func leading(g Grid) int {
	n := 0
	for _, c := range g.Weeks[0] {
		if c.InMonth {
			break
		}
		n++
	}
	return n
}

func TestBuildMonthGridWholeWeeks(t *testing.T) {
	for y := 2024; y <= 2026; y++ {
		for m := time.January; m <= time.December; m++ {
			for fw := time.Sunday; fw <= time.Saturday; fw++ {
				g := BuildMonthGrid(month(y, m), fw)
				cells := g.Cells()
				require.Equal(t, 0, len(cells)%7)

				inMonth := 0
				for i, c := range cells {
					if c.InMonth {
						inMonth++
						assert.Equal(t, inMonth, c.Day)
						assert.Equal(t, time.Weekday((int(fw)+i)%7), c.Date.Weekday())
					} else {
						assert.True(t, c.Date.IsZero())
						assert.Zero(t, c.Day)
					}
				}
				assert.Equal(t, DaysIn(month(y, m)), inMonth)
				assert.Less(t, len(cells)-inMonth-leading(g), 7, "trailing blanks")
				assert.True(t, g.Weeks[len(g.Weeks)-1][0].InMonth, "no empty trailing week")
			}
		}
	}
}

func TestLeadingBlanksMonday(t *testing.T) {
	// January 2025 starts on a Wednesday, the third weekday from Monday.
	g := BuildMonthGrid(month(2025, time.January), time.Monday)
	assert.Equal(t, 2, leading(g))
	assert.Equal(t, 1, g.Weeks[0][2].Day)
	assert.Len(t, g.Weeks, 5)
}

func TestLeadingBlanksSunday(t *testing.T) {
	// February 2026 starts on a Sunday and fits exactly four weeks.
	g := BuildMonthGrid(month(2026, time.February), time.Sunday)
	assert.Equal(t, 0, leading(g))
	assert.Len(t, g.Weeks, 4)

	g = BuildMonthGrid(month(2026, time.February), time.Monday)
	assert.Equal(t, 6, leading(g))
	assert.Len(t, g.Weeks, 5)
}

func TestBuildMonthGridDeterministic(t *testing.T) {
	a := BuildMonthGrid(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Monday)
	b := BuildMonthGrid(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC), time.Monday)
	assert.Equal(t, a, b)
}

func TestMilestonesForDay(t *testing.T) {
	refs := []project.MilestoneRef{
		{ProjectID: "p", Milestone: project.Milestone{ID: "a", DueDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}},
		{ProjectID: "p", Milestone: project.Milestone{ID: "b", DueDate: time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)}},
		{ProjectID: "p", Milestone: project.Milestone{ID: "c", DueDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)}},
	}
	got := MilestonesForDay(refs, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Milestone.ID)
	assert.Equal(t, "b", got[1].Milestone.ID)

	over := Overlay(BuildMonthGrid(month(2025, time.March), time.Monday), refs, time.UTC)
	assert.Len(t, over, 2)
	assert.Len(t, over[10], 2)
	assert.Len(t, over[11], 1)
}

func TestWeekdayHeaders(t *testing.T) {
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, WeekdayHeaders(time.Monday))
	assert.Equal(t, "Su", WeekdayHeaders(time.Sunday)[0])
}

func TestCacheReturnsCopies(t *testing.T) {
	c := NewCache(time.Minute)
	g := c.Grid(month(2025, time.March), time.Monday)
	g.Weeks[0][0] = Cell{InMonth: true, Day: 99}

	again := c.Grid(month(2025, time.March), time.Monday)
	assert.Equal(t, BuildMonthGrid(month(2025, time.March), time.Monday), again)
	assert.Equal(t, 1, c.Len())
}
