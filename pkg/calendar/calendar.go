// Package calendar lays out month grids and places milestones on them.
package calendar

import (
	"time"

	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/timeutil"
)

// Cell is one square of a month grid. Blank cells pad the first and last week
// and carry no date.
type Cell struct {
	InMonth bool      `json:"inMonth"`
	Day     int       `json:"day,omitempty"`
	Date    time.Time `json:"date,omitempty"`
}

// Blank reports whether c is padding.
func (c Cell) Blank() bool { return !c.InMonth }

// Week is always exactly seven cells.
type Week [7]Cell

// Grid is a month laid out in whole weeks starting on FirstWeekday.
type Grid struct {
	Month        time.Time    `json:"month"`
	FirstWeekday time.Weekday `json:"firstWeekday"`
	Weeks        []Week       `json:"weeks"`
}

// BuildMonthGrid lays out the month containing month. The grid shape depends
// only on the month and firstWeekday.
func BuildMonthGrid(month time.Time, firstWeekday time.Weekday) Grid {
	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	days := DaysIn(first)
	lead := LeadingBlanks(first, firstWeekday)

	weeks := make([]Week, (lead+days+6)/7)
	for day := 1; day <= days; day++ {
		idx := lead + day - 1
		weeks[idx/7][idx%7] = Cell{
			InMonth: true,
			Day:     day,
			Date:    time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc),
		}
	}
	return Grid{Month: first, FirstWeekday: firstWeekday, Weeks: weeks}
}

// LeadingBlanks is the number of padding cells before the first of the month.
func LeadingBlanks(first time.Time, firstWeekday time.Weekday) int {
	return (int(first.Weekday()) - int(firstWeekday) + 7) % 7
}

// DaysIn returns the number of days in month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// WeekdayHeaders returns short weekday names starting at firstWeekday.
func WeekdayHeaders(firstWeekday time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = time.Weekday((int(firstWeekday) + i) % 7).String()[:2]
	}
	return out
}

// Cells returns every cell of the grid in reading order.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.Weeks)*7)
	for _, w := range g.Weeks {
		out = append(out, w[:]...)
	}
	return out
}

// clone copies g so cached grids are never shared with callers.
func (g Grid) clone() Grid {
	g.Weeks = append([]Week(nil), g.Weeks...)
	return g
}

// MilestonesForDay returns the milestones due on date's calendar day in loc.
func MilestonesForDay(refs []project.MilestoneRef, date time.Time, loc *time.Location) []project.MilestoneRef {
	var out []project.MilestoneRef
	for _, r := range refs {
		if timeutil.SameDay(r.Milestone.DueDate, date, loc) {
			out = append(out, r)
		}
	}
	return out
}

// Overlay maps each in-month day that has milestones due to those milestones.
func Overlay(g Grid, refs []project.MilestoneRef, loc *time.Location) map[int][]project.MilestoneRef {
	out := make(map[int][]project.MilestoneRef)
	for _, c := range g.Cells() {
		if c.Blank() {
			continue
		}
		if due := MilestonesForDay(refs, c.Date, loc); len(due) > 0 {
			out[c.Day] = due
		}
	}
	return out
}
