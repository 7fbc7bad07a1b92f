// Package timeutil holds the calendar-day arithmetic shared by the view engines.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOLoose = "2006-1-2"
	layoutShort    = "1/2"
	layoutMonth    = "2006-01"
)

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts calendar days from from to to in loc. Time of day is
// ignored, so two instants on the same day are always 0 apart.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	// Anchor both days at UTC midnight so DST transitions do not skew the count.
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// FirstOfMonth returns midnight on the first day of t's month in loc.
func FirstOfMonth(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// ParseDate accepts "2025-03-07", "2025-3-7" or "3/7". The short form picks the
// next occurrence of that day relative to now.
func ParseDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutISO, layoutISOLoose} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	t, err := time.ParseInLocation(layoutShort, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or M/D", s)
	}
	month, day := t.Month(), t.Day()
	today := StartOfDay(now, loc)
	// Feb 29 only exists in leap years, so at most eight years are searched.
	for year := today.Year(); year <= today.Year()+8; year++ {
		next := time.Date(year, month, day, 0, 0, 0, 0, loc)
		if next.Month() == month && next.Day() == day && !next.Before(today) {
			return next, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseMonth accepts "2025-03" or "March 2025".
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutMonth, "January 2006", "Jan 2006"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM", s)
}

// ParseWeekday accepts weekday names or their three letter prefixes.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), s) {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", s)
}
