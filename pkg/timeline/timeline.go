// Package timeline buckets entries by calendar day.
package timeline

import (
	"sort"
	"time"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/timeutil"
)

// Day is one bucket of the timeline.
type Day struct {
	Date    time.Time     `json:"date"`
	Entries []entry.Entry `json:"entries"`
}

// GroupByDay buckets entries by the calendar day of CreatedAt in loc. Buckets
// are ordered newest day first and entries inside a bucket newest first, so
// grouping the flattened result again yields the same timeline.
func GroupByDay(entries []entry.Entry, loc *time.Location) []Day {
	sorted := SortNewestFirst(entries)

	var days []Day
	for _, e := range sorted {
		d := timeutil.StartOfDay(e.CreatedAt, loc)
		if n := len(days); n > 0 && days[n-1].Date.Equal(d) {
			days[n-1].Entries = append(days[n-1].Entries, e)
			continue
		}
		days = append(days, Day{Date: d, Entries: []entry.Entry{e}})
	}
	return days
}

// SortNewestFirst returns a copy of entries ordered by CreatedAt descending.
// Ties are broken by id so the order is total.
func SortNewestFirst(entries []entry.Entry) []entry.Entry {
	out := append([]entry.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out
}

// Flatten concatenates the buckets back into a single list.
func Flatten(days []Day) []entry.Entry {
	var out []entry.Entry
	for _, d := range days {
		out = append(out, d.Entries...)
	}
	return out
}

// Within keeps entries created no earlier than now minus window.
func Within(entries []entry.Entry, window time.Duration, now time.Time) []entry.Entry {
	cutoff := now.Add(-window)
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
