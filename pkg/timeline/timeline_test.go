package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/entry"
)

func at(day, hour int) time.Time {
	return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
}

func sample() []entry.Entry {
	return []entry.Entry{
		{ID: "a", Title: "morning", CreatedAt: at(5, 8)},
		{ID: "b", Title: "late", CreatedAt: at(7, 22)},
		{ID: "c", Title: "evening", CreatedAt: at(5, 19)},
		{ID: "d", Title: "early", CreatedAt: at(7, 1)},
		{ID: "e", Title: "same instant", CreatedAt: at(7, 1)},
	}
}

func TestGroupByDayOrdering(t *testing.T) {
	days := GroupByDay(sample(), time.UTC)
	require.Len(t, days, 2)

	assert.Equal(t, at(7, 0), days[0].Date)
	assert.Equal(t, at(5, 0), days[1].Date)

	var got []string
	for _, e := range days[0].Entries {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"b", "d", "e"}, got)
	assert.Equal(t, "c", days[1].Entries[0].ID)
	assert.Equal(t, "a", days[1].Entries[1].ID)
}

func TestGroupByDayIdempotent(t *testing.T) {
	first := GroupByDay(sample(), time.UTC)
	assert.Equal(t, first, GroupByDay(Flatten(first), time.UTC))
	assert.Equal(t, first, GroupByDay(sample(), time.UTC))
}

func TestGroupByDayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on the 5th is already the 6th in Tokyo.
	list := []entry.Entry{{ID: "x", CreatedAt: at(5, 20)}, {ID: "y", CreatedAt: at(5, 10)}}

	assert.Len(t, GroupByDay(list, time.UTC), 1)

	days := GroupByDay(list, tokyo)
	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2025, 3, 6, 0, 0, 0, 0, tokyo), days[0].Date)
}

func TestGroupByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, time.UTC))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = SortNewestFirst(in)
	assert.Equal(t, sample(), in)
}

func TestWithin(t *testing.T) {
	got := Within(sample(), 48*time.Hour, at(7, 12))
	var ids []string
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"b", "c", "d", "e"}, ids)
}
