package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	loc := time.UTC
	from := time.Date(2025, 3, 7, 23, 59, 0, 0, loc)
	to := time.Date(2025, 3, 8, 0, 1, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(from, to, loc))
	assert.Equal(t, 0, DaysBetween(from, from.Add(-23*time.Hour), loc))
	assert.Equal(t, -1, DaysBetween(to, from, loc))
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	from := time.Date(2025, 3, 29, 12, 0, 0, 0, loc)
	to := time.Date(2025, 3, 31, 0, 30, 0, 0, loc)
	assert.Equal(t, 2, DaysBetween(from, to, loc))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("X", 2*60*60)
	in := time.Date(2025, 3, 7, 23, 30, 0, 0, time.UTC) // 01:30 on the 8th in X
	got := StartOfDay(in, loc)
	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, loc), got)
	assert.True(t, SameDay(in, got, loc))
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC)

	got, err := ParseDate("2025-3-7", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("1/3", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("12/5", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2/29", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), got, "leap day waits for a leap year")

	got, err = ParseDate("2/29", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("tomorrow", now, time.UTC)
	assert.Error(t, err)
}

func TestParseMonthAndWeekday(t *testing.T) {
	m, err := ParseMonth("2025-03", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.March, m.Month())

	m, err = ParseMonth("October 2025", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.October, m.Month())

	d, err := ParseWeekday("Mon")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	_, err = ParseWeekday("x")
	assert.Error(t, err)
}
