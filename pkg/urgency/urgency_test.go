package urgency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/folio/pkg/project"
)

var now = time.Date(2025, 3, 7, 15, 30, 0, 0, time.UTC)

func due(days int) time.Time {
	return time.Date(2025, 3, 7+days, 0, 0, 0, 0, time.UTC)
}

func TestClassifyTiers(t *testing.T) {
	cases := []struct {
		days int
		want Tier
	}{
		{-30, Overdue},
		{-1, Overdue},
		{0, Critical},
		{1, Critical},
		{2, Critical},
		{3, Soon},
		{6, Soon},
		{7, Normal},
		{10, Normal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(due(tc.days), false, now, time.UTC), "days=%d", tc.days)
	}
}

func TestClassifyCompletedWins(t *testing.T) {
	for _, d := range []int{-5, 0, 20} {
		assert.Equal(t, Completed, Classify(due(d), true, now, time.UTC))
	}
}

func TestClassifyDueTodayLateInDay(t *testing.T) {
	late := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 3, 7, 0, 1, 0, 0, time.UTC)
	// A due instant earlier today is still today, not overdue.
	assert.Equal(t, Critical, Classify(early, false, late, time.UTC))
	assert.Equal(t, Critical, Classify(late, false, early, time.UTC))
}

func TestScenarioUrgency(t *testing.T) {
	assert.Equal(t, Critical, Classify(due(2), false, now, time.UTC))
	assert.Equal(t, Normal, Classify(due(10), false, now, time.UTC))
	assert.Equal(t, Overdue, Classify(due(-1), false, now, time.UTC))
}

func TestUpcomingAndDone(t *testing.T) {
	refs := []project.MilestoneRef{
		{Milestone: project.Milestone{ID: "late", DueDate: due(9)}},
		{Milestone: project.Milestone{ID: "doneOld", DueDate: due(-9), IsCompleted: true}},
		{Milestone: project.Milestone{ID: "soon", DueDate: due(1)}},
		{Milestone: project.Milestone{ID: "doneNew", DueDate: due(-1), IsCompleted: true}},
	}
	up := Upcoming(refs)
	if assert.Len(t, up, 2) {
		assert.Equal(t, "soon", up[0].Milestone.ID)
		assert.Equal(t, "late", up[1].Milestone.ID)
	}
	done := Done(refs)
	if assert.Len(t, done, 2) {
		assert.Equal(t, "doneNew", done[0].Milestone.ID)
		assert.Equal(t, "doneOld", done[1].Milestone.ID)
	}
	all := ByDueDate(refs)
	assert.Equal(t, "doneOld", all[0].Milestone.ID)
	assert.Equal(t, "late", refs[0].Milestone.ID, "input untouched")
}
