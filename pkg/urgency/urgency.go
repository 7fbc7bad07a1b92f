// Package urgency classifies milestones by how close their due date is.
package urgency

import (
	"sort"
	"time"

	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/timeutil"
)

// Tier is a discrete urgency level.
type Tier string

const (
	Completed Tier = "completed"
	Overdue   Tier = "overdue"
	Critical  Tier = "critical"
	Soon      Tier = "soon"
	Normal    Tier = "normal"
)

const (
	criticalDays = 2
	soonDays     = 6
)

// Classify returns the tier for a milestone due on due. Distances are counted
// in calendar days in loc, so the tier never changes within a single day.
func Classify(due time.Time, completed bool, now time.Time, loc *time.Location) Tier {
	if completed {
		return Completed
	}
	days := timeutil.DaysBetween(now, due, loc)
	switch {
	case days < 0:
		return Overdue
	case days <= criticalDays:
		return Critical
	case days <= soonDays:
		return Soon
	default:
		return Normal
	}
}

// Of classifies m.
func Of(m project.Milestone, now time.Time, loc *time.Location) Tier {
	return Classify(m.DueDate, m.IsCompleted, now, loc)
}

// Upcoming returns the open milestones ordered by due date ascending.
func Upcoming(refs []project.MilestoneRef) []project.MilestoneRef {
	out := pick(refs, false)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Milestone.DueDate.Before(out[j].Milestone.DueDate)
	})
	return out
}

// Done returns the completed milestones ordered by due date descending.
func Done(refs []project.MilestoneRef) []project.MilestoneRef {
	out := pick(refs, true)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Milestone.DueDate.After(out[j].Milestone.DueDate)
	})
	return out
}

// ByDueDate returns every milestone ordered by due date ascending.
func ByDueDate(refs []project.MilestoneRef) []project.MilestoneRef {
	out := append([]project.MilestoneRef(nil), refs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Milestone.DueDate.Before(out[j].Milestone.DueDate)
	})
	return out
}

func pick(refs []project.MilestoneRef, completed bool) []project.MilestoneRef {
	out := make([]project.MilestoneRef, 0, len(refs))
	for _, r := range refs {
		if r.Milestone.IsCompleted == completed {
			out = append(out, r)
		}
	}
	return out
}
