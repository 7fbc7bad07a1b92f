package app

import (
	"sort"
	"time"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
)

// ReportSection groups the activity of one project.
type ReportSection struct {
	ProjectID    string              `json:"projectId"`
	ProjectTitle string              `json:"projectTitle"`
	Entries      []entry.Entry       `json:"entries"`
	Milestones   []project.Milestone `json:"milestones"`
}

// ReportResult encapsulates the activity report for a time window.
type ReportResult struct {
	Since    time.Time       `json:"since"`
	Until    time.Time       `json:"until"`
	Sections []ReportSection `json:"sections"`
	Total    int             `json:"total"`
}

// Report returns, per project, the entries written and the milestones due
// between the provided bounds. Projects without activity are left out.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	ws := s.Workspace()

	result := ReportResult{Since: since, Until: until}
	for _, p := range ws.Projects {
		section := ReportSection{ProjectID: p.ID, ProjectTitle: p.Title}
		for _, e := range p.Entries {
			if within(e.CreatedAt, since, until) {
				section.Entries = append(section.Entries, e)
			}
		}
		for _, m := range p.Milestones {
			if within(m.DueDate, since, until) {
				section.Milestones = append(section.Milestones, m)
			}
		}
		n := len(section.Entries) + len(section.Milestones)
		if n == 0 {
			continue
		}
		sort.SliceStable(section.Entries, func(i, j int) bool {
			return section.Entries[i].CreatedAt.Before(section.Entries[j].CreatedAt)
		})
		sort.SliceStable(section.Milestones, func(i, j int) bool {
			return section.Milestones[i].DueDate.Before(section.Milestones[j].DueDate)
		})
		result.Sections = append(result.Sections, section)
		result.Total += n
	}
	return result
}

func within(t, since, until time.Time) bool {
	return !t.Before(since) && !t.After(until)
}
