package app

import (
	"time"

	"tableflip.dev/folio/pkg/calendar"
	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/search"
	"tableflip.dev/folio/pkg/timeline"
	"tableflip.dev/folio/pkg/timeutil"
	"tableflip.dev/folio/pkg/urgency"
)

// Search filters entries of one project (or all) by query and tag, newest first.
func (s *Service) Search(projectID, query, tag string) ([]entry.Entry, error) {
	entries, err := s.Entries(projectID)
	if err != nil {
		return nil, err
	}
	return timeline.SortNewestFirst(search.FilterEntries(entries, query, tag)), nil
}

// Timeline groups the filtered entries by calendar day.
func (s *Service) Timeline(projectID, query, tag string) ([]timeline.Day, error) {
	entries, err := s.Entries(projectID)
	if err != nil {
		return nil, err
	}
	return timeline.GroupByDay(search.FilterEntries(entries, query, tag), s.loc), nil
}

// MonthView is a month grid with the milestones due on each day.
type MonthView struct {
	Grid       calendar.Grid                  `json:"grid"`
	Milestones map[int][]project.MilestoneRef `json:"milestones"`
}

// MonthGrid lays out the month containing month and overlays milestones of
// one project, or of all projects when projectID is empty.
func (s *Service) MonthGrid(month time.Time, firstWeekday time.Weekday, projectID string) (MonthView, error) {
	refs, err := s.Milestones(projectID)
	if err != nil {
		return MonthView{}, err
	}
	g := s.grids.Grid(timeutil.FirstOfMonth(month, s.loc), firstWeekday)
	return MonthView{Grid: g, Milestones: calendar.Overlay(g, refs, s.loc)}, nil
}

// Upcoming lists open milestones, soonest first.
func (s *Service) Upcoming(projectID string) ([]project.MilestoneRef, error) {
	refs, err := s.Milestones(projectID)
	if err != nil {
		return nil, err
	}
	return urgency.Upcoming(refs), nil
}

// Completed lists completed milestones, most recently due first.
func (s *Service) Completed(projectID string) ([]project.MilestoneRef, error) {
	refs, err := s.Milestones(projectID)
	if err != nil {
		return nil, err
	}
	return urgency.Done(refs), nil
}

// Urgency classifies m against the Service clock.
func (s *Service) Urgency(m project.Milestone) urgency.Tier {
	return urgency.Of(m, s.now(), s.loc)
}
