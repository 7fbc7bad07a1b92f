package app

import (
	"strings"
	"time"

	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/timeutil"
)

// MilestoneDraft holds the editable milestone fields.
type MilestoneDraft struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

func (s *Service) checkMilestone(d *MilestoneDraft) error {
	d.Title = strings.TrimSpace(d.Title)
	if err := check(s.validate, d); err != nil {
		return err
	}
	d.DueDate = timeutil.StartOfDay(d.DueDate, s.loc)
	return nil
}

// AddMilestone adds a milestone due at the start of the draft's day.
func (s *Service) AddMilestone(projectID string, d MilestoneDraft) (project.Milestone, error) {
	if err := s.checkMilestone(&d); err != nil {
		return project.Milestone{}, err
	}

	var added project.Milestone
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, ok := ws.Find(projectID)
		if !ok {
			return Event{}, notFound("project", projectID)
		}
		added = project.Milestone{
			ID:          s.newID(),
			Title:       d.Title,
			Description: d.Description,
			DueDate:     d.DueDate,
		}
		p.Milestones = append(p.Milestones, added)
		p.Touch(now)
		return Event{Kind: MilestoneAdded, ProjectID: projectID, MilestoneID: added.ID}, nil
	})
	return added, err
}

// UpdateMilestone edits title, description and due date. Completion is left
// to ToggleMilestoneCompletion.
func (s *Service) UpdateMilestone(projectID, milestoneID string, mutate func(*MilestoneDraft)) (project.Milestone, error) {
	var updated project.Milestone
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, m, err := findMilestone(ws, projectID, milestoneID)
		if err != nil {
			return Event{}, err
		}
		d := MilestoneDraft{Title: m.Title, Description: m.Description, DueDate: m.DueDate}
		if mutate != nil {
			mutate(&d)
		}
		if err := s.checkMilestone(&d); err != nil {
			return Event{}, err
		}
		m.Title, m.Description, m.DueDate = d.Title, d.Description, d.DueDate
		p.Touch(now)
		updated = *m
		return Event{Kind: MilestoneUpdated, ProjectID: projectID, MilestoneID: milestoneID}, nil
	})
	return updated, err
}

// ToggleMilestoneCompletion flips IsCompleted without validating other fields.
func (s *Service) ToggleMilestoneCompletion(projectID, milestoneID string) (project.Milestone, error) {
	var toggled project.Milestone
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, m, err := findMilestone(ws, projectID, milestoneID)
		if err != nil {
			return Event{}, err
		}
		m.IsCompleted = !m.IsCompleted
		p.Touch(now)
		toggled = *m
		return Event{Kind: MilestoneToggled, ProjectID: projectID, MilestoneID: milestoneID}, nil
	})
	return toggled, err
}

// DeleteMilestone removes a milestone from its project.
func (s *Service) DeleteMilestone(projectID, milestoneID string) error {
	return s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, ok := ws.Find(projectID)
		if !ok {
			return Event{}, notFound("project", projectID)
		}
		if !p.RemoveMilestone(milestoneID) {
			return Event{}, notFound("milestone", milestoneID)
		}
		p.Touch(now)
		return Event{Kind: MilestoneDeleted, ProjectID: projectID, MilestoneID: milestoneID}, nil
	})
}

func findMilestone(ws *project.Workspace, projectID, milestoneID string) (*project.Project, *project.Milestone, error) {
	p, ok := ws.Find(projectID)
	if !ok {
		return nil, nil, notFound("project", projectID)
	}
	i := p.MilestoneIndex(milestoneID)
	if i < 0 {
		return nil, nil, notFound("milestone", milestoneID)
	}
	return p, &p.Milestones[i], nil
}
