package app

import (
	"strings"
	"time"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
)

// ProjectPatch holds the editable project fields handed to UpdateProject.
type ProjectPatch struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Status      project.Status `json:"status"`
}

func (s *Service) checkProject(p *ProjectPatch) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Status == "" {
		p.Status = project.StatusConcept
	}
	if err := check(s.validate, p); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be one of Concept, In Progress, Completed"}
	}
	return nil
}

// CreateProject appends a new project to the workspace.
func (s *Service) CreateProject(title, description string, status project.Status) (project.Project, error) {
	patch := ProjectPatch{Title: title, Description: description, Status: status}
	if err := s.checkProject(&patch); err != nil {
		return project.Project{}, err
	}

	var created project.Project
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p := project.Project{
			ID:          s.newID(),
			Title:       patch.Title,
			Description: patch.Description,
			Status:      patch.Status,
			CreatedAt:   now,
			UpdatedAt:   now,
			Entries:     []entry.Entry{},
			Milestones:  []project.Milestone{},
		}
		ws.Projects = append(ws.Projects, p)
		created = p.Clone()
		return Event{Kind: ProjectCreated, ProjectID: p.ID}, nil
	})
	return created, err
}

// UpdateProject edits the project with id through mutate. mutate runs with
// the store locked and must not call back into the Service.
func (s *Service) UpdateProject(id string, mutate func(*ProjectPatch)) (project.Project, error) {
	var updated project.Project
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, ok := ws.Find(id)
		if !ok {
			return Event{}, notFound("project", id)
		}
		patch := ProjectPatch{Title: p.Title, Description: p.Description, Status: p.Status}
		if mutate != nil {
			mutate(&patch)
		}
		if err := s.checkProject(&patch); err != nil {
			return Event{}, err
		}
		p.Title, p.Description, p.Status = patch.Title, patch.Description, patch.Status
		p.Touch(now)
		updated = p.Clone()
		return Event{Kind: ProjectUpdated, ProjectID: id}, nil
	})
	return updated, err
}

// DeleteProject removes the project with id and everything it owns.
func (s *Service) DeleteProject(id string) error {
	return s.commit(func(ws *project.Workspace, _ time.Time) (Event, error) {
		if !ws.RemoveProject(id) {
			return Event{}, notFound("project", id)
		}
		return Event{Kind: ProjectDeleted, ProjectID: id}, nil
	})
}
