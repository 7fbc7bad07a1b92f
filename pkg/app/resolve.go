package app

import (
	"strings"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/template"
)

// candidate is anything addressable by id or by a human name.
type candidate struct {
	id   string
	name string
}

// resolve picks the candidate whose id equals ref, else the single one whose
// name matches ref ignoring case, else the single one whose id starts with ref.
func resolve(kind, ref string, list []candidate) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &ValidationError{Field: kind, Reason: "is required"}
	}
	for _, c := range list {
		if c.id == ref {
			return c.id, nil
		}
	}
	match := func(ok func(candidate) bool) (string, int) {
		found, n := "", 0
		for _, c := range list {
			if ok(c) {
				found, n = c.id, n+1
			}
		}
		return found, n
	}
	if id, n := match(func(c candidate) bool { return strings.EqualFold(c.name, ref) }); n == 1 {
		return id, nil
	} else if n > 1 {
		return "", &ValidationError{Field: kind, Reason: "name " + ref + " is ambiguous"}
	}
	if id, n := match(func(c candidate) bool { return strings.HasPrefix(c.id, ref) }); n == 1 {
		return id, nil
	} else if n > 1 {
		return "", &ValidationError{Field: kind, Reason: "id prefix " + ref + " is ambiguous"}
	}
	return "", notFound(kind, ref)
}

// ResolveProject finds a project by id, id prefix or title.
func (s *Service) ResolveProject(ref string) (project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]candidate, len(s.ws.Projects))
	for i, p := range s.ws.Projects {
		list[i] = candidate{id: p.ID, name: p.Title}
	}
	id, err := resolve("project", ref, list)
	if err != nil {
		return project.Project{}, err
	}
	p, _ := s.ws.Find(id)
	return p.Clone(), nil
}

// ResolveEntry finds an entry of the project by id, id prefix or title.
func (s *Service) ResolveEntry(projectID, ref string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.ws.Find(projectID)
	if !ok {
		return entry.Entry{}, notFound("project", projectID)
	}
	list := make([]candidate, len(p.Entries))
	for i, e := range p.Entries {
		list[i] = candidate{id: e.ID, name: e.Title}
	}
	id, err := resolve("entry", ref, list)
	if err != nil {
		return entry.Entry{}, err
	}
	return p.Entries[p.EntryIndex(id)].Clone(), nil
}

// ResolveMilestone finds a milestone of the project by id, id prefix or title.
func (s *Service) ResolveMilestone(projectID, ref string) (project.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.ws.Find(projectID)
	if !ok {
		return project.Milestone{}, notFound("project", projectID)
	}
	list := make([]candidate, len(p.Milestones))
	for i, m := range p.Milestones {
		list[i] = candidate{id: m.ID, name: m.Title}
	}
	id, err := resolve("milestone", ref, list)
	if err != nil {
		return project.Milestone{}, err
	}
	return p.Milestones[p.MilestoneIndex(id)], nil
}

// ResolveTemplate finds a catalog template by id, id prefix or name.
func (s *Service) ResolveTemplate(ref string) (template.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]candidate, len(s.templates))
	for i, t := range s.templates {
		list[i] = candidate{id: t.ID, name: t.Name}
	}
	id, err := resolve("template", ref, list)
	if err != nil {
		return template.Template{}, err
	}
	return s.templates[templateIndex(s.templates, id)].Clone(), nil
}

// ResolveLocation finds a catalog location by id, id prefix or name and
// returns a detached copy for use on a draft.
func (s *Service) ResolveLocation(ref string) (*entry.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]candidate, len(s.locations))
	for i, l := range s.locations {
		list[i] = candidate{id: l.ID, name: l.Name}
	}
	id, err := resolve("location", ref, list)
	if err != nil {
		return nil, err
	}
	for i := range s.locations {
		if s.locations[i].ID == id {
			return s.locations[i].Snapshot(), nil
		}
	}
	return nil, notFound("location", ref)
}
