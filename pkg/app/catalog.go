package app

import (
	"strings"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/template"
)

// Templates returns a copy of the template catalog.
func (s *Service) Templates() []template.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTemplates(s.templates)
}

// ApplyTemplate returns a draft seeded from the template with id. An unknown
// id yields an empty draft so entry creation is never blocked.
func (s *Service) ApplyTemplate(templateID string) entry.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := template.Find(s.templates, templateID)
	if !ok {
		return template.Empty()
	}
	return template.Apply(t)
}

// AddTemplate appends a template to the catalog.
func (s *Service) AddTemplate(name, content string, tags []string) (template.Template, error) {
	t := template.Template{
		Name:            strings.TrimSpace(name),
		ContentTemplate: content,
		DefaultTags:     entry.CleanTags(tags),
	}
	if err := check(s.validate, t); err != nil {
		return template.Template{}, err
	}

	s.mu.Lock()
	t.ID = s.newID()
	s.templates = append(s.templates, t)
	s.templateSaver.enqueue(cloneTemplates(s.templates))
	s.mu.Unlock()

	s.publish(Event{Kind: TemplatesChanged})
	return t.Clone(), nil
}

// UpdateTemplate edits a template through mutate. The id cannot change.
func (s *Service) UpdateTemplate(id string, mutate func(*template.Template)) (template.Template, error) {
	s.mu.Lock()
	i := templateIndex(s.templates, id)
	if i < 0 {
		s.mu.Unlock()
		return template.Template{}, notFound("template", id)
	}
	t := s.templates[i].Clone()
	if mutate != nil {
		mutate(&t)
	}
	t.ID = id
	t.Name = strings.TrimSpace(t.Name)
	t.DefaultTags = entry.CleanTags(t.DefaultTags)
	if err := check(s.validate, t); err != nil {
		s.mu.Unlock()
		return template.Template{}, err
	}
	s.templates[i] = t
	s.templateSaver.enqueue(cloneTemplates(s.templates))
	s.mu.Unlock()

	s.publish(Event{Kind: TemplatesChanged})
	return t.Clone(), nil
}

// DeleteTemplate removes a template. Entries created from it are unaffected.
func (s *Service) DeleteTemplate(id string) error {
	s.mu.Lock()
	i := templateIndex(s.templates, id)
	if i < 0 {
		s.mu.Unlock()
		return notFound("template", id)
	}
	s.templates = append(s.templates[:i:i], s.templates[i+1:]...)
	s.templateSaver.enqueue(cloneTemplates(s.templates))
	s.mu.Unlock()

	s.publish(Event{Kind: TemplatesChanged})
	return nil
}

// Locations returns a copy of the location catalog.
func (s *Service) Locations() []entry.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLocations(s.locations)
}

// AddLocation appends a location to the catalog.
func (s *Service) AddLocation(name string) (entry.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entry.Location{}, &ValidationError{Field: "name", Reason: "is required"}
	}

	s.mu.Lock()
	l := entry.Location{ID: s.newID(), Name: name}
	s.locations = append(s.locations, l)
	s.locationSaver.enqueue(cloneLocations(s.locations))
	s.mu.Unlock()

	s.publish(Event{Kind: LocationsChanged})
	return l, nil
}

// DeleteLocation removes a location from the catalog. Entries keep their copy.
func (s *Service) DeleteLocation(id string) error {
	s.mu.Lock()
	i := -1
	for j := range s.locations {
		if s.locations[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		s.mu.Unlock()
		return notFound("location", id)
	}
	s.locations = append(s.locations[:i:i], s.locations[i+1:]...)
	s.locationSaver.enqueue(cloneLocations(s.locations))
	s.mu.Unlock()

	s.publish(Event{Kind: LocationsChanged})
	return nil
}

func templateIndex(list []template.Template, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
