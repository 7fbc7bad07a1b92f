package app

import (
	"fmt"
	"time"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
)

// checkDraft normalizes and validates d. Media without an id gets a fresh one.
// Pending placeholders belong to uploads, so only those already in existing
// may stay in the draft.
func (s *Service) checkDraft(d *entry.Draft, existing []entry.Media) error {
	d.Normalize()
	pending := make(map[string]bool)
	for _, m := range existing {
		if m.Pending {
			pending[m.ID] = true
		}
	}
	d.Media = append([]entry.Media(nil), d.Media...)
	seen := make(map[string]bool, len(d.Media))
	for i := range d.Media {
		m := &d.Media[i]
		kind, err := entry.ParseMediaKind(string(m.Kind))
		if err != nil {
			return &ValidationError{Field: "media", Reason: fmt.Sprintf("unknown type %q", m.Kind)}
		}
		m.Kind = kind
		if m.ID == "" {
			m.ID = s.newID()
		}
		if seen[m.ID] {
			return &ValidationError{Field: "media", Reason: fmt.Sprintf("duplicate id %q", m.ID)}
		}
		seen[m.ID] = true
		if m.Pending && !pending[m.ID] {
			return &ValidationError{Field: "media", Reason: "pending media is managed by uploads"}
		}
	}
	return check(s.validate, d)
}

// AddEntry records a new entry in the project. The draft location is copied,
// so later catalog changes never reach the entry.
func (s *Service) AddEntry(projectID string, d entry.Draft) (entry.Entry, error) {
	if err := s.checkDraft(&d, nil); err != nil {
		return entry.Entry{}, err
	}

	var added entry.Entry
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, ok := ws.Find(projectID)
		if !ok {
			return Event{}, notFound("project", projectID)
		}
		e := entry.New(s.newID(), d, now)
		p.Entries = append(p.Entries, e)
		p.Touch(now)
		added = e.Clone()
		return Event{Kind: EntryAdded, ProjectID: projectID, EntryID: e.ID}, nil
	})
	return added, err
}

// UpdateEntry edits an entry through mutate, which receives the current
// values as a draft. mutate runs with the store locked.
func (s *Service) UpdateEntry(projectID, entryID string, mutate func(*entry.Draft)) (entry.Entry, error) {
	var updated entry.Entry
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, e, err := findEntry(ws, projectID, entryID)
		if err != nil {
			return Event{}, err
		}
		d := e.Draft()
		if mutate != nil {
			mutate(&d)
		}
		if err := s.checkDraft(&d, e.Media); err != nil {
			return Event{}, err
		}
		e.Apply(d)
		e.UpdatedAt = later(now, e.CreatedAt)
		p.Touch(now)
		updated = e.Clone()
		return Event{Kind: EntryUpdated, ProjectID: projectID, EntryID: entryID}, nil
	})
	return updated, err
}

// DeleteEntry removes an entry from its project.
func (s *Service) DeleteEntry(projectID, entryID string) error {
	return s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, ok := ws.Find(projectID)
		if !ok {
			return Event{}, notFound("project", projectID)
		}
		if !p.RemoveEntry(entryID) {
			return Event{}, notFound("entry", entryID)
		}
		p.Touch(now)
		return Event{Kind: EntryDeleted, ProjectID: projectID, EntryID: entryID}, nil
	})
}

// Entry returns a copy of one entry.
func (s *Service) Entry(projectID, entryID string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, e, err := findEntry(s.ws, projectID, entryID)
	if err != nil {
		return entry.Entry{}, err
	}
	return e.Clone(), nil
}

func findEntry(ws *project.Workspace, projectID, entryID string) (*project.Project, *entry.Entry, error) {
	p, ok := ws.Find(projectID)
	if !ok {
		return nil, nil, notFound("project", projectID)
	}
	i := p.EntryIndex(entryID)
	if i < 0 {
		return nil, nil, notFound("entry", entryID)
	}
	return p, &p.Entries[i], nil
}

func later(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
