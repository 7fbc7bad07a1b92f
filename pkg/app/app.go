// Package app is the content store: it owns the in-memory workspace, applies
// commands to it and hands snapshots to persistence in the background.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/calendar"
	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/export"
	"tableflip.dev/folio/pkg/media"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/store"
	"tableflip.dev/folio/pkg/template"
)

// Service provides high-level operations on the workspace so UIs and CLIs
// can share logic. Commands apply synchronously to memory; persistence,
// uploads and exports finish in the background and report through Flush
// and Subscribe.
type Service struct {
	persistence store.Persistence
	uploader    media.Uploader
	exporter    export.Exporter
	log         *zap.Logger
	now         func() time.Time
	newID       func() string
	loc         *time.Location
	validate    *validator.Validate
	events      *bus
	grids       *calendar.Cache

	mu        sync.Mutex
	ws        *project.Workspace
	templates []template.Template
	locations []entry.Location

	tasks          tracker
	workspaceSaver *saver[*project.Workspace]
	templateSaver  *saver[[]template.Template]
	locationSaver  *saver[[]entry.Location]
}

// Option configures a Service.
type Option func(*Service)

func WithUploader(u media.Uploader) Option {
	return func(s *Service) { s.uploader = u }
}

func WithExporter(x export.Exporter) Option {
	return func(s *Service) { s.exporter = x }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New returns a Service over p holding an empty workspace. Call Load to read
// the persisted state.
func New(p store.Persistence, opts ...Option) *Service {
	s := &Service{
		persistence: p,
		log:         zap.NewNop(),
		now:         time.Now,
		newID:       uuid.NewString,
		loc:         time.Local,
		validate:    newValidator(),
		grids:       calendar.NewCache(time.Hour),
		ws:          project.NewWorkspace(),
		templates:   []template.Template{},
		locations:   []entry.Location{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.events = newBus(s.log.Named("events"))

	s.workspaceSaver = newSaver("save workspace", &s.tasks, func(ctx context.Context, ws *project.Workspace) error {
		if s.persistence == nil {
			return ErrNoPersistence
		}
		return s.persistence.SaveWorkspace(ctx, ws)
	}, s.asyncFailure(PersistenceFailed))
	s.templateSaver = newSaver("save templates", &s.tasks, func(ctx context.Context, list []template.Template) error {
		if s.persistence == nil {
			return ErrNoPersistence
		}
		return s.persistence.SaveCatalog(ctx, store.CatalogTemplates, list)
	}, s.asyncFailure(PersistenceFailed))
	s.locationSaver = newSaver("save locations", &s.tasks, func(ctx context.Context, list []entry.Location) error {
		if s.persistence == nil {
			return ErrNoPersistence
		}
		return s.persistence.SaveCatalog(ctx, store.CatalogLocations, list)
	}, s.asyncFailure(PersistenceFailed))
	return s
}

// Load replaces the in-memory state with the persisted workspace and
// catalogs. A missing workspace starts empty; missing catalogs are seeded
// with the sample templates and locations.
func (s *Service) Load(ctx context.Context) error {
	if s.persistence == nil {
		return ErrNoPersistence
	}

	ws, err := s.persistence.LoadWorkspace(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		ws = project.NewWorkspace()
	case err != nil:
		return &PersistenceError{Op: "load workspace", Err: err}
	}
	ws.Normalize()

	var templates []template.Template
	seedTemplates := false
	if err := s.persistence.LoadCatalog(ctx, store.CatalogTemplates, &templates); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return &PersistenceError{Op: "load templates", Err: err}
		}
		templates, seedTemplates = template.Samples(s.newID), true
	}

	var locations []entry.Location
	seedLocations := false
	if err := s.persistence.LoadCatalog(ctx, store.CatalogLocations, &locations); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return &PersistenceError{Op: "load locations", Err: err}
		}
		locations, seedLocations = entry.SampleLocations(s.newID), true
	}
	if templates == nil {
		templates = []template.Template{}
	}
	if locations == nil {
		locations = []entry.Location{}
	}

	s.mu.Lock()
	s.ws, s.templates, s.locations = ws, templates, locations
	if seedTemplates {
		s.templateSaver.enqueue(cloneTemplates(templates))
	}
	if seedLocations {
		s.locationSaver.enqueue(cloneLocations(locations))
	}
	s.mu.Unlock()

	s.log.Debug("workspace loaded",
		zap.Int("projects", len(ws.Projects)),
		zap.Int("templates", len(templates)),
		zap.Int("locations", len(locations)))
	s.publish(Event{Kind: WorkspaceLoaded})
	return nil
}

// Reload waits for pending saves and loads again, picking up changes made by
// other processes.
func (s *Service) Reload(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		s.log.Warn("flush before reload", zap.Error(err))
	}
	return s.Load(ctx)
}

// Flush waits for in-flight saves, uploads and exports. It returns the
// asynchronous failures collected since the previous Flush.
func (s *Service) Flush(ctx context.Context) error {
	return s.tasks.wait(ctx)
}

// Close flushes and shuts down the event bus.
func (s *Service) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	return errors.Join(err, s.events.close())
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.persistence.Watch(ctx)
}

// Subscribe streams every event published after the call.
func (s *Service) Subscribe(ctx context.Context) (<-chan Event, error) {
	return s.events.subscribe(ctx)
}

// Location is the time zone calendar days are computed in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Now is the Service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Workspace returns a deep copy of the current workspace.
func (s *Service) Workspace() *project.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Clone()
}

// Project returns a copy of the project with id.
func (s *Service) Project(id string) (project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.ws.Find(id)
	if !ok {
		return project.Project{}, notFound("project", id)
	}
	return p.Clone(), nil
}

// Entries lists entries of one project, or of every project when projectID
// is empty.
func (s *Service) Entries(projectID string) ([]entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if projectID != "" && s.ws.ProjectIndex(projectID) < 0 {
		return nil, notFound("project", projectID)
	}
	return s.ws.Entries(projectID), nil
}

// Milestones lists milestones with their project, for one project or all.
func (s *Service) Milestones(projectID string) ([]project.MilestoneRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if projectID != "" && s.ws.ProjectIndex(projectID) < 0 {
		return nil, notFound("project", projectID)
	}
	return s.ws.Milestones(projectID), nil
}

// commit runs fn against the live workspace. When fn succeeds the new state
// is queued for saving and the returned event is published. fn must leave
// the workspace untouched when it returns an error.
func (s *Service) commit(fn func(ws *project.Workspace, now time.Time) (Event, error)) error {
	s.mu.Lock()
	ev, err := fn(s.ws, s.now())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.workspaceSaver.enqueue(s.ws.Clone())
	s.mu.Unlock()

	s.log.Debug("command applied",
		zap.String("kind", string(ev.Kind)),
		zap.String("project", ev.ProjectID),
		zap.String("entry", ev.EntryID),
		zap.String("milestone", ev.MilestoneID))
	s.publish(ev)
	return nil
}

func (s *Service) publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = s.now()
	}
	s.events.publish(ev)
}

// asyncFailure records err for Flush, logs it and publishes it as kind.
func (s *Service) asyncFailure(kind EventKind) func(error) {
	return func(err error) {
		s.tasks.fail(err)
		s.log.Error("background operation failed", zap.String("kind", string(kind)), zap.Error(err))
		s.publish(Event{Kind: kind, Err: err.Error()})
	}
}

func cloneTemplates(in []template.Template) []template.Template {
	out := make([]template.Template, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

func cloneLocations(in []entry.Location) []entry.Location {
	return append([]entry.Location{}, in...)
}
