package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/folio/pkg/project"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsWorkspaceChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.SaveWorkspace(ctx, project.NewWorkspace()); err != nil {
		t.Fatalf("save workspace: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated || evt.Type == EventWorkspaceChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for workspace change event")
		}
	}
}

func TestEventForPath(t *testing.T) {
	p := &persistence{basePath: "/data"}
	tests := map[string]Event{
		"/data/workspace":          {Type: EventWorkspaceChanged},
		"/data/catalog/templates":  {Type: EventCatalogChanged, Catalog: CatalogTemplates},
		"/data/catalog/locations":  {Type: EventCatalogChanged, Catalog: CatalogLocations},
		"/data/somewhere/else/doc": {Type: EventInvalidated},
	}
	for path, want := range tests {
		if got := p.eventForPath(path); got != want {
			t.Errorf("eventForPath(%q) = %+v, want %+v", path, got, want)
		}
	}
	if !p.ignored("/data/.tmp/diskv-123") {
		t.Error("temp files should be ignored")
	}
}

func TestThrottleCollapsesInvalidation(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }

	th.Enqueue(Event{Type: EventWorkspaceChanged}, send)
	th.Enqueue(Event{Type: EventWorkspaceChanged}, send)
	th.Enqueue(Event{Type: EventInvalidated}, send)

	select {
	case ev := <-got:
		if ev.Type != EventInvalidated {
			t.Fatalf("expected invalidation, got %v", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("unexpected extra event %v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
