package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/entry"
)

func sampleWorkspace() *Workspace {
	w := NewWorkspace()
	w.Projects = append(w.Projects,
		Project{
			ID:    "p1",
			Title: "Light Installation",
			Entries: []entry.Entry{
				{ID: "e1", Title: "Sketches", Media: []entry.Media{{ID: "m1"}}},
				{ID: "e2", Title: "Materials"},
			},
			Milestones: []Milestone{{ID: "ms1", Title: "Finalize Concept"}},
		},
		Project{ID: "p2", Title: "Catalogue", Entries: []entry.Entry{{ID: "e3", Title: "Layout"}}},
	)
	return w
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"":            StatusConcept,
		"concept":     StatusConcept,
		"In Progress": StatusInProgress,
		"in-progress": StatusInProgress,
		"DONE":        StatusCompleted,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseStatus("paused")
	assert.Error(t, err)
}

func TestRemoveProjectCascades(t *testing.T) {
	w := sampleWorkspace()
	require.True(t, w.RemoveProject("p1"))
	assert.False(t, w.RemoveProject("p1"))

	require.Len(t, w.Projects, 1)
	assert.Equal(t, "p2", w.Projects[0].ID)
	assert.Empty(t, w.Milestones("p1"))
	assert.Empty(t, w.Entries("p1"))
	for _, e := range w.Entries("") {
		assert.NotEqual(t, "e1", e.ID)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	w := sampleWorkspace()
	w.Projects = append(w.Projects, Project{ID: "p3"})
	require.True(t, w.RemoveProject("p2"))
	assert.Equal(t, "p1", w.Projects[0].ID)
	assert.Equal(t, "p3", w.Projects[1].ID)

	p, ok := w.Find("p1")
	require.True(t, ok)
	require.True(t, p.RemoveEntry("e1"))
	assert.Equal(t, "e2", p.Entries[0].ID)
}

func TestCloneIsIndependent(t *testing.T) {
	w := sampleWorkspace()
	cp := w.Clone()
	cp.Projects[0].Entries[0].Title = "changed"
	cp.Projects[0].Milestones[0].IsCompleted = true

	assert.Equal(t, "Sketches", w.Projects[0].Entries[0].Title)
	assert.False(t, w.Projects[0].Milestones[0].IsCompleted)
}

func TestTouchNeverPrecedesCreation(t *testing.T) {
	created := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	p := Project{CreatedAt: created, UpdatedAt: created}
	p.Touch(created.Add(-time.Hour))
	assert.Equal(t, created, p.UpdatedAt)
	p.Touch(created.Add(time.Hour))
	assert.Equal(t, created.Add(time.Hour), p.UpdatedAt)
}

func TestMilestonesCarryProject(t *testing.T) {
	refs := sampleWorkspace().Milestones("")
	require.Len(t, refs, 1)
	assert.Equal(t, "p1", refs[0].ProjectID)
	assert.Equal(t, "Light Installation", refs[0].ProjectTitle)
}
