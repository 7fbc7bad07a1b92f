package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
)

var entries = []entry.Entry{
	{ID: "1", Title: "Initial Concept Sketches", Content: "LED strips and motion sensors", Tags: []string{"concept", "sketches"}},
	{ID: "2", Title: "Material Research", Content: "Acrylic vs. frosted glass", Tags: []string{"materials", "research"}},
	{ID: "3", Title: "Wiring", Content: "Soldered the first LED panel", Tags: []string{"Electronics"}},
}

func ids(list []entry.Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterEntriesIdentity(t *testing.T) {
	assert.Equal(t, entries, FilterEntries(entries, "", ""))
	assert.Nil(t, FilterEntries(nil, "", ""))
}

func TestFilterEntriesQuery(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, ids(FilterEntries(entries, "led", "")))
	assert.Equal(t, []string{"2"}, ids(FilterEntries(entries, "RESEARCH", "")))
	assert.Equal(t, []string{"3"}, ids(FilterEntries(entries, "electro", "")))
	assert.Empty(t, FilterEntries(entries, "paint", ""))
}

func TestFilterEntriesTagIsExact(t *testing.T) {
	assert.Equal(t, []string{"3"}, ids(FilterEntries(entries, "", "Electronics")))
	assert.Empty(t, FilterEntries(entries, "", "electronics"))
	assert.Empty(t, FilterEntries(entries, "", "concepts"))
}

func TestFilterEntriesIntersects(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(FilterEntries(entries, "led", "concept")))
	assert.Empty(t, FilterEntries(entries, "glass", "concept"))
}

func TestFilterEntriesLeavesInputAlone(t *testing.T) {
	in := append([]entry.Entry(nil), entries...)
	_ = FilterEntries(in, "led", "")
	assert.Equal(t, entries, in)
}

func TestScenarioSketchSearch(t *testing.T) {
	e := entry.Entry{ID: "s", Title: "Sketches", Tags: []string{"concept", "sketches"}}
	assert.Equal(t, []entry.Entry{e}, FilterEntries([]entry.Entry{e}, "sketch", ""))
	assert.Empty(t, FilterEntries([]entry.Entry{e}, "paint", ""))
}

func TestFilterProjects(t *testing.T) {
	projects := []project.Project{
		{ID: "a", Title: "Light Installation", Description: "east gallery"},
		{ID: "b", Title: "Catalogue"},
	}
	assert.Len(t, FilterProjects(projects, ""), 2)
	got := FilterProjects(projects, "GALLERY")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "a", got[0].ID)
	}
}

func TestTags(t *testing.T) {
	list := append(entries, entry.Entry{Tags: []string{"concept", "concept"}})
	assert.Equal(t, []string{"Electronics", "concept", "materials", "research", "sketches"}, Tags(list))
}
