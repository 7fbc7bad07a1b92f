package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/entry"
)

func TestResolveProject(t *testing.T) {
	s, _ := newTestService(t)
	chair, _ := s.CreateProject("Chair", "", "")
	_, _ = s.CreateProject("Lamp", "", "")

	got, err := s.ResolveProject(chair.ID)
	require.NoError(t, err)
	assert.Equal(t, chair.ID, got.ID)

	got, err = s.ResolveProject("chair")
	require.NoError(t, err)
	assert.Equal(t, chair.ID, got.ID)

	// Test ids are id-1, id-2, ...; "id-" prefixes every one of them.
	_, err = s.ResolveProject("id-")
	assert.True(t, IsValidation(err))

	_, err = s.ResolveProject("table")
	assert.True(t, IsNotFound(err))

	_, err = s.ResolveProject(" ")
	assert.True(t, IsValidation(err))
}

func TestResolveEntryAndLocation(t *testing.T) {
	s, _ := newTestService(t)
	p, _ := s.CreateProject("Chair", "", "")
	e, err := s.AddEntry(p.ID, entry.Draft{Title: "Glue-up"})
	require.NoError(t, err)

	got, err := s.ResolveEntry(p.ID, "GLUE-UP")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)

	loc, err := s.ResolveLocation("workshop")
	require.NoError(t, err)
	assert.Equal(t, "Workshop", loc.Name)
}
