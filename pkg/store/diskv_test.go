package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
)

func TestLoadWorkspaceNotFound(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	_, err = p.LoadWorkspace(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))

	var list []entry.Location
	err = p.LoadCatalog(context.Background(), CatalogLocations, &list)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWorkspaceRoundTripsThroughDisk(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ws := project.NewWorkspace()
	ws.Projects = append(ws.Projects, project.Project{
		ID: "p1", Title: "Chair", Status: project.StatusInProgress,
		CreatedAt: created, UpdatedAt: created,
		Entries: []entry.Entry{{ID: "e1", Title: "Sketch", Tags: []string{"wood"}, CreatedAt: created, UpdatedAt: created}},
	})
	require.NoError(t, p.SaveWorkspace(ctx, ws))

	raw, err := os.ReadFile(filepath.Join(base, "workspace"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"subProjects"`)
	assert.Contains(t, string(raw), `"In Progress"`)

	// A second store over the same path sees the document.
	again, err := Load(testConfig{path: base})
	require.NoError(t, err)
	got, err := again.LoadWorkspace(ctx)
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "Sketch", got.Projects[0].Entries[0].Title)
}

func TestReadSeesExternalEdits(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, p.SaveCatalog(ctx, CatalogLocations, []entry.Location{{ID: "l1", Name: "Shed"}}))
	var first []entry.Location
	require.NoError(t, p.LoadCatalog(ctx, CatalogLocations, &first))

	path := filepath.Join(base, "catalog", "locations")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"l2","name":"Garage"}]`), 0o644))

	var second []entry.Location
	require.NoError(t, p.LoadCatalog(ctx, CatalogLocations, &second))
	require.Len(t, second, 1)
	assert.Equal(t, "Garage", second[0].Name)
}

func TestKeyTransformsAreInverse(t *testing.T) {
	for _, key := range []string{workspaceKey, catalogKey(CatalogTemplates)} {
		assert.Equal(t, key, pathToKeyTransform(keyToPathTransform(key)))
	}
}
