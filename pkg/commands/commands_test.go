package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/media"
	"tableflip.dev/folio/pkg/project"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := color.Output
	color.Output = buf
	t.Cleanup(func() { color.Output = prev })

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func setupWorkspace(t *testing.T) {
	t.Helper()
	t.Setenv("FOLIO_CONFIG_PATH", t.TempDir())
	t.Setenv("FOLIO_PATH", t.TempDir())
	t.Setenv("FOLIO_TIMEZONE", "UTC")
	t.Setenv("FOLIO_LOG_LEVEL", "error")
}

func TestProjectAndEntryRoundTrip(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "project", "create", "Oak", "Chair", "--status", "in progress", "--json")
	require.NoError(t, err)
	var p project.Project
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "Oak Chair", p.Title)
	assert.Equal(t, project.StatusInProgress, p.Status)

	out, err = execute(t, "entry", "add", "-p", "oak chair", "Glued", "the", "legs", "--tags", "glue, oak", "--json")
	require.NoError(t, err)
	var e entry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "Glued the legs", e.Title)
	assert.Equal(t, []string{"glue", "oak"}, e.Tags)

	out, err = execute(t, "search", "--tag", "oak", "--json")
	require.NoError(t, err)
	var found []entry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &found))
	require.Len(t, found, 1)
	assert.Equal(t, e.ID, found[0].ID)
}

func TestReviewFlagsOverdueProjects(t *testing.T) {
	setupWorkspace(t)

	_, err := execute(t, "project", "create", "Bench", "--status", "in progress")
	require.NoError(t, err)
	_, err = execute(t, "milestone", "add", "-p", "bench", "Flatten", "top", "--due", "2001-02-03")
	require.NoError(t, err)

	out, err := execute(t, "review", "--json")
	require.NoError(t, err)
	var candidates []app.ReviewCandidate
	require.NoError(t, json.Unmarshal([]byte(out), &candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, "Bench", candidates[0].ProjectTitle)
	assert.Equal(t, 1, candidates[0].Overdue)
}

func TestJSONErrors(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "project", "show", "missing", "--json")
	require.Error(t, err, "a JSON error still fails the command")
	assert.True(t, app.IsNotFound(err))
	assert.Contains(t, out, `"kind":"not_found"`)
	assert.Equal(t, 1, strings.Count(out, "not found"), "cobra does not print it again")

	_, err = execute(t, "project", "show", "missing")
	assert.True(t, app.IsNotFound(err))
}

func TestJoinCloseDropsRepeats(t *testing.T) {
	upload := &app.MediaUploadError{Phase: media.PhaseThumbnail, Err: errors.New("disk full")}
	fnErr := fmt.Errorf("attach: %w", upload)
	saveErr := errors.New("save failed")

	err := joinClose(fnErr, errors.Join(errors.Join(upload, saveErr), nil))
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "disk full"))
	assert.ErrorIs(t, err, saveErr)

	assert.NoError(t, joinClose(nil, nil))
	assert.Equal(t, "save failed", joinClose(nil, saveErr).Error())
	assert.Equal(t, fnErr.Error(), joinClose(fnErr, upload).Error())
}

func TestTemplatesSeeded(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "template", "--json")
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 2)
}
