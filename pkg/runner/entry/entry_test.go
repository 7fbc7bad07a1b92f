package entry

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/export"
	"tableflip.dev/folio/pkg/media"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/store"
)

func newService(t *testing.T) (*app.Service, *bytes.Buffer, *printers.PrettyPrint) {
	t.Helper()
	base := t.TempDir()
	p, err := store.Load(&store.Settings{Path: filepath.Join(base, "db")})
	require.NoError(t, err)

	now := time.Date(2025, 3, 18, 9, 30, 0, 0, time.UTC)
	svc := app.New(p,
		app.WithUploader(media.NewDiskStore(filepath.Join(base, "media"), zap.NewNop())),
		app.WithExporter(export.NewTextExporter(filepath.Join(base, "exports"), zap.NewNop())),
		app.WithClock(func() time.Time { return now }),
		app.WithLocation(time.UTC),
	)
	require.NoError(t, svc.Load(context.Background()))
	t.Cleanup(func() { _ = svc.Close(context.Background()) })

	_, err = svc.CreateProject("Oak Chair", "", project.StatusInProgress)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	return svc, buf, &printers.PrettyPrint{Out: buf, Plain: true, Location: time.UTC}
}

func TestAddAppliesTemplateAndLocation(t *testing.T) {
	svc, buf, pp := newService(t)

	add := &Add{
		Service:  svc,
		Printer:  pp,
		JSON:     true,
		Project:  "oak chair",
		Title:    "Glued the legs",
		Tags:     []string{"oak"},
		Location: "workshop",
		Template: "daily progress",
	}
	require.NoError(t, add.Do(context.Background()))

	var got entry.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Glued the legs", got.Title)
	assert.Equal(t, []string{"daily", "oak"}, got.Tags)
	assert.True(t, strings.HasPrefix(got.Content, "Today I worked on:"))
	require.NotNil(t, got.Location)
	assert.Equal(t, "Workshop", got.Location.Name)
}

func TestAddRequiresTitle(t *testing.T) {
	svc, _, pp := newService(t)

	err := (&Add{Service: svc, Printer: pp, Project: "Oak Chair"}).Do(context.Background())
	assert.True(t, app.IsValidation(err))
}

func TestAddUnknownProject(t *testing.T) {
	svc, _, pp := newService(t)

	err := (&Add{Service: svc, Printer: pp, Project: "Bench", Title: "x"}).Do(context.Background())
	assert.True(t, app.IsNotFound(err))
}

func TestUpdateAndList(t *testing.T) {
	svc, buf, pp := newService(t)
	ctx := context.Background()

	require.NoError(t, (&Add{Service: svc, Printer: pp, Project: "Oak Chair", Title: "Cut tenons"}).Do(ctx))
	title := "Cut and fitted tenons"
	require.NoError(t, (&Update{Service: svc, Printer: pp, Project: "Oak Chair", Ref: "cut tenons", Title: &title}).Do(ctx))

	buf.Reset()
	require.NoError(t, (&List{Service: svc, Printer: pp, Project: "Oak Chair"}).Do(ctx))
	assert.Contains(t, buf.String(), "Cut and fitted tenons")
	assert.Contains(t, buf.String(), "1 entry")
}

func TestAttachAndExport(t *testing.T) {
	svc, buf, pp := newService(t)
	ctx := context.Background()

	require.NoError(t, (&Add{Service: svc, Printer: pp, Project: "Oak Chair", Title: "Dry fit", Content: "Everything lines up."}).Do(ctx))

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var pngData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, img))
	file := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, os.WriteFile(file, pngData.Bytes(), 0o644))

	buf.Reset()
	require.NoError(t, (&Attach{Service: svc, Printer: pp, Project: "Oak Chair", Ref: "dry fit", File: file}).Do(ctx))
	assert.Contains(t, buf.String(), "attached file://")

	e, err := svc.ResolveEntry(mustProject(t, svc).ID, "dry fit")
	require.NoError(t, err)
	require.Len(t, e.Media, 1)
	assert.False(t, e.Media[0].Pending)

	buf.Reset()
	require.NoError(t, (&Export{Service: svc, Printer: pp, JSON: true, Project: "Oak Chair", Ref: "dry fit"}).Do(ctx))
	var out map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	data, err := os.ReadFile(out["path"])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Everything lines up.")
}

func mustProject(t *testing.T, svc *app.Service) project.Project {
	t.Helper()
	p, err := svc.ResolveProject("Oak Chair")
	require.NoError(t, err)
	return p
}
