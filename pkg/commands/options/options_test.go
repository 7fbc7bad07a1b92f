package options

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/folio/pkg/app"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one   two three", 8))
}

func TestHandleErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := color.Output
	color.Output = buf
	t.Cleanup(func() { color.Output = prev })

	o := &OutputOptions{JSON: true}
	err := o.HandleError(&app.NotFoundError{Kind: "project", ID: "x"})
	require.Error(t, err)
	assert.True(t, app.IsNotFound(err))
	var reported *ReportedError
	assert.True(t, errors.As(err, &reported))
	assert.JSONEq(t, `{"error":"app: project \"x\" not found","kind":"not_found"}`, buf.String())

	plain := &OutputOptions{}
	err = errors.New("boom")
	assert.Equal(t, err, plain.HandleError(err))
}

func TestCalendarResolveDefaults(t *testing.T) {
	now := time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC)
	o := &CalendarOptions{}
	month, wd, err := o.Resolve(now, time.Monday, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), month)
	assert.Equal(t, time.Monday, wd)

	o = &CalendarOptions{Month: "2025-01", FirstWeekday: "sun"}
	month, wd, err = o.Resolve(now, time.Monday, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.January, month.Month())
	assert.Equal(t, time.Sunday, wd)
}

func TestDraftTags(t *testing.T) {
	o := &DraftOptions{Tags: " wood, ,glue "}
	assert.Equal(t, []string{"wood", "glue"}, o.TagList())
}

func TestWindowEmpty(t *testing.T) {
	d, label, err := (&WindowOptions{}).Get()
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.Empty(t, label)
}
