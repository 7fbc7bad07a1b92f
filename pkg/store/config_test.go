package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("path: " + filepath.Join(dir, "db") + "\nfirst_weekday: sunday\ntimezone: UTC\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".folio.yaml"), data, 0o644))
	t.Setenv("FOLIO_CONFIG_PATH", dir)

	s, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "db"), s.BasePath())
	assert.Equal(t, filepath.Join(dir, "db-media"), s.MediaPath)
	assert.Equal(t, filepath.Join(dir, "db-exports"), s.ExportPath)
	assert.Equal(t, time.Sunday, s.FirstWeekday)
	assert.Equal(t, "UTC", s.Location.String())
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_CONFIG_PATH", dir)
	t.Setenv("FOLIO_PATH", filepath.Join(dir, "env"))
	t.Setenv("FOLIO_LOG_LEVEL", "warn")

	s, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env"), s.Path)
	assert.Equal(t, time.Monday, s.FirstWeekday)
	assert.Equal(t, "warn", s.Log.Level)
}

func TestDefaultDirsSitOutsideTheStore(t *testing.T) {
	base := filepath.Join(t.TempDir(), ".folio.db")
	t.Setenv("FOLIO_CONFIG_PATH", t.TempDir())
	t.Setenv("FOLIO_PATH", base)

	s, err := LoadConfig()
	require.NoError(t, err)
	for _, dir := range []string{s.MediaPath, s.ExportPath} {
		rel, err := filepath.Rel(base, dir)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(rel, ".."), "%s is inside %s", dir, base)
	}
	assert.Equal(t, filepath.Join(filepath.Dir(base), ".folio-media"), s.MediaPath)
}

func TestLoadConfigRejectsBadWeekday(t *testing.T) {
	t.Setenv("FOLIO_CONFIG_PATH", t.TempDir())
	t.Setenv("FOLIO_FIRST_WEEKDAY", "someday")

	_, err := LoadConfig()
	assert.Error(t, err)
}
