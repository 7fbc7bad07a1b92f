package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/folio/pkg/logging"
	"tableflip.dev/folio/pkg/timeutil"
)

// Config locates the on-disk workspace.
type Config interface {
	BasePath() string
}

// Settings is the full folio configuration resolved from .folio.yaml and
// FOLIO_* environment variables.
type Settings struct {
	Path         string
	MediaPath    string
	ExportPath   string
	FirstWeekday time.Weekday
	Location     *time.Location
	Log          logging.Options
}

func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig reads .folio.yaml from $FOLIO_CONFIG_PATH or the working directory.
// A missing file is not an error; defaults apply.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.folio.db")
	v.SetDefault("first_weekday", "monday")
	v.SetDefault("timezone", "Local")
	v.SetDefault("log.level", "info")
	v.SetConfigName(".folio") // .yaml is implicit
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("FOLIO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return settingsFrom(v)
}

func settingsFrom(v *viper.Viper) (*Settings, error) {
	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	s := &Settings{
		Path:       base,
		MediaPath:  sibling(base, "media"),
		ExportPath: sibling(base, "exports"),
		Log: logging.Options{
			File:       v.GetString("log.file"),
			Level:      v.GetString("log.level"),
			Production: v.GetBool("log.production"),
		},
	}
	if p := v.GetString("media_path"); p != "" {
		if s.MediaPath, err = homedir.Expand(p); err != nil {
			return nil, fmt.Errorf("store: expand media_path: %w", err)
		}
	}
	if p := v.GetString("export_path"); p != "" {
		if s.ExportPath, err = homedir.Expand(p); err != nil {
			return nil, fmt.Errorf("store: expand export_path: %w", err)
		}
	}
	if s.Log.File != "" {
		if s.Log.File, err = homedir.Expand(s.Log.File); err != nil {
			return nil, fmt.Errorf("store: expand log.file: %w", err)
		}
	}

	if s.FirstWeekday, err = timeutil.ParseWeekday(v.GetString("first_weekday")); err != nil {
		return nil, fmt.Errorf("store: first_weekday: %w", err)
	}
	if s.Location, err = time.LoadLocation(v.GetString("timezone")); err != nil {
		return nil, fmt.Errorf("store: timezone: %w", err)
	}
	return s, nil
}

// sibling names a directory next to the store base, so uploads and exports
// never show up in Watch. "~/.folio.db" gets "~/.folio-media".
func sibling(base, name string) string {
	return strings.TrimSuffix(base, filepath.Ext(base)) + "-" + name
}
