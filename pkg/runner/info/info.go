package info

import (
	"context"
	"fmt"
	"os"

	"github.com/gosuri/uitable"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/store"
)

type Info struct {
	Settings *store.Settings
	Service  *app.Service
	Printer  *printers.PrettyPrint
	JSON     bool
}

// Summary is the machine readable form of Info.
type Summary struct {
	ConfigPath   string `json:"configPath,omitempty"`
	Path         string `json:"path"`
	MediaPath    string `json:"mediaPath"`
	ExportPath   string `json:"exportPath"`
	Timezone     string `json:"timezone"`
	FirstWeekday string `json:"firstWeekday"`
	Projects     int    `json:"projects"`
	Entries      int    `json:"entries"`
	Milestones   int    `json:"milestones"`
	Templates    int    `json:"templates"`
	Locations    int    `json:"locations"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Settings == nil {
		var err error
		if n.Settings, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("info: no service")
	}

	s := Summary{
		ConfigPath:   os.Getenv("FOLIO_CONFIG_PATH"),
		Path:         n.Settings.BasePath(),
		MediaPath:    n.Settings.MediaPath,
		ExportPath:   n.Settings.ExportPath,
		Timezone:     n.Service.Location().String(),
		FirstWeekday: n.Settings.FirstWeekday.String(),
		Templates:    len(n.Service.Templates()),
		Locations:    len(n.Service.Locations()),
	}
	for _, p := range n.Service.Workspace().Projects {
		s.Projects++
		s.Entries += len(p.Entries)
		s.Milestones += len(p.Milestones)
	}

	if n.JSON {
		return n.Printer.JSON(s)
	}

	configPath := s.ConfigPath
	if configPath == "" {
		configPath = "FOLIO_CONFIG_PATH env var not set"
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Config path:", configPath)
	tbl.AddRow("Workspace:", s.Path)
	tbl.AddRow("Media:", s.MediaPath)
	tbl.AddRow("Exports:", s.ExportPath)
	tbl.AddRow("Timezone:", s.Timezone)
	tbl.AddRow("Week starts:", s.FirstWeekday)
	tbl.AddRow("Projects:", s.Projects)
	tbl.AddRow("Entries:", s.Entries)
	tbl.AddRow("Milestones:", s.Milestones)
	tbl.AddRow("Templates:", s.Templates)
	tbl.AddRow("Locations:", s.Locations)
	n.Printer.Notice("%s", tbl)
	return nil
}
