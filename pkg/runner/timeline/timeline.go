// Package timeline runs the day grouped entry view.
package timeline

import (
	"context"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/timeline"
)

type Timeline struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Project string
	Query   string
	Tag     string
	Since   time.Duration
}

func (n *Timeline) Do(ctx context.Context) error {
	projectID := ""
	if n.Project != "" {
		p, err := n.Service.ResolveProject(n.Project)
		if err != nil {
			return err
		}
		projectID = p.ID
	}
	days, err := n.Service.Timeline(projectID, n.Query, n.Tag)
	if err != nil {
		return err
	}
	if n.Since > 0 {
		days = timeline.GroupByDay(timeline.Within(timeline.Flatten(days), n.Since, n.Service.Now()), n.Service.Location())
	}
	if n.JSON {
		return n.Printer.JSON(days)
	}
	n.Printer.Timeline(days)
	return nil
}
