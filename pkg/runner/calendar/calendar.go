// Package calendar runs the month view.
package calendar

import (
	"context"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
)

type Month struct {
	Service      *app.Service
	Printer      *printers.PrettyPrint
	JSON         bool
	Project      string
	Month        time.Time
	FirstWeekday time.Weekday
}

func (n *Month) Do(ctx context.Context) error {
	projectID := ""
	if n.Project != "" {
		p, err := n.Service.ResolveProject(n.Project)
		if err != nil {
			return err
		}
		projectID = p.ID
	}
	view, err := n.Service.MonthGrid(n.Month, n.FirstWeekday, projectID)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(view)
	}
	n.Printer.Month(view.Grid, view.Milestones)
	return nil
}
