// Package report runs the activity report.
package report

import (
	"context"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
)

type Report struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Window  time.Duration
	Label   string
}

func (n *Report) Do(ctx context.Context) error {
	until := n.Service.Now()
	result := n.Service.Report(until.Add(-n.Window), until)
	if n.JSON {
		return n.Printer.JSON(result)
	}
	n.Printer.Report(result, n.Label)
	return nil
}
