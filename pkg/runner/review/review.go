// Package review lists in-progress projects that need attention.
package review

import (
	"context"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
)

type Review struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	// Stale marks projects untouched for this long. Zero only reports
	// overdue milestones.
	Stale time.Duration
}

func (n *Review) Do(ctx context.Context) error {
	var since time.Time
	if n.Stale > 0 {
		since = n.Service.Now().Add(-n.Stale)
	}
	candidates := n.Service.ReviewCandidates(since)
	if n.JSON {
		return n.Printer.JSON(candidates)
	}
	n.Printer.Review(candidates...)
	return nil
}
