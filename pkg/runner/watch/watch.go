// Package watch follows workspace changes until the context ends.
package watch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
)

// Watch reloads the workspace when another process changes it on disk and
// prints every content store event it sees.
type Watch struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Log     *zap.Logger
	JSON    bool
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Log == nil {
		n.Log = zap.NewNop()
	}
	changes, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	events, err := n.Service.Subscribe(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-changes:
			if !ok {
				return nil
			}
			n.Log.Debug("store changed", zap.Stringer("type", ch.Type), zap.String("catalog", string(ch.Catalog)))
			if err := n.Service.Reload(ctx); err != nil {
				n.Log.Warn("reload failed", zap.Error(err))
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.print(ev); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) print(ev app.Event) error {
	if n.JSON {
		return n.Printer.JSON(ev)
	}
	line := ev.At.In(n.Service.Location()).Format(time.TimeOnly) + "  " + string(ev.Kind)
	for _, id := range []string{ev.ProjectID, ev.EntryID, ev.MilestoneID} {
		if id != "" {
			line += "  " + id
		}
	}
	if ev.Err != "" {
		line += "  error: " + ev.Err
	}
	n.Printer.Notice("%s", line)
	return nil
}
