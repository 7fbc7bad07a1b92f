// Package search runs entry search.
package search

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/search"
	"tableflip.dev/folio/pkg/timeline"
)

type Search struct {
	Service  *app.Service
	Printer  *printers.PrettyPrint
	JSON     bool
	Project  string
	Query    string
	Tag      string
	Since    time.Duration
	ListTags bool
}

func (n *Search) Do(ctx context.Context) error {
	projectID := ""
	if n.Project != "" {
		p, err := n.Service.ResolveProject(n.Project)
		if err != nil {
			return err
		}
		projectID = p.ID
	}

	entries, err := n.Service.Search(projectID, n.Query, n.Tag)
	if err != nil {
		return err
	}
	if n.Since > 0 {
		entries = timeline.Within(entries, n.Since, n.Service.Now())
	}

	if n.ListTags {
		tags := search.Tags(entries)
		if n.JSON {
			return n.Printer.JSON(tags)
		}
		n.Printer.TitleWithCount("Tags", len(tags), "tag")
		for _, t := range tags {
			n.Printer.Notice("  #%s", t)
		}
		return nil
	}

	if n.JSON {
		return n.Printer.JSON(entries)
	}
	n.Printer.TitleWithCount(n.title(), len(entries), "entry")
	n.Printer.Entries(entries...)
	return nil
}

func (n *Search) title() string {
	switch {
	case n.Query != "" && n.Tag != "":
		return fmt.Sprintf("%q in #%s", n.Query, n.Tag)
	case n.Tag != "":
		return "#" + n.Tag
	case n.Query != "":
		return fmt.Sprintf("%q", n.Query)
	default:
		return "All entries"
	}
}
