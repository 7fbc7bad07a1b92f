// Package entry runs the journal entry commands.
package entry

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/timeline"
)

// Add writes a new entry. A template seeds content and tags; explicit flags
// win over the template values.
type Add struct {
	Service  *app.Service
	Printer  *printers.PrettyPrint
	JSON     bool
	Project  string
	Title    string
	Content  string
	Tags     []string
	Location string
	Template string
}

func (n *Add) Do(ctx context.Context) error {
	p, err := n.Service.ResolveProject(n.Project)
	if err != nil {
		return err
	}

	d := entry.Draft{}
	if n.Template != "" {
		t, err := n.Service.ResolveTemplate(n.Template)
		if err != nil {
			return err
		}
		d = n.Service.ApplyTemplate(t.ID)
	}
	d.Title = n.Title
	if n.Content != "" {
		d.Content = n.Content
	}
	if len(n.Tags) > 0 {
		d.Tags = append(d.Tags, n.Tags...)
	}
	if n.Location != "" {
		if d.Location, err = n.Service.ResolveLocation(n.Location); err != nil {
			return err
		}
	}

	e, err := n.Service.AddEntry(p.ID, d)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(e)
	}
	n.Printer.Title(p.Title)
	n.Printer.Entries(e)
	return nil
}

// List prints the entries of a project, or of every project, newest first.
type List struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Project string
	Since   time.Duration
}

func (n *List) Do(ctx context.Context) error {
	projectID := ""
	title := "All entries"
	if n.Project != "" {
		p, err := n.Service.ResolveProject(n.Project)
		if err != nil {
			return err
		}
		projectID, title = p.ID, p.Title
	}
	entries, err := n.Service.Entries(projectID)
	if err != nil {
		return err
	}
	if n.Since > 0 {
		entries = timeline.Within(entries, n.Since, n.Service.Now())
	}
	entries = timeline.SortNewestFirst(entries)
	if n.JSON {
		return n.Printer.JSON(entries)
	}
	n.Printer.TitleWithCount(title, len(entries), "entry")
	n.Printer.Entries(entries...)
	return nil
}

// Update edits fields of an entry. Nil fields are left alone.
type Update struct {
	Service  *app.Service
	Printer  *printers.PrettyPrint
	JSON     bool
	Project  string
	Ref      string
	Title    *string
	Content  *string
	Tags     *[]string
	Location *string
}

func (n *Update) Do(ctx context.Context) error {
	p, e, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	var loc *entry.Location
	if n.Location != nil && *n.Location != "" {
		if loc, err = n.Service.ResolveLocation(*n.Location); err != nil {
			return err
		}
	}
	updated, err := n.Service.UpdateEntry(p, e.ID, func(d *entry.Draft) {
		if n.Title != nil {
			d.Title = *n.Title
		}
		if n.Content != nil {
			d.Content = *n.Content
		}
		if n.Tags != nil {
			d.Tags = *n.Tags
		}
		if n.Location != nil {
			d.Location = loc
		}
	})
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(updated)
	}
	n.Printer.Entries(updated)
	return nil
}

type Delete struct {
	Service *app.Service
	Project string
	Ref     string
}

func (n *Delete) Do(ctx context.Context) error {
	p, e, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	return n.Service.DeleteEntry(p, e.ID)
}

// Attach uploads an image file to an entry and waits for the upload.
type Attach struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Project string
	Ref     string
	File    string
}

func (n *Attach) Do(ctx context.Context) error {
	p, e, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.File, err)
	}
	task, err := n.Service.AttachImage(ctx, p, e.ID, data)
	if err != nil {
		return err
	}
	m, err := task.Wait(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(m)
	}
	n.Printer.Notice("attached %s", m.URL)
	return nil
}

// Export renders an entry to a text document and prints where it went.
type Export struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Project string
	Ref     string
}

func (n *Export) Do(ctx context.Context) error {
	p, e, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	task, err := n.Service.ExportEntry(p, e.ID)
	if err != nil {
		return err
	}
	path, err := task.Wait(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(map[string]string{"entryId": e.ID, "path": path})
	}
	n.Printer.Notice("exported %s", path)
	return nil
}

func resolve(svc *app.Service, projectRef, entryRef string) (string, entry.Entry, error) {
	p, err := svc.ResolveProject(projectRef)
	if err != nil {
		return "", entry.Entry{}, err
	}
	e, err := svc.ResolveEntry(p.ID, entryRef)
	if err != nil {
		return "", entry.Entry{}, err
	}
	return p.ID, e, nil
}
