// Package catalog runs the template and location catalog commands.
package catalog

import (
	"context"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/template"
)

type Templates struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
}

func (n *Templates) Do(ctx context.Context) error {
	list := n.Service.Templates()
	if n.JSON {
		return n.Printer.JSON(list)
	}
	n.Printer.TitleWithCount("Templates", len(list), "template")
	n.Printer.Templates(list...)
	return nil
}

// ShowTemplate prints the draft a template would seed.
type ShowTemplate struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Ref     string
}

func (n *ShowTemplate) Do(ctx context.Context) error {
	t, err := n.Service.ResolveTemplate(n.Ref)
	if err != nil {
		return err
	}
	d := n.Service.ApplyTemplate(t.ID)
	if n.JSON {
		return n.Printer.JSON(d)
	}
	n.Printer.Templates(t)
	n.Printer.Notice("%s", d.Content)
	return nil
}

type AddTemplate struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Name    string
	Content string
	Tags    []string
}

func (n *AddTemplate) Do(ctx context.Context) error {
	t, err := n.Service.AddTemplate(n.Name, n.Content, n.Tags)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(t)
	}
	n.Printer.Templates(t)
	return nil
}

// UpdateTemplate edits a template. Nil fields are left alone.
type UpdateTemplate struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Ref     string
	Name    *string
	Content *string
	Tags    *[]string
}

func (n *UpdateTemplate) Do(ctx context.Context) error {
	current, err := n.Service.ResolveTemplate(n.Ref)
	if err != nil {
		return err
	}
	t, err := n.Service.UpdateTemplate(current.ID, func(t *template.Template) {
		if n.Name != nil {
			t.Name = *n.Name
		}
		if n.Content != nil {
			t.ContentTemplate = *n.Content
		}
		if n.Tags != nil {
			t.DefaultTags = *n.Tags
		}
	})
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(t)
	}
	n.Printer.Templates(t)
	return nil
}

type DeleteTemplate struct {
	Service *app.Service
	Ref     string
}

func (n *DeleteTemplate) Do(ctx context.Context) error {
	t, err := n.Service.ResolveTemplate(n.Ref)
	if err != nil {
		return err
	}
	return n.Service.DeleteTemplate(t.ID)
}

type Locations struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
}

func (n *Locations) Do(ctx context.Context) error {
	list := n.Service.Locations()
	if n.JSON {
		return n.Printer.JSON(list)
	}
	n.Printer.TitleWithCount("Locations", len(list), "location")
	n.Printer.Locations(list...)
	return nil
}

type AddLocation struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Name    string
}

func (n *AddLocation) Do(ctx context.Context) error {
	l, err := n.Service.AddLocation(n.Name)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(l)
	}
	n.Printer.Locations(l)
	return nil
}

type DeleteLocation struct {
	Service *app.Service
	Ref     string
}

func (n *DeleteLocation) Do(ctx context.Context) error {
	l, err := n.Service.ResolveLocation(n.Ref)
	if err != nil {
		return err
	}
	return n.Service.DeleteLocation(l.ID)
}
