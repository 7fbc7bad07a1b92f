// Package project runs the project commands against the content store.
package project

import (
	"context"
	"strings"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/search"
)

type List struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Query   string
	Status  string
}

func (n *List) Do(ctx context.Context) error {
	projects := search.FilterProjects(n.Service.Workspace().Projects, n.Query)
	if n.Status != "" {
		status, err := project.ParseStatus(n.Status)
		if err != nil {
			return &app.ValidationError{Field: "status", Reason: err.Error()}
		}
		filtered := projects[:0]
		for _, p := range projects {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}
	if n.JSON {
		return n.Printer.JSON(projects)
	}
	n.Printer.TitleWithCount("Projects", len(projects), "project")
	n.Printer.Projects(projects...)
	return nil
}

type Show struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Ref     string
}

func (n *Show) Do(ctx context.Context) error {
	p, err := n.Service.ResolveProject(n.Ref)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(p)
	}
	n.Printer.Project(p)
	return nil
}

type Create struct {
	Service     *app.Service
	Printer     *printers.PrettyPrint
	JSON        bool
	Title       string
	Description string
	Status      string
}

func (n *Create) Do(ctx context.Context) error {
	status, err := project.ParseStatus(n.Status)
	if err != nil {
		return &app.ValidationError{Field: "status", Reason: err.Error()}
	}
	p, err := n.Service.CreateProject(n.Title, n.Description, status)
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(p)
	}
	n.Printer.Projects(p)
	return nil
}

// Update changes only the fields that were set.
type Update struct {
	Service     *app.Service
	Printer     *printers.PrettyPrint
	JSON        bool
	Ref         string
	Title       *string
	Description *string
	Status      *string
}

func (n *Update) Do(ctx context.Context) error {
	current, err := n.Service.ResolveProject(n.Ref)
	if err != nil {
		return err
	}
	var status project.Status
	if n.Status != nil {
		if status, err = project.ParseStatus(*n.Status); err != nil {
			return &app.ValidationError{Field: "status", Reason: err.Error()}
		}
	}
	p, err := n.Service.UpdateProject(current.ID, func(patch *app.ProjectPatch) {
		if n.Title != nil {
			patch.Title = *n.Title
		}
		if n.Description != nil {
			patch.Description = strings.TrimSpace(*n.Description)
		}
		if n.Status != nil {
			patch.Status = status
		}
	})
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(p)
	}
	n.Printer.Projects(p)
	return nil
}

type Delete struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Ref     string
}

func (n *Delete) Do(ctx context.Context) error {
	p, err := n.Service.ResolveProject(n.Ref)
	if err != nil {
		return err
	}
	return n.Service.DeleteProject(p.ID)
}
