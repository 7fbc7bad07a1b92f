// Package milestone runs the milestone commands.
package milestone

import (
	"context"
	"time"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/project"
)

type Add struct {
	Service     *app.Service
	Printer     *printers.PrettyPrint
	JSON        bool
	Project     string
	Title       string
	Description string
	Due         time.Time
}

func (n *Add) Do(ctx context.Context) error {
	p, err := n.Service.ResolveProject(n.Project)
	if err != nil {
		return err
	}
	m, err := n.Service.AddMilestone(p.ID, app.MilestoneDraft{
		Title:       n.Title,
		Description: n.Description,
		DueDate:     n.Due,
	})
	if err != nil {
		return err
	}
	return show(n.Printer, n.JSON, p, m)
}

// List shows open milestones soonest first, or completed ones most recently
// due first.
type List struct {
	Service   *app.Service
	Printer   *printers.PrettyPrint
	JSON      bool
	Project   string
	Completed bool
	All       bool
}

func (n *List) Do(ctx context.Context) error {
	projectID := ""
	if n.Project != "" {
		p, err := n.Service.ResolveProject(n.Project)
		if err != nil {
			return err
		}
		projectID = p.ID
	}

	var (
		refs  []project.MilestoneRef
		err   error
		title = "Upcoming"
	)
	switch {
	case n.All:
		var open, done []project.MilestoneRef
		if open, err = n.Service.Upcoming(projectID); err == nil {
			done, err = n.Service.Completed(projectID)
		}
		refs, title = append(open, done...), "Milestones"
	case n.Completed:
		refs, err = n.Service.Completed(projectID)
		title = "Completed"
	default:
		refs, err = n.Service.Upcoming(projectID)
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return n.Printer.JSON(refs)
	}
	n.Printer.TitleWithCount(title, len(refs), "milestone")
	n.Printer.Milestones(refs...)
	return nil
}

// Update edits a milestone. Nil fields are left alone.
type Update struct {
	Service     *app.Service
	Printer     *printers.PrettyPrint
	JSON        bool
	Project     string
	Ref         string
	Title       *string
	Description *string
	Due         *time.Time
}

func (n *Update) Do(ctx context.Context) error {
	p, m, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	m, err = n.Service.UpdateMilestone(p.ID, m.ID, func(d *app.MilestoneDraft) {
		if n.Title != nil {
			d.Title = *n.Title
		}
		if n.Description != nil {
			d.Description = *n.Description
		}
		if n.Due != nil {
			d.DueDate = *n.Due
		}
	})
	if err != nil {
		return err
	}
	return show(n.Printer, n.JSON, p, m)
}

// Toggle flips the completion flag.
type Toggle struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	JSON    bool
	Project string
	Ref     string
}

func (n *Toggle) Do(ctx context.Context) error {
	p, m, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	if m, err = n.Service.ToggleMilestoneCompletion(p.ID, m.ID); err != nil {
		return err
	}
	return show(n.Printer, n.JSON, p, m)
}

type Delete struct {
	Service *app.Service
	Project string
	Ref     string
}

func (n *Delete) Do(ctx context.Context) error {
	p, m, err := resolve(n.Service, n.Project, n.Ref)
	if err != nil {
		return err
	}
	return n.Service.DeleteMilestone(p.ID, m.ID)
}

func resolve(svc *app.Service, projectRef, ref string) (project.Project, project.Milestone, error) {
	p, err := svc.ResolveProject(projectRef)
	if err != nil {
		return project.Project{}, project.Milestone{}, err
	}
	m, err := svc.ResolveMilestone(p.ID, ref)
	if err != nil {
		return project.Project{}, project.Milestone{}, err
	}
	return p, m, nil
}

func show(pp *printers.PrettyPrint, asJSON bool, p project.Project, m project.Milestone) error {
	if asJSON {
		return pp.JSON(m)
	}
	pp.Milestones(project.MilestoneRef{ProjectID: p.ID, ProjectTitle: p.Title, Milestone: m})
	return nil
}
