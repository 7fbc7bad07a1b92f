package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/template"
	"tableflip.dev/folio/pkg/urgency"
)

const layoutDate = "2006-01-02"

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	return tbl
}

func (pp *PrettyPrint) Projects(projects ...project.Project) {
	if len(projects) == 0 {
		pp.none()
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("Title"), bold("Status"), bold("Entries"), bold("Milestones"), bold("Updated"))
	for _, p := range projects {
		tbl.AddRow(shortID(p.ID), p.Title, string(p.Status), len(p.Entries), len(p.Milestones),
			p.UpdatedAt.In(pp.loc()).Format(layoutDate+" "+layoutTime))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Project prints a project header with its description, entries and milestones.
func (pp *PrettyPrint) Project(p project.Project) {
	pp.Title(p.Title)
	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(pp.out(), "%s · %s · created %s\n", shortID(p.ID), p.Status, p.CreatedAt.In(pp.loc()).Format(layoutDate))
	if d := strings.TrimSpace(p.Description); d != "" {
		_, _ = fmt.Fprintln(pp.out(), d)
	}
	pp.NewLine()
	pp.TitleWithCount("Entries", len(p.Entries), "entry")
	pp.Entries(p.Entries...)

	refs := make([]project.MilestoneRef, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		refs = append(refs, project.MilestoneRef{ProjectID: p.ID, ProjectTitle: p.Title, Milestone: m})
	}
	pp.TitleWithCount("Milestones", len(refs), "milestone")
	pp.Milestones(urgency.ByDueDate(refs)...)
}

// Milestones prints a milestone table with the urgency tier last so styling
// does not disturb column alignment.
func (pp *PrettyPrint) Milestones(refs ...project.MilestoneRef) {
	if len(refs) == 0 {
		pp.none()
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("Due"), bold("Project"), bold("Milestone"), bold("Urgency"))
	for _, r := range refs {
		tier := urgency.Of(r.Milestone, pp.now(), pp.loc())
		done := " "
		if r.Milestone.IsCompleted {
			done = "✓"
		}
		tbl.AddRow(shortID(r.Milestone.ID), r.Milestone.DueDate.In(pp.loc()).Format(layoutDate), r.ProjectTitle,
			done+" "+r.Milestone.Title, pp.tierStyle(tier).Render(string(tier)))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Templates(list ...template.Template) {
	if len(list) == 0 {
		pp.none()
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("Name"), bold("Tags"), bold("Content"))
	for _, t := range list {
		first, _, _ := strings.Cut(t.ContentTemplate, "\n")
		tbl.AddRow(shortID(t.ID), t.Name, strings.Join(t.DefaultTags, ", "), first)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Locations(list ...entry.Location) {
	if len(list) == 0 {
		pp.none()
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("Name"))
	for _, l := range list {
		tbl.AddRow(shortID(l.ID), l.Name)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Report(result app.ReportResult, label string) {
	since := result.Since.In(pp.loc()).Format(layoutDate + " " + layoutTime)
	until := result.Until.In(pp.loc()).Format(layoutDate + " " + layoutTime)
	pp.Title(fmt.Sprintf("Report · last %s (%s → %s)", label, since, until))

	if result.Total == 0 {
		_, _ = fmt.Fprintln(pp.out(), "  No activity found in this window.")
		pp.NewLine()
		return
	}
	for _, section := range result.Sections {
		pp.NewLine()
		pp.TitleWithCount(section.ProjectTitle, len(section.Entries)+len(section.Milestones), "item")
		if len(section.Entries) > 0 {
			pp.Entries(section.Entries...)
		}
		if len(section.Milestones) > 0 {
			refs := make([]project.MilestoneRef, 0, len(section.Milestones))
			for _, m := range section.Milestones {
				refs = append(refs, project.MilestoneRef{ProjectID: section.ProjectID, ProjectTitle: section.ProjectTitle, Milestone: m})
			}
			pp.Milestones(refs...)
		}
	}
}

func (pp *PrettyPrint) Review(candidates ...app.ReviewCandidate) {
	pp.TitleWithCount("Needs attention", len(candidates), "project")
	if len(candidates) == 0 {
		pp.none()
		return
	}
	tbl := newTable()
	tbl.AddRow(bold("ID"), bold("Project"), bold("Last touched"), bold("Overdue"), bold("Reason"))
	for _, c := range candidates {
		var reasons []string
		if c.Stale {
			reasons = append(reasons, "stale")
		}
		if c.Overdue > 0 {
			reasons = append(reasons, pp.tierStyle(urgency.Overdue).Render("overdue"))
		}
		tbl.AddRow(shortID(c.ProjectID), c.ProjectTitle, c.LastTouched.In(pp.loc()).Format(layoutDate), c.Overdue, strings.Join(reasons, ", "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
