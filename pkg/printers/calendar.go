package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/folio/pkg/calendar"
	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/timeutil"
	"tableflip.dev/folio/pkg/urgency"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month renders the grid with days that have milestones colored by their
// most pressing tier, then lists those milestones.
func (pp *PrettyPrint) Month(g calendar.Grid, due map[int][]project.MilestoneRef) {
	_, _ = fmt.Fprintln(pp.out(), pp.RenderMonth(g, due))

	days := make([]int, 0, len(due))
	for _, c := range g.Cells() {
		if _, ok := due[c.Day]; ok && c.InMonth {
			days = append(days, c.Day)
		}
	}
	if len(days) == 0 {
		pp.NewLine()
		return
	}
	pp.NewLine()
	for _, d := range days {
		for _, r := range due[d] {
			tier := urgency.Of(r.Milestone, pp.now(), pp.loc())
			line := fmt.Sprintf("%2d  %s · %s", d, r.Milestone.Title, r.ProjectTitle)
			_, _ = fmt.Fprintln(pp.out(), pp.tierStyle(tier).Render(line))
		}
	}
	pp.NewLine()
}

// RenderMonth returns the grid as a multi-line string.
func (pp *PrettyPrint) RenderMonth(g calendar.Grid, due map[int][]project.MilestoneRef) string {
	header := lipgloss.NewStyle()
	empty := lipgloss.NewStyle()
	today := lipgloss.NewStyle()
	if !pp.Plain {
		header = header.Foreground(lipgloss.Color("244"))
		empty = empty.Foreground(lipgloss.Color("241"))
		today = today.Underline(true).Bold(true)
	}

	title := g.Month.Format("January 2006")
	mid := max(0, (width-len(title))/2)
	lines := []string{
		strings.Repeat(" ", mid) + title,
		header.Render(strings.Join(calendar.WeekdayHeaders(g.FirstWeekday), " ")),
	}

	now := pp.now()
	for _, w := range g.Weeks {
		cells := make([]string, 0, 7)
		for _, c := range w {
			if c.Blank() {
				cells = append(cells, "  ")
				continue
			}
			style := empty
			if refs := due[c.Day]; len(refs) > 0 {
				style = pp.tierStyle(worstTier(refs, now, pp.loc()))
			}
			if timeutil.SameDay(c.Date, now, pp.loc()) {
				style = style.Inherit(today)
			}
			cells = append(cells, style.Render(fmt.Sprintf("%2d", c.Day)))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func worstTier(refs []project.MilestoneRef, now time.Time, loc *time.Location) urgency.Tier {
	worst := urgency.Completed
	for _, r := range refs {
		if t := urgency.Of(r.Milestone, now, loc); tierRank(t) > tierRank(worst) {
			worst = t
		}
	}
	return worst
}
