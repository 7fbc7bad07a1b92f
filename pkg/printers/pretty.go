package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/timeline"
)

type PrettyPrint struct {
	ShowID      bool
	ShowContent bool
	// Plain disables lipgloss styling, for output that is not a terminal.
	Plain    bool
	Now      time.Time
	Location *time.Location
	Out      io.Writer
}

const (
	layoutDay  = "Monday, January 2 2006"
	layoutTime = "15:04"
	wrapWidth  = 72
)

var (
	spacing = strings.Repeat(" ", len("0f3c2a9e  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) loc() *time.Location {
	if pp.Location == nil {
		return time.Local
	}
	return pp.Location
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	_, _ = c.Fprintf(pp.out(), " %s\n", plural(noun, count))
}

func plural(noun string, count int) string {
	switch {
	case count == 1:
		return noun
	case strings.HasSuffix(noun, "y"):
		return strings.TrimSuffix(noun, "y") + "ies"
	default:
		return noun + "s"
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Entries prints one line per entry, followed by its content when ShowContent is set.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tag := color.New(color.FgCyan)
	dim := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			id := shortID(e.ID)
			_, _ = y.Fprint(pp.out(), id)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = dim.Fprintf(pp.out(), "%s ", e.CreatedAt.In(pp.loc()).Format(layoutTime))
		_, _ = t.Fprint(pp.out(), e.Title)
		for _, tg := range entry.UniqueTags(e.Tags) {
			_, _ = tag.Fprintf(pp.out(), " #%s", tg)
		}
		if e.Location != nil {
			_, _ = dim.Fprintf(pp.out(), " @%s", e.Location.Name)
		}
		if n := len(e.Media); n > 0 {
			_, _ = dim.Fprintf(pp.out(), " [%d media%s]", n, pendingSuffix(e.Media))
		}
		_, _ = t.Fprintln(pp.out(), "")

		if pp.ShowContent && strings.TrimSpace(e.Content) != "" {
			body := indent.String(wordwrap.String(strings.TrimSpace(e.Content), wrapWidth), uint(len(spacing)))
			_, _ = dim.Fprintln(pp.out(), body)
		}
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Timeline prints entries under a heading per day.
func (pp *PrettyPrint) Timeline(days []timeline.Day) {
	if len(days) == 0 {
		pp.none()
		return
	}
	for _, d := range days {
		pp.TitleWithCount(d.Date.Format(layoutDay), len(d.Entries), "entry")
		pp.Entries(d.Entries...)
	}
}

func pendingSuffix(media []entry.Media) string {
	for _, m := range media {
		if m.Pending {
			return ", uploading"
		}
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
