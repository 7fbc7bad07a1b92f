// Package export renders entries into standalone documents.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/entry"
)

// Exporter turns an entry into a document and returns its location.
type Exporter interface {
	ExportEntry(ctx context.Context, e entry.Entry) (string, error)
}

// DefaultWidth is the wrap column for exported text.
const DefaultWidth = 72

// TextExporter writes word-wrapped plain text files into Dir.
type TextExporter struct {
	Dir   string
	Width int
	Log   *zap.Logger
}

// NewTextExporter returns a TextExporter writing into dir.
func NewTextExporter(dir string, log *zap.Logger) *TextExporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextExporter{Dir: dir, Width: DefaultWidth, Log: log}
}

func (x *TextExporter) ExportEntry(ctx context.Context, e entry.Entry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(x.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure dir: %w", err)
	}
	path := filepath.Join(x.Dir, FileName(e))
	if err := os.WriteFile(path, []byte(Render(e, x.Width)), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	x.Log.Info("entry exported", zap.String("entry", e.ID), zap.String("path", path))
	return path, nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// FileName derives a stable file name from the entry title and id.
func FileName(e entry.Entry) string {
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(e.Title), "-"), "-")
	if slug == "" {
		slug = "entry"
	}
	id := e.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-%s.txt", slug, id)
}

// Render formats e as a plain text document wrapped at width.
func Render(e entry.Entry, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var b strings.Builder
	b.WriteString(e.Title + "\n")
	b.WriteString(strings.Repeat("=", min(len(e.Title), width)) + "\n\n")
	b.WriteString("Date: " + e.CreatedAt.Format(time.RFC1123) + "\n")
	if e.Location != nil {
		b.WriteString("Location: " + e.Location.Name + "\n")
	}
	if len(e.Tags) > 0 {
		b.WriteString("Tags: " + strings.Join(e.Tags, ", ") + "\n")
	}
	if content := strings.TrimSpace(e.Content); content != "" {
		b.WriteString("\n" + wordwrap.String(content, width) + "\n")
	}

	var attached []string
	for _, m := range e.Media {
		if m.Pending {
			continue
		}
		attached = append(attached, fmt.Sprintf("- [%s] %s", m.Kind, m.URL))
	}
	if len(attached) > 0 {
		b.WriteString("\nMedia:\n")
		b.WriteString(indent.String(strings.Join(attached, "\n"), 2) + "\n")
	}
	return b.String()
}
