// Package template holds entry templates and seeds new entry drafts from them.
package template

import "tableflip.dev/folio/pkg/entry"

// Template is a catalog item used only to seed new entries.
type Template struct {
	ID              string   `json:"id"`
	Name            string   `json:"name" validate:"required"`
	ContentTemplate string   `json:"contentTemplate"`
	DefaultTags     []string `json:"defaultTags"`
}

// Apply returns a fresh draft holding the template content and a copy of its
// default tags. The template itself is never modified.
func Apply(t Template) entry.Draft {
	tags := make([]string, len(t.DefaultTags))
	copy(tags, t.DefaultTags)
	return entry.Draft{Content: t.ContentTemplate, Tags: tags}
}

// Empty is the draft handed out when no template applies.
func Empty() entry.Draft {
	return entry.Draft{Content: "", Tags: []string{}}
}

// Find returns the template with id from list.
func Find(list []Template, id string) (Template, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Clone returns a deep copy of t.
func (t Template) Clone() Template {
	t.DefaultTags = append([]string(nil), t.DefaultTags...)
	return t
}

// Samples returns the starter templates offered to a new workspace.
func Samples(newID func() string) []Template {
	return []Template{
		{
			ID:              newID(),
			Name:            "Daily Progress",
			ContentTemplate: "Today I worked on:\n\nChallenges:\n\nNext steps:",
			DefaultTags:     []string{"daily"},
		},
		{
			ID:              newID(),
			Name:            "Material Test",
			ContentTemplate: "Material: \n\nTest setup: \n\nResults: \n\nConclusion:",
			DefaultTags:     []string{"material", "test"},
		},
	}
}
