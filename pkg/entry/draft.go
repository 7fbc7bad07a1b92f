package entry

import "strings"

// Draft carries the user editable fields of an entry before it is stored.
type Draft struct {
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content"`
	Tags     []string  `json:"tags"`
	Location *Location `json:"location,omitempty"`
	Media    []Media   `json:"media,omitempty" validate:"dive"`
}

// Normalize trims the title and cleans the tag list in place.
func (d *Draft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Tags = CleanTags(d.Tags)
}

// ParseTags splits comma separated input into trimmed, non-empty tags.
func ParseTags(raw string) []string {
	return CleanTags(strings.Split(raw, ","))
}

// CleanTags trims every tag and drops empty ones. Duplicates are kept; use
// UniqueTags when presenting them.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// UniqueTags returns tags with duplicates removed, keeping first occurrences.
func UniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// HasTag reports whether tag is present, compared exactly.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
