// Package search filters entries and projects for display. Everything here is
// pure: inputs are never modified and results depend only on the arguments.
package search

import (
	"sort"
	"strings"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/project"
)

// FilterEntries keeps entries carrying tag (exact, case sensitive) whose title,
// content or any tag contains query (case insensitive). Empty query and tag
// return entries unchanged.
func FilterEntries(entries []entry.Entry, query, tag string) []entry.Entry {
	if tag == "" && query == "" {
		return entries
	}
	q := strings.ToLower(query)
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if tag != "" && !e.HasTag(tag) {
			continue
		}
		if q != "" && !matches(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matches(e entry.Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Content), q) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// FilterProjects keeps projects whose title or description contains query,
// case insensitive. An empty query returns projects unchanged.
func FilterProjects(projects []project.Project, query string) []project.Project {
	if query == "" {
		return projects
	}
	q := strings.ToLower(query)
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Tags collects the distinct tags used by entries, sorted for display.
func Tags(entries []entry.Entry) []string {
	var all []string
	for _, e := range entries {
		all = append(all, e.Tags...)
	}
	tags := entry.UniqueTags(all)
	sort.Strings(tags)
	return tags
}
