// Package project defines the workspace hierarchy: the workspace, its projects
// and the milestones they own.
package project

import (
	"fmt"
	"strings"
)

// Status describes where a project is in its lifecycle.
type Status string

const (
	// StatusConcept is the default for new projects.
	StatusConcept Status = "Concept"
	// StatusInProgress marks active work.
	StatusInProgress Status = "In Progress"
	// StatusCompleted marks finished projects.
	StatusCompleted Status = "Completed"
)

// AllStatuses returns the supported statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusConcept, StatusInProgress, StatusCompleted}
}

var statusAliases = map[string]Status{
	"concept":     StatusConcept,
	"in progress": StatusInProgress,
	"in-progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"progress":    StatusInProgress,
	"completed":   StatusCompleted,
	"complete":    StatusCompleted,
	"done":        StatusCompleted,
}

// ParseStatus converts user input to a Status. Empty input is StatusConcept.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return StatusConcept, nil
	}
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return StatusConcept, fmt.Errorf("project: unknown status %q", raw)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, c := range AllStatuses() {
		if c == s {
			return true
		}
	}
	return false
}
