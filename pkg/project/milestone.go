package project

import "time"

// Milestone is a dated goal inside a project. DueDate carries day granularity.
type Milestone struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

// MilestoneRef pairs a milestone with the project that owns it, for views that
// list milestones across the whole workspace.
type MilestoneRef struct {
	ProjectID    string    `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
	Milestone    Milestone `json:"milestone"`
}
