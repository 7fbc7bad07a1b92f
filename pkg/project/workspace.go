package project

import "tableflip.dev/folio/pkg/entry"

// DefaultTitle names a workspace created from scratch.
const DefaultTitle = "Workspace"

// Workspace is the root aggregate. Projects stay in insertion order.
type Workspace struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Projects    []Project `json:"subProjects"`
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{Title: DefaultTitle, Projects: []Project{}}
}

// ProjectIndex returns the position of the project with id, or -1.
func (w *Workspace) ProjectIndex(id string) int {
	for i := range w.Projects {
		if w.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns a pointer into w for the project with id.
func (w *Workspace) Find(id string) (*Project, bool) {
	i := w.ProjectIndex(id)
	if i < 0 {
		return nil, false
	}
	return &w.Projects[i], true
}

// RemoveProject deletes the project with id together with everything it owns.
func (w *Workspace) RemoveProject(id string) bool {
	i := w.ProjectIndex(id)
	if i < 0 {
		return false
	}
	w.Projects = append(w.Projects[:i:i], w.Projects[i+1:]...)
	return true
}

// Entries flattens entries across projects. An empty projectID means all of them.
func (w *Workspace) Entries(projectID string) []entry.Entry {
	var out []entry.Entry
	for _, p := range w.Projects {
		if projectID != "" && p.ID != projectID {
			continue
		}
		for _, e := range p.Entries {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Milestones lists milestones with their owning project. An empty projectID
// means all projects.
func (w *Workspace) Milestones(projectID string) []MilestoneRef {
	var out []MilestoneRef
	for _, p := range w.Projects {
		if projectID != "" && p.ID != projectID {
			continue
		}
		for _, m := range p.Milestones {
			out = append(out, MilestoneRef{ProjectID: p.ID, ProjectTitle: p.Title, Milestone: m})
		}
	}
	return out
}

// Clone returns a deep copy of w.
func (w *Workspace) Clone() *Workspace {
	if w == nil {
		return nil
	}
	cp := &Workspace{Title: w.Title, Description: w.Description, Projects: make([]Project, len(w.Projects))}
	for i, p := range w.Projects {
		cp.Projects[i] = p.Clone()
	}
	return cp
}

// Normalize fills nil slices left behind by older documents.
func (w *Workspace) Normalize() {
	if w.Title == "" {
		w.Title = DefaultTitle
	}
	if w.Projects == nil {
		w.Projects = []Project{}
	}
	for i := range w.Projects {
		p := &w.Projects[i]
		if p.Entries == nil {
			p.Entries = []entry.Entry{}
		}
		if p.Milestones == nil {
			p.Milestones = []Milestone{}
		}
		if !p.Status.Valid() {
			p.Status = StatusConcept
		}
	}
}
