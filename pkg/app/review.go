package app

import (
	"sort"
	"time"

	"tableflip.dev/folio/pkg/project"
	"tableflip.dev/folio/pkg/urgency"
)

// ReviewCandidate is an in-progress project that needs attention: either it
// has not been touched since the review window opened, or it has overdue
// milestones.
type ReviewCandidate struct {
	ProjectID    string    `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
	LastTouched  time.Time `json:"lastTouched"`
	Stale        bool      `json:"stale"`
	Overdue      int       `json:"overdue"`
}

// ReviewCandidates returns in-progress projects untouched since since or
// carrying overdue milestones, least recently touched first. A zero since
// only reports overdue work.
func (s *Service) ReviewCandidates(since time.Time) []ReviewCandidate {
	ws := s.Workspace()
	now := s.now()

	var out []ReviewCandidate
	for _, p := range ws.Projects {
		if p.Status != project.StatusInProgress {
			continue
		}
		c := ReviewCandidate{
			ProjectID:    p.ID,
			ProjectTitle: p.Title,
			LastTouched:  p.UpdatedAt,
			Stale:        !since.IsZero() && p.UpdatedAt.Before(since),
		}
		for _, m := range p.Milestones {
			if urgency.Of(m, now, s.loc) == urgency.Overdue {
				c.Overdue++
			}
		}
		if c.Stale || c.Overdue > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastTouched.Before(out[j].LastTouched)
	})
	return out
}
