package project

import (
	"time"

	"tableflip.dev/folio/pkg/entry"
)

// Project is a named body of work. It exclusively owns its entries and milestones.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      Status        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Entries     []entry.Entry `json:"entries"`
	Milestones  []Milestone   `json:"milestones"`
}

// Touch records a mutation at now, keeping UpdatedAt >= CreatedAt.
func (p *Project) Touch(now time.Time) {
	if now.Before(p.CreatedAt) {
		now = p.CreatedAt
	}
	p.UpdatedAt = now
}

// EntryIndex returns the position of the entry with id, or -1.
func (p *Project) EntryIndex(id string) int {
	for i := range p.Entries {
		if p.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

// MilestoneIndex returns the position of the milestone with id, or -1.
func (p *Project) MilestoneIndex(id string) int {
	for i := range p.Milestones {
		if p.Milestones[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveEntry deletes the entry with id, preserving the order of the rest.
func (p *Project) RemoveEntry(id string) bool {
	i := p.EntryIndex(id)
	if i < 0 {
		return false
	}
	p.Entries = append(p.Entries[:i:i], p.Entries[i+1:]...)
	return true
}

// RemoveMilestone deletes the milestone with id, preserving the order of the rest.
func (p *Project) RemoveMilestone(id string) bool {
	i := p.MilestoneIndex(id)
	if i < 0 {
		return false
	}
	p.Milestones = append(p.Milestones[:i:i], p.Milestones[i+1:]...)
	return true
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	cp := p
	cp.Entries = make([]entry.Entry, len(p.Entries))
	for i, e := range p.Entries {
		cp.Entries[i] = e.Clone()
	}
	cp.Milestones = append([]Milestone(nil), p.Milestones...)
	if cp.Milestones == nil {
		cp.Milestones = []Milestone{}
	}
	return cp
}
