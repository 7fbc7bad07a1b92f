// Package entry defines journal entries and the values they own or copy.
package entry

import (
	"fmt"
	"time"
)

// Entry is a dated journal record inside a project.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Media     []Media   `json:"media,omitempty"`
	Location  *Location `json:"location,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New builds an entry from a draft. Location and media are copied so the entry
// never shares state with the draft.
func New(id string, d Draft, now time.Time) Entry {
	e := Entry{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.Apply(d)
	return e
}

// Apply overwrites the editable fields of e with the draft values.
func (e *Entry) Apply(d Draft) {
	e.Title = d.Title
	e.Content = d.Content
	e.Tags = CleanTags(d.Tags)
	e.Location = d.Location.Snapshot()
	e.Media = cloneMedia(d.Media)
}

// Draft returns the editable fields of e as a detached draft.
func (e Entry) Draft() Draft {
	return Draft{
		Title:    e.Title,
		Content:  e.Content,
		Tags:     append([]string(nil), e.Tags...),
		Location: e.Location.Snapshot(),
		Media:    cloneMedia(e.Media),
	}
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	cp := e
	cp.Tags = append([]string(nil), e.Tags...)
	cp.Location = e.Location.Snapshot()
	cp.Media = cloneMedia(e.Media)
	return cp
}

// MediaIndex returns the position of the media item with id, or -1.
func (e *Entry) MediaIndex(id string) int {
	for i := range e.Media {
		if e.Media[i].ID == id {
			return i
		}
	}
	return -1
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.CreatedAt.Format("2006-01-02"), e.Title)
}
