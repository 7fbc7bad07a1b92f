package entry

import (
	"fmt"
	"strings"
	"time"
)

// MediaKind classifies an attachment.
type MediaKind string

const (
	MediaImage  MediaKind = "image"
	MediaPDF    MediaKind = "pdf"
	MediaSketch MediaKind = "sketch"
	MediaAudio  MediaKind = "audio"
	MediaOther  MediaKind = "other"
)

// ParseMediaKind converts a user supplied kind, defaulting to MediaOther when empty.
func ParseMediaKind(raw string) (MediaKind, error) {
	k := MediaKind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case "":
		return MediaOther, nil
	case MediaImage, MediaPDF, MediaSketch, MediaAudio, MediaOther:
		return k, nil
	}
	return MediaOther, fmt.Errorf("entry: unknown media kind %q", raw)
}

// Media is an attachment owned by a single entry.
type Media struct {
	ID           string    `json:"id"`
	Kind         MediaKind `json:"type" validate:"oneof=image pdf sketch audio other"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	// Pending marks a placeholder shown while an upload is in flight.
	Pending bool `json:"pending,omitempty"`
}

// Clone returns a deep copy of m.
func (m Media) Clone() Media {
	if m.ThumbnailURL != nil {
		thumb := *m.ThumbnailURL
		m.ThumbnailURL = &thumb
	}
	return m
}

func cloneMedia(in []Media) []Media {
	if in == nil {
		return nil
	}
	out := make([]Media, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}
