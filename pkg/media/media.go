// Package media stores attachment blobs and their thumbnails.
package media

import (
	"context"
	"fmt"
)

// Phase names the step of an upload that failed.
type Phase string

const (
	PhaseUpload    Phase = "upload"
	PhaseThumbnail Phase = "thumbnail"
)

// Upload is the result of a successful image upload.
type Upload struct {
	URL          string
	ThumbnailURL *string
}

// Uploader stores image bytes and returns where they ended up.
type Uploader interface {
	UploadImage(ctx context.Context, data []byte) (Upload, error)
}

// Error reports which phase of an upload failed.
type Error struct {
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("media: %s: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
