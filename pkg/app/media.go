package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/entry"
	"tableflip.dev/folio/pkg/media"
	"tableflip.dev/folio/pkg/project"
)

// AttachImage adds a pending image placeholder to the entry and uploads data
// in the background. When the upload finishes the placeholder is replaced by
// the stored image, or removed if the upload failed. Either happens once.
func (s *Service) AttachImage(ctx context.Context, projectID, entryID string, data []byte) (*Task[entry.Media], error) {
	if s.uploader == nil {
		return nil, ErrNoUploader
	}

	var placeholder entry.Media
	err := s.commit(func(ws *project.Workspace, now time.Time) (Event, error) {
		p, e, err := findEntry(ws, projectID, entryID)
		if err != nil {
			return Event{}, err
		}
		placeholder = entry.Media{ID: s.newID(), Kind: entry.MediaImage, CreatedAt: now, Pending: true}
		e.Media = append(e.Media, placeholder)
		e.UpdatedAt = later(now, e.CreatedAt)
		p.Touch(now)
		return Event{Kind: MediaPending, ProjectID: projectID, EntryID: entryID}, nil
	})
	if err != nil {
		return nil, err
	}

	task := newTask[entry.Media](placeholder.ID)
	s.tasks.add()
	go func() {
		defer s.tasks.done()
		up, err := s.uploader.UploadImage(ctx, data)
		if err != nil {
			err = uploadError(err)
		}
		m, resolveErr := s.resolvePlaceholder(projectID, entryID, placeholder, up, err)
		if err == nil {
			err = resolveErr
		}
		if err != nil {
			s.tasks.fail(err)
			s.log.Error("media upload failed", zap.String("entry", entryID), zap.Error(err))
			s.publish(Event{Kind: MediaFailed, ProjectID: projectID, EntryID: entryID, Err: err.Error()})
		} else {
			s.publish(Event{Kind: MediaAttached, ProjectID: projectID, EntryID: entryID})
		}
		task.finish(m, err)
	}()
	return task, nil
}

// resolvePlaceholder swaps or drops the placeholder. If the entry or the
// placeholder is gone there is nothing left to resolve.
func (s *Service) resolvePlaceholder(projectID, entryID string, placeholder entry.Media, up media.Upload, uploadErr error) (entry.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, e, err := findEntry(s.ws, projectID, entryID)
	if err != nil {
		if uploadErr != nil {
			return entry.Media{}, uploadErr
		}
		return entry.Media{}, err
	}
	i := e.MediaIndex(placeholder.ID)
	if i < 0 {
		if uploadErr != nil {
			return entry.Media{}, uploadErr
		}
		return entry.Media{}, notFound("media", placeholder.ID)
	}

	now := s.now()
	var resolved entry.Media
	if uploadErr != nil {
		e.Media = append(e.Media[:i:i], e.Media[i+1:]...)
	} else {
		resolved = entry.Media{
			ID:           placeholder.ID,
			Kind:         entry.MediaImage,
			URL:          up.URL,
			ThumbnailURL: up.ThumbnailURL,
			CreatedAt:    placeholder.CreatedAt,
		}
		e.Media[i] = resolved
	}
	e.UpdatedAt = later(now, e.CreatedAt)
	p.Touch(now)
	s.workspaceSaver.enqueue(s.ws.Clone())
	return resolved.Clone(), nil
}

func uploadError(err error) error {
	var me *media.Error
	if errors.As(err, &me) {
		return &MediaUploadError{Phase: me.Phase, Err: me.Err}
	}
	return &MediaUploadError{Phase: media.PhaseUpload, Err: err}
}

// ExportEntry renders a copy of the entry through the exporter in the
// background. The task yields where the document was written.
func (s *Service) ExportEntry(projectID, entryID string) (*Task[string], error) {
	if s.exporter == nil {
		return nil, ErrNoExporter
	}
	e, err := s.Entry(projectID, entryID)
	if err != nil {
		return nil, err
	}

	task := newTask[string](entryID)
	s.tasks.add()
	go func() {
		defer s.tasks.done()
		path, err := s.exporter.ExportEntry(context.Background(), e)
		if err != nil {
			s.log.Error("export failed", zap.String("entry", entryID), zap.Error(err))
			s.publish(Event{Kind: ExportFailed, ProjectID: projectID, EntryID: entryID, Err: err.Error()})
		} else {
			s.publish(Event{Kind: EntryExported, ProjectID: projectID, EntryID: entryID})
		}
		task.finish(path, err)
	}()
	return task, nil
}
