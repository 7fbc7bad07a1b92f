package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/export"
	"tableflip.dev/folio/pkg/logging"
	"tableflip.dev/folio/pkg/media"
	"tableflip.dev/folio/pkg/printers"
	"tableflip.dev/folio/pkg/store"
)

// session is everything a command needs to talk to the workspace.
type session struct {
	Settings *store.Settings
	Service  *app.Service
	Printer  *printers.PrettyPrint
	Log      *zap.Logger
}

// open loads configuration, wires persistence, media and export into the
// content store and loads the workspace.
func open(ctx context.Context) (*session, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(settings.Log)
	if err != nil {
		return nil, err
	}
	log = log.Named("folio")

	p, err := store.Load(settings, store.WithLogger(log.Named("store")))
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	svc := app.New(p,
		app.WithUploader(media.NewDiskStore(settings.MediaPath, log.Named("media"))),
		app.WithExporter(export.NewTextExporter(settings.ExportPath, log.Named("export"))),
		app.WithLogger(log.Named("app")),
		app.WithLocation(settings.Location),
	)
	if err := svc.Load(ctx); err != nil {
		_ = log.Sync()
		return nil, err
	}

	pp := printers.ForStdout()
	pp.Location = settings.Location
	return &session{Settings: settings, Service: svc, Printer: pp, Log: log}, nil
}

// Close waits for background saves and reports their failures.
func (s *session) Close(ctx context.Context) error {
	err := s.Service.Close(ctx)
	if err != nil {
		s.Log.Error("closing workspace", zap.Error(err))
	}
	// Sync fails on non-file sinks like a terminal stderr.
	_ = s.Log.Sync()
	return err
}

// run opens a session, runs fn and closes the session, returning the first
// failure.
func run(ctx context.Context, fn func(*session) error) error {
	s, err := open(ctx)
	if err != nil {
		return output.HandleError(err)
	}
	err = joinClose(fn(s), s.Close(context.WithoutCancel(ctx)))
	return output.HandleError(err)
}

// joinClose combines a command failure with the failures reported on close,
// dropping the ones the command already returned. Upload and export errors
// reach both the waiting command and the service flush.
func joinClose(fnErr, closeErr error) error {
	if fnErr == nil || closeErr == nil {
		return errors.Join(fnErr, closeErr)
	}
	errs := []error{fnErr}
	for _, err := range leaves(closeErr) {
		if !errors.Is(fnErr, err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func leaves(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, leaves(e)...)
	}
	return out
}
