package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// EventKind names a change published by the Service.
type EventKind string

const (
	ProjectCreated    EventKind = "project.created"
	ProjectUpdated    EventKind = "project.updated"
	ProjectDeleted    EventKind = "project.deleted"
	EntryAdded        EventKind = "entry.added"
	EntryUpdated      EventKind = "entry.updated"
	EntryDeleted      EventKind = "entry.deleted"
	EntryExported     EventKind = "entry.exported"
	MilestoneAdded    EventKind = "milestone.added"
	MilestoneUpdated  EventKind = "milestone.updated"
	MilestoneToggled  EventKind = "milestone.toggled"
	MilestoneDeleted  EventKind = "milestone.deleted"
	TemplatesChanged  EventKind = "catalog.templates"
	LocationsChanged  EventKind = "catalog.locations"
	MediaPending      EventKind = "media.pending"
	MediaAttached     EventKind = "media.attached"
	MediaFailed       EventKind = "media.failed"
	ExportFailed      EventKind = "export.failed"
	PersistenceFailed EventKind = "persistence.failed"
	WorkspaceLoaded   EventKind = "workspace.loaded"
)

// Event describes one applied command or one asynchronous failure.
type Event struct {
	Kind        EventKind `json:"kind"`
	ProjectID   string    `json:"projectId,omitempty"`
	EntryID     string    `json:"entryId,omitempty"`
	MilestoneID string    `json:"milestoneId,omitempty"`
	Err         string    `json:"error,omitempty"`
	At          time.Time `json:"at"`
}

const eventsTopic = "folio.events"

// bus fans Service events out to subscribers over an in-process pubsub.
type bus struct {
	pubsub *gochannel.GoChannel
	log    *zap.Logger
}

func newBus(log *zap.Logger) *bus {
	return &bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			zapAdapter{log: log},
		),
		log: log,
	}
}

func (b *bus) publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.log.Error("encode event", zap.String("kind", string(ev.Kind)), zap.Error(err))
		return
	}
	if err := b.pubsub.Publish(eventsTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		b.log.Warn("publish event", zap.String("kind", string(ev.Kind)), zap.Error(err))
	}
}

// subscribe decodes and acks every message. The returned channel closes when
// ctx is done or the bus is closed.
func (b *bus) subscribe(ctx context.Context) (<-chan Event, error) {
	msgs, err := b.pubsub.Subscribe(ctx, eventsTopic)
	if err != nil {
		return nil, err
	}
	out := make(chan Event, 64)
	go func() {
		defer close(out)
		for msg := range msgs {
			var ev Event
			err := json.Unmarshal(msg.Payload, &ev)
			msg.Ack()
			if err != nil {
				b.log.Warn("decode event", zap.String("uuid", msg.UUID), zap.Error(err))
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (b *bus) close() error {
	return b.pubsub.Close()
}

// zapAdapter lets watermill log through zap.
type zapAdapter struct {
	log *zap.Logger
}

func (z zapAdapter) fields(f watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func (z zapAdapter) Error(msg string, err error, f watermill.LogFields) {
	z.log.Error(msg, append(z.fields(f), zap.Error(err))...)
}

func (z zapAdapter) Info(msg string, f watermill.LogFields) {
	z.log.Debug(msg, z.fields(f)...)
}

func (z zapAdapter) Debug(msg string, f watermill.LogFields) {
	z.log.Debug(msg, z.fields(f)...)
}

func (z zapAdapter) Trace(msg string, f watermill.LogFields) {}

func (z zapAdapter) With(f watermill.LogFields) watermill.LoggerAdapter {
	return zapAdapter{log: z.log.With(z.fields(f)...)}
}
