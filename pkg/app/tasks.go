package app

import (
	"context"
	"errors"
	"sync"
)

// Task is the handle for an asynchronous operation such as an upload.
type Task[T any] struct {
	// ID names the object the task produces, e.g. the media placeholder id.
	ID string

	done chan struct{}
	val  T
	err  error
}

func newTask[T any](id string) *Task[T] {
	return &Task[T]{ID: id, done: make(chan struct{})}
}

func (t *Task[T]) finish(val T, err error) {
	t.val, t.err = val, err
	close(t.done)
}

// Done is closed once the task has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// tracker counts in-flight background work and collects its failures.
type tracker struct {
	mu   sync.Mutex
	n    int
	idle chan struct{}
	errs []error
}

func (t *tracker) add() {
	t.mu.Lock()
	if t.n == 0 {
		t.idle = make(chan struct{})
	}
	t.n++
	t.mu.Unlock()
}

func (t *tracker) done() {
	t.mu.Lock()
	t.n--
	if t.n == 0 {
		close(t.idle)
	}
	t.mu.Unlock()
}

func (t *tracker) fail(err error) {
	t.mu.Lock()
	t.errs = append(t.errs, err)
	t.mu.Unlock()
}

// wait blocks until nothing is in flight, then returns and clears the
// collected failures.
func (t *tracker) wait(ctx context.Context) error {
	t.mu.Lock()
	idle, busy := t.idle, t.n > 0
	t.mu.Unlock()
	if busy {
		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	err := errors.Join(t.errs...)
	t.errs = nil
	return err
}

// saver writes the newest pending value in the background. Values queued
// while a write is running replace each other, so an older snapshot is never
// written after a newer one.
type saver[T any] struct {
	op      string
	save    func(ctx context.Context, v T) error
	tasks   *tracker
	onError func(error)

	mu      sync.Mutex
	pending T
	dirty   bool
	running bool
}

func newSaver[T any](op string, tasks *tracker, save func(context.Context, T) error, onError func(error)) *saver[T] {
	return &saver[T]{op: op, save: save, tasks: tasks, onError: onError}
}

func (s *saver[T]) enqueue(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending, s.dirty = v, true
	if s.running {
		return
	}
	s.running = true
	s.tasks.add()
	go s.loop()
}

func (s *saver[T]) loop() {
	defer s.tasks.done()
	for {
		s.mu.Lock()
		if !s.dirty {
			s.running = false
			s.mu.Unlock()
			return
		}
		v := s.pending
		var zero T
		s.pending, s.dirty = zero, false
		s.mu.Unlock()

		if err := s.save(context.Background(), v); err != nil {
			s.onError(&PersistenceError{Op: s.op, Err: err})
		}
	}
}
