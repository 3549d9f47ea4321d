// Package streamtest records rxlite notifications for tests and diagnostics.
package streamtest

import (
	"sync"

	"github.com/xinjiayu/rxlite"
)

// Kind identifies a recorded notification.
type Kind uint8

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Notification is one recorded callback invocation.
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

// Recorder records notifications in call order.
//
// Recorder is safe under concurrent use.
type Recorder[T any] struct {
	notifications []Notification[T]
	mu            sync.Mutex
}

// NewRecorder constructs a Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Handlers returns a full handler set that appends to the recorder.
func (r *Recorder[T]) Handlers() rxlite.Handlers[T] {
	return rxlite.Handlers[T]{
		Next:     func(v T) { r.record(Notification[T]{Kind: KindNext, Value: v}) },
		Error:    func(err error) { r.record(Notification[T]{Kind: KindError, Err: err}) },
		Complete: func() { r.record(Notification[T]{Kind: KindComplete}) },
	}
}

func (r *Recorder[T]) record(n Notification[T]) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()
}

// Notifications returns a snapshot copy of recorded notifications.
func (r *Recorder[T]) Notifications() []Notification[T] {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Notification[T], len(r.notifications))
	copy(cp, r.notifications)
	return cp
}

// Values returns the payloads of next notifications, in recorded order.
func (r *Recorder[T]) Values() []T {
	ns := r.Notifications()
	out := make([]T, 0, len(ns))
	for _, n := range ns {
		if n.Kind == KindNext {
			out = append(out, n.Value)
		}
	}
	return out
}

// Errors returns every recorded terminal error.
func (r *Recorder[T]) Errors() []error {
	var out []error
	for _, n := range r.Notifications() {
		if n.Kind == KindError {
			out = append(out, n.Err)
		}
	}
	return out
}

// Completions reports how many complete notifications were recorded.
func (r *Recorder[T]) Completions() int {
	count := 0
	for _, n := range r.Notifications() {
		if n.Kind == KindComplete {
			count++
		}
	}
	return count
}

// Terminals reports how many error or complete notifications were recorded.
func (r *Recorder[T]) Terminals() int {
	return len(r.Errors()) + r.Completions()
}

// Reset clears the recorder.
func (r *Recorder[T]) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.notifications = nil
	r.mu.Unlock()
}
