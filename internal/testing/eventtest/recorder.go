// Package eventtest provides an in-memory event publisher for service tests.
package eventtest

import (
	"context"
	"sync"

	"github.com/osse101/PhoneTycoon_Go/internal/event"
)

// Recorder captures published events in order
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records the event
func (r *Recorder) Publish(ctx context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// OfType returns the recorded events with the given type
func (r *Recorder) OfType(t event.Type) []event.Event {
	var out []event.Event
	for _, evt := range r.Events() {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

// Reset forgets all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
