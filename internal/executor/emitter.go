package executor

import "time"

// Emitter delivers executor events to a single subscriber.
// Sends block rather than drop: the event sequence is part of the
// executor's contract, so every event must arrive, in order.
type Emitter struct {
	events chan Event
}

// NewEmitter creates a new Emitter with the given buffer size.
func NewEmitter(bufferSize int) *Emitter {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Emitter{
		events: make(chan Event, bufferSize),
	}
}

// Emit sends an event, stamping it with the current time if unset.
func (e *Emitter) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	e.events <- event
}

// Events returns a read-only channel of events.
// This is consumed by subscribers (CLI progress printer, TUI).
func (e *Emitter) Events() <-chan Event {
	return e.events
}

// Close closes the events channel. Called once the run loop has
// emitted its final run_finished event.
func (e *Emitter) Close() {
	close(e.events)
}
