package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a single published notification. Events are immutable once
// constructed; subscribers must treat the payload as read-only since the
// same value is handed to every handler in the fan-out.
type Event struct {
	// Topic is the string identifying the class of event,
	// e.g. "trade_executed".
	Topic string

	// Payload is the event-specific data.
	Payload any

	// Metadata carries standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// NewEvent creates an event with a fresh ID and timestamp.
func NewEvent(topic string, payload any) Event {
	return Event{
		Topic:   topic,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
		},
	}
}

// WithSource returns a copy of the event with the source set.
func (e Event) WithSource(source string) Event {
	e.Metadata.Source = source
	return e
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event. Returning an error marks this
	// delivery failed in the publish report; it does not affect other
	// subscribers.
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// PanicHandler is called when a subscriber panics during delivery.
type PanicHandler func(evt Event, recovered any, stack []byte)
