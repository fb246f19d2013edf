package event

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the event bus.
var (
	// ErrInvalidTopic is returned when a topic is empty.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrHandlerPanic is returned (wrapped) when a handler panics.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by one subscriber during delivery.
type HandlerError struct {
	// SubscriptionID identifies the subscription whose handler failed.
	SubscriptionID string

	// Topic is the topic the event was published on.
	Topic string

	// Err is the error returned by the handler.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error for subscription %s on topic %q: %v",
		e.SubscriptionID, e.Topic, e.Err)
}

// Unwrap returns the underlying handler error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic raised by one subscriber during delivery.
type PanicError struct {
	// SubscriptionID identifies the subscription whose handler panicked.
	SubscriptionID string

	// Topic is the topic the event was published on.
	Topic string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at the panic site.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for subscription %s on topic %q: %v",
		e.SubscriptionID, e.Topic, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}

// PublishError is the delivery report returned by Publish when one or
// more subscribers failed. Every handler in the snapshot still ran; the
// report lists the failures.
type PublishError struct {
	// Topic is the topic that was published.
	Topic string

	// Delivered is the number of handlers that completed cleanly.
	Delivered int

	// Errors holds one *HandlerError or *PanicError per failed handler,
	// in delivery order.
	Errors []error
}

// Error implements the error interface.
func (e *PublishError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("publish %q: %d of %d handlers failed: %s",
		e.Topic, len(e.Errors), e.Delivered+len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap returns the per-handler failures for errors.Is / errors.As.
func (e *PublishError) Unwrap() []error {
	return e.Errors
}
