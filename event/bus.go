package event

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/connorslab/tradecore/event/dispatch"
)

// Bus is the central event bus. The zero value is not usable; construct
// with New.
type Bus struct {
	registry *Registry
	executor *dispatch.Executor

	maxConcurrency int

	// Stats
	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	handlerErrors   atomic.Uint64
	handlerPanics   atomic.Uint64
}

// BusOption configures a Bus.
type BusOption func(*busConfig)

type busConfig struct {
	maxConcurrency int
	panicHandler   PanicHandler
}

// WithMaxConcurrency enables bounded parallel fan-out: up to n handlers
// of one publish run concurrently. Handlers are still started in
// registration order and the whole fan-out is still awaited. n <= 1
// keeps the default strictly sequential delivery.
func WithMaxConcurrency(n int) BusOption {
	return func(c *busConfig) {
		c.maxConcurrency = n
	}
}

// WithPanicHandler sets a hook invoked when a subscriber panics. The
// default logs the panic via slog. Panics are always isolated and
// reported in the publish error regardless of this hook.
func WithPanicHandler(h PanicHandler) BusOption {
	return func(c *busConfig) {
		c.panicHandler = h
	}
}

// New creates an event bus.
func New(opts ...BusOption) *Bus {
	config := busConfig{
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(&config)
	}

	b := &Bus{
		registry:       NewRegistry(),
		maxConcurrency: config.maxConcurrency,
	}

	// Adapt the typed panic hook to the dispatch signature.
	ph := config.panicHandler
	b.executor = dispatch.NewExecutor(
		dispatch.WithPanicHandler(func(event any, panicValue any, stack []byte) {
			if ph == nil {
				return
			}
			if evt, ok := event.(Event); ok {
				ph(evt, panicValue, stack)
			}
		}),
	)

	return b
}

// Default is the process-wide bus shared by components that do not get
// one injected. Services needing isolation should construct their own.
var Default = New()

func defaultPanicHandler(evt Event, recovered any, _ []byte) {
	slog.Error("event handler panicked",
		"topic", evt.Topic, "event_id", evt.Metadata.ID, "panic", recovered)
}

// Subscribe appends handler to the topic's subscriber list and returns a
// handle usable for Unsubscribe. Subscribing the same handler twice
// yields two independent deliveries per event.
func (b *Bus) Subscribe(topic string, handler Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if topic == "" {
		return nil, ErrInvalidTopic
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	sub := newSubscription(uuid.NewString(), topic, handler, opts...)
	b.registry.Add(sub)
	return sub, nil
}

// SubscribeFunc is a convenience wrapper for subscribing a function.
func (b *Bus) SubscribeFunc(topic string, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	return b.Subscribe(topic, fn, opts...)
}

// Unsubscribe cancels the subscription and removes it from the bus. It
// is idempotent: repeated calls and calls with a nil handle are no-ops.
// A delivery already scheduled by an in-flight publish is not
// retroactively cancelled.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.Cancel()
	b.registry.Remove(sub.id)
}

// Publish sends payload to every current subscriber of topic and blocks
// until the whole fan-out has completed. Handlers are invoked in
// registration order on a snapshot of the subscriber list taken at
// publish time; subscriptions added during delivery do not receive this
// event.
//
// Failure policy: every handler in the snapshot runs regardless of other
// handlers' outcomes. If any failed, Publish returns a *PublishError
// aggregating one error per failed handler; otherwise nil. Publishing to
// a topic with no subscribers is a no-op.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	return b.PublishEvent(ctx, NewEvent(topic, payload))
}

// PublishEvent is Publish for a pre-built event, allowing callers to set
// metadata such as the source component.
func (b *Bus) PublishEvent(ctx context.Context, evt Event) error {
	if evt.Topic == "" {
		return ErrInvalidTopic
	}

	subs := b.registry.Snapshot(evt.Topic)
	if len(subs) == 0 {
		return nil
	}

	b.eventsPublished.Add(1)

	handlers := make([]dispatch.Handler, len(subs))
	for i, sub := range subs {
		sub := sub
		handlers[i] = dispatch.HandlerFunc(func(ctx context.Context, event any) error {
			return sub.handler.Handle(ctx, event.(Event))
		})
	}

	var results []dispatch.Result
	if b.maxConcurrency > 1 {
		results = b.executor.Parallel(ctx, evt, handlers, b.maxConcurrency)
	} else {
		results = b.executor.Sequential(ctx, evt, handlers)
	}

	var failures []error
	delivered := 0
	for i, result := range results {
		sub := subs[i]

		switch {
		case result.Panicked:
			b.handlerPanics.Add(1)
			failures = append(failures, &PanicError{
				SubscriptionID: sub.id,
				Topic:          evt.Topic,
				Value:          result.PanicValue,
				Stack:          result.PanicStack,
			})
		case result.Error != nil:
			b.handlerErrors.Add(1)
			failures = append(failures, &HandlerError{
				SubscriptionID: sub.id,
				Topic:          evt.Topic,
				Err:            result.Error,
			})
		default:
			b.eventsDelivered.Add(1)
			delivered++
		}

		if sub.once && result.IsSuccess() {
			sub.Cancel()
			b.registry.Remove(sub.id)
		}
	}

	if len(failures) > 0 {
		return &PublishError{
			Topic:     evt.Topic,
			Delivered: delivered,
			Errors:    failures,
		}
	}
	return nil
}

// SubscriberCount returns the number of subscriptions for a topic.
func (b *Bus) SubscriberCount(topic string) int {
	return b.registry.CountTopic(topic)
}

// Stats returns a point-in-time view of bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		HandlerErrors:     b.handlerErrors.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: b.registry.Count(),
	}
}

// Stats contains event bus counters.
type Stats struct {
	// EventsPublished is the number of publishes that reached at least
	// one subscriber.
	EventsPublished uint64

	// EventsDelivered is the number of successful handler deliveries.
	EventsDelivered uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// ActiveSubscribers is the current number of subscriptions.
	ActiveSubscribers int
}
