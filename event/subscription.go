package event

import "sync/atomic"

// Subscription is the handle returned by Subscribe. It identifies one
// (topic, handler) registration; subscribing the same handler to the
// same topic twice yields two independent subscriptions, each invoked
// separately.
type Subscription struct {
	id      string
	topic   string
	handler Handler
	once    bool

	cancelled atomic.Bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// WithOnce auto-cancels the subscription after its first successful
// delivery.
func WithOnce() SubscriptionOption {
	return func(s *Subscription) {
		s.once = true
	}
}

func newSubscription(id, topic string, h Handler, opts ...SubscriptionOption) *Subscription {
	s := &Subscription{
		id:      id,
		topic:   topic,
		handler: h,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Topic returns the subscribed topic.
func (s *Subscription) Topic() string {
	return s.topic
}

// IsActive reports whether the subscription can still receive events.
// An already-scheduled delivery is not retroactively cancelled.
func (s *Subscription) IsActive() bool {
	return !s.cancelled.Load()
}

// Cancel permanently deactivates the subscription. Prefer
// Bus.Unsubscribe, which also removes it from the bus.
func (s *Subscription) Cancel() {
	s.cancelled.Store(true)
}
