package event

import "sync"

// Registry manages subscriptions organized by topic. Exact-match topics
// only; delivery order within a topic is registration order. It is
// thread-safe for concurrent access.
type Registry struct {
	mu   sync.RWMutex
	subs map[string][]*Subscription
	byID map[string]*Subscription
}

// NewRegistry creates an empty subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[string][]*Subscription),
		byID: make(map[string]*Subscription),
	}
}

// Add appends a subscription to its topic's list. Subscriptions are kept
// in registration order; no deduplication is performed.
func (r *Registry) Add(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[sub.topic] = append(r.subs[sub.topic], sub)
	r.byID[sub.id] = sub
}

// Remove removes a subscription by ID. It returns false if the
// subscription is not present.
func (r *Registry) Remove(subID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, exists := r.byID[subID]
	if !exists {
		return false
	}

	subs := r.subs[sub.topic]
	for i, s := range subs {
		if s.id == subID {
			r.subs[sub.topic] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(r.subs[sub.topic]) == 0 {
		delete(r.subs, sub.topic)
	}

	delete(r.byID, subID)
	return true
}

// Snapshot returns a copy of the active subscriptions for a topic, in
// registration order. Publish works off this copy, so subscriptions
// added during a fan-out do not receive the in-flight event.
func (r *Registry) Snapshot(topic string) []*Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.subs[topic]
	if len(subs) == 0 {
		return nil
	}

	result := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.IsActive() {
			result = append(result, sub)
		}
	}
	return result
}

// Count returns the total number of subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// CountTopic returns the number of subscriptions for one topic.
func (r *Registry) CountTopic(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[topic])
}

// Topics returns all topics with at least one subscription.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.subs) == 0 {
		return nil
	}

	topics := make([]string, 0, len(r.subs))
	for t := range r.subs {
		topics = append(topics, t)
	}
	return topics
}

// Clear removes all subscriptions.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = make(map[string][]*Subscription)
	r.byID = make(map[string]*Subscription)
}
