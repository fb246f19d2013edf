// Package storage provides pluggable storage backends for the component
// registry.
//
// A Backend stores arbitrary values keyed by (componentType, name). The
// registry owns no policy about where entries live; swapping the backend
// lets a service keep its catalogue in memory, in an expiring cache, or in
// any store that satisfies the interface.
package storage

import "sync"

// Backend is the storage contract consumed by the component registry.
//
// Implementations must be safe for concurrent use. ListNames must return
// names in insertion order so catalogue listings are deterministic.
type Backend interface {
	// Put stores value under (componentType, name), overwriting any
	// previous entry.
	Put(componentType, name string, value any)

	// Get returns the stored value, or nil and false if absent.
	Get(componentType, name string) (any, bool)

	// Has reports whether an entry exists.
	Has(componentType, name string) bool

	// Delete removes an entry. It returns false if the entry was absent.
	Delete(componentType, name string) bool

	// ListNames returns all names stored under componentType in
	// insertion order.
	ListNames(componentType string) []string

	// ListTypes returns all component types that currently hold at
	// least one entry.
	ListTypes() []string
}

// MemoryBackend is an in-memory Backend using nested maps with
// insertion-order indexes for deterministic listings.
type MemoryBackend struct {
	mu        sync.RWMutex
	store     map[string]map[string]any
	order     map[string][]string
	typeOrder []string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		store: make(map[string]map[string]any),
		order: make(map[string][]string),
	}
}

// Put stores value under (componentType, name).
func (m *MemoryBackend) Put(componentType, name string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.store[componentType]
	if !ok {
		entries = make(map[string]any)
		m.store[componentType] = entries
		m.typeOrder = append(m.typeOrder, componentType)
	}

	if _, exists := entries[name]; !exists {
		m.order[componentType] = append(m.order[componentType], name)
	}
	entries[name] = value
}

// Get returns the stored value for (componentType, name).
func (m *MemoryBackend) Get(componentType, name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.store[componentType][name]
	return value, ok
}

// Has reports whether (componentType, name) exists.
func (m *MemoryBackend) Has(componentType, name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.store[componentType][name]
	return ok
}

// Delete removes (componentType, name). Empty types are pruned so
// ListTypes only reports types with live entries.
func (m *MemoryBackend) Delete(componentType, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.store[componentType]
	if !ok {
		return false
	}
	if _, exists := entries[name]; !exists {
		return false
	}

	delete(entries, name)
	m.order[componentType] = removeString(m.order[componentType], name)

	if len(entries) == 0 {
		delete(m.store, componentType)
		delete(m.order, componentType)
		m.typeOrder = removeString(m.typeOrder, componentType)
	}
	return true
}

// ListNames returns the names stored under componentType in insertion order.
func (m *MemoryBackend) ListNames(componentType string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := m.order[componentType]
	result := make([]string, len(names))
	copy(result, names)
	return result
}

// ListTypes returns all component types holding at least one entry, in
// first-insertion order.
func (m *MemoryBackend) ListTypes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.typeOrder))
	copy(result, m.typeOrder)
	return result
}

func removeString(s []string, target string) []string {
	for i, v := range s {
		if v == target {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
