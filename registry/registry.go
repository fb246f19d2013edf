// Package registry provides the shared component catalogue for trading
// services.
//
// Plugin packages (strategies, data sources, screener providers) announce
// themselves into a registry by (category, name) without the core ever
// importing them, and composition code later resolves them by the same key.
// The registry stores factories, never instances; it is populated during a
// single-threaded bootstrap phase and read-mostly afterward. Concurrent
// reads are safe; concurrent registration after bootstrap needs external
// synchronization.
//
// Basic usage:
//
//	reg := registry.New()
//	err := registry.Register(reg, registry.CategoryStrategy, "RSI2", newRSI2)
//	factory, err := registry.Get[Strategy](reg, registry.CategoryStrategy, "RSI2")
//
// A process-wide Default registry is provided for bootstrap-time
// registration from package init paths.
package registry

import (
	"log/slog"
	"sync"

	"github.com/connorslab/tradecore/storage"
)

// Category identifies a kind of pluggable component.
type Category string

// Built-in component categories.
const (
	CategoryStrategy         Category = "strategy"
	CategoryDatasource       Category = "datasource"
	CategoryScreenerProvider Category = "screener_provider"
	CategoryScreeningConfig  Category = "screening_config"
	CategoryPlugin           Category = "plugin"
	CategoryIndicator        Category = "indicator"
	CategoryRegimeMethod     Category = "regime_method"
	CategorySRMethod         Category = "sr_method"
	CategoryBot              Category = "bot"
)

// Params carries construction arguments into a factory.
type Params map[string]any

// Factory produces a component instance from construction parameters.
type Factory[T any] func(params Params) (T, error)

// Registry is a catalogue of component factories keyed by
// (category, name). Lookups are case-sensitive and exact-match.
type Registry struct {
	mu        sync.Mutex // serializes the check-then-put in Register
	backend   storage.Backend
	overwrite bool
	logger    *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithBackend sets the storage backend. Default is an in-memory backend.
func WithBackend(b storage.Backend) Option {
	return func(r *Registry) {
		r.backend = b
	}
}

// WithOverwrite makes duplicate registrations overwrite the previous
// entry with a warning instead of failing.
func WithOverwrite() Option {
	return func(r *Registry) {
		r.overwrite = true
	}
}

// WithLogger sets the logger used for overwrite warnings.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		backend: storage.NewMemoryBackend(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry used by plugin packages that
// register themselves at init time. Services needing isolation (tests,
// embedded tooling) should construct their own registry with New.
var Default = New()

// Register records factory under (category, name).
//
// By default a duplicate (category, name) fails with
// ErrDuplicateRegistration so accidental collisions between independently
// loaded plugin packages surface immediately. With WithOverwrite the
// latest registration wins and a warning is logged.
func (r *Registry) Register(category Category, name string, factory any) error {
	if category == "" {
		return ErrEmptyCategory
	}
	if name == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend.Has(string(category), name) {
		if !r.overwrite {
			return &DuplicateError{Category: category, Name: name}
		}
		r.logger.Warn("overwriting registered component",
			"category", string(category), "name", name)
	}

	r.backend.Put(string(category), name, factory)
	return nil
}

// Get returns the factory registered under (category, name). It fails
// with ErrNotFound if no entry exists; it never auto-creates.
func (r *Registry) Get(category Category, name string) (any, error) {
	factory, ok := r.backend.Get(string(category), name)
	if !ok {
		return nil, &NotFoundError{
			Category:  category,
			Name:      name,
			Available: r.backend.ListNames(string(category)),
		}
	}
	return factory, nil
}

// Has reports whether (category, name) is registered.
func (r *Registry) Has(category Category, name string) bool {
	return r.backend.Has(string(category), name)
}

// List returns the names registered under category in registration
// order, for discovery and introspection.
func (r *Registry) List(category Category) []string {
	return r.backend.ListNames(string(category))
}

// Categories returns all categories with at least one registration.
func (r *Registry) Categories() []Category {
	types := r.backend.ListTypes()
	result := make([]Category, len(types))
	for i, t := range types {
		result[i] = Category(t)
	}
	return result
}

// Unregister removes (category, name). It is idempotent: removing an
// absent entry is not an error. Used for test isolation.
func (r *Registry) Unregister(category Category, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.Delete(string(category), name)
}

// Register records a typed factory in r. It is the preferred registration
// surface: the factory's component type is checked again at lookup time
// by Get and Create.
func Register[T any](r *Registry, category Category, name string, factory Factory[T]) error {
	if factory == nil {
		return ErrNilFactory
	}
	return r.Register(category, name, factory)
}

// Get returns the typed factory registered under (category, name). It
// fails with ErrNotFound for missing entries and ErrFactoryType when the
// stored factory was registered with a different component type.
func Get[T any](r *Registry, category Category, name string) (Factory[T], error) {
	raw, err := r.Get(category, name)
	if err != nil {
		return nil, err
	}

	factory, ok := raw.(Factory[T])
	if !ok {
		return nil, &factoryTypeError{category: category, name: name, stored: raw}
	}
	return factory, nil
}

// Create resolves the typed factory and invokes it with params.
func Create[T any](r *Registry, category Category, name string, params Params) (T, error) {
	factory, err := Get[T](r, category, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return factory(params)
}
