package registry

import (
	"errors"
	"fmt"
)

// Errors returned by registry operations.
var (
	// ErrDuplicateRegistration is returned when registering a
	// (category, name) pair that already exists and overwriting is
	// disallowed.
	ErrDuplicateRegistration = errors.New("component already registered")

	// ErrNotFound is returned when looking up an unregistered
	// (category, name) pair.
	ErrNotFound = errors.New("component not found")

	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("factory cannot be nil")

	// ErrEmptyName is returned when the component name is empty.
	ErrEmptyName = errors.New("component name cannot be empty")

	// ErrEmptyCategory is returned when the component category is empty.
	ErrEmptyCategory = errors.New("component category cannot be empty")

	// ErrFactoryType is returned by the typed accessors when the stored
	// factory does not have the requested type.
	ErrFactoryType = errors.New("factory has unexpected type")
)

// NotFoundError reports a failed lookup together with the names that are
// registered under the category, to make typos in configuration files
// easy to spot.
type NotFoundError struct {
	// Category is the component category that was searched.
	Category Category

	// Name is the component name that was not found.
	Name string

	// Available lists the registered names under Category.
	Available []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component %q of category %q not found (available: %v)",
		e.Name, e.Category, e.Available)
}

// Is allows errors.Is to match NotFoundError with ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateError reports a rejected duplicate registration.
type DuplicateError struct {
	// Category is the component category.
	Category Category

	// Name is the already-registered component name.
	Name string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("component %q of category %q is already registered",
		e.Name, e.Category)
}

// Is allows errors.Is to match DuplicateError with ErrDuplicateRegistration.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

// factoryTypeError reports a typed lookup against a factory registered
// with a different component type.
type factoryTypeError struct {
	category Category
	name     string
	stored   any
}

// Error implements the error interface.
func (e *factoryTypeError) Error() string {
	return fmt.Sprintf("component %q of category %q: factory has unexpected type %T",
		e.name, e.category, e.stored)
}

// Is allows errors.Is to match factoryTypeError with ErrFactoryType.
func (e *factoryTypeError) Is(target error) bool {
	return target == ErrFactoryType
}
