package override

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the override engine.
var (
	// ErrInvalidDirective is returned for a directive that is not in
	// "key:value" form.
	ErrInvalidDirective = errors.New("invalid override directive")

	// ErrUnknownPath is returned when a directive path does not exist
	// in the base configuration.
	ErrUnknownPath = errors.New("unknown parameter path")

	// ErrTypeConversion is returned when a literal cannot be converted
	// to the type of the existing field at the directive path.
	ErrTypeConversion = errors.New("cannot convert override value")

	// ErrUnknownPlaceholder is returned when a {name} placeholder
	// refers to a parameter that does not exist.
	ErrUnknownPlaceholder = errors.New("unknown placeholder parameter")
)

// DirectiveError reports a failure applying one directive.
type DirectiveError struct {
	// Path is the directive's parameter path.
	Path string

	// Value is the directive's raw literal.
	Value string

	// Err is the underlying failure (ErrUnknownPath or
	// ErrTypeConversion, possibly wrapped).
	Err error
}

// Error implements the error interface.
func (e *DirectiveError) Error() string {
	return fmt.Sprintf("directive %q: %v", e.Path+":"+e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// ApplyError aggregates every directive failure from one Apply call.
// All directives are attempted before this is returned, so one bad entry
// does not hide errors in the rest of the batch.
type ApplyError struct {
	// Errors holds one *DirectiveError per failed directive, in batch
	// order.
	Errors []error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d override directive(s) failed: %s",
		len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap returns the per-directive failures for errors.Is / errors.As.
func (e *ApplyError) Unwrap() []error {
	return e.Errors
}
