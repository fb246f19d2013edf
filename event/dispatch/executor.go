package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Handler is the execution contract the dispatcher runs. The event is
// type-erased here; the bus adapts its typed handlers.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// PanicHandler is called when a handler panics.
type PanicHandler func(event any, panicValue any, stack []byte)

// Result describes the outcome of one handler execution.
type Result struct {
	// Success is true if the handler completed without error or panic.
	Success bool

	// Error is the error returned by the handler, if any.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic().
	PanicValue any

	// PanicStack is the stack trace captured at the panic site.
	PanicStack []byte

	// Skipped is true if the handler was not run (context cancelled).
	Skipped bool

	// Duration is how long the handler ran.
	Duration time.Duration
}

// IsSuccess returns true if the handler ran and completed cleanly.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && !r.Skipped
}

// Executor runs event handlers with panic recovery and timing.
type Executor struct {
	panicHandler PanicHandler
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPanicHandler sets the panic handler for the executor.
func WithPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates an executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one handler with the given event and returns the result.
// It recovers from panics so a faulty handler cannot take down the
// publisher.
func (e *Executor) Execute(ctx context.Context, event any, handler Handler) (result Result) {
	select {
	case <-ctx.Done():
		return Result{Error: ctx.Err(), Skipped: true}
	default:
	}

	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Success = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			if e.panicHandler != nil {
				// The panic handler must not be able to crash the
				// process either.
				func() {
					defer func() { _ = recover() }()
					e.panicHandler(event, r, stack)
				}()
			}
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	return result
}
