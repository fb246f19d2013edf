package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sequential runs every handler in order, one at a time. A handler error
// or panic is recorded in its Result and the next handler still runs.
// If the context is cancelled between handlers, the remaining handlers
// are marked skipped.
func (e *Executor) Sequential(ctx context.Context, event any, handlers []Handler) []Result {
	results := make([]Result, len(handlers))

	for i, handler := range handlers {
		select {
		case <-ctx.Done():
			for j := i; j < len(handlers); j++ {
				results[j] = Result{Error: ctx.Err(), Skipped: true}
			}
			return results
		default:
		}

		results[i] = e.Execute(ctx, event, handler)
	}

	return results
}

// Parallel runs handlers with at most limit executing concurrently.
// Handlers are started in slice order and all of them are awaited before
// returning; errors and panics are isolated per handler exactly as in
// Sequential. A limit below one means no bound.
func (e *Executor) Parallel(ctx context.Context, event any, handlers []Handler, limit int) []Result {
	results := make([]Result, len(handlers))

	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, handler := range handlers {
		i, handler := i, handler
		g.Go(func() error {
			// Execute never returns an error into the group: each
			// outcome lands in its own Result so one failure cannot
			// short-circuit the fan-out.
			results[i] = e.Execute(ctx, event, handler)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
