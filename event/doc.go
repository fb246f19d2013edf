// Package event provides the asynchronous pub/sub bus shared by trading
// services.
//
// The bus decouples components that must react to each other's domain
// events (fills, signals, lifecycle transitions) without direct
// references. Topic names and payload shapes are a convention owned by
// the calling services; the bus only guarantees delivery semantics:
//
//   - Publish takes a snapshot of the topic's subscribers and invokes
//     them in registration (FIFO) order.
//   - A failure or panic in one handler never prevents the remaining
//     handlers from running.
//   - Publish returns only after every handler in the snapshot has
//     completed; the returned error aggregates all handler failures.
//   - Publishing to a topic with no subscribers is a no-op.
//
// Basic usage:
//
//	bus := event.New()
//	sub, _ := bus.SubscribeFunc("trade_executed", func(ctx context.Context, evt event.Event) error {
//	    fill := evt.Payload.(Fill)
//	    return book.Record(fill)
//	})
//	defer bus.Unsubscribe(sub)
//
//	if err := bus.Publish(ctx, "trade_executed", fill); err != nil {
//	    log.Printf("delivery report: %v", err)
//	}
//
// Handlers run sequentially by default. WithMaxConcurrency enables a
// bounded parallel fan-out when handlers are independent; invocation
// start order is still registration order, and Publish still awaits the
// whole fan-out.
//
// A process-wide Default bus is provided; services needing isolation
// should construct their own with New.
package event
