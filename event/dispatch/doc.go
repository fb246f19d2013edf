// Package dispatch provides handler execution for the event bus.
//
// The Executor runs a single handler with panic recovery and timing. The
// dispatch functions fan one event out to many handlers, either strictly
// sequentially or with bounded parallelism, and always run every handler:
// a failure or panic in one handler never prevents the next from being
// invoked. Results are reported per handler so the bus can assemble a
// delivery report.
package dispatch
