// Package deferred provides Deferred[T], a value that settles once, later,
// with either a value or a rejection. It is the asynchronous primitive the
// okerr adapters consume.
//
// Highlights:
// - Go: run a function on its own goroutine; returned errors and panics reject
// - Resolve/Reject: already-settled values
// - FromChan: settle with the first value received from a channel
// - Then: derive a Deferred from another Thenable's value
// - IsThenable/ReasonOf: shape detection and raw rejection reasons
//
// Waiting is done through Await, which also honours the caller's context.
// A Deferred that never settles never settles; no deadline is imposed.
package deferred
