// Package adapt turns error-returning, panicking and asynchronous code into
// okerr Results.
//
// Highlights:
// - Resultify/ResultifyWith: call a function now; an error or a panic becomes Err
// - ResultifyContext: ResultifyWith logging through the context's logger
// - ResultifyAsync/ResultifyAsyncWith: call a function returning a Thenable
// - ResultifyDeferred/ResultifyDeferredWith: adopt a Thenable already in flight
// - SafeFn0..SafeFn3: wrap a function, keeping its parameters, to return a Result
// - SafeFnAsync0..SafeFnAsync3: the same for functions returning a Thenable
//
// The optional Normalizer replaces okerr.UnknownToError for one call. A nil
// Normalizer is only valid when E is an interface satisfied by error.
package adapt
