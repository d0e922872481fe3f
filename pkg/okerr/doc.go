// Package okerr provides Result[T, E], a success/failure value that replaces
// panics and bare error returns for expected failures while staying
// interoperable with code that still returns errors or panics.
//
// Highlights:
// - Ok/OkVoid/Err/ErrID: construct the two independent variants
// - MapOk/MapErr/MapOkAndErr: transform one or both branches into a new Result
// - MapToValue: collapse a Result into a plain value via per-branch handlers
// - OnOk/OnErr: side effects that fire only on the matching branch
// - UnwrapOr/UnwrapOrNil/Unwrap/MustUnwrap: leave the Result world
// - UnknownToError: coerce any recovered or rejected value into an error
// - GetOkErr: constructors pre-typed for a declared Result signature
// - IsResult/As: runtime shape checks at untyped boundaries
//
// Adapters for error-returning, panicking and asynchronous code live in
// package adapt; the deferred-value primitive lives in package deferred.
package okerr
