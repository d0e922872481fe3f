// Package chain provides a fluent wrapper around okerr.Result for building
// synchronous chains that carry a context and may change the value type.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error via a Normalizer
// - Map: transform the successful value (T -> U)
// - Ensure/Recover: run side effects on success or failure without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
