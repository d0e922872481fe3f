package okerr

import "github.com/pkg/errors"

// ErrPhantomType is the panic value of TypedResult.Type.
var ErrPhantomType = errors.New("okerr: TypedResult.Type is a type marker and must not be called")

// TypedResult bundles the Ok and Err constructors for one Result[T, E], so
// callers state the signature once instead of at every return.
type TypedResult[T, E any] struct {
	Ok  func(T) Result[T, E]
	Err func(E) Result[T, E]
}

// Type exists only to name Result[T, E] in declarations. Calling it panics.
func (TypedResult[T, E]) Type() Result[T, E] {
	panic(ErrPhantomType)
}

func okOf[T, E any](v T) Result[T, E] {
	return Ok[T, E](v)
}

func errOf[T, E any](e E) Result[T, E] {
	return Err[T](e)
}

// GetOkErr returns constructors for an explicitly named Result[T, E].
func GetOkErr[T, E any]() TypedResult[T, E] {
	return TypedResult[T, E]{Ok: okOf[T, E], Err: errOf[T, E]}
}

// GetOkErrOf infers the constructors from an existing Result.
func GetOkErrOf[T, E any](Result[T, E]) TypedResult[T, E] {
	return GetOkErr[T, E]()
}

// GetOkErrFunc infers the constructors from a function returning a Result.
// The function is never called.
func GetOkErrFunc[T, E any](func() Result[T, E]) TypedResult[T, E] {
	return GetOkErr[T, E]()
}

// GetOkErrAsync infers the constructors from a function returning a deferred
// Result. The function is never called.
func GetOkErrAsync[T, E any, D Thenable[Result[T, E]]](func() D) TypedResult[T, E] {
	return GetOkErr[T, E]()
}
