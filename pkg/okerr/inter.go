package okerr

import "context"

// Unwrapper leaves the Result world.
type Unwrapper[T any] interface {
	// UnwrapOrNil returns a pointer to the value, or nil on Err
	UnwrapOrNil() *T
	// UnwrapOr returns the value, or fallback on Err
	UnwrapOr(fallback T) T
	// Unwrap returns the value, or the branch error converted to an error
	Unwrap() (T, error)
	// MustUnwrap is Unwrap that panics instead of returning the error
	MustUnwrap() T
}

// Transformer defines the same-type transformations shared by both variants.
type Transformer[T, E any] interface {
	MapOk(fn func(T) T) Result[T, E]
	MapErr(fn func(E) E) Result[T, E]
	MapOkAndErr(m Mappers[T, T, E, E]) Result[T, E]
}

// Hooker defines the side-effect hooks shared by both variants.
type Hooker[T, E any] interface {
	OnOk(fn func(T)) Result[T, E]
	OnErr(fn func(E)) Result[T, E]

	// Deprecated: use OnOk.
	IfOk(fn func(T)) Result[T, E]
	// Deprecated: use OnErr.
	IfErr(fn func(E)) Result[T, E]
}

// Result is either an OkResult or an ErrResult. The set is closed: no other
// type can implement it.
type Result[T, E any] interface {
	// IsOk reports whether this is the Ok branch
	IsOk() bool
	// IsErr is the secondary tag, always the negation of IsOk
	IsErr() bool
	// Value returns the Ok value, or the zero T on Err
	Value() T
	// Err returns the Err payload, or the zero E on Ok
	Err() E

	Unwrapper[T]
	Transformer[T, E]
	Hooker[T, E]

	sealed()
}

// Thenable is a value that settles once, later, with a value or an error.
type Thenable[T any] interface {
	Await(ctx context.Context) (T, error)
}
