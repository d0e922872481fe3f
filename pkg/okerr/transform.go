package okerr

import "github.com/pkg/errors"

// ErrMissingHandler is the panic value when Mappers or Matchers lack a branch.
var ErrMissingHandler = errors.New("okerr: both Ok and Err handlers are required")

// Mappers holds one transformation per branch for MapOkAndErr.
type Mappers[T, U, E, F any] struct {
	Ok  func(T) U
	Err func(E) F
}

func (m Mappers[T, U, E, F]) check() {
	if m.Ok == nil || m.Err == nil {
		panic(ErrMissingHandler)
	}
}

// Matchers holds one handler per branch for MapToValue. Both produce the same
// plain type.
type Matchers[T, E, V any] struct {
	Ok  func(T) V
	Err func(E) V
}

// MapOk transforms the Ok value, possibly to another type. Err passes through.
func MapOk[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.IsOk() {
		return Ok[U, E](fn(r.Value()))
	}
	return Err[U](r.Err())
}

// MapErr transforms the Err payload, possibly to another type. Ok passes through.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.IsOk() {
		return Ok[T, F](r.Value())
	}
	return Err[T](fn(r.Err()))
}

// MapOkAndErr transforms whichever branch r holds.
func MapOkAndErr[T, U, E, F any](r Result[T, E], m Mappers[T, U, E, F]) Result[U, F] {
	m.check()
	if r.IsOk() {
		return Ok[U, F](m.Ok(r.Value()))
	}
	return Err[U](m.Err(r.Err()))
}

// MapToValue collapses r into a plain value. Nothing can be chained after it.
func MapToValue[T, E, V any](r Result[T, E], m Matchers[T, E, V]) V {
	if m.Ok == nil || m.Err == nil {
		panic(ErrMissingHandler)
	}
	if r.IsOk() {
		return m.Ok(r.Value())
	}
	return m.Err(r.Err())
}

// AndThen feeds the Ok value into a step that may itself fail.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.IsOk() {
		return fn(r.Value())
	}
	return Err[U](r.Err())
}

// OrElse gives an Err a chance to recover, possibly changing the payload type.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.IsOk() {
		return Ok[T, F](r.Value())
	}
	return fn(r.Err())
}

// FromTuple converts a (value, error) pair into a Result.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}
