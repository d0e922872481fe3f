package okerr

// Void is the value of an Ok that completes without data.
type Void = struct{}

// OkResult is the success branch of Result.
type OkResult[T, E any] struct {
	value T
}

// Ok wraps value in the success branch.
func Ok[T, E any](value T) OkResult[T, E] {
	return OkResult[T, E]{value: value}
}

// OkVoid is Ok for operations that produce no value.
func OkVoid[E any]() OkResult[Void, E] {
	return OkResult[Void, E]{}
}

func (r OkResult[T, E]) sealed() {}

func (r OkResult[T, E]) IsOk() bool {
	return true
}

func (r OkResult[T, E]) IsErr() bool {
	return false
}

func (r OkResult[T, E]) Value() T {
	return r.value
}

func (r OkResult[T, E]) Err() E {
	var e E
	return e
}

func (r OkResult[T, E]) UnwrapOrNil() *T {
	v := r.value
	return &v
}

func (r OkResult[T, E]) UnwrapOr(_ T) T {
	return r.value
}

func (r OkResult[T, E]) Unwrap() (T, error) {
	return r.value, nil
}

func (r OkResult[T, E]) MustUnwrap() T {
	return r.value
}

func (r OkResult[T, E]) MapOk(fn func(T) T) Result[T, E] {
	return Ok[T, E](fn(r.value))
}

func (r OkResult[T, E]) MapErr(_ func(E) E) Result[T, E] {
	return r
}

func (r OkResult[T, E]) MapOkAndErr(m Mappers[T, T, E, E]) Result[T, E] {
	m.check()
	return Ok[T, E](m.Ok(r.value))
}

func (r OkResult[T, E]) OnOk(fn func(T)) Result[T, E] {
	fn(r.value)
	return r
}

func (r OkResult[T, E]) OnErr(_ func(E)) Result[T, E] {
	return r
}

// Deprecated: use OnOk.
func (r OkResult[T, E]) IfOk(fn func(T)) Result[T, E] {
	return r.OnOk(fn)
}

// Deprecated: use OnErr.
func (r OkResult[T, E]) IfErr(fn func(E)) Result[T, E] {
	return r.OnErr(fn)
}
