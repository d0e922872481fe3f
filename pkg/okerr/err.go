package okerr

// ErrResult is the failure branch of Result. The payload is expected to be an
// error, Fields, List or Flag; any other value is still accepted and coerced by
// UnknownToError when unwrapped.
type ErrResult[T, E any] struct {
	err E
}

// Err wraps e in the failure branch. Construction never fails.
func Err[T, E any](e E) ErrResult[T, E] {
	return ErrResult[T, E]{err: e}
}

// ErrID returns a failure whose payload is a comparable ID, a cheap sentinel
// that does not allocate an error value.
func ErrID[T any](id string) ErrResult[T, ID] {
	return Err[T](ID{ID: id})
}

// ErrFields returns a failure carrying a string-keyed mapping.
func ErrFields[T any](f Fields) ErrResult[T, Fields] {
	return Err[T](f)
}

// ErrList returns a failure carrying an ordered sequence.
func ErrList[T any](l List) ErrResult[T, List] {
	return Err[T](l)
}

// ErrFlag returns a failure that only says "something failed".
func ErrFlag[T any]() ErrResult[T, Flag] {
	return Err[T](Flagged)
}

// ErrorResult returns a fresh Err holding the same payload.
func (r ErrResult[T, E]) ErrorResult() ErrResult[T, E] {
	return ErrResult[T, E]{err: r.err}
}

func (r ErrResult[T, E]) sealed() {}

func (r ErrResult[T, E]) IsOk() bool {
	return false
}

func (r ErrResult[T, E]) IsErr() bool {
	return true
}

func (r ErrResult[T, E]) Value() T {
	var v T
	return v
}

func (r ErrResult[T, E]) Err() E {
	return r.err
}

func (r ErrResult[T, E]) UnwrapOrNil() *T {
	return nil
}

func (r ErrResult[T, E]) UnwrapOr(fallback T) T {
	return fallback
}

// Unwrap returns the payload itself when it already is an error, so the
// caller sees the original instance. Other payloads go through UnknownToError.
func (r ErrResult[T, E]) Unwrap() (T, error) {
	var v T
	return v, UnknownToError(r.err)
}

func (r ErrResult[T, E]) MustUnwrap() T {
	_, err := r.Unwrap()
	panic(err)
}

func (r ErrResult[T, E]) MapOk(_ func(T) T) Result[T, E] {
	return r
}

func (r ErrResult[T, E]) MapErr(fn func(E) E) Result[T, E] {
	return Err[T](fn(r.err))
}

func (r ErrResult[T, E]) MapOkAndErr(m Mappers[T, T, E, E]) Result[T, E] {
	m.check()
	return Err[T](m.Err(r.err))
}

func (r ErrResult[T, E]) OnOk(_ func(T)) Result[T, E] {
	return r
}

func (r ErrResult[T, E]) OnErr(fn func(E)) Result[T, E] {
	fn(r.err)
	return r
}

// Deprecated: use OnOk.
func (r ErrResult[T, E]) IfOk(fn func(T)) Result[T, E] {
	return r.OnOk(fn)
}

// Deprecated: use OnErr.
func (r ErrResult[T, E]) IfErr(fn func(E)) Result[T, E] {
	return r.OnErr(fn)
}
