package result

import (
	"context"

	"github.com/ib-77/okerr/pkg/okerr"
	"github.com/ib-77/okerr/pkg/okerr/adapt"
	"github.com/ib-77/okerr/pkg/okerr/deferred"
)

type Result[T, E any] = okerr.Result[T, E]

type TypedResult[T, E any] = okerr.TypedResult[T, E]

type Mappers[T, U, E, F any] = okerr.Mappers[T, U, E, F]

type Matchers[T, E, V any] = okerr.Matchers[T, E, V]

type Normalizer[E any] = adapt.Normalizer[E]

type Thenable[T any] = okerr.Thenable[T]

type Deferred[T any] = deferred.Deferred[T]

func Ok[T, E any](value T) okerr.OkResult[T, E] {
	return okerr.Ok[T, E](value)
}

func OkVoid[E any]() okerr.OkResult[okerr.Void, E] {
	return okerr.OkVoid[E]()
}

func Err[T, E any](e E) okerr.ErrResult[T, E] {
	return okerr.Err[T](e)
}

func ErrID[T any](id string) okerr.ErrResult[T, okerr.ID] {
	return okerr.ErrID[T](id)
}

func UnknownToError(v any) error {
	return okerr.UnknownToError(v)
}

func IsResult(v any) bool {
	return okerr.IsResult(v)
}

func GetOkErr[T, E any]() TypedResult[T, E] {
	return okerr.GetOkErr[T, E]()
}

func GetOkErrOf[T, E any](r Result[T, E]) TypedResult[T, E] {
	return okerr.GetOkErrOf(r)
}

func GetOkErrFunc[T, E any](fn func() Result[T, E]) TypedResult[T, E] {
	return okerr.GetOkErrFunc(fn)
}

func GetOkErrAsync[T, E any, D Thenable[Result[T, E]]](fn func() D) TypedResult[T, E] {
	return okerr.GetOkErrAsync[T, E](fn)
}

func Resultify[T any](fn func() (T, error)) Result[T, error] {
	return adapt.Resultify(fn)
}

func ResultifyWith[T, E any](fn func() (T, error), normalize Normalizer[E]) Result[T, E] {
	return adapt.ResultifyWith(fn, normalize)
}

func ResultifyContext[T, E any](ctx context.Context, fn func() (T, error), normalize Normalizer[E]) Result[T, E] {
	return adapt.ResultifyContext(ctx, fn, normalize)
}

func ResultifyAsync[T any, D Thenable[T]](ctx context.Context, fn func() D) *Deferred[Result[T, error]] {
	return adapt.ResultifyAsync[T](ctx, fn)
}

func ResultifyAsyncWith[T any, D Thenable[T], E any](ctx context.Context, fn func() D,
	normalize Normalizer[E]) *Deferred[Result[T, E]] {
	return adapt.ResultifyAsyncWith[T](ctx, fn, normalize)
}

func ResultifyDeferred[T any](ctx context.Context, d Thenable[T]) *Deferred[Result[T, error]] {
	return adapt.ResultifyDeferred(ctx, d)
}

func ResultifyDeferredWith[T, E any](ctx context.Context, d Thenable[T],
	normalize Normalizer[E]) *Deferred[Result[T, E]] {
	return adapt.ResultifyDeferredWith(ctx, d, normalize)
}

func SafeFn0[T, E any](fn func() (T, error), normalize Normalizer[E]) func() Result[T, E] {
	return adapt.SafeFn0(fn, normalize)
}

func SafeFn1[A, T, E any](fn func(A) (T, error), normalize Normalizer[E]) func(A) Result[T, E] {
	return adapt.SafeFn1(fn, normalize)
}

func SafeFn2[A, B, T, E any](fn func(A, B) (T, error), normalize Normalizer[E]) func(A, B) Result[T, E] {
	return adapt.SafeFn2(fn, normalize)
}

func SafeFn3[A, B, C, T, E any](fn func(A, B, C) (T, error),
	normalize Normalizer[E]) func(A, B, C) Result[T, E] {
	return adapt.SafeFn3(fn, normalize)
}

func SafeFnAsync0[T any, D Thenable[T], E any](fn func(context.Context) D,
	normalize Normalizer[E]) func(context.Context) *Deferred[Result[T, E]] {
	return adapt.SafeFnAsync0[T](fn, normalize)
}

func SafeFnAsync1[A, T any, D Thenable[T], E any](fn func(context.Context, A) D,
	normalize Normalizer[E]) func(context.Context, A) *Deferred[Result[T, E]] {
	return adapt.SafeFnAsync1[A, T](fn, normalize)
}

func SafeFnAsync2[A, B, T any, D Thenable[T], E any](fn func(context.Context, A, B) D,
	normalize Normalizer[E]) func(context.Context, A, B) *Deferred[Result[T, E]] {
	return adapt.SafeFnAsync2[A, B, T](fn, normalize)
}

func SafeFnAsync3[A, B, C, T any, D Thenable[T], E any](fn func(context.Context, A, B, C) D,
	normalize Normalizer[E]) func(context.Context, A, B, C) *Deferred[Result[T, E]] {
	return adapt.SafeFnAsync3[A, B, C, T](fn, normalize)
}

// AsyncUnwrap fulfills with the Ok value of d, or rejects with the error
// Unwrap would return.
func AsyncUnwrap[T, E any](ctx context.Context, d Thenable[Result[T, E]]) *Deferred[T] {
	return deferred.Go(ctx, func(ctx context.Context) (T, error) {
		r, err := d.Await(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		return r.Unwrap()
	})
}

// AsyncMapper transforms a Result that has not settled yet.
type AsyncMapper[T, E any] struct {
	ctx context.Context
	src Thenable[Result[T, E]]
}

func AsyncMap[T, E any](ctx context.Context, d Thenable[Result[T, E]]) AsyncMapper[T, E] {
	return AsyncMapper[T, E]{ctx: ctx, src: d}
}

func (m AsyncMapper[T, E]) Ok(fn func(T) T) *Deferred[Result[T, E]] {
	return AsyncMapOk(m.ctx, m.src, fn)
}

func (m AsyncMapper[T, E]) Err(fn func(E) E) *Deferred[Result[T, E]] {
	return AsyncMapErr(m.ctx, m.src, fn)
}

func (m AsyncMapper[T, E]) OkAndErr(mappers Mappers[T, T, E, E]) *Deferred[Result[T, E]] {
	return deferred.Then(m.ctx, m.src, func(r Result[T, E]) Result[T, E] {
		return okerr.MapOkAndErr(r, mappers)
	})
}

// AsyncMapOk is AsyncMap(...).Ok for a function changing the value type.
func AsyncMapOk[T, U, E any](ctx context.Context, d Thenable[Result[T, E]], fn func(T) U) *Deferred[Result[U, E]] {
	return deferred.Then(ctx, d, func(r Result[T, E]) Result[U, E] {
		return okerr.MapOk(r, fn)
	})
}

// AsyncMapErr is AsyncMap(...).Err for a function changing the payload type.
func AsyncMapErr[T, E, F any](ctx context.Context, d Thenable[Result[T, E]], fn func(E) F) *Deferred[Result[T, F]] {
	return deferred.Then(ctx, d, func(r Result[T, E]) Result[T, F] {
		return okerr.MapErr(r, fn)
	})
}
