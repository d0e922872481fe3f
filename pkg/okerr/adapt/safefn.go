package adapt

import (
	"context"

	"github.com/ib-77/okerr/pkg/okerr"
	"github.com/ib-77/okerr/pkg/okerr/deferred"
)

// SafeFn0 wraps fn so that calling it returns a Result instead of an error
// or a panic.
func SafeFn0[T, E any](fn func() (T, error), normalize Normalizer[E]) func() okerr.Result[T, E] {
	normalize = normalizerOrDefault(normalize)
	return func() okerr.Result[T, E] {
		return ResultifyWith(fn, normalize)
	}
}

func SafeFn1[A, T, E any](fn func(A) (T, error), normalize Normalizer[E]) func(A) okerr.Result[T, E] {
	normalize = normalizerOrDefault(normalize)
	return func(a A) okerr.Result[T, E] {
		return ResultifyWith(func() (T, error) { return fn(a) }, normalize)
	}
}

func SafeFn2[A, B, T, E any](fn func(A, B) (T, error), normalize Normalizer[E]) func(A, B) okerr.Result[T, E] {
	normalize = normalizerOrDefault(normalize)
	return func(a A, b B) okerr.Result[T, E] {
		return ResultifyWith(func() (T, error) { return fn(a, b) }, normalize)
	}
}

func SafeFn3[A, B, C, T, E any](fn func(A, B, C) (T, error),
	normalize Normalizer[E]) func(A, B, C) okerr.Result[T, E] {
	normalize = normalizerOrDefault(normalize)
	return func(a A, b B, c C) okerr.Result[T, E] {
		return ResultifyWith(func() (T, error) { return fn(a, b, c) }, normalize)
	}
}

// SafeFnAsync0 wraps a function returning a Thenable so that calling it
// returns a deferred Result that always fulfills.
func SafeFnAsync0[T any, D okerr.Thenable[T], E any](fn func(context.Context) D,
	normalize Normalizer[E]) func(context.Context) *deferred.Deferred[okerr.Result[T, E]] {

	normalize = normalizerOrDefault(normalize)
	return func(ctx context.Context) *deferred.Deferred[okerr.Result[T, E]] {
		return ResultifyAsyncWith[T](ctx, func() D { return fn(ctx) }, normalize)
	}
}

func SafeFnAsync1[A, T any, D okerr.Thenable[T], E any](fn func(context.Context, A) D,
	normalize Normalizer[E]) func(context.Context, A) *deferred.Deferred[okerr.Result[T, E]] {

	normalize = normalizerOrDefault(normalize)
	return func(ctx context.Context, a A) *deferred.Deferred[okerr.Result[T, E]] {
		return ResultifyAsyncWith[T](ctx, func() D { return fn(ctx, a) }, normalize)
	}
}

func SafeFnAsync2[A, B, T any, D okerr.Thenable[T], E any](fn func(context.Context, A, B) D,
	normalize Normalizer[E]) func(context.Context, A, B) *deferred.Deferred[okerr.Result[T, E]] {

	normalize = normalizerOrDefault(normalize)
	return func(ctx context.Context, a A, b B) *deferred.Deferred[okerr.Result[T, E]] {
		return ResultifyAsyncWith[T](ctx, func() D { return fn(ctx, a, b) }, normalize)
	}
}

func SafeFnAsync3[A, B, C, T any, D okerr.Thenable[T], E any](fn func(context.Context, A, B, C) D,
	normalize Normalizer[E]) func(context.Context, A, B, C) *deferred.Deferred[okerr.Result[T, E]] {

	normalize = normalizerOrDefault(normalize)
	return func(ctx context.Context, a A, b B, c C) *deferred.Deferred[okerr.Result[T, E]] {
		return ResultifyAsyncWith[T](ctx, func() D { return fn(ctx, a, b, c) }, normalize)
	}
}
