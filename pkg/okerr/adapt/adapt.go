package adapt

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/ib-77/okerr/pkg/okerr"
	"github.com/ib-77/okerr/pkg/okerr/deferred"
	"github.com/pkg/errors"
)

// ErrNoNormalizer is the panic value when a nil Normalizer is used with an E
// that cannot hold the error produced by okerr.UnknownToError.
var ErrNoNormalizer = errors.New("adapt: a Normalizer is required for this error type")

// Normalizer converts a raw failure, as returned, panicked or rejected, into
// the Err payload.
type Normalizer[E any] func(raw any) E

// ToError is the default Normalizer.
var ToError Normalizer[error] = okerr.UnknownToError

func normalizerOrDefault[E any](normalize Normalizer[E]) Normalizer[E] {
	if normalize != nil {
		return normalize
	}
	if _, ok := any(okerr.UnknownToError(nil)).(E); !ok {
		panic(ErrNoNormalizer)
	}
	return func(raw any) E {
		return any(okerr.UnknownToError(raw)).(E)
	}
}

// settle is the single resolution routine behind every call shape.
func settle[T, E any](value T, raw any, failed bool, normalize Normalizer[E]) okerr.Result[T, E] {
	if failed {
		return okerr.Err[T](normalize(raw))
	}
	return okerr.Ok[T, E](value)
}

// call runs fn, converting a returned error or a panic into the raw failure.
func call[T any](logger log.Interface, fn func() (T, error)) (value T, raw any, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithFields(log.Fields{
				"panic": fmt.Sprint(r),
			}).Debug("adapt: recovered panic")
			var zero T
			value, raw, failed = zero, r, true
		}
	}()

	v, err := fn()
	if err != nil {
		return v, err, true
	}
	return v, nil, false
}

// Resultify calls fn now and wraps its outcome.
func Resultify[T any](fn func() (T, error)) okerr.Result[T, error] {
	return ResultifyWith(fn, ToError)
}

// ResultifyWith is Resultify with a custom Normalizer.
func ResultifyWith[T, E any](fn func() (T, error), normalize Normalizer[E]) okerr.Result[T, E] {
	return ResultifyContext(context.Background(), fn, normalize)
}

// ResultifyContext is ResultifyWith logging through the logger attached to
// ctx by okerr.WithLogger. ctx is not passed to fn.
func ResultifyContext[T, E any](ctx context.Context, fn func() (T, error),
	normalize Normalizer[E]) okerr.Result[T, E] {
	normalize = normalizerOrDefault(normalize)
	v, raw, failed := call(okerr.LoggerFrom(ctx), fn)
	return settle(v, raw, failed, normalize)
}

// ResultifyAsync calls fn now and wraps the settlement of the Thenable it
// returns. The returned Deferred always fulfills.
func ResultifyAsync[T any, D okerr.Thenable[T]](ctx context.Context,
	fn func() D) *deferred.Deferred[okerr.Result[T, error]] {
	return ResultifyAsyncWith[T](ctx, fn, ToError)
}

// ResultifyAsyncWith is ResultifyAsync with a custom Normalizer.
func ResultifyAsyncWith[T any, D okerr.Thenable[T], E any](ctx context.Context,
	fn func() D, normalize Normalizer[E]) *deferred.Deferred[okerr.Result[T, E]] {

	normalize = normalizerOrDefault(normalize)

	d, raw, failed := call(okerr.LoggerFrom(ctx), func() (D, error) {
		return fn(), nil
	})
	if failed {
		return deferred.Resolve(settle[T](*new(T), raw, true, normalize))
	}
	return ResultifyDeferredWith[T](ctx, d, normalize)
}

// ResultifyDeferred wraps the settlement of a Thenable already in flight.
func ResultifyDeferred[T any](ctx context.Context,
	d okerr.Thenable[T]) *deferred.Deferred[okerr.Result[T, error]] {
	return ResultifyDeferredWith(ctx, d, ToError)
}

// ResultifyDeferredWith is ResultifyDeferred with a custom Normalizer.
func ResultifyDeferredWith[T, E any](ctx context.Context,
	d okerr.Thenable[T], normalize Normalizer[E]) *deferred.Deferred[okerr.Result[T, E]] {

	normalize = normalizerOrDefault(normalize)

	return deferred.Go(ctx, func(ctx context.Context) (okerr.Result[T, E], error) {
		logger := okerr.LoggerFrom(ctx)
		v, raw, failed := call(logger, func() (T, error) {
			return d.Await(ctx)
		})
		if failed {
			if err, ok := raw.(error); ok {
				if okerr.IsCancellationError(err) && ctx.Err() != nil {
					logger.WithFields(log.Fields{
						"reason": err.Error(),
					}).Debug("adapt: gave up waiting")
				}
				raw = deferred.ReasonOf(err)
			}
		}
		return settle(v, raw, failed, normalize), nil
	})
}
