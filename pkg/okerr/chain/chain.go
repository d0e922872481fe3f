package chain

import (
	"context"

	"github.com/ib-77/okerr/pkg/okerr"
	"github.com/ib-77/okerr/pkg/okerr/adapt"
)

// Chain wraps an okerr.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result okerr.Result[T, E]
}

// Start creates a new chain from an okerr.Result
func Start[T, E any](ctx context.Context, result okerr.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: okerr.Ok[T, E](value),
	}
}

// Result returns the underlying okerr.Result
func (c *Chain[T, E]) Result() okerr.Result[T, E] {
	return c.result
}

// Then chains a function that returns okerr.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) okerr.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: okerr.AndThen(c.result, func(v T) okerr.Result[U, E] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error); failures and panics are
// normalized into E
func ThenTry[T, U, E any](c *Chain[T, E], tryOnOk func(context.Context, T) (U, error),
	normalize adapt.Normalizer[E]) *Chain[U, E] {
	return Then(c, func(ctx context.Context, v T) okerr.Result[U, E] {
		return adapt.ResultifyWith(func() (U, error) { return tryOnOk(ctx, v) }, normalize)
	})
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: okerr.MapOk(c.result, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T, E]) Ensure(onOk func(context.Context, T)) *Chain[T, E] {
	c.result.OnOk(func(v T) { onOk(c.ctx, v) })
	return c
}

// Recover performs a side effect on failure without changing the result
func (c *Chain[T, E]) Recover(onErr func(context.Context, E)) *Chain[T, E] {
	c.result.OnErr(func(e E) { onErr(c.ctx, e) })
	return c
}

// Finally collapses the chain into a final value
func Finally[T, E, V any](c *Chain[T, E], onOk func(context.Context, T) V, onErr func(context.Context, E) V) V {
	return okerr.MapToValue(c.result, okerr.Matchers[T, E, V]{
		Ok:  func(v T) V { return onOk(c.ctx, v) },
		Err: func(e E) V { return onErr(c.ctx, e) },
	})
}
