package deferred

import (
	"context"
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/ib-77/okerr/pkg/okerr"
	"github.com/pkg/errors"
)

// ErrNoValue rejects a FromChan deferred whose channel closed empty.
var ErrNoValue = errors.New("deferred: channel closed without a value")

// Rejection carries a rejection reason that is not an error.
type Rejection struct {
	Reason any
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("deferred: rejected with %v", r.Reason)
}

type Deferred[T any] struct {
	id     uuid.UUID
	done   chan struct{}
	once   sync.Once
	value  T
	err    error
	logger log.Interface
}

var _ okerr.Thenable[int] = (*Deferred[int])(nil)

func newDeferred[T any](ctx context.Context) *Deferred[T] {
	return &Deferred[T]{
		id:     uuid.New(),
		done:   make(chan struct{}),
		logger: okerr.LoggerFrom(ctx),
	}
}

// Go runs fn on a new goroutine. A returned error or a panic rejects the
// Deferred; the panic value becomes the rejection reason.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Deferred[T] {
	d := newDeferred[T](ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.WithFields(log.Fields{
					"deferred": d.id,
					"panic":    r,
				}).Debug("recovered panic")
				d.reject(r)
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			d.reject(err)
			return
		}
		d.resolve(v)
	}()

	return d
}

// Resolve returns a Deferred already fulfilled with v.
func Resolve[T any](v T) *Deferred[T] {
	d := newDeferred[T](context.Background())
	d.resolve(v)
	return d
}

// Reject returns a Deferred already rejected with reason.
func Reject[T any](reason any) *Deferred[T] {
	d := newDeferred[T](context.Background())
	d.reject(reason)
	return d
}

// FromChan settles with the first value received from ch. It rejects with
// ErrNoValue if ch closes first and with the context error if ctx ends first.
func FromChan[T any](ctx context.Context, ch <-chan T) *Deferred[T] {
	d := newDeferred[T](ctx)

	go func() {
		select {
		case v, ok := <-ch:
			if !ok {
				d.reject(ErrNoValue)
				return
			}
			d.resolve(v)
		case <-ctx.Done():
			d.reject(ctx.Err())
		}
	}()

	return d
}

// Then derives a Deferred fulfilled with fn applied to src's value. A
// rejection of src, or a panic in fn, rejects the derived Deferred.
func Then[T, U any](ctx context.Context, src okerr.Thenable[T], fn func(T) U) *Deferred[U] {
	return Go(ctx, func(ctx context.Context) (U, error) {
		v, err := src.Await(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	})
}

func (d *Deferred[T]) ID() uuid.UUID {
	return d.id
}

// Done is closed once the Deferred has settled.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Await blocks until the Deferred settles or ctx ends. Giving up on ctx does
// not affect the Deferred itself.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	default:
	}

	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		d.logger.WithFields(log.Fields{
			"deferred": d.id,
		}).WithError(ctx.Err()).Debug("await abandoned")
		return zero, ctx.Err()
	}
}

func (d *Deferred[T]) resolve(v T) {
	d.once.Do(func() {
		d.value = v
		d.logger.WithFields(log.Fields{
			"deferred": d.id,
			"state":    "fulfilled",
		}).Debug("deferred settled")
		close(d.done)
	})
}

func (d *Deferred[T]) reject(reason any) {
	d.once.Do(func() {
		d.err = asError(reason)
		d.logger.WithFields(log.Fields{
			"deferred": d.id,
			"state":    "rejected",
		}).WithError(d.err).Debug("deferred settled")
		close(d.done)
	})
}

func asError(reason any) error {
	if err, ok := reason.(error); ok && err != nil {
		return err
	}
	return &Rejection{Reason: reason}
}
