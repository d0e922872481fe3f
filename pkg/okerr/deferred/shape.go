package deferred

import (
	"context"
	"reflect"

	"github.com/ib-77/okerr/pkg/okerr"
	"github.com/pkg/errors"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// IsThenable reports whether v has an Await(context.Context) (T, error)
// method, whatever T is.
func IsThenable(v any) bool {
	if okerr.IsNil(v) {
		return false
	}
	m, ok := reflect.TypeOf(v).MethodByName("Await")
	if !ok {
		return false
	}
	mt := m.Type
	return mt.NumIn() == 2 && mt.In(1) == contextType &&
		mt.NumOut() == 2 && mt.Out(1) == errorType
}

// ReasonOf returns what a Deferred was actually rejected with: the wrapped
// value of a Rejection, or err itself.
func ReasonOf(err error) any {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason
	}
	return err
}
