package okerr

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Messages turns an error, joined or not, into a List payload of messages.
func Messages(err error) List {
	errs := GetErrors(err)
	out := make(List, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
