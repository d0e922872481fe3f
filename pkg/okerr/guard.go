package okerr

import "reflect"

var resultMethods = []string{
	"UnwrapOrNil",
	"UnwrapOr",
	"Unwrap",
	"MapOk",
	"MapErr",
	"MapOkAndErr",
	"OnOk",
	"OnErr",
}

var boolType = reflect.TypeOf(true)

// IsResult reports whether v behaves like a Result: it must expose a boolean
// IsOk, an Err accessor and the shared method set. Look-alike structs that
// only carry tag fields are rejected. MustUnwrap, IfOk, IfErr and ErrorResult
// are not required.
func IsResult(v any) bool {
	if IsNil(v) {
		return false
	}

	t := reflect.TypeOf(v)

	isOk, ok := t.MethodByName("IsOk")
	if !ok || !returnsOnly(isOk, boolType) {
		return false
	}
	errM, ok := t.MethodByName("Err")
	if !ok || errM.Type.NumIn() != 1 || errM.Type.NumOut() != 1 {
		return false
	}

	for _, name := range resultMethods {
		if _, ok := t.MethodByName(name); !ok {
			return false
		}
	}
	return true
}

// As narrows v to a Result of the given type parameters.
func As[T, E any](v any) (Result[T, E], bool) {
	r, ok := v.(Result[T, E])
	return r, ok
}

// returnsOnly checks a method without arguments returning a single out. The
// receiver counts as the first input of a reflect.Method.
func returnsOnly(m reflect.Method, out reflect.Type) bool {
	mt := m.Type
	return mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0) == out
}
