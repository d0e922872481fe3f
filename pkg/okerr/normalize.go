package okerr

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

const unknownMessage = "unknown"

// CoercedError is the error UnknownToError builds for values that were not
// errors to begin with. The original value is kept as the cause.
type CoercedError struct {
	msg      string
	cause    any
	hasCause bool
}

func (e *CoercedError) Error() string {
	return e.msg
}

// Cause returns the value that was coerced, or nil for plain strings.
func (e *CoercedError) Cause() any {
	return e.cause
}

// Unwrap exposes the cause to errors.Is/As when it is itself an error.
func (e *CoercedError) Unwrap() error {
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// UnknownToError converts any value into an error. It never panics and returns
// the input unchanged only when it already is an error.
//
// Decision order: error as-is; string as message; mapping with a string
// "message" field uses that field, other mappings and everything else use
// SafeStringify (or "unknown"). Mappings and other values keep the original
// as cause.
func UnknownToError(v any) error {
	switch x := v.(type) {
	case error:
		return x
	case string:
		return errors.WithStack(&CoercedError{msg: x})
	}

	if IsPlainObject(v) {
		if msg, ok := messageOf(v); ok {
			return errors.WithStack(&CoercedError{msg: msg, cause: v, hasCause: true})
		}
	}

	msg, ok := SafeStringify(v)
	if !ok {
		msg = unknownMessage
	}
	return errors.WithStack(&CoercedError{msg: msg, cause: v, hasCause: true})
}

// CauseOf returns the original value preserved by UnknownToError.
func CauseOf(err error) (any, bool) {
	var ce *CoercedError
	if errors.As(err, &ce) && ce.hasCause {
		return ce.cause, true
	}
	return nil, false
}

// IsPlainObject reports whether v is mapping-like: a map with string keys or
// a struct, possibly behind a pointer.
func IsPlainObject(v any) bool {
	if IsNil(v) {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	default:
		return false
	}
}

// SafeStringify renders v as JSON. It reports false instead of panicking or
// failing on values JSON cannot represent.
func SafeStringify(v any) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()

	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func messageOf(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		m := rv.MapIndex(reflect.ValueOf("message").Convert(rv.Type().Key()))
		if !m.IsValid() {
			return "", false
		}
		if m.Kind() == reflect.Interface {
			m = m.Elem()
		}
		if m.IsValid() && m.Kind() == reflect.String {
			return m.String(), true
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Type.Kind() != reflect.String {
				continue
			}
			if fieldName(f) == "message" {
				return rv.Field(i).String(), true
			}
		}
	}
	return "", false
}

// fieldName is the key SafeStringify renders for f: the json tag name when
// present, the lower-cased Go name "message" only for an untagged Message.
func fieldName(f reflect.StructField) string {
	name := jsonName(f)
	if name == "-" {
		return ""
	}
	if name != "" {
		return name
	}
	if f.Name == "Message" {
		return "message"
	}
	return f.Name
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

