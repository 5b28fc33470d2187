package validator

import (
	"fmt"
	"reflect"
)

// NotNil fails when the value is nil: a nil interface, pointer, map, slice,
// channel or func. Non-nillable values always pass.
func NotNil[T any]() Validation[T] {
	return Check(KindRequired, "value cannot be nil", func(v T) bool {
		return !isNil(v)
	}, nil)
}

// NotZero fails when the value equals the zero value of its type.
func NotZero[T comparable]() Validation[T] {
	var zero T
	return Check(KindRequired, "field is required", func(v T) bool {
		return v != zero
	}, nil)
}

func Equal[T comparable](expected T) Validation[T] {
	return Check(KindInvalid, fmt.Sprintf("must be equal to %v", expected), func(v T) bool {
		return v == expected
	}, map[string]any{"expected": expected})
}

func NotEqual[T comparable](forbidden T) Validation[T] {
	return Check(KindInvalid, fmt.Sprintf("must not be equal to %v", forbidden), func(v T) bool {
		return v != forbidden
	}, map[string]any{"forbidden": forbidden})
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
