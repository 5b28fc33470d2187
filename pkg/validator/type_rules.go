package validator

import (
	"fmt"
	"reflect"
)

// IsType validates that the dynamic type of the value is exactly U.
func IsType[U any, T any]() Validation[T] {
	want := reflect.TypeFor[U]()
	return Check(KindType, fmt.Sprintf("must be of type %s", want), func(v T) bool {
		return reflect.TypeOf(any(v)) == want
	}, map[string]any{"type": want.String()})
}

// Implements validates that the value can be asserted to I, which is usually
// an interface type.
func Implements[I any, T any]() Validation[T] {
	want := reflect.TypeFor[I]()
	return Check(KindType, fmt.Sprintf("must implement %s", want), func(v T) bool {
		_, ok := any(v).(I)
		return ok
	}, map[string]any{"type": want.String()})
}
