package validator

import (
	"fmt"
	"slices"
)

func NotEmptySlice[E any]() Validation[[]E] {
	return Check(KindEmpty, "must contain at least one item", func(v []E) bool {
		return len(v) > 0
	}, nil)
}

func MinItems[E any](min int) Validation[[]E] {
	return Check(KindLength, fmt.Sprintf("must have at least %d items", min), func(v []E) bool {
		return len(v) >= min
	}, map[string]any{"min": min})
}

func MaxItems[E any](max int) Validation[[]E] {
	return Check(KindLength, fmt.Sprintf("must have at most %d items", max), func(v []E) bool {
		return len(v) <= max
	}, map[string]any{"max": max})
}

func NoNilElements[E any]() Validation[[]E] {
	return Check(KindRequired, "cannot contain nil items", func(v []E) bool {
		for _, e := range v {
			if isNil(e) {
				return false
			}
		}
		return true
	}, nil)
}

func HasElement[E comparable](element E) Validation[[]E] {
	return Check(KindInvalid, fmt.Sprintf("must contain %v", element), func(v []E) bool {
		return slices.Contains(v, element)
	}, map[string]any{"element": element})
}

// Each runs validations against every element. Failures are reported on the
// collection's session under the name "<parameter>[<index>]".
// A nil validation panics with an *ArgumentError.
func Each[E any](validations ...Validation[E]) Validation[[]E] {
	mustValidations(validations)
	return func(p Validatable[[]E]) {
		for i, e := range p.Value() {
			el := element[E]{
				name:   fmt.Sprintf("%s[%d]", p.Name(), i),
				value:  e,
				parent: p.Handle,
			}
			for _, v := range validations {
				v(el)
			}
		}
	}
}

func NotEmptyMap[K comparable, V any]() Validation[map[K]V] {
	return Check(KindEmpty, "must contain at least one item", func(v map[K]V) bool {
		return len(v) > 0
	}, nil)
}

func HasKey[K comparable, V any](key K) Validation[map[K]V] {
	return Check(KindInvalid, fmt.Sprintf("must contain key %v", key), func(v map[K]V) bool {
		_, ok := v[key]
		return ok
	}, map[string]any{"key": key})
}

// element is the Validatable view of one collection item.
type element[E any] struct {
	name   string
	value  E
	parent func(ValidationError)
}

func (e element[E]) Name() string { return e.name }

func (e element[E]) Value() E { return e.value }

func (e element[E]) Handle(failure ValidationError) {
	if failure.Field == "" {
		failure.Field = e.name
	}
	e.parent(failure)
}
