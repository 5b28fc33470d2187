package validator

import (
	"fmt"
	"slices"
)

// OneOf validates membership in a fixed set of values.
func OneOf[T comparable](allowed ...T) Validation[T] {
	return Check(KindNotAllowed, fmt.Sprintf("must be one of: %v", allowed), func(v T) bool {
		return slices.Contains(allowed, v)
	}, map[string]any{"allowed_values": allowed})
}

func NoneOf[T comparable](forbidden ...T) Validation[T] {
	return Check(KindNotAllowed, fmt.Sprintf("must not be one of: %v", forbidden), func(v T) bool {
		return !slices.Contains(forbidden, v)
	}, map[string]any{"forbidden_values": forbidden})
}
