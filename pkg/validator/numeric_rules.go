package validator

import (
	"cmp"
	"fmt"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InRange validates that min <= value <= max.
func InRange[T cmp.Ordered](min, max T) Validation[T] {
	return Check(KindOutOfRange, fmt.Sprintf("must be between %v and %v", min, max), func(v T) bool {
		return v >= min && v <= max
	}, map[string]any{"min": min, "max": max})
}

func LessThan[T cmp.Ordered](bound T) Validation[T] {
	return Check(KindOutOfRange, fmt.Sprintf("must be less than %v", bound), func(v T) bool {
		return v < bound
	}, map[string]any{"max": bound})
}

func LessOrEqual[T cmp.Ordered](bound T) Validation[T] {
	return Check(KindOutOfRange, fmt.Sprintf("must be at most %v", bound), func(v T) bool {
		return v <= bound
	}, map[string]any{"max": bound})
}

func GreaterThan[T cmp.Ordered](bound T) Validation[T] {
	return Check(KindOutOfRange, fmt.Sprintf("must be greater than %v", bound), func(v T) bool {
		return v > bound
	}, map[string]any{"min": bound})
}

func GreaterOrEqual[T cmp.Ordered](bound T) Validation[T] {
	return Check(KindOutOfRange, fmt.Sprintf("must be at least %v", bound), func(v T) bool {
		return v >= bound
	}, map[string]any{"min": bound})
}

// Convenience aliases for common numeric validation cases

// Min is an alias for GreaterOrEqual.
func Min[T cmp.Ordered](min T) Validation[T] {
	return GreaterOrEqual(min)
}

// Max is an alias for LessOrEqual.
func Max[T cmp.Ordered](max T) Validation[T] {
	return LessOrEqual(max)
}

func Positive[T Numeric]() Validation[T] {
	var zero T
	return GreaterThan(zero)
}

func NonNegative[T Numeric]() Validation[T] {
	var zero T
	return GreaterOrEqual(zero)
}
