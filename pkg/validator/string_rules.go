package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func NotEmpty[S ~string]() Validation[S] {
	return Check(KindEmpty, "cannot be empty", func(v S) bool {
		return v != ""
	}, nil)
}

// NotWhiteSpace fails for empty strings and strings made only of white space.
func NotWhiteSpace[S ~string]() Validation[S] {
	return Check(KindEmpty, "cannot be empty or consist only of white-space characters", func(v S) bool {
		return strings.TrimSpace(string(v)) != ""
	}, nil)
}

// MinLen counts runes, not bytes.
func MinLen[S ~string](min int) Validation[S] {
	return Check(KindLength, fmt.Sprintf("must be at least %d characters long", min), func(v S) bool {
		return utf8.RuneCountInString(string(v)) >= min
	}, map[string]any{"min": min})
}

func MaxLen[S ~string](max int) Validation[S] {
	return Check(KindLength, fmt.Sprintf("must be at most %d characters long", max), func(v S) bool {
		return utf8.RuneCountInString(string(v)) <= max
	}, map[string]any{"max": max})
}

func Len[S ~string](exact int) Validation[S] {
	return Check(KindLength, fmt.Sprintf("must be exactly %d characters long", exact), func(v S) bool {
		return utf8.RuneCountInString(string(v)) == exact
	}, map[string]any{"length": exact})
}

func StartsWith[S ~string](prefix string) Validation[S] {
	return Check(KindFormat, fmt.Sprintf("must start with %q", prefix), func(v S) bool {
		return strings.HasPrefix(string(v), prefix)
	}, map[string]any{"prefix": prefix})
}

func EndsWith[S ~string](suffix string) Validation[S] {
	return Check(KindFormat, fmt.Sprintf("must end with %q", suffix), func(v S) bool {
		return strings.HasSuffix(string(v), suffix)
	}, map[string]any{"suffix": suffix})
}

func Contains[S ~string](substr string) Validation[S] {
	return Check(KindFormat, fmt.Sprintf("must contain %q", substr), func(v S) bool {
		return strings.Contains(string(v), substr)
	}, map[string]any{"substring": substr})
}
