package validator

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// ErrUndefinedEnumType is returned when an enum type was never registered
// with DefineEnum or DefineFlags.
var ErrUndefinedEnumType = errors.New("enum type is not defined")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// enums holds one *enumSet[T] per registered enum type. It is process-wide,
// filled lazily and never evicted: every value that once passed stays cached.
// Only defined values are cached, so the size is bounded by the number of
// distinct valid values seen, which for flag enums can be every combination.
var enums sync.Map // reflect.Type -> *enumSet[T]

type enumSet[T Integer] struct {
	names   map[T]string
	ordered []T // members, largest first
	flags   bool

	mu    sync.RWMutex
	known map[T]struct{}
}

// DefineEnum registers the named members of T. Redefining a type replaces it.
func DefineEnum[T Integer](members map[T]string) {
	defineEnum(members, false)
}

// DefineFlags registers T as a bit-flag enum: besides the members themselves,
// any combination of named flags is a defined value.
func DefineFlags[T Integer](members map[T]string) {
	defineEnum(members, true)
}

func defineEnum[T Integer](members map[T]string, flags bool) {
	set := &enumSet[T]{
		names: make(map[T]string, len(members)),
		flags: flags,
		known: make(map[T]struct{}),
	}
	for v, name := range members {
		set.names[v] = name
		set.ordered = append(set.ordered, v)
	}
	slices.SortFunc(set.ordered, func(a, b T) int { return cmp.Compare(b, a) })
	enums.Store(reflect.TypeFor[T](), set)
}

func lookupEnum[T Integer]() (*enumSet[T], bool) {
	v, ok := enums.Load(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	set, ok := v.(*enumSet[T])
	return set, ok
}

// IsDefinedEnum reports whether v is a defined value of T. It is false for
// types that were never registered.
func IsDefinedEnum[T Integer](v T) bool {
	set, ok := lookupEnum[T]()
	if !ok {
		return false
	}
	return set.defined(v)
}

// EnumString formats v the way membership is decided: a member name, a
// comma-separated list of flag names, or the decimal number.
func EnumString[T Integer](v T) string {
	set, ok := lookupEnum[T]()
	if !ok {
		return fmt.Sprintf("%d", v)
	}
	return set.format(v)
}

// DefinedEnum validates that the value is a defined member of T, or for flag
// enums a combination of defined flags. It panics if T was never registered.
func DefinedEnum[T Integer]() Validation[T] {
	set, ok := lookupEnum[T]()
	if !ok {
		panic(newArgumentError(reflect.TypeFor[T]().String(), ErrUndefinedEnumType))
	}
	typeName := reflect.TypeFor[T]().String()
	return Check(KindEnum, fmt.Sprintf("must be a defined %s value", typeName), set.defined,
		map[string]any{"type": typeName})
}

func (s *enumSet[T]) defined(v T) bool {
	s.mu.RLock()
	_, hit := s.known[v]
	s.mu.RUnlock()
	if hit {
		return true
	}

	if _, ok := s.names[v]; !ok {
		if !s.flags {
			return false
		}
		// A value that is not a member is accepted when it formats as flag
		// names rather than as a raw number.
		str := s.format(v)
		if str == "" || str[0] == '-' || (str[0] >= '0' && str[0] <= '9') {
			return false
		}
	}

	s.mu.Lock()
	s.known[v] = struct{}{}
	s.mu.Unlock()
	return true
}

func (s *enumSet[T]) format(v T) string {
	if name, ok := s.names[v]; ok {
		return name
	}
	if !s.flags || v == 0 {
		return fmt.Sprintf("%d", v)
	}

	remaining := v
	var parts []string
	for _, m := range s.ordered {
		if m == 0 {
			continue
		}
		if remaining&m == m {
			parts = append(parts, s.names[m])
			remaining &^= m
		}
	}
	if remaining != 0 || len(parts) == 0 {
		return fmt.Sprintf("%d", v)
	}
	slices.Reverse(parts)
	return strings.Join(parts, ", ")
}
