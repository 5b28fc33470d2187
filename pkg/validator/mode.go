package validator

import (
	"fmt"
	"strings"
)

// Mode decides what happens to a validation failure at the moment it is reported.
// It is fixed when a session starts and shared by every parameter chained onto it.
type Mode uint8

const (
	// ThrowFirst halts the session on the first failure.
	ThrowFirst Mode = iota
	// ThrowAll records every failure and reports them together on Apply.
	ThrowAll
	// Ignore discards failures.
	Ignore
)

func (m Mode) String() string {
	switch m {
	case ThrowFirst:
		return "throw_first"
	case ThrowAll:
		return "throw_all"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	return m <= Ignore
}

// ParseMode converts a textual mode into a Mode. Matching is case-insensitive and
// accepts a few common aliases ("fail_fast", "collect", "noop", ...).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "throw_first", "first", "fail_fast", "failfast":
		return ThrowFirst, nil
	case "throw_all", "all", "collect", "collect_all":
		return ThrowAll, nil
	case "ignore", "none", "noop":
		return Ignore, nil
	}
	return ThrowFirst, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
