package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// Matches validates that the whole value is matched by re.
// Patterns should be anchored when a full match is intended.
func Matches[S ~string](re *regexp.Regexp) Validation[S] {
	return Check(KindFormat, fmt.Sprintf("must match pattern %s", re.String()), func(v S) bool {
		return re.MatchString(string(v))
	}, map[string]any{"pattern": re.String()})
}

// MatchesPattern compiles pattern once; it panics if the pattern is invalid.
func MatchesPattern[S ~string](pattern string) Validation[S] {
	return Matches[S](regexp.MustCompile(pattern))
}

func DoesNotMatch[S ~string](re *regexp.Regexp) Validation[S] {
	return Check(KindFormat, fmt.Sprintf("must not match pattern %s", re.String()), func(v S) bool {
		return !re.MatchString(string(v))
	}, map[string]any{"pattern": re.String()})
}

// Email validates a bare address (no display name) with a dotted domain.
func Email[S ~string]() Validation[S] {
	return Check(KindFormat, "must be a valid email address", func(v S) bool {
		return isEmail(string(v))
	}, nil)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
