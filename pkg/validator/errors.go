package validator

import (
	"errors"
	"fmt"
)

// Failure kinds unwrap to these, so errors.Is works on a single failure as well
// as on the aggregate returned by Apply.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required value is nil.
	ErrFieldRequired = errors.New("field is required")

	// ErrFieldEmpty is returned when a value is present but empty.
	ErrFieldEmpty = errors.New("field is empty")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotAllowed is returned when a value is not in, or is in, a fixed set.
	ErrNotAllowed = errors.New("value not allowed")

	// ErrInvalidEnum is returned when a value is not a defined enum member.
	ErrInvalidEnum = errors.New("undefined enum value")

	// ErrInvalidType is returned when a value does not have the expected type.
	ErrInvalidType = errors.New("invalid type")
)

// Misuse of the package API. These are never routed through a session's mode.
var (
	ErrEmptyName      = errors.New("value cannot be empty")
	ErrWhitespaceName = errors.New("value cannot consist only of white-space characters")
	ErrNilValidation  = errors.New("validation cannot be nil")
	ErrNilRegistry    = errors.New("registry cannot be nil")
	ErrNilChain       = errors.New("chained parameter cannot be nil")
	ErrUnknownMode    = errors.New("unknown exception handling mode")
	ErrModeMismatch   = errors.New("registry is bound to a different exception handling mode")
)

// ArgumentError reports an invalid argument passed to this package itself,
// as opposed to a failed validation of the caller's parameter.
type ArgumentError struct {
	Argument string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func newArgumentError(argument string, err error) *ArgumentError {
	return &ArgumentError{Argument: argument, Err: err}
}

// IsArgumentError reports whether err is, or wraps, an *ArgumentError.
func IsArgumentError(err error) bool {
	var e *ArgumentError
	return errors.As(err, &e)
}
