package validator

import "fmt"

// Kind classifies a validation failure.
type Kind string

const (
	KindRequired   Kind = "required"
	KindEmpty      Kind = "empty"
	KindLength     Kind = "length"
	KindOutOfRange Kind = "out_of_range"
	KindFormat     Kind = "format"
	KindNotAllowed Kind = "not_allowed"
	KindEnum       Kind = "enum"
	KindType       Kind = "type"
	KindInvalid    Kind = "invalid"
)

var kindErrors = map[Kind]error{
	KindRequired:   ErrFieldRequired,
	KindEmpty:      ErrFieldEmpty,
	KindLength:     ErrInvalidLength,
	KindOutOfRange: ErrOutOfRange,
	KindFormat:     ErrInvalidFormat,
	KindNotAllowed: ErrNotAllowed,
	KindEnum:       ErrInvalidEnum,
	KindType:       ErrInvalidType,
	KindInvalid:    ErrInvalidValue,
}

// Err returns the sentinel error for the kind.
func (k Kind) Err() error {
	if err, ok := kindErrors[k]; ok {
		return err
	}
	return ErrValidationFailed
}

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Kind.Err()
}

// NewValidationError builds a failure for field. The translation key defaults
// to "validation.<kind>" and always carries the field name.
func NewValidationError(field string, kind Kind, message string, values map[string]any) ValidationError {
	tv := make(map[string]any, len(values)+1)
	for k, v := range values {
		tv[k] = v
	}
	tv["field"] = field
	return ValidationError{
		Field:             field,
		Kind:              kind,
		Message:           message,
		TranslationKey:    "validation." + string(kind),
		TranslationValues: tv,
	}
}
