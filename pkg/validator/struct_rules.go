package validator

import (
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var structValidator = playground.New(playground.WithRequiredStructEnabled())

// Struct validates a struct (or pointer to struct) using its `validate` tags.
// Each violated tag is reported as its own failure named
// "<parameter>.<Field.Path>". A nil pointer is reported like NotNil; any other
// value that is not a struct is a type failure.
func Struct[T any]() Validation[T] {
	return func(p Validatable[T]) {
		if isNil(p.Value()) {
			p.Handle(NewValidationError(p.Name(), KindRequired, "value cannot be nil", nil))
			return
		}

		err := structValidator.Struct(p.Value())
		if err == nil {
			return
		}

		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			p.Handle(NewValidationError(p.Name(), KindType, "must be a struct", nil))
			return
		}

		for _, fe := range fieldErrs {
			p.Handle(structFailure(p.Name(), fe))
		}
	}
}

func structFailure(parameter string, fe playground.FieldError) ValidationError {
	path := fe.StructNamespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	kind := KindInvalid
	switch fe.Tag() {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		kind = KindRequired
	case "min", "max", "len":
		kind = KindLength
	case "gt", "gte", "lt", "lte":
		kind = KindOutOfRange
	case "oneof":
		kind = KindNotAllowed
	case "email", "url", "uuid", "uuid4", "alpha", "alphanum", "numeric", "e164":
		kind = KindFormat
	}

	message := fmt.Sprintf("failed on the %q rule", fe.Tag())
	if fe.Param() != "" {
		message = fmt.Sprintf("failed on the %q rule (%s)", fe.Tag(), fe.Param())
	}

	return NewValidationError(parameter+"."+path, kind, message, map[string]any{
		"rule":  fe.Tag(),
		"param": fe.Param(),
	})
}
