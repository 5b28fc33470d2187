package validator

// Check builds a validation from a predicate. When ok returns false the
// parameter reports a failure of the given kind and message; values are added
// to the failure's translation values.
func Check[T any](kind Kind, message string, ok func(T) bool, values map[string]any) Validation[T] {
	return func(p Validatable[T]) {
		if !ok(p.Value()) {
			p.Handle(NewValidationError(p.Name(), kind, message, values))
		}
	}
}

// Func adapts a function returning an error into a validation. A non-nil
// ValidationError (or aggregate) is reported as is; any other error becomes
// an invalid-value failure carrying the error text.
func Func[T any](fn func(T) error) Validation[T] {
	return func(p Validatable[T]) {
		err := fn(p.Value())
		if err == nil {
			return
		}
		if failures := ExtractValidationErrors(err); len(failures) > 0 {
			for _, f := range failures {
				p.Handle(f)
			}
			return
		}
		p.Handle(NewValidationError(p.Name(), KindInvalid, err.Error(), nil))
	}
}

// All groups validations so they can be attached as one.
// A nil validation panics with an *ArgumentError.
func All[T any](validations ...Validation[T]) Validation[T] {
	mustValidations(validations)
	return func(p Validatable[T]) {
		for _, v := range validations {
			v(p)
		}
	}
}

func mustValidations[T any](validations []Validation[T]) {
	for _, v := range validations {
		if v == nil {
			panic(newArgumentError("validation", ErrNilValidation))
		}
	}
}
