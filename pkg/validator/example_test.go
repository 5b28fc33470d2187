package validator_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/paravaly/pkg/validator"
)

func ExampleCollectAll() {
	age, retirementAge := 200, 60

	p := validator.CollectAll("age", age).
		Validate(validator.InRange(0, 150)).
		And("retirement_age", retirementAge).
		Validate(validator.GreaterThan(age))

	err := validator.And(p, "name", "").
		Validate(validator.NotEmpty[string]()).
		Apply()

	fmt.Println(err)
	fmt.Println(errors.Is(err, validator.ErrOutOfRange))
	// Output:
	// validation failed: age: must be between 0 and 150; retirement_age: must be greater than 200; name: cannot be empty
	// true
}

func ExampleFailFast() {
	err := validator.FailFast("x", 10).
		Validate(validator.LessThan(3), validator.Positive[int]()).
		And("y", -1).
		Validate(validator.Positive[int]()).
		Apply()

	var failure validator.ValidationError
	fmt.Println(errors.As(err, &failure), failure.Field)
	fmt.Println(err)
	// Output:
	// true x
	// x: must be less than 3
}

func ExampleIgnoreAll() {
	err := validator.IgnoreAll("port", -1).
		Validate(validator.InRange(1, 65535)).
		Apply()

	fmt.Println(err)
	// Output:
	// <nil>
}

func ExampleNew() {
	_, err := validator.New("   ", 1, validator.ThrowAll)

	fmt.Println(validator.IsArgumentError(err))
	fmt.Println(errors.Is(err, validator.ErrWhitespaceName))
	// Output:
	// true
	// true
}

func ExampleEach() {
	err := validator.CollectAll("tags", []string{"go", "", "slog"}).
		Validate(validator.Each(validator.NotEmpty[string]())).
		Apply()

	fmt.Println(err)
	// Output:
	// validation failed: tags[1]: cannot be empty
}

func ExampleCheck() {
	even := validator.Check(validator.KindInvalid, "must be even",
		func(n int) bool { return n%2 == 0 }, nil)

	err := validator.CollectAll("n", 3).Validate(even).Apply()

	fmt.Println(err)
	// Output:
	// validation failed: n: must be even
}
