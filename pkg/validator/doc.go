// Package validator provides fluent, type-safe validation of named parameters
// with a choice of how failures are handled.
//
// A session starts with one named parameter and a Mode. Validations are
// attached with Validate, more parameters are chained onto the same session
// with And, and Apply finalizes it:
//
//	err := validator.CollectAll("age", age).
//	    Validate(validator.InRange(0, 150)).
//	    And("retirement_age", retirementAge).
//	    Validate(validator.GreaterThan(age)).
//	    Apply()
//
// # Modes
//
// The mode is fixed when the session starts and decides what happens when a
// validation reports a failure:
//
//   - ThrowFirst (FailFast): the failure halts the session. The running
//     validation stops, every later Validate on the session is skipped, and
//     Apply/Err return that single ValidationError.
//   - ThrowAll (CollectAll): the failure is recorded and validation goes on.
//     Apply returns a ValidationErrors with every failure in the order reported.
//   - Ignore (IgnoreAll): the failure is dropped. Apply always returns nil.
//
// # Sessions and chaining
//
// All parameters of a session share one *Registry. And (or Join, which returns
// an error instead of panicking) hands the same registry and mode to the new
// parameter; nothing is copied, so Apply on any parameter of the chain covers
// all of them. Because And must introduce a new type parameter it is a
// function; Parameter.And is a shortcut for values of the same type:
//
//	p := validator.CollectAll("x", x).Validate(validator.LessThan(3))
//	q := validator.And(p, "name", name).Validate(validator.NotEmpty[string]())
//	err := q.Apply() // failures of both x and name
//
// Sessions are not safe for concurrent use. Keep a session and everything
// chained onto it on one goroutine.
//
// # Writing validations
//
// A Validation[T] receives a Validatable[T] exposing Name, Value and Handle.
// It reports each failure through Handle and never returns or panics with
// one itself; Handle applies the session's mode. Check builds a validation
// from a predicate:
//
//	even := validator.Check(validator.KindInvalid, "must be even",
//	    func(n int) bool { return n%2 == 0 }, nil)
//
// # Errors
//
// ValidationError and ValidationErrors implement error and unwrap to sentinel
// errors per Kind (ErrFieldRequired, ErrOutOfRange, ...), so errors.Is works
// on both. Misusing the package itself (an empty or blank parameter name, a
// nil validation) is reported as an *ArgumentError: returned by New,
// NewChained and Join, and panicked by FailFast, CollectAll, IgnoreAll, And
// and Validate. It is never subject to the session's mode.
//
// # Enums
//
// Go has no enum reflection, so enum types are registered with DefineEnum or
// DefineFlags. DefinedEnum memoizes every value found to be defined in a
// process-wide cache that is never evicted.
package validator
