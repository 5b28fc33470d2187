package validator

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/paravaly/pkg/logger"
)

// Validatable is the view of a parameter handed to a Validation.
// A validation reads Name and Value and reports every failure through Handle;
// it never returns, panics with or drops a failure on its own.
type Validatable[T any] interface {
	Name() string
	Value() T
	Handle(failure ValidationError)
}

// Validation checks one property of a parameter.
type Validation[T any] func(Validatable[T])

// Chain is the type-independent side of a parameter: everything needed to
// chain another parameter onto its session or to finalize it.
type Chain interface {
	Name() string
	Mode() Mode
	Registry() *Registry
	Apply() error
	Exception() error
	Exceptions() ValidationErrors
	Err() error

	state() session
}

// session is what every parameter chained together shares.
type session struct {
	mode     Mode
	registry *Registry
	opts     options
}

// Parameter is a named value under validation. It is both the handle callers
// attach validations to and the Validatable those validations receive.
//
// A Parameter and the Registry behind it are not safe for concurrent use.
type Parameter[T any] struct {
	name  string
	value T
	session
}

// haltSignal unwinds a running validation after a ThrowFirst failure.
// It never escapes Validate.
type haltSignal struct{}

// New starts a validation session for a single parameter with a fresh registry.
func New[T any](name string, value T, mode Mode, opts ...Option) (*Parameter[T], error) {
	return NewChained(name, value, mode, NewRegistry(), opts...)
}

// NewChained creates a parameter that records its failures into registry.
// The first parameter fixes the registry's mode; a later parameter with a
// different mode is rejected with ErrModeMismatch.
func NewChained[T any](name string, value T, mode Mode, registry *Registry, opts ...Option) (*Parameter[T], error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, newArgumentError("mode", ErrUnknownMode)
	}
	if registry == nil {
		return nil, newArgumentError("registry", ErrNilRegistry)
	}
	if err := registry.bind(mode); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Parameter[T]{
		name:    name,
		value:   value,
		session: session{mode: mode, registry: registry, opts: o},
	}, nil
}

// FailFast starts a ThrowFirst session. It panics if name is empty or blank.
func FailFast[T any](name string, value T, opts ...Option) *Parameter[T] {
	return must(New(name, value, ThrowFirst, opts...))
}

// CollectAll starts a ThrowAll session. It panics if name is empty or blank.
func CollectAll[T any](name string, value T, opts ...Option) *Parameter[T] {
	return must(New(name, value, ThrowAll, opts...))
}

// IgnoreAll starts an Ignore session. It panics if name is empty or blank.
func IgnoreAll[T any](name string, value T, opts ...Option) *Parameter[T] {
	return must(New(name, value, Ignore, opts...))
}

// Join creates a parameter sharing prev's registry, mode and options.
// The registry is shared, never copied.
func Join[U any](prev Chain, name string, value U) (*Parameter[U], error) {
	if prev == nil {
		return nil, newArgumentError("parameter", ErrNilChain)
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &Parameter[U]{
		name:    name,
		value:   value,
		session: prev.state(),
	}, nil
}

// And is Join for fluent use: it panics on an invalid name.
func And[U any](prev Chain, name string, value U) *Parameter[U] {
	return must(Join(prev, name, value))
}

// And chains another parameter of the same type.
func (p *Parameter[T]) And(name string, value T) *Parameter[T] {
	return And[T](p, name, value)
}

// Name returns the parameter name failures are reported under.
func (p *Parameter[T]) Name() string { return p.name }

// Value returns the value under validation.
func (p *Parameter[T]) Value() T { return p.value }

// Mode returns the session's mode, shared by every chained parameter.
func (p *Parameter[T]) Mode() Mode { return p.mode }

// Registry returns the registry shared by every parameter in the session.
func (p *Parameter[T]) Registry() *Registry { return p.registry }

func (p *Parameter[T]) state() session { return p.session }

// Validate runs each validation in order and returns p for chaining.
// Once a ThrowFirst failure has halted the session, remaining validations
// are skipped, on this parameter and on every parameter chained to it.
// A nil validation panics with an *ArgumentError regardless of mode.
func (p *Parameter[T]) Validate(validations ...Validation[T]) *Parameter[T] {
	mustValidations(validations)
	for _, v := range validations {
		if p.registry.Halted() {
			break
		}
		p.run(v)
	}
	return p
}

func (p *Parameter[T]) run(v Validation[T]) {
	p.registry.running++
	defer func() {
		p.registry.running--
		if r := recover(); r != nil {
			// Nested validations (Each) keep unwinding to the outermost run.
			if _, ok := r.(haltSignal); ok && p.registry.running == 0 {
				return
			}
			panic(r)
		}
	}()
	v(p)
}

// Handle reports a failure. It is the only way a failure enters a session:
//
//	ThrowFirst  record it, halt the session, stop the running validation
//	ThrowAll    record it and carry on
//	Ignore      drop it
//
// An empty Field is filled with the parameter name.
func (p *Parameter[T]) Handle(failure ValidationError) {
	if failure.Field == "" {
		failure.Field = p.name
	}

	attrs := []any{
		logger.Parameter(failure.Field),
		logger.Mode(p.mode),
		logger.Kind(string(failure.Kind)),
		logger.Error(failure),
	}

	switch p.mode {
	case Ignore:
		p.opts.logger.Debug("validation failure ignored", attrs...)
	case ThrowAll:
		p.registry.record(failure)
		p.opts.logger.Debug("validation failure recorded", attrs...)
	default:
		if p.registry.Halted() {
			return
		}
		p.registry.record(failure)
		p.registry.halt(failure)
		p.opts.logger.Debug("validation halted", attrs...)
		if p.registry.running > 0 {
			panic(haltSignal{})
		}
	}
}

// Apply finalizes the session.
//
// Under ThrowAll it returns a ValidationErrors holding every recorded failure
// in order, or nil. Under ThrowFirst it returns the single failure that halted
// the session, or nil. Under Ignore it always returns nil.
// Apply does not change the session; calling it again returns the same result.
func (p *Parameter[T]) Apply() error {
	switch p.mode {
	case ThrowAll:
		err := p.Exception()
		if err != nil {
			p.opts.logger.Info("validation failed",
				logger.Parameter(p.name),
				logger.Mode(p.mode),
				logger.FailureCount(p.registry.Len()),
			)
		}
		return err
	case Ignore:
		return nil
	default:
		return p.registry.Err()
	}
}

// Exception returns the aggregate Apply would return under ThrowAll, or nil.
// It is always nil under ThrowFirst (use Err) and under Ignore.
func (p *Parameter[T]) Exception() error {
	if p.mode != ThrowAll || p.registry.Len() == 0 {
		return nil
	}
	return p.registry.Failures()
}

// Exceptions returns the recorded failures, possibly empty. Under ThrowFirst
// it holds at most the halting failure; under Ignore it is always empty.
func (p *Parameter[T]) Exceptions() ValidationErrors {
	return p.registry.Failures()
}

// Err returns the failure that halted a ThrowFirst session, or nil.
func (p *Parameter[T]) Err() error {
	return p.registry.Err()
}

// LogValue renders the parameter for structured logs without its value.
func (p *Parameter[T]) LogValue() slog.Value {
	return slog.GroupValue(
		logger.Parameter(p.name),
		logger.Mode(p.mode),
		logger.FailureCount(p.registry.Len()),
	)
}

func checkName(name string) error {
	if name == "" {
		return newArgumentError("name", ErrEmptyName)
	}
	if strings.TrimSpace(name) == "" {
		return newArgumentError("name", ErrWhitespaceName)
	}
	return nil
}

func must[T any](p *Parameter[T], err error) *Parameter[T] {
	if err != nil {
		panic(err)
	}
	return p
}
