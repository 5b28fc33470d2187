package validator

// Registry is the ordered record of failures for one validation session.
// The top-level parameter creates it; every parameter chained with And
// holds the same *Registry, so one Apply covers all of them.
//
// A Registry is only ever appended to. It has no internal locking: a session
// and everything chained onto it must stay on one goroutine.
//
// The first parameter created on a registry fixes its mode for the life of
// the registry.
type Registry struct {
	mode     Mode
	bound    bool
	failures ValidationErrors
	halted   *ValidationError
	running  int
}

// NewRegistry returns an empty registry, for use with NewChained.
func NewRegistry() *Registry {
	return &Registry{}
}

// Mode returns the mode the registry is bound to. ok is false until the
// first parameter is created on it.
func (r *Registry) Mode() (mode Mode, ok bool) {
	return r.mode, r.bound
}

// Len returns the number of recorded failures.
func (r *Registry) Len() int {
	return len(r.failures)
}

// Failures returns a copy of the recorded failures in insertion order.
func (r *Registry) Failures() ValidationErrors {
	if len(r.failures) == 0 {
		return ValidationErrors{}
	}
	out := make(ValidationErrors, len(r.failures))
	copy(out, r.failures)
	return out
}

// Halted reports whether a ThrowFirst failure stopped the session.
func (r *Registry) Halted() bool {
	return r.halted != nil
}

// Err returns the failure that halted the session, or nil.
func (r *Registry) Err() error {
	if r.halted == nil {
		return nil
	}
	return *r.halted
}

func (r *Registry) bind(mode Mode) error {
	if !r.bound {
		r.mode, r.bound = mode, true
		return nil
	}
	if r.mode != mode {
		return newArgumentError("mode", ErrModeMismatch)
	}
	return nil
}

func (r *Registry) record(f ValidationError) {
	r.failures = append(r.failures, f)
}

func (r *Registry) halt(f ValidationError) {
	if r.halted == nil {
		r.halted = &f
	}
}
