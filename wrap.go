package guardkit

// Function guards. Each wrapper intercepts a call, checks the registered
// validators for its parameter identities against the actual arguments, and
// either forwards the call unchanged or returns the validation error without
// executing the wrapped function.

// Wrap1 guards a single-argument function. The argument is checked against
// the validators registered for Parameter(owner, member, 0).
func Wrap1[A, R any](r *Registry, owner, member string, fn func(A) (R, error)) func(A) (R, error) {
	id := Parameter(owner, member, 0)
	return func(a A) (R, error) {
		if err := r.Check(id, a); err != nil {
			var zero R
			return zero, err
		}
		return fn(a)
	}
}

// Wrap2 guards a two-argument function, checking parameter positions 0
// and 1 independently.
func Wrap2[A, B, R any](r *Registry, owner, member string, fn func(A, B) (R, error)) func(A, B) (R, error) {
	id0 := Parameter(owner, member, 0)
	id1 := Parameter(owner, member, 1)
	return func(a A, b B) (R, error) {
		if err := r.Check(id0, a); err != nil {
			var zero R
			return zero, err
		}
		if err := r.Check(id1, b); err != nil {
			var zero R
			return zero, err
		}
		return fn(a, b)
	}
}

// CheckArgs validates an argument list against the validators registered
// for owner.member, position by position. Arguments without registered
// validators pass through; the first rejection wins. Useful when the
// function shape does not fit the typed wrappers.
func CheckArgs(r *Registry, owner, member string, args ...any) error {
	for i, arg := range args {
		if err := r.Check(Parameter(owner, member, i), arg); err != nil {
			return err
		}
	}
	return nil
}
