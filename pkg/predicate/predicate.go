package predicate

// Predicate expresses a single validation rule as a boolean function over an
// arbitrary value. Predicates must be pure with respect to their outcome: they
// may read configuration captured at construction time but must never mutate
// the value under test. A predicate that panics is treated as an authoring
// defect by the enforcement layer, not as a validation failure.
type Predicate func(value any) bool

// Is reports whether the value is of the concrete type T.
//
// The same function serves two roles with identical runtime behavior: as a
// plain boolean check, and as the narrowing step of a typed predicate built
// with Typed. There is no separate "type guard" mode; narrowing is purely a
// construction convenience.
func Is[T any]() Predicate {
	return func(value any) bool {
		_, ok := value.(T)
		return ok
	}
}

// Typed adapts a typed check into a Predicate. Values that are not of type T
// are rejected before fn runs, so fn never observes a foreign type.
func Typed[T any](fn func(T) bool) Predicate {
	return func(value any) bool {
		v, ok := value.(T)
		if !ok {
			return false
		}
		return fn(v)
	}
}

// And combines predicates conjunctively, evaluating left to right and
// stopping at the first rejection.
func And(predicates ...Predicate) Predicate {
	return func(value any) bool {
		for _, p := range predicates {
			if !p(value) {
				return false
			}
		}
		return true
	}
}

// Or accepts when at least one predicate accepts. An empty Or rejects
// everything.
func Or(predicates ...Predicate) Predicate {
	return func(value any) bool {
		for _, p := range predicates {
			if p(value) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(value any) bool {
		return !p(value)
	}
}
