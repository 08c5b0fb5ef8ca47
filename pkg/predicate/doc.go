// Package predicate defines the boolean contract every guardkit validation
// rule is built on, together with a small collection of ready-made checks
// and combinators.
//
// A Predicate is a pure function from an arbitrary value to a boolean:
// true accepts the value, false rejects it. Predicates never report the
// reason for rejection; attaching a message to a rule is the job of the
// guardkit annotation layer.
//
// # Architecture
//
// Each source file groups predicates for one domain: type checks in
// basic.go, numeric bounds in number.go, string formats in string.go, and
// record member access in record.go. All constructors return closures that
// capture their configuration at construction time, so a predicate built
// with Between(0, 100) carries its bounds for its whole lifetime and two
// calls to the same constructor yield independent predicates.
//
// # Typed predicates
//
// Typed adapts a func(T) bool into a Predicate by narrowing first: values
// that are not of type T are rejected before the inner check runs. Is[T]
// is the bare narrowing step. Both behave identically at runtime whether
// they are used for validation or as a plain type test; there is no
// separate type-guard mode.
//
// # Usage
//
//	speedOK := predicate.And(
//	    predicate.Field("Speed", predicate.IsNumber()),
//	    predicate.Field("Speed", predicate.NonNegative()),
//	)
//	if !speedOK(state) {
//	    // reject
//	}
//
// # Error Handling
//
// Predicates do not return errors. A predicate that panics is a defect in
// the predicate itself; the guardkit enforcement layer converts such panics
// into a ConfigError rather than a validation failure.
package predicate
