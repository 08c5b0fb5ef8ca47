// Package guardkit is a runtime value-validation framework: reusable
// validation rules attached declaratively to field accessors and function
// parameters, enforced automatically on every assignment or call.
//
// GuardKit targets the boundary where compile-time guarantees run out —
// values decoded from JSON, scripting bridges, or any other untyped edge —
// and checks them at the point of use rather than as documents at rest.
//
// Key Features:
//
//   - Validation rules authored once as plain predicates
//   - Annotations that record rules in a registry without wrapping anything
//   - Enforcement wrappers (guarded fields, function guards) that consult
//     the registry on every invocation
//   - Short-circuit evaluation in registration order
//   - Total message templating with a single {{value}} marker
//
// Basic Usage:
//
//	reg := guardkit.NewRegistry()
//
//	speed := guardkit.NewField[any](reg, "TrafficLight", "State").MustGuard(
//	    guardkit.New(
//	        predicate.Field("Speed", predicate.NonNegative()),
//	        "speed must be non-negative, got {{value}}",
//	    ),
//	)
//
//	if err := speed.Set(incoming); err != nil {
//	    if verr := guardkit.ExtractValidationError(err); verr != nil {
//	        // rejected: verr.Message references the offending value
//	    }
//	}
//
// Registration and enforcement are two independent phases: annotations are
// applied while the program wires itself up, and guarded members read the
// registry on every call thereafter. Registering on an identity after
// enforcement has started on that same identity is out of contract.
//
// Stacked annotations on one member run in the order they were applied and
// stop at the first failure. This is a deliberate simplicity trade-off;
// callers that need every failure at once should compose predicates
// themselves.
package guardkit
