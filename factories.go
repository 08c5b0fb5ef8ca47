package guardkit

import (
	"fmt"

	"github.com/dmitrymomot/guardkit/pkg/predicate"
)

// Canned annotation factories for common guards. Each call returns a fresh
// annotation closing over its own configuration, recorded in Params.

// NotNil rejects nil values, including typed nils.
func NotNil() Annotation {
	return New(predicate.NotNil(), "value must not be nil, got {{value}}")
}

// OfType accepts only values of the concrete type T.
func OfType[T any]() Annotation {
	var zero T
	return New(
		predicate.Is[T](),
		fmt.Sprintf("value must be of type %T, got {{value}}", zero),
		WithParam("type", fmt.Sprintf("%T", zero)),
	)
}

// InRange accepts numeric values within the inclusive range [min, max].
// Non-numeric values are rejected.
func InRange(min, max float64) Annotation {
	return New(
		predicate.Between(min, max),
		fmt.Sprintf("value must be between %v and %v, got {{value}}", min, max),
		WithParam("min", min),
		WithParam("max", max),
	)
}

// AtLeast accepts numeric values greater than or equal to min.
func AtLeast(min float64) Annotation {
	return New(
		predicate.Min(min),
		fmt.Sprintf("value must be at least %v, got {{value}}", min),
		WithParam("min", min),
	)
}

// AtMost accepts numeric values less than or equal to max.
func AtMost(max float64) Annotation {
	return New(
		predicate.Max(max),
		fmt.Sprintf("value must be at most %v, got {{value}}", max),
		WithParam("max", max),
	)
}

// NonEmptyString accepts strings with at least one non-whitespace character.
func NonEmptyString() Annotation {
	return New(predicate.NonEmpty(), "value must be a non-empty string, got {{value}}")
}
