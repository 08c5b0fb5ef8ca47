package predicate

// Min accepts numeric values greater than or equal to min. Non-numeric
// values are rejected.
func Min(min float64) Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n >= min
	}
}

// Max accepts numeric values less than or equal to max. Non-numeric values
// are rejected.
func Max(max float64) Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n <= max
	}
}

// Between accepts numeric values in the inclusive range [min, max].
func Between(min, max float64) Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n >= min && n <= max
	}
}

// Positive accepts numeric values strictly greater than zero.
func Positive() Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n > 0
	}
}

// NonNegative accepts numeric values greater than or equal to zero.
func NonNegative() Predicate {
	return func(value any) bool {
		n, ok := toFloat(value)
		return ok && n >= 0
	}
}
