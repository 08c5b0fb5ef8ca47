package predicate

import "reflect"

// NotNil rejects nil values, including typed nils hidden inside an interface
// (nil pointers, maps, slices, channels, and funcs).
func NotNil() Predicate {
	return func(value any) bool {
		if value == nil {
			return false
		}
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
			return !rv.IsNil()
		}
		return true
	}
}

// IsBool accepts bool values, including named bool types.
func IsBool() Predicate {
	return func(value any) bool {
		if value == nil {
			return false
		}
		return reflect.ValueOf(value).Kind() == reflect.Bool
	}
}

// IsString accepts string values, including named string types.
func IsString() Predicate {
	return func(value any) bool {
		if value == nil {
			return false
		}
		return reflect.ValueOf(value).Kind() == reflect.String
	}
}

// IsNumber accepts any integer, unsigned integer, or float value, including
// named numeric types.
func IsNumber() Predicate {
	return func(value any) bool {
		_, ok := toFloat(value)
		return ok
	}
}

// toFloat normalizes any numeric kind to float64 for comparison. Returns
// false for non-numeric values.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
