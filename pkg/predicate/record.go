package predicate

import "reflect"

// Field applies a predicate to a named member of a record-shaped value.
//
// Supported shapes are structs (exported field by name, pointers followed)
// and maps with string-compatible keys. A value of any other shape, or one
// missing the named member, is rejected.
func Field(name string, p Predicate) Predicate {
	return func(value any) bool {
		member, ok := lookupField(value, name)
		if !ok {
			return false
		}
		return p(member)
	}
}

func lookupField(value any, name string) (any, bool) {
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	}

	return nil, false
}
