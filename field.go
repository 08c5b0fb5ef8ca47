package guardkit

// Field is a guarded accessor: a typed cell whose assignments pass through
// the validators registered for its identity. A rejected assignment leaves
// the stored value untouched; an accepted one stores the incoming value
// as-is, preserving referential identity.
//
// Each call to Set is independent: the field holds no validation state
// between assignments.
type Field[T any] struct {
	reg   *Registry
	id    Identity
	value T
}

// NewField binds a guarded accessor for owner.member to the given registry.
func NewField[T any](r *Registry, owner, member string) *Field[T] {
	return &Field[T]{reg: r, id: Accessor(owner, member)}
}

// Identity returns the accessor's registry key.
func (f *Field[T]) Identity() Identity {
	return f.id
}

// Guard applies annotations to this accessor's identity, in order. A
// convenience over Annotation.ApplyTo for the common case of guarding the
// field you just created.
func (f *Field[T]) Guard(annotations ...Annotation) error {
	for _, a := range annotations {
		if err := a.ApplyTo(f.reg, f.id); err != nil {
			return err
		}
	}
	return nil
}

// MustGuard is Guard for setup paths where a registration failure should
// halt the program.
func (f *Field[T]) MustGuard(annotations ...Annotation) *Field[T] {
	if err := f.Guard(annotations...); err != nil {
		panic(err)
	}
	return f
}

// Set assigns a value after running the registered validators in order.
// Returns a *ValidationError when a predicate rejects the value (the stored
// value is unchanged), or a *ConfigError for a defective guard.
func (f *Field[T]) Set(v T) error {
	if err := f.reg.Check(f.id, v); err != nil {
		return err
	}
	f.value = v
	return nil
}

// Get returns the currently stored value.
func (f *Field[T]) Get() T {
	return f.value
}
