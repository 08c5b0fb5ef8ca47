package guardkit

import (
	"maps"

	"github.com/dmitrymomot/guardkit/pkg/predicate"
)

// Annotation is a reusable validation marker: a predicate paired with a
// message template and the parameters it was configured with. Applying an
// annotation to a member identity records metadata in a registry and nothing
// else; it never wraps the member itself. Interception belongs to the
// enforcement layer (Field, Wrap1, CheckArgs), so many annotations from
// independent authors can stack on one member while a single wrapper
// intercepts the call.
type Annotation struct {
	// Predicate decides acceptance.
	Predicate predicate.Predicate
	// Template is the failure message; every "{{value}}" marker in it is
	// replaced with a rendering of the rejected value.
	Template string
	// Params exposes the factory-captured configuration for inspection.
	Params Params
}

// AnnotationOption configures annotation construction.
type AnnotationOption func(*Annotation)

// WithParam records one captured configuration value on the annotation.
func WithParam(name string, value any) AnnotationOption {
	return func(a *Annotation) {
		if a.Params == nil {
			a.Params = make(Params)
		}
		a.Params[name] = value
	}
}

// New builds an annotation from a predicate and a message template. Each
// call produces an independent annotation; factories that close over
// configuration should record it via WithParam so the captured values stay
// inspectable.
func New(p predicate.Predicate, template string, opts ...AnnotationOption) Annotation {
	a := Annotation{Predicate: p, Template: template}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// ApplyTo registers the annotation for the given member identity. The
// target is not modified or wrapped. Returns a *ConfigError for a nil
// predicate or an unresolvable identity.
func (a Annotation) ApplyTo(r *Registry, id Identity) error {
	var params Params
	if len(a.Params) > 0 {
		params = maps.Clone(a.Params)
	}
	return r.Register(id, Entry{
		Predicate: a.Predicate,
		Template:  a.Template,
		Params:    params,
	})
}

// MustApply is ApplyTo for setup paths where a registration failure should
// halt the program.
func (a Annotation) MustApply(r *Registry, id Identity) {
	if err := a.ApplyTo(r, id); err != nil {
		panic(err)
	}
}
