package guardkit

import (
	"log/slog"

	"github.com/dmitrymomot/guardkit/pkg/predicate"
	"github.com/dmitrymomot/guardkit/pkg/render"
)

// Check runs every validator recorded for the identity against the value,
// in registration order, stopping at the first rejection. It returns nil
// when all entries accept or none are registered, a *ValidationError on
// rejection, and a *ConfigError when the identity is invalid or a predicate
// panics. The value is never modified or coerced.
func (r *Registry) Check(id Identity, value any) error {
	if !id.Valid() {
		return &ConfigError{Identity: id, Reason: "identity does not resolve to a stable key"}
	}

	for _, entry := range r.Lookup(id) {
		ok, err := runPredicate(id, entry.Predicate, value)
		if err != nil {
			return err
		}
		if !ok {
			verr := &ValidationError{
				Identity: id,
				Message:  render.Render(entry.Template, value),
				Value:    value,
			}
			if r.log != nil {
				r.log.Debug("value rejected",
					slog.String("identity", id.String()),
					slog.String("message", verr.Message),
				)
			}
			return verr
		}
	}
	return nil
}

// Check runs the default registry's validators for the identity.
func Check(id Identity, value any) error {
	return defaultRegistry.Check(id, value)
}

// runPredicate executes one predicate, converting a panic into a
// *ConfigError: a throwing predicate is an authoring defect, never a
// validation outcome.
func runPredicate(id Identity, p predicate.Predicate, value any) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = &ConfigError{Identity: id, Reason: "predicate panicked", Recovered: rec}
		}
	}()
	return p(value), nil
}
