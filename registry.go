package guardkit

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/guardkit/pkg/predicate"
)

// Entry is one recorded validator: the predicate to run, the message
// template to render on rejection, and the inspectable parameters the
// annotation was built with. Entries are immutable once registered.
type Entry struct {
	Predicate predicate.Predicate
	Template  string
	Params    Params
}

// Params holds the configuration an annotation factory captured at
// construction time (for example the min and max of a range annotation),
// kept as first-class values so tests and diagnostics can inspect them.
type Params map[string]any

// Registry maps member identities to their ordered validator entries. It is
// written during a setup phase, when annotations are applied, and read on
// every guarded call thereafter; reads are safe under concurrent access.
// Concurrent registration and enforcement on the same identity is out of
// contract.
//
// The zero value is not usable; construct with NewRegistry. Most programs
// use the package-level Default registry, but tests construct their own so
// each case starts from a clean slate.
type Registry struct {
	mu      sync.RWMutex
	entries map[Identity][]Entry
	log     *slog.Logger
}

// RegistryOption configures registry construction.
type RegistryOption func(*Registry)

// WithLogger attaches a logger for Debug-level registration and rejection
// events. Without it the registry is silent.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{entries: make(map[Identity][]Entry)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends an entry to the identity's validator list, creating the
// list on first use. Registering the same annotation twice yields two
// independent entries, both enforced. Returns a *ConfigError for an invalid
// identity or a nil predicate.
func (r *Registry) Register(id Identity, e Entry) error {
	if !id.Valid() {
		return &ConfigError{Identity: id, Reason: "identity does not resolve to a stable key"}
	}
	if e.Predicate == nil {
		return &ConfigError{Identity: id, Reason: "nil predicate"}
	}

	r.mu.Lock()
	r.entries[id] = append(r.entries[id], e)
	n := len(r.entries[id])
	r.mu.Unlock()

	if r.log != nil {
		r.log.Debug("validator registered",
			slog.String("identity", id.String()),
			slog.Int("position", n-1),
		)
	}
	return nil
}

// Lookup returns the entries recorded for the identity, in registration
// order, or nil when none exist. The result is a snapshot; mutating it does
// not affect the registry. An identity with zero entries is
// indistinguishable from one never seen.
func (r *Registry) Lookup(id Identity) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.entries[id]
	if !ok {
		return nil
	}

	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Reset clears all recorded entries. Intended for tests that reuse the
// default registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[Identity][]Entry)
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// Register, Lookup, and Check functions.
func Default() *Registry {
	return defaultRegistry
}

// Register records an entry in the default registry.
func Register(id Identity, e Entry) error {
	return defaultRegistry.Register(id, e)
}

// Lookup reads the default registry.
func Lookup(id Identity) []Entry {
	return defaultRegistry.Lookup(id)
}
