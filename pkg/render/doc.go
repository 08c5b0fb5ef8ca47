// Package render turns message templates and rejected values into
// human-readable diagnostics.
//
// A template is a plain string that may contain the literal marker
// "{{value}}". Render replaces every occurrence of the marker with a deep,
// cycle-safe rendering of the offending value and leaves everything else
// untouched. There are no conditionals, loops, or named placeholders.
//
// # Totality
//
// Rendering is total by contract: no value can make Render or Inspect fail.
// Cyclic structures are handled by the underlying spew printer, methods on
// the value are never called (a panicking String method cannot break a
// diagnostic), and output is truncated past a configurable length. As a
// last line of defense a reflection panic degrades to the placeholder
// "<unprintable>".
//
// # Configuration
//
// Output bounds come from the environment via Limits
// (GUARDKIT_INSPECT_MAX_DEPTH, GUARDKIT_INSPECT_MAX_LEN) and are read once.
// Callers that need deterministic output pass explicit limits to RenderWith
// or InspectWith instead.
package render
