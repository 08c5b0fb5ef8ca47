package render

import (
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/dmitrymomot/guardkit/pkg/config"
)

// ValueMarker is the single substitution token recognized inside message
// templates. Every occurrence is replaced by the textual rendering of the
// rejected value; no other templating syntax is supported.
const ValueMarker = "{{value}}"

// Limits bounds the inspect output so arbitrarily large or deeply nested
// values cannot produce unbounded messages.
type Limits struct {
	// MaxDepth limits how many levels of nesting are rendered.
	MaxDepth int `env:"GUARDKIT_INSPECT_MAX_DEPTH" envDefault:"4"`
	// MaxLen limits the rendered output length in bytes.
	MaxLen int `env:"GUARDKIT_INSPECT_MAX_LEN" envDefault:"512"`
}

const truncationSuffix = "...(truncated)"

var (
	defaultLimits     Limits
	defaultLimitsOnce sync.Once
)

// loadDefaultLimits reads the limits from the environment once. A failed
// load falls back to the compiled-in defaults instead of surfacing an error:
// rendering must stay total.
func loadDefaultLimits() Limits {
	defaultLimitsOnce.Do(func() {
		if err := config.Load(&defaultLimits); err != nil {
			defaultLimits = Limits{MaxDepth: 4, MaxLen: 512}
		}
	})
	return defaultLimits
}

// Render replaces every occurrence of ValueMarker in the template with a
// diagnostic rendering of value. Templates without the marker are returned
// unchanged. Render never fails, whatever the value.
func Render(template string, value any) string {
	return RenderWith(loadDefaultLimits(), template, value)
}

// RenderWith is Render with explicit limits, for callers that need
// deterministic output independent of the environment.
func RenderWith(limits Limits, template string, value any) string {
	if !strings.Contains(template, ValueMarker) {
		return template
	}
	return strings.ReplaceAll(template, ValueMarker, InspectWith(limits, value))
}

// Inspect returns a deep, cycle-safe textual rendering of value, truncated
// according to the default limits.
func Inspect(value any) string {
	return InspectWith(loadDefaultLimits(), value)
}

// InspectWith is Inspect with explicit limits.
func InspectWith(limits Limits, value any) (out string) {
	// Methods on the value (Stringer, error) are never invoked, and a panic
	// from reflection on an exotic value degrades to a placeholder rather
	// than escaping to the caller.
	defer func() {
		if r := recover(); r != nil {
			out = "<unprintable>"
		}
	}()

	cs := spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                limits.MaxDepth,
		SortKeys:                true,
		DisableMethods:          true,
		DisablePointerMethods:   true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SpewKeys:                true,
	}

	// Sdump is the spew entry point that honors MaxDepth and cycle
	// detection; its multi-line output is collapsed so messages stay on one
	// line.
	out = strings.Join(strings.Fields(cs.Sdump(value)), " ")
	if limits.MaxLen > 0 && len(out) > limits.MaxLen {
		out = out[:limits.MaxLen] + truncationSuffix
	}
	return out
}
