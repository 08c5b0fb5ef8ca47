package guardkit

import "fmt"

// Kind distinguishes the two guardable member shapes.
type Kind uint8

const (
	// KindAccessor identifies a guarded field accessor: the checked value is
	// the value being assigned.
	KindAccessor Kind = iota + 1
	// KindParameter identifies a guarded function parameter: the checked
	// value is the actual argument at a given position.
	KindParameter
)

func (k Kind) String() string {
	switch k {
	case KindAccessor:
		return "accessor"
	case KindParameter:
		return "parameter"
	}
	return "unknown"
}

// Identity is the stable, comparable key naming one guardable member: a
// specific accessor of a specific owner, or a specific parameter position of
// a specific method. Repeated invocations of the same member always resolve
// to an equal Identity, so registry lookups hit the same entry list.
type Identity struct {
	// Owner names the defining construct, typically a type or component name.
	Owner string
	// Member names the accessor or method within the owner.
	Member string
	// Kind tells whether the identity addresses an accessor or a parameter.
	Kind Kind
	// Param is the zero-based parameter position for KindParameter
	// identities, and -1 otherwise.
	Param int
}

// Accessor builds the identity of a guarded field accessor.
func Accessor(owner, member string) Identity {
	return Identity{Owner: owner, Member: member, Kind: KindAccessor, Param: -1}
}

// Parameter builds the identity of a guarded parameter position.
func Parameter(owner, member string, index int) Identity {
	return Identity{Owner: owner, Member: member, Kind: KindParameter, Param: index}
}

// Valid reports whether the identity is fully resolved. Enforcement and
// registration reject invalid identities as configuration defects.
func (id Identity) Valid() bool {
	if id.Owner == "" || id.Member == "" {
		return false
	}
	switch id.Kind {
	case KindAccessor:
		return id.Param == -1
	case KindParameter:
		return id.Param >= 0
	}
	return false
}

func (id Identity) String() string {
	if id.Kind == KindParameter {
		return fmt.Sprintf("%s.%s[arg %d]", id.Owner, id.Member, id.Param)
	}
	return fmt.Sprintf("%s.%s", id.Owner, id.Member)
}
