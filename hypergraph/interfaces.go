package hypergraph

import "github.com/nexusgraph/hyperplan/core"

// Hypergraph is the read-only collaborator the planner queries while
// building a plan. It never mutates anything and never runs a match; it
// only answers questions about what atoms currently exist and how they
// relate. Implementations must be safe for concurrent reads.
type Hypergraph interface {
	// TypeOf returns the type of the atom at h, or core.TypeInvalid if h
	// does not resolve to any atom currently in the hypergraph.
	TypeOf(h core.Handle) core.Type

	// Outgoing returns the ordered children of the link at h. Calling
	// this on a node handle returns nil.
	Outgoing(h core.Handle) []core.Handle

	// IncomingSize returns the number of links that directly contain h
	// in their outgoing set.
	IncomingSize(h core.Handle) int

	// IncomingFiltered returns the links of exactly type t that directly
	// contain h in their outgoing set.
	IncomingFiltered(h core.Handle, t core.Type) []core.Handle

	// CountOfType returns the current population of atoms of exactly
	// type t.
	CountOfType(t core.Type) int

	// EnumerateOfType returns every handle whose type is t. If
	// subclasses is true, handles whose type is a declared subtype of t
	// are also included; implementations that do not support a type
	// hierarchy may treat subclasses as a no-op.
	EnumerateOfType(t core.Type, subclasses bool) []core.Handle
}
