package hypergraph

import (
	"sync"

	"github.com/nexusgraph/hyperplan/core"
)

// Memory is an in-memory Hypergraph, built for planner unit tests that
// need a tiny, fully-controlled atomspace without standing up BadgerDB.
// It keeps every atom and a type-population index, and derives incoming
// sets on demand by scanning links of the requested type — adequate for
// the handful-of-atoms fixtures tests build, not for production scale.
type Memory struct {
	mu     sync.RWMutex
	atoms  map[core.Handle]core.Atom
	byType map[core.Type][]core.Handle
}

// NewMemory returns an empty in-memory hypergraph.
func NewMemory() *Memory {
	return &Memory{
		atoms:  make(map[core.Handle]core.Atom),
		byType: make(map[core.Type][]core.Handle),
	}
}

// Add inserts atom, deriving its handle from content, and returns that
// handle. Inserting the same atom twice is a no-op that returns the same
// handle both times.
func (m *Memory) Add(atom core.Atom) core.Handle {
	h := atom.Handle()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.atoms[h]; ok {
		return h
	}
	m.atoms[h] = atom
	m.byType[atom.Type] = append(m.byType[atom.Type], h)
	return h
}

// AddNode is a convenience wrapper around Add(core.NewNode(t, name)).
func (m *Memory) AddNode(t core.Type, name string) core.Handle {
	return m.Add(core.NewNode(t, name))
}

// AddLink is a convenience wrapper around Add(core.NewLink(t, outgoing...)).
func (m *Memory) AddLink(t core.Type, outgoing ...core.Handle) core.Handle {
	return m.Add(core.NewLink(t, outgoing...))
}

// TypeOf implements Hypergraph.
func (m *Memory) TypeOf(h core.Handle) core.Type {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.atoms[h]
	if !ok {
		return core.TypeInvalid
	}
	return a.Type
}

// Outgoing implements Hypergraph.
func (m *Memory) Outgoing(h core.Handle) []core.Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.atoms[h]
	if !ok {
		return nil
	}
	return a.Outgoing
}

// IncomingSize implements Hypergraph.
func (m *Memory) IncomingSize(h core.Handle) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, a := range m.atoms {
		for _, child := range a.Outgoing {
			if child == h {
				count++
				break
			}
		}
	}
	return count
}

// IncomingFiltered implements Hypergraph.
func (m *Memory) IncomingFiltered(h core.Handle, t core.Type) []core.Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []core.Handle
	for candidate, a := range m.atoms {
		if a.Type != t {
			continue
		}
		for _, child := range a.Outgoing {
			if child == h {
				out = append(out, candidate)
				break
			}
		}
	}
	return out
}

// CountOfType implements Hypergraph.
func (m *Memory) CountOfType(t core.Type) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.byType[t])
}

// EnumerateOfType implements Hypergraph. Memory has no type hierarchy, so
// subclasses is ignored.
func (m *Memory) EnumerateOfType(t core.Type, subclasses bool) []core.Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]core.Handle, len(m.byType[t]))
	copy(out, m.byType[t])
	return out
}

var _ Hypergraph = (*Memory)(nil)
