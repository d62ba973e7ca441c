package hypergraph

import (
	"testing"

	"github.com/nexusgraph/hyperplan/core"
)

func TestMemoryAddIsIdempotent(t *testing.T) {
	m := NewMemory()

	a := m.AddNode(core.ConceptNode, "dog")
	b := m.AddNode(core.ConceptNode, "dog")

	if a != b {
		t.Errorf("AddNode() returned different handles for identical content: %v != %v", a, b)
	}
	if m.CountOfType(core.ConceptNode) != 1 {
		t.Errorf("CountOfType(ConceptNode) = %d, want 1", m.CountOfType(core.ConceptNode))
	}
}

func TestMemoryIncomingSizeAndFiltered(t *testing.T) {
	m := NewMemory()

	dog := m.AddNode(core.ConceptNode, "dog")
	cat := m.AddNode(core.ConceptNode, "cat")
	m.AddLink(core.ListLink, dog, cat)
	m.AddLink(core.EvaluationLink, dog)

	if got := m.IncomingSize(dog); got != 2 {
		t.Errorf("IncomingSize(dog) = %d, want 2", got)
	}
	if got := m.IncomingSize(cat); got != 1 {
		t.Errorf("IncomingSize(cat) = %d, want 1", got)
	}

	filtered := m.IncomingFiltered(dog, core.ListLink)
	if len(filtered) != 1 {
		t.Errorf("IncomingFiltered(dog, ListLink) = %v, want 1 entry", filtered)
	}
}

func TestMemoryOutgoingAndTypeOf(t *testing.T) {
	m := NewMemory()

	dog := m.AddNode(core.ConceptNode, "dog")
	cat := m.AddNode(core.ConceptNode, "cat")
	link := m.AddLink(core.ListLink, dog, cat)

	if m.TypeOf(link) != core.ListLink {
		t.Errorf("TypeOf(link) = %v, want ListLink", m.TypeOf(link))
	}
	if m.TypeOf(core.Undefined) != core.TypeInvalid {
		t.Errorf("TypeOf(Undefined) = %v, want TypeInvalid", m.TypeOf(core.Undefined))
	}

	out := m.Outgoing(link)
	if len(out) != 2 || out[0] != dog || out[1] != cat {
		t.Errorf("Outgoing(link) = %v, want [dog cat] in order", out)
	}
	if m.Outgoing(dog) != nil {
		t.Errorf("Outgoing(node) = %v, want nil", m.Outgoing(dog))
	}
}

func TestMemoryEnumerateOfType(t *testing.T) {
	m := NewMemory()

	m.AddNode(core.ConceptNode, "dog")
	m.AddNode(core.ConceptNode, "cat")
	m.AddNode(core.PredicateNode, "likes")

	got := m.EnumerateOfType(core.ConceptNode, false)
	if len(got) != 2 {
		t.Errorf("EnumerateOfType(ConceptNode) = %v, want 2 handles", got)
	}
}
