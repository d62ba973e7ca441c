package core

import "testing"

func TestAtomHandleStableForIdenticalContent(t *testing.T) {
	a := NewNode(ConceptNode, "dog")
	b := NewNode(ConceptNode, "dog")

	if a.Handle() != b.Handle() {
		t.Errorf("two identical nodes produced different handles: %v != %v", a.Handle(), b.Handle())
	}
}

func TestAtomHandleDiffersByType(t *testing.T) {
	a := NewNode(ConceptNode, "dog")
	b := NewNode(PredicateNode, "dog")

	if a.Handle() == b.Handle() {
		t.Errorf("nodes with different types collided on handle %v", a.Handle())
	}
}

func TestLinkHandleDependsOnOrder(t *testing.T) {
	x := NewNode(ConceptNode, "x").Handle()
	y := NewNode(ConceptNode, "y").Handle()

	xy := NewLink(ListLink, x, y)
	yx := NewLink(ListLink, y, x)

	if xy.Handle() == yx.Handle() {
		t.Errorf("ListLink(x,y) and ListLink(y,x) collided on handle %v", xy.Handle())
	}
}

func TestAtomIsNodeIsLink(t *testing.T) {
	node := NewNode(ConceptNode, "dog")
	if !node.IsNode() || node.IsLink() {
		t.Errorf("NewNode() produced an atom that is not IsNode()")
	}

	link := NewLink(ListLink)
	if !link.IsLink() || link.IsNode() {
		t.Errorf("NewLink() produced an atom that is not IsLink()")
	}
}
