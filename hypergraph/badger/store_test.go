package badger

import (
	"testing"

	"github.com/nexusgraph/hyperplan/core"
)

func TestStoreAddAtomIsIdempotent(t *testing.T) {
	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	a := core.NewNode(core.ConceptNode, "dog")

	h1, err := store.AddAtom(a)
	if err != nil {
		t.Fatalf("Failed to add atom: %v", err)
	}
	h2, err := store.AddAtom(a)
	if err != nil {
		t.Fatalf("Failed to add atom twice: %v", err)
	}

	if h1 != h2 {
		t.Fatalf("AddAtom() returned different handles: %v != %v", h1, h2)
	}
	if got := store.CountOfType(core.ConceptNode); got != 1 {
		t.Fatalf("CountOfType(ConceptNode) = %d, want 1", got)
	}
}

func TestStoreGetAtomRoundTrips(t *testing.T) {
	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	dog := core.NewNode(core.ConceptNode, "dog")
	h, err := store.AddAtom(dog)
	if err != nil {
		t.Fatalf("Failed to add atom: %v", err)
	}

	got, err := store.GetAtom(h)
	if err != nil {
		t.Fatalf("Failed to get atom: %v", err)
	}
	if got.Name != "dog" || got.Type != core.ConceptNode {
		t.Fatalf("GetAtom() = %+v, want Name=dog Type=ConceptNode", got)
	}

	if _, err := store.GetAtom(core.Handle(99999)); err != ErrNotFound {
		t.Fatalf("GetAtom(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStoreIncomingSizeAndFiltered(t *testing.T) {
	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	dogH, err := store.AddAtom(core.NewNode(core.ConceptNode, "dog"))
	if err != nil {
		t.Fatalf("Failed to add dog: %v", err)
	}
	catH, err := store.AddAtom(core.NewNode(core.ConceptNode, "cat"))
	if err != nil {
		t.Fatalf("Failed to add cat: %v", err)
	}
	if _, err := store.AddAtom(core.NewLink(core.ListLink, dogH, catH)); err != nil {
		t.Fatalf("Failed to add ListLink: %v", err)
	}
	if _, err := store.AddAtom(core.NewLink(core.EvaluationLink, dogH)); err != nil {
		t.Fatalf("Failed to add EvaluationLink: %v", err)
	}

	if got := store.IncomingSize(dogH); got != 2 {
		t.Fatalf("IncomingSize(dog) = %d, want 2", got)
	}
	if got := store.IncomingSize(catH); got != 1 {
		t.Fatalf("IncomingSize(cat) = %d, want 1", got)
	}

	filtered := store.IncomingFiltered(dogH, core.ListLink)
	if len(filtered) != 1 {
		t.Fatalf("IncomingFiltered(dog, ListLink) = %v, want 1 entry", filtered)
	}
}

func TestStoreTypeOfAndOutgoing(t *testing.T) {
	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	dogH, _ := store.AddAtom(core.NewNode(core.ConceptNode, "dog"))
	catH, _ := store.AddAtom(core.NewNode(core.ConceptNode, "cat"))
	linkH, err := store.AddAtom(core.NewLink(core.ListLink, dogH, catH))
	if err != nil {
		t.Fatalf("Failed to add link: %v", err)
	}

	if got := store.TypeOf(linkH); got != core.ListLink {
		t.Fatalf("TypeOf(link) = %v, want ListLink", got)
	}
	if got := store.TypeOf(core.Handle(99999)); got != core.TypeInvalid {
		t.Fatalf("TypeOf(missing) = %v, want TypeInvalid", got)
	}

	out := store.Outgoing(linkH)
	if len(out) != 2 || out[0] != dogH || out[1] != catH {
		t.Fatalf("Outgoing(link) = %v, want [dog cat] in order", out)
	}
}

func TestStoreEnumerateOfType(t *testing.T) {
	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	store.AddAtom(core.NewNode(core.ConceptNode, "dog"))
	store.AddAtom(core.NewNode(core.ConceptNode, "cat"))
	store.AddAtom(core.NewNode(core.PredicateNode, "likes"))

	got := store.EnumerateOfType(core.ConceptNode, false)
	if len(got) != 2 {
		t.Fatalf("EnumerateOfType(ConceptNode) = %v, want 2 handles", got)
	}
}
