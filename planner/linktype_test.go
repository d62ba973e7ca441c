package planner

import (
	"testing"

	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
)

func TestLinkTypeStrategyPicksRarestType(t *testing.T) {
	hg := hypergraph.NewMemory()

	dog := hg.AddNode(core.ConceptNode, "dog")
	cat := hg.AddNode(core.ConceptNode, "cat")

	// Two ListLinks (common), one EvaluationLink (rare).
	hg.AddLink(core.ListLink, dog, cat)
	hg.AddLink(core.ListLink, cat, dog)
	clause := hg.AddLink(core.EvaluationLink, dog)

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}

	result := LinkTypeStrategy(hg, pattern)

	if !result.Found {
		t.Fatal("LinkTypeStrategy did not find a rarest type")
	}
	if result.Type != core.EvaluationLink {
		t.Fatalf("Type = %v, want EvaluationLink", result.Type)
	}
	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1", result.Count)
	}
}

func TestLinkTypeStrategySkipsEvaluatableClauses(t *testing.T) {
	hg := hypergraph.NewMemory()
	dog := hg.AddNode(core.ConceptNode, "dog")
	pred := hg.AddNode(core.PredicateNode, "likes")

	// EvaluationLink is the globally rarest type, but its clause is
	// evaluatable-held and must not win.
	evalClause := hg.AddLink(core.EvaluationLink, pred)
	listClause := hg.AddLink(core.ListLink, dog)
	hg.AddLink(core.ListLink, dog, dog) // make ListLink less rare than EvaluationLink

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{evalClause, listClause}
	pattern.Evaluatable.Add(evalClause)

	result := LinkTypeStrategy(hg, pattern)

	if !result.Found {
		t.Fatal("LinkTypeStrategy did not find a rarest type")
	}
	if result.Clause != listClause {
		t.Fatalf("Clause = %v, want listClause (evaluatable clause must be skipped)", result.Clause)
	}
}

func TestFindRarestSkipsChoiceLink(t *testing.T) {
	hg := hypergraph.NewMemory()
	dog := hg.AddNode(core.ConceptNode, "dog")
	cat := hg.AddNode(core.ConceptNode, "cat")
	choice := hg.AddLink(core.ChoiceLink, dog, cat)
	clause := hg.AddLink(core.ListLink, choice)

	_, count := findRarest(hg, clause)

	// ListLink (the clause itself, count 1) is the only countable type;
	// the ChoiceLink contributes nothing.
	if count != 1 {
		t.Fatalf("count = %d, want 1 (ChoiceLink must not be counted)", count)
	}
}

func TestFindRarestDescendsThroughQuote(t *testing.T) {
	hg := hypergraph.NewMemory()
	dog := hg.AddNode(core.ConceptNode, "dog")
	quoted := hg.AddLink(core.QuoteLink, dog)
	clause := hg.AddLink(core.EvaluationLink, quoted)

	rarest, count := findRarest(hg, clause)

	if rarest != core.EvaluationLink || count != 1 {
		t.Fatalf("findRarest = (%v, %d), want (EvaluationLink, 1)", rarest, count)
	}
}
