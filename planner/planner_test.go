package planner

import (
	"errors"
	"testing"

	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
	"github.com/nexusgraph/hyperplan/match/mock"
)

func TestNewPlannerRequiresCollaborators(t *testing.T) {
	hg := hypergraph.NewMemory()
	engine := mock.NewEngine()

	if _, err := NewPlanner(nil, engine); !errors.Is(err, ErrNilHypergraph) {
		t.Fatalf("NewPlanner(nil, engine) error = %v, want ErrNilHypergraph", err)
	}
	if _, err := NewPlanner(hg, nil); !errors.Is(err, ErrNilEngine) {
		t.Fatalf("NewPlanner(hg, nil) error = %v, want ErrNilEngine", err)
	}
}

func TestInitiateSearchNoSearchStrategy(t *testing.T) {
	hg := hypergraph.NewMemory()
	dog := hg.AddNode(core.ConceptNode, "dog")
	cat := hg.AddNode(core.ConceptNode, "cat")
	clause := hg.AddLink(core.ListLink, dog, cat)

	engine := mock.NewEngine()
	p, err := NewPlanner(hg, engine)
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}

	plan, err := p.InitiateSearch(pattern)
	if err != nil {
		t.Fatalf("InitiateSearch() error = %v", err)
	}
	if plan.Strategy != "no-search" {
		t.Fatalf("Strategy = %q, want no-search", plan.Strategy)
	}
	if !plan.Grounded {
		t.Fatal("plan should be grounded (mock engine defaults to success)")
	}
	if engine.EvaluatableCalls() != 1 {
		t.Fatalf("EvaluatableCalls() = %d, want 1", engine.EvaluatableCalls())
	}
}

func TestInitiateSearchNeighborhoodStrategy(t *testing.T) {
	hg := hypergraph.NewMemory()
	dog := hg.AddNode(core.ConceptNode, "dog")
	v := hg.AddNode(core.VariableNode, "$x")
	clause := hg.AddLink(core.ListLink, v, dog)

	engine := mock.NewEngine()
	p, err := NewPlanner(hg, engine)
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}
	pattern.Vars.Add(v)

	plan, err := p.InitiateSearch(pattern)
	if err != nil {
		t.Fatalf("InitiateSearch() error = %v", err)
	}
	if plan.Strategy != "neighborhood" {
		t.Fatalf("Strategy = %q, want neighborhood", plan.Strategy)
	}
	if len(plan.Choices) != 1 || plan.Choices[0].BestStart != dog {
		t.Fatalf("Choices = %v, want one choice anchored on dog", plan.Choices)
	}
	if !plan.Grounded {
		t.Fatal("plan should be grounded")
	}
}

func TestInitiateSearchRejectsNilPattern(t *testing.T) {
	hg := hypergraph.NewMemory()
	p, err := NewPlanner(hg, mock.NewEngine())
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}

	if _, err := p.InitiateSearch(nil); !errors.Is(err, ErrNilPattern) {
		t.Fatalf("InitiateSearch(nil) error = %v, want ErrNilPattern", err)
	}
}

func TestInitiateSearchFallsBackToLinkTypeWhenNoConstantExists(t *testing.T) {
	hg := hypergraph.NewMemory()
	v1 := hg.AddNode(core.VariableNode, "$x")
	v2 := hg.AddNode(core.VariableNode, "$y")
	clause := hg.AddLink(core.EvaluationLink, v1, v2)

	// Make EvaluationLink a rare type so Link-Type has something to pick.
	// (It's the only link in this tiny hypergraph, so it's rare by
	// construction.)

	engine := mock.NewEngine()
	p, err := NewPlanner(hg, engine)
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}
	pattern.Vars.Add(v1)
	pattern.Vars.Add(v2)

	plan, err := p.InitiateSearch(pattern)
	if err != nil {
		t.Fatalf("InitiateSearch() error = %v", err)
	}
	if plan.Strategy != "link-type" {
		t.Fatalf("Strategy = %q, want link-type", plan.Strategy)
	}
}
