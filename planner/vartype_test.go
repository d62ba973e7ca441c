package planner

import (
	"log/slog"
	"testing"

	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
	"github.com/nexusgraph/hyperplan/match/mock"
)

func newTestPlanner(t *testing.T, hg hypergraph.Hypergraph) *Planner {
	t.Helper()
	p, err := NewPlanner(hg, mock.NewEngine(), WithLogger(slog.Default()))
	if err != nil {
		t.Fatalf("NewPlanner() error = %v", err)
	}
	return p
}

func TestVariableTypeStrategyPicksRestrictedVariable(t *testing.T) {
	hg := hypergraph.NewMemory()
	hg.AddNode(core.ConceptNode, "dog")
	hg.AddNode(core.ConceptNode, "cat")
	hg.AddNode(core.PredicateNode, "likes")

	v := hg.AddNode(core.VariableNode, "$x")
	clause := hg.AddLink(core.EvaluationLink, v)

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}
	pattern.Vars.RestrictSimpleType(v, core.PredicateNode)

	p := newTestPlanner(t, hg)
	result, err := p.variableTypeStrategy(pattern)
	if err != nil {
		t.Fatalf("variableTypeStrategy() error = %v", err)
	}
	if !result.Found || result.Variable != v {
		t.Fatalf("result = %+v, want Found with Variable=%v", result, v)
	}
}

func TestVariableTypeStrategyDegenerateFallsBackToPresentLink(t *testing.T) {
	hg := hypergraph.NewMemory()
	dog := hg.AddNode(core.ConceptNode, "dog")
	v := hg.AddNode(core.VariableNode, "$x")
	clause := hg.AddLink(core.PresentLink, dog)
	_ = v

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}
	pattern.Vars.Add(v)

	p := newTestPlanner(t, hg)
	result, err := p.variableTypeStrategy(pattern)
	if err != nil {
		t.Fatalf("variableTypeStrategy() error = %v", err)
	}
	if !result.Degenerate || result.StartTerm != dog {
		t.Fatalf("result = %+v, want degenerate fallback anchored on dog", result)
	}
}

func TestVariableTypeStrategySkipsEvaluatableClauseUnlessAllEvaluatable(t *testing.T) {
	hg := hypergraph.NewMemory()
	hg.AddNode(core.PredicateNode, "likes")

	v := hg.AddNode(core.VariableNode, "$x")
	evalClause := hg.AddLink(core.EvaluationLink, v)
	listClause := hg.AddLink(core.ListLink, v)

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{evalClause, listClause}
	pattern.Evaluatable.Add(evalClause)
	pattern.Vars.RestrictSimpleType(v, core.PredicateNode)

	p := newTestPlanner(t, hg)
	result, err := p.variableTypeStrategy(pattern)
	if err != nil {
		t.Fatalf("variableTypeStrategy() error = %v", err)
	}
	if !result.Found || result.Clause != listClause {
		t.Fatalf("result = %+v, want Clause=%v (evaluatable clause must be skipped)", result, listClause)
	}
}

func TestVariableTypeStrategyAllEvaluatableUsesVariableAsStartTerm(t *testing.T) {
	hg := hypergraph.NewMemory()
	hg.AddNode(core.PredicateNode, "likes")

	v := hg.AddNode(core.VariableNode, "$x")
	evalClause := hg.AddLink(core.EvaluationLink, v)

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{evalClause}
	pattern.Evaluatable.Add(evalClause)
	pattern.Vars.RestrictSimpleType(v, core.PredicateNode)

	p := newTestPlanner(t, hg)
	result, err := p.variableTypeStrategy(pattern)
	if err != nil {
		t.Fatalf("variableTypeStrategy() error = %v", err)
	}
	if !result.Found || result.StartTerm != v {
		t.Fatalf("result = %+v, want StartTerm=%v (every clause evaluatable, variable itself anchors)", result, v)
	}
}

func TestVariableTypeStrategyGuardTripsInfiniteLoop(t *testing.T) {
	hg := hypergraph.NewMemory()
	clause := hg.AddNode(core.ConceptNode, "anchor")
	v := hg.AddNode(core.VariableNode, "$x")

	pattern := core.NewPattern()
	pattern.Mandatory = []core.Handle{clause}
	pattern.Vars.Add(v)

	p := newTestPlanner(t, hg)
	var lastErr error
	for i := 0; i < variableTypeGuardLimit+1; i++ {
		_, lastErr = p.variableTypeStrategy(pattern)
	}
	if lastErr != ErrInfiniteLoop {
		t.Fatalf("last error = %v, want ErrInfiniteLoop", lastErr)
	}
}

func TestLeastHolderFindsInnermostLink(t *testing.T) {
	hg := hypergraph.NewMemory()
	v := hg.AddNode(core.VariableNode, "$x")
	inner := hg.AddLink(core.ListLink, v)
	outer := hg.AddLink(core.EvaluationLink, inner)

	holder, found := leastHolder(hg, outer, v)
	if !found || holder != inner {
		t.Fatalf("leastHolder = (%v, %t), want (%v, true)", holder, found, inner)
	}
}
