package mock

import (
	"sync"

	"github.com/nexusgraph/hyperplan/core"
)

// Engine is a test double for match.Engine. It allows custom behavior
// injection via function fields, the same shape as ai/mock.MockEmbedder:
// set a Func field to control one call's outcome, leave it nil for the
// default. Safe for concurrent use, since the planner's parallel search
// driver (WithParallelSearch) calls ExploreNeighborhood from several
// goroutines at once.
type Engine struct {
	// ExploreNeighborhoodFunc is called by ExploreNeighborhood if set.
	// If nil, always returns true (the search "succeeds" immediately).
	ExploreNeighborhoodFunc func(rootClause, startTerm, candidateAnchor core.Handle) bool

	// ExploreConstantEvaluatablesFunc is called by
	// ExploreConstantEvaluatables if set. If nil, always returns true.
	ExploreConstantEvaluatablesFunc func(mandatoryClauses []core.Handle) bool

	// InstallPatternFunc is called by InstallPattern if set.
	InstallPatternFunc func(vars *core.Variables, pattern *core.Pattern)

	mu                sync.Mutex
	neighborhoodCalls int
	evaluatableCalls  int
	installCalls      int
	lastInstalled     *core.Pattern
}

// NewEngine creates a mock engine with default "always succeeds" behavior.
func NewEngine() *Engine {
	return &Engine{}
}

// ExploreNeighborhood implements match.Engine.
func (e *Engine) ExploreNeighborhood(rootClause, startTerm, candidateAnchor core.Handle) bool {
	e.mu.Lock()
	e.neighborhoodCalls++
	e.mu.Unlock()
	if e.ExploreNeighborhoodFunc != nil {
		return e.ExploreNeighborhoodFunc(rootClause, startTerm, candidateAnchor)
	}
	return true
}

// ExploreConstantEvaluatables implements match.Engine.
func (e *Engine) ExploreConstantEvaluatables(mandatoryClauses []core.Handle) bool {
	e.mu.Lock()
	e.evaluatableCalls++
	e.mu.Unlock()
	if e.ExploreConstantEvaluatablesFunc != nil {
		return e.ExploreConstantEvaluatablesFunc(mandatoryClauses)
	}
	return true
}

// InstallPattern implements match.Engine.
func (e *Engine) InstallPattern(vars *core.Variables, pattern *core.Pattern) {
	e.mu.Lock()
	e.installCalls++
	e.lastInstalled = pattern
	e.mu.Unlock()
	if e.InstallPatternFunc != nil {
		e.InstallPatternFunc(vars, pattern)
	}
}

// NeighborhoodCalls returns how many times ExploreNeighborhood was called.
func (e *Engine) NeighborhoodCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.neighborhoodCalls
}

// EvaluatableCalls returns how many times ExploreConstantEvaluatables was
// called.
func (e *Engine) EvaluatableCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.evaluatableCalls
}

// InstallCalls returns how many times InstallPattern was called.
func (e *Engine) InstallCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.installCalls
}

// LastInstalledPattern returns the pattern passed to the most recent
// InstallPattern call, or nil if it was never called.
func (e *Engine) LastInstalledPattern() *core.Pattern {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastInstalled
}

// Reset clears call counts and injected functions.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.neighborhoodCalls = 0
	e.evaluatableCalls = 0
	e.installCalls = 0
	e.lastInstalled = nil
	e.ExploreNeighborhoodFunc = nil
	e.ExploreConstantEvaluatablesFunc = nil
	e.InstallPatternFunc = nil
}
