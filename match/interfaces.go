package match

import "github.com/nexusgraph/hyperplan/core"

// Engine is the collaborator a Plan hands control to once a starting
// anchor has been chosen. The planner never grounds a variable itself;
// it only decides where exploration should begin and calls Engine to do
// the actual matching.
type Engine interface {
	// ExploreNeighborhood walks outward from candidateAnchor, attempting
	// to ground rootClause via startTerm. Returns true if at least one
	// grounding of rootClause was found and reported.
	ExploreNeighborhood(rootClause, startTerm, candidateAnchor core.Handle) bool

	// ExploreConstantEvaluatables evaluates every clause in
	// mandatoryClauses directly, with no search: this is the no-search
	// path for patterns with zero variables. Returns true if every
	// clause evaluated true.
	ExploreConstantEvaluatables(mandatoryClauses []core.Handle) bool

	// InstallPattern re-points the engine at a newly expanded
	// variable/pattern bundle. The planner calls this once, immediately
	// after JIT expansion and before any strategy runs, so that the
	// engine's subsequent Explore* calls see the fully expanded pattern.
	InstallPattern(vars *core.Variables, pattern *core.Pattern)
}
