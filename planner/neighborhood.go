// Copyright 2026 Nexusgraph Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package planner

import (
	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
)

// NeighborhoodStrategy implements setup_neighbor_search: find the
// thinnest constant starter across either the mandatory clauses or,
// failing that, the optional ones, and build the Choice list to drive
// the search from. It never considers the union of both clause lists in
// one pass (original_source/opencog/query/InitiateSearchCB.cc).
//
// allEvaluatable reports whether every mandatory clause is held as an
// evaluatable term; when true, there is nothing groundable among the
// mandatory clauses and the search must be anchored on the optional
// clauses instead.
func NeighborhoodStrategy(hg hypergraph.Hypergraph, pattern *core.Pattern) (ThinnestResult, bool) {
	tryOptionals := allEvaluatable(pattern, pattern.Mandatory)

	clauses := pattern.Mandatory
	if tryOptionals {
		clauses = pattern.Optional
	}

	result := FindThinnest(hg, pattern, clauses)
	if len(result.Choices) == 0 && result.Found {
		// No ChoiceLink branch produced a seed on its own; synthesize
		// the single choice implied by the winning clause itself.
		result.Choices = []core.Choice{{
			Clause:    result.Clause,
			StartTerm: result.StartTerm,
			BestStart: result.Starter,
			Strategy:  "neighborhood",
		}}
	} else {
		for i := range result.Choices {
			result.Choices[i].Strategy = "neighborhood"
		}
	}

	return result, result.Found || len(result.Choices) > 0
}

// allEvaluatable reports whether every clause in clauses is evaluatable.
// Vacuously true for an empty list: the original keeps try_optionals
// initialized to true and only a mandatory clause that isn't evaluatable
// ever flips it to false, so a pattern with zero mandatory clauses falls
// straight through to the optionals (original_source
// InitiateSearchCB.cc:303-311, "Sometimes, the number of mandatory
// clauses can be zero...").
func allEvaluatable(pattern *core.Pattern, clauses []core.Handle) bool {
	for _, c := range clauses {
		if !pattern.Evaluatable.Has(c) {
			return false
		}
	}
	return true
}
