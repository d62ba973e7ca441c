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

// ThinnestResult is the outcome of running the Starter Finder over every
// clause in a candidate list: the single best clause/starter/start-term
// triple, plus every ChoiceLink branch discovered along the way.
type ThinnestResult struct {
	Clause    core.Handle
	Starter   core.Handle
	StartTerm core.Handle
	Width     int
	Choices   []core.Choice
	Found     bool
}

// FindThinnest runs the Starter Finder over every clause in clauses,
// skipping clauses held as evaluatable terms (spec.md §4.1: a bare
// evaluatable clause is never itself a usable starter), and returns the
// thinnest (ties broken by deepest) starter found across all of them.
// clauses is exclusively pattern.Mandatory or pattern.Optional: the
// Neighborhood Strategy decides which before calling in here, never the
// union of both.
func FindThinnest(hg hypergraph.Hypergraph, pattern *core.Pattern, clauses []core.Handle) ThinnestResult {
	result := ThinnestResult{Width: unbounded}
	bestDepth := -1
	var allChoices []core.Choice

	for _, clause := range clauses {
		if pattern.Evaluatable.Has(clause) {
			continue
		}

		found, choices := findStarter(hg, pattern, clause)
		allChoices = append(allChoices, choices...)

		if !found.Starter.IsValid() {
			continue
		}

		if !result.Found || isThinnerOrDeeper(found, starterResult{Width: result.Width, Depth: bestDepth}) {
			result.Clause = clause
			result.Starter = found.Starter
			result.StartTerm = found.StartTerm
			result.Width = found.Width
			result.Found = true
			bestDepth = found.Depth
		}
	}

	result.Choices = core.DedupChoices(allChoices)
	return result
}
