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

// LinkTypeResult is the outcome of the Link-Type Strategy: the rarest
// link type found holding a mandatory clause together, and the clause it
// came from.
type LinkTypeResult struct {
	Clause core.Handle
	Type   core.Type
	Count  int
	Found  bool
}

// LinkTypeStrategy implements setup_link_type_search: when no clause has
// a usable constant starter, fall back to the rarest link type present
// in any non-evaluatable mandatory clause (spec.md §4.5: "Evaluatables
// don't exist in the atomspace, in general. Cannot start a search with
// them."; original_source InitiateSearchCB.cc:582's
// `evaluatable_holders.count(cl)` skip) and start the search by
// enumerating its population.
func LinkTypeStrategy(hg hypergraph.Hypergraph, pattern *core.Pattern) LinkTypeResult {
	best := LinkTypeResult{Count: unbounded}

	for _, clause := range pattern.Mandatory {
		if pattern.Evaluatable.Has(clause) {
			continue
		}

		rarest, count := findRarest(hg, clause)
		if count == unbounded {
			continue
		}
		if count < best.Count {
			best = LinkTypeResult{Clause: clause, Type: rarest, Count: count, Found: true}
		}
	}

	return best
}

// findRarest walks h looking for the link type with the smallest current
// population. ChoiceLink is skipped entirely (its branches are handled
// as independent Choices elsewhere, not folded into this comparison);
// Quote and LocalQuote links are transparent and simply descended
// through uncounted. This drops the original's full quotation-depth
// bookkeeping (is_unquoted/consumable), which exists to support nested
// quote/unquote pairs that this planner's simpler Quote model has no use
// for.
func findRarest(hg hypergraph.Hypergraph, h core.Handle) (rarest core.Type, count int) {
	t := hg.TypeOf(h)
	if core.IsNodeType(t) {
		return core.TypeInvalid, unbounded
	}
	if t == core.ChoiceLink {
		return core.TypeInvalid, unbounded
	}

	rarest, count = core.TypeInvalid, unbounded
	if !core.IsQuoteType(t) {
		if c := hg.CountOfType(t); c < count {
			rarest, count = t, c
		}
	}

	for _, child := range hg.Outgoing(h) {
		if childRarest, childCount := findRarest(hg, child); childCount < count {
			rarest, count = childRarest, childCount
		}
	}

	return rarest, count
}
